package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"expense-bot/internal/config"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	cfg     *config.Config
	rootCmd = &cobra.Command{
		Use:   "expense-bot",
		Short: "Telegram bot that turns short messages into categorized expenses",
		Long: `expense-bot receives Telegram updates on a webhook, recognizes amounts such as
"500 кофе" or "полтос на такси", files them under a category and answers
with monthly summaries.`,
		SilenceUsage:      true,
		PersistentPreRunE: initConfig,
	}
)

func init() {
	rootCmd.PersistentFlags().String("log-format", "", "log format (text, json); defaults to json in production")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(parseCmd())
	rootCmd.AddCommand(webhookCmd())
	rootCmd.AddCommand(tokenCmd())
	rootCmd.AddCommand(versionCmd())
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)
	cancel()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initConfig(cmd *cobra.Command, _ []string) error {
	cfg = config.Load()

	format, _ := cmd.Flags().GetString("log-format")
	handler, err := newLogHandler(cfg, format)
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(handler))

	return nil
}

func newLogHandler(cfg *config.Config, format string) (slog.Handler, error) {
	if format == "" {
		format = "text"
		if cfg.IsProduction() {
			format = "json"
		}
	}

	opts := &slog.HandlerOptions{Level: cfg.Bot.SlogLevel()}

	switch format {
	case "text":
		return slog.NewTextHandler(os.Stderr, opts), nil
	case "json":
		return slog.NewJSONHandler(os.Stderr, opts), nil
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "expense-bot", version)
		},
	}
}
