package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"expense-bot/internal/config"
	"expense-bot/internal/dto"
	"expense-bot/internal/services"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var errNoWebhookURL = errors.New("no webhook URL: pass --url or set PUBLIC_HOST")

func webhookCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "webhook",
		Short: "Manage the Telegram webhook registration",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(cmd, args); err != nil {
				return err
			}
			if cfg.Telegram.BotToken == "" {
				return config.ErrMissingBotToken
			}
			return nil
		},
	}

	cmd.AddCommand(setWebhookCmd())
	cmd.AddCommand(deleteWebhookCmd())
	cmd.AddCommand(webhookInfoCmd())

	return cmd
}

// cliTelegram builds a client whose metrics go to a throwaway registry
func cliTelegram() services.TelegramClientInterface {
	metrics := services.NewPrometheusMetrics(prometheus.NewRegistry())
	client, _ := newTelegram(cfg, metrics, services.NewBotLogger(slog.Default()))
	return client
}

func setWebhookCmd() *cobra.Command {
	var (
		url  string
		drop bool
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Register the webhook with Telegram",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if url == "" {
				url = cfg.Telegram.WebhookURL()
			}
			if url == "" {
				return errNoWebhookURL
			}

			err := cliTelegram().SetWebhook(cmd.Context(), &dto.SetWebhookRequest{
				URL:                url,
				SecretToken:        cfg.Telegram.WebhookSecret,
				AllowedUpdates:     []string{"message", "callback_query"},
				DropPendingUpdates: drop,
			})
			if err != nil {
				return fmt.Errorf("setWebhook failed: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Webhook registered:", url)
			return nil
		},
	}

	cmd.Flags().StringVar(&url, "url", "", "webhook URL (default https://<PUBLIC_HOST>/api/webhook)")
	cmd.Flags().BoolVar(&drop, "drop-pending", false, "drop updates Telegram has queued")

	return cmd
}

func deleteWebhookCmd() *cobra.Command {
	var drop bool

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Remove the webhook registration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := cliTelegram().DeleteWebhook(cmd.Context(), drop); err != nil {
				return fmt.Errorf("deleteWebhook failed: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Webhook removed")
			return nil
		},
	}

	cmd.Flags().BoolVar(&drop, "drop-pending", false, "drop updates Telegram has queued")

	return cmd
}

func webhookInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show Telegram's view of the webhook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info, err := cliTelegram().GetWebhookInfo(cmd.Context())
			if err != nil {
				return fmt.Errorf("getWebhookInfo failed: %w", err)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(info)
		},
	}
}
