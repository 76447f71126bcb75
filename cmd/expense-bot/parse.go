package main

import (
	"encoding/json"
	"errors"
	"strings"

	"expense-bot/internal/dto"
	"expense-bot/internal/parser"

	"github.com/spf13/cobra"
)

var errNoAmount = errors.New("no amount recognized")

func parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <text>",
		Short: "Run a message through the recognition pipeline",
		Long: `Parses the given text exactly as the bot would and prints the result as JSON.
Nothing is stored and Telegram is not contacted.`,
		Example: `  expense-bot parse "500 кофе"
  expense-bot parse полтос на такси`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taxonomy, err := loadTaxonomy(cfg)
			if err != nil {
				return err
			}

			tx := parser.NewPipeline(taxonomy).Process(strings.Join(args, " "))
			if tx == nil {
				return errNoAmount
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(dto.NewParseResponse(tx))
		},
	}
}
