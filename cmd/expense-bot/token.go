package main

import (
	"encoding/json"
	"fmt"

	"expense-bot/internal/dto"
	"expense-bot/internal/models"
	"expense-bot/internal/services"

	"github.com/spf13/cobra"
)

func tokenCmd() *cobra.Command {
	var subject, role string

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token for the admin API",
		Long: `Signs an access token with the configured JWT private key. In development a
fresh key pair is generated per process, so the token is only accepted by a
server started with the same JWT_PRIVATE_KEY/JWT_PUBLIC_KEY.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			token, expiresAt, err := services.NewTokenService(&cfg.JWT).GenerateAdminToken(subject, role)
			if err != nil {
				return fmt.Errorf("failed to generate token: %w", err)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(dto.TokenResponse{
				AccessToken: token,
				TokenType:   "Bearer",
				ExpiresAt:   expiresAt,
			})
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "operator", "name recorded in the token subject")
	cmd.Flags().StringVar(&role, "role", models.RoleAdmin, "token role (admin, operator)")

	return cmd
}
