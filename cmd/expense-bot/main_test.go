package main

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"expense-bot/internal/config"
	"expense-bot/internal/dto"
	"expense-bot/internal/models"
	"expense-bot/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withConfig(t *testing.T, c *config.Config) {
	t.Helper()
	previous := cfg
	cfg = c
	t.Cleanup(func() { cfg = previous })
}

func TestParseCmd(t *testing.T) {
	withConfig(t, &config.Config{})

	var out bytes.Buffer
	cmd := parseCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"500", "кофе"})

	require.NoError(t, cmd.Execute())

	var resp dto.ParseResponse
	require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
	assert.Equal(t, "500", resp.Amount.String())
	require.NotNil(t, resp.Category)
	assert.Equal(t, "coffee", resp.Category.ID)
}

func TestParseCmd_NoAmount(t *testing.T) {
	withConfig(t, &config.Config{})

	cmd := parseCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"привет"})

	assert.ErrorIs(t, cmd.Execute(), errNoAmount)
}

func TestParseCmd_MissingTaxonomyFile(t *testing.T) {
	withConfig(t, &config.Config{Bot: config.BotConfig{TaxonomyFile: "/nonexistent/taxonomy.yaml"}})

	cmd := parseCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"500"})

	assert.Error(t, cmd.Execute())
}

func TestTokenCmd(t *testing.T) {
	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	require.NoError(t, err)
	jwtConfig := config.JWTConfig{PrivateKey: privateKey, PublicKey: publicKey, Issuer: "expense-bot", AccessTokenDuration: time.Hour}
	withConfig(t, &config.Config{JWT: jwtConfig})

	var out bytes.Buffer
	cmd := tokenCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--subject", "ops", "--role", models.RoleOperator})

	require.NoError(t, cmd.Execute())

	var resp dto.TokenResponse
	require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
	assert.Equal(t, "Bearer", resp.TokenType)

	claims, err := services.NewTokenService(&jwtConfig).ValidateAccessToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "ops", claims.Subject)
	assert.Equal(t, models.RoleOperator, claims.Role)
}

func TestTokenCmd_InvalidRole(t *testing.T) {
	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	require.NoError(t, err)
	withConfig(t, &config.Config{JWT: config.JWTConfig{PrivateKey: privateKey, PublicKey: publicKey, AccessTokenDuration: time.Hour}})

	cmd := tokenCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"--role", "superuser"})

	assert.ErrorIs(t, cmd.Execute(), services.ErrInvalidRole)
}

func TestSetWebhookCmd(t *testing.T) {
	var received dto.SetWebhookRequest
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&received)
		_, _ = w.Write([]byte(`{"ok":true,"result":true}`))
	}))
	defer srv.Close()

	withConfig(t, &config.Config{Telegram: config.TelegramConfig{
		BotToken:      "123:abc",
		APIBaseURL:    srv.URL,
		WebhookSecret: "hook-secret",
		PublicHost:    "bot.example.com",
	}})

	var out bytes.Buffer
	cmd := setWebhookCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--drop-pending"})

	require.NoError(t, cmd.Execute())

	assert.Equal(t, "/bot123:abc/setWebhook", path)
	assert.Equal(t, "https://bot.example.com/api/webhook", received.URL)
	assert.Equal(t, "hook-secret", received.SecretToken)
	assert.True(t, received.DropPendingUpdates)
	assert.Contains(t, out.String(), "Webhook registered")
}

func TestSetWebhookCmd_NoURL(t *testing.T) {
	withConfig(t, &config.Config{Telegram: config.TelegramConfig{BotToken: "123:abc"}})

	cmd := setWebhookCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(nil)

	assert.ErrorIs(t, cmd.Execute(), errNoWebhookURL)
}

func TestNewLogHandler(t *testing.T) {
	production := &config.Config{Server: config.ServerConfig{Environment: "production"}}
	development := &config.Config{Server: config.ServerConfig{Environment: "development"}}

	handler, err := newLogHandler(production, "")
	require.NoError(t, err)
	assert.IsType(t, &slog.JSONHandler{}, handler)

	handler, err = newLogHandler(development, "")
	require.NoError(t, err)
	assert.IsType(t, &slog.TextHandler{}, handler)

	handler, err = newLogHandler(production, "text")
	require.NoError(t, err)
	assert.IsType(t, &slog.TextHandler{}, handler)

	_, err = newLogHandler(development, "xml")
	assert.Error(t, err)
}
