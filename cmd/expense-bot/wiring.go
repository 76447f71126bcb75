package main

import (
	"context"
	"fmt"
	"log/slog"

	"expense-bot/internal/config"
	"expense-bot/internal/parser"
	"expense-bot/internal/services"
)

// loadTaxonomy reads TAXONOMY_FILE when set and falls back to the embedded document
func loadTaxonomy(cfg *config.Config) (*parser.Taxonomy, error) {
	if cfg.Bot.TaxonomyFile == "" {
		return parser.DefaultTaxonomy(), nil
	}

	taxonomy, err := parser.LoadTaxonomyFile(cfg.Bot.TaxonomyFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load taxonomy: %w", err)
	}
	slog.Info("Loaded taxonomy", "path", cfg.Bot.TaxonomyFile, "categories", len(taxonomy.Categories()))
	return taxonomy, nil
}

// newTelegram builds the Bot API client behind a circuit breaker whose
// transitions are logged and exported as a gauge
func newTelegram(
	cfg *config.Config,
	metrics services.MetricsRecorderInterface,
	botLogger services.BotLoggerInterface,
) (services.TelegramClientInterface, services.CircuitBreakerInterface) {
	breakerConfig := services.DefaultCircuitBreakerConfig()
	if cfg.Bot.BreakerThreshold > 0 {
		breakerConfig.MaxFailures = cfg.Bot.BreakerThreshold
	}
	if cfg.Bot.BreakerTimeout > 0 {
		breakerConfig.ResetTimeout = cfg.Bot.BreakerTimeout
	}
	breakerConfig.OnStateChange = func(from, to services.CircuitBreakerState) {
		botLogger.LogCircuitBreakerStateChange(context.Background(), "telegram", from.String(), to.String())
		metrics.RecordGauge("circuit_breaker.state", float64(to), map[string]string{"service": "telegram"})
	}

	breaker := services.NewCircuitBreaker(breakerConfig)
	metrics.RecordGauge("circuit_breaker.state", float64(services.StateClosed), map[string]string{"service": "telegram"})

	return services.NewTelegramClient(&cfg.Telegram, breaker, metrics, slog.Default()), breaker
}
