package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"expense-bot/internal/database"
	"expense-bot/internal/parser"
	"expense-bot/internal/repositories"
	"expense-bot/internal/server"
	"expense-bot/internal/services"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the webhook and admin HTTP server",
		Long: `Starts the HTTP server that receives Telegram updates on /api/webhook,
serves the parse and admin APIs and purges stale pending amounts in the background.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(ctx context.Context) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	db, err := database.Initialize(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("Failed to close database", "error", err)
		}
	}()

	taxonomy, err := loadTaxonomy(cfg)
	if err != nil {
		return err
	}

	metrics := services.NewPrometheusMetrics(prometheus.DefaultRegisterer)
	botLogger := services.NewBotLogger(slog.Default())
	pipeline := parser.NewPipeline(taxonomy, parser.WithObserver(metrics))

	expenseRepo := repositories.NewExpenseRepository(db.DB)
	pendingRepo := repositories.NewPendingAmountRepository(db.DB)

	telegram, breaker := newTelegram(cfg, metrics, botLogger)
	expenses := services.NewExpenseService(pipeline, expenseRepo, pendingRepo, botLogger, metrics, cfg.Bot.PendingTTL)
	bot := services.NewBotService(expenses, telegram, botLogger, metrics)
	tokens := services.NewTokenService(&cfg.JWT)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sweeper := services.NewPendingSweeper(pendingRepo, botLogger, metrics, cfg.Bot.PendingTTL, cfg.Bot.SweepInterval)
	go sweeper.Start(ctx)

	e := server.New(ctx, server.Dependencies{
		Config:   cfg,
		DB:       db.DB,
		Taxonomy: taxonomy,
		Bot:      bot,
		Expenses: expenses,
		Telegram: telegram,
		Breaker:  breaker,
		Tokens:   tokens,
		Gatherer: prometheus.DefaultGatherer,
	})

	httpServer := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
		Handler:      e,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Starting server",
			"addr", httpServer.Addr,
			"environment", cfg.Server.Environment,
			"webhook_url", cfg.Telegram.WebhookURL(),
		)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("Shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
