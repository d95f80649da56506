package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"activity-feed/internal/config"
	"activity-feed/internal/database"
	"activity-feed/internal/repositories"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func serveCmd() *cobra.Command {
	var noConsumer bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the read API and the queue consumer until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if noConsumer {
				cfg.Consumer.Enabled = false
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, cfg)
		},
	}

	cmd.Flags().BoolVar(&noConsumer, "no-consumer", false, "serve the API without consuming the queue")

	return cmd
}

func runServe(ctx context.Context, cfg *config.Config) error {
	clients, err := database.NewClients(ctx, cfg)
	if err != nil {
		return err
	}

	queueURL, err := database.ResolveQueueURL(ctx, clients.SQS, cfg.Queue.URL, cfg.Queue.Name)
	if err != nil {
		return err
	}

	app := newApplication(cfg, backends{
		store:  repositories.NewDynamoDBTransactionRepository(clients.DynamoDB, cfg.DynamoDB.Table, cfg.DynamoDB.IDIndexName),
		search: repositories.NewOpenSearchTransactionRepository(clients.OpenSearch, cfg.OpenSearch.Index),
		queue:  repositories.NewSQSEventQueueRepository(clients.SQS, queueURL),
	}, prometheus.DefaultRegisterer, prometheus.DefaultGatherer)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		addr := serverAddress(cfg)
		slog.Info("http server starting", slog.String("addr", addr), slog.String("environment", cfg.Server.Environment))
		if err := app.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		app.rateLimiter.Run(gctx)
		return nil
	})

	if cfg.Consumer.Enabled {
		app.consumer.Start()
		slog.Info("queue consumer started", slog.String("queue_url", queueURL), slog.Int("workers", cfg.Consumer.Workers))
	}

	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down")

		// Returns at once when the consumer never started.
		app.consumer.Stop()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := app.echo.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown failed: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	slog.Info("shutdown complete")
	return nil
}
