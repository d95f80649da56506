package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"activity-feed/internal/database"
	"activity-feed/internal/models"
	"activity-feed/internal/repositories"
	"activity-feed/internal/services"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type publishOptions struct {
	userID    string
	count     int
	product   string
	txType    string
	status    string
	currency  string
	amount    string
	window    time.Duration
	duplicate bool
}

func publishCmd() *cobra.Command {
	opts := publishOptions{}

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Send sample transaction events to the queue",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			generate, err := generateOptions(opts, time.Now().UTC())
			if err != nil {
				return err
			}
			events := services.NewTransactionGenerator().Generate(generate)

			clients, err := database.NewClients(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			queueURL, err := database.ResolveQueueURL(cmd.Context(), clients.SQS, cfg.Queue.URL, cfg.Queue.Name)
			if err != nil {
				return err
			}

			return publishEvents(cmd.Context(), repositories.NewSQSEventQueueRepository(clients.SQS, queueURL), events, func(event *models.TransactionEvent, messageID string) {
				fmt.Fprintf(cmd.OutOrStdout(), "published event %s (transaction %s) as message %s\n",
					event.EventID, event.DeduplicationID(), messageID)
			})
		},
	}

	cmd.Flags().StringVar(&opts.userID, "user", "", "owner of the events (random when empty)")
	cmd.Flags().IntVarP(&opts.count, "count", "n", 1, "number of events to send")
	cmd.Flags().StringVar(&opts.product, "product", "", "product of every event (random when empty)")
	cmd.Flags().StringVar(&opts.txType, "type", "", "transaction type of every event (random when empty)")
	cmd.Flags().StringVar(&opts.status, "status", "", "status of every event (random when empty)")
	cmd.Flags().StringVar(&opts.currency, "currency", string(models.CurrencyUSD), "currency of every event")
	cmd.Flags().StringVar(&opts.amount, "amount", "", "fixed amount (random when empty)")
	cmd.Flags().DurationVar(&opts.window, "window", 30*24*time.Hour, "spread occurredAt over this long before now")
	cmd.Flags().BoolVar(&opts.duplicate, "duplicate", false, "send every event twice to exercise deduplication")

	return cmd
}

// generateOptions validates the flags and turns them into generator options
func generateOptions(opts publishOptions, now time.Time) (services.GenerateOptions, error) {
	if opts.count < 1 {
		return services.GenerateOptions{}, fmt.Errorf("count must be positive, got %d", opts.count)
	}
	if opts.product != "" && !models.IsValidProduct(models.Product(opts.product)) {
		return services.GenerateOptions{}, fmt.Errorf("unknown product %q", opts.product)
	}
	if opts.txType != "" && !models.IsValidTransactionType(models.TransactionType(opts.txType)) {
		return services.GenerateOptions{}, fmt.Errorf("unknown transaction type %q", opts.txType)
	}
	if opts.status != "" && !models.IsValidTransactionStatus(models.TransactionStatus(opts.status)) {
		return services.GenerateOptions{}, fmt.Errorf("unknown status %q", opts.status)
	}
	if opts.currency != "" && !models.IsValidCurrency(models.Currency(opts.currency)) {
		return services.GenerateOptions{}, fmt.Errorf("unknown currency %q", opts.currency)
	}
	if opts.window <= 0 {
		return services.GenerateOptions{}, fmt.Errorf("window must be positive, got %s", opts.window)
	}

	generate := services.GenerateOptions{
		UserID:    opts.userID,
		Count:     opts.count,
		Product:   models.Product(opts.product),
		Type:      models.TransactionType(opts.txType),
		Status:    models.TransactionStatus(opts.status),
		Currency:  models.Currency(opts.currency),
		Start:     now.Add(-opts.window),
		End:       now,
		Duplicate: opts.duplicate,
	}
	if opts.amount != "" {
		amount, err := decimal.NewFromString(opts.amount)
		if err != nil {
			return services.GenerateOptions{}, fmt.Errorf("invalid amount %q: %w", opts.amount, err)
		}
		generate.Amount = &amount
	}
	return generate, nil
}

func publishEvents(
	ctx context.Context,
	queue repositories.EventQueueRepositoryInterface,
	events []*models.TransactionEvent,
	onPublished func(event *models.TransactionEvent, messageID string),
) error {
	for _, event := range events {
		body, err := json.Marshal(event)
		if err != nil {
			return fmt.Errorf("failed to encode event %s: %w", event.EventID, err)
		}
		messageID, err := queue.Publish(ctx, string(body))
		if err != nil {
			return fmt.Errorf("failed to publish event %s: %w", event.EventID, err)
		}
		onPublished(event, messageID)
	}
	return nil
}
