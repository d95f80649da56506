package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"activity-feed/internal/models"
	"activity-feed/internal/repositories"
)

var (
	ErrInvalidEvent = errors.New("invalid transaction event")
)

type TransactionEventProcessor struct {
	storeRepo      repositories.TransactionStoreRepositoryInterface
	searchRepo     repositories.TransactionSearchRepositoryInterface
	auditLogger    AuditLoggerInterface
	metrics        MetricsRecorderInterface
	circuitBreaker CircuitBreakerInterface
	logger         *slog.Logger
	now            func() time.Time
}

func NewTransactionEventProcessor(
	storeRepo repositories.TransactionStoreRepositoryInterface,
	searchRepo repositories.TransactionSearchRepositoryInterface,
	auditLogger AuditLoggerInterface,
	metrics MetricsRecorderInterface,
	circuitBreaker CircuitBreakerInterface,
) TransactionEventProcessorInterface {
	return &TransactionEventProcessor{
		storeRepo:      storeRepo,
		searchRepo:     searchRepo,
		auditLogger:    auditLogger,
		metrics:        metrics,
		circuitBreaker: circuitBreaker,
		logger:         slog.Default(),
		now:            time.Now,
	}
}

// Process stores the transaction carried by event and mirrors it into the
// search index. A transaction that is already stored is not an error.
func (p *TransactionEventProcessor) Process(ctx context.Context, event *models.TransactionEvent) error {
	startTime := p.now()

	transaction, err := p.toTransaction(ctx, event)
	if err != nil {
		p.metrics.IncrementCounter(MetricEventFailed, map[string]string{"reason": "invalid"})
		return err
	}

	err = p.storeRepo.Put(ctx, transaction)
	switch {
	case err == nil:
		p.auditLogger.LogTransactionStored(ctx, transaction.ID, transaction.UserID, transaction.SK)
		p.metrics.IncrementCounter(MetricEventProcessed, map[string]string{"status": "stored"})
	case errors.Is(err, repositories.ErrTransactionAlreadyExists):
		p.auditLogger.LogDuplicateTransaction(ctx, transaction.ID, transaction.UserID, transaction.SK)
		p.metrics.IncrementCounter(MetricEventProcessed, map[string]string{"status": "duplicate"})
	default:
		p.metrics.IncrementCounter(MetricEventFailed, map[string]string{"reason": "store"})
		return fmt.Errorf("failed to store transaction %s: %w", transaction.ID, err)
	}

	// Runs for duplicates too so a redelivered event can repair a missed index write.
	p.indexTransaction(ctx, transaction)

	p.metrics.RecordProcessingTime(MetricEventProcessing, p.now().Sub(startTime))
	return nil
}

func (p *TransactionEventProcessor) indexTransaction(ctx context.Context, transaction *models.Transaction) {
	if p.circuitBreaker.IsOpen() {
		p.auditLogger.LogIndexWriteSkipped(ctx, transaction.ID, ErrCircuitBreakerOpen.Error())
		p.metrics.IncrementCounter(MetricIndexWrite, map[string]string{"status": "skipped"})
		return
	}

	if err := p.searchRepo.Upsert(ctx, transaction); err != nil {
		p.circuitBreaker.RecordFailure()
		p.auditLogger.LogIndexWriteFailed(ctx, transaction.ID, err.Error())
		p.metrics.IncrementCounter(MetricIndexWrite, map[string]string{"status": "failed"})
		return
	}

	p.circuitBreaker.RecordSuccess()
	p.metrics.IncrementCounter(MetricIndexWrite, map[string]string{"status": "success"})
}

func (p *TransactionEventProcessor) toTransaction(ctx context.Context, event *models.TransactionEvent) (*models.Transaction, error) {
	if event == nil || event.Payload == nil {
		return nil, fmt.Errorf("%w: missing payload", ErrInvalidEvent)
	}

	payload := event.Payload
	id := event.DeduplicationID()
	if id == "" {
		return nil, fmt.Errorf("%w: missing transactionId and eventId", ErrInvalidEvent)
	}
	if payload.UserID == "" {
		return nil, fmt.Errorf("%w: missing userId", ErrInvalidEvent)
	}
	if payload.Product != "" && !models.IsValidProduct(payload.Product) {
		return nil, fmt.Errorf("%w: %w %q", ErrInvalidEvent, models.ErrInvalidProduct, payload.Product)
	}
	if payload.Type != "" && !models.IsValidTransactionType(payload.Type) {
		return nil, fmt.Errorf("%w: %w %q", ErrInvalidEvent, models.ErrInvalidTransactionType, payload.Type)
	}
	if payload.Status != "" && !models.IsValidTransactionStatus(payload.Status) {
		return nil, fmt.Errorf("%w: %w %q", ErrInvalidEvent, models.ErrInvalidTransactionStatus, payload.Status)
	}
	if payload.Currency != "" && !models.IsValidCurrency(payload.Currency) {
		return nil, fmt.Errorf("%w: %w %q", ErrInvalidEvent, models.ErrInvalidCurrency, payload.Currency)
	}

	now := p.now().UTC()
	occurredAt := now
	if payload.OccurredAt != nil {
		occurredAt = payload.OccurredAt.UTC()
	}

	transaction := &models.Transaction{
		UserID:        payload.UserID,
		SK:            models.BuildSortKey(occurredAt, id),
		ID:            id,
		Product:       payload.Product,
		Type:          payload.Type,
		Status:        payload.Status,
		Amount:        payload.Amount,
		Currency:      payload.Currency,
		Description:   payload.Description,
		OccurredAt:    occurredAt,
		CreatedAt:     now,
		SourceService: event.SourceService,
		EventID:       event.EventID,
		TransactionID: payload.TransactionID,
	}

	if len(payload.Metadata) > 0 {
		metadata, err := json.Marshal(payload.Metadata)
		if err != nil {
			p.logger.WarnContext(ctx, "dropping unserializable metadata",
				slog.String("transaction_id", id),
				slog.String("error", err.Error()),
			)
		} else {
			transaction.Metadata = string(metadata)
		}
	}

	return transaction, nil
}
