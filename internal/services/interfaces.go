package services

import (
	"context"
	"time"

	"activity-feed/internal/dto"
	"activity-feed/internal/models"
)

// TransactionEventProcessorInterface applies one inbound event to the stores
type TransactionEventProcessorInterface interface {
	Process(ctx context.Context, event *models.TransactionEvent) error
}

// TransactionQueryRouterInterface answers a feed query from the best backend
type TransactionQueryRouterInterface interface {
	Route(ctx context.Context, filters models.TransactionFilters) (*models.CursorPage[models.Transaction], error)
}

// TransactionServiceInterface serves the activity feed read API
type TransactionServiceInterface interface {
	GetTransactions(ctx context.Context, filters models.TransactionFilters) (*dto.PageResponse, error)
	GetTransactionByID(ctx context.Context, transactionID string) (*dto.TransactionResponse, error)
}

// EventConsumerInterface controls the queue consumer lifecycle
type EventConsumerInterface interface {
	Start()
	Stop()
	IsRunning() bool
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type AuditLoggerInterface interface {
	LogEventReceived(ctx context.Context, messageID, eventID, eventType string)
	LogTransactionStored(ctx context.Context, transactionID, userID, sk string)
	LogDuplicateTransaction(ctx context.Context, transactionID, userID, sk string)
	LogIndexWriteFailed(ctx context.Context, transactionID string, errorMsg string)
	LogIndexWriteSkipped(ctx context.Context, transactionID string, reason string)
	LogEventProcessingFailed(ctx context.Context, messageID string, stage string, errorMsg string)
	LogMessageAcknowledged(ctx context.Context, messageID string, durationMs int64)
	LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string)
}

type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() models.CircuitBreakerState
	Reset()
	GetFailureCount() int
}
