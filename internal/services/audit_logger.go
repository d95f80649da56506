package services

import (
	"context"
	"log/slog"
	"time"
)

type contextKey string

const correlationIDKey contextKey = "correlation_id"

// WithCorrelationID tags ctx so that audit entries written under it can be joined.
func WithCorrelationID(ctx context.Context, correlationID string) context.Context {
	return context.WithValue(ctx, correlationIDKey, correlationID)
}

type AuditLogger struct {
	logger *slog.Logger
}

func NewAuditLogger(logger *slog.Logger) AuditLoggerInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuditLogger{
		logger: logger,
	}
}

func (al *AuditLogger) LogEventReceived(ctx context.Context, messageID, eventID, eventType string) {
	al.logger.InfoContext(ctx, "transaction event received",
		slog.String("event_type", "transaction_event_received"),
		slog.String("message_id", messageID),
		slog.String("event_id", eventID),
		slog.String("source_event_type", eventType),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogTransactionStored(ctx context.Context, transactionID, userID, sk string) {
	al.logger.InfoContext(ctx, "transaction stored",
		slog.String("event_type", "transaction_stored"),
		slog.String("transaction_id", transactionID),
		slog.String("user_id", userID),
		slog.String("sk", sk),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogDuplicateTransaction(ctx context.Context, transactionID, userID, sk string) {
	al.logger.InfoContext(ctx, "duplicate transaction ignored",
		slog.String("event_type", "transaction_duplicate"),
		slog.String("transaction_id", transactionID),
		slog.String("user_id", userID),
		slog.String("sk", sk),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogIndexWriteFailed(ctx context.Context, transactionID string, errorMsg string) {
	al.logger.ErrorContext(ctx, "search index write failed",
		slog.String("event_type", "index_write_failed"),
		slog.String("transaction_id", transactionID),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogIndexWriteSkipped(ctx context.Context, transactionID string, reason string) {
	al.logger.WarnContext(ctx, "search index write skipped",
		slog.String("event_type", "index_write_skipped"),
		slog.String("transaction_id", transactionID),
		slog.String("reason", reason),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogEventProcessingFailed(ctx context.Context, messageID string, stage string, errorMsg string) {
	al.logger.WarnContext(ctx, "transaction event processing failed",
		slog.String("event_type", "transaction_event_failed"),
		slog.String("message_id", messageID),
		slog.String("stage", stage),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogMessageAcknowledged(ctx context.Context, messageID string, durationMs int64) {
	al.logger.InfoContext(ctx, "message acknowledged",
		slog.String("event_type", "message_acknowledged"),
		slog.String("message_id", messageID),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string) {
	al.logger.WarnContext(ctx, "circuit breaker state change",
		slog.String("event_type", "circuit_breaker_state_change"),
		slog.String("service", service),
		slog.String("old_state", oldState),
		slog.String("new_state", newState),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", CorrelationID(ctx)),
	)
}

// CorrelationID returns the ID set by WithCorrelationID, or "".
func CorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	if correlationID, ok := ctx.Value(correlationIDKey).(string); ok {
		return correlationID
	}

	return ""
}
