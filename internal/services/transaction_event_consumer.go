package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"activity-feed/internal/models"
	"activity-feed/internal/repositories"
)

type ConsumerConfig struct {
	Workers           int
	QueueCapacity     int
	MaxMessages       int
	WaitTime          time.Duration
	VisibilityTimeout time.Duration
	ErrorBackoff      time.Duration
	PollerJoinTimeout time.Duration
	ShutdownTimeout   time.Duration
	ForceStopTimeout  time.Duration
}

func DefaultConsumerConfig() ConsumerConfig {
	return ConsumerConfig{
		Workers:           5,
		QueueCapacity:     20,
		MaxMessages:       10,
		WaitTime:          10 * time.Second,
		VisibilityTimeout: 30 * time.Second,
		ErrorBackoff:      time.Second,
		PollerJoinTimeout: 5 * time.Second,
		ShutdownTimeout:   10 * time.Second,
		ForceStopTimeout:  5 * time.Second,
	}
}

func (c ConsumerConfig) withDefaults() ConsumerConfig {
	defaults := DefaultConsumerConfig()
	if c.Workers <= 0 {
		c.Workers = defaults.Workers
	}
	if c.QueueCapacity < 0 {
		c.QueueCapacity = defaults.QueueCapacity
	}
	if c.MaxMessages <= 0 {
		c.MaxMessages = defaults.MaxMessages
	}
	if c.WaitTime < 0 {
		c.WaitTime = defaults.WaitTime
	}
	if c.VisibilityTimeout <= 0 {
		c.VisibilityTimeout = defaults.VisibilityTimeout
	}
	if c.ErrorBackoff <= 0 {
		c.ErrorBackoff = defaults.ErrorBackoff
	}
	if c.PollerJoinTimeout <= 0 {
		c.PollerJoinTimeout = defaults.PollerJoinTimeout
	}
	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = defaults.ShutdownTimeout
	}
	if c.ForceStopTimeout <= 0 {
		c.ForceStopTimeout = defaults.ForceStopTimeout
	}
	return c
}

// TransactionEventConsumer long-polls the event queue and hands every message
// to a WorkerPool. A message is deleted only after it was processed
// successfully; anything else is left to become visible again.
type TransactionEventConsumer struct {
	queueRepo   repositories.EventQueueRepositoryInterface
	processor   TransactionEventProcessorInterface
	auditLogger AuditLoggerInterface
	metrics     MetricsRecorderInterface
	config      ConsumerConfig
	logger      *slog.Logger

	running atomic.Bool

	mu         sync.Mutex
	pool       *WorkerPool
	cancelPoll context.CancelFunc
	pollerDone chan struct{}
}

func NewTransactionEventConsumer(
	queueRepo repositories.EventQueueRepositoryInterface,
	processor TransactionEventProcessorInterface,
	auditLogger AuditLoggerInterface,
	metrics MetricsRecorderInterface,
	config ConsumerConfig,
) EventConsumerInterface {
	return &TransactionEventConsumer{
		queueRepo:   queueRepo,
		processor:   processor,
		auditLogger: auditLogger,
		metrics:     metrics,
		config:      config.withDefaults(),
		logger:      slog.Default(),
	}
}

func (c *TransactionEventConsumer) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.running.CompareAndSwap(false, true) {
		return
	}

	pollCtx, cancel := context.WithCancel(context.Background())
	c.pool = NewWorkerPool(c.config.Workers, c.config.QueueCapacity)
	c.cancelPoll = cancel
	c.pollerDone = make(chan struct{})

	go c.pollLoop(pollCtx, c.pool, c.pollerDone)

	c.logger.Info("transaction event consumer started",
		slog.Int("workers", c.config.Workers),
		slog.Int("queue_capacity", c.config.QueueCapacity),
	)
}

// Stop stops polling, lets in-flight messages finish for up to
// ShutdownTimeout and then cancels whatever is still running.
func (c *TransactionEventConsumer) Stop() {
	c.mu.Lock()
	if !c.running.CompareAndSwap(true, false) {
		c.mu.Unlock()
		return
	}
	pool, cancelPoll, pollerDone := c.pool, c.cancelPoll, c.pollerDone
	c.mu.Unlock()

	c.logger.Info("stopping transaction event consumer")

	pool.Shutdown()
	cancelPoll()

	select {
	case <-pollerDone:
	case <-time.After(c.config.PollerJoinTimeout):
		c.logger.Warn("poller did not exit in time",
			slog.Duration("timeout", c.config.PollerJoinTimeout),
		)
	}

	if !pool.AwaitTermination(c.config.ShutdownTimeout) {
		c.logger.Warn("workers did not drain in time, cancelling outstanding messages",
			slog.Duration("timeout", c.config.ShutdownTimeout),
		)
		pool.ShutdownNow()
		if !pool.AwaitTermination(c.config.ForceStopTimeout) {
			c.logger.Error("workers still running after cancellation",
				slog.Duration("timeout", c.config.ForceStopTimeout),
			)
		}
	}

	c.logger.Info("transaction event consumer stopped",
		slog.Int64("caller_runs", pool.CallerRuns()),
		slog.Int64("dropped", pool.Dropped()),
	)
}

func (c *TransactionEventConsumer) IsRunning() bool {
	return c.running.Load()
}

func (c *TransactionEventConsumer) pollLoop(ctx context.Context, pool *WorkerPool, done chan struct{}) {
	defer close(done)

	for c.running.Load() && ctx.Err() == nil {
		c.pollOnce(ctx, pool)
	}
}

func (c *TransactionEventConsumer) pollOnce(ctx context.Context, pool *WorkerPool) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("panic in poll loop",
				slog.Any("panic", r),
			)
			c.metrics.IncrementCounter(MetricPollError, map[string]string{"reason": "panic"})
		}
	}()

	messages, err := c.queueRepo.Receive(ctx, repositories.ReceiveOptions{
		MaxMessages:       c.config.MaxMessages,
		WaitTime:          c.config.WaitTime,
		VisibilityTimeout: c.config.VisibilityTimeout,
	})
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		c.logger.Warn("failed to receive messages",
			slog.String("error", err.Error()),
			slog.Duration("backoff", c.config.ErrorBackoff),
		)
		c.metrics.IncrementCounter(MetricPollError, map[string]string{"reason": "receive"})

		timer := time.NewTimer(c.config.ErrorBackoff)
		defer timer.Stop()
		select {
		case <-ctx.Done():
		case <-timer.C:
		}
		return
	}

	for i, message := range messages {
		c.metrics.IncrementCounter(MetricMessageReceived, nil)

		if !c.running.Load() {
			c.logger.Info("consumer stopping, leaving remaining messages for redelivery",
				slog.Int("abandoned", len(messages)-i),
			)
			return
		}

		message := message
		inline, err := pool.Submit(func(taskCtx context.Context) {
			c.processMessage(taskCtx, message)
		})
		if errors.Is(err, ErrPoolShutdown) {
			c.logger.Info("worker pool shut down, leaving remaining messages for redelivery",
				slog.Int("abandoned", len(messages)-i),
			)
			return
		}
		if inline {
			c.metrics.IncrementCounter(MetricCallerRuns, nil)
		}
	}
}

func (c *TransactionEventConsumer) processMessage(ctx context.Context, message repositories.QueueMessage) {
	startTime := time.Now()
	ctx = WithCorrelationID(ctx, message.MessageID)

	defer func() {
		if r := recover(); r != nil {
			c.fail(ctx, message.MessageID, "panic", fmt.Sprint(r))
		}
	}()

	var event models.TransactionEvent
	if err := json.Unmarshal([]byte(message.Body), &event); err != nil {
		c.fail(ctx, message.MessageID, "parse", err.Error())
		return
	}

	c.auditLogger.LogEventReceived(ctx, message.MessageID, event.EventID, event.EventType)

	if err := c.processor.Process(ctx, &event); err != nil {
		c.fail(ctx, message.MessageID, "process", err.Error())
		return
	}

	if err := ctx.Err(); err != nil {
		c.fail(ctx, message.MessageID, "cancelled", err.Error())
		return
	}

	if err := c.queueRepo.Delete(ctx, message.ReceiptHandle); err != nil {
		c.fail(ctx, message.MessageID, "ack", err.Error())
		return
	}

	c.auditLogger.LogMessageAcknowledged(ctx, message.MessageID, time.Since(startTime).Milliseconds())
	c.metrics.IncrementCounter(MetricMessageAcknowledged, nil)
}

func (c *TransactionEventConsumer) fail(ctx context.Context, messageID, stage, errorMsg string) {
	c.auditLogger.LogEventProcessingFailed(ctx, messageID, stage, errorMsg)
	c.metrics.IncrementCounter(MetricMessageFailed, map[string]string{"reason": stage})
}
