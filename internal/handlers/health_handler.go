package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"activity-feed/internal/repositories"
	"activity-feed/internal/services"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"
)

const (
	HealthStatusUp       = "UP"
	HealthStatusDown     = "DOWN"
	HealthStatusDegraded = "DEGRADED"

	defaultProbeTimeout = 3 * time.Second
)

// ComponentHealth is the probe result of one backend
type ComponentHealth struct {
	Status     string `json:"status"`
	Error      string `json:"error,omitempty"`
	QueueDepth *int64 `json:"queueDepth,omitempty"`
}

type HealthResponse struct {
	Status     string                     `json:"status"`
	Components map[string]ComponentHealth `json:"components"`
	Time       string                     `json:"time"`
}

// HealthCheckHandler probes every backend the service depends on
type HealthCheckHandler struct {
	storeRepo    repositories.TransactionStoreRepositoryInterface
	searchRepo   repositories.TransactionSearchRepositoryInterface
	queueRepo    repositories.EventQueueRepositoryInterface
	metrics      services.MetricsRecorderInterface
	probeTimeout time.Duration
}

func NewHealthCheckHandler(
	storeRepo repositories.TransactionStoreRepositoryInterface,
	searchRepo repositories.TransactionSearchRepositoryInterface,
	queueRepo repositories.EventQueueRepositoryInterface,
	metrics services.MetricsRecorderInterface,
) *HealthCheckHandler {
	return &HealthCheckHandler{
		storeRepo:    storeRepo,
		searchRepo:   searchRepo,
		queueRepo:    queueRepo,
		metrics:      metrics,
		probeTimeout: defaultProbeTimeout,
	}
}

// HealthCheck answers 200 when every backend is up and 503 otherwise.
//
// GET /health
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.probeTimeout)
	defer cancel()

	var dynamo, search, queue ComponentHealth
	var g errgroup.Group
	g.Go(func() error {
		dynamo = probe(h.storeRepo.Ping(ctx))
		return nil
	})
	g.Go(func() error {
		search = probe(h.searchRepo.Ping(ctx))
		return nil
	})
	g.Go(func() error {
		queue = h.probeQueue(ctx)
		return nil
	})
	_ = g.Wait()

	components := map[string]ComponentHealth{
		"dynamodb":   dynamo,
		"opensearch": search,
		"sqs":        queue,
	}

	status := HealthStatusUp
	httpStatus := http.StatusOK
	for name, component := range components {
		if component.Status != HealthStatusUp {
			status = HealthStatusDegraded
			httpStatus = http.StatusServiceUnavailable
			slog.Warn("health probe failed",
				slog.String("trace_id", getTraceID(c)),
				slog.String("component", name),
				slog.String("error", component.Error),
			)
		}
	}

	return c.JSON(httpStatus, HealthResponse{
		Status:     status,
		Components: components,
		Time:       time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *HealthCheckHandler) probeQueue(ctx context.Context) ComponentHealth {
	depth, err := h.queueRepo.ApproximateDepth(ctx)
	if err != nil {
		return probe(err)
	}
	h.metrics.RecordGauge(services.MetricQueueDepth, float64(depth), nil)
	return ComponentHealth{Status: HealthStatusUp, QueueDepth: &depth}
}

func probe(err error) ComponentHealth {
	if err != nil {
		return ComponentHealth{Status: HealthStatusDown, Error: err.Error()}
	}
	return ComponentHealth{Status: HealthStatusUp}
}
