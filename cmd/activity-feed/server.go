package main

import (
	"context"
	"log/slog"
	"net"
	"net/http"

	"activity-feed/internal/config"
	"activity-feed/internal/handlers"
	"activity-feed/internal/middleware"
	"activity-feed/internal/models"
	"activity-feed/internal/repositories"
	"activity-feed/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const searchBackendName = "opensearch"

// application holds every long-lived component of the serve command
type application struct {
	echo        *echo.Echo
	consumer    services.EventConsumerInterface
	rateLimiter *middleware.RateLimiter
}

type backends struct {
	store  repositories.TransactionStoreRepositoryInterface
	search repositories.TransactionSearchRepositoryInterface
	queue  repositories.EventQueueRepositoryInterface
}

func newApplication(cfg *config.Config, b backends, reg prometheus.Registerer, gatherer prometheus.Gatherer) *application {
	metrics := services.NewPrometheusMetrics(reg)
	auditLogger := services.NewAuditLogger(slog.Default())

	breakerConfig := services.DefaultCircuitBreakerConfig()
	breakerConfig.OnStateChange = func(from, to models.CircuitBreakerState) {
		auditLogger.LogCircuitBreakerStateChange(context.Background(), searchBackendName, from.String(), to.String())
		metrics.RecordGauge(services.MetricCircuitBreakerState, float64(to), map[string]string{"service": searchBackendName})
	}
	breaker := services.NewCircuitBreaker(breakerConfig)

	processor := services.NewTransactionEventProcessor(b.store, b.search, auditLogger, metrics, breaker)
	consumer := services.NewTransactionEventConsumer(b.queue, processor, auditLogger, metrics, services.ConsumerConfig{
		Workers:           cfg.Consumer.Workers,
		QueueCapacity:     cfg.Consumer.QueueCapacity,
		MaxMessages:       cfg.Queue.MaxMessages,
		WaitTime:          cfg.Queue.WaitTime,
		VisibilityTimeout: cfg.Queue.VisibilityTimeout,
		ErrorBackoff:      cfg.Consumer.ErrorBackoff,
		PollerJoinTimeout: cfg.Consumer.PollerJoinTimeout,
		ShutdownTimeout:   cfg.Consumer.ShutdownTimeout,
		ForceStopTimeout:  cfg.Consumer.ForceStopTimeout,
	})

	router := services.NewTransactionQueryRouter(b.store, b.search, metrics)
	transactionService := services.NewTransactionService(b.store, router)

	rateLimiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
		Burst:             cfg.RateLimit.Burst,
	})

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, middleware.TraceIDHeader},
	}))

	health := handlers.NewHealthCheckHandler(b.store, b.search, b.queue, metrics)
	e.GET("/health", health.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	api := e.Group("/api/v1/activity-feed", rateLimiter.Middleware())
	handlers.NewActivityFeedHandler(transactionService).RegisterRoutes(api)

	return &application{
		echo:        e,
		consumer:    consumer,
		rateLimiter: rateLimiter,
	}
}

func serverAddress(cfg *config.Config) string {
	return net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)
}
