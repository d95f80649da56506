package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"activity-feed/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var apiPanicsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "api_panics_total",
		Help: "Total number of panics recovered from HTTP handlers by route",
	},
	[]string{"endpoint"},
)

// PanicRecovery turns a handler panic into a SYSTEM_001 response
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				traceID := GetTraceID(c)
				if traceID == "" {
					traceID = "unknown"
				}

				slog.Error("panic recovered",
					slog.String("trace_id", traceID),
					slog.String("panic", fmt.Sprintf("%v", r)),
					slog.String("stack_trace", string(debug.Stack())),
					slog.String("path", c.Request().URL.Path),
					slog.String("method", c.Request().Method),
				)
				apiPanicsTotal.WithLabelValues(c.Path()).Inc()

				if c.Response().Committed {
					return
				}
				errorResponse := errors.NewErrorResponse(errors.SystemInternalError, traceID)
				if err := c.JSON(http.StatusInternalServerError, errorResponse); err != nil {
					slog.Error("failed to send panic recovery response",
						slog.String("trace_id", traceID),
						slog.String("error", err.Error()),
					)
				}
			}()

			return next(c)
		}
	}
}
