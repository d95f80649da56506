package handlers

import (
	stderrors "errors"
	"log/slog"

	"activity-feed/internal/errors"
	"activity-feed/internal/services"

	"github.com/labstack/echo/v4"
)

// Handlers answer errors through SendError (client and business errors, with
// the code deciding the status) or SendSystemError (internal failures, whose
// details stay in the log). Do not return echo.NewHTTPError from a handler.

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError answers SYSTEM_001 and logs the internal error
func SendSystemError(c echo.Context, err error) error {
	return sendWrapped(c, errors.WrapSystemError, err)
}

// SendBackendError answers with the code of the backend that failed. It falls
// back to SendSystemError for errors that name no backend.
func SendBackendError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, services.ErrSearchUnavailable):
		return sendWrapped(c, errors.WrapSearchError, err)
	case stderrors.Is(err, services.ErrStoreUnavailable):
		return sendWrapped(c, errors.WrapStoreError, err)
	default:
		return SendSystemError(c, err)
	}
}

func sendWrapped(c echo.Context, wrap func(error, string) (*errors.ErrorResponse, error), err error) error {
	traceID := getTraceID(c)
	errorResponse, internalErr := wrap(err, traceID)
	slog.ErrorContext(c.Request().Context(), "request failed",
		slog.String("trace_id", traceID),
		slog.String("error_code", errorResponse.Error.Code),
		slog.String("path", c.Request().URL.Path),
		slog.String("error", internalErr.Error()),
	)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}
