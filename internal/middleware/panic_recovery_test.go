package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"activity-feed/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
)

const feedRoute = "/api/v1/activity-feed/users/:userId/transactions"

type PanicRecoveryTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func TestPanicRecoveryTestSuite(t *testing.T) {
	suite.Run(t, new(PanicRecoveryTestSuite))
}

func (s *PanicRecoveryTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.Use(RequestID(), PanicRecovery())
}

func (s *PanicRecoveryTestSuite) serve(handler echo.HandlerFunc, header map[string]string) *httptest.ResponseRecorder {
	s.echo.GET(feedRoute, handler)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/activity-feed/users/user-1/transactions", nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	s.NotPanics(func() { s.echo.ServeHTTP(rec, req) })
	return rec
}

func (s *PanicRecoveryTestSuite) TestPanic_AnswersSystemErrorWithTraceID() {
	before := testutil.ToFloat64(apiPanicsTotal.WithLabelValues(feedRoute))

	rec := s.serve(func(c echo.Context) error {
		panic("router exploded")
	}, map[string]string{TraceIDHeader: "feed-trace-1"})

	s.Equal(http.StatusInternalServerError, rec.Code)
	var body errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal(string(errors.SystemInternalError), body.Error.Code)
	s.Equal("feed-trace-1", body.Error.TraceID)
	s.Equal(before+1, testutil.ToFloat64(apiPanicsTotal.WithLabelValues(feedRoute)))
}

func (s *PanicRecoveryTestSuite) TestPanic_WithoutRequestIDMiddleware_UsesUnknown() {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), httptest.NewRecorder())
	rec := c.Response().Writer.(*httptest.ResponseRecorder)

	handler := PanicRecovery()(func(c echo.Context) error {
		panic("no trace")
	})
	s.NotPanics(func() { _ = handler(c) })

	var body errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("unknown", body.Error.TraceID)
}

func (s *PanicRecoveryTestSuite) TestNoPanic_PassesThrough() {
	rec := s.serve(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{"content": []string{}, "hasMore": false})
	}, nil)

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"content":[],"hasMore":false}`, rec.Body.String())
}

func (s *PanicRecoveryTestSuite) TestPanic_AfterCommit_KeepsPartialResponse() {
	rec := s.serve(func(c echo.Context) error {
		_ = c.String(http.StatusAccepted, "partial")
		panic("late panic")
	}, nil)

	s.Equal(http.StatusAccepted, rec.Code)
	s.Equal("partial", rec.Body.String())
}

func (s *PanicRecoveryTestSuite) TestPanic_AnyValue() {
	values := map[string]any{
		"string": "nil map write",
		"int":    42,
		"error":  fmt.Errorf("index out of range"),
		"struct": struct{ msg string }{"bad cursor state"},
	}

	for name, value := range values {
		s.Run(name, func() {
			s.SetupTest()
			rec := s.serve(func(c echo.Context) error {
				panic(value)
			}, nil)
			s.Equal(http.StatusInternalServerError, rec.Code)
		})
	}
}
