package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"activity-feed/internal/repositories/repository_mocks"
	"activity-feed/internal/services"
	"activity-feed/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type HealthCheckHandlerTestSuite struct {
	suite.Suite
	echo       *echo.Echo
	ctrl       *gomock.Controller
	storeRepo  *repository_mocks.MockTransactionStoreRepositoryInterface
	searchRepo *repository_mocks.MockTransactionSearchRepositoryInterface
	queueRepo  *repository_mocks.MockEventQueueRepositoryInterface
	metrics    *service_mocks.MockMetricsRecorderInterface
	handler    *HealthCheckHandler
}

func TestHealthCheckHandlerSuite(t *testing.T) {
	suite.Run(t, new(HealthCheckHandlerTestSuite))
}

func (s *HealthCheckHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.ctrl = gomock.NewController(s.T())
	s.storeRepo = repository_mocks.NewMockTransactionStoreRepositoryInterface(s.ctrl)
	s.searchRepo = repository_mocks.NewMockTransactionSearchRepositoryInterface(s.ctrl)
	s.queueRepo = repository_mocks.NewMockEventQueueRepositoryInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.handler = NewHealthCheckHandler(s.storeRepo, s.searchRepo, s.queueRepo, s.metrics)
}

func (s *HealthCheckHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HealthCheckHandlerTestSuite) check() (*httptest.ResponseRecorder, HealthResponse) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.Require().NoError(s.handler.HealthCheck(c))

	var response HealthResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	return rec, response
}

func (s *HealthCheckHandlerTestSuite) TestHealthCheck_AllUp() {
	s.storeRepo.EXPECT().Ping(gomock.Any()).Return(nil)
	s.searchRepo.EXPECT().Ping(gomock.Any()).Return(nil)
	s.queueRepo.EXPECT().ApproximateDepth(gomock.Any()).Return(int64(7), nil)
	s.metrics.EXPECT().RecordGauge(services.MetricQueueDepth, float64(7), gomock.Any())

	rec, response := s.check()

	s.Equal(http.StatusOK, rec.Code)
	s.Equal(HealthStatusUp, response.Status)
	s.Len(response.Components, 3)
	s.Equal(HealthStatusUp, response.Components["dynamodb"].Status)
	s.Equal(HealthStatusUp, response.Components["opensearch"].Status)
	s.Require().NotNil(response.Components["sqs"].QueueDepth)
	s.Equal(int64(7), *response.Components["sqs"].QueueDepth)
	s.NotEmpty(response.Time)
}

func (s *HealthCheckHandlerTestSuite) TestHealthCheck_SearchDown_IsDegraded() {
	s.storeRepo.EXPECT().Ping(gomock.Any()).Return(nil)
	s.searchRepo.EXPECT().Ping(gomock.Any()).Return(errors.New("cluster health request failed: red"))
	s.queueRepo.EXPECT().ApproximateDepth(gomock.Any()).Return(int64(0), nil)
	s.metrics.EXPECT().RecordGauge(services.MetricQueueDepth, float64(0), gomock.Any())

	rec, response := s.check()

	s.Equal(http.StatusServiceUnavailable, rec.Code)
	s.Equal(HealthStatusDegraded, response.Status)
	s.Equal(HealthStatusDown, response.Components["opensearch"].Status)
	s.Contains(response.Components["opensearch"].Error, "red")
	s.Equal(HealthStatusUp, response.Components["dynamodb"].Status)
}

func (s *HealthCheckHandlerTestSuite) TestHealthCheck_QueueDown_RecordsNoGauge() {
	s.storeRepo.EXPECT().Ping(gomock.Any()).Return(nil)
	s.searchRepo.EXPECT().Ping(gomock.Any()).Return(nil)
	s.queueRepo.EXPECT().ApproximateDepth(gomock.Any()).Return(int64(0), errors.New("AWS.SimpleQueueService.NonExistentQueue"))

	rec, response := s.check()

	s.Equal(http.StatusServiceUnavailable, rec.Code)
	s.Equal(HealthStatusDown, response.Components["sqs"].Status)
	s.Nil(response.Components["sqs"].QueueDepth)
}

func (s *HealthCheckHandlerTestSuite) TestHealthCheck_AllDown() {
	s.storeRepo.EXPECT().Ping(gomock.Any()).Return(errors.New("store down"))
	s.searchRepo.EXPECT().Ping(gomock.Any()).Return(errors.New("search down"))
	s.queueRepo.EXPECT().ApproximateDepth(gomock.Any()).Return(int64(0), errors.New("queue down"))

	rec, response := s.check()

	s.Equal(http.StatusServiceUnavailable, rec.Code)
	s.Equal(HealthStatusDegraded, response.Status)
	for name, component := range response.Components {
		s.Equal(HealthStatusDown, component.Status, name)
	}
}
