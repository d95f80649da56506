package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"activity-feed/internal/models"
	"activity-feed/internal/repositories"
	"activity-feed/internal/repositories/repository_mocks"
	"activity-feed/internal/services"
	"activity-feed/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type TransactionEventProcessorTestSuite struct {
	suite.Suite
	ctx            context.Context
	ctrl           *gomock.Controller
	processor      services.TransactionEventProcessorInterface
	storeRepo      *repository_mocks.MockTransactionStoreRepositoryInterface
	searchRepo     *repository_mocks.MockTransactionSearchRepositoryInterface
	auditLogger    *service_mocks.MockAuditLoggerInterface
	metrics        *service_mocks.MockMetricsRecorderInterface
	circuitBreaker *service_mocks.MockCircuitBreakerInterface
}

func TestTransactionEventProcessorSuite(t *testing.T) {
	suite.Run(t, new(TransactionEventProcessorTestSuite))
}

func (s *TransactionEventProcessorTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())

	s.storeRepo = repository_mocks.NewMockTransactionStoreRepositoryInterface(s.ctrl)
	s.searchRepo = repository_mocks.NewMockTransactionSearchRepositoryInterface(s.ctrl)
	s.auditLogger = service_mocks.NewMockAuditLoggerInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.circuitBreaker = service_mocks.NewMockCircuitBreakerInterface(s.ctrl)

	s.metrics.EXPECT().IncrementCounter(gomock.Any(), gomock.Any()).AnyTimes()
	s.metrics.EXPECT().RecordProcessingTime(gomock.Any(), gomock.Any()).AnyTimes()

	s.processor = services.NewTransactionEventProcessor(
		s.storeRepo,
		s.searchRepo,
		s.auditLogger,
		s.metrics,
		s.circuitBreaker,
	)
}

func (s *TransactionEventProcessorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *TransactionEventProcessorTestSuite) newEvent() *models.TransactionEvent {
	occurredAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return &models.TransactionEvent{
		EventID:       gofakeit.UUID(),
		EventType:     "TRANSACTION_CREATED",
		SourceService: "payments-service",
		Payload: &models.TransactionPayload{
			TransactionID: "t1",
			UserID:        "u1",
			Product:       models.ProductPayments,
			Type:          models.TransactionTypePayment,
			Status:        models.TransactionStatusCompleted,
			Amount:        decimal.RequireFromString("12.50"),
			Currency:      models.CurrencyUSD,
			Description:   gofakeit.Sentence(4),
			OccurredAt:    &occurredAt,
			Metadata:      map[string]any{"merchant": "acme"},
		},
	}
}

func (s *TransactionEventProcessorTestSuite) TestProcess_NewTransaction_StoresAndIndexes() {
	event := s.newEvent()

	var stored *models.Transaction
	s.storeRepo.EXPECT().Put(s.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, transaction *models.Transaction) error {
			stored = transaction
			return nil
		},
	)
	s.auditLogger.EXPECT().LogTransactionStored(s.ctx, "t1", "u1", "2024-01-01T00:00:00Z#t1")
	s.circuitBreaker.EXPECT().IsOpen().Return(false)
	s.searchRepo.EXPECT().Upsert(s.ctx, gomock.Any()).Return(nil)
	s.circuitBreaker.EXPECT().RecordSuccess()

	err := s.processor.Process(s.ctx, event)

	s.Require().NoError(err)
	s.Require().NotNil(stored)
	s.Equal("t1", stored.ID)
	s.Equal("u1", stored.UserID)
	s.Equal("2024-01-01T00:00:00Z#t1", stored.SK)
	s.Equal(event.EventID, stored.EventID)
	s.Equal("payments-service", stored.SourceService)
	s.Equal(`{"merchant":"acme"}`, stored.Metadata)
	s.True(stored.Amount.Equal(decimal.RequireFromString("12.50")))
	s.False(stored.CreatedAt.IsZero())
}

func (s *TransactionEventProcessorTestSuite) TestProcess_MissingTransactionID_UsesEventID() {
	event := s.newEvent()
	event.Payload.TransactionID = ""

	s.storeRepo.EXPECT().Put(s.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, transaction *models.Transaction) error {
			s.Equal(event.EventID, transaction.ID)
			s.Equal("2024-01-01T00:00:00Z#"+event.EventID, transaction.SK)
			return nil
		},
	)
	s.auditLogger.EXPECT().LogTransactionStored(gomock.Any(), event.EventID, "u1", gomock.Any())
	s.circuitBreaker.EXPECT().IsOpen().Return(false)
	s.searchRepo.EXPECT().Upsert(s.ctx, gomock.Any()).Return(nil)
	s.circuitBreaker.EXPECT().RecordSuccess()

	s.Require().NoError(s.processor.Process(s.ctx, event))
}

func (s *TransactionEventProcessorTestSuite) TestProcess_MissingOccurredAt_UsesProcessingTime() {
	event := s.newEvent()
	event.Payload.OccurredAt = nil
	before := time.Now().UTC().Add(-time.Second)

	s.storeRepo.EXPECT().Put(s.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, transaction *models.Transaction) error {
			s.True(transaction.OccurredAt.After(before))
			s.Equal(transaction.CreatedAt, transaction.OccurredAt)
			s.Equal(models.BuildSortKey(transaction.OccurredAt, "t1"), transaction.SK)
			return nil
		},
	)
	s.auditLogger.EXPECT().LogTransactionStored(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
	s.circuitBreaker.EXPECT().IsOpen().Return(false)
	s.searchRepo.EXPECT().Upsert(s.ctx, gomock.Any()).Return(nil)
	s.circuitBreaker.EXPECT().RecordSuccess()

	s.Require().NoError(s.processor.Process(s.ctx, event))
}

func (s *TransactionEventProcessorTestSuite) TestProcess_Duplicate_SucceedsAndStillIndexes() {
	event := s.newEvent()

	s.storeRepo.EXPECT().Put(s.ctx, gomock.Any()).Return(repositories.ErrTransactionAlreadyExists)
	s.auditLogger.EXPECT().LogDuplicateTransaction(s.ctx, "t1", "u1", "2024-01-01T00:00:00Z#t1")
	s.circuitBreaker.EXPECT().IsOpen().Return(false)
	s.searchRepo.EXPECT().Upsert(s.ctx, gomock.Any()).Return(nil)
	s.circuitBreaker.EXPECT().RecordSuccess()

	s.NoError(s.processor.Process(s.ctx, event))
}

func (s *TransactionEventProcessorTestSuite) TestProcess_StoreFailure_ReturnsErrorWithoutIndexing() {
	event := s.newEvent()
	storeErr := errors.New("throttled")

	s.storeRepo.EXPECT().Put(s.ctx, gomock.Any()).Return(storeErr)

	err := s.processor.Process(s.ctx, event)

	s.Require().Error(err)
	s.ErrorIs(err, storeErr)
}

func (s *TransactionEventProcessorTestSuite) TestProcess_IndexFailure_IsSwallowed() {
	event := s.newEvent()

	s.storeRepo.EXPECT().Put(s.ctx, gomock.Any()).Return(nil)
	s.auditLogger.EXPECT().LogTransactionStored(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
	s.circuitBreaker.EXPECT().IsOpen().Return(false)
	s.searchRepo.EXPECT().Upsert(s.ctx, gomock.Any()).Return(errors.New("index unavailable"))
	s.circuitBreaker.EXPECT().RecordFailure()
	s.auditLogger.EXPECT().LogIndexWriteFailed(s.ctx, "t1", "index unavailable")

	s.NoError(s.processor.Process(s.ctx, event))
}

func (s *TransactionEventProcessorTestSuite) TestProcess_CircuitOpen_SkipsIndexWrite() {
	event := s.newEvent()

	s.storeRepo.EXPECT().Put(s.ctx, gomock.Any()).Return(nil)
	s.auditLogger.EXPECT().LogTransactionStored(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
	s.circuitBreaker.EXPECT().IsOpen().Return(true)
	s.auditLogger.EXPECT().LogIndexWriteSkipped(s.ctx, "t1", services.ErrCircuitBreakerOpen.Error())
	s.searchRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Times(0)

	s.NoError(s.processor.Process(s.ctx, event))
}

func (s *TransactionEventProcessorTestSuite) TestProcess_InvalidEvents_ReturnErrInvalidEvent() {
	testCases := []struct {
		name   string
		mutate func(event *models.TransactionEvent)
	}{
		{name: "missing payload", mutate: func(e *models.TransactionEvent) { e.Payload = nil }},
		{name: "missing user", mutate: func(e *models.TransactionEvent) { e.Payload.UserID = "" }},
		{name: "missing ids", mutate: func(e *models.TransactionEvent) {
			e.EventID = ""
			e.Payload.TransactionID = ""
		}},
		{name: "unknown product", mutate: func(e *models.TransactionEvent) { e.Payload.Product = "MORTGAGES" }},
		{name: "unknown type", mutate: func(e *models.TransactionEvent) { e.Payload.Type = "GIFT" }},
		{name: "unknown status", mutate: func(e *models.TransactionEvent) { e.Payload.Status = "LOST" }},
		{name: "unknown currency", mutate: func(e *models.TransactionEvent) { e.Payload.Currency = "XYZ" }},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			event := s.newEvent()
			tc.mutate(event)

			err := s.processor.Process(s.ctx, event)

			s.ErrorIs(err, services.ErrInvalidEvent)
		})
	}
}

func (s *TransactionEventProcessorTestSuite) TestProcess_NilEvent_ReturnsErrInvalidEvent() {
	s.ErrorIs(s.processor.Process(s.ctx, nil), services.ErrInvalidEvent)
}

func (s *TransactionEventProcessorTestSuite) TestProcess_NoMetadata_LeavesMetadataEmpty() {
	event := s.newEvent()
	event.Payload.Metadata = nil

	s.storeRepo.EXPECT().Put(s.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, transaction *models.Transaction) error {
			s.Empty(transaction.Metadata)
			return nil
		},
	)
	s.auditLogger.EXPECT().LogTransactionStored(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
	s.circuitBreaker.EXPECT().IsOpen().Return(false)
	s.searchRepo.EXPECT().Upsert(s.ctx, gomock.Any()).Return(nil)
	s.circuitBreaker.EXPECT().RecordSuccess()

	s.NoError(s.processor.Process(s.ctx, event))
}

func (s *TransactionEventProcessorTestSuite) TestProcess_UnserializableMetadata_IsDropped() {
	event := s.newEvent()
	event.Payload.Metadata = map[string]any{"callback": func() {}}

	s.storeRepo.EXPECT().Put(s.ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, transaction *models.Transaction) error {
			s.Empty(transaction.Metadata)
			return nil
		},
	)
	s.auditLogger.EXPECT().LogTransactionStored(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
	s.circuitBreaker.EXPECT().IsOpen().Return(false)
	s.searchRepo.EXPECT().Upsert(s.ctx, gomock.Any()).Return(nil)
	s.circuitBreaker.EXPECT().RecordSuccess()

	s.NoError(s.processor.Process(s.ctx, event))
}
