package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ResponseTestSuite struct {
	suite.Suite
	traceID string
}

func (s *ResponseTestSuite) SetupTest() {
	s.traceID = "550e8400-e29b-41d4-a716-446655440000"
}

func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

func (s *ResponseTestSuite) TestNewErrorResponse_BasicUsage() {
	response := NewErrorResponse(TransactionNotFound, s.traceID)

	s.Equal("TRANSACTION_001", response.Error.Code)
	s.Equal("Transaction not found", response.Error.Message)
	s.Equal(s.traceID, response.Error.TraceID)
	s.Empty(response.Error.Details)
}

func (s *ResponseTestSuite) TestNewErrorResponse_WithOptions() {
	response := NewErrorResponse(
		PaginationInvalidCursor,
		s.traceID,
		WithMessage("cursor was issued for a different query"),
		WithDetails("cursor: unknown field"),
	)

	s.Equal("PAGINATION_001", response.Error.Code)
	s.Equal("cursor was issued for a different query", response.Error.Message)
	s.Equal([]string{"cursor: unknown field"}, response.Error.Details)
}

func (s *ResponseTestSuite) TestWithDetails_LastInvocationWins() {
	response := NewErrorResponse(
		ValidationGeneral,
		s.traceID,
		WithDetails("detail1", "detail2"),
		WithDetails("detail3"),
	)

	s.Equal([]string{"detail3"}, response.Error.Details)
}

func (s *ResponseTestSuite) TestNewValidationError_WithFieldErrors() {
	response := NewValidationError(map[string]string{
		"limit":    "must be at most 100",
		"currency": "must be a supported currency",
	}, s.traceID)

	s.Equal("VALIDATION_001", response.Error.Code)
	s.Len(response.Error.Details, 2)
	s.Contains(response.Error.Details, "limit: must be at most 100")
	s.Contains(response.Error.Details, "currency: must be a supported currency")
}

func (s *ResponseTestSuite) TestNewValidationErrorFromList() {
	details := []string{"startDate: invalid date"}

	response := NewValidationErrorFromList(details, s.traceID)

	s.Equal("VALIDATION_001", response.Error.Code)
	s.Equal(details, response.Error.Details)
}

func (s *ResponseTestSuite) TestWrapSystemError_HidesInternalDetails() {
	internalErr := errors.New("ResourceNotFoundException: table activity_feed not found")

	response, originalErr := WrapSystemError(internalErr, s.traceID)

	s.Equal("SYSTEM_001", response.Error.Code)
	s.NotContains(response.Error.Message, "activity_feed")
	s.Empty(response.Error.Details)
	s.Equal(internalErr, originalErr)
}

func (s *ResponseTestSuite) TestWrapStoreError() {
	storeErr := errors.New("ProvisionedThroughputExceededException")

	response, originalErr := WrapStoreError(storeErr, s.traceID)

	s.Equal("SYSTEM_002", response.Error.Code)
	s.Equal("Transaction store error", response.Error.Message)
	s.Equal(storeErr, originalErr)
}

func (s *ResponseTestSuite) TestWrapSearchError() {
	searchErr := errors.New("cluster_block_exception")

	response, originalErr := WrapSearchError(searchErr, s.traceID)

	s.Equal("SYSTEM_007", response.Error.Code)
	s.Equal(http.StatusServiceUnavailable, response.GetHTTPStatus())
	s.Equal(searchErr, originalErr)
}

func (s *ResponseTestSuite) TestToJSON_MatchesAPIShape() {
	response := NewErrorResponse(ValidationGeneral, s.traceID, WithDetails("limit: out of range"))

	jsonBytes, err := response.ToJSON()
	s.Require().NoError(err)

	var jsonMap map[string]interface{}
	s.Require().NoError(json.Unmarshal(jsonBytes, &jsonMap))

	errorObj := jsonMap["error"].(map[string]interface{})
	s.Equal("VALIDATION_001", errorObj["code"])
	s.Equal(s.traceID, errorObj["trace_id"])
	s.Contains(errorObj, "message")
	s.IsType([]interface{}{}, errorObj["details"])
}

func (s *ResponseTestSuite) TestToJSON_EmptyDetailsOmitted() {
	jsonBytes, err := NewErrorResponse(TransactionNotFound, s.traceID).ToJSON()
	s.Require().NoError(err)

	var jsonMap map[string]interface{}
	s.Require().NoError(json.Unmarshal(jsonBytes, &jsonMap))

	_, hasDetails := jsonMap["error"].(map[string]interface{})["details"]
	s.False(hasDetails)
}

func (s *ResponseTestSuite) TestGetHTTPStatus_AllErrorCodes() {
	testCases := []struct {
		code           ErrorCode
		expectedStatus int
	}{
		{ValidationGeneral, http.StatusBadRequest},
		{ValidationRequiredField, http.StatusBadRequest},
		{ValidationInvalidFormat, http.StatusBadRequest},
		{ValidationOutOfRange, http.StatusBadRequest},
		{ValidationInvalidDate, http.StatusBadRequest},
		{ValidationInvalidFilter, http.StatusBadRequest},
		{PaginationInvalidCursor, http.StatusBadRequest},
		{TransactionNotFound, http.StatusNotFound},
		{SystemRateLimitExceeded, http.StatusTooManyRequests},
		{SystemServiceUnavailable, http.StatusServiceUnavailable},
		{SystemSearchError, http.StatusServiceUnavailable},
		{SystemInternalError, http.StatusInternalServerError},
		{SystemStoreError, http.StatusInternalServerError},
		{SystemConfigurationError, http.StatusInternalServerError},
		{SystemUnexpectedError, http.StatusInternalServerError},
		{"UNKNOWN_999", http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Equal(tc.expectedStatus, GetHTTPStatus(tc.code))
		})
	}
}

func (s *ResponseTestSuite) TestClientAndServerErrorClassification() {
	s.True(NewErrorResponse(PaginationInvalidCursor, s.traceID).IsClientError())
	s.False(NewErrorResponse(PaginationInvalidCursor, s.traceID).IsServerError())
	s.True(NewErrorResponse(SystemStoreError, s.traceID).IsServerError())
	s.False(NewErrorResponse(SystemStoreError, s.traceID).IsClientError())
}

func (s *ResponseTestSuite) TestString_FormatsCorrectly() {
	str := NewErrorResponse(TransactionNotFound, s.traceID).String()

	s.Contains(str, "TRANSACTION_001")
	s.Contains(str, "Transaction not found")
	s.Contains(str, s.traceID)
}
