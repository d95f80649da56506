package repositories_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"activity-feed/internal/models"
	"activity-feed/internal/repositories"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// transportFunc lets a test answer OpenSearch requests in-process.
type transportFunc func(req *http.Request) (*http.Response, error)

func (f transportFunc) Perform(req *http.Request) (*http.Response, error) {
	return f(req)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

type OpenSearchTransactionRepositoryTestSuite struct {
	suite.Suite
	ctx      context.Context
	requests []*http.Request
	bodies   []map[string]any
	respond  func(req *http.Request) *http.Response
	repo     repositories.TransactionSearchRepositoryInterface
}

func TestOpenSearchTransactionRepositorySuite(t *testing.T) {
	suite.Run(t, new(OpenSearchTransactionRepositoryTestSuite))
}

func (s *OpenSearchTransactionRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.requests = nil
	s.bodies = nil
	s.respond = func(*http.Request) *http.Response {
		return jsonResponse(http.StatusOK, `{}`)
	}

	transport := transportFunc(func(req *http.Request) (*http.Response, error) {
		s.requests = append(s.requests, req)
		if req.Body != nil {
			raw, err := io.ReadAll(req.Body)
			s.Require().NoError(err)
			var body map[string]any
			if len(raw) > 0 {
				s.Require().NoError(json.Unmarshal(raw, &body))
			}
			s.bodies = append(s.bodies, body)
		} else {
			s.bodies = append(s.bodies, nil)
		}
		return s.respond(req), nil
	})
	s.repo = repositories.NewOpenSearchTransactionRepository(transport, "activity_items")
}

// Test: Upsert - Indexes Document Under Transaction Id
func (s *OpenSearchTransactionRepositoryTestSuite) TestOpenSearchRepository_Upsert_IndexesDocumentById() {
	tx := &models.Transaction{
		UserID:      "u1",
		SK:          "2024-01-01T00:00:00Z#t1",
		ID:          "t1",
		Product:     models.ProductCards,
		Amount:      decimal.RequireFromString("50"),
		Currency:    models.CurrencyUSD,
		Description: "coffee",
		OccurredAt:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Metadata:    `{"merchant":"blue bottle"}`,
	}
	s.respond = func(*http.Request) *http.Response {
		return jsonResponse(http.StatusCreated, `{"result":"created"}`)
	}

	err := s.repo.Upsert(s.ctx, tx)

	s.Require().NoError(err)
	s.Require().Len(s.requests, 1)
	s.Equal(http.MethodPut, s.requests[0].Method)
	s.Equal("/activity_items/_doc/t1", s.requests[0].URL.Path)
	s.Equal("u1", s.bodies[0]["userId"])
	s.Equal("CARDS", s.bodies[0]["product"])
	s.Equal(float64(50), s.bodies[0]["amount"])
	s.Equal(map[string]any{"merchant": "blue bottle"}, s.bodies[0]["metadata"])
}

// Test: Upsert - Amount - Written As A Bare Number
func (s *OpenSearchTransactionRepositoryTestSuite) TestOpenSearchRepository_Upsert_AmountIsNumeric() {
	var raw string
	s.repo = repositories.NewOpenSearchTransactionRepository(transportFunc(func(req *http.Request) (*http.Response, error) {
		data, err := io.ReadAll(req.Body)
		s.Require().NoError(err)
		raw = string(data)
		return jsonResponse(http.StatusOK, `{"result":"updated"}`), nil
	}), "activity_items")

	err := s.repo.Upsert(s.ctx, &models.Transaction{ID: "t1", UserID: "u1", Amount: decimal.RequireFromString("1234.50")})

	s.Require().NoError(err)
	s.Contains(raw, `"amount":1234.5`)
	s.NotContains(raw, `"amount":"`)
}

// Test: Upsert - Error Status - Returns Error
func (s *OpenSearchTransactionRepositoryTestSuite) TestOpenSearchRepository_Upsert_ErrorStatus_ReturnsError() {
	s.respond = func(*http.Request) *http.Response {
		return jsonResponse(http.StatusServiceUnavailable, `{"error":"cluster_block_exception"}`)
	}

	err := s.repo.Upsert(s.ctx, &models.Transaction{ID: "t1", UserID: "u1"})

	s.Error(err)
	s.Contains(err.Error(), "cluster_block_exception")
}

// Test: Search - Compound Filter - Builds Bool Query With Tie Break
func (s *OpenSearchTransactionRepositoryTestSuite) TestOpenSearchRepository_Search_CompoundFilter_BuildsQuery() {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC)
	s.respond = func(*http.Request) *http.Response {
		return jsonResponse(http.StatusOK, `{"hits":{"hits":[]}}`)
	}

	_, err := s.repo.Search(s.ctx, repositories.SearchQuery{
		Filter: repositories.SearchFilter{
			UserID:        "u1",
			Product:       models.ProductCrypto,
			Status:        models.TransactionStatusCompleted,
			OccurredFrom:  &from,
			OccurredTo:    &to,
			SearchText:    "coffee",
			MetadataField: "merchant",
			MetadataValue: "blue bottle",
		},
		Sort:        []repositories.SortField{{Field: "amount", Descending: true}},
		SearchAfter: []repositories.SortValue{{Value: "12.5", Numeric: true}, {Value: "t7"}},
		FetchLimit:  21,
	})

	s.Require().NoError(err)
	s.Require().Len(s.requests, 1)
	s.Equal("/activity_items/_search", s.requests[0].URL.Path)

	body := s.bodies[0]
	s.Equal(float64(21), body["size"])
	s.Equal([]any{float64(12.5), "t7"}, body["search_after"])
	s.Equal([]any{
		map[string]any{"amount": map[string]any{"order": "desc"}},
		map[string]any{"id": map[string]any{"order": "asc"}},
	}, body["sort"])

	boolQuery := body["query"].(map[string]any)["bool"].(map[string]any)
	filters := boolQuery["filter"].([]any)
	s.Contains(filters, map[string]any{"term": map[string]any{"userId": "u1"}})
	s.Contains(filters, map[string]any{"term": map[string]any{"product": "CRYPTO"}})
	s.Contains(filters, map[string]any{"term": map[string]any{"status": "COMPLETED"}})
	s.Contains(filters, map[string]any{"term": map[string]any{"metadata.merchant.keyword": "blue bottle"}})
	s.Contains(filters, map[string]any{"range": map[string]any{"occurredAt": map[string]any{
		"gte": "2024-01-01T00:00:00Z",
		"lte": "2024-01-31T23:59:59Z",
	}}})
	s.Len(filters, 5)

	must := boolQuery["must"].([]any)
	s.Equal([]any{map[string]any{"multi_match": map[string]any{
		"query":  "coffee",
		"fields": []any{"description", "eventId", "transactionId"},
	}}}, must)
}

// Test: Search - Hits - Returns Records With Typed Sort Values
func (s *OpenSearchTransactionRepositoryTestSuite) TestOpenSearchRepository_Search_Hits_ReturnsSortValues() {
	s.respond = func(*http.Request) *http.Response {
		return jsonResponse(http.StatusOK, `{"hits":{"hits":[
			{"_id":"t1","_source":{"userId":"u1","sk":"2024-01-01T00:00:00Z#t1","id":"t1","amount":"50","currency":"USD","occurredAt":"2024-01-01T00:00:00Z","createdAt":"2024-01-01T00:00:01Z","metadata":{"merchant":"x"}},"sort":[1704067200000,"t1"]},
			{"_id":"t2","_source":{"userId":"u1","sk":"2023-12-31T00:00:00Z#t2","amount":12.75,"occurredAt":"2023-12-31T00:00:00Z","createdAt":"2023-12-31T00:00:01Z"},"sort":[1703980800000,"t2"]}
		]}}`)
	}

	result, err := s.repo.Search(s.ctx, repositories.SearchQuery{
		Filter:     repositories.SearchFilter{UserID: "u1"},
		Sort:       []repositories.SortField{{Field: "occurredAt"}},
		FetchLimit: 2,
	})

	s.Require().NoError(err)
	s.Require().Len(result.Hits, 2)

	first := result.Hits[0]
	s.Equal("t1", first.Transaction.ID)
	s.True(decimal.RequireFromString("50").Equal(first.Transaction.Amount))
	s.Equal(`{"merchant":"x"}`, first.Transaction.Metadata)
	s.Equal([]repositories.SortValue{{Value: "1704067200000", Numeric: true}, {Value: "t1"}}, first.SortValues)

	second := result.Hits[1]
	s.Equal("t2", second.Transaction.ID)
	s.True(decimal.RequireFromString("12.75").Equal(second.Transaction.Amount))
	s.Empty(second.Transaction.Metadata)

	body := s.bodies[0]
	s.NotContains(body, "search_after")
	s.NotContains(body["query"].(map[string]any)["bool"], "must")
}

// Test: Search - Missing Sort Field - Null Round-Trips Into search_after
func (s *OpenSearchTransactionRepositoryTestSuite) TestOpenSearchRepository_Search_NullSortValue_RoundTrips() {
	s.respond = func(*http.Request) *http.Response {
		return jsonResponse(http.StatusOK, `{"hits":{"hits":[
			{"_id":"t9","_source":{"userId":"u1","id":"t9","amount":5,"occurredAt":"2024-01-01T00:00:00Z","createdAt":"2024-01-01T00:00:01Z"},"sort":[null,"t9"]}
		]}}`)
	}

	result, err := s.repo.Search(s.ctx, repositories.SearchQuery{
		Filter:      repositories.SearchFilter{UserID: "u1"},
		Sort:        []repositories.SortField{{Field: "product"}},
		SearchAfter: []repositories.SortValue{{Null: true}, {Value: "t8"}},
		FetchLimit:  2,
	})

	s.Require().NoError(err)
	s.Require().Len(result.Hits, 1)
	s.Equal([]repositories.SortValue{{Null: true}, {Value: "t9"}}, result.Hits[0].SortValues)
	s.Equal([]any{nil, "t8"}, s.bodies[0]["search_after"])
}

// Test: Search - Error Status - Returns Error
func (s *OpenSearchTransactionRepositoryTestSuite) TestOpenSearchRepository_Search_ErrorStatus_ReturnsError() {
	s.respond = func(*http.Request) *http.Response {
		return jsonResponse(http.StatusBadRequest, `{"error":{"type":"search_phase_execution_exception"}}`)
	}

	result, err := s.repo.Search(s.ctx, repositories.SearchQuery{FetchLimit: 5})

	s.Nil(result)
	s.Error(err)
}

// Test: Ping - Cluster Health OK - Returns Nil
func (s *OpenSearchTransactionRepositoryTestSuite) TestOpenSearchRepository_Ping_Healthy_ReturnsNil() {
	s.respond = func(*http.Request) *http.Response {
		return jsonResponse(http.StatusOK, `{"status":"green"}`)
	}

	s.NoError(s.repo.Ping(s.ctx))
	s.Require().Len(s.requests, 1)
	s.Equal("/_cluster/health/activity_items", s.requests[0].URL.Path)
}
