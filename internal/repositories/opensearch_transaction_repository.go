package repositories

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"activity-feed/internal/models"

	"github.com/opensearch-project/opensearch-go/v2/opensearchapi"
	"github.com/shopspring/decimal"
)

// tieBreakField orders search hits that share the same primary sort value.
const tieBreakField = "id"

// searchAmount writes the decimal as a bare JSON number so the index maps it
// as a double. Reads accept both numbers and quoted strings.
type searchAmount struct {
	decimal.Decimal
}

func (a searchAmount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal.String()), nil
}

// searchDocument is the OpenSearch layout of a transaction.
type searchDocument struct {
	UserID        string          `json:"userId"`
	SK            string          `json:"sk"`
	ID            string          `json:"id"`
	Product       string          `json:"product,omitempty"`
	Type          string          `json:"type,omitempty"`
	Status        string          `json:"status,omitempty"`
	Amount        searchAmount    `json:"amount"`
	Currency      string          `json:"currency,omitempty"`
	Description   string          `json:"description,omitempty"`
	OccurredAt    time.Time       `json:"occurredAt"`
	CreatedAt     time.Time       `json:"createdAt"`
	SourceService string          `json:"sourceService,omitempty"`
	EventID       string          `json:"eventId,omitempty"`
	TransactionID string          `json:"transactionId,omitempty"`
	Metadata      map[string]any  `json:"metadata,omitempty"`
}

func newSearchDocument(tx *models.Transaction) searchDocument {
	doc := searchDocument{
		UserID:        tx.UserID,
		SK:            tx.SK,
		ID:            tx.ID,
		Product:       string(tx.Product),
		Type:          string(tx.Type),
		Status:        string(tx.Status),
		Amount:        searchAmount{tx.Amount},
		Currency:      string(tx.Currency),
		Description:   tx.Description,
		OccurredAt:    tx.OccurredAt.UTC(),
		CreatedAt:     tx.CreatedAt.UTC(),
		SourceService: tx.SourceService,
		EventID:       tx.EventID,
		TransactionID: tx.TransactionID,
	}
	if tx.Metadata != "" {
		var metadata map[string]any
		if err := json.Unmarshal([]byte(tx.Metadata), &metadata); err == nil {
			doc.Metadata = metadata
		}
	}
	return doc
}

func (d searchDocument) toModel() models.Transaction {
	tx := models.Transaction{
		UserID:        d.UserID,
		SK:            d.SK,
		ID:            d.ID,
		Product:       models.Product(d.Product),
		Type:          models.TransactionType(d.Type),
		Status:        models.TransactionStatus(d.Status),
		Amount:        d.Amount.Decimal,
		Currency:      models.Currency(d.Currency),
		Description:   d.Description,
		OccurredAt:    d.OccurredAt,
		CreatedAt:     d.CreatedAt,
		SourceService: d.SourceService,
		EventID:       d.EventID,
		TransactionID: d.TransactionID,
	}
	if len(d.Metadata) > 0 {
		if raw, err := json.Marshal(d.Metadata); err == nil {
			tx.Metadata = string(raw)
		}
	}
	return tx
}

type searchResponse struct {
	Hits struct {
		Hits []struct {
			ID     string          `json:"_id"`
			Source json.RawMessage `json:"_source"`
			Sort   []any           `json:"sort"`
		} `json:"hits"`
	} `json:"hits"`
}

// OpenSearchTransactionRepository mirrors transactions into a search index
// for compound filtering and free-text queries.
type OpenSearchTransactionRepository struct {
	transport opensearchapi.Transport
	indexName string
}

func NewOpenSearchTransactionRepository(transport opensearchapi.Transport, indexName string) TransactionSearchRepositoryInterface {
	return &OpenSearchTransactionRepository{
		transport: transport,
		indexName: indexName,
	}
}

// Upsert indexes the transaction under its id, replacing any previous copy.
func (r *OpenSearchTransactionRepository) Upsert(ctx context.Context, transaction *models.Transaction) error {
	body, err := json.Marshal(newSearchDocument(transaction))
	if err != nil {
		return fmt.Errorf("failed to marshal search document: %w", err)
	}

	req := opensearchapi.IndexRequest{
		Index:      r.indexName,
		DocumentID: transaction.ID,
		Body:       bytes.NewReader(body),
	}
	res, err := req.Do(ctx, r.transport)
	if err != nil {
		return fmt.Errorf("index request failed: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("index request failed: %s", readErrorBody(res))
	}
	return nil
}

func (r *OpenSearchTransactionRepository) Search(ctx context.Context, query SearchQuery) (*SearchResult, error) {
	if query.FetchLimit <= 0 {
		return nil, errors.New("fetch limit must be positive")
	}

	body, err := json.Marshal(buildSearchBody(query))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal search body: %w", err)
	}

	req := opensearchapi.SearchRequest{
		Index: []string{r.indexName},
		Body:  bytes.NewReader(body),
	}
	res, err := req.Do(ctx, r.transport)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("search request failed: %s", readErrorBody(res))
	}

	decoder := json.NewDecoder(res.Body)
	decoder.UseNumber()
	var parsed searchResponse
	if err := decoder.Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	result := &SearchResult{Hits: make([]SearchHit, 0, len(parsed.Hits.Hits))}
	for _, hit := range parsed.Hits.Hits {
		var doc searchDocument
		if err := json.Unmarshal(hit.Source, &doc); err != nil {
			return nil, fmt.Errorf("failed to decode document %s: %w", hit.ID, err)
		}
		if doc.ID == "" {
			doc.ID = hit.ID
		}
		result.Hits = append(result.Hits, SearchHit{
			Transaction: doc.toModel(),
			SortValues:  toSortValues(hit.Sort),
		})
	}

	return result, nil
}

func (r *OpenSearchTransactionRepository) Ping(ctx context.Context) error {
	res, err := opensearchapi.ClusterHealthRequest{Index: []string{r.indexName}}.Do(ctx, r.transport)
	if err != nil {
		return fmt.Errorf("cluster health request failed: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("cluster health request failed: %s", readErrorBody(res))
	}
	return nil
}

func buildSearchBody(query SearchQuery) map[string]any {
	filters := make([]any, 0, 8)
	must := make([]any, 0, 1)
	f := query.Filter

	addTerm := func(field, value string) {
		if value != "" {
			filters = append(filters, map[string]any{"term": map[string]any{field: value}})
		}
	}
	addTerm("userId", f.UserID)
	addTerm("product", string(f.Product))
	addTerm("type", string(f.Type))
	addTerm("status", string(f.Status))
	addTerm("currency", string(f.Currency))

	if f.OccurredFrom != nil || f.OccurredTo != nil {
		bounds := map[string]any{}
		if f.OccurredFrom != nil {
			bounds["gte"] = f.OccurredFrom.UTC().Format(time.RFC3339Nano)
		}
		if f.OccurredTo != nil {
			bounds["lte"] = f.OccurredTo.UTC().Format(time.RFC3339Nano)
		}
		filters = append(filters, map[string]any{"range": map[string]any{"occurredAt": bounds}})
	}

	if f.MetadataField != "" && f.MetadataValue != "" {
		addTerm("metadata."+f.MetadataField+".keyword", f.MetadataValue)
	}

	if f.SearchText != "" {
		must = append(must, map[string]any{
			"multi_match": map[string]any{
				"query":  f.SearchText,
				"fields": []string{"description", "eventId", "transactionId"},
			},
		})
	}

	boolQuery := map[string]any{"filter": filters}
	if len(must) > 0 {
		boolQuery["must"] = must
	}

	sorts := make([]any, 0, len(query.Sort)+1)
	hasTieBreak := false
	for _, s := range query.Sort {
		order := "asc"
		if s.Descending {
			order = "desc"
		}
		sorts = append(sorts, map[string]any{s.Field: map[string]any{"order": order}})
		if s.Field == tieBreakField {
			hasTieBreak = true
		}
	}
	if !hasTieBreak {
		sorts = append(sorts, map[string]any{tieBreakField: map[string]any{"order": "asc"}})
	}

	body := map[string]any{
		"size":             query.FetchLimit,
		"query":            map[string]any{"bool": boolQuery},
		"sort":             sorts,
		"track_total_hits": false,
	}

	if len(query.SearchAfter) > 0 {
		after := make([]any, 0, len(query.SearchAfter))
		for _, v := range query.SearchAfter {
			switch {
			case v.Null:
				after = append(after, nil)
			case v.Numeric:
				after = append(after, json.Number(v.Value))
			default:
				after = append(after, v.Value)
			}
		}
		body["search_after"] = after
	}

	return body
}

func toSortValues(raw []any) []SortValue {
	values := make([]SortValue, 0, len(raw))
	for _, v := range raw {
		switch typed := v.(type) {
		case json.Number:
			values = append(values, SortValue{Value: typed.String(), Numeric: true})
		case string:
			values = append(values, SortValue{Value: typed})
		case bool:
			values = append(values, SortValue{Value: fmt.Sprintf("%t", typed)})
		case nil:
			values = append(values, SortValue{Null: true})
		default:
			values = append(values, SortValue{Value: fmt.Sprint(typed)})
		}
	}
	return values
}

func readErrorBody(res *opensearchapi.Response) string {
	data, err := io.ReadAll(io.LimitReader(res.Body, 4096))
	if err != nil || len(data) == 0 {
		return res.Status()
	}
	return fmt.Sprintf("%s: %s", res.Status(), string(data))
}
