package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"activity-feed/internal/models"
	"activity-feed/internal/pagination"
	"activity-feed/internal/repositories"
)

const (
	storeCursorUserField = "user_id"
	storeCursorSortField = "sk"
	searchCursorIDField  = "id"

	sortKeyLowerBound = "1970-01-01T00:00:00Z"
	sortKeyUpperBound = "9999-12-31T23:59:59Z"
	// sortKeyUpperSuffix sorts after the separator and every id character, so
	// an upper bound of "<ts>~" keeps every transaction at <ts>.
	sortKeyUpperSuffix = "~"
)

var (
	ErrStoreUnavailable  = errors.New("transaction store unavailable")
	ErrSearchUnavailable = errors.New("transaction search unavailable")
)

// TransactionQueryRouter sends owner-only, newest-first queries to the
// primary store and everything else to the search index.
type TransactionQueryRouter struct {
	storeRepo  repositories.TransactionStoreRepositoryInterface
	searchRepo repositories.TransactionSearchRepositoryInterface
	metrics    MetricsRecorderInterface
	logger     *slog.Logger
}

func NewTransactionQueryRouter(
	storeRepo repositories.TransactionStoreRepositoryInterface,
	searchRepo repositories.TransactionSearchRepositoryInterface,
	metrics MetricsRecorderInterface,
) TransactionQueryRouterInterface {
	return &TransactionQueryRouter{
		storeRepo:  storeRepo,
		searchRepo: searchRepo,
		metrics:    metrics,
		logger:     slog.Default(),
	}
}

// UsesPrimaryStore reports whether filters can be answered by a key query
// on the primary store.
func UsesPrimaryStore(filters models.TransactionFilters) bool {
	return filters.UserID != "" && !filters.HasAttributeFilters() && filters.HasDefaultOrdering()
}

func (r *TransactionQueryRouter) Route(ctx context.Context, filters models.TransactionFilters) (*models.CursorPage[models.Transaction], error) {
	filters.ApplyDefaults()

	startTime := time.Now()
	if UsesPrimaryStore(filters) {
		r.metrics.IncrementCounter(MetricQueryRouted, map[string]string{"backend": string(pagination.BackendStore)})
		page, err := r.queryStore(ctx, filters)
		r.metrics.RecordProcessingTime(MetricQueryStore, time.Since(startTime))
		return page, err
	}

	r.metrics.IncrementCounter(MetricQueryRouted, map[string]string{"backend": string(pagination.BackendSearch)})
	page, err := r.querySearch(ctx, filters)
	r.metrics.RecordProcessingTime(MetricQuerySearch, time.Since(startTime))
	return page, err
}

func (r *TransactionQueryRouter) queryStore(ctx context.Context, filters models.TransactionFilters) (*models.CursorPage[models.Transaction], error) {
	query := repositories.OwnerQuery{
		UserID:     filters.UserID,
		FetchLimit: filters.Limit + 1,
	}

	if filters.HasDateRange() {
		query.LowerSK = sortKeyLowerBound
		if filters.StartDate != nil {
			query.LowerSK = models.FormatSortKeyTime(*filters.StartDate)
		}
		query.UpperSK = sortKeyUpperBound
		if filters.EndDate != nil {
			query.UpperSK = models.FormatSortKeyTime(*filters.EndDate)
		}
		query.UpperSK += sortKeyUpperSuffix
	}

	if filters.Cursor != "" {
		cursor, err := pagination.Decode(filters.Cursor, pagination.BackendStore, storeCursorUserField, storeCursorSortField)
		if err != nil {
			return nil, err
		}
		owner, _ := cursor.Value(storeCursorUserField)
		if owner != filters.UserID {
			return nil, fmt.Errorf("%w: cursor belongs to another user", pagination.ErrInvalidCursor)
		}
		sk, _ := cursor.Value(storeCursorSortField)
		if owner == "" || sk == "" {
			return nil, fmt.Errorf("%w: store cursor has a null position", pagination.ErrInvalidCursor)
		}
		query.ExclusiveStartKey = &repositories.StoreKey{UserID: owner, SK: sk}
	}

	result, err := r.storeRepo.QueryByOwner(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: query for user %s: %w", ErrStoreUnavailable, filters.UserID, err)
	}

	items, hasMore := pagination.Trim(result.Items, filters.Limit)
	page := &models.CursorPage[models.Transaction]{Items: items}
	if hasMore {
		last := items[len(items)-1]
		page.NextCursor, err = pagination.Encode(pagination.Cursor{
			Backend: pagination.BackendStore,
			Positions: []pagination.Position{
				{Field: storeCursorUserField, Value: last.UserID},
				{Field: storeCursorSortField, Value: last.SK},
			},
		})
		if err != nil {
			return nil, err
		}
	}

	return page, nil
}

func (r *TransactionQueryRouter) querySearch(ctx context.Context, filters models.TransactionFilters) (*models.CursorPage[models.Transaction], error) {
	query := repositories.SearchQuery{
		Filter: repositories.SearchFilter{
			UserID:        filters.UserID,
			Product:       filters.Product,
			Type:          filters.Type,
			Status:        filters.Status,
			Currency:      filters.Currency,
			OccurredFrom:  filters.StartDate,
			OccurredTo:    filters.EndDate,
			SearchText:    filters.SearchText,
			MetadataField: filters.MetadataField,
			MetadataValue: filters.MetadataValue,
		},
		Sort: []repositories.SortField{
			{Field: filters.SortBy, Descending: filters.SortDirection == models.SortDirectionDesc},
		},
		FetchLimit: filters.Limit + 1,
	}

	if filters.Cursor != "" {
		cursor, err := pagination.Decode(filters.Cursor, pagination.BackendSearch, filters.SortBy, searchCursorIDField)
		if err != nil {
			return nil, err
		}
		for _, position := range cursor.Positions {
			query.SearchAfter = append(query.SearchAfter, repositories.SortValue{
				Value:   position.Value,
				Numeric: position.Numeric,
				Null:    position.Null,
			})
		}
	}

	result, err := r.searchRepo.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSearchUnavailable, err)
	}

	hits, hasMore := pagination.Trim(result.Hits, filters.Limit)
	page := &models.CursorPage[models.Transaction]{Items: make([]models.Transaction, 0, len(hits))}
	for _, hit := range hits {
		page.Items = append(page.Items, hit.Transaction)
	}

	if hasMore {
		last := hits[len(hits)-1]
		if len(last.SortValues) != 2 {
			r.logger.ErrorContext(ctx, "search hit is missing sort values",
				slog.String("transaction_id", last.Transaction.ID),
				slog.Int("sort_values", len(last.SortValues)),
			)
			return nil, fmt.Errorf("search hit %s returned %d sort values", last.Transaction.ID, len(last.SortValues))
		}
		fields := []string{filters.SortBy, searchCursorIDField}
		positions := make([]pagination.Position, 0, len(fields))
		for i, field := range fields {
			positions = append(positions, pagination.Position{
				Field:   field,
				Value:   last.SortValues[i].Value,
				Numeric: last.SortValues[i].Numeric,
				Null:    last.SortValues[i].Null,
			})
		}
		page.NextCursor, err = pagination.Encode(pagination.Cursor{Backend: pagination.BackendSearch, Positions: positions})
		if err != nil {
			return nil, err
		}
	}

	return page, nil
}
