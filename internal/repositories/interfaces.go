package repositories

import (
	"context"
	"errors"
	"time"

	"activity-feed/internal/models"
)

var (
	ErrTransactionNotFound      = errors.New("transaction not found")
	ErrTransactionAlreadyExists = errors.New("transaction already exists")
)

// StoreKey is the primary key of a record in the primary store.
type StoreKey struct {
	UserID string
	SK     string
}

// OwnerQuery selects a user's records in sort key order, newest first.
// LowerSK and UpperSK bound the sort key inclusively when both are set.
type OwnerQuery struct {
	UserID            string
	LowerSK           string
	UpperSK           string
	ExclusiveStartKey *StoreKey
	FetchLimit        int
}

// OwnerQueryResult holds the records found, plus the key to resume from
// when the partition has more records.
type OwnerQueryResult struct {
	Items            []models.Transaction
	LastEvaluatedKey *StoreKey
}

// SearchFilter is the compound filter of a search index query. Zero values are ignored.
type SearchFilter struct {
	UserID        string
	Product       models.Product
	Type          models.TransactionType
	Status        models.TransactionStatus
	Currency      models.Currency
	OccurredFrom  *time.Time
	OccurredTo    *time.Time
	SearchText    string
	MetadataField string
	MetadataValue string
}

// SortField orders search results by one document field.
type SortField struct {
	Field      string
	Descending bool
}

// SortValue is one value of a hit's sort tuple. Null stands for a hit that
// has no value for the sort field.
type SortValue struct {
	Value   string
	Numeric bool
	Null    bool
}

// SearchQuery is a filtered, sorted query paginated with search_after.
type SearchQuery struct {
	Filter      SearchFilter
	Sort        []SortField
	SearchAfter []SortValue
	FetchLimit  int
}

// SearchHit is one matching record together with its sort tuple.
type SearchHit struct {
	Transaction models.Transaction
	SortValues  []SortValue
}

type SearchResult struct {
	Hits []SearchHit
}

// ReceiveOptions controls one long-poll of the event queue.
type ReceiveOptions struct {
	MaxMessages       int
	WaitTime          time.Duration
	VisibilityTimeout time.Duration
}

// QueueMessage is a received message awaiting acknowledgement.
type QueueMessage struct {
	MessageID     string
	ReceiptHandle string
	Body          string
}

// TransactionStoreRepositoryInterface defines the primary store operations
type TransactionStoreRepositoryInterface interface {
	Put(ctx context.Context, transaction *models.Transaction) error
	GetByTransactionID(ctx context.Context, transactionID string) (*models.Transaction, error)
	QueryByOwner(ctx context.Context, query OwnerQuery) (*OwnerQueryResult, error)
	Ping(ctx context.Context) error
}

// TransactionSearchRepositoryInterface defines the search index operations
type TransactionSearchRepositoryInterface interface {
	Upsert(ctx context.Context, transaction *models.Transaction) error
	Search(ctx context.Context, query SearchQuery) (*SearchResult, error)
	Ping(ctx context.Context) error
}

// EventQueueRepositoryInterface defines the event queue operations
type EventQueueRepositoryInterface interface {
	Receive(ctx context.Context, opts ReceiveOptions) ([]QueueMessage, error)
	Delete(ctx context.Context, receiptHandle string) error
	Publish(ctx context.Context, body string) (string, error)
	ApproximateDepth(ctx context.Context) (int64, error)
}
