package dto

import (
	"encoding/json"
	"time"
)

// TransactionQueryParams binds the query string of the activity feed endpoint
type TransactionQueryParams struct {
	Product       string `query:"product" validate:"omitempty,product"`
	Type          string `query:"type" validate:"omitempty,transaction_type"`
	Status        string `query:"status" validate:"omitempty,transaction_status"`
	Currency      string `query:"currency" validate:"omitempty,currency"`
	StartDate     string `query:"startDate"`
	EndDate       string `query:"endDate"`
	SearchText    string `query:"searchText" validate:"max=200"`
	MetadataField string `query:"metadataField" validate:"omitempty,metadata_field"`
	MetadataValue string `query:"metadataValue" validate:"max=200"`
	Cursor        string `query:"cursor"`
	Limit         int    `query:"limit" validate:"omitempty,min=1,max=100"`
	SortBy        string `query:"sortBy" validate:"omitempty,sort_field"`
	SortDirection string `query:"sortDirection" validate:"omitempty,sort_direction"`
}

// TransactionResponse is one activity feed entry
type TransactionResponse struct {
	ID            string          `json:"id"`
	UserID        string          `json:"userId"`
	Product       string          `json:"product,omitempty"`
	Type          string          `json:"type,omitempty"`
	Status        string          `json:"status,omitempty"`
	Amount        string          `json:"amount"`
	Currency      string          `json:"currency,omitempty"`
	Description   string          `json:"description,omitempty"`
	OccurredAt    time.Time       `json:"occurredAt"`
	CreatedAt     time.Time       `json:"createdAt"`
	SourceService string          `json:"sourceService,omitempty"`
	EventID       string          `json:"eventId,omitempty"`
	Metadata      json.RawMessage `json:"metadata,omitempty"`
}

// PageResponse is one page of the activity feed. HasMore is true exactly when
// NextCursor is set.
type PageResponse struct {
	Content    []TransactionResponse `json:"content"`
	NextCursor *string               `json:"nextCursor"`
	Size       int                   `json:"size"`
	HasMore    bool                  `json:"hasMore"`
}
