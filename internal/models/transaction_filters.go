package models

import (
	"strings"
	"time"
)

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100

	SortFieldOccurredAt = "occurredAt"
	SortFieldCreatedAt  = "createdAt"
	SortFieldAmount     = "amount"
	SortFieldProduct    = "product"
	SortFieldType       = "type"
	SortFieldStatus     = "status"
	SortFieldCurrency   = "currency"

	SortDirectionAsc  = "ASC"
	SortDirectionDesc = "DESC"
)

// SortableFields lists the fields a feed query may be ordered by.
var SortableFields = []string{
	SortFieldOccurredAt,
	SortFieldCreatedAt,
	SortFieldAmount,
	SortFieldProduct,
	SortFieldType,
	SortFieldStatus,
	SortFieldCurrency,
}

// TransactionFilters contains filtering options for activity feed queries
type TransactionFilters struct {
	UserID        string
	Product       Product
	Type          TransactionType
	Status        TransactionStatus
	Currency      Currency
	StartDate     *time.Time
	EndDate       *time.Time
	SearchText    string
	MetadataField string
	MetadataValue string
	Cursor        string
	Limit         int
	SortBy        string
	SortDirection string
}

// ApplyDefaults fills in the paging and ordering defaults and normalizes the
// sort direction to upper case.
func (f *TransactionFilters) ApplyDefaults() {
	if f.Limit <= 0 {
		f.Limit = DefaultPageLimit
	}
	if f.SortBy == "" {
		f.SortBy = SortFieldOccurredAt
	}
	if f.SortDirection == "" {
		f.SortDirection = SortDirectionDesc
	}
	f.SortDirection = strings.ToUpper(f.SortDirection)
	f.SearchText = strings.TrimSpace(f.SearchText)
}

// HasAttributeFilters reports whether any filter beyond owner and date range is set.
func (f *TransactionFilters) HasAttributeFilters() bool {
	return f.Product != "" ||
		f.Type != "" ||
		f.Status != "" ||
		f.Currency != "" ||
		strings.TrimSpace(f.SearchText) != "" ||
		f.MetadataField != "" ||
		f.MetadataValue != ""
}

// HasDefaultOrdering reports whether the query is ordered newest first by occurrence time.
func (f *TransactionFilters) HasDefaultOrdering() bool {
	return f.SortBy == SortFieldOccurredAt && strings.EqualFold(f.SortDirection, SortDirectionDesc)
}

func (f *TransactionFilters) HasDateRange() bool {
	return f.StartDate != nil || f.EndDate != nil
}

func IsSortableField(field string) bool {
	for _, candidate := range SortableFields {
		if candidate == field {
			return true
		}
	}
	return false
}
