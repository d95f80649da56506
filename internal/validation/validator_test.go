package validation

import (
	"errors"
	"testing"

	"activity-feed/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_AcceptsKnownValues(t *testing.T) {
	params := dto.TransactionQueryParams{
		Product:       "CARDS",
		Type:          "PAYMENT",
		Status:        "COMPLETED",
		Currency:      "EUR",
		MetadataField: "merchant_id",
		MetadataValue: "m-42",
		Limit:         50,
		SortBy:        "amount",
		SortDirection: "asc",
	}

	assert.NoError(t, NewValidator().Struct(params))
}

func TestValidator_EmptyParamsAreValid(t *testing.T) {
	assert.NoError(t, NewValidator().Struct(dto.TransactionQueryParams{}))
}

func TestValidator_RejectsUnknownValues(t *testing.T) {
	tests := []struct {
		name     string
		params   dto.TransactionQueryParams
		expected string
	}{
		{"product", dto.TransactionQueryParams{Product: "MORTGAGES"}, "product: must be a known product"},
		{"type", dto.TransactionQueryParams{Type: "GIFT"}, "type: must be a known transaction type"},
		{"status", dto.TransactionQueryParams{Status: "pending"}, "status: must be a known transaction status"},
		{"currency", dto.TransactionQueryParams{Currency: "XYZ"}, "currency: must be a supported currency code"},
		{"sort direction", dto.TransactionQueryParams{SortDirection: "sideways"}, "sortDirection: must be ASC or DESC"},
		{"metadata field path", dto.TransactionQueryParams{MetadataField: "a.b"}, "metadataField: must contain only letters, digits, '_' or '-' (max 64)"},
		{"limit too high", dto.TransactionQueryParams{Limit: 101}, "limit: must be at most 100"},
		{"negative limit", dto.TransactionQueryParams{Limit: -1}, "limit: must be at least 1"},
	}

	v := NewValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.params)
			require.Error(t, err)
			assert.Equal(t, []string{tt.expected}, Details(err))
		})
	}
}

func TestDetails_PlainError(t *testing.T) {
	assert.Equal(t, []string{"boom"}, Details(errors.New("boom")))
}

func TestGetValidator_ReturnsSingleton(t *testing.T) {
	assert.Same(t, GetValidator(), GetValidator())
}
