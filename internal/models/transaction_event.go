package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionEvent is the JSON body of a queue message announcing a transaction.
type TransactionEvent struct {
	EventID        string              `json:"eventId"`
	EventType      string              `json:"eventType"`
	SourceService  string              `json:"sourceService"`
	EventTimestamp *time.Time          `json:"eventTimestamp,omitempty"`
	Payload        *TransactionPayload `json:"payload"`
}

// TransactionPayload carries the business fields of a TransactionEvent.
type TransactionPayload struct {
	TransactionID string            `json:"transactionId,omitempty"`
	UserID        string            `json:"userId"`
	Product       Product           `json:"product"`
	Type          TransactionType   `json:"type"`
	Status        TransactionStatus `json:"status"`
	Amount        decimal.Decimal   `json:"amount"`
	Currency      Currency          `json:"currency"`
	Description   string            `json:"description,omitempty"`
	OccurredAt    *time.Time        `json:"occurredAt,omitempty"`
	Metadata      map[string]any    `json:"metadata,omitempty"`
}

// DeduplicationID returns the id the event is stored under: the payload
// transaction id when present, the event id otherwise.
func (e *TransactionEvent) DeduplicationID() string {
	if e.Payload != nil && e.Payload.TransactionID != "" {
		return e.Payload.TransactionID
	}
	return e.EventID
}
