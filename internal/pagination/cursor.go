package pagination

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
)

// Backend identifies which query path issued a cursor.
type Backend string

const (
	BackendStore  Backend = "store"
	BackendSearch Backend = "search"
)

// ErrInvalidCursor is returned for any cursor that cannot be decoded or does
// not belong to the query it was supplied with.
var ErrInvalidCursor = errors.New("invalid cursor")

// Position is one field of a position key. Numeric marks values that the
// backend expects back as numbers rather than strings. Null marks a field the
// record has no value for; its Value is always empty.
type Position struct {
	Field   string `json:"f"`
	Value   string `json:"v"`
	Numeric bool   `json:"n,omitempty"`
	Null    bool   `json:"z,omitempty"`
}

func (p Position) validate() error {
	if p.Null {
		if p.Value != "" || p.Numeric {
			return fmt.Errorf("null cursor field %q carries a value", p.Field)
		}
		return nil
	}
	if p.Value == "" {
		return fmt.Errorf("empty value for cursor field %q", p.Field)
	}
	return nil
}

// Cursor is the decoded form of an opaque pagination token.
type Cursor struct {
	Backend   Backend    `json:"b"`
	Positions []Position `json:"p"`
}

// Value returns the value recorded for field.
func (c Cursor) Value(field string) (string, bool) {
	for _, p := range c.Positions {
		if p.Field == field {
			return p.Value, true
		}
	}
	return "", false
}

// Encode serializes the cursor into an opaque URL-safe token.
func Encode(cursor Cursor) (string, error) {
	if cursor.Backend == "" || len(cursor.Positions) == 0 {
		return "", errors.New("cursor requires a backend and at least one position")
	}
	for _, p := range cursor.Positions {
		if err := p.validate(); err != nil {
			return "", fmt.Errorf("failed to encode cursor: %w", err)
		}
	}
	data, err := json.Marshal(cursor)
	if err != nil {
		return "", fmt.Errorf("failed to encode cursor: %w", err)
	}
	return base64.URLEncoding.EncodeToString(data), nil
}

// Decode parses token and checks that it was issued by backend with exactly
// the given position fields, in order.
func Decode(token string, backend Backend, fields ...string) (Cursor, error) {
	if token == "" {
		return Cursor{}, fmt.Errorf("%w: empty cursor", ErrInvalidCursor)
	}

	data, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return Cursor{}, fmt.Errorf("%w: invalid cursor encoding", ErrInvalidCursor)
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()

	var cursor Cursor
	if err := decoder.Decode(&cursor); err != nil {
		return Cursor{}, fmt.Errorf("%w: invalid cursor format", ErrInvalidCursor)
	}
	if decoder.More() {
		return Cursor{}, fmt.Errorf("%w: trailing data after cursor", ErrInvalidCursor)
	}

	if cursor.Backend != backend {
		return Cursor{}, fmt.Errorf("%w: cursor was not issued for this query", ErrInvalidCursor)
	}
	if len(cursor.Positions) != len(fields) {
		return Cursor{}, fmt.Errorf("%w: unexpected cursor fields", ErrInvalidCursor)
	}
	for i, p := range cursor.Positions {
		if p.Field != fields[i] {
			return Cursor{}, fmt.Errorf("%w: unknown cursor field %q", ErrInvalidCursor, p.Field)
		}
		if err := p.validate(); err != nil {
			return Cursor{}, fmt.Errorf("%w: %w", ErrInvalidCursor, err)
		}
	}

	return cursor, nil
}

// Trim applies the fetch limit+1 rule: when items holds more than limit
// entries it is cut down to limit and hasMore is true. The last kept item is
// the one a next-page cursor must be built from.
func Trim[T any](items []T, limit int) (kept []T, hasMore bool) {
	if limit < 0 {
		limit = 0
	}
	if len(items) > limit {
		return items[:limit], true
	}
	return items, false
}
