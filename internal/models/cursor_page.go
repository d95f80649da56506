package models

// CursorPage is one page of an ordered result set. NextCursor is empty when
// the result set is exhausted.
type CursorPage[T any] struct {
	Items      []T
	NextCursor string
}

func (p *CursorPage[T]) HasMore() bool {
	return p.NextCursor != ""
}
