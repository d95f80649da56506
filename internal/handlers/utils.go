package handlers

import (
	"fmt"
	"strings"
	"time"
)

const dateOnlyLayout = "2006-01-02"

// parseDateParam reads an RFC 3339 timestamp or a YYYY-MM-DD date. A bare
// date is taken as the start of that UTC day, or its last second when
// endOfDay is set.
func parseDateParam(name, value string, endOfDay bool) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		t = t.UTC()
		return &t, nil
	}

	t, err := time.Parse(dateOnlyLayout, value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s format, use RFC 3339 or YYYY-MM-DD", name)
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Second)
	}
	return &t, nil
}
