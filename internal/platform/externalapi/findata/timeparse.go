package findata

import (
	"fmt"
	"time"
)

// Layouts the provider has been observed to use, tried in order. RFC3339
// covers both the trailing-"Z" and explicit-offset variants.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

const dateParam = "2006-01-02"

// parseTimestamp parses a provider timestamp string. An empty value is a
// mapping failure; callers decide whether the field was required.
func parseTimestamp(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}
