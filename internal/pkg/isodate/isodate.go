// Package isodate validates and normalizes the ISO-8601 timestamp strings
// accepted at the API boundary. Clients send anything from a bare date to a
// full RFC3339 timestamp; stored values are always rendered back as RFC3339.
package isodate

import (
	"fmt"
	"time"
)

// layouts accepted from clients, tried in order.
var layouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// Parse parses an ISO-8601 timestamp string. Timestamps without an explicit
// offset are interpreted as UTC.
func Parse(value string) (time.Time, error) {
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("not a valid ISO-8601 timestamp: %q", value)
}

// Valid reports whether the string parses as an ISO-8601 timestamp.
func Valid(value string) bool {
	_, err := Parse(value)
	return err == nil
}

// Format renders a timestamp as an RFC3339 UTC string.
func Format(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
