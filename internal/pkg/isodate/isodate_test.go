package isodate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAcceptedLayouts(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{"2026-01-15", time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"2026-01-15T09:30", time.Date(2026, 1, 15, 9, 30, 0, 0, time.UTC)},
		{"2026-01-15T09:30:45", time.Date(2026, 1, 15, 9, 30, 45, 0, time.UTC)},
		{"2026-01-15T09:30:45Z", time.Date(2026, 1, 15, 9, 30, 45, 0, time.UTC)},
		{"2026-01-15T09:30:45+02:00", time.Date(2026, 1, 15, 9, 30, 45, 0, time.FixedZone("", 2*60*60))},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
		})
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	for _, input := range []string{"", "tomorrow", "15/01/2026", "2026-13-40"} {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			assert.Error(t, err)
		})
	}
}

func TestValid(t *testing.T) {
	assert.True(t, Valid("2026-01-15"))
	assert.False(t, Valid("not-a-date"))
}

func TestFormat(t *testing.T) {
	moscow := time.FixedZone("MSK", 3*60*60)
	ts := time.Date(2026, 1, 15, 12, 0, 0, 0, moscow)

	assert.Equal(t, "2026-01-15T09:00:00Z", Format(ts))
}
