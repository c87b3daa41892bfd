package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDate(s)
	require.NoError(t, err)
	return d
}

func rng(t *testing.T, in, out string) DateRange {
	t.Helper()
	return DateRange{CheckIn: date(t, in), CheckOut: date(t, out)}
}

func TestDateRangeOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b DateRange
		want bool
	}{
		{"identical", rng(t, "2024-06-01", "2024-06-03"), rng(t, "2024-06-01", "2024-06-03"), true},
		{"partial overlap", rng(t, "2024-06-01", "2024-06-05"), rng(t, "2024-06-03", "2024-06-08"), true},
		{"contained", rng(t, "2024-06-01", "2024-06-10"), rng(t, "2024-06-03", "2024-06-05"), true},
		{"one shared night", rng(t, "2024-06-01", "2024-06-03"), rng(t, "2024-06-02", "2024-06-04"), true},
		{"back to back", rng(t, "2024-06-01", "2024-06-03"), rng(t, "2024-06-03", "2024-06-05"), false},
		{"back to back reversed", rng(t, "2024-06-03", "2024-06-05"), rng(t, "2024-06-01", "2024-06-03"), false},
		{"disjoint", rng(t, "2024-06-01", "2024-06-03"), rng(t, "2024-06-10", "2024-06-12"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a), "overlap must be symmetric")
		})
	}
}

func TestDateRangeNights(t *testing.T) {
	assert.Equal(t, 2, rng(t, "2024-06-01", "2024-06-03").Nights())
	assert.Equal(t, 1, rng(t, "2024-06-01", "2024-06-02").Nights())
	assert.Equal(t, 30, rng(t, "2024-06-01", "2024-07-01").Nights())
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-06-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("01-06-2024")
	assert.Error(t, err)

	_, err = ParseDate("2024-13-40")
	assert.Error(t, err)
}
