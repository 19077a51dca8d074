package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
		wantErr  bool
	}{
		{"ISO format", "2024-03-15", date(2024, time.March, 15), false},
		{"European format", "15.03.2024", date(2024, time.March, 15), false},
		{"Slash ISO", "2024/03/15", date(2024, time.March, 15), false},
		{"Full timestamp drops time", "2024-03-15 22:30:00", date(2024, time.March, 15), false},
		{"Day first slash", "15/03/2024", date(2024, time.March, 15), false},
		{"Month name", "Mar 15, 2024", date(2024, time.March, 15), false},
		{"Extra whitespace", "  2 March   2024 ", date(2024, time.March, 2), false},
		{"Empty string", "", time.Time{}, true},
		{"Invalid format", "not a date", time.Time{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseDate(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestDay(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	late := time.Date(2024, time.March, 31, 23, 45, 0, 0, loc)
	assert.Equal(t, date(2024, time.March, 31), Day(late))
}

func TestSameMonth(t *testing.T) {
	tests := []struct {
		name     string
		a, b     time.Time
		expected bool
	}{
		{"same month", date(2024, time.March, 1), date(2024, time.March, 31), true},
		{"adjacent month", date(2024, time.February, 29), date(2024, time.March, 1), false},
		{"same month other year", date(2023, time.March, 10), date(2024, time.March, 10), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, SameMonth(tc.a, tc.b))
		})
	}
}

func TestPreviousDay(t *testing.T) {
	assert.Equal(t, date(2024, time.February, 29), PreviousDay(date(2024, time.March, 1)))
	assert.Equal(t, date(2023, time.December, 31), PreviousDay(time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC)))
}

func TestCompareDates(t *testing.T) {
	morning := time.Date(2024, time.June, 1, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2024, time.June, 1, 20, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, CompareDates(morning, evening))
	assert.Equal(t, -1, CompareDates(morning, date(2024, time.June, 2)))
	assert.Equal(t, 1, CompareDates(morning, date(2024, time.May, 31)))
}

func TestToISODate(t *testing.T) {
	assert.Equal(t, "2024-01-05", ToISODate(date(2024, time.January, 5)))
}
