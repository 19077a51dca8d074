// Package dateutils provides the calendar arithmetic used by analytics and the CLI.
// All helpers work on calendar days; the time of day is ignored.
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Date layouts accepted for user input
const (
	DateLayoutISO      = "2006-01-02"
	DateLayoutEuropean = "02.01.2006"
	DateLayoutSlash    = "2006/01/02"
	DateLayoutFull     = "2006-01-02 15:04:05"
)

// CommonFormats is the list of formats ParseDate tries, in order
var CommonFormats = []string{
	DateLayoutISO,
	DateLayoutEuropean,
	DateLayoutSlash,
	DateLayoutFull,
	"02/01/2006",
	"Jan 2, 2006",
	"2 January 2006",
}

var whitespace = regexp.MustCompile(`\s+`)

// ParseDate parses a user-supplied date in one of CommonFormats and returns the calendar day.
func ParseDate(dateStr string) (time.Time, error) {
	dateStr = CleanDateString(dateStr)
	if dateStr == "" {
		return time.Time{}, fmt.Errorf("date is empty")
	}

	for _, format := range CommonFormats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return Day(t), nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}

// CleanDateString trims and collapses whitespace
func CleanDateString(dateStr string) string {
	return whitespace.ReplaceAllString(strings.TrimSpace(dateStr), " ")
}

// ToISODate formats a date as YYYY-MM-DD
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// Day truncates t to midnight UTC of its wall-clock date.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameMonth reports whether a and b share calendar year and month.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// PreviousDay returns the calendar day before date.
func PreviousDay(date time.Time) time.Time {
	return Day(date).AddDate(0, 0, -1)
}

// CompareDates compares the calendar days of two dates and returns:
//
//	-1 if date1 is before date2
//	 0 if date1 is equal to date2
//	 1 if date1 is after date2
func CompareDates(date1, date2 time.Time) int {
	date1, date2 = Day(date1), Day(date2)

	if date1.Before(date2) {
		return -1
	} else if date1.After(date2) {
		return 1
	}
	return 0
}
