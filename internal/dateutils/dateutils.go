// Package dateutils provides common date operations used throughout the application.
package dateutils

import (
	"fmt"
	"strings"
	"time"
)

// Common date format constants used throughout the application
const (
	DateLayoutISO      = "2006-01-02"
	DateLayoutEuropean = "02.01.2006"
	DateLayoutUS       = "01/02/2006"
	DateLayoutFull     = "2006-01-02 15:04:05"
)

// CommonFormats is a list of standard formats to try when parsing dates
var CommonFormats = []string{
	DateLayoutISO,
	DateLayoutEuropean,
	DateLayoutUS,
	DateLayoutFull,
	"02-01-2006",
	"02/01/2006",
	"2006/01/02",
	time.RFC3339,
}

// ParseDate attempts to parse a date string using multiple common formats.
func ParseDate(dateStr string) (time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	for _, format := range CommonFormats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD)
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// TruncateToDay drops the time-of-day component, normalizing to UTC so
// invoices recorded in different locations land in the same calendar bucket.
func TruncateToDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of whole calendar days from a to b.
func DaysBetween(a, b time.Time) float64 {
	return TruncateToDay(b).Sub(TruncateToDay(a)).Hours() / 24
}

// StartOfMonth returns the first day of the month for a given date
func StartOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

// PreviousMonth returns the first day of the month immediately before the
// given date's month, wrapping the year boundary at January.
func PreviousMonth(date time.Time) time.Time {
	return StartOfMonth(date).AddDate(0, -1, 0)
}

// SameCalendarMonth reports whether t falls in the calendar month of ref.
func SameCalendarMonth(t, ref time.Time) bool {
	return t.Year() == ref.Year() && t.Month() == ref.Month()
}
