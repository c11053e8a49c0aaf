// Package dateutils provides the date handling used by the transaction reader.
package dateutils

import (
	"fmt"
	"strings"
	"time"
)

// Date layouts used by the application.
const (
	// DateLayoutDayMonthYear matches exports such as 5/3/2024 and 05/03/2024.
	DateLayoutDayMonthYear = "2/1/2006"
	DateLayoutISO          = "2006-01-02"
)

// ParseDayMonthYear parses a day/month/year date. Leading zeros are optional;
// anything else, including trailing text, is rejected.
func ParseDayMonthYear(dateStr string) (time.Time, error) {
	return ParseWithLayout(dateStr, DateLayoutDayMonthYear)
}

// ParseWithLayout parses a trimmed date string with an explicit layout.
func ParseWithLayout(dateStr, layout string) (time.Time, error) {
	cleaned := strings.TrimSpace(dateStr)
	if cleaned == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	t, err := time.Parse(layout, cleaned)
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q does not match layout %s", cleaned, layout)
	}
	return t, nil
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD)
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

// DateRange is the inclusive span covered by a set of dates.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Extend widens the range to include date.
func (dr DateRange) Extend(date time.Time) DateRange {
	if dr.Start.IsZero() || date.Before(dr.Start) {
		dr.Start = date
	}
	if dr.End.IsZero() || date.After(dr.End) {
		dr.End = date
	}
	return dr
}

// String returns the range as "YYYY-MM-DD..YYYY-MM-DD", or "" when empty.
func (dr DateRange) String() string {
	if dr.Start.IsZero() || dr.End.IsZero() {
		return ""
	}
	return ToISODate(dr.Start) + ".." + ToISODate(dr.End)
}
