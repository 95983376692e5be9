package utils

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// ParseDate parses a calendar date in YYYY-MM-DD form. Report bounds
// are dates, not instants; the time component is always midnight UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return t, nil
}

// ParseDateRange parses inclusive report bounds and rejects a range
// whose end precedes its start.
func ParseDateRange(start, end string) (time.Time, time.Time, error) {
	startDate, err := ParseDate(start)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	endDate, err := ParseDate(end)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if endDate.Before(startDate) {
		return time.Time{}, time.Time{}, fmt.Errorf("end date %s precedes start date %s", end, start)
	}
	return startDate, endDate, nil
}
