package helpers

import (
	"fmt"
	"time"
)

// ParseMonth turns a "YYYY-MM" key into the month's half-open UTC
// interval [start, end).
func ParseMonth(month string) (time.Time, time.Time, error) {
	parsed, err := time.ParseInLocation("2006-01", month, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid month %q, expected YYYY-MM", month)
	}

	start := time.Date(parsed.Year(), parsed.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)
	return start, end, nil
}
