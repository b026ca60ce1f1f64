package sqlite

import (
	"time"
)

// TimestampLayout is the layout SQLite's datetime('now') produces
const TimestampLayout = "2006-01-02 15:04:05"

// FormatTimeForDB formats a time.Time value in UTC using TimestampLayout
func FormatTimeForDB(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseTimeFromDB parses a created_at value. RFC3339 is accepted as well for
// rows written by other tools.
func ParseTimeFromDB(s string) (time.Time, error) {
	t, err := time.ParseInLocation(TimestampLayout, s, time.UTC)
	if err == nil {
		return t, nil
	}
	if t, rfcErr := time.Parse(time.RFC3339, s); rfcErr == nil {
		return t.UTC(), nil
	}
	return time.Time{}, err
}

// FormatDueDateForDB returns the value bound to the due_date column
func FormatDueDateForDB(due *string) interface{} {
	if due == nil || *due == "" {
		return nil
	}
	return *due
}
