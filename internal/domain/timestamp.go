package domain

import (
	"bytes"
	"fmt"
	"strconv"
	"time"
)

// TimestampLayout matches SQLite's datetime('now') output, which is what the
// store writes into created_at.
const TimestampLayout = "2006-01-02 15:04:05"

// Timestamp is a UTC instant serialised with TimestampLayout.
type Timestamp struct {
	time.Time
}

// ParseTimestamp parses a TimestampLayout string as UTC.
func ParseTimestamp(s string) (Timestamp, error) {
	t, err := time.ParseInLocation(TimestampLayout, s, time.UTC)
	if err != nil {
		return Timestamp{}, fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	return Timestamp{Time: t}, nil
}

// String formats the instant in UTC using TimestampLayout.
func (ts Timestamp) String() string {
	return ts.UTC().Format(TimestampLayout)
}

// MarshalJSON encodes the timestamp as a quoted TimestampLayout string.
func (ts Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(ts.String())), nil
}

// UnmarshalJSON accepts a quoted TimestampLayout string; null leaves ts unchanged.
func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("invalid timestamp %s", data)
	}
	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	*ts = parsed
	return nil
}
