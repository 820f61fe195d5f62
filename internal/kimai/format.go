package kimai

import (
	"time"

	"hirotrack/internal/errors"
)

// DateTimeLayout is the wire format for timesheet timestamps: zero-padded
// local time with no timezone suffix and no fractional seconds.
const DateTimeLayout = "2006-01-02T15:04:05"

// FormatDateTime renders a timestamp in the wire format, in local time.
func FormatDateTime(t time.Time) string {
	return t.Local().Format(DateTimeLayout)
}

// ParseDateTime parses an inbound timestamp. Servers usually return RFC3339
// with a zone offset; bare local-time strings are accepted as a fallback.
func ParseDateTime(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(DateTimeLayout, value, time.Local)
	if err != nil {
		return time.Time{}, errors.NewValidationError("invalid timestamp: "+value, err)
	}
	return t, nil
}
