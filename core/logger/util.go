package logger

import (
	"log/slog"
	"time"
)

// RoundMS rounds a duration to whole milliseconds, never below 1ms for
// non-zero durations so short handlers do not log duration_ms=0.
func RoundMS(d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	rounded := d.Round(time.Millisecond)
	if rounded == 0 {
		return time.Millisecond
	}
	return rounded
}

// Took returns a duration attribute measured from the provided start time.
func Took(start time.Time) slog.Attr {
	return slog.Duration("duration", time.Since(start))
}

// Status returns a normalized status attribute.
func Status(value string) slog.Attr {
	if normalized, ok := normalizeStatus(value); ok {
		value = normalized
	}
	return slog.String("status", value)
}

// Err returns an err attribute, or an empty attr for a nil error.
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String("err", err.Error())
}
