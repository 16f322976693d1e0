// utils/dates.go
package utils

import (
	"errors"
	"fmt"
	"time"
)

var ErrBadClock = errors.New("time must be in HH:MM format")

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// NormalizeDate strips the time-of-day component and pins the date to UTC
// so stored dates compare by equality regardless of the caller's zone.
func NormalizeDate(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ParseClockMinutes converts an "HH:MM" wall-clock string into minutes
// since midnight.
func ParseClockMinutes(clock string) (int, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return 0, ErrBadClock
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatClockMinutes renders minutes since midnight as "HH:MM".
func FormatClockMinutes(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
