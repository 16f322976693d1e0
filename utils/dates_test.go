// utils/dates_test.go
package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseClockMinutes(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"10:00", 600, false},
		{"10:15", 615, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"10:60", 0, true},
		{"1000", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseClockMinutes(tt.in)
		if tt.wantErr {
			require.ErrorIs(t, err, ErrBadClock, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		require.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestFormatClockMinutes(t *testing.T) {
	require.Equal(t, "00:00", FormatClockMinutes(0))
	require.Equal(t, "10:05", FormatClockMinutes(605))
	require.Equal(t, "23:59", FormatClockMinutes(1439))
}

func TestNormalizeDate(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*3600)
	in := time.Date(2026, time.March, 2, 23, 30, 0, 0, loc)

	got := NormalizeDate(in)
	require.Equal(t, time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC), got)
}

func TestBeginningOfDay(t *testing.T) {
	in := time.Date(2026, time.March, 2, 17, 45, 12, 0, time.Local)
	got := BeginningOfDay(in)
	require.Equal(t, 0, got.Hour())
	require.Equal(t, in.Day(), got.Day())
	require.Equal(t, in.Location(), got.Location())
}
