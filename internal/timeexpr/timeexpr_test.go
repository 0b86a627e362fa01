package timeexpr

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Wednesday, 2026-03-18 14:30:00 UTC
var ref = time.Date(2026, time.March, 18, 14, 30, 0, 0, time.UTC)

func TestParseRelative(t *testing.T) {
	tests := []struct {
		expr string
		want time.Time
	}{
		{"now", ref},
		{"+1 hour", ref.Add(time.Hour)},
		{"-2 days", ref.AddDate(0, 0, -2)},
		{"3 weeks", ref.AddDate(0, 0, 21)},
		{"+1 week 2 days", ref.AddDate(0, 0, 9)},
		{"90 minutes", ref.Add(90 * time.Minute)},
		{"30 sec", ref.Add(30 * time.Second)},
		{"2 hours ago", ref.Add(-2 * time.Hour)},
		{"1 fortnight", ref.AddDate(0, 0, 14)},
		{"+1 month", ref.AddDate(0, 1, 0)},
		{"-1 year", ref.AddDate(-1, 0, 0)},
		{"next day", ref.AddDate(0, 0, 1)},
		{"last week", ref.AddDate(0, 0, -7)},
		{"  +1   HOUR ", ref.Add(time.Hour)},
		{"+1hour", ref.Add(time.Hour)},
		{"-2days", ref.AddDate(0, 0, -2)},
		{"3weeks ago", ref.AddDate(0, 0, -21)},
		{"+3000000 hours", time.Unix(ref.Unix()+3000000*3600, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := Parse(tt.expr, ref)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestParseCalendarWords(t *testing.T) {
	day := time.Date(2026, time.March, 18, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		expr string
		want time.Time
	}{
		{"today", day},
		{"midnight", day},
		{"noon", day.Add(12 * time.Hour)},
		{"tomorrow", day.AddDate(0, 0, 1)},
		{"yesterday", day.AddDate(0, 0, -1)},
		{"tomorrow +2 hours", day.AddDate(0, 0, 1).Add(2 * time.Hour)},
		{"wednesday", day},
		{"friday", day.AddDate(0, 0, 2)},
		{"monday", day.AddDate(0, 0, 5)},
		{"next wednesday", day.AddDate(0, 0, 7)},
		{"next fri", day.AddDate(0, 0, 2)},
		{"last wednesday", day.AddDate(0, 0, -7)},
		{"last monday", day.AddDate(0, 0, -2)},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := Parse(tt.expr, ref)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestParseAbsolute(t *testing.T) {
	tests := []struct {
		expr string
		want time.Time
	}{
		{"2027-01-02", time.Date(2027, time.January, 2, 0, 0, 0, 0, time.UTC)},
		{"2027-01-02 08:15", time.Date(2027, time.January, 2, 8, 15, 0, 0, time.UTC)},
		{"2027-01-02 08:15:30", time.Date(2027, time.January, 2, 8, 15, 30, 0, time.UTC)},
		{"2027-01-02T08:15:30Z", time.Date(2027, time.January, 2, 8, 15, 30, 0, time.UTC)},
		{"@1700000000", time.Unix(1700000000, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := Parse(tt.expr, ref)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestParseInvalid(t *testing.T) {
	for _, expr := range []string{
		"",
		"   ",
		"soon",
		"+1",
		"+1 parsec",
		"next",
		"next blue moon",
		"@abc",
		"1 hour from now",
		"+1hr",
		"+hour",
		"+ 1 hour",
	} {
		t.Run(expr, func(t *testing.T) {
			_, err := Parse(expr, ref)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUnparseable)
		})
	}
}

func TestParseOutOfRange(t *testing.T) {
	for _, expr := range []string{
		"+9999999999 hours",
		"-9999999999 hours",
		"+99999999999999999999 seconds",
		"+9223372036854775807 seconds",
		"-9223372036854775808 minutes",
		"+20000 years",
		"-3000 years",
		"+9000000 days",
		"@99999999999999",
		"@-99999999999999",
	} {
		t.Run(expr, func(t *testing.T) {
			got, err := Parse(expr, ref)
			require.Error(t, err, "got %s", got)
			assert.ErrorIs(t, err, ErrUnparseable)
			assert.Contains(t, err.Error(), "out of range")
		})
	}
}

func TestParseRangeEdges(t *testing.T) {
	got, err := Parse("+7000 years", ref)
	require.NoError(t, err)
	assert.Equal(t, 9026, got.Year())

	got, err = Parse("-2000 years", ref)
	require.NoError(t, err)
	assert.Equal(t, 26, got.Year())
}

func TestUnix(t *testing.T) {
	got, err := Unix("+1 hour", ref)
	require.NoError(t, err)
	assert.Equal(t, ref.Unix()+3600, got)

	_, err = Unix("whenever", ref)
	assert.ErrorIs(t, err, ErrUnparseable)
}
