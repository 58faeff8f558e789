package dtparse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveMonthDayDanceClampsPreexistingDay(t *testing.T) {
	// Start the target value on Jan 31, then parse a bare month — March
	// has 31 days too, so nothing should clamp.
	result := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)
	n, err := NewPattern("MM", nil).Parse("03", NewStdDateValue(&result), Options{})
	require.NoError(t, err)
	assert.NotZero(t, n)
	assert.Equal(t, time.March, result.Month())
	assert.Equal(t, 31, result.Day())
}

func TestResolveMonthDayDanceClampsToShorterMonth(t *testing.T) {
	result := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)
	n, err := NewPattern("MM", nil).Parse("02", NewStdDateValue(&result), Options{})
	require.NoError(t, err)
	assert.NotZero(t, n)
	assert.Equal(t, time.February, result.Month())
	assert.Equal(t, 29, result.Day()) // 2024 is a leap year
}

func TestResolveValidateRejectsRolledOverDay(t *testing.T) {
	var result time.Time
	n, err := NewPattern("yyyy-MM-dd", nil).Parse("2023-02-30", NewStdDateValue(&result), Options{Validate: true})
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestResolveNonValidateAcceptsRolledOverDay(t *testing.T) {
	var result time.Time
	n, err := NewPattern("yyyy-MM-dd", nil).Parse("2023-02-30", NewStdDateValue(&result), Options{})
	require.NoError(t, err)
	assert.NotZero(t, n)
	assert.Equal(t, time.March, result.Month())
	assert.Equal(t, 2, result.Day())
}

func TestResolveDayOfWeekNudgesWithoutExplicitDay(t *testing.T) {
	// 2024-06-12 is a Wednesday; asking to land on Friday should nudge
	// forward two days within the same month.
	result := time.Date(2024, time.June, 12, 0, 0, 0, 0, time.UTC)
	n, err := NewPattern("EEE", nil).Parse("Fri", NewStdDateValue(&result), Options{})
	require.NoError(t, err)
	assert.NotZero(t, n)
	assert.Equal(t, 14, result.Day())
	assert.Equal(t, time.Friday, result.Weekday())
}

func TestResolveDayOfWeekValidateDisagreement(t *testing.T) {
	var result time.Time
	n, err := NewPattern("yyyy-MM-dd EEEE", nil).Parse("2024-06-12 Friday", NewStdDateValue(&result), Options{Validate: true})
	require.NoError(t, err)
	assert.Zero(t, n) // 2024-06-12 is a Wednesday
}

func TestResolveAmbiguousYearFixupCrossesCentury(t *testing.T) {
	// Clock pinned so the rolling window's cutoff year is exactly the
	// two-digit value parsed; the resulting date lands before now-80y
	// and must be pushed forward a century.
	clock := fixedClock(time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC))
	var result time.Time
	n, err := NewPattern("yy-MM-dd", nil).
		WithClock(clock).
		Parse("44-01-01", NewStdDateValue(&result), Options{})
	require.NoError(t, err)
	assert.NotZero(t, n)
	assert.Equal(t, 2044, result.Year())
}
