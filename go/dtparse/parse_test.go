package dtparse

import (
	"testing"
	"time"

	"github.com/icu4g/icu4g/go/mysql/datetime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

func parseToTime(t *testing.T, pattern, text string) (time.Time, int) {
	t.Helper()
	var result time.Time
	n, err := NewPattern(pattern, nil).
		WithClock(fixedClock(time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC))).
		Parse(text, NewStdDateValue(&result), Options{})
	require.NoError(t, err)
	return result, n
}

func TestParseBasicISOPattern(t *testing.T) {
	result, n := parseToTime(t, "yyyy-MM-dd", "2023-11-07")
	assert.Equal(t, len("2023-11-07"), n)
	assert.Equal(t, 2023, result.Year())
	assert.Equal(t, time.November, result.Month())
	assert.Equal(t, 7, result.Day())
}

func TestParseFullDateTime(t *testing.T) {
	result, n := parseToTime(t, "yyyy-MM-dd HH:mm:ss", "2023-11-07 13:45:09")
	assert.NotZero(t, n)
	assert.Equal(t, 13, result.Hour())
	assert.Equal(t, 45, result.Minute())
	assert.Equal(t, 9, result.Second())
}

func TestParseAbuttingRunExactWidths(t *testing.T) {
	// All three 2-digit fields fill completely on the first greedy pass.
	result, n := parseToTime(t, "HHmmss", "123456")
	assert.Equal(t, 6, n)
	assert.Equal(t, 12, result.Hour())
	assert.Equal(t, 34, result.Minute())
	assert.Equal(t, 56, result.Second())
}

func TestParseAbuttingRunBacktracks(t *testing.T) {
	// With only 5 digits, the greedy pass (H="12", m="34") leaves a
	// single leftover digit for the 2-wide seconds field, which can't
	// fill its width and fails; the head backs off to width 1
	// (H="1", m="23", s="45").
	result, n := parseToTime(t, "HHmmss", "12345")
	assert.Equal(t, 5, n)
	assert.Equal(t, 1, result.Hour())
	assert.Equal(t, 23, result.Minute())
	assert.Equal(t, 45, result.Second())
}

func TestParseAbuttingRunExhaustionFails(t *testing.T) {
	// With 4 digits, every head width from 2 down to 1 leaves the
	// trailing seconds field unable to fill its declared width; the
	// whole run — and so the whole parse — fails.
	var result time.Time
	n, err := NewPattern("HHmmss", nil).Parse("1234", NewStdDateValue(&result), Options{})
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestParseTwoDigitYearUnambiguous(t *testing.T) {
	// clock is pinned to 2024-06-15; the rolling window starts at 1944,
	// so "30" resolves to 2030 without crossing the cutoff.
	result, _ := parseToTime(t, "yy-MM-dd", "30-01-02")
	assert.Equal(t, 2030, result.Year())
}

func TestParseTwoDigitYearRollsIntoPriorCentury(t *testing.T) {
	result, _ := parseToTime(t, "yy-MM-dd", "50-01-02")
	assert.Equal(t, 1950, result.Year())
}

func TestParseFourDigitYearNeverAmbiguous(t *testing.T) {
	result, _ := parseToTime(t, "yyyy-MM-dd", "0044-01-02")
	assert.Equal(t, 44, result.Year())
}

func TestParseMonthNameLongestMatch(t *testing.T) {
	result, _ := parseToTime(t, "MMMM d, yyyy", "September 3, 2021")
	assert.Equal(t, time.September, result.Month())
	assert.Equal(t, 3, result.Day())
}

func TestParseAMPMFold(t *testing.T) {
	result, _ := parseToTime(t, "h:mm a", "2:30 PM")
	assert.Equal(t, 14, result.Hour())

	result2, _ := parseToTime(t, "h:mm a", "12:00 AM")
	assert.Equal(t, 0, result2.Hour())
}

func TestParseFractionalSecondsScaling(t *testing.T) {
	result, _ := parseToTime(t, "HH:mm:ss.SSS", "01:02:03.5")
	assert.Equal(t, 500, result.Nanosecond()/int(time.Millisecond))

	result2, _ := parseToTime(t, "HH:mm:ss.SSS", "01:02:03.12345")
	assert.Equal(t, 123, result2.Nanosecond()/int(time.Millisecond))
}

func TestParseTimezoneOffsetSign(t *testing.T) {
	var result time.Time
	n, err := NewPattern("yyyy-MM-dd HH:mm:ss Z", nil).
		WithClock(fixedClock(time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC))).
		Parse("2023-11-07 13:45:09 +0500", NewStdDateValue(&result), Options{})
	require.NoError(t, err)
	assert.NotZero(t, n)
	// the shift lands in the instant: 13:45:09 at +0500 is 08:45:09 UTC,
	// 5 hours behind the parsed wall clock.
	assert.Equal(t, int64(5)*60*60*1000, time.Date(2023, time.November, 7, 13, 45, 9, 0, time.UTC).UnixMilli()-result.UnixMilli())
}

func TestParseLiteralMismatchFails(t *testing.T) {
	var result time.Time
	n, err := NewPattern("yyyy-MM-dd", nil).Parse("2023/11/07", NewStdDateValue(&result), Options{})
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestParseWhitespaceIsFlexible(t *testing.T) {
	result, n := parseToTime(t, "yyyy MM dd", "2023   11   07")
	assert.NotZero(t, n)
	assert.Equal(t, 2023, result.Year())
	assert.Equal(t, time.November, result.Month())
	assert.Equal(t, 7, result.Day())
}

func TestParseNilDateErrors(t *testing.T) {
	_, err := NewPattern("yyyy-MM-dd", nil).Parse("2023-11-07", nil, Options{})
	require.Error(t, err)
}

func TestParseQuarter(t *testing.T) {
	result, _ := parseToTime(t, "QQQ yyyy", "Q3 2024")
	assert.Equal(t, time.July, result.Month())
	assert.Equal(t, 1, result.Day())
}

func TestParseDateOnlyValueIgnoresTimeFields(t *testing.T) {
	d := datetime.NewDate(2020, 1, 1)
	n, err := NewPattern("yyyy-MM-dd HH:mm:ss", nil).
		WithClock(fixedClock(time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC))).
		Parse("2023-11-07 13:45:09", NewDateOnlyValue(&d, time.UTC), Options{})
	require.NoError(t, err)
	assert.NotZero(t, n)
	assert.Equal(t, 2023, d.Year())
	assert.Equal(t, 11, d.Month())
	assert.Equal(t, 7, d.Day())
}

func TestParseTwoDigitYearSlashPattern(t *testing.T) {
	// now.year = 1997, so the rolling window runs [1917, 2016]: "12"
	// resolves forward to 2012.
	var result time.Time
	n, err := NewPattern("MM/dd/yy", nil).
		WithClock(fixedClock(time.Date(1997, time.January, 1, 0, 0, 0, 0, time.UTC))).
		Parse("01/11/12", NewStdDateValue(&result), Options{})
	require.NoError(t, err)
	assert.NotZero(t, n)
	assert.Equal(t, 2012, result.Year())
	assert.Equal(t, time.January, result.Month())
	assert.Equal(t, 11, result.Day())
}

func TestParseTwoDigitYearSlashPatternPriorCentury(t *testing.T) {
	var result time.Time
	n, err := NewPattern("MM/dd/yy", nil).
		WithClock(fixedClock(time.Date(1997, time.January, 1, 0, 0, 0, 0, time.UTC))).
		Parse("05/04/64", NewStdDateValue(&result), Options{})
	require.NoError(t, err)
	assert.NotZero(t, n)
	assert.Equal(t, 1964, result.Year())
	assert.Equal(t, time.May, result.Month())
	assert.Equal(t, 4, result.Day())
}

func TestParseEraQuotedLiteralAndColonSeparatedTime(t *testing.T) {
	result, n := parseToTime(t, "yyyy.MM.dd G 'at' HH:mm:ss", "1996.07.10 AD at 15:08:56")
	assert.NotZero(t, n)
	assert.Equal(t, 1996, result.Year())
	assert.Equal(t, time.July, result.Month())
	assert.Equal(t, 10, result.Day())
	assert.Equal(t, 15, result.Hour())
	assert.Equal(t, 8, result.Minute())
	assert.Equal(t, 56, result.Second())
}

func TestParsePMFoldFromNoonHour(t *testing.T) {
	result, _ := parseToTime(t, "h:mm a", "12:08 PM")
	assert.Equal(t, 12, result.Hour())
	assert.Equal(t, 8, result.Minute())
}

func TestParseAbuttingYearMonthDay(t *testing.T) {
	result, n := parseToTime(t, "yyyyMMdd", "19960710")
	assert.Equal(t, 8, n)
	assert.Equal(t, 1996, result.Year())
	assert.Equal(t, time.July, result.Month())
	assert.Equal(t, 10, result.Day())
}

func TestParseTimezoneFieldAdvancesInstant(t *testing.T) {
	base := time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC)
	result := base
	n, err := NewPattern("Z", nil).Parse("-0800", NewStdDateValue(&result), Options{})
	require.NoError(t, err)
	assert.NotZero(t, n)
	assert.Equal(t, base.Add(8*time.Hour), result)
}

func TestParseMonthNameRejectsShortPrefixWhenLongerMatches(t *testing.T) {
	result, n := parseToTime(t, "MMMM d, yyyy", "July 10, 1996")
	assert.NotZero(t, n)
	assert.Equal(t, time.July, result.Month())
	assert.Equal(t, 10, result.Day())
	assert.Equal(t, 1996, result.Year())
}

func TestParseValidateRejectsFebruary30(t *testing.T) {
	var result time.Time
	n, err := NewPattern("MM/dd/yyyy", nil).Parse("02/30/1996", NewStdDateValue(&result), Options{Validate: true})
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestParseRemapsNativeLocaleDigits(t *testing.T) {
	// Arabic-Indic digits (U+0660..U+0669) are two bytes each in UTF-8,
	// so this also exercises scanDigits' original-byte-length tracking:
	// the remapped ASCII run is shorter in bytes than what was actually
	// consumed from the input.
	arabicIndicLocale := English
	arabicIndicLocale.ZeroDigit = 0x0660

	var result time.Time
	n, err := NewPattern("yyyy-MM-dd", &arabicIndicLocale).
		Parse("٢٠٢٤-٠٦-١٢", NewStdDateValue(&result), Options{})
	require.NoError(t, err)
	assert.Equal(t, len("٢٠٢٤-٠٦-١٢"), n)
	assert.Equal(t, 2024, result.Year())
	assert.Equal(t, time.June, result.Month())
	assert.Equal(t, 12, result.Day())
}

func TestParseFailureLeavesDateUntouched(t *testing.T) {
	// A validation failure during resolution (February 30 round-trips to
	// March 1) must not leave any partial mutation visible on the
	// caller's date, per the no-partial-state-on-failure invariant.
	preexisting := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	result := preexisting
	n, err := NewPattern("MM/dd/yyyy", nil).Parse("02/30/1996", NewStdDateValue(&result), Options{Validate: true})
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, preexisting, result)
}

func TestParseDayOfWeekDisagreementFailsWithoutValidate(t *testing.T) {
	// Step 10's day-of-week-vs-explicit-day check carries no validate
	// qualifier in the spec (unlike step 7), so this must fail even with
	// Options{} left at its zero value.
	preexisting := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	result := preexisting
	n, err := NewPattern("yyyy-MM-dd EEEE", nil).Parse("2024-06-12 Friday", NewStdDateValue(&result), Options{})
	require.NoError(t, err)
	assert.Zero(t, n) // 2024-06-12 is a Wednesday, not a Friday
	assert.Equal(t, preexisting, result)
}
