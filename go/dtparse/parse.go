/*
Copyright 2019 The Vitess Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package dtparse

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/icu4g/icu4g/go/mysql/fastparse"
	"github.com/icu4g/icu4g/go/vt/vterrors"
)

// Clock supplies "now" for two-digit-year disambiguation. Injectable so
// tests can pin it instead of reading the wall clock.
type Clock func() time.Time

// Options toggles the strict round-trip validation pass in resolution.
type Options struct {
	Validate bool
}

// Parser holds a compiled element list and is safe to share and reuse
// across goroutines: it is build-once, read-many, and every Parse call
// works against a fresh, stack-local intermediate record.
type Parser struct {
	elements []element
	locale   *Locale
	clock    Clock
}

// NewPattern compiles an explicit pattern string. A nil locale uses
// English.
func NewPattern(pattern string, locale *Locale) *Parser {
	if locale == nil {
		locale = &English
	}
	return &Parser{elements: compile(pattern), locale: locale, clock: time.Now}
}

// NewStandard compiles one of the twelve predefined patterns (0..3
// date-only short/medium/long/full; 4..7 time-only; 8..11 combined).
// Out-of-range selectors fold to 10 (combined-medium).
func NewStandard(selector int, locale *Locale) *Parser {
	if locale == nil {
		locale = &English
	}
	return NewPattern(standardPattern(selector, locale), locale)
}

// WithClock overrides the wall clock used for two-digit-year
// disambiguation. Intended for tests.
func (p *Parser) WithClock(clock Clock) *Parser {
	p.clock = clock
	return p
}

func standardPattern(selector int, locale *Locale) string {
	if selector < 0 || selector > 11 {
		selector = 10
	}
	switch {
	case selector < 4:
		return locale.DateFormats[selector]
	case selector < 8:
		return locale.TimeFormats[selector-4]
	default:
		style := selector - 8
		combined := locale.DateTimeFormats[style]
		combined = strings.Replace(combined, "{1}", locale.DateFormats[style], 1)
		combined = strings.Replace(combined, "{0}", locale.TimeFormats[style], 1)
		return combined
	}
}

// record is the scratch intermediate state accumulated during a single
// parse. Every field is nil until a sub-parser sets it, so the zero value
// never collides with a legitimate parsed value.
type record struct {
	era           *int
	year          *int
	month         *int
	day           *int
	hours         *int
	minutes       *int
	seconds       *int
	milliseconds  *int
	ampm          *int
	tzOffset      *int
	dayOfWeek     *int
	ambiguousYear bool
}

func ip(v int) *int { return &v }

// Parse consumes text against the compiled pattern, mutates date in
// place, and returns the count of input bytes consumed, or 0 on any
// structural, abut-run-exhaustion, or validation failure. The only error
// this returns is for a nil date, which is a caller bug rather than a
// malformed-input condition.
func (p *Parser) Parse(text string, date DateValue, opts Options) (int, error) {
	if date == nil {
		return 0, vterrors.NewWithState(vterrors.Code_INVALID_ARGUMENT, vterrors.NilDate, "dtparse: date must not be nil")
	}

	now := p.clock()
	var rec record
	pos := 0

	i := 0
	for i < len(p.elements) {
		elem := &p.elements[i]
		switch elem.kind {
		case kindLiteral:
			if !matchLiteral(text, &pos, elem.text) {
				return 0, nil
			}
			i++
		case kindWhitespace:
			if !matchWhitespace(text, &pos) {
				return 0, nil
			}
			i++
		case kindField:
			if elem.abutStart {
				end, ok := p.parseAbutRun(text, &pos, i, &rec, now)
				if !ok {
					return 0, nil
				}
				i = end
			} else {
				if !p.parseField(text, &pos, elem, 0, &rec, now) {
					return 0, nil
				}
				i++
			}
		}
	}

	if err := resolve(date, &rec, now, opts.Validate); err != nil {
		return 0, nil
	}
	return pos, nil
}

// StrictParse is a deprecated alias for Parse(text, date, Options{Validate: true}).
func (p *Parser) StrictParse(text string, date DateValue) (int, error) {
	return p.Parse(text, date, Options{Validate: true})
}

// parseAbutRun implements the abutting-run backtracking algorithm
// (shrink the head field's width on retry, down to 1; everything after
// the head parses at its declared fixed width).
func (p *Parser) parseAbutRun(text string, pos *int, head int, rec *record, now time.Time) (end int, ok bool) {
	entryPos := *pos
	abutPass := 0
	i := head
	for {
		if i >= len(p.elements) || p.elements[i].kind != kindField || !p.elements[i].numeric {
			return i, true
		}
		width := p.elements[i].count
		if i == head {
			width -= abutPass
			abutPass++
			if width <= 0 {
				return head, false
			}
		}
		// Within a run every member, head included, must consume
		// exactly its capped width: a short match (the field ran into
		// a non-digit or end-of-input before filling its width) is a
		// failure of this pass, not a partial success, since that's
		// what makes the retry-at-narrower-width loop observable.
		posBefore := *pos
		if p.parseField(text, pos, &p.elements[i], width, rec, now) && utf8.RuneCountInString(text[posBefore:*pos]) == width {
			i++
			continue
		}
		*pos = entryPos
		i = head
	}
}

// parseField dispatches a single field element's sub-parser. digitCount
// is the width cap: 0 means "parse until non-digit", matching the
// non-abut path; a positive value restricts the integer primitive to at
// most that many characters, used only from within an abutting run.
func (p *Parser) parseField(text string, pos *int, elem *element, digitCount int, rec *record, now time.Time) bool {
	switch elem.letter {
	case 'G':
		skipSpace(text, pos)
		if idx, n := longestMatch(p.locale.Eras, text[*pos:]); idx >= 0 {
			rec.era = ip(idx)
			*pos += n
		}
		return true

	case 'M', 'L':
		if elem.numeric {
			skipSpace(text, pos)
			v, ok := parseUnsignedInt(text, pos, digitCount, p.locale.ZeroDigit)
			if !ok {
				return false
			}
			rec.month = ip(int(v) - 1)
			return true
		}
		skipSpace(text, pos)
		candidates := make([]string, 0, len(p.locale.Months)+len(p.locale.StandaloneMonths)+len(p.locale.ShortMonths)+len(p.locale.StandaloneShortMonths))
		candidates = append(candidates, p.locale.Months...)
		candidates = append(candidates, p.locale.StandaloneMonths...)
		candidates = append(candidates, p.locale.ShortMonths...)
		candidates = append(candidates, p.locale.StandaloneShortMonths...)
		idx, n := longestMatch(candidates, text[*pos:])
		if idx < 0 {
			return false
		}
		rec.month = ip(idx % 12)
		*pos += n
		return true

	case 'E':
		skipSpace(text, pos)
		idx, n := longestMatch(p.locale.Weekdays, text[*pos:])
		if idx < 0 {
			idx, n = longestMatch(p.locale.ShortWeekdays, text[*pos:])
		}
		if idx < 0 {
			return false
		}
		rec.dayOfWeek = ip(idx)
		*pos += n
		return true

	case 'a':
		skipSpace(text, pos)
		if idx, n := longestMatch(p.locale.AMPMs, text[*pos:]); idx >= 0 {
			rec.ampm = ip(idx)
			*pos += n
		}
		return true

	case 'y':
		skipSpace(text, pos)
		return parseYear(text, pos, digitCount, elem.count, rec, now, p.locale.ZeroDigit)

	case 'Q':
		skipSpace(text, pos)
		idx, n := longestMatch(p.locale.Quarters, text[*pos:])
		if idx < 0 {
			idx, n = longestMatch(p.locale.ShortQuarters, text[*pos:])
		}
		if idx < 0 {
			return false
		}
		rec.month = ip(idx * 3)
		rec.day = ip(1)
		*pos += n
		return true

	case 'd':
		skipSpace(text, pos)
		if v, ok := parseUnsignedInt(text, pos, digitCount, p.locale.ZeroDigit); ok {
			rec.day = ip(int(v))
		}
		return true

	case 'D':
		// Day-of-year has no home in the intermediate record (the
		// resolution model carries month/day, not a year-relative
		// ordinal), so it consumes its digits and discards them.
		skipSpace(text, pos)
		_, ok := parseUnsignedInt(text, pos, digitCount, p.locale.ZeroDigit)
		return ok

	case 'S':
		skipSpace(text, pos)
		return parseFractionalSeconds(text, pos, digitCount, rec, p.locale.ZeroDigit)

	case 'h':
		skipSpace(text, pos)
		v, ok := parseUnsignedInt(text, pos, digitCount, p.locale.ZeroDigit)
		if !ok {
			return false
		}
		hours := int(v)
		if hours == 12 {
			hours = 0
		}
		rec.hours = ip(hours)
		return true

	case 'K', 'H', 'k':
		skipSpace(text, pos)
		v, ok := parseUnsignedInt(text, pos, digitCount, p.locale.ZeroDigit)
		if !ok {
			return false
		}
		rec.hours = ip(int(v))
		return true

	case 'm':
		skipSpace(text, pos)
		v, ok := parseUnsignedInt(text, pos, digitCount, p.locale.ZeroDigit)
		if !ok {
			return false
		}
		rec.minutes = ip(int(v))
		return true

	case 's':
		skipSpace(text, pos)
		v, ok := parseUnsignedInt(text, pos, digitCount, p.locale.ZeroDigit)
		if !ok {
			return false
		}
		rec.seconds = ip(int(v))
		return true

	case 'z', 'Z', 'v':
		skipSpace(text, pos)
		return parseTimezone(text, pos, rec, p.locale.ZeroDigit)
	}
	return false
}

// parseYear implements §4.2.1.
func parseYear(text string, pos *int, digitCount, patternCount int, rec *record, now time.Time, zeroDigit rune) bool {
	start := *pos
	consumed := -1

	if v, ok := parseUnsignedInt(text, pos, digitCount, zeroDigit); ok {
		consumed = utf8.RuneCountInString(text[start:*pos])
		if patternCount == 2 && consumed == 2 {
			rec.year = ip(twoDigitYear(int(v), now, rec))
			return true
		}
		rec.year = ip(int(v))
		return true
	}

	// Signed retry intentionally drops the width cap (preserved quirk).
	*pos = start
	if v, ok := parseSignedInt(text, pos, 0, zeroDigit); ok {
		rec.year = ip(int(v))
		return true
	}
	*pos = start
	return false
}

// twoDigitYear resolves a two-digit year against an 80-year rolling
// century window and marks rec.ambiguousYear when the value straddles
// the window boundary (§4.3.1).
func twoDigitYear(parsedYY int, now time.Time, rec *record) int {
	const windowStart = 80
	centuryStartYear := now.Year() - windowStart
	cutoffYY := floorMod(centuryStartYear, 100)
	rec.ambiguousYear = parsedYY == cutoffYY

	fullYear := floorDiv(centuryStartYear, 100)*100 + parsedYY
	if parsedYY < cutoffYY {
		fullYear += 100
	}
	return fullYear
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}

// parseFractionalSeconds implements §4.2.2.
func parseFractionalSeconds(text string, pos *int, digitCount int, rec *record, zeroDigit rune) bool {
	start := *pos
	v, ok := parseUnsignedInt(text, pos, digitCount, zeroDigit)
	if !ok {
		return false
	}
	length := utf8.RuneCountInString(text[start:*pos])
	switch {
	case length < 3:
		for k := length; k < 3; k++ {
			v *= 10
		}
	case length > 3:
		divisor := int64(1)
		for k := 3; k < length; k++ {
			divisor *= 10
		}
		v = (v + divisor/2) / divisor
	}
	rec.milliseconds = ip(int(v))
	return true
}

// parseTimezone implements §4.2.3. tzOffset is stored negated relative to
// the spelled offset, per the "minutes west of UTC" convention used by
// resolution's timezone shift.
func parseTimezone(text string, pos *int, rec *record, zeroDigit rune) bool {
	if strings.HasPrefix(text[*pos:], "GMT") {
		*pos += len("GMT")
	}
	if *pos >= len(text) {
		rec.tzOffset = ip(0)
		return true
	}

	digitsStart := *pos
	first, ok := parseSignedInt(text, pos, 0, zeroDigit)
	if !ok {
		return false
	}
	n := utf8.RuneCountInString(text[digitsStart:*pos])

	var offset int
	if *pos < len(text) && text[*pos] == ':' {
		*pos++
		second, ok := parseUnsignedInt(text, pos, 0, zeroDigit)
		if !ok {
			return false
		}
		offset = int(first)*60 + int(second)
	} else if first < 24 && n <= 3 {
		offset = int(first) * 60
	} else {
		offset = int(first)%100 + int(first)/100*60
	}
	rec.tzOffset = ip(-offset)
	return true
}

func matchLiteral(text string, pos *int, literal string) bool {
	if strings.HasPrefix(text[*pos:], literal) {
		*pos += len(literal)
		return true
	}
	return false
}

func matchWhitespace(text string, pos *int) bool {
	start := *pos
	for *pos < len(text) && isSpaceByte(text[*pos]) {
		*pos++
	}
	return *pos > start
}

func skipSpace(text string, pos *int) {
	for *pos < len(text) && isSpaceByte(text[*pos]) {
		*pos++
	}
}

func isSpaceByte(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

// parseUnsignedInt and parseSignedInt are the integer-parsing primitive
// from §4.2.4, grounded on the MySQL literal-scanning fast path: the
// matched ASCII digit (and optional sign) substring is handed to
// fastparse rather than strconv. zeroDigit is the locale's native
// digit-zero codepoint (0 means "no remapping"); when set, native
// digits such as Arabic-Indic numerals are translated to ASCII before
// matching, per §4.2.4's remap rule. maxChars, when positive, caps the
// scan to that many input characters (not bytes) rather than an
// unbounded digit run.
func parseUnsignedInt(text string, pos *int, maxChars int, zeroDigit rune) (int64, bool) {
	ascii, n := scanDigits(text[*pos:], maxChars, zeroDigit, false)
	if n == 0 {
		return 0, false
	}
	v, err := fastparse.ParseUint64(ascii, 10)
	if err != nil {
		return 0, false
	}
	*pos += n
	return int64(v), true
}

func parseSignedInt(text string, pos *int, maxChars int, zeroDigit rune) (int64, bool) {
	ascii, n := scanDigits(text[*pos:], maxChars, zeroDigit, true)
	if n == 0 {
		return 0, false
	}
	// fastparse.ParseInt64 accepts a leading '-' but not a leading '+'.
	v, err := fastparse.ParseInt64(strings.TrimPrefix(ascii, "+"), 10)
	if err != nil {
		return 0, false
	}
	*pos += n
	return v, true
}

// scanDigits walks s one codepoint at a time (remapping native locale
// digits to ASCII as it goes, per §4.2.4: "this operates on the full
// remainder first"), stopping after maxChars characters if maxChars is
// positive, matching an optional sign followed by one or more digits.
// It returns the matched text translated to plain ASCII (suitable for
// fastparse, which only understands ASCII digits) and the number of
// bytes consumed from the *original* s — which can differ from
// len(ascii) when a native digit is multi-byte in UTF-8.
func scanDigits(s string, maxChars int, zeroDigit rune, allowSigned bool) (ascii string, consumedBytes int) {
	var b strings.Builder
	charIdx := 0
	sawDigit := false
	for _, c := range s {
		if maxChars > 0 && charIdx >= maxChars {
			break
		}
		if charIdx == 0 && allowSigned && (c == '+' || c == '-') {
			b.WriteByte(byte(c))
			consumedBytes += utf8.RuneLen(c)
			charIdx++
			continue
		}
		digit, ok := remapDigit(c, zeroDigit)
		if !ok {
			break
		}
		b.WriteByte(digit)
		consumedBytes += utf8.RuneLen(c)
		charIdx++
		sawDigit = true
	}
	if !sawDigit {
		return "", 0
	}
	return b.String(), consumedBytes
}

// remapDigit reports the ASCII digit byte for c, either because c is
// already an ASCII digit or because zeroDigit is configured and c falls
// within the ten codepoints starting at zeroDigit.
func remapDigit(c rune, zeroDigit rune) (byte, bool) {
	if c >= '0' && c <= '9' {
		return byte(c), true
	}
	if zeroDigit != 0 {
		if d := c - zeroDigit; d >= 0 && d <= 9 {
			return byte('0' + d), true
		}
	}
	return 0, false
}
