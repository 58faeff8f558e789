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

// Package dtparse compiles ICU/JDK-style date/time patterns ("yyyy-MM-dd")
// into a reusable element list and parses text against that list into a
// caller-supplied date value.
package dtparse

import "strings"

// patternLetters is the full reserved alphabet; compile order doesn't
// matter, only set membership does.
const patternLetters = "GyMdkHmsSEDahKzZvQL"

// numericLetters are always numeric regardless of count, except M and L
// which switch to textual at count >= 3 (see isNumericField).
const numericLetters = "MydhHmsSDkK"

func isPatternLetter(c byte) bool {
	return strings.IndexByte(patternLetters, c) >= 0
}

func isNumericField(letter byte, count int) bool {
	switch letter {
	case 'M', 'L':
		return count < 3
	default:
		return strings.IndexByte(numericLetters, letter) >= 0
	}
}

// kind distinguishes the three element shapes. Using an explicit tag
// instead of count==0/numeric sentinels rules out the invalid
// count=0-but-numeric states a count-and-flag encoding would allow.
type kind int

const (
	kindLiteral kind = iota
	kindWhitespace
	kindField
)

// element is one compiled unit of a pattern: a literal run, a collapsed
// whitespace run, or a field.
type element struct {
	kind kind

	// Literal/Whitespace
	text string

	// Field
	letter    byte
	count     int
	numeric   bool
	abutStart bool
}

// compile converts a pattern string into its element list. It never fails
// on well-formed input; an unterminated quote is scanned to end-of-string
// and its contents are taken literally (implementer's choice per an
// unspecified edge case).
func compile(pattern string) []element {
	var elements []element
	var buf strings.Builder
	inQuote := false

	flush := func() {
		if buf.Len() == 0 {
			return
		}
		elements = append(elements, element{kind: kindLiteral, text: buf.String()})
		buf.Reset()
	}

	i := 0
	for i < len(pattern) {
		c := pattern[i]

		if inQuote {
			if c == '\'' {
				if i+1 < len(pattern) && pattern[i+1] == '\'' {
					buf.WriteByte('\'')
					i += 2
					continue
				}
				inQuote = false
				i++
				continue
			}
			buf.WriteByte(c)
			i++
			continue
		}

		switch {
		case c == ' ':
			flush()
			elements = append(elements, element{kind: kindWhitespace, text: " "})
			for i < len(pattern) && pattern[i] == ' ' {
				i++
			}
		case c == '\'':
			if i+1 < len(pattern) && pattern[i+1] == '\'' {
				buf.WriteByte('\'')
				i += 2
				continue
			}
			inQuote = true
			i++
		case isPatternLetter(c):
			flush()
			j := i
			for j < len(pattern) && pattern[j] == c {
				j++
			}
			count := j - i
			elements = append(elements, element{
				kind:    kindField,
				letter:  c,
				count:   count,
				numeric: isNumericField(c, count),
			})
			i = j
		default:
			buf.WriteByte(c)
			i++
		}
	}
	flush()

	markAbutStarts(elements)
	return elements
}

// markAbutStarts flags the head of every maximal run of consecutive
// numeric field elements.
func markAbutStarts(elements []element) {
	for i := range elements {
		e := &elements[i]
		if e.kind != kindField || !e.numeric {
			continue
		}
		precededByNumeric := i > 0 && elements[i-1].kind == kindField && elements[i-1].numeric
		followedByNumeric := i+1 < len(elements) && elements[i+1].kind == kindField && elements[i+1].numeric
		if !precededByNumeric && followedByNumeric {
			e.abutStart = true
		}
	}
}
