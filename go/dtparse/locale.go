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

import "strings"

// Locale is the read-only symbol table the engine consults for textual
// fields and standard-pattern selection. The parser never mutates it.
type Locale struct {
	Eras                  []string
	AMPMs                 []string
	Months                []string
	StandaloneMonths      []string
	ShortMonths           []string
	StandaloneShortMonths []string
	Weekdays              []string // full, Sunday = 0
	ShortWeekdays         []string
	Quarters              []string
	ShortQuarters         []string

	DateFormats     [4]string
	TimeFormats     [4]string
	DateTimeFormats [4]string

	// ZeroDigit is the codepoint for this locale's digit zero, used to
	// normalize native-digit input (e.g. Arabic-Indic digits) before the
	// integer primitive runs. Zero value means "no remapping".
	ZeroDigit rune
}

// English is the process-wide default locale.
var English = Locale{
	Eras:  []string{"BC", "AD"},
	AMPMs: []string{"AM", "PM"},
	Months: []string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	},
	StandaloneMonths: []string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	},
	ShortMonths: []string{
		"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
	},
	StandaloneShortMonths: []string{
		"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
	},
	Weekdays: []string{
		"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
	},
	ShortWeekdays: []string{
		"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat",
	},
	Quarters:      []string{"1st quarter", "2nd quarter", "3rd quarter", "4th quarter"},
	ShortQuarters: []string{"Q1", "Q2", "Q3", "Q4"},

	DateFormats:     [4]string{"M/d/yy", "MMM d, yyyy", "MMMM d, yyyy", "EEEE, MMMM d, yyyy"},
	TimeFormats:     [4]string{"h:mm a", "h:mm:ss a", "h:mm:ss a z", "h:mm:ss a zzzz"},
	DateTimeFormats: [4]string{"{1} {0}", "{1} {0}", "{1} 'at' {0}", "{1} 'at' {0}"},
}

// longestMatch finds the candidate whose lowercased form is a prefix of
// the lowercased input remainder and is strictly longer than any other
// matching candidate. It returns the matched candidate's index and the
// byte length consumed, or (-1, 0) if nothing matched.
func longestMatch(candidates []string, remainder string) (index int, consumed int) {
	index = -1
	lowerRemainder := strings.ToLower(remainder)
	for i, candidate := range candidates {
		if candidate == "" {
			continue
		}
		lowerCandidate := strings.ToLower(candidate)
		if len(lowerCandidate) <= consumed {
			continue
		}
		if strings.HasPrefix(lowerRemainder, lowerCandidate) {
			index = i
			consumed = len(lowerCandidate)
		}
	}
	return index, consumed
}
