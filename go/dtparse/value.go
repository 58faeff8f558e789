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
	"time"

	"github.com/icu4g/icu4g/go/mysql/datetime"
)

// DateValue is everything the resolution step needs from the caller's
// date/time value: getters and setters for the calendar fields, plus a
// capability test so a date-only value can be resolved against a pattern
// that names time-of-day fields without the parser having to know the
// concrete type.
type DateValue interface {
	Year() int
	SetYear(int)
	Month() int // 0-based, January = 0
	SetMonth(int)
	Day() int
	SetDay(int)
	DayOfWeek() int // Sunday = 0

	Hours() int
	SetHours(int)
	Minutes() int
	SetMinutes(int)
	Seconds() int
	SetSeconds(int)
	Milliseconds() int
	SetMilliseconds(int)

	// TimezoneOffset is the minutes that local time lags UTC (the
	// JavaScript Date.getTimezoneOffset convention: positive west).
	TimezoneOffset() int
	// Time is the epoch offset in milliseconds.
	Time() int64
	SetTime(int64)

	// SupportsTimeOfDay reports whether the value has hour/minute/second
	// resolution. A date-only value returns false, and resolution omits
	// the time-of-day steps rather than failing.
	SupportsTimeOfDay() bool
}

// StdDateValue adapts a *time.Time to DateValue. The zero value is
// unusable; construct with NewStdDateValue.
type StdDateValue struct {
	t *time.Time
}

// NewStdDateValue wraps t for use with Parse. Mutations made by Parse are
// visible through t.
func NewStdDateValue(t *time.Time) *StdDateValue {
	return &StdDateValue{t: t}
}

func (v *StdDateValue) Year() int  { return v.t.Year() }
func (v *StdDateValue) Month() int { return int(v.t.Month()) - 1 }
func (v *StdDateValue) Day() int   { return v.t.Day() }
func (v *StdDateValue) DayOfWeek() int {
	return int(v.t.Weekday())
}

func (v *StdDateValue) Hours() int       { return v.t.Hour() }
func (v *StdDateValue) Minutes() int     { return v.t.Minute() }
func (v *StdDateValue) Seconds() int     { return v.t.Second() }
func (v *StdDateValue) Milliseconds() int {
	return v.t.Nanosecond() / int(time.Millisecond)
}

func (v *StdDateValue) TimezoneOffset() int {
	_, offsetSeconds := v.t.Zone()
	return -offsetSeconds / 60
}

func (v *StdDateValue) Time() int64 { return v.t.UnixMilli() }

func (v *StdDateValue) SetTime(ms int64) {
	*v.t = time.UnixMilli(ms).In(v.t.Location())
}

func (v *StdDateValue) SetYear(year int) {
	t := *v.t
	*v.t = time.Date(year, t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func (v *StdDateValue) SetMonth(month int) {
	t := *v.t
	*v.t = time.Date(t.Year(), time.Month(month+1), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func (v *StdDateValue) SetDay(day int) {
	t := *v.t
	*v.t = time.Date(t.Year(), t.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func (v *StdDateValue) SetHours(hours int) {
	t := *v.t
	*v.t = time.Date(t.Year(), t.Month(), t.Day(), hours, t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func (v *StdDateValue) SetMinutes(minutes int) {
	t := *v.t
	*v.t = time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), minutes, t.Second(), t.Nanosecond(), t.Location())
}

func (v *StdDateValue) SetSeconds(seconds int) {
	t := *v.t
	*v.t = time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), seconds, t.Nanosecond(), t.Location())
}

func (v *StdDateValue) SetMilliseconds(ms int) {
	t := *v.t
	*v.t = time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), ms*int(time.Millisecond), t.Location())
}

func (v *StdDateValue) SupportsTimeOfDay() bool { return true }

// DateOnlyValue adapts a *datetime.Date — the MySQL-style packed date
// type this module inherited — to DateValue. SupportsTimeOfDay reports
// false, so resolution skips parsed time-of-day fields; the time-of-day
// setters do nothing and the getters return 0.
type DateOnlyValue struct {
	d   *datetime.Date
	loc *time.Location
}

// NewDateOnlyValue wraps d for use with Parse.
func NewDateOnlyValue(d *datetime.Date, loc *time.Location) *DateOnlyValue {
	if loc == nil {
		loc = time.UTC
	}
	return &DateOnlyValue{d: d, loc: loc}
}

func (v *DateOnlyValue) Year() int      { return v.d.Year() }
func (v *DateOnlyValue) Month() int     { return v.d.Month() - 1 }
func (v *DateOnlyValue) Day() int       { return v.d.Day() }
func (v *DateOnlyValue) DayOfWeek() int { return int(v.d.Weekday()) }

func (v *DateOnlyValue) Hours() int        { return 0 }
func (v *DateOnlyValue) Minutes() int      { return 0 }
func (v *DateOnlyValue) Seconds() int      { return 0 }
func (v *DateOnlyValue) Milliseconds() int { return 0 }

func (v *DateOnlyValue) SetHours(int)       {}
func (v *DateOnlyValue) SetMinutes(int)     {}
func (v *DateOnlyValue) SetSeconds(int)     {}
func (v *DateOnlyValue) SetMilliseconds(int) {}

func (v *DateOnlyValue) TimezoneOffset() int {
	_, offsetSeconds := time.Now().In(v.loc).Zone()
	return -offsetSeconds / 60
}

func (v *DateOnlyValue) Time() int64 {
	return time.Date(v.d.Year(), time.Month(v.d.Month()), v.d.Day(), 0, 0, 0, 0, v.loc).UnixMilli()
}

func (v *DateOnlyValue) SetTime(ms int64) {
	t := time.UnixMilli(ms).In(v.loc)
	v.setDate(t.Year(), int(t.Month()), t.Day())
}

func (v *DateOnlyValue) SetYear(year int)   { v.setDate(year, v.d.Month(), v.d.Day()) }
func (v *DateOnlyValue) SetMonth(month int) { v.setDate(v.d.Year(), month+1, v.d.Day()) }
func (v *DateOnlyValue) SetDay(day int)     { v.setDate(v.d.Year(), v.d.Month(), day) }

func (v *DateOnlyValue) setDate(year, month, day int) {
	*v.d = datetime.NewDate(year, month, day)
}

func (v *DateOnlyValue) SupportsTimeOfDay() bool { return false }
