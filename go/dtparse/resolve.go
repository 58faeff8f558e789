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
	"errors"
	"time"
)

// errResolveFailed is never returned to a caller; it only signals Parse
// to report a 0-count failure after resolve has restored date.
var errResolveFailed = errors.New("dtparse: resolution failed")

const millisPerDay = 24 * 60 * 60 * 1000

// resolve applies resolveFields to date, but on failure restores date to
// its pre-call state instead of leaving it wherever resolveFields's
// partial mutation left it. resolveFields calls SetYear/SetMonth/SetDay/
// ... directly as it works through the step order, so a failure
// partway through (validation, day-of-week disagreement) would
// otherwise be visible to the caller as a half-applied parse. Time/
// SetTime are present on every DateValue regardless of
// SupportsTimeOfDay, so snapshotting the epoch instant is a
// full-fidelity way to undo whatever resolveFields did.
func resolve(date DateValue, rec *record, now time.Time, validate bool) error {
	snapshot := date.Time()
	if err := resolveFields(date, rec, now, validate); err != nil {
		date.SetTime(snapshot)
		return err
	}
	return nil
}

// resolveFields walks the eleven-step resolution order from an
// accumulated record onto date. date is assumed non-nil; Parse checks
// that.
func resolveFields(date DateValue, rec *record, now time.Time, validate bool) error {
	// Step 2: BCE normalization.
	if rec.era != nil && *rec.era == 0 && rec.year != nil && *rec.year > 0 {
		*rec.year = -(*rec.year - 1)
	}

	// Step 3: year.
	if rec.year != nil {
		date.SetYear(*rec.year)
	}

	// Step 4: month/day dance. Day is pinned to 1 before the month
	// change so a short target month can never roll the date forward
	// on its own; the final day is then set explicitly, or the
	// pre-existing day-of-month is clamped into the new month.
	d0 := date.Day()
	date.SetDay(1)
	if rec.month != nil {
		date.SetMonth(*rec.month)
	}
	if rec.day != nil {
		date.SetDay(*rec.day)
	} else {
		date.SetDay(clampInt(d0, 1, daysInMonth(date.Year(), date.Month())))
	}

	var effHours, effMinutes, effSeconds, effMillis int
	if date.SupportsTimeOfDay() {
		// Step 5: hours, defaulted from the existing value and folded
		// against a PM marker.
		effHours = date.Hours()
		if rec.hours != nil {
			effHours = *rec.hours
		}
		if rec.ampm != nil && *rec.ampm > 0 && effHours < 12 {
			effHours += 12
		}
		date.SetHours(effHours)

		// Step 6: minutes, seconds, milliseconds.
		effMinutes = date.Minutes()
		if rec.minutes != nil {
			effMinutes = *rec.minutes
			date.SetMinutes(effMinutes)
		}
		effSeconds = date.Seconds()
		if rec.seconds != nil {
			effSeconds = *rec.seconds
			date.SetSeconds(effSeconds)
		}
		effMillis = date.Milliseconds()
		if rec.milliseconds != nil {
			effMillis = *rec.milliseconds
			date.SetMilliseconds(effMillis)
		}
	}

	// Step 7: validation.
	if validate {
		if rec.year != nil && date.Year() != *rec.year {
			return errResolveFailed
		}
		if rec.month != nil && date.Month() != *rec.month {
			return errResolveFailed
		}
		if rec.day != nil && date.Day() != *rec.day {
			return errResolveFailed
		}
		if date.SupportsTimeOfDay() {
			if effHours >= 24 || effMinutes >= 60 || effSeconds >= 60 || effMillis >= 1000 {
				return errResolveFailed
			}
		}
	}

	// Step 8: timezone epoch shift.
	if rec.tzOffset != nil {
		delta := int64(*rec.tzOffset-date.TimezoneOffset()) * 60000
		date.SetTime(date.Time() + delta)
	}

	// Step 9: two-digit-year fixup.
	if rec.ambiguousYear {
		threshold := now.AddDate(-80, 0, 0).UnixMilli()
		if date.Time() < threshold {
			date.SetYear(date.Year() + 100)
		}
	}

	// Step 10: day-of-week. Unlike step 7, the spec states this check
	// with no validate qualifier: a day-of-week that disagrees with an
	// explicit day is a failure regardless of Options.Validate.
	if rec.dayOfWeek != nil {
		if rec.day != nil {
			if date.DayOfWeek() != *rec.dayOfWeek {
				return errResolveFailed
			}
		} else {
			currentDow := date.DayOfWeek()
			adjustment := (7 + *rec.dayOfWeek - currentDow) % 7
			if adjustment > 3 {
				adjustment -= 7
			}
			if adjustment != 0 {
				originalMonth := date.Month()
				date.SetTime(date.Time() + int64(adjustment)*millisPerDay)
				if date.Month() != originalMonth {
					if adjustment > 0 {
						date.SetTime(date.Time() - 7*millisPerDay)
					} else {
						date.SetTime(date.Time() + 7*millisPerDay)
					}
				}
			}
		}
	}

	// Step 11: success.
	return nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// daysInMonth returns the day count for a 0-based month in year, found by
// asking for day zero of the following month.
func daysInMonth(year, month int) int {
	firstOfNext := time.Date(year, time.Month(month+2), 0, 0, 0, 0, 0, time.UTC)
	return firstOfNext.Day()
}
