package datetime

import (
	"fmt"
	"time"
)

const negMask = uint16(1 << 15)

type Time struct {
	hour       uint16
	minute     uint8
	second     uint8
	nanosecond uint32
}

type Date struct {
	year  uint16
	month uint8
	day   uint8
}

type DateTime struct {
	Date Date
	Time Time
}

func (t *Time) AppendFormat(b []byte, prec uint8) []byte {
	if t.Neg() {
		b = append(b, '-')
	}

	b = append(b, fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())...)
	if prec > 0 && t.Nanosecond() != 0 {
		b = append(b, '.')
		b = append(b, fmt.Sprintf("%09d", t.Nanosecond())[:min(int(prec), 9)]...)
	}
	return b
}

func (t *Time) FormatInt64() (n int64) {
	v := int64(t.Hour())*10000 + int64(t.Minute())*100 + int64(t.Second())
	if t.Neg() {
		return -v
	}
	return v
}

func (t *Time) ToStdTime(loc *time.Location) (out time.Time) {
	year, month, day := time.Now().Date()
	return t.toStdTime(year, month, day, loc)
}

func (t *Time) toStdTime(year int, month time.Month, day int, loc *time.Location) (out time.Time) {
	hour, min, sec, nsec := t.Hour(), t.Minute(), t.Second(), t.Nanosecond()
	if t.Neg() {
		// If we have a negative time, we start with the start of the given
		// day and count the parsed time back on the wall clock, so a DST
		// change in between does not shift the resulting local time.
		out = time.Date(year, month, day, -hour, -min, -sec, -nsec, loc)
	} else {
		out = time.Date(0, 1, 1, hour, min, sec, nsec, loc)
		out = out.AddDate(year, int(month-1), day-1)
	}
	return
}

func (t *Time) ToDateTime() (out DateTime) {
	year, month, day := time.Now().Date()
	dt := DateTime{
		Date: Date{
			year:  uint16(year),
			month: uint8(month),
			day:   uint8(day),
		},
		Time: *t,
	}
	return dt
}

func (t *Time) IsZero() bool {
	return t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0
}

func (t *Time) Hour() int {
	return int(t.hour & ^negMask)
}

func (t *Time) Minute() int {
	return int(t.minute)
}

func (t *Time) Second() int {
	return int(t.second)
}

func (t *Time) Nanosecond() int {
	return int(t.nanosecond)
}

func (t *Time) Neg() bool {
	return t.hour&negMask != 0
}

// NewDate constructs a packed Date from calendar components.
func NewDate(year, month, day int) Date {
	return Date{year: uint16(year), month: uint8(month), day: uint8(day)}
}

func (d *Date) IsZero() bool {
	return d.Year() == 0 && d.Month() == 0 && d.Day() == 0
}

func (d *Date) Year() int {
	return int(d.year)
}

func (d *Date) Month() int {
	return int(d.month)
}

func (d *Date) Day() int {
	return int(d.day)
}

func (dt *Date) Weekday() time.Weekday {
	return time.Date(dt.Year(), time.Month(dt.Month()), dt.Day(), 0, 0, 0, 0, time.UTC).Weekday()
}

func (dt *Date) Yearday() int {
	return time.Date(dt.Year(), time.Month(dt.Month()), dt.Day(), 0, 0, 0, 0, time.UTC).YearDay()
}

func (d *Date) ISOWeek() (int, int) {
	return time.Date(d.Year(), time.Month(d.Month()), d.Day(), 0, 0, 0, 0, time.UTC).ISOWeek()
}

func (dt *DateTime) IsZero() bool {
	return dt.Date.IsZero() && dt.Time.IsZero()
}

func (dt *DateTime) ToStdTime(loc *time.Location) (out time.Time) {
	if dt.IsZero() {
		return time.Time{}
	}

	var year, day int
	var month time.Month
	if dt.Date.IsZero() {
		year, month, day = time.Now().Date()
	} else {
		year, month, day = dt.Date.Year(), time.Month(dt.Date.Month()), dt.Date.Day()
	}

	if dt.Time.IsZero() {
		return time.Date(year, month, day, 0, 0, 0, 0, loc)
	}

	hour, min, sec, nsec := dt.Time.Hour(), dt.Time.Minute(), dt.Time.Second(), dt.Time.Nanosecond()
	if dt.Time.Neg() {
		// If we have a negative time, we start with the start of the given
		// day and count the parsed time back on the wall clock, so a DST
		// change in between does not shift the resulting local time.
		out = time.Date(year, month, day, -hour, -min, -sec, -nsec, loc)
	} else {
		out = time.Date(0, 1, 1, hour, min, sec, nsec, loc)
		out = out.AddDate(year, int(month-1), day-1)
	}
	return
}
