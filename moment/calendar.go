// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package moment

import (
	"time"

	jalaali "github.com/jalaali/go-jalaali"
)

// A calendar maps instants to the year, month and day numbering of a
// particular calendar system.
type calendar interface {
	// name reports the name of the calendar, for diagnostics.
	name() string

	// contains reports whether t can be represented in the calendar.
	contains(t time.Time) bool

	// date reports the year, month (1-based) and day of month of t.
	date(t time.Time) (year, month, day int)

	// yearDay reports the 1-based ordinal of the given date in its year.
	yearDay(year, month, day int) int

	// daysIn reports the number of days in year.
	daysIn(year int) int

	// weekday reports the day of the week of the yday'th day of year.
	weekday(year, yday int) time.Weekday
}

type gregorian struct{}

func (gregorian) name() string { return "Gregorian" }

func (gregorian) contains(time.Time) bool { return true }

func (gregorian) date(t time.Time) (int, int, int) {
	y, m, d := t.Date()
	return y, int(m), d
}

func (gregorian) yearDay(year, month, day int) int {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).YearDay()
}

func (gregorian) daysIn(year int) int {
	return time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC).YearDay()
}

func (gregorian) weekday(year, yday int) time.Weekday {
	// time.Date normalizes day numbers past the end of January.
	return time.Date(year, time.January, yday, 0, 0, 0, 0, time.UTC).Weekday()
}

// jalali is the Solar Hijri calendar used in Iran and Afghanistan.
type jalali struct{}

func (jalali) name() string { return "Jalali" }

func (jalali) contains(t time.Time) bool {
	y, m, d := t.Date()
	jy, _, _, err := jalaali.ToJalaali(y, m, d)
	if err != nil {
		return false
	}
	// The weekday and week arithmetic look at the neighboring years.
	_, err1 := jalaali.IsLeapYear(jy - 1)
	_, err2 := jalaali.IsLeapYear(jy + 1)
	return err1 == nil && err2 == nil
}

func (jalali) date(t time.Time) (int, int, int) {
	y, m, d := t.Date()
	jy, jm, jd, _ := jalaali.ToJalaali(y, m, d)
	return jy, int(jm), jd
}

func (jalali) yearDay(year, month, day int) int {
	if month <= 6 {
		return (month-1)*31 + day
	}
	return 186 + (month-7)*30 + day
}

func (jalali) daysIn(year int) int {
	if leap, _ := jalaali.IsLeapYear(year); leap {
		return 366
	}
	return 365
}

func (jalali) weekday(year, yday int) time.Weekday {
	gy, gm, gd, _ := jalaali.ToGregorian(year, jalaali.Farvardin, 1)
	return time.Date(gy, gm, gd+yday-1, 0, 0, 0, 0, time.UTC).Weekday()
}

// jalaliMonths returns the Persian month names, Farvardin first.
func jalaliMonths() []string {
	names := make([]string, 12)
	for i := range names {
		names[i] = jalaali.Month(i + 1).String()
	}
	return names
}

// jalaliWeekdays returns the Persian weekday names, Sunday first.
func jalaliWeekdays() []string {
	names := make([]string, 7)
	for i := range names {
		// Shanbe (Saturday) is the first Persian weekday.
		names[i] = jalaali.Weekday((i + 1) % 7).String()
	}
	return names
}
