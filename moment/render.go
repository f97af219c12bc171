// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package moment

import (
	"strconv"
	"strings"
	"time"
)

// A moment is a time broken down into the fields of a locale's calendar.
type moment struct {
	t   time.Time
	loc *locale

	year, month, day int
	yday             int
	wday             int // 0 is Sunday
}

func newMoment(t time.Time, loc *locale) *moment {
	y, m, d := loc.cal.date(t)
	return &moment{
		t:     t,
		loc:   loc,
		year:  y,
		month: m,
		day:   d,
		yday:  loc.cal.yearDay(y, m, d),
		wday:  int(t.Weekday()),
	}
}

// render returns the text of a single field token.
func (m *moment) render(tok string) string {
	l := m.loc
	switch tok {
	case "YYYY":
		if m.year > 9999 {
			return "+" + strconv.Itoa(m.year)
		}
		return pad(m.year, 4)
	case "YY":
		return pad(m.year%100, 2)
	case "Y":
		if m.year > 9999 {
			return "+" + strconv.Itoa(m.year)
		}
		return strconv.Itoa(m.year)

	case "Q":
		return strconv.Itoa((m.month + 2) / 3)
	case "Qo":
		return l.ordinal((m.month+2)/3, "Q")

	case "M":
		return strconv.Itoa(m.month)
	case "Mo":
		return l.ordinal(m.month, "M")
	case "MM":
		return pad(m.month, 2)
	case "MMM":
		return l.monthsShort[m.month-1]
	case "MMMM":
		return l.months[m.month-1]

	case "D":
		return strconv.Itoa(m.day)
	case "Do":
		return l.ordinal(m.day, "D")
	case "DD":
		return pad(m.day, 2)
	case "DDD":
		return strconv.Itoa(m.yday)
	case "DDDo":
		return l.ordinal(m.yday, "DDD")
	case "DDDD":
		return pad(m.yday, 3)

	case "d":
		return strconv.Itoa(m.wday)
	case "do":
		return l.ordinal(m.wday, "d")
	case "dd":
		return l.weekdaysMin[m.wday]
	case "ddd":
		return l.weekdaysShort[m.wday]
	case "dddd":
		return l.weekdays[m.wday]
	case "e":
		return strconv.Itoa((m.wday + 7 - l.dow) % 7)
	case "E":
		if m.wday == 0 {
			return "7"
		}
		return strconv.Itoa(m.wday)

	case "w", "wo", "ww", "gg", "gggg":
		week, year := weekOfYear(l.cal, m.year, m.yday, l.dow, l.doy)
		return renderWeek(tok, week, year, l.ordinal)
	case "W", "Wo", "WW", "GG", "GGGG":
		year, week := m.t.ISOWeek()
		return renderWeek(strings.ToLower(tok), week, year, l.ordinal)

	case "A":
		return l.meridiem(m.t.Hour(), false)
	case "a":
		return l.meridiem(m.t.Hour(), true)
	case "H":
		return strconv.Itoa(m.t.Hour())
	case "HH":
		return pad(m.t.Hour(), 2)
	case "h":
		return strconv.Itoa(hour12(m.t.Hour()))
	case "hh":
		return pad(hour12(m.t.Hour()), 2)
	case "k":
		return strconv.Itoa(hour24(m.t.Hour()))
	case "kk":
		return pad(hour24(m.t.Hour()), 2)
	case "m":
		return strconv.Itoa(m.t.Minute())
	case "mm":
		return pad(m.t.Minute(), 2)
	case "s":
		return strconv.Itoa(m.t.Second())
	case "ss":
		return pad(m.t.Second(), 2)

	case "Z":
		return zone(m.t, ":")
	case "ZZ":
		return zone(m.t, "")
	case "X":
		return strconv.FormatInt(m.t.Unix(), 10)
	case "x":
		return strconv.FormatInt(m.t.UnixMilli(), 10)
	}

	if strings.Trim(tok, "S") == "" {
		return pad(m.t.Nanosecond(), 9)[:len(tok)]
	}
	panic("moment: unhandled token " + tok)
}

// renderWeek renders the week tokens w, wo, ww, gg and gggg.
func renderWeek(tok string, week, year int, ordinal func(int, string) string) string {
	switch tok {
	case "w":
		return strconv.Itoa(week)
	case "wo":
		return ordinal(week, "w")
	case "ww":
		return pad(week, 2)
	case "gg":
		return pad(year%100, 2)
	}
	return pad(year, 4)
}

// firstWeekOffset reports the offset, relative to the first day of year, of
// the first day of the first week of year.
func firstWeekOffset(cal calendar, year, dow, doy int) int {
	fwd := 7 + dow - doy
	fwdlw := (7 + int(cal.weekday(year, fwd)) - dow) % 7
	return fwd - fwdlw - 1
}

func weeksInYear(cal calendar, year, dow, doy int) int {
	return (cal.daysIn(year) - firstWeekOffset(cal, year, dow, doy) + firstWeekOffset(cal, year+1, dow, doy)) / 7
}

// weekOfYear reports the week number and week-year containing the yday'th
// day of year, for weeks starting on dow.
func weekOfYear(cal calendar, year, yday, dow, doy int) (week, weekYear int) {
	week = floorDiv(yday-firstWeekOffset(cal, year, dow, doy)-1, 7) + 1
	if week < 1 {
		return week + weeksInYear(cal, year-1, dow, doy), year - 1
	} else if n := weeksInYear(cal, year, dow, doy); week > n {
		return week - n, year + 1
	}
	return week, year
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func hour12(h int) int {
	if h%12 == 0 {
		return 12
	}
	return h % 12
}

func hour24(h int) int {
	if h == 0 {
		return 24
	}
	return h
}

// pad renders v zero-filled to at least width digits.
func pad(v, width int) string {
	sign := ""
	if v < 0 {
		sign, v = "-", -v
	}
	s := strconv.Itoa(v)
	if n := width - len(s); n > 0 {
		s = strings.Repeat("0", n) + s
	}
	return sign + s
}

// zone renders the UTC offset of t as +hh:mm, with sep between the hours
// and minutes.
func zone(t time.Time, sep string) string {
	_, off := t.Zone()
	sign := "+"
	if off < 0 {
		sign, off = "-", -off
	}
	off /= 60
	return sign + pad(off/60, 2) + sep + pad(off%60, 2)
}
