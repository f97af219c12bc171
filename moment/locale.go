// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package moment

import (
	"strconv"

	"golang.org/x/text/language"
)

// A locale carries the names and conventions used to render a moment in a
// particular language.
type locale struct {
	tag language.Tag
	cal calendar

	months, monthsShort                  []string // January first
	weekdays, weekdaysShort, weekdaysMin []string // Sunday first

	// dow is the first day of the week (0 is Sunday). doy is 7 + dow - janX,
	// where janX is the day of the first month always in week 1.
	dow, doy int

	longDate map[string]string // LT, LTS, L, LL, LLL, LLLL
	ordinal  func(n int, token string) string
	meridiem func(hour int, lower bool) string
}

func (l *locale) name() string { return l.tag.String() }

var english = &locale{
	tag: language.English,
	cal: gregorian{},
	months: []string{
		"January", "February", "March", "April", "May", "June", "July",
		"August", "September", "October", "November", "December",
	},
	monthsShort: []string{
		"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
	},
	weekdays: []string{
		"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
	},
	weekdaysShort: []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
	weekdaysMin:   []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"},
	dow:           0,
	doy:           6,
	longDate: map[string]string{
		"LT":   "h:mm A",
		"LTS":  "h:mm:ss A",
		"L":    "MM/DD/YYYY",
		"LL":   "MMMM D, YYYY",
		"LLL":  "MMMM D, YYYY h:mm A",
		"LLLL": "dddd, MMMM D, YYYY h:mm A",
	},
	ordinal:  englishOrdinal,
	meridiem: latinMeridiem,
}

// persian renders on the Jalali calendar, as Iranian users expect from a
// "fa" timestamp.
var persian = &locale{
	tag:           language.Persian,
	cal:           jalali{},
	months:        jalaliMonths(),
	monthsShort:   jalaliMonths(),
	weekdays:      jalaliWeekdays(),
	weekdaysShort: jalaliWeekdays(),
	weekdaysMin:   []string{"ی", "د", "س", "چ", "پ", "ج", "ش"},
	dow:           6,
	doy:           12,
	longDate: map[string]string{
		"LT":   "HH:mm",
		"LTS":  "HH:mm:ss",
		"L":    "YYYY/MM/DD",
		"LL":   "D MMMM YYYY",
		"LLL":  "D MMMM YYYY HH:mm",
		"LLLL": "dddd, D MMMM YYYY HH:mm",
	},
	ordinal: func(n int, _ string) string { return strconv.Itoa(n) + "م" },
	meridiem: func(hour int, _ bool) string {
		if hour < 12 {
			return "قبل از ظهر"
		}
		return "بعد از ظهر"
	},
}

var german = &locale{
	tag: language.German,
	cal: gregorian{},
	months: []string{
		"Januar", "Februar", "März", "April", "Mai", "Juni", "Juli",
		"August", "September", "Oktober", "November", "Dezember",
	},
	monthsShort: []string{
		"Jan.", "Feb.", "März", "Apr.", "Mai", "Juni",
		"Juli", "Aug.", "Sep.", "Okt.", "Nov.", "Dez.",
	},
	weekdays: []string{
		"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag",
	},
	weekdaysShort: []string{"So.", "Mo.", "Di.", "Mi.", "Do.", "Fr.", "Sa."},
	weekdaysMin:   []string{"So", "Mo", "Di", "Mi", "Do", "Fr", "Sa"},
	dow:           1,
	doy:           4,
	longDate: map[string]string{
		"LT":   "HH:mm",
		"LTS":  "HH:mm:ss",
		"L":    "DD.MM.YYYY",
		"LL":   "D. MMMM YYYY",
		"LLL":  "D. MMMM YYYY HH:mm",
		"LLLL": "dddd, D. MMMM YYYY HH:mm",
	},
	ordinal:  func(n int, _ string) string { return strconv.Itoa(n) + "." },
	meridiem: latinMeridiem,
}

// supported lists the available locales. The first entry is the fallback.
var supported = []*locale{english, persian, german}

var matcher = func() language.Matcher {
	tags := make([]language.Tag, len(supported))
	for i, loc := range supported {
		tags[i] = loc.tag
	}
	return language.NewMatcher(tags)
}()

// lookupLocale returns the supported locale that best matches the given
// BCP 47 tag, and reports whether the match was a real one. Malformed and
// unsupported tags yield the fallback locale and false.
func lookupLocale(name string) (*locale, bool) {
	tag, err := language.Parse(name)
	if err != nil {
		return supported[0], false
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return supported[0], false
	}
	return supported[idx], true
}

func englishOrdinal(n int, _ string) string {
	s := strconv.Itoa(n)
	if (n%100)/10 == 1 {
		return s + "th"
	}
	switch n % 10 {
	case 1:
		return s + "st"
	case 2:
		return s + "nd"
	case 3:
		return s + "rd"
	}
	return s + "th"
}

func latinMeridiem(hour int, lower bool) string {
	switch {
	case hour < 12 && lower:
		return "am"
	case hour < 12:
		return "AM"
	case lower:
		return "pm"
	}
	return "PM"
}
