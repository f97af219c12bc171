// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

// Package moment formats times using the pattern language of the moment.js
// date library, e.g. "YYYYMMDDHHmm" or "dddd, MMMM Do YYYY".
//
// A pattern is a sequence of field tokens and literal text. Tokens are
// matched greedily at each position, so "DDDD" is the zero-padded day of the
// year rather than two day-of-month fields. Text inside square brackets, and
// any character following a backslash, is copied verbatim. Characters that
// do not begin a token are also copied verbatim.
//
// Formatting is localized: each Formatter renders names, ordinals and
// localized formats (LT, L, LL, ...) for one locale. The "fa" locale renders
// on the Jalali calendar.
package moment

import (
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
)

// ISOFormat is the pattern used in place of an empty one.
const ISOFormat = "YYYY-MM-DDTHH:mm:ssZ"

// A Formatter renders times in a single locale. A zero Formatter is not
// ready for use; call New to construct one.
type Formatter struct {
	loc     *locale
	matched bool
}

// New constructs a Formatter for the named locale, a BCP 47 tag such as
// "en", "fa" or "de-AT". If the locale is malformed or not supported, the
// Formatter uses English; use Matched to detect this.
func New(locale string) *Formatter {
	loc, ok := lookupLocale(locale)
	return &Formatter{loc: loc, matched: ok}
}

// Locale reports the tag of the locale f renders in.
func (f *Formatter) Locale() string { return f.loc.name() }

// Matched reports whether the locale requested from New was supported.
func (f *Formatter) Matched() bool { return f.matched }

// Calendar reports the name of the calendar system f renders in.
func (f *Formatter) Calendar() string { return f.loc.cal.name() }

// Format renders t according to pattern. An empty pattern means ISOFormat.
func (f *Formatter) Format(t time.Time, pattern string) (string, error) {
	if pattern == "" {
		pattern = ISOFormat
	}
	parts, err := f.loc.parse(pattern)
	if err != nil {
		return "", err
	}
	if !f.loc.cal.contains(t) {
		return "", errors.Newf("time %v is outside the range of the %s calendar", t, f.loc.cal.name())
	}
	m := newMoment(t, f.loc)
	var sb strings.Builder
	for _, p := range parts {
		if p.field {
			sb.WriteString(m.render(p.text))
		} else {
			sb.WriteString(p.text)
		}
	}
	return sb.String(), nil
}

// Now formats the current local time according to pattern.
func (f *Formatter) Now(pattern string) (string, error) { return f.Format(time.Now(), pattern) }

// Validate reports whether pattern can be used to format a time, by
// formatting a fixed time with it. Only a malformed pattern, one with an
// unterminated [literal] or a trailing backslash, is rejected.
func Validate(pattern string) error {
	_, err := probe.Format(time.Unix(0, 0).UTC(), pattern)
	return err
}

var probe = &Formatter{loc: english, matched: true}

// A piece is either a field token or a run of literal text.
type piece struct {
	text  string
	field bool
}

var fieldTokens = []string{
	"YYYY", "YY", "Y",
	"Qo", "Q",
	"MMMM", "MMM", "Mo", "MM", "M",
	"DDDD", "DDDo", "DDD", "Do", "DD", "D",
	"dddd", "ddd", "do", "dd", "d", "e", "E",
	"wo", "ww", "w", "Wo", "WW", "W",
	"gggg", "gg", "GGGG", "GG",
	"A", "a", "HH", "H", "hh", "h", "kk", "k", "mm", "m", "ss", "s",
	"SSSSSSSSS", "SSSSSSSS", "SSSSSSS", "SSSSSS", "SSSSS", "SSSS", "SSS", "SS", "S",
	"ZZ", "Z", "X", "x",
}

// longTokens name the localized formats, which expand to other patterns.
var longTokens = []string{
	"LTS", "LT", "LLLL", "LLL", "LL", "L", "llll", "lll", "ll", "l",
}

// allTokens holds every token, longest first, so the first prefix match at a
// position is the greedy one.
var allTokens = func() []string {
	all := append(append([]string(nil), fieldTokens...), longTokens...)
	sort.SliceStable(all, func(i, j int) bool { return len(all[i]) > len(all[j]) })
	return all
}()

func matchToken(s string) string {
	for _, tok := range allTokens {
		if strings.HasPrefix(s, tok) {
			return tok
		}
	}
	return ""
}

// shorten derives the abbreviated localized formats (l, ll, ...) from the
// full ones.
var shorten = strings.NewReplacer("MMMM", "MMM", "MM", "M", "DD", "D", "dddd", "ddd")

// expand returns the pattern for the localized format tok.
func (l *locale) expand(tok string) string {
	if up := strings.ToUpper(tok); up != tok {
		return shorten.Replace(l.longDate[up])
	}
	return l.longDate[tok]
}

// parse splits pattern into pieces, expanding localized formats for l.
func (l *locale) parse(pattern string) ([]piece, error) {
	var parts []piece
	addText := func(s string) {
		if n := len(parts); n != 0 && !parts[n-1].field {
			parts[n-1].text += s
		} else if s != "" {
			parts = append(parts, piece{text: s})
		}
	}

	for i := 0; i < len(pattern); {
		switch pattern[i] {
		case '[':
			end := strings.IndexByte(pattern[i+1:], ']')
			if end < 0 {
				return nil, errors.Newf("unterminated literal at offset %d in %q", i, pattern)
			}
			addText(pattern[i+1 : i+1+end])
			i += end + 2
			continue

		case '\\':
			if i+1 == len(pattern) {
				return nil, errors.Newf("trailing backslash in %q", pattern)
			}
			_, n := utf8.DecodeRuneInString(pattern[i+1:])
			addText(pattern[i+1 : i+1+n])
			i += 1 + n
			continue
		}

		tok := matchToken(pattern[i:])
		switch {
		case tok == "":
			_, n := utf8.DecodeRuneInString(pattern[i:])
			addText(pattern[i : i+n])
			i += n
			continue
		case tok[0] == 'L' || tok[0] == 'l':
			sub, err := l.parse(l.expand(tok))
			if err != nil {
				return nil, errors.Wrapf(err, "expanding %q", tok)
			}
			for _, p := range sub {
				if p.field {
					parts = append(parts, p)
				} else {
					addText(p.text)
				}
			}
		default:
			parts = append(parts, piece{text: tok, field: true})
		}
		i += len(tok)
	}
	return parts, nil
}
