// Package locale parses numbers the way a human from a given locale writes
// them: "1.234,56" for de-DE, "12 345,67" for fr-FR, "-$12,345,678.90" for
// en-US. The decimal separator is detected at call time by formatting a known
// fractional value under the requested locale, so the parser works for any
// locale x/text knows about without carrying separator tables of its own.
//
// All failure paths return math.NaN(); no function in this package panics or
// returns an error. Callers must check the result with math.IsNaN.
package locale

import (
	"math"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// ParseNumber parses value as a number written under the first well-formed
// locale in locales. When locales is empty the system locale is used (see
// System). Currency symbols, grouping separators, spaces and any other
// non-numeric runes are stripped; the locale's decimal separator is
// normalized to '.'. Unparseable input yields math.NaN().
//
//	ParseNumber("1,234.56 USD")          // 1234.56 (en)
//	ParseNumber("1.234,56 €", "de-DE")   // 1234.56
//	ParseNumber("foo")                   // NaN
func ParseNumber(value string, locales ...string) float64 {
	return ParseNumberTag(value, resolve(locales))
}

// ParseNumberTag is ParseNumber with an already-resolved language tag.
func ParseNumberTag(value string, tag language.Tag) float64 {
	sep := DecimalSeparator(tag)

	// Keep digits and signs, map the locale's decimal separator to '.',
	// drop everything else (currency symbols, grouping, spaces, letters).
	var b strings.Builder
	b.Grow(len(value))
	for _, r := range value {
		switch {
		case r >= '0' && r <= '9', r == '+', r == '-':
			b.WriteRune(r)
		case r == sep:
			b.WriteByte('.')
		}
	}
	return parseLeading(b.String())
}

// DecimalSeparator reports the decimal separator rune the given locale uses,
// detected by formatting the value 1.1 and taking the rune between the two
// digits. The probe is recomputed on every call; formatting conventions are
// a property of the tag, not of any cached state.
func DecimalSeparator(tag language.Tag) rune {
	probe := []rune(Format(1.1, tag))
	if len(probe) < 3 {
		return '.'
	}
	return probe[1]
}

// Format renders f under the locale's numeric formatting rules, including
// grouping separators. It is the inverse direction of ParseNumberTag:
// ParseNumberTag(Format(f, tag), tag) recovers f.
func Format(f float64, tag language.Tag) string {
	return message.NewPrinter(tag).Sprint(number.Decimal(f))
}

// System resolves the host's locale from the LC_ALL, LC_NUMERIC and LANG
// environment variables, in that order, falling back to English when none of
// them names a parseable locale. Values like "de_DE.UTF-8" are accepted.
func System() language.Tag {
	for _, key := range []string{"LC_ALL", "LC_NUMERIC", "LANG"} {
		v := os.Getenv(key)
		if v == "" || v == "C" || v == "POSIX" {
			continue
		}
		if i := strings.IndexByte(v, '.'); i >= 0 {
			v = v[:i] // strip codeset suffix
		}
		v = strings.ReplaceAll(v, "_", "-")
		if tag, err := language.Parse(v); err == nil {
			return tag
		}
	}
	return language.English
}

// resolve picks the first well-formed tag from the list. An empty or fully
// malformed list falls back to the system locale, mirroring how a browser
// falls back to its active locale list.
func resolve(locales []string) language.Tag {
	for _, loc := range locales {
		if tag, err := language.Parse(loc); err == nil {
			return tag
		}
	}
	return System()
}

// parseLeading parses the longest leading numeric run of a cleaned string:
// an optional sign, digits, at most one dot. Trailing garbage after a valid
// run is ignored. A second dot makes the separator ambiguous and the whole
// input invalid.
func parseLeading(s string) float64 {
	if strings.Count(s, ".") > 1 {
		return math.NaN()
	}
	end := numericPrefixLen(s)
	if end == 0 {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

// numericPrefixLen returns the byte length of the longest valid numeric
// prefix of s, or 0 when s does not start with a number. The prefix must
// contain at least one digit; "-", "." and "" all report 0.
func numericPrefixLen(s string) int {
	i, digits := 0, 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0
	}
	return i
}
