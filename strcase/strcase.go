// Package strcase converts identifiers between the cases scripting code
// juggles constantly: camelCase, PascalCase, snake_case, kebab-case and
// Title Case. Input may be in any of those (or a mix); words are recognized
// on delimiter runes and on case boundaries, so "HTTPServer-v2" and
// "http_server_v2" both normalize the same way.
package strcase

import (
	"strings"
	"unicode"
)

// Camel converts s to camelCase: "user-id" → "userId".
func Camel(s string) string {
	w := words(s)
	if len(w) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(w[0])
	for _, word := range w[1:] {
		b.WriteString(capitalize(word))
	}
	return b.String()
}

// Pascal converts s to PascalCase: "user-id" → "UserId".
func Pascal(s string) string {
	var b strings.Builder
	for _, word := range words(s) {
		b.WriteString(capitalize(word))
	}
	return b.String()
}

// Snake converts s to snake_case: "userId" → "user_id".
func Snake(s string) string {
	return strings.Join(words(s), "_")
}

// Kebab converts s to kebab-case: "userId" → "user-id".
func Kebab(s string) string {
	return strings.Join(words(s), "-")
}

// Title converts s to space-separated Title Case: "user-id" → "User Id".
func Title(s string) string {
	w := words(s)
	for i, word := range w {
		w[i] = capitalize(word)
	}
	return strings.Join(w, " ")
}

// words splits s into lower-case tokens. Boundaries are delimiter runes
// (space, tab, '-', '_', '.', '/') and case transitions: an upper-case rune
// after a lower-case rune or digit starts a word, as does the last upper of
// an acronym run when a lower follows ("HTTPServer" → http, server).
func words(s string) []string {
	runes := []rune(s)
	var out []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			out = append(out, strings.ToLower(string(cur)))
			cur = cur[:0]
		}
	}
	for i, r := range runes {
		if isDelimiter(r) {
			flush()
			continue
		}
		if unicode.IsUpper(r) && len(cur) > 0 {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if !unicode.IsUpper(prev) || nextLower {
				flush()
			}
		}
		cur = append(cur, r)
	}
	flush()
	return out
}

func isDelimiter(r rune) bool {
	switch r {
	case ' ', '\t', '-', '_', '.', '/':
		return true
	}
	return false
}

func capitalize(word string) string {
	r := []rune(word)
	if len(r) == 0 {
		return ""
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
