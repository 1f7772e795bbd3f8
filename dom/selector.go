package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// Query returns the first descendant of n, in document order, matching the
// CSS-style selector, or nil. The supported subset covers the selectors
// scripting code reaches for in practice: tag names, #id, .class,
// [attr] and [attr=value] (optionally quoted), compounds of those
// ("div.note[data-kind=price]"), the descendant combinator (whitespace) and
// selector groups separated by commas. A selector that cannot be parsed
// matches nothing.
func Query(n *html.Node, selector string) *html.Node {
	var found *html.Node
	walk(n, compileList(selector), func(m *html.Node) bool {
		found = m
		return false
	})
	return found
}

// QueryAll returns every descendant of n matching the selector, in document
// order.
func QueryAll(n *html.Node, selector string) []*html.Node {
	var out []*html.Node
	walk(n, compileList(selector), func(m *html.Node) bool {
		out = append(out, m)
		return true
	})
	return out
}

// Matches reports whether n itself matches the selector.
func Matches(n *html.Node, selector string) bool {
	for _, chain := range compileList(selector) {
		if matchChain(n, chain) {
			return true
		}
	}
	return false
}

// walk visits descendants of n in document order, calling visit for each
// selector match until visit returns false.
func walk(n *html.Node, chains [][]compound, visit func(*html.Node) bool) {
	if n == nil || len(chains) == 0 {
		return
	}
	var rec func(*html.Node) bool
	rec = func(m *html.Node) bool {
		for c := m.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode {
				for _, chain := range chains {
					if matchChain(c, chain) {
						if !visit(c) {
							return false
						}
						break
					}
				}
			}
			if !rec(c) {
				return false
			}
		}
		return true
	}
	rec(n)
}

// compound is one simple-selector group: div.note[data-kind=price]#main.
type compound struct {
	tag     string
	id      string
	classes []string
	attrs   []attrMatch
	bad     bool
}

type attrMatch struct {
	name     string
	value    string
	hasValue bool
}

// compileList parses a comma-separated selector group into descendant
// chains. Malformed groups are dropped.
func compileList(selector string) [][]compound {
	var out [][]compound
	for _, group := range strings.Split(selector, ",") {
		chain, ok := compileChain(group)
		if ok {
			out = append(out, chain)
		}
	}
	return out
}

func compileChain(group string) ([]compound, bool) {
	fields := strings.Fields(group)
	if len(fields) == 0 {
		return nil, false
	}
	chain := make([]compound, 0, len(fields))
	for _, f := range fields {
		c := compileCompound(f)
		if c.bad {
			return nil, false
		}
		chain = append(chain, c)
	}
	return chain, true
}

func compileCompound(s string) compound {
	var c compound
	i := 0
	// Leading tag name or universal '*'.
	for i < len(s) && s[i] != '#' && s[i] != '.' && s[i] != '[' {
		i++
	}
	if tag := s[:i]; tag != "" && tag != "*" {
		c.tag = strings.ToLower(tag)
	}
	for i < len(s) {
		switch s[i] {
		case '#':
			name, next := ident(s, i+1)
			if name == "" {
				c.bad = true
				return c
			}
			c.id, i = name, next
		case '.':
			name, next := ident(s, i+1)
			if name == "" {
				c.bad = true
				return c
			}
			c.classes, i = append(c.classes, name), next
		case '[':
			end := strings.IndexByte(s[i:], ']')
			if end < 0 {
				c.bad = true
				return c
			}
			body := s[i+1 : i+end]
			i += end + 1
			name, value, hasValue := strings.Cut(body, "=")
			name = strings.TrimSpace(name)
			if name == "" {
				c.bad = true
				return c
			}
			value = strings.Trim(strings.TrimSpace(value), `"'`)
			c.attrs = append(c.attrs, attrMatch{name: name, value: value, hasValue: hasValue})
		default:
			c.bad = true
			return c
		}
	}
	return c
}

// ident consumes a selector identifier starting at i.
func ident(s string, i int) (string, int) {
	start := i
	for i < len(s) && s[i] != '#' && s[i] != '.' && s[i] != '[' {
		i++
	}
	return s[start:i], i
}

// matchChain checks the rightmost compound against n and the rest against
// successive ancestors, the way the descendant combinator resolves.
func matchChain(n *html.Node, chain []compound) bool {
	if len(chain) == 0 || !matchCompound(n, chain[len(chain)-1]) {
		return false
	}
	rest := chain[:len(chain)-1]
	anc := n.Parent
	for len(rest) > 0 {
		if anc == nil {
			return false
		}
		if anc.Type == html.ElementNode && matchCompound(anc, rest[len(rest)-1]) {
			rest = rest[:len(rest)-1]
		}
		anc = anc.Parent
	}
	return true
}

func matchCompound(n *html.Node, c compound) bool {
	if n == nil || n.Type != html.ElementNode {
		return false
	}
	if c.tag != "" && n.Data != c.tag {
		return false
	}
	if c.id != "" && Attr(n, "id") != c.id {
		return false
	}
	for _, cl := range c.classes {
		if !HasClass(n, cl) {
			return false
		}
	}
	for _, a := range c.attrs {
		if !HasAttr(n, a.name) {
			return false
		}
		if a.hasValue && Attr(n, a.name) != a.value {
			return false
		}
	}
	return true
}
