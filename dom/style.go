package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// Inline style access. Declarations keep their order across edits so a
// rewritten style attribute stays recognizable next to the source document.

type declaration struct {
	prop  string
	value string
}

// Style returns the value of a property in the element's inline style
// attribute, or "". Property names are case-insensitive.
func Style(n *html.Node, prop string) string {
	prop = strings.ToLower(strings.TrimSpace(prop))
	for _, d := range parseStyle(Attr(n, "style")) {
		if d.prop == prop {
			return d.value
		}
	}
	return ""
}

// SetStyle sets a property in the inline style attribute, replacing an
// existing declaration in place or appending a new one.
func SetStyle(n *html.Node, prop, value string) {
	if n == nil {
		return
	}
	prop = strings.ToLower(strings.TrimSpace(prop))
	if prop == "" {
		return
	}
	decls := parseStyle(Attr(n, "style"))
	replaced := false
	for i := range decls {
		if decls[i].prop == prop {
			decls[i].value = value
			replaced = true
			break
		}
	}
	if !replaced {
		decls = append(decls, declaration{prop: prop, value: value})
	}
	SetAttr(n, "style", buildStyle(decls))
}

// RemoveStyle deletes a property from the inline style attribute. When the
// last declaration goes, the style attribute itself is removed.
func RemoveStyle(n *html.Node, prop string) {
	if n == nil {
		return
	}
	prop = strings.ToLower(strings.TrimSpace(prop))
	decls := parseStyle(Attr(n, "style"))
	kept := decls[:0]
	for _, d := range decls {
		if d.prop != prop {
			kept = append(kept, d)
		}
	}
	if len(kept) == 0 {
		RemoveAttr(n, "style")
		return
	}
	SetAttr(n, "style", buildStyle(kept))
}

func parseStyle(s string) []declaration {
	var out []declaration
	for _, part := range strings.Split(s, ";") {
		prop, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		prop = strings.ToLower(strings.TrimSpace(prop))
		value = strings.TrimSpace(value)
		if prop == "" || value == "" {
			continue
		}
		out = append(out, declaration{prop: prop, value: value})
	}
	return out
}

func buildStyle(decls []declaration) string {
	parts := make([]string, len(decls))
	for i, d := range decls {
		parts[i] = d.prop + ": " + d.value
	}
	return strings.Join(parts, "; ")
}
