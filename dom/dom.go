// Package dom provides querying sugar and attribute/style accessors for
// golang.org/x/net/html node trees, with an API shaped after the browser DOM:
// CSS-style selectors, class-list helpers, data-* access and inline styles.
// XPath queries are available through antchfx/htmlquery (see Find, FindAll).
package dom

import (
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/jackhp95/util/strcase"
)

// Parse reads an HTML document from r.
func Parse(r io.Reader) (*html.Node, error) {
	return html.Parse(r)
}

// ParseString parses an HTML document held in a string.
func ParseString(s string) (*html.Node, error) {
	return html.Parse(strings.NewReader(s))
}

// TagName returns the lower-case tag name of an element node, or "" for any
// other node type.
func TagName(n *html.Node) string {
	if n == nil || n.Type != html.ElementNode {
		return ""
	}
	return n.Data
}

// Attr returns the value of the named attribute, or "" when absent.
func Attr(n *html.Node, name string) string {
	if n == nil {
		return ""
	}
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

// HasAttr reports whether the named attribute is present, even with an
// empty value.
func HasAttr(n *html.Node, name string) bool {
	if n == nil {
		return false
	}
	for _, a := range n.Attr {
		if a.Key == name {
			return true
		}
	}
	return false
}

// SetAttr sets the named attribute, replacing an existing value.
func SetAttr(n *html.Node, name, value string) {
	if n == nil {
		return
	}
	for i, a := range n.Attr {
		if a.Key == name {
			n.Attr[i].Val = value
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: name, Val: value})
}

// RemoveAttr deletes the named attribute if present.
func RemoveAttr(n *html.Node, name string) {
	if n == nil {
		return
	}
	for i, a := range n.Attr {
		if a.Key == name {
			n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
			return
		}
	}
}

// ID returns the element's id attribute.
func ID(n *html.Node) string {
	return Attr(n, "id")
}

// Text returns the concatenated text content of the node's subtree.
func Text(n *html.Node) string {
	var b strings.Builder
	collectText(n, &b)
	return b.String()
}

func collectText(n *html.Node, b *strings.Builder) {
	if n == nil {
		return
	}
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}

// Dataset returns the element's data-* attributes keyed by their camelCase
// property names, the way element.dataset exposes them:
// data-user-id="7" becomes {"userId": "7"}.
func Dataset(n *html.Node) map[string]string {
	if n == nil {
		return nil
	}
	out := make(map[string]string)
	for _, a := range n.Attr {
		if rest, ok := strings.CutPrefix(a.Key, "data-"); ok {
			out[strcase.Camel(rest)] = a.Val
		}
	}
	return out
}

// HasClass reports whether the element's class attribute contains name.
func HasClass(n *html.Node, name string) bool {
	for _, c := range strings.Fields(Attr(n, "class")) {
		if c == name {
			return true
		}
	}
	return false
}

// AddClass appends name to the class attribute unless already present.
func AddClass(n *html.Node, name string) {
	if n == nil || name == "" || HasClass(n, name) {
		return
	}
	cur := Attr(n, "class")
	if cur == "" {
		SetAttr(n, "class", name)
		return
	}
	SetAttr(n, "class", cur+" "+name)
}

// RemoveClass deletes name from the class attribute.
func RemoveClass(n *html.Node, name string) {
	if n == nil {
		return
	}
	fields := strings.Fields(Attr(n, "class"))
	kept := fields[:0]
	for _, c := range fields {
		if c != name {
			kept = append(kept, c)
		}
	}
	SetAttr(n, "class", strings.Join(kept, " "))
}

// ToggleClass adds name when absent and removes it when present, reporting
// whether the class is present afterwards.
func ToggleClass(n *html.Node, name string) bool {
	if HasClass(n, name) {
		RemoveClass(n, name)
		return false
	}
	AddClass(n, name)
	return true
}
