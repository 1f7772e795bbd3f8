package dom

import (
	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"
)

// Find returns the first node matching the XPath expression, or nil with a
// nil error when nothing matches. The error reports an invalid expression.
func Find(n *html.Node, expr string) (*html.Node, error) {
	return htmlquery.Query(n, expr)
}

// FindAll returns every node matching the XPath expression in document order.
func FindAll(n *html.Node, expr string) ([]*html.Node, error) {
	return htmlquery.QueryAll(n, expr)
}
