package dom_test

import (
	"testing"

	"golang.org/x/net/html"

	"github.com/jackhp95/util/dom"
)

const page = `<!doctype html>
<html><head><title>fixture</title></head>
<body>
  <div id="main" class="wrap">
    <p class="note first" data-user-id="7" style="color: red; width: 10px">Hello <b>world</b></p>
    <p class="note">Second</p>
    <span data-kind="price">1.234,56</span>
  </div>
  <div class="footer"><p>bye</p></div>
</body></html>`

func mustParse(t *testing.T) *html.Node {
	t.Helper()
	n, err := dom.ParseString(page)
	if err != nil {
		t.Fatalf("ParseString: %v", err)
	}
	return n
}

func TestQuery(t *testing.T) {
	doc := mustParse(t)

	main := dom.Query(doc, "#main")
	if main == nil || dom.TagName(main) != "div" {
		t.Fatalf("Query #main = %v", main)
	}
	if got := len(dom.QueryAll(doc, "p.note")); got != 2 {
		t.Fatalf("QueryAll p.note = %d nodes; want 2", got)
	}
	if got := len(dom.QueryAll(doc, "p.note, span")); got != 3 {
		t.Fatalf("QueryAll group = %d nodes; want 3", got)
	}
	if got := dom.Text(dom.Query(doc, "div.footer p")); got != "bye" {
		t.Fatalf("descendant query text = %q; want bye", got)
	}
	if got := dom.Text(dom.Query(doc, "[data-kind=price]")); got != "1.234,56" {
		t.Fatalf("attr query text = %q", got)
	}
	if dom.Query(doc, ".missing") != nil {
		t.Fatal("Query .missing should be nil")
	}
	if dom.Query(doc, "p..") != nil {
		t.Fatal("malformed selector should match nothing")
	}
}

func TestQueryScopedToSubtree(t *testing.T) {
	doc := mustParse(t)
	footer := dom.Query(doc, "div.footer")
	if dom.Query(footer, ".note") != nil {
		t.Fatal("Query must not escape the subtree it was given")
	}
	if dom.Query(footer, "p") == nil {
		t.Fatal("Query inside footer should find its own p")
	}
}

func TestMatches(t *testing.T) {
	doc := mustParse(t)
	p := dom.Query(doc, "p.first")
	if p == nil {
		t.Fatal("fixture p.first missing")
	}
	for sel, want := range map[string]bool{
		"p":                     true,
		"p.note.first":          true,
		"#main p":               true,
		"div.wrap p[data-user-id=7]": true,
		"span":                  false,
		"div.footer p":          false,
	} {
		if got := dom.Matches(p, sel); got != want {
			t.Errorf("Matches(p, %q) = %v; want %v", sel, got, want)
		}
	}
}

func TestText(t *testing.T) {
	doc := mustParse(t)
	if got := dom.Text(dom.Query(doc, "p.first")); got != "Hello world" {
		t.Fatalf("Text = %q; want %q", got, "Hello world")
	}
}

func TestAttrs(t *testing.T) {
	doc := mustParse(t)
	p := dom.Query(doc, "p.first")

	if got := dom.Attr(p, "data-user-id"); got != "7" {
		t.Fatalf("Attr = %q; want 7", got)
	}
	if !dom.HasAttr(p, "style") || dom.HasAttr(p, "href") {
		t.Fatal("HasAttr mismatch")
	}

	dom.SetAttr(p, "data-user-id", "8")
	dom.SetAttr(p, "title", "greeting")
	if dom.Attr(p, "data-user-id") != "8" || dom.Attr(p, "title") != "greeting" {
		t.Fatal("SetAttr mismatch")
	}

	dom.RemoveAttr(p, "title")
	if dom.HasAttr(p, "title") {
		t.Fatal("RemoveAttr left the attribute behind")
	}
}

func TestDataset(t *testing.T) {
	doc := mustParse(t)
	ds := dom.Dataset(dom.Query(doc, "p.first"))
	if ds["userId"] != "7" {
		t.Fatalf("Dataset = %v; want userId=7", ds)
	}
}

func TestClassList(t *testing.T) {
	doc := mustParse(t)
	p := dom.Query(doc, "p.first")

	if !dom.HasClass(p, "note") || dom.HasClass(p, "hidden") {
		t.Fatal("HasClass mismatch")
	}

	dom.AddClass(p, "hidden")
	dom.AddClass(p, "hidden") // idempotent
	if dom.Attr(p, "class") != "note first hidden" {
		t.Fatalf("class after AddClass = %q", dom.Attr(p, "class"))
	}

	dom.RemoveClass(p, "note")
	if dom.HasClass(p, "note") {
		t.Fatal("RemoveClass left the class behind")
	}

	if dom.ToggleClass(p, "first") {
		t.Fatal("ToggleClass of present class should report false")
	}
	if !dom.ToggleClass(p, "first") {
		t.Fatal("ToggleClass of absent class should report true")
	}
}

func TestStyle(t *testing.T) {
	doc := mustParse(t)
	p := dom.Query(doc, "p.first")

	if got := dom.Style(p, "color"); got != "red" {
		t.Fatalf("Style color = %q; want red", got)
	}
	if got := dom.Style(p, "WIDTH"); got != "10px" {
		t.Fatalf("Style is case-insensitive on the property; got %q", got)
	}

	dom.SetStyle(p, "color", "blue")
	dom.SetStyle(p, "margin", "0")
	if dom.Attr(p, "style") != "color: blue; width: 10px; margin: 0" {
		t.Fatalf("style after edits = %q", dom.Attr(p, "style"))
	}

	dom.RemoveStyle(p, "width")
	dom.RemoveStyle(p, "color")
	dom.RemoveStyle(p, "margin")
	if dom.HasAttr(p, "style") {
		t.Fatal("empty style attribute should be removed")
	}
}

func TestXPath(t *testing.T) {
	doc := mustParse(t)

	span, err := dom.Find(doc, "//span[@data-kind='price']")
	if err != nil || span == nil {
		t.Fatalf("Find = %v, %v", span, err)
	}
	if got := dom.Text(span); got != "1.234,56" {
		t.Fatalf("xpath text = %q", got)
	}

	ps, err := dom.FindAll(doc, "//p")
	if err != nil || len(ps) != 3 {
		t.Fatalf("FindAll //p = %d nodes, err %v; want 3", len(ps), err)
	}
}
