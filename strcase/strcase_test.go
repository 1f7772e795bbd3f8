package strcase_test

import (
	"testing"

	"github.com/jackhp95/util/strcase"
)

func TestCamel(t *testing.T) {
	cases := map[string]string{
		"user-id":      "userId",
		"user_id":      "userId",
		"UserID":       "userId",
		"HTTPServer":   "httpServer",
		"foo bar baz":  "fooBarBaz",
		"alreadyCamel": "alreadyCamel",
		"v2Beta":       "v2Beta",
		"":             "",
	}
	for in, want := range cases {
		if got := strcase.Camel(in); got != want {
			t.Errorf("Camel(%q) = %q; want %q", in, got, want)
		}
	}
}

func TestPascal(t *testing.T) {
	cases := map[string]string{
		"user-id":    "UserId",
		"foo_bar":    "FooBar",
		"fooBar":     "FooBar",
		"HTTPServer": "HttpServer",
		"":           "",
	}
	for in, want := range cases {
		if got := strcase.Pascal(in); got != want {
			t.Errorf("Pascal(%q) = %q; want %q", in, got, want)
		}
	}
}

func TestSnake(t *testing.T) {
	cases := map[string]string{
		"userId":      "user_id",
		"UserID":      "user_id",
		"user-id":     "user_id",
		"HTTPServer":  "http_server",
		"foo bar":     "foo_bar",
		"already_ok":  "already_ok",
		"data.kind":   "data_kind",
		"":            "",
	}
	for in, want := range cases {
		if got := strcase.Snake(in); got != want {
			t.Errorf("Snake(%q) = %q; want %q", in, got, want)
		}
	}
}

func TestKebab(t *testing.T) {
	cases := map[string]string{
		"userId":     "user-id",
		"user_id":    "user-id",
		"FooBarBaz":  "foo-bar-baz",
		"HTTPServer": "http-server",
		"":           "",
	}
	for in, want := range cases {
		if got := strcase.Kebab(in); got != want {
			t.Errorf("Kebab(%q) = %q; want %q", in, got, want)
		}
	}
}

func TestTitle(t *testing.T) {
	cases := map[string]string{
		"user-id":  "User Id",
		"fooBar":   "Foo Bar",
		"foo  bar": "Foo Bar",
		"":         "",
	}
	for in, want := range cases {
		if got := strcase.Title(in); got != want {
			t.Errorf("Title(%q) = %q; want %q", in, got, want)
		}
	}
}
