package tomldoc

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const sample = `# top comment
title = "x" # trailing

[server]
  # the port
  port = 8080
  "quoted.key" = 'v'
  a . b = 1
  s = """
multi [ line
"""
  list = [
    1, # one
    2,
  ]
  inline = { x = 1, y = [2, 3] }

[[users]]
name = "a"

[[users]]
name = "b"

[users.meta]
k = "it's"
# trailing comment
`

func TestParseRoundTrip(t *testing.T) {
	for _, src := range []string{
		sample,
		"",
		"a = 1",
		"\n\n# only comments\n",
		strings.ReplaceAll(sample, "\n", "\r\n"),
	} {
		doc, err := Parse(src)
		if err != nil {
			t.Fatalf("%q: %v", src, err)
		}
		if got := doc.String(); got != src {
			t.Errorf("round trip:\n%s", cmp.Diff(src, got))
		}
	}
}

func TestParseItems(t *testing.T) {
	doc, err := Parse(sample)
	if err != nil {
		t.Fatal(err)
	}
	type item struct {
		Kind Kind
		Path string
		Line int
	}
	var got []item
	for _, it := range doc.Items() {
		got = append(got, item{it.Kind, strings.Join(it.Path, "."), it.Pos.Line})
	}
	want := []item{
		{KeyValue, "title", 2},
		{Table, "server", 4},
		{KeyValue, "server.port", 6},
		{KeyValue, "server.quoted.key", 7},
		{KeyValue, "server.a.b", 8},
		{KeyValue, "server.s", 9},
		{KeyValue, "server.list", 12},
		{KeyValue, "server.inline", 16},
		{ArrayTable, "users", 18},
		{KeyValue, "users.name", 19},
		{ArrayTable, "users", 21},
		{KeyValue, "users.name", 22},
		{Table, "users.meta", 24},
		{KeyValue, "users.meta.k", 25},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("items (-want +got):\n%s", diff)
	}
	port := doc.Items()[2]
	if port.Decor().Prefix() != "  # the port\n  " {
		t.Errorf("prefix %q", port.Decor().Prefix())
	}
	if port.Indent() != "  " || port.EOL() != "\n" {
		t.Errorf("indent %q eol %q", port.Indent(), port.EOL())
	}
	if got := doc.Items()[1].Decor().Prefix(); got != "\n" {
		t.Errorf("server prefix %q", got)
	}
}

func TestParseCommentLikeStringContent(t *testing.T) {
	src := "a = \"\"\"\nx\n# not a comment\"\"\"\n# b\nb = [\n  1,\n\n]\n\nc = 1\n"
	doc, err := Parse(src)
	if err != nil {
		t.Fatal(err)
	}
	type item struct {
		Prefix, Body string
	}
	var got []item
	for _, it := range doc.Items() {
		got = append(got, item{it.Decor().Prefix(), it.Body()})
	}
	want := []item{
		{"", "a = \"\"\"\nx\n# not a comment\"\"\"\n"},
		{"# b\n", "b = [\n  1,\n\n]\n"},
		{"\n", "c = 1\n"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("items (-want +got):\n%s", diff)
	}
	if doc.String() != src {
		t.Errorf("round trip:\n%s", cmp.Diff(src, doc.String()))
	}
}

func TestSetPrefix(t *testing.T) {
	doc, err := Parse("[a]\nb = 1\n")
	if err != nil {
		t.Fatal(err)
	}
	b := doc.Items()[1]
	b.Decor().SetPrefix("# B\n" + b.Decor().Prefix())
	if got, want := doc.String(), "[a]\n# B\nb = 1\n"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestParseError(t *testing.T) {
	_, err := Parse("a = 1\nb = \n")
	if !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
	var e *Error
	if !errors.As(err, &e) || e.Pos == nil || e.Pos.Line != 2 {
		t.Errorf("expected a position on line 2, got %v", err)
	}
	if _, err := Parse("a = 1\na = 2\n"); !errors.Is(err, ErrParse) {
		t.Errorf("duplicate key: expected ErrParse, got %v", err)
	}
}
