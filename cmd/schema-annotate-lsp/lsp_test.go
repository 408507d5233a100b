package main

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.lsp.dev/protocol"

	"github.com/signadot/schema-annotator/annotation"
)

func testServer() *Server {
	m := annotation.NewMap()
	m.Insert(&annotation.Record{Path: annotation.Path{"port"}, Title: "Port", Description: "Listen port", Default: "8080"})
	m.Insert(&annotation.Record{Path: annotation.Path{"db"}, Title: "Database"})
	m.Insert(&annotation.Record{Path: annotation.Path{"db", "host"}, Description: "Database host"})
	m.Insert(&annotation.Record{Path: annotation.Path{"db", "user"}, Title: "User"})
	return newServer(m, annotation.DefaultConfig())
}

func open(t *testing.T, s *Server, uri, text string) {
	t.Helper()
	err := s.DidOpen(context.Background(), &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: protocol.DocumentURI(uri), Text: text, Version: 1},
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestHover(t *testing.T) {
	s := testServer()
	open(t, s, "file:///c.yaml", "port: 1\ndb:\n  host: x\n  other: y\n")
	tests := []struct {
		line uint32
		want string
	}{
		{0, "**Port**\n\nListen port\n\nDefault: `8080`\n\n`port`"},
		{2, "Database host\n\n`db.host`"},
		{3, ""},
	}
	for _, tt := range tests {
		h, err := s.Hover(context.Background(), &protocol.HoverParams{
			TextDocumentPositionParams: protocol.TextDocumentPositionParams{
				TextDocument: protocol.TextDocumentIdentifier{URI: "file:///c.yaml"},
				Position:     protocol.Position{Line: tt.line},
			},
		})
		if err != nil {
			t.Fatal(err)
		}
		got := ""
		if h != nil {
			got = h.Contents.Value
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("line %d (-want +got):\n%s", tt.line, diff)
		}
	}
}

func TestDiagnostics(t *testing.T) {
	s := testServer()
	doc := s.docs.put("file:///c.toml", "", "a = \n", 1)
	ds := diagnostics(doc)
	if len(ds) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(ds))
	}
	if ds[0].Range.Start.Line != 0 {
		t.Errorf("diagnostic on line %d, want 0", ds[0].Range.Start.Line)
	}
	doc = s.docs.put("file:///c.toml", "", "a = 1\n", 2)
	if ds := diagnostics(doc); len(ds) != 0 {
		t.Errorf("unexpected diagnostics %v", ds)
	}
}

func TestFormatting(t *testing.T) {
	s := testServer()
	open(t, s, "file:///c.toml", "port = 1\n")
	edits, err := s.Formatting(context.Background(), &protocol.DocumentFormattingParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: "file:///c.toml"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(edits) != 1 {
		t.Fatalf("got %d edits, want 1", len(edits))
	}
	want := "# Port\n# Listen port\nport = 1\n"
	if diff := cmp.Diff(want, edits[0].NewText); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	open(t, s, "file:///c.toml", want)
	edits, err = s.Formatting(context.Background(), &protocol.DocumentFormattingParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: "file:///c.toml"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(edits) != 0 {
		t.Errorf("formatting an annotated document gave %v", edits)
	}
}

func TestCompletion(t *testing.T) {
	s := testServer()
	open(t, s, "file:///c.yaml", "db:\n  host: x\n  \n")
	list, err := s.Completion(context.Background(), &protocol.CompletionParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: "file:///c.yaml"},
			Position:     protocol.Position{Line: 2, Character: 2},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for _, it := range list.Items {
		got = append(got, it.Label+"|"+it.InsertText)
	}
	want := []string{"user|user: "}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestDidChangeReplacesDocument(t *testing.T) {
	s := testServer()
	uri := protocol.DocumentURI("file:///c.yaml")
	open(t, s, string(uri), "server:\n  port: 8080\n")
	// an edit at the very start of the document
	text := "# hi\nport: 1\n"
	err := s.DidChange(context.Background(), &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: uri},
			Version:                2,
		},
		ContentChanges: []protocol.TextDocumentContentChangeEvent{{Text: text}},
	})
	if err != nil {
		t.Fatal(err)
	}
	doc := s.docs.get(string(uri))
	if diff := cmp.Diff(text, doc.content); diff != "" {
		t.Errorf("content (-want +got):\n%s", diff)
	}
	if k := doc.key(1); k == nil || k.Path.String() != "port" {
		t.Errorf("key on line 1: %v", k)
	}
	if doc.format.String() != "yaml" {
		t.Errorf("format %s", doc.format)
	}
}
