package main

import (
	"context"
	"strings"

	"go.lsp.dev/protocol"

	annotator "github.com/signadot/schema-annotator"
	"github.com/signadot/schema-annotator/annotation"
)

const annotateKind protocol.CodeActionKind = "source.annotate"

func (s *Server) CodeAction(ctx context.Context, params *protocol.CodeActionParams) ([]protocol.CodeAction, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || !doc.known || doc.err != nil {
		return nil, nil
	}
	var res []protocol.CodeAction
	for _, a := range []struct {
		title    string
		preserve bool
	}{
		{"Annotate from schema", true},
		{"Replace annotations from schema", false},
	} {
		cfg := s.cfg
		cfg.PreserveExisting = a.preserve
		edits, err := annotateEdits(doc, s.annotations, cfg)
		if err != nil {
			return nil, err
		}
		if len(edits) == 0 {
			continue
		}
		res = append(res, protocol.CodeAction{
			Title: a.title,
			Kind:  annotateKind,
			Edit: &protocol.WorkspaceEdit{
				Changes: map[protocol.DocumentURI][]protocol.TextEdit{
					protocol.DocumentURI(doc.uri): edits,
				},
			},
		})
	}
	return res, nil
}

// Formatting replaces annotations in place, which is stable under repeated
// application.
func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || !doc.known || doc.err != nil {
		return nil, nil
	}
	cfg := s.cfg
	cfg.PreserveExisting = false
	return annotateEdits(doc, s.annotations, cfg)
}

// annotateEdits annotates the whole document, returning a single edit or
// none when nothing changes.
func annotateEdits(doc *document, m *annotation.Map, cfg annotation.Config) ([]protocol.TextEdit, error) {
	out, err := annotator.AnnotateMap(m, doc.content, doc.format, cfg)
	if err != nil {
		return nil, err
	}
	if out == doc.content {
		return nil, nil
	}
	return []protocol.TextEdit{{
		Range:   wholeRange(doc.content),
		NewText: out,
	}}, nil
}

func wholeRange(content string) protocol.Range {
	lines := strings.Split(content, "\n")
	last := lines[len(lines)-1]
	return protocol.Range{
		Start: protocol.Position{Line: 0, Character: 0},
		End: protocol.Position{
			Line:      uint32(len(lines) - 1),
			Character: uint32(len([]rune(last))),
		},
	}
}
