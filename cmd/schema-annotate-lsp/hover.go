package main

import (
	"context"
	"fmt"
	"strings"

	"go.lsp.dev/protocol"

	"github.com/signadot/schema-annotator/annotation"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.err != nil {
		return nil, nil
	}
	line := int(params.Position.Line)
	k := doc.key(line)
	if k == nil {
		return nil, nil
	}
	rec := s.annotations.Get(k.Path)
	if rec == nil {
		return nil, nil
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: hoverText(rec),
		},
		Range: &protocol.Range{
			Start: protocol.Position{Line: uint32(line)},
			End:   protocol.Position{Line: uint32(line + 1)},
		},
	}, nil
}

func hoverText(rec *annotation.Record) string {
	var parts []string
	if rec.Title != "" {
		parts = append(parts, "**"+rec.Title+"**")
	}
	if rec.Description != "" {
		parts = append(parts, rec.Description)
	}
	if rec.Default != "" {
		parts = append(parts, fmt.Sprintf("Default: `%s`", rec.Default))
	}
	parts = append(parts, fmt.Sprintf("`%s`", rec.Path))
	return strings.Join(parts, "\n\n")
}
