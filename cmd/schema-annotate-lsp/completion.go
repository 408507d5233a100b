package main

import (
	"context"
	"slices"
	"strings"

	"go.lsp.dev/protocol"

	annotator "github.com/signadot/schema-annotator"
	"github.com/signadot/schema-annotator/annotation"
	"github.com/signadot/schema-annotator/format"
)

// Completion offers the schema keys that are siblings of the nearest key
// above the cursor, and its children, skipping keys already present.
func (s *Server) Completion(ctx context.Context, params *protocol.CompletionParams) (*protocol.CompletionList, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.err != nil {
		return nil, nil
	}
	return &protocol.CompletionList{
		Items: completions(s.annotations, doc.keys, doc.format, int(params.Position.Line)),
	}, nil
}

func completions(m *annotation.Map, keys []annotator.Located, f format.Format, line int) []protocol.CompletionItem {
	var above *annotator.Located
	for i := range keys {
		if keys[i].Line > line+1 {
			break
		}
		above = &keys[i]
	}
	parents := []string{""}
	if above != nil {
		parents = []string{above.Path.String(), parentOf(above.Path).String()}
	}
	present := map[string]bool{}
	for _, k := range keys {
		present[k.Path.String()] = true
	}
	items := []protocol.CompletionItem{}
	m.Each(func(r *annotation.Record) {
		if present[r.Path.String()] || !slices.Contains(parents, parentOf(r.Path).String()) {
			return
		}
		key := r.Path.Key()
		sep := ": "
		if f.IsTOML() {
			sep = " = "
		}
		items = append(items, protocol.CompletionItem{
			Label:      key,
			Kind:       protocol.CompletionItemKindProperty,
			Detail:     r.Title,
			InsertText: key + sep,
			Documentation: protocol.MarkupContent{
				Kind:  protocol.Markdown,
				Value: hoverText(r),
			},
		})
	})
	slices.SortFunc(items, func(a, b protocol.CompletionItem) int {
		return strings.Compare(a.Label, b.Label)
	})
	return items
}

func parentOf(p annotation.Path) annotation.Path {
	if len(p) == 0 {
		return p
	}
	return p[:len(p)-1]
}
