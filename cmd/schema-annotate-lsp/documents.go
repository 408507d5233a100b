package main

import (
	"context"
	"errors"
	"strings"
	"sync"

	"go.lsp.dev/protocol"

	annotator "github.com/signadot/schema-annotator"
	"github.com/signadot/schema-annotator/debug"
	"github.com/signadot/schema-annotator/format"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

type document struct {
	uri     string
	content string
	version int32
	format  format.Format
	// known is false when neither the uri nor the language id names a
	// supported format.
	known bool
	keys  []annotator.Located
	err   error
}

// key returns the key starting on the 0-based line, if any.
func (d *document) key(line int) *annotator.Located {
	for i := range d.keys {
		if d.keys[i].Line == line+1 {
			return &d.keys[i]
		}
	}
	return nil
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri, languageID, content string, version int32) *document {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	doc := &document{
		uri:     uri,
		content: content,
		version: version,
	}
	if old := ds.docs[uri]; old != nil && languageID == "" {
		doc.format, doc.known = old.format, old.known
	} else {
		doc.format, doc.known = documentFormat(uri, languageID)
	}
	if doc.known {
		doc.keys, doc.err = annotator.Paths(content, doc.format)
	}
	if debug.LSP() {
		debug.Logf("lsp: %s v%d %s keys=%d err=%v\n", uri, version, doc.format, len(doc.keys), doc.err)
	}
	ds.docs[uri] = doc
	return doc
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func documentFormat(uri, languageID string) (format.Format, bool) {
	if f, err := format.FromPath(strings.TrimSuffix(uri, "/")); err == nil {
		return f, true
	}
	if f, err := format.ParseFormat(languageID); err == nil {
		return f, true
	}
	return 0, false
}

func (s *Server) publishDiagnostics(ctx context.Context, doc *document) {
	if s.conn == nil {
		return
	}
	s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         protocol.DocumentURI(doc.uri),
		Diagnostics: diagnostics(doc),
	})
}

func diagnostics(doc *document) []protocol.Diagnostic {
	res := []protocol.Diagnostic{}
	if doc.err == nil {
		return res
	}
	d := protocol.Diagnostic{
		Severity: protocol.DiagnosticSeverityError,
		Message:  doc.err.Error(),
		Source:   lsName,
	}
	var ae *annotator.Error
	if errors.As(doc.err, &ae) {
		d.Message = ae.Err.Error()
		if ae.Pos != nil {
			line, col := uint32(max(ae.Pos.Line-1, 0)), uint32(max(ae.Pos.Col-1, 0))
			d.Range = protocol.Range{
				Start: protocol.Position{Line: line, Character: col},
				End:   protocol.Position{Line: line, Character: col + 1},
			}
		}
	}
	return append(res, d)
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	td := params.TextDocument
	doc := s.docs.put(string(td.URI), string(td.LanguageID), td.Text, td.Version)
	s.publishDiagnostics(ctx, doc)
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil
	}
	// full sync: each change carries the whole document.
	if len(params.ContentChanges) == 0 {
		return nil
	}
	content := params.ContentChanges[len(params.ContentChanges)-1].Text
	doc = s.docs.put(string(params.TextDocument.URI), "", content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, doc)
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}
