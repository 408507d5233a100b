package eval

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/schema-annotator/annotation"
)

func TestFilter(t *testing.T) {
	m := annotation.NewMap()
	m.Insert(&annotation.Record{Path: annotation.Path{"server"}, Title: "Server"})
	m.Insert(&annotation.Record{Path: annotation.Path{"server", "port"}, Title: "Port", Default: "8080"})
	m.Insert(&annotation.Record{Path: annotation.Path{"serverless"}, Description: "no title"})
	m.Insert(&annotation.Record{Path: annotation.Path{"client", "port"}, Title: "Client port"})
	tests := []struct {
		src  string
		want []string
	}{
		{`true`, []string{"client.port", "server", "server.port", "serverless"}},
		{`under(path, "server")`, []string{"server", "server.port"}},
		{`key == "port"`, []string{"client.port", "server.port"}},
		{`depth == 1 && title != ""`, []string{"server"}},
		{`default != ""`, []string{"server.port"}},
		{`description contains "title"`, []string{"serverless"}},
	}
	for _, tc := range tests {
		t.Run(tc.src, func(t *testing.T) {
			f, err := Compile(tc.src)
			if err != nil {
				t.Fatal(err)
			}
			res, err := f.Apply(m)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.want, res.Paths()); diff != "" {
				t.Errorf("paths (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCompileError(t *testing.T) {
	for _, src := range []string{`path +`, `depth`, `nosuch == 1`} {
		if _, err := Compile(src); !errors.Is(err, ErrCompile) {
			t.Errorf("%s: expected ErrCompile, got %v", src, err)
		}
	}
}
