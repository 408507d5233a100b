package annotation

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPathAppend(t *testing.T) {
	base := make(Path, 1, 4)
	base[0] = "a"
	x := base.Append("x")
	y := base.Append("y")
	if x.String() != "a.x" || y.String() != "a.y" {
		t.Errorf("branches share storage: %s %s", x, y)
	}
	if !(Path{}).IsRoot() || (Path{}).String() != "" {
		t.Errorf("root path")
	}
	if y.Key() != "y" {
		t.Errorf("key %q", y.Key())
	}
}

func TestMapInsert(t *testing.T) {
	m := NewMap()
	m.Insert(&Record{Path: Path{"a"}, Title: "first"})
	m.Insert(&Record{Path: Path{"a"}, Title: "second"})
	m.Insert(&Record{Path: Path{"b"}})
	m.Insert(&Record{Title: "root"})
	m.Insert(&Record{Path: Path{"c", "d"}, Description: "cd"})
	if m.Len() != 2 {
		t.Fatalf("expected 2 records, got %d", m.Len())
	}
	if got := m.Get(Path{"a"}).Title; got != "second" {
		t.Errorf("later insert should win, got %q", got)
	}
	if m.Get(Path{"b"}) != nil {
		t.Errorf("empty record stored")
	}
	if diff := cmp.Diff([]string{"a", "c.d"}, m.Paths()); diff != "" {
		t.Errorf("paths (-want +got):\n%s", diff)
	}
}

func TestMapFilter(t *testing.T) {
	m := NewMap()
	m.Insert(&Record{Path: Path{"server"}, Title: "Server"})
	m.Insert(&Record{Path: Path{"server", "port"}, Title: "Port"})
	m.Insert(&Record{Path: Path{"client"}, Title: "Client"})
	f, err := m.Filter(func(r *Record) (bool, error) {
		return strings.HasPrefix(r.Path.String(), "server"), nil
	})
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	f.Each(func(r *Record) { got = append(got, r.Title) })
	if diff := cmp.Diff([]string{"Server", "Port"}, got); diff != "" {
		t.Errorf("filter (-want +got):\n%s", diff)
	}
	if m.Len() != 3 {
		t.Errorf("filter modified source map")
	}
}
