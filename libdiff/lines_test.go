package libdiff

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLines(t *testing.T) {
	from := "a\nb\nc\n"
	to := "a\n# B\nb\nc\n"
	got := Lines(from, to)
	want := []Line{
		{Equal, "a"},
		{Insert, "# B"},
		{Equal, "b"},
		{Equal, "c"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Lines mismatch (-want +got):\n%s", diff)
	}
	if !Changed(got) {
		t.Errorf("expected a change")
	}
	if Changed(Lines(from, from)) {
		t.Errorf("expected no change")
	}
}

func TestWrite(t *testing.T) {
	from := "1\n2\n3\n4\n5\n6\n"
	to := "1\n2\n3\n4\n# five\n5\n6\n"
	buf := &bytes.Buffer{}
	if err := Write(buf, "x.yaml", Lines(from, to), 1, nil); err != nil {
		t.Fatal(err)
	}
	want := "--- x.yaml\n+++ x.yaml (annotated)\n@@ -4 +4 @@\n 4\n+# five\n 5\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("Write mismatch (-want +got):\n%s", diff)
	}
}
