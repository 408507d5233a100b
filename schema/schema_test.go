package schema

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/schema-annotator/annotation"
	"github.com/signadot/schema-annotator/value"
)

func mustJSON(t *testing.T, s string) *value.Value {
	t.Helper()
	v, err := value.FromJSON([]byte(s))
	if err != nil {
		t.Fatal(err)
	}
	return v
}

type rec struct {
	Title, Description, Default string
}

func records(m *annotation.Map) map[string]rec {
	res := map[string]rec{}
	m.Each(func(r *annotation.Record) {
		res[r.Path.String()] = rec{r.Title, r.Description, r.Default}
	})
	return res
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name   string
		schema string
		want   map[string]rec
	}{
		{
			name: "nested",
			schema: `{"title":"Root","properties":{
				"server":{"title":"Server","description":"HTTP server","properties":{
					"port":{"title":"Port"},
					"host":{"description":"Host name"}}},
				"plain":{"type":"string"}}}`,
			want: map[string]rec{
				"server":      {"Server", "HTTP server", ""},
				"server.port": {"Port", "", ""},
				"server.host": {"", "Host name", ""},
			},
		},
		{
			name: "items share the array key",
			schema: `{"properties":{"users":{"title":"Users","items":{
				"properties":{"name":{"title":"User Name"}}}}}}`,
			want: map[string]rec{
				"users":      {"Users", "", ""},
				"users.name": {"User Name", "", ""},
			},
		},
		{
			name: "tuple items",
			schema: `{"properties":{"pair":{"items":[
				{"properties":{"a":{"title":"A"}}},
				{"properties":{"b":{"title":"B"}}}]}}}`,
			want: map[string]rec{
				"pair.a": {"A", "", ""},
				"pair.b": {"B", "", ""},
			},
		},
		{
			name: "composition is not followed",
			schema: `{"properties":{"x":{"title":"X","oneOf":[
				{"properties":{"y":{"title":"Y"}}}]}}}`,
			want: map[string]rec{"x": {"X", "", ""}},
		},
		{
			name:   "malformed shapes are skipped",
			schema: `{"properties":{"a":{"properties":[1,2]},"b":{"title":3,"description":"B"},"c":true}}`,
			want:   map[string]rec{"b": {"", "B", ""}},
		},
		{
			name:   "empty strings are absent",
			schema: `{"properties":{"a":{"title":"","description":""}}}`,
			want:   map[string]rec{},
		},
		{
			name:   "defaults",
			schema: `{"properties":{"port":{"title":"Port","default":8080},"alone":{"default":{"a":[1]}}}}`,
			want:   map[string]rec{"port": {"Port", "", "8080"}},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := Extract(mustJSON(t, tc.schema))
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.want, records(m)); diff != "" {
				t.Errorf("records (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExtractRoot(t *testing.T) {
	m, err := Extract(value.FromBool(true))
	if err != nil || m.Len() != 0 {
		t.Errorf("boolean schema: %v %d", err, m.Len())
	}
	_, err = Extract(value.FromString("x"))
	if !errors.Is(err, ErrInvalidSchema) {
		t.Errorf("expected invalid schema, got %v", err)
	}
}

func TestRefEquivalence(t *testing.T) {
	withRef := mustJSON(t, `{"properties":{"home":{"$ref":"#/$defs/Address"}},
		"$defs":{"Address":{"title":"Address","description":"Postal address",
			"properties":{"city":{"title":"City"}}}}}`)
	inline := mustJSON(t, `{"properties":{"home":{"title":"Address","description":"Postal address",
		"properties":{"city":{"title":"City"}}}}}`)
	a, err := Extract(withRef)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Extract(inline)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(records(b), records(a)); diff != "" {
		t.Errorf("ref and inline differ (-inline +ref):\n%s", diff)
	}
}

func TestResolveRefs(t *testing.T) {
	root := mustJSON(t, `{
		"a":{"$ref":"#/definitions/b"},
		"definitions":{
			"b":{"x":{"$ref":"#/definitions/c"}},
			"c":{"title":"C"},
			"a~b/c":{"title":"escaped"},
			"sp ace":{"title":"space"}},
		"list":[{"title":"zero"}],
		"e":{"$ref":"#/definitions/a~0b~1c"},
		"f":{"$ref":"#/definitions/sp%20ace"},
		"g":{"$ref":"#/list/0"}}`)
	before, _ := root.MarshalJSON()
	res, err := ResolveRefs(root)
	if err != nil {
		t.Fatal(err)
	}
	after, _ := root.MarshalJSON()
	if string(before) != string(after) {
		t.Errorf("input modified")
	}
	check := func(v *value.Value, want string) {
		t.Helper()
		got, _ := v.StringField("title")
		if got != want {
			t.Errorf("got title %q want %q", got, want)
		}
	}
	check(res.Get("a").Get("x"), "C")
	check(res.Get("e"), "escaped")
	check(res.Get("f"), "space")
	check(res.Get("g"), "zero")
	if res.Get("a").Has(refKey) {
		t.Errorf("ref not replaced")
	}
}

func TestResolveRoot(t *testing.T) {
	root := mustJSON(t, `{"title":"R","properties":{"x":{"$ref":"#/$defs/y"}},"$defs":{"y":{"title":"Y"}}}`)
	res, err := ResolveRefs(root)
	if err != nil {
		t.Fatal(err)
	}
	if s, _ := res.Get("properties").Get("x").StringField("title"); s != "Y" {
		t.Errorf("got %q", s)
	}
}

func TestResolveErrors(t *testing.T) {
	tests := []struct {
		name   string
		schema string
		is     error
	}{
		{"external", `{"a":{"$ref":"other.json#/x"}}`, ErrRefResolution},
		{"missing", `{"a":{"$ref":"#/nope"}}`, ErrRefResolution},
		{"bad index", `{"l":[1],"a":{"$ref":"#/l/3"}}`, ErrRefResolution},
		{"not a string", `{"a":{"$ref":12}}`, ErrInvalidSchema},
		{"self", `{"a":{"$ref":"#/a"}}`, ErrRefResolution},
		{"mutual", `{"$defs":{"a":{"properties":{"b":{"$ref":"#/$defs/b"}}},"b":{"items":{"$ref":"#/$defs/a"}}},"properties":{"x":{"$ref":"#/$defs/a"}}}`, ErrRefResolution},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			done := make(chan error, 1)
			go func() {
				_, err := ResolveRefs(mustJSON(t, tc.schema))
				done <- err
			}()
			select {
			case err := <-done:
				if !errors.Is(err, tc.is) {
					t.Errorf("expected %v, got %v", tc.is, err)
				}
			case <-time.After(5 * time.Second):
				t.Fatal("resolution did not terminate")
			}
		})
	}
}

func TestErrorContext(t *testing.T) {
	_, err := ResolveRefs(mustJSON(t, `{"properties":{"a":{"$ref":"#/$defs/missing"}}}`))
	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if e.Kind != RefResolutionError {
		t.Errorf("kind %s", e.Kind)
	}
	want := []string{"at #/$defs", "pointer #/$defs/missing", "at #/properties/a"}
	if diff := cmp.Diff(want, e.Context); diff != "" {
		t.Errorf("context (-want +got):\n%s", diff)
	}
}

func TestLookupContextNamesFailingPrefix(t *testing.T) {
	tests := []struct {
		name, schema, want string
	}{
		{
			name:   "nested key",
			schema: `{"$defs":{"a":{}},"properties":{"x":{"$ref":"#/$defs/a/b"}}}`,
			want:   "at #/$defs/a/b",
		},
		{
			name:   "array index",
			schema: `{"$defs":{"l":[{}]},"properties":{"x":{"$ref":"#/$defs/l/3"}}}`,
			want:   "at #/$defs/l/3",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveRefs(mustJSON(t, tt.schema))
			var e *Error
			if !errors.As(err, &e) || len(e.Context) == 0 {
				t.Fatalf("expected *Error with context, got %v", err)
			}
			if diff := cmp.Diff(tt.want, e.Context[0]); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestParsePointer(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"#", nil},
		{"#/", []string{""}},
		{"#/a/b", []string{"a", "b"}},
		{"#/a~1b/c~0d", []string{"a/b", "c~d"}},
		{"#/a%25b", []string{"a%b"}},
	}
	for _, tc := range tests {
		got, err := ParsePointer(tc.in)
		if err != nil {
			t.Errorf("%s: %v", tc.in, err)
			continue
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("%s (-want +got):\n%s", tc.in, diff)
		}
		if len(got) > 0 && Pointer(got...) != tc.in && tc.in != "#/a%25b" {
			t.Errorf("Pointer(%q) = %s", got, Pointer(got...))
		}
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	yp := filepath.Join(dir, "s.yaml")
	if err := os.WriteFile(yp, []byte("properties:\n  b:\n    title: B\n  a:\n    title: A\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	v, err := LoadFile(yp)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"b", "a"}, v.Get("properties").Fields); diff != "" {
		t.Errorf("order (-want +got):\n%s", diff)
	}
	_, err = LoadFile(filepath.Join(dir, "missing.json"))
	if !errors.Is(err, ErrIO) {
		t.Errorf("expected io error, got %v", err)
	}
	_, err = Load([]byte("{"), "s.json")
	if !errors.Is(err, ErrValueParse) {
		t.Errorf("expected parse error, got %v", err)
	}
}

func TestPatch(t *testing.T) {
	doc := mustJSON(t, `{"properties":{"a":{"title":"A"}}}`)
	p := mustJSON(t, `[{"op":"replace","path":"/properties/a/title","value":"AA"},
		{"op":"add","path":"/properties/b","value":{"title":"B"}}]`)
	res, err := Patch(doc, p)
	if err != nil {
		t.Fatal(err)
	}
	m := Walk(res)
	if diff := cmp.Diff(map[string]rec{"a": {"AA", "", ""}, "b": {"B", "", ""}}, records(m)); diff != "" {
		t.Errorf("json patch (-want +got):\n%s", diff)
	}
	merge := mustJSON(t, `{"properties":{"a":{"description":"desc"}}}`)
	res, err = Patch(doc, merge)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(map[string]rec{"a": {"A", "desc", ""}}, records(Walk(res))); diff != "" {
		t.Errorf("merge patch (-want +got):\n%s", diff)
	}
	if _, err := Patch(doc, value.FromString("x")); !errors.Is(err, ErrInvalidSchema) {
		t.Errorf("expected invalid schema, got %v", err)
	}
}
