package schema

import (
	"strconv"

	"github.com/signadot/schema-annotator/annotation"
	"github.com/signadot/schema-annotator/debug"
	"github.com/signadot/schema-annotator/value"
)

// Walk collects the annotations of a resolved schema. Nodes of unexpected
// shape are skipped.
func Walk(resolved *value.Value) *annotation.Map {
	m := annotation.NewMap()
	walk(resolved, nil, m)
	return m
}

// Extract resolves the references of root and walks the result.
func Extract(root *value.Value) (*annotation.Map, error) {
	if root == nil {
		return nil, newError(InvalidSchemaError, "nil schema")
	}
	switch root.Type {
	case value.ObjectType:
	case value.BoolType:
		return annotation.NewMap(), nil
	default:
		return nil, newError(InvalidSchemaError, "schema root must be an object or a boolean, got %s", root.Type)
	}
	resolved, err := ResolveRefs(root)
	if err != nil {
		return nil, err
	}
	return Walk(resolved), nil
}

func walk(v *value.Value, p annotation.Path, m *annotation.Map) {
	if v == nil || v.Type != value.ObjectType {
		return
	}
	if !p.IsRoot() {
		// a default alone does not make a record
		if rec := record(v, p); rec.Title != "" || rec.Description != "" {
			if debug.Walk() {
				debug.Logf("walk %s: title=%q description=%q\n", p, rec.Title, rec.Description)
			}
			m.Insert(rec)
		}
	}
	if props := v.Get("properties"); props != nil && props.Type == value.ObjectType {
		for i, k := range props.Fields {
			walk(props.Values[i], p.Append(k), m)
		}
	}
	items := v.Get("items")
	switch {
	case items == nil:
	case items.Type == value.ObjectType:
		walk(items, p, m)
	case items.Type == value.ArrayType:
		for _, elt := range items.Values {
			walk(elt, p, m)
		}
	}
}

func record(v *value.Value, p annotation.Path) *annotation.Record {
	rec := &annotation.Record{Path: p}
	rec.Title, _ = v.StringField("title")
	rec.Description, _ = v.StringField("description")
	if def := v.Get("default"); def != nil {
		if d, err := def.MarshalJSON(); err == nil {
			rec.Default = string(d)
		}
	}
	return rec
}

func itoa(i int) string {
	return strconv.Itoa(i)
}
