package schema

import (
	"github.com/signadot/schema-annotator/debug"
	"github.com/signadot/schema-annotator/value"
)

const refKey = "$ref"

// ResolveRefs returns a copy of root in which every object holding "$ref" is
// replaced by the value its pointer names. Pointers are resolved against root
// itself, so forward references work. root is not modified.
//
// A reference reached again while it is still being resolved is a cycle and
// fails with RefResolutionError.
func ResolveRefs(root *value.Value) (*value.Value, error) {
	r := &resolver{
		root:     root,
		inFlight: map[string]bool{},
		done:     map[string]*value.Value{},
	}
	return r.resolve(root, nil)
}

type resolver struct {
	root     *value.Value
	inFlight map[string]bool
	done     map[string]*value.Value
}

func (r *resolver) resolve(v *value.Value, at []string) (*value.Value, error) {
	switch v.Type {
	case value.ObjectType:
		if ref := v.Get(refKey); ref != nil {
			if ref.Type != value.StringType {
				return nil, newError(InvalidSchemaError, "%s must be a string, got %s", refKey, ref.Type).
					WithContext("at %s", Pointer(at...))
			}
			return r.follow(ref.String, at)
		}
		res := &value.Value{
			Type:   value.ObjectType,
			Fields: append([]string(nil), v.Fields...),
			Values: make([]*value.Value, len(v.Values)),
		}
		for i, f := range v.Fields {
			x, err := r.resolve(v.Values[i], append(at[:len(at):len(at)], f))
			if err != nil {
				return nil, err
			}
			res.Values[i] = x
		}
		return res, nil
	case value.ArrayType:
		res := &value.Value{
			Type:   value.ArrayType,
			Values: make([]*value.Value, len(v.Values)),
		}
		for i, elt := range v.Values {
			x, err := r.resolve(elt, append(at[:len(at):len(at)], itoa(i)))
			if err != nil {
				return nil, err
			}
			res.Values[i] = x
		}
		return res, nil
	default:
		return v.Clone(), nil
	}
}

func (r *resolver) follow(ref string, at []string) (*value.Value, error) {
	if res, ok := r.done[ref]; ok {
		return res.Clone(), nil
	}
	if r.inFlight[ref] {
		return nil, newError(RefResolutionError, "cyclic reference %s", ref).
			WithContext("at %s", Pointer(at...))
	}
	if debug.Refs() {
		debug.Logf("resolving %s at %s\n", ref, Pointer(at...))
	}
	segs, err := ParsePointer(ref)
	if err != nil {
		e, _ := asError(err)
		return nil, e.WithContext("at %s", Pointer(at...))
	}
	target, err := lookup(r.root, ref, segs)
	if err != nil {
		e, _ := asError(err)
		return nil, e.WithContext("at %s", Pointer(at...))
	}
	r.inFlight[ref] = true
	res, err := r.resolve(target, segs)
	delete(r.inFlight, ref)
	if err != nil {
		if e, ok := asError(err); ok {
			return nil, e.WithContext("via %s at %s", ref, Pointer(at...))
		}
		return nil, err
	}
	r.done[ref] = res
	return res.Clone(), nil
}
