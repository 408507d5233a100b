package schema

import (
	jsonpatch "github.com/evanphx/json-patch"

	"github.com/signadot/schema-annotator/value"
)

// Patch applies p to a copy of doc. An array p is an RFC 6902 JSON patch, an
// object p an RFC 7386 merge patch.
//
// The patched result comes back with object keys sorted, so property order
// of a patched schema is lexical rather than declared.
func Patch(doc, p *value.Value) (*value.Value, error) {
	d, err := doc.MarshalJSON()
	if err != nil {
		return nil, &Error{Kind: InvalidSchemaError, Err: err}
	}
	pd, err := p.MarshalJSON()
	if err != nil {
		return nil, (&Error{Kind: InvalidSchemaError, Err: err}).WithContext("patch")
	}
	var out []byte
	switch p.Type {
	case value.ArrayType:
		ops, err := jsonpatch.DecodePatch(pd)
		if err != nil {
			return nil, (&Error{Kind: InvalidSchemaError, Err: err}).WithContext("decoding json patch")
		}
		out, err = ops.Apply(d)
		if err != nil {
			return nil, (&Error{Kind: InvalidSchemaError, Err: err}).WithContext("applying json patch")
		}
	case value.ObjectType:
		out, err = jsonpatch.MergePatch(d, pd)
		if err != nil {
			return nil, (&Error{Kind: InvalidSchemaError, Err: err}).WithContext("applying merge patch")
		}
	default:
		return nil, newError(InvalidSchemaError, "patch must be an array or an object, got %s", p.Type)
	}
	res, err := value.FromJSON(out)
	if err != nil {
		return nil, &Error{Kind: ValueParseError, Err: err}
	}
	return res, nil
}
