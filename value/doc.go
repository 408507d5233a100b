// Package value provides the tagged value tree shared by schema documents and
// generic JSON/YAML bodies.
//
// # Overview
//
// A Value is a recursive tagged union. The Type field tells which of the
// remaining fields carries the content:
//
//   - NullType: no content
//   - BoolType: Bool
//   - NumberType: Number, the textual form of the number as it was read
//   - StringType: String
//   - ArrayType: Values, in order
//   - ObjectType: Fields[i] is the key of Values[i]; insertion order is kept
//
// Object keys are unique. Setting an existing key replaces its value in place,
// so a decoded object keeps the position of the first occurrence of a key and
// the value of the last one, as encoding/json does with duplicate keys.
//
// # Creating Values
//
//	v := value.FromKeyValues(
//	    value.KV("title", value.FromString("Port")),
//	    value.KV("default", value.FromInt(8080)),
//	)
//
// Values are decoded from text with FromJSON and FromYAML, both of which keep
// object key order, and encoded back to JSON with MarshalJSON.
//
// # Ownership
//
// A Value carries no parent pointers and no position information. Values are
// not safe for concurrent mutation; Clone gives an independent deep copy.
package value
