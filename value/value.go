package value

import (
	"maps"
	"slices"
	"strconv"
)

type Value struct {
	Type   Type
	Fields []string
	Values []*Value

	String string
	Bool   bool
	Number string
}

type KeyValue struct {
	Key   string
	Value *Value
}

func KV(key string, v *Value) KeyValue {
	return KeyValue{Key: key, Value: v}
}

func Null() *Value {
	return &Value{Type: NullType}
}

func FromBool(b bool) *Value {
	return &Value{Type: BoolType, Bool: b}
}

func FromString(s string) *Value {
	return &Value{Type: StringType, String: s}
}

// FromNumber makes a number value from its textual form. The text is not
// checked.
func FromNumber(n string) *Value {
	return &Value{Type: NumberType, Number: n}
}

func FromInt(i int64) *Value {
	return FromNumber(strconv.FormatInt(i, 10))
}

func FromSlice(vs []*Value) *Value {
	return &Value{Type: ArrayType, Values: vs}
}

func FromKeyValues(kvs ...KeyValue) *Value {
	res := &Value{Type: ObjectType}
	for _, kv := range kvs {
		res.Set(kv.Key, kv.Value)
	}
	return res
}

// FromMap makes an object with the keys of m in sorted order.
func FromMap(m map[string]*Value) *Value {
	res := &Value{
		Type:   ObjectType,
		Fields: make([]string, 0, len(m)),
		Values: make([]*Value, 0, len(m)),
	}
	for _, k := range slices.Sorted(maps.Keys(m)) {
		res.Fields = append(res.Fields, k)
		res.Values = append(res.Values, m[k])
	}
	return res
}

// Get returns the value of field in an object, or nil if v is not an object
// or has no such field.
func (v *Value) Get(field string) *Value {
	if v == nil || v.Type != ObjectType {
		return nil
	}
	i := slices.Index(v.Fields, field)
	if i == -1 {
		return nil
	}
	return v.Values[i]
}

// Has reports whether v is an object holding field.
func (v *Value) Has(field string) bool {
	if v == nil || v.Type != ObjectType {
		return false
	}
	return slices.Contains(v.Fields, field)
}

// Index returns element i of an array, or nil.
func (v *Value) Index(i int) *Value {
	if v == nil || v.Type != ArrayType {
		return nil
	}
	if i < 0 || i >= len(v.Values) {
		return nil
	}
	return v.Values[i]
}

// Set sets field in an object, replacing an existing value in place.
func (v *Value) Set(field string, x *Value) {
	if i := slices.Index(v.Fields, field); i != -1 {
		v.Values[i] = x
		return
	}
	v.Fields = append(v.Fields, field)
	v.Values = append(v.Values, x)
}

// Len is the number of elements of an array or fields of an object.
func (v *Value) Len() int {
	if v == nil {
		return 0
	}
	return len(v.Values)
}

// StringField returns the string held in field of an object. ok is false if
// the field is missing or not a string.
func (v *Value) StringField(field string) (s string, ok bool) {
	f := v.Get(field)
	if f == nil || f.Type != StringType {
		return "", false
	}
	return f.String, true
}

func (v *Value) Clone() *Value {
	if v == nil {
		return nil
	}
	res := &Value{
		Type:   v.Type,
		String: v.String,
		Bool:   v.Bool,
		Number: v.Number,
	}
	if v.Fields != nil {
		res.Fields = slices.Clone(v.Fields)
	}
	if v.Values != nil {
		res.Values = make([]*Value, len(v.Values))
		for i, c := range v.Values {
			res.Values[i] = c.Clone()
		}
	}
	return res
}
