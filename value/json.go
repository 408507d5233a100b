package value

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// FromJSON decodes a single JSON document, keeping object key order.
func FromJSON(d []byte) (*Value, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	v, err := decodeJSON(dec)
	if err != nil {
		return nil, err
	}
	_, err = dec.Token()
	switch {
	case errors.Is(err, io.EOF):
		return v, nil
	case err == nil:
		return nil, fmt.Errorf("%w: trailing data at offset %d", ErrParse, dec.InputOffset())
	default:
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
}

func decodeJSON(dec *json.Decoder) (*Value, error) {
	tok, err := dec.Token()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected end of JSON input", ErrParse)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	switch x := tok.(type) {
	case json.Delim:
		switch x {
		case '{':
			res := &Value{Type: ObjectType}
			for dec.More() {
				kTok, err := dec.Token()
				if err != nil {
					return nil, fmt.Errorf("%w: %w", ErrParse, err)
				}
				key, ok := kTok.(string)
				if !ok {
					return nil, fmt.Errorf("%w: object key %v is not a string", ErrParse, kTok)
				}
				child, err := decodeJSON(dec)
				if err != nil {
					return nil, err
				}
				res.Set(key, child)
			}
			if _, err := dec.Token(); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrParse, err)
			}
			return res, nil
		case '[':
			res := &Value{Type: ArrayType, Values: []*Value{}}
			for dec.More() {
				child, err := decodeJSON(dec)
				if err != nil {
					return nil, err
				}
				res.Values = append(res.Values, child)
			}
			if _, err := dec.Token(); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrParse, err)
			}
			return res, nil
		}
		return nil, fmt.Errorf("%w: unexpected delimiter %q", ErrParse, x)
	case string:
		return FromString(x), nil
	case json.Number:
		return FromNumber(x.String()), nil
	case bool:
		return FromBool(x), nil
	case nil:
		return Null(), nil
	}
	return nil, fmt.Errorf("%w: unexpected token %v", ErrParse, tok)
}

// MarshalJSON encodes v as compact JSON with object keys in stored order.
func (v *Value) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := v.encodeJSON(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (v *Value) encodeJSON(buf *bytes.Buffer) error {
	if v == nil {
		buf.WriteString("null")
		return nil
	}
	switch v.Type {
	case NullType:
		buf.WriteString("null")
	case BoolType:
		if v.Bool {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case NumberType:
		if !json.Valid([]byte(v.Number)) {
			return fmt.Errorf("number %q has no JSON representation", v.Number)
		}
		buf.WriteString(v.Number)
	case StringType:
		d, err := json.Marshal(v.String)
		if err != nil {
			return err
		}
		buf.Write(d)
	case ArrayType:
		buf.WriteByte('[')
		for i, c := range v.Values {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := c.encodeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case ObjectType:
		buf.WriteByte('{')
		for i, f := range v.Fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			d, err := json.Marshal(f)
			if err != nil {
				return err
			}
			buf.Write(d)
			buf.WriteByte(':')
			if err := v.Values[i].encodeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("cannot encode %s as JSON", v.Type)
	}
	return nil
}
