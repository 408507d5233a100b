package value

import (
	"fmt"
	"math"
	"strconv"

	"github.com/goccy/go-yaml"
)

// FromYAML decodes the first YAML document of d, keeping mapping key order.
func FromYAML(d []byte) (*Value, error) {
	var x any
	if err := yaml.UnmarshalWithOptions(d, &x, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return FromAny(x)
}

// FromAny converts decoded Go data (as produced by encoding/json or goccy/go-yaml
// with ordered maps) into a Value.
func FromAny(x any) (*Value, error) {
	switch v := x.(type) {
	case nil:
		return Null(), nil
	case bool:
		return FromBool(v), nil
	case string:
		return FromString(v), nil
	case int:
		return FromInt(int64(v)), nil
	case int64:
		return FromInt(v), nil
	case uint64:
		return FromNumber(strconv.FormatUint(v, 10)), nil
	case float64:
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return FromString(strconv.FormatFloat(v, 'g', -1, 64)), nil
		}
		return FromNumber(strconv.FormatFloat(v, 'g', -1, 64)), nil
	case yaml.MapSlice:
		res := &Value{Type: ObjectType}
		for _, item := range v {
			child, err := FromAny(item.Value)
			if err != nil {
				return nil, err
			}
			res.Set(keyString(item.Key), child)
		}
		return res, nil
	case map[string]any:
		m := make(map[string]*Value, len(v))
		for k, e := range v {
			child, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			m[k] = child
		}
		return FromMap(m), nil
	case []any:
		res := &Value{Type: ArrayType, Values: make([]*Value, 0, len(v))}
		for _, e := range v {
			child, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			res.Values = append(res.Values, child)
		}
		return res, nil
	case fmt.Stringer:
		return FromString(v.String()), nil
	default:
		return nil, fmt.Errorf("%w: unsupported value of type %T", ErrParse, x)
	}
}

func keyString(k any) string {
	switch x := k.(type) {
	case string:
		return x
	case nil:
		return "null"
	default:
		return fmt.Sprint(x)
	}
}
