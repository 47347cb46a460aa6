package value

import (
	"github.com/matzehuels/scadgen/pkg/errors"
)

// FromAny converts decoded TOML or JSON data into a Value.
//
// Integers become [Int], floats [Number], booleans [Bool] and strings
// [String]. Arrays whose elements are all numbers become a [Vec]; any other
// array becomes a [List] of converted elements. A Value is returned as is.
func FromAny(raw any) (Value, error) {
	switch v := raw.(type) {
	case Value:
		return v, nil
	case int:
		return Int(v), nil
	case int32:
		return Int(v), nil
	case int64:
		return Int(v), nil
	case float32:
		return Number(v), nil
	case float64:
		return Number(v), nil
	case bool:
		return Bool(v), nil
	case string:
		return String(v), nil
	case []any:
		return fromSlice(v)
	case nil:
		return nil, errors.New(errors.ErrCodeInvalidValue, "missing value")
	default:
		return nil, errors.New(errors.ErrCodeInvalidValue, "unsupported value of type %T", raw)
	}
}

func fromSlice(items []any) (Value, error) {
	if vec, ok := numericVec(items); ok {
		return vec, nil
	}
	list := make(List, len(items))
	for i, item := range items {
		v, err := FromAny(item)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidValue, err, "element %d", i)
		}
		list[i] = v
	}
	return list, nil
}

// numericVec returns a Vec if items is non-empty and holds only numbers.
// Integer-only arrays stay numeric; their literals are identical.
func numericVec(items []any) (Vec, bool) {
	if len(items) == 0 {
		return nil, false
	}
	vec := make(Vec, len(items))
	for i, item := range items {
		switch n := item.(type) {
		case int:
			vec[i] = float64(n)
		case int64:
			vec[i] = float64(n)
		case float64:
			vec[i] = n
		default:
			return nil, false
		}
	}
	return vec, true
}
