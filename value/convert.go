package value

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// FromAny converts a generically decoded Go value into a Value.
//
// Supported inputs are the shapes produced by encoding/json (map[string]any,
// []any, string, float64, json.Number, bool, nil), Go integer and float
// types, map[string]string, []string and Value itself. Anything else is
// round-tripped through encoding/json.
//
// Map keys have no order in Go, so objects built from maps list their keys
// sorted.
func FromAny(x any) (Value, error) {
	switch t := x.(type) {
	case nil:
		return Null(), nil
	case Value:
		return t, nil
	case *Value:
		if t == nil {
			return Null(), nil
		}
		return *t, nil
	case bool:
		return Bool(t), nil
	case string:
		return String(t), nil
	case json.Number:
		return Number(t.String()), nil
	case float64:
		return Float(t), nil
	case float32:
		return Float(float64(t)), nil
	case int:
		return Int(int64(t)), nil
	case int8:
		return Int(int64(t)), nil
	case int16:
		return Int(int64(t)), nil
	case int32:
		return Int(int64(t)), nil
	case int64:
		return Int(t), nil
	case uint:
		return Number(strconv.FormatUint(uint64(t), 10)), nil
	case uint32:
		return Number(strconv.FormatUint(uint64(t), 10)), nil
	case uint64:
		return Number(strconv.FormatUint(t, 10)), nil
	case []string:
		elems := make([]Value, len(t))
		for i, s := range t {
			elems[i] = String(s)
		}
		return Array(elems...), nil
	case map[string]string:
		obj := NewObject()
		for _, k := range sortedKeys(t) {
			obj.Set(k, String(t[k]))
		}
		return ObjectOf(obj), nil
	case []any:
		elems := make([]Value, len(t))
		for i, e := range t {
			v, err := FromAny(e)
			if err != nil {
				return Null(), fmt.Errorf("[%d]: %w", i, err)
			}
			elems[i] = v
		}
		return Array(elems...), nil
	case map[string]any:
		obj := NewObject()
		for _, k := range sortedKeys(t) {
			v, err := FromAny(t[k])
			if err != nil {
				return Null(), fmt.Errorf("%s: %w", k, err)
			}
			obj.Set(k, v)
		}
		return ObjectOf(obj), nil
	default:
		data, err := json.Marshal(x)
		if err != nil {
			return Null(), fmt.Errorf("value: convert %T: %w", x, err)
		}
		return Parse(data)
	}
}

// ToAny converts v into the generic shapes used by encoding/json.
// Numbers become json.Number.
func ToAny(v Value) any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindNumber:
		return json.Number(v.s)
	case KindString:
		return v.s
	case KindArray:
		out := make([]any, len(v.arr))
		for i, e := range v.arr {
			out[i] = ToAny(e)
		}
		return out
	case KindObject:
		out := make(map[string]any, v.obj.Len())
		v.obj.Range(func(k string, member Value) bool {
			out[k] = ToAny(member)
			return true
		})
		return out
	default:
		return nil
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
