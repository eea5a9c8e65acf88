package value

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	return v.appendJSON(make([]byte, 0, 64))
}

func (v Value) appendJSON(buf []byte) ([]byte, error) {
	switch v.kind {
	case KindNull:
		return append(buf, "null"...), nil
	case KindBool:
		return strconv.AppendBool(buf, v.b), nil
	case KindNumber:
		if v.s == "" {
			return nil, fmt.Errorf("value: empty number literal")
		}
		return append(buf, v.s...), nil
	case KindString:
		return appendString(buf, v.s)
	case KindArray:
		buf = append(buf, '[')
		for i, elem := range v.arr {
			if i > 0 {
				buf = append(buf, ',')
			}
			var err error
			if buf, err = elem.appendJSON(buf); err != nil {
				return nil, err
			}
		}
		return append(buf, ']'), nil
	case KindObject:
		buf = append(buf, '{')
		var err error
		i := 0
		v.obj.Range(func(key string, member Value) bool {
			if i > 0 {
				buf = append(buf, ',')
			}
			i++
			if buf, err = appendString(buf, key); err != nil {
				return false
			}
			buf = append(buf, ':')
			buf, err = member.appendJSON(buf)
			return err == nil
		})
		if err != nil {
			return nil, err
		}
		return append(buf, '}'), nil
	default:
		return nil, fmt.Errorf("value: unknown kind %d", v.kind)
	}
}

func appendString(buf []byte, s string) ([]byte, error) {
	quoted, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return append(buf, quoted...), nil
}

// Equal reports whether a and b are structurally equal. Object member order
// is ignored and numbers compare by numeric value.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.b == b.b
	case KindString:
		return a.s == b.s
	case KindNumber:
		if a.s == b.s {
			return true
		}
		fa, errA := strconv.ParseFloat(a.s, 64)
		fb, errB := strconv.ParseFloat(b.s, 64)
		if errA != nil || errB != nil || math.IsNaN(fa) {
			return false
		}
		return fa == fb
	case KindArray:
		if len(a.arr) != len(b.arr) {
			return false
		}
		for i := range a.arr {
			if !Equal(a.arr[i], b.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if a.obj.Len() != b.obj.Len() {
			return false
		}
		equal := true
		a.obj.Range(func(key string, av Value) bool {
			bv, ok := b.obj.Get(key)
			if !ok || !Equal(av, bv) {
				equal = false
			}
			return equal
		})
		return equal
	default:
		return false
	}
}
