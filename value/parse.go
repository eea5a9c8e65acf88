package value

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// ErrInvalidJSON is returned by Parse when the input is not a JSON document.
var ErrInvalidJSON = errors.New("invalid JSON")

// Parse decodes a JSON document.
func Parse(data []byte) (Value, error) {
	if !gjson.ValidBytes(data) {
		return Null(), fmt.Errorf("value: parse: %w", ErrInvalidJSON)
	}
	return fromResult(gjson.ParseBytes(data)), nil
}

// ParseString decodes a JSON document held in a string.
func ParseString(s string) (Value, error) {
	if !gjson.Valid(s) {
		return Null(), fmt.Errorf("value: parse: %w", ErrInvalidJSON)
	}
	return fromResult(gjson.Parse(s)), nil
}

// MustParse is like ParseString but panics on invalid input.
// It is intended for fixtures and package-level literals.
func MustParse(s string) Value {
	v, err := ParseString(s)
	if err != nil {
		panic(err)
	}
	return v
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	parsed, err := Parse(data)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// Lookup resolves a gjson path (for example "remote_data.0.path") against v.
// It reports false when nothing exists at the path.
func Lookup(v Value, path string) (Value, bool) {
	data, err := v.MarshalJSON()
	if err != nil {
		return Null(), false
	}
	r := gjson.GetBytes(data, path)
	if !r.Exists() {
		return Null(), false
	}
	return fromResult(r), true
}

func fromResult(r gjson.Result) Value {
	switch r.Type {
	case gjson.Null:
		return Null()
	case gjson.False:
		return Bool(false)
	case gjson.True:
		return Bool(true)
	case gjson.Number:
		return Number(strings.TrimSpace(r.Raw))
	case gjson.String:
		return String(r.Str)
	case gjson.JSON:
		if r.IsArray() {
			elems := []Value{}
			r.ForEach(func(_, elem gjson.Result) bool {
				elems = append(elems, fromResult(elem))
				return true
			})
			return Array(elems...)
		}
		obj := NewObject()
		r.ForEach(func(key, member gjson.Result) bool {
			obj.Set(key.Str, fromResult(member))
			return true
		})
		return ObjectOf(obj)
	default:
		return Null()
	}
}
