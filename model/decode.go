package model

import (
	"fmt"
	"math"
	"reflect"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/merge-api/merge-go-client/enum"
	"github.com/merge-api/merge-go-client/schema"
	"github.com/merge-api/merge-go-client/value"
)

// Parse binds a raw JSON object to a new T.
//
// Every declared field is read by wire key. Absent and null keys leave the
// field unset, as do values of the wrong primitive type; the raw value stays
// reachable through AdditionalProperties. A date-time field holding anything
// but an ISO-8601 string aborts the parse with a *ParseError.
func Parse[T any](v value.Value) (*T, error) {
	m := new(T)
	if err := ParseInto(v, m); err != nil {
		return nil, err
	}
	return m, nil
}

// Unmarshal decodes JSON text into a new T.
func Unmarshal[T any](data []byte) (*T, error) {
	v, err := value.Parse(data)
	if err != nil {
		return nil, err
	}
	return Parse[T](v)
}

// UnmarshalInto decodes JSON text into the model dst points to. Models use it
// to implement json.Unmarshaler.
func UnmarshalInto(data []byte, dst any) error {
	v, err := value.Parse(data)
	if err != nil {
		return err
	}
	return ParseInto(v, dst)
}

// ParseInto binds a raw JSON object to the model dst points to. dst is reset
// before binding.
func ParseInto(v value.Value, dst any) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("model: ParseInto requires a non-nil pointer, got %T", dst)
	}
	info, err := defaultProvider.info(rv.Type().Elem())
	if err != nil {
		return err
	}
	if rv.Elem().Type() != info.goType {
		return fmt.Errorf("model: ParseInto requires a pointer to a struct, got %T", dst)
	}
	if _, ok := v.Object(); !ok {
		return &ParseError{Model: info.desc.Name.Name, Value: abbreviate(v), Err: fmt.Errorf("expected object, got %s", v.Kind())}
	}
	d := &decoder{p: defaultProvider, model: info.desc.Name.Name}
	rv.Elem().Set(reflect.Zero(info.goType))
	return d.object("", v, rv.Elem(), info)
}

type decoder struct {
	p     *provider
	model string
}

// object binds the fields of an addressable struct.
func (d *decoder) object(path string, v value.Value, dst reflect.Value, info *typeInfo) error {
	for _, f := range info.fields {
		raw, ok := v.Get(f.desc.JSONName)
		if !ok || raw.IsNull() {
			continue
		}
		fv, ok, err := d.value(joinPath(path, f.desc.JSONName), raw, f.goType, f.desc.Type)
		if err != nil {
			return err
		}
		if ok {
			dst.FieldByIndex(f.index).Set(fv)
		}
	}

	if info.base != nil {
		dst.FieldByIndex(info.base).Addr().Interface().(rawSetter).setRaw(v)
	}
	if hook, ok := dst.Addr().Interface().(AfterParser); ok {
		if err := hook.AfterParse(); err != nil {
			return &ParseError{Model: d.model, Path: path, Value: abbreviate(v), Err: err}
		}
	}
	return nil
}

// value converts v to a Go value of type t. It reports false when v does not
// fit t, in which case the caller leaves the destination unset.
func (d *decoder) value(path string, v value.Value, t reflect.Type, td schema.TypeDescriptor) (reflect.Value, bool, error) {
	if v.IsNull() {
		return reflect.Value{}, false, nil
	}

	switch desc := td.(type) {
	case *schema.PrimitiveDescriptor:
		return d.primitive(path, v, t, desc)

	case *schema.EnumDescriptor:
		if desc.Open {
			ptr := reflect.New(indirect(t))
			ptr.Interface().(enum.OpenEnum).DecodeWire(v)
			return fromPointer(ptr, t), true, nil
		}
		s, ok := v.AsString()
		if !ok {
			return reflect.Value{}, false, nil
		}
		return wrap(reflect.ValueOf(s).Convert(indirect(t)), t), true, nil

	case *schema.ArrayDescriptor:
		if v.Kind() != value.KindArray {
			return reflect.Value{}, false, nil
		}
		elems := v.Elements()
		out := reflect.MakeSlice(t, 0, len(elems))
		for i, e := range elems {
			ev, ok, err := d.value(indexPath(path, i), e, t.Elem(), desc.Element)
			if err != nil {
				return reflect.Value{}, false, err
			}
			if !ok {
				ev = reflect.Zero(t.Elem())
			}
			out = reflect.Append(out, ev)
		}
		return out, true, nil

	case *schema.MapDescriptor:
		obj, ok := v.Object()
		if !ok {
			return reflect.Value{}, false, nil
		}
		out := reflect.MakeMapWithSize(t, obj.Len())
		var err error
		obj.Range(func(key string, e value.Value) bool {
			var ev reflect.Value
			ev, ok, err = d.value(joinPath(path, key), e, t.Elem(), desc.Value)
			if err != nil {
				return false
			}
			if ok {
				out.SetMapIndex(reflect.ValueOf(key).Convert(t.Key()), ev)
			}
			return true
		})
		if err != nil {
			return reflect.Value{}, false, err
		}
		return out, true, nil

	case *schema.ReferenceDescriptor:
		if _, ok := v.Object(); !ok {
			return reflect.Value{}, false, nil
		}
		info, err := d.p.info(indirect(t))
		if err != nil {
			return reflect.Value{}, false, err
		}
		ptr := reflect.New(info.goType)
		if err := d.object(path, v, ptr.Elem(), info); err != nil {
			return reflect.Value{}, false, err
		}
		return fromPointer(ptr, t), true, nil

	case *schema.UnionDescriptor:
		return d.union(path, v, t, desc)

	default:
		return reflect.Value{}, false, fmt.Errorf("model: unsupported descriptor %v at %s", td.Kind(), path)
	}
}

// union binds an expandable field: an ID string, the nested object, or any
// other value kept verbatim.
func (d *decoder) union(path string, v value.Value, t reflect.Type, desc *schema.UnionDescriptor) (reflect.Value, bool, error) {
	ptr := reflect.New(indirect(t))
	x, ok := ptr.Interface().(expandable)
	if !ok {
		return reflect.Value{}, false, fmt.Errorf("model: %s cannot hold a union", t)
	}

	if s, ok := v.AsString(); ok {
		x.setID(s)
		return fromPointer(ptr, t), true, nil
	}
	if _, ok := v.Object(); ok {
		for _, member := range desc.Types {
			if member.Kind() != schema.KindReference {
				continue
			}
			mv, ok, err := d.value(path, v, reflect.PointerTo(x.expandedType()), member)
			if err != nil {
				return reflect.Value{}, false, err
			}
			if ok {
				x.setExpanded(mv)
				return fromPointer(ptr, t), true, nil
			}
		}
	}
	x.setOpaque(v)
	return fromPointer(ptr, t), true, nil
}

func (d *decoder) primitive(path string, v value.Value, t reflect.Type, desc *schema.PrimitiveDescriptor) (reflect.Value, bool, error) {
	base := indirect(t)
	switch desc.PrimitiveKind {
	case schema.PrimitiveBool:
		b, ok := v.AsBool()
		if !ok {
			return reflect.Value{}, false, nil
		}
		return wrap(reflect.ValueOf(b).Convert(base), t), true, nil

	case schema.PrimitiveInt:
		switch base.Kind() {
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			n, ok := integral(v)
			if !ok || n < 0 {
				return reflect.Value{}, false, nil
			}
			out := reflect.New(base).Elem()
			out.SetUint(uint64(n))
			return wrap(out, t), true, nil
		}
		n, ok := integral(v)
		if !ok {
			return reflect.Value{}, false, nil
		}
		out := reflect.New(base).Elem()
		if out.OverflowInt(n) {
			return reflect.Value{}, false, nil
		}
		out.SetInt(n)
		return wrap(out, t), true, nil

	case schema.PrimitiveFloat:
		f, ok := v.Float64()
		if !ok {
			return reflect.Value{}, false, nil
		}
		return wrap(reflect.ValueOf(f).Convert(base), t), true, nil

	case schema.PrimitiveString:
		s, ok := v.AsString()
		if !ok {
			return reflect.Value{}, false, nil
		}
		return wrap(reflect.ValueOf(s).Convert(base), t), true, nil

	case schema.PrimitiveTime:
		s, ok := v.AsString()
		if !ok {
			return reflect.Value{}, false, &ParseError{Model: d.model, Path: path, Value: abbreviate(v), Err: fmt.Errorf("expected ISO-8601 string, got %s", v.Kind())}
		}
		tm, err := ParseTime(s)
		if err != nil {
			return reflect.Value{}, false, &ParseError{Model: d.model, Path: path, Value: abbreviate(v), Err: err}
		}
		return wrap(reflect.ValueOf(tm), t), true, nil

	case schema.PrimitiveDecimal:
		lit, ok := v.AsNumber()
		if !ok {
			lit, ok = v.AsString()
		}
		if !ok {
			return reflect.Value{}, false, nil
		}
		dec, err := decimal.NewFromString(lit)
		if err != nil {
			return reflect.Value{}, false, nil
		}
		return wrap(reflect.ValueOf(dec), t), true, nil

	case schema.PrimitiveAny:
		if base == valueType {
			return wrap(reflect.ValueOf(v), t), true, nil
		}
		x := value.ToAny(v)
		if x == nil {
			return reflect.Value{}, false, nil
		}
		return reflect.ValueOf(&x).Elem(), true, nil
	}
	return reflect.Value{}, false, nil
}

// integral returns v as an int64 when it is an integer literal or a float
// with no fractional part, such as 36.0.
func integral(v value.Value) (int64, bool) {
	if n, ok := v.Int64(); ok {
		return n, true
	}
	f, ok := v.Float64()
	if !ok || f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

// timeLayouts are the ISO-8601 forms accepted for date-time fields, tried in
// order. Values without a zone are taken as UTC.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02",
}

// ParseTime parses an ISO-8601 date or date-time.
func ParseTime(s string) (time.Time, error) {
	var firstErr error
	for _, layout := range timeLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, fmt.Errorf("not an ISO-8601 date-time: %w", firstErr)
}

// indirect strips one pointer level.
func indirect(t reflect.Type) reflect.Type {
	if t.Kind() == reflect.Ptr {
		return t.Elem()
	}
	return t
}

// wrap returns v as type t, allocating when t is a pointer.
func wrap(v reflect.Value, t reflect.Type) reflect.Value {
	if t.Kind() != reflect.Ptr {
		return v
	}
	p := reflect.New(t.Elem())
	p.Elem().Set(v)
	return p
}

// fromPointer returns ptr for pointer destinations and *ptr otherwise.
func fromPointer(ptr reflect.Value, t reflect.Type) reflect.Value {
	if t.Kind() == reflect.Ptr {
		return ptr
	}
	return ptr.Elem()
}

// abbreviate returns the JSON text of v, cut short for error messages.
func abbreviate(v value.Value) string {
	s := v.String()
	if utf8.RuneCountInString(s) <= 64 {
		return s
	}
	n := 0
	for i := range s {
		if n == 61 {
			return s[:i] + "..."
		}
		n++
	}
	return s
}
