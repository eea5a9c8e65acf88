package model

import (
	"fmt"
	"reflect"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/merge-api/merge-go-client/schema"
	"github.com/merge-api/merge-go-client/value"
)

// Serialize converts a model (struct or pointer to struct) to its canonical
// JSON object: exactly the declared fields, in declaration order, with unset
// fields as null. AdditionalProperties is not included.
func Serialize(m any) (value.Value, error) {
	rv := reflect.ValueOf(m)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return value.Null(), nil
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return value.Null(), nil
	}
	info, err := defaultProvider.info(rv.Type())
	if err != nil {
		return value.Null(), err
	}
	e := &encoder{p: defaultProvider}
	return e.object(rv, info)
}

// Marshal returns the JSON encoding of Serialize(m).
func Marshal(m any) ([]byte, error) {
	v, err := Serialize(m)
	if err != nil {
		return nil, err
	}
	return v.MarshalJSON()
}

type encoder struct {
	p *provider
}

func (e *encoder) object(rv reflect.Value, info *typeInfo) (value.Value, error) {
	raw := rawOf(rv)
	obj := value.NewObject()
	for _, f := range info.fields {
		fv, err := e.value(rv.FieldByIndex(f.index), f.desc.Type)
		if err != nil {
			return value.Null(), fmt.Errorf("%s.%s: %w", info.desc.Name.Name, f.desc.JSONName, err)
		}
		if p, ok := f.desc.Type.(*schema.PrimitiveDescriptor); ok {
			fv = wireNumber(raw, f.desc.JSONName, fv, p.PrimitiveKind)
		}
		obj.Set(f.desc.JSONName, fv)
	}
	return value.ObjectOf(obj), nil
}

// rawOf returns the object a struct was parsed from, or null.
func rawOf(rv reflect.Value) value.Value {
	if !rv.CanAddr() {
		p := reflect.New(rv.Type())
		p.Elem().Set(rv)
		rv = p.Elem()
	}
	if b, ok := rv.Addr().Interface().(interface{ AdditionalProperties() value.Value }); ok {
		return b.AdditionalProperties()
	}
	return value.Null()
}

// wireNumber returns the parsed member at key in place of fv when both hold
// the same number, so 36.0 stays 36.0 and a decimal sent as "1234.50" stays a
// string. A field changed after parsing is emitted as fv.
func wireNumber(raw value.Value, key string, fv value.Value, k schema.PrimitiveKind) value.Value {
	switch k {
	case schema.PrimitiveInt, schema.PrimitiveFloat, schema.PrimitiveDecimal:
	default:
		return fv
	}
	lit, ok := fv.AsNumber()
	if !ok {
		return fv
	}
	rm, ok := raw.Get(key)
	if !ok {
		return fv
	}
	rl, ok := rm.AsNumber()
	if !ok && k == schema.PrimitiveDecimal {
		rl, ok = rm.AsString()
	}
	if !ok {
		return fv
	}
	a, err := decimal.NewFromString(lit)
	if err != nil {
		return fv
	}
	b, err := decimal.NewFromString(rl)
	if err != nil || !a.Equal(b) {
		return fv
	}
	return rm
}

func (e *encoder) value(rv reflect.Value, td schema.TypeDescriptor) (value.Value, error) {
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map:
		if rv.IsNil() {
			return value.Null(), nil
		}
	}

	switch desc := td.(type) {
	case *schema.PrimitiveDescriptor:
		return e.primitive(rv, desc)

	case *schema.EnumDescriptor:
		if desc.Open {
			w, ok := rv.Interface().(interface{ WireValue() value.Value })
			if !ok {
				return value.Null(), fmt.Errorf("%s is not an open enum", rv.Type())
			}
			return w.WireValue(), nil
		}
		return value.String(reflect.Indirect(rv).String()), nil

	case *schema.ArrayDescriptor:
		elems := make([]value.Value, rv.Len())
		for i := range elems {
			ev, err := e.value(rv.Index(i), desc.Element)
			if err != nil {
				return value.Null(), err
			}
			elems[i] = ev
		}
		return value.Array(elems...), nil

	case *schema.MapDescriptor:
		keys := make([]string, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		obj := value.NewObject()
		for _, k := range keys {
			ev, err := e.value(rv.MapIndex(reflect.ValueOf(k).Convert(rv.Type().Key())), desc.Value)
			if err != nil {
				return value.Null(), err
			}
			obj.Set(k, ev)
		}
		return value.ObjectOf(obj), nil

	case *schema.ReferenceDescriptor:
		sv := reflect.Indirect(rv)
		info, err := e.p.info(sv.Type())
		if err != nil {
			return value.Null(), err
		}
		return e.object(sv, info)

	case *schema.UnionDescriptor:
		var x expandable
		if rv.Kind() == reflect.Ptr {
			x, _ = rv.Interface().(expandable)
		} else if rv.CanAddr() {
			x, _ = rv.Addr().Interface().(expandable)
		}
		if x == nil {
			return value.Null(), fmt.Errorf("%s cannot hold a union", rv.Type())
		}
		id, expanded, opaque := x.state()
		switch {
		case expanded.IsValid():
			info, err := e.p.info(expanded.Type())
			if err != nil {
				return value.Null(), err
			}
			return e.object(expanded.Elem(), info)
		case !opaque.IsNull():
			return opaque, nil
		case id != "":
			return value.String(id), nil
		default:
			return value.Null(), nil
		}

	default:
		return value.Null(), fmt.Errorf("unsupported descriptor %v", td.Kind())
	}
}

func (e *encoder) primitive(rv reflect.Value, desc *schema.PrimitiveDescriptor) (value.Value, error) {
	rv = reflect.Indirect(rv)
	switch desc.PrimitiveKind {
	case schema.PrimitiveBool:
		return value.Bool(rv.Bool()), nil
	case schema.PrimitiveInt:
		switch rv.Kind() {
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return value.Number(fmt.Sprintf("%d", rv.Uint())), nil
		}
		return value.Int(rv.Int()), nil
	case schema.PrimitiveFloat:
		return value.Float(rv.Float()), nil
	case schema.PrimitiveString:
		return value.String(rv.String()), nil
	case schema.PrimitiveTime:
		return value.String(FormatTime(rv.Interface().(time.Time))), nil
	case schema.PrimitiveDecimal:
		return value.Number(rv.Interface().(decimal.Decimal).String()), nil
	case schema.PrimitiveAny:
		return value.FromAny(rv.Interface())
	}
	return value.Null(), fmt.Errorf("unsupported primitive %v", desc.PrimitiveKind)
}

// FormatTime renders t as RFC 3339, with fractional seconds only when present.
func FormatTime(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}
