package model

import (
	"encoding/json"
	"reflect"

	"github.com/merge-api/merge-go-client/value"
)

// Expandable is a related object that the API returns as an ID string by
// default and as the full nested object when the caller passes it in the
// expand parameter. Values the client does not recognize are kept verbatim.
type Expandable[T any] struct {
	id       string
	expanded *T
	opaque   value.Value
}

// ExpandID returns an Expandable holding an unexpanded ID.
func ExpandID[T any](id string) *Expandable[T] {
	return &Expandable[T]{id: id}
}

// Expanded returns an Expandable holding the nested object.
func Expanded[T any](m *T) *Expandable[T] {
	return &Expandable[T]{expanded: m}
}

// ID returns the related object's ID. For expanded objects that declare an
// "id" field, the nested value is reported.
func (e *Expandable[T]) ID() (string, bool) {
	if e == nil {
		return "", false
	}
	if e.expanded != nil {
		v, err := Serialize(e.expanded)
		if err != nil {
			return "", false
		}
		idv, _ := v.Get("id")
		return idv.AsString()
	}
	return e.id, e.id != ""
}

// Expanded returns the nested object when the field was expanded.
func (e *Expandable[T]) Expanded() (*T, bool) {
	if e == nil || e.expanded == nil {
		return nil, false
	}
	return e.expanded, true
}

// IsExpanded reports whether the field holds the nested object.
func (e *Expandable[T]) IsExpanded() bool {
	return e != nil && e.expanded != nil
}

// Opaque returns a value that was neither an ID nor an object.
func (e *Expandable[T]) Opaque() (value.Value, bool) {
	if e == nil || e.opaque.IsNull() {
		return value.Null(), false
	}
	return e.opaque, true
}

// MarshalJSON implements json.Marshaler.
func (e Expandable[T]) MarshalJSON() ([]byte, error) {
	switch {
	case e.expanded != nil:
		return Marshal(e.expanded)
	case !e.opaque.IsNull():
		return e.opaque.MarshalJSON()
	default:
		return json.Marshal(e.id)
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (e *Expandable[T]) UnmarshalJSON(data []byte) error {
	v, err := value.Parse(data)
	if err != nil {
		return err
	}
	*e = Expandable[T]{}
	if s, ok := v.AsString(); ok {
		e.id = s
		return nil
	}
	if _, ok := v.Object(); ok {
		m := new(T)
		if err := ParseInto(v, m); err != nil {
			return err
		}
		e.expanded = m
		return nil
	}
	if !v.IsNull() {
		e.opaque = v
	}
	return nil
}

func (*Expandable[T]) expandedType() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

func (e *Expandable[T]) setID(id string) { e.id = id }

func (e *Expandable[T]) setExpanded(p reflect.Value) { e.expanded = p.Interface().(*T) }

func (e *Expandable[T]) setOpaque(v value.Value) { e.opaque = v }

func (e *Expandable[T]) state() (id string, expanded reflect.Value, opaque value.Value) {
	if e.expanded != nil {
		expanded = reflect.ValueOf(e.expanded)
	}
	return e.id, expanded, e.opaque
}

// expandable is the type-erased view of *Expandable[T] used by the engine.
type expandable interface {
	expandedType() reflect.Type
	setID(id string)
	setExpanded(p reflect.Value)
	setOpaque(v value.Value)
	state() (id string, expanded reflect.Value, opaque value.Value)
}
