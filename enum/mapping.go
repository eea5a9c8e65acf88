// Package enum implements the two enum shapes used by Merge models.
//
// A Mapping is a closed set of wire tokens ("ACTIVE", "INVITED_USER") each
// paired with a lower-snake symbolic key ("active", "invited_user"). Go enum
// types are string types whose constants hold the wire token and whose
// Mapping method returns the shared Mapping.
//
// Open wraps a value that is conceptually an enum but may carry tokens the
// client was not generated with. Resolution never fails: a known token
// resolves to its constant, any other string is kept verbatim, and a non-string
// value is kept as an opaque JSON value.
package enum

import (
	"errors"
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"
)

// ErrUnknownValue is wrapped by errors reporting a token outside a closed set.
var ErrUnknownValue = errors.New("unknown enum value")

// UnknownValueError reports a wire token that is not a member of a Mapping.
type UnknownValueError struct {
	Enum    string
	Value   string
	Allowed []string
}

func (e *UnknownValueError) Error() string {
	return fmt.Sprintf("%s: unknown value %q (allowed: %s)", e.Enum, e.Value, strings.Join(e.Allowed, ", "))
}

// Unwrap returns ErrUnknownValue.
func (e *UnknownValueError) Unwrap() error { return ErrUnknownValue }

// Enum is the constraint satisfied by generated enum types.
type Enum interface {
	~string
	Mapping() *Mapping
}

// Mapping is a closed, invertible set of wire token / symbolic key pairs.
// It is immutable after construction and safe for concurrent use.
type Mapping struct {
	name   string
	wires  []string
	keys   []string
	byWire map[string]string
	byKey  map[string]string
}

// NewMapping builds a Mapping from wire tokens. Symbolic keys are derived with
// KeyOf. It panics on empty or duplicate tokens, since mappings are declared
// as package-level variables.
func NewMapping(name string, wires ...string) *Mapping {
	m := &Mapping{
		name:   name,
		wires:  make([]string, 0, len(wires)),
		keys:   make([]string, 0, len(wires)),
		byWire: make(map[string]string, len(wires)),
		byKey:  make(map[string]string, len(wires)),
	}
	for _, w := range wires {
		if w == "" {
			panic("enum: " + name + ": empty wire value")
		}
		if _, dup := m.byWire[w]; dup {
			panic("enum: " + name + ": duplicate wire value " + w)
		}
		k := KeyOf(w)
		if _, dup := m.byKey[k]; dup {
			panic("enum: " + name + ": duplicate key " + k)
		}
		m.wires = append(m.wires, w)
		m.keys = append(m.keys, k)
		m.byWire[w] = k
		m.byKey[k] = w
	}
	return m
}

// Define builds a Mapping from typed constants.
func Define[E ~string](name string, values ...E) *Mapping {
	wires := make([]string, len(values))
	for i, v := range values {
		wires[i] = string(v)
	}
	return NewMapping(name, wires...)
}

// KeyOf returns the symbolic key for a wire token: "INVITED_USER" becomes
// "invited_user" and "NON-BINARY" becomes "non_binary".
func KeyOf(wire string) string {
	return strcase.ToSnake(wire)
}

// Name returns the enum type name.
func (m *Mapping) Name() string { return m.name }

// Key returns the symbolic key for a wire token.
func (m *Mapping) Key(wire string) (string, bool) {
	k, ok := m.byWire[wire]
	return k, ok
}

// Wire returns the wire token for a symbolic key.
func (m *Mapping) Wire(key string) (string, bool) {
	w, ok := m.byKey[key]
	return w, ok
}

// Contains reports whether wire is a member of the mapping.
func (m *Mapping) Contains(wire string) bool {
	_, ok := m.byWire[wire]
	return ok
}

// Wires returns the wire tokens in declaration order.
func (m *Mapping) Wires() []string {
	out := make([]string, len(m.wires))
	copy(out, m.wires)
	return out
}

// Keys returns the symbolic keys in declaration order.
func (m *Mapping) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Len returns the number of members.
func (m *Mapping) Len() int { return len(m.wires) }

// Check returns an *UnknownValueError when wire is not a member.
func (m *Mapping) Check(wire string) error {
	if m.Contains(wire) {
		return nil
	}
	return &UnknownValueError{Enum: m.name, Value: wire, Allowed: m.Wires()}
}

// Check validates a closed enum value against its mapping.
func Check[E Enum](e E) error {
	return e.Mapping().Check(string(e))
}

// KeyFor returns the symbolic key of a closed enum value.
func KeyFor[E Enum](e E) (string, bool) {
	return e.Mapping().Key(string(e))
}
