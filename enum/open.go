package enum

import (
	"github.com/merge-api/merge-go-client/value"
)

// Kind identifies which branch an Open value resolved to.
type Kind uint8

const (
	// KindUnset is the zero Open value; it encodes as null.
	KindUnset Kind = iota
	// KindKnown holds a member of the closed mapping.
	KindKnown
	// KindRaw holds a string the mapping does not know.
	KindRaw
	// KindOpaque holds a non-string JSON value kept verbatim.
	KindOpaque
)

func (k Kind) String() string {
	switch k {
	case KindUnset:
		return "Unset"
	case KindKnown:
		return "Known"
	case KindRaw:
		return "Raw"
	case KindOpaque:
		return "Opaque"
	default:
		return "Unknown"
	}
}

// OpenEnum is the type-erased view of *Open[E] used by schema-driven codecs.
type OpenEnum interface {
	EnumMapping() *Mapping
	WireValue() value.Value
	DecodeWire(v value.Value)
}

// Open is a forward-compatible enum value.
type Open[E Enum] struct {
	kind   Kind
	known  E
	raw    string
	opaque value.Value
}

// Resolve maps a wire value onto an Open. It tries, in order, a member of the
// closed mapping, then any string, then keeps v as an opaque value.
func Resolve[E Enum](v value.Value) Open[E] {
	if s, ok := v.AsString(); ok {
		return Parse[E](s)
	}
	if v.IsNull() {
		return Open[E]{}
	}
	return Open[E]{kind: KindOpaque, opaque: v}
}

// Parse resolves a wire string. It never fails.
func Parse[E Enum](s string) Open[E] {
	var zero E
	if zero.Mapping().Contains(s) {
		return Open[E]{kind: KindKnown, known: E(s)}
	}
	return Open[E]{kind: KindRaw, raw: s}
}

// Of wraps a typed constant. Values outside the mapping are kept as raw strings.
func Of[E Enum](e E) Open[E] {
	return Parse[E](string(e))
}

// Ptr is like Of but returns a pointer, for optional model fields.
func Ptr[E Enum](e E) *Open[E] {
	o := Of(e)
	return &o
}

// Kind reports which branch o resolved to.
func (o Open[E]) Kind() Kind { return o.kind }

// IsZero reports whether o is unset.
func (o Open[E]) IsZero() bool { return o.kind == KindUnset }

// Known returns the typed constant when o resolved to a mapping member.
func (o Open[E]) Known() (E, bool) {
	return o.known, o.kind == KindKnown
}

// Is reports whether o holds the known constant e.
func (o Open[E]) Is(e E) bool {
	return o.kind == KindKnown && o.known == e
}

// Key returns the symbolic key when o resolved to a mapping member.
func (o Open[E]) Key() (string, bool) {
	if o.kind != KindKnown {
		return "", false
	}
	return o.EnumMapping().Key(string(o.known))
}

// Raw returns the unrecognized string held by o.
func (o Open[E]) Raw() (string, bool) {
	return o.raw, o.kind == KindRaw
}

// Opaque returns the non-string value held by o.
func (o Open[E]) Opaque() (value.Value, bool) {
	return o.opaque, o.kind == KindOpaque
}

// String returns the wire string for known and raw values and the JSON text
// of opaque values.
func (o Open[E]) String() string {
	switch o.kind {
	case KindKnown:
		return string(o.known)
	case KindRaw:
		return o.raw
	case KindOpaque:
		return o.opaque.String()
	default:
		return ""
	}
}

// EnumMapping returns the closed mapping of E.
func (o Open[E]) EnumMapping() *Mapping {
	var zero E
	return zero.Mapping()
}

// WireValue returns the value to emit on the wire: the token for known and
// raw values and the retained value for opaque ones.
func (o Open[E]) WireValue() value.Value {
	switch o.kind {
	case KindKnown:
		return value.String(string(o.known))
	case KindRaw:
		return value.String(o.raw)
	case KindOpaque:
		return o.opaque
	default:
		return value.Null()
	}
}

// DecodeWire replaces o with the resolution of v.
func (o *Open[E]) DecodeWire(v value.Value) {
	*o = Resolve[E](v)
}

// MarshalJSON implements json.Marshaler.
func (o Open[E]) MarshalJSON() ([]byte, error) {
	return o.WireValue().MarshalJSON()
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *Open[E]) UnmarshalJSON(data []byte) error {
	v, err := value.Parse(data)
	if err != nil {
		return err
	}
	o.DecodeWire(v)
	return nil
}

