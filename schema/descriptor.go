package schema

// DescriptorKind identifies the category of a type descriptor.
type DescriptorKind int

const (
	// Named type descriptors (appear in Registry)
	KindModel    DescriptorKind = iota // Object with declared fields
	KindEnum                           // Closed set of wire tokens
	KindOpenEnum                       // Known tokens plus pass-through strings

	// Expression type descriptors (appear nested in fields)
	KindPrimitive // Scalar or untyped value
	KindArray     // Ordered collection
	KindMap       // Object with arbitrary string keys
	KindReference // Reference to a model
	KindUnion     // One of several descriptors, tried in order
)

// String returns the string representation of the descriptor kind.
func (k DescriptorKind) String() string {
	switch k {
	case KindModel:
		return "Model"
	case KindEnum:
		return "Enum"
	case KindOpenEnum:
		return "OpenEnum"
	case KindPrimitive:
		return "Primitive"
	case KindArray:
		return "Array"
	case KindMap:
		return "Map"
	case KindReference:
		return "Reference"
	case KindUnion:
		return "Union"
	default:
		return "Unknown"
	}
}

// TypeDescriptor is the base interface for all type descriptors.
type TypeDescriptor interface {
	// Kind returns the descriptor kind for type switching.
	Kind() DescriptorKind

	// TypeName returns the canonical name of this type.
	// Returns zero value for expression types (primitives, arrays, etc).
	TypeName() Identifier

	// Doc returns associated documentation.
	// Returns zero value for expression types.
	Doc() Documentation

	// Ensure only types in this package can implement TypeDescriptor.
	sealed()
}

// exprBase provides zero-value implementations of TypeDescriptor methods
// for expression type descriptors that don't have names or docs.
type exprBase struct{}

func (exprBase) TypeName() Identifier { return Identifier{} }
func (exprBase) Doc() Documentation   { return Documentation{} }
func (exprBase) sealed()              {}
