package schema

// PrimitiveKind identifies the category of a primitive type.
type PrimitiveKind int

const (
	PrimitiveBool    PrimitiveKind = iota
	PrimitiveInt                   // Integral JSON number
	PrimitiveFloat                 // Any JSON number
	PrimitiveString                // JSON string
	PrimitiveTime                  // ISO-8601 date or date-time string, parsed separately
	PrimitiveDecimal               // JSON number kept at decimal precision (amounts, rates)
	PrimitiveAny                   // Untyped value passed through as-is
)

// String returns the string representation of the primitive kind.
func (k PrimitiveKind) String() string {
	switch k {
	case PrimitiveBool:
		return "Bool"
	case PrimitiveInt:
		return "Int"
	case PrimitiveFloat:
		return "Float"
	case PrimitiveString:
		return "String"
	case PrimitiveTime:
		return "Time"
	case PrimitiveDecimal:
		return "Decimal"
	case PrimitiveAny:
		return "Any"
	default:
		return "Unknown"
	}
}

// PrimitiveDescriptor represents a built-in primitive type.
type PrimitiveDescriptor struct {
	exprBase
	PrimitiveKind PrimitiveKind
}

// Kind returns KindPrimitive.
func (d *PrimitiveDescriptor) Kind() DescriptorKind { return KindPrimitive }

// Convenience constructors for common primitives.

// Bool returns a PrimitiveDescriptor for booleans.
func Bool() *PrimitiveDescriptor {
	return &PrimitiveDescriptor{PrimitiveKind: PrimitiveBool}
}

// String returns a PrimitiveDescriptor for strings.
func String() *PrimitiveDescriptor {
	return &PrimitiveDescriptor{PrimitiveKind: PrimitiveString}
}

// Int returns a PrimitiveDescriptor for integers.
func Int() *PrimitiveDescriptor {
	return &PrimitiveDescriptor{PrimitiveKind: PrimitiveInt}
}

// Float returns a PrimitiveDescriptor for floating point numbers.
func Float() *PrimitiveDescriptor {
	return &PrimitiveDescriptor{PrimitiveKind: PrimitiveFloat}
}

// Time returns a PrimitiveDescriptor for ISO-8601 date-times.
func Time() *PrimitiveDescriptor {
	return &PrimitiveDescriptor{PrimitiveKind: PrimitiveTime}
}

// Decimal returns a PrimitiveDescriptor for decimal numbers.
func Decimal() *PrimitiveDescriptor {
	return &PrimitiveDescriptor{PrimitiveKind: PrimitiveDecimal}
}

// Any returns a PrimitiveDescriptor for untyped values.
func Any() *PrimitiveDescriptor {
	return &PrimitiveDescriptor{PrimitiveKind: PrimitiveAny}
}
