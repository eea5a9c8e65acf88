package schema

// ArrayDescriptor represents an ordered collection.
type ArrayDescriptor struct {
	exprBase

	// Element is the array element type.
	Element TypeDescriptor
}

// Kind returns KindArray.
func (d *ArrayDescriptor) Kind() DescriptorKind { return KindArray }

// Array returns an ArrayDescriptor for the given element type.
func Array(element TypeDescriptor) *ArrayDescriptor {
	return &ArrayDescriptor{Element: element}
}

// MapDescriptor represents an object with arbitrary string keys.
// Keys are always strings on the wire; Value is usually String or Any.
type MapDescriptor struct {
	exprBase

	// Value is the map value type.
	Value TypeDescriptor
}

// Kind returns KindMap.
func (d *MapDescriptor) Kind() DescriptorKind { return KindMap }

// Map returns a MapDescriptor with the given value type.
func Map(value TypeDescriptor) *MapDescriptor {
	return &MapDescriptor{Value: value}
}

// ReferenceDescriptor represents a nested model.
//
// Model is set when the referenced descriptor is known at construction time,
// which also covers recursive models (a model referring to itself). When Model
// is nil the target is looked up by name through Registry.Resolve.
type ReferenceDescriptor struct {
	exprBase

	// Target is the referenced model's identifier.
	Target Identifier

	// Model is the resolved descriptor, if known.
	Model *ModelDescriptor
}

// Kind returns KindReference.
func (d *ReferenceDescriptor) Kind() DescriptorKind { return KindReference }

// Ref returns an unresolved ReferenceDescriptor for a named model.
func Ref(name string, pkg string) *ReferenceDescriptor {
	return &ReferenceDescriptor{Target: Identifier{Name: name, Package: pkg}}
}

// RefTo returns a ReferenceDescriptor bound to m.
func RefTo(m *ModelDescriptor) *ReferenceDescriptor {
	return &ReferenceDescriptor{Target: m.Name, Model: m}
}

// UnionDescriptor represents a value that may take one of several shapes.
//
// Members are tried in declaration order. The typical use is an expandable
// field, which is either an ID string or, when the caller asked for expansion,
// the nested model: Union(String(), RefTo(employee)).
type UnionDescriptor struct {
	exprBase

	// Types contains the union members. Must have at least 1 element.
	Types []TypeDescriptor
}

// Kind returns KindUnion.
func (d *UnionDescriptor) Kind() DescriptorKind { return KindUnion }

// Union returns a UnionDescriptor for a union of types.
func Union(types ...TypeDescriptor) *UnionDescriptor {
	return &UnionDescriptor{Types: types}
}
