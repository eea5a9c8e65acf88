package schema

import "github.com/merge-api/merge-go-client/enum"

// EnumDescriptor represents an enumeration of wire tokens.
//
// A closed enum (Open == false) only admits members of Mapping. An open enum
// admits any value: members resolve to their symbolic key and everything else
// passes through unchanged.
type EnumDescriptor struct {
	// Name is the type identifier.
	Name Identifier

	// Mapping holds the wire tokens and their symbolic keys.
	Mapping *enum.Mapping

	// Open marks a forward-compatible enum.
	Open bool

	// Documentation for this type.
	Documentation Documentation
}

// Kind returns KindOpenEnum for open enums and KindEnum otherwise.
func (d *EnumDescriptor) Kind() DescriptorKind {
	if d.Open {
		return KindOpenEnum
	}
	return KindEnum
}

// TypeName returns the enum's name.
func (d *EnumDescriptor) TypeName() Identifier { return d.Name }

// Doc returns the enum's documentation.
func (d *EnumDescriptor) Doc() Documentation { return d.Documentation }

func (*EnumDescriptor) sealed() {}

// Members lists the enum members in declaration order.
func (d *EnumDescriptor) Members() []EnumMember {
	if d.Mapping == nil {
		return nil
	}
	wires := d.Mapping.Wires()
	keys := d.Mapping.Keys()
	members := make([]EnumMember, len(wires))
	for i := range wires {
		members[i] = EnumMember{Key: keys[i], Value: wires[i]}
	}
	return members
}

// EnumMember represents a single enum variant.
type EnumMember struct {
	// Key is the lower-snake symbolic key.
	Key string

	// Value is the wire token.
	Value string
}

// ClosedEnum returns a descriptor for a closed enum.
func ClosedEnum(name Identifier, m *enum.Mapping) *EnumDescriptor {
	return &EnumDescriptor{Name: name, Mapping: m}
}

// OpenEnum returns a descriptor for a forward-compatible enum.
func OpenEnum(name Identifier, m *enum.Mapping) *EnumDescriptor {
	return &EnumDescriptor{Name: name, Mapping: m, Open: true}
}
