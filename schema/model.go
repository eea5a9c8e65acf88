package schema

// ModelDescriptor represents a Merge object with declared fields.
type ModelDescriptor struct {
	// Name is the type identifier.
	Name Identifier

	// Fields contains all declared fields in serialization order.
	Fields []FieldDescriptor

	// Documentation for this type.
	Documentation Documentation
}

// Kind returns KindModel.
func (d *ModelDescriptor) Kind() DescriptorKind { return KindModel }

// TypeName returns the model's name.
func (d *ModelDescriptor) TypeName() Identifier { return d.Name }

// Doc returns the model's documentation.
func (d *ModelDescriptor) Doc() Documentation { return d.Documentation }

func (*ModelDescriptor) sealed() {}

// Field returns the field with the given wire key.
func (d *ModelDescriptor) Field(jsonName string) (*FieldDescriptor, bool) {
	for i := range d.Fields {
		if d.Fields[i].JSONName == jsonName {
			return &d.Fields[i], true
		}
	}
	return nil, false
}

// RequiredFields returns the wire keys of required fields.
func (d *ModelDescriptor) RequiredFields() []string {
	var out []string
	for _, f := range d.Fields {
		if f.Required {
			out = append(out, f.JSONName)
		}
	}
	return out
}

// FieldDescriptor represents a single field within a model.
type FieldDescriptor struct {
	// Name is the Go field name.
	Name string

	// JSONName is the wire key.
	JSONName string

	// Type is the field's type descriptor.
	Type TypeDescriptor

	// Required marks fields whose value must be present and well typed.
	// Optional fields that are absent or null pass validation regardless
	// of Type.
	Required bool

	// ValidateTag is the raw value from the `validate` struct tag.
	// Constraints other than "required" and "omitempty" are checked against
	// the field value after the type check.
	//
	// Example: "required,email" or "omitempty,max=255"
	ValidateTag string

	// Documentation for this field.
	Documentation Documentation
}

// IsTime reports whether the field holds a date/time that needs a separate
// parse step.
func (f FieldDescriptor) IsTime() bool {
	p, ok := f.Type.(*PrimitiveDescriptor)
	return ok && p.PrimitiveKind == PrimitiveTime
}
