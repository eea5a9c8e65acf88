// Package schema defines declarative descriptors for Merge models.
//
// A ModelDescriptor lists a model's fields in wire order. Each field names its
// JSON key, its semantic type and whether it is required. The model engine
// walks these descriptors to parse, serialize and validate raw JSON, so the
// descriptors are the single source of truth for a model's shape.
package schema

// Identifier names a described type together with its Go package.
type Identifier struct {
	// Name is the type name. Generic instantiations use a sanitized
	// synthetic name such as "Response_Employee".
	Name string

	// Package is the fully qualified Go package path.
	// Empty for builtin types.
	Package string
}

// IsZero returns true if the identifier is empty.
func (id Identifier) IsZero() bool {
	return id.Name == "" && id.Package == ""
}

// String returns the package-qualified name.
func (id Identifier) String() string {
	if id.Package == "" {
		return id.Name
	}
	return id.Package + "." + id.Name
}

// Documentation holds human-readable notes attached to a descriptor.
type Documentation struct {
	// Summary is a one-line description.
	Summary string

	// Deprecated is non-nil if the field or type is deprecated.
	// The string value is the deprecation message (may be empty).
	Deprecated *string
}

// IsZero returns true if the documentation is empty.
func (d Documentation) IsZero() bool {
	return d.Summary == "" && d.Deprecated == nil
}

// Warning represents a non-fatal issue encountered while building descriptors.
type Warning struct {
	// Code is a machine-readable warning identifier.
	Code string

	// Message is a human-readable description.
	Message string

	// TypeName is the type that triggered the warning, if applicable.
	TypeName string
}
