package schema

import "encoding/json"

// JSON serialization support for descriptors.
// All descriptors include a "kind" field for type discrimination.

// MarshalJSON implements json.Marshaler for ModelDescriptor.
func (d *ModelDescriptor) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind   string            `json:"kind"`
		Name   Identifier        `json:"name"`
		Fields []FieldDescriptor `json:"fields"`
		Doc    string            `json:"doc,omitempty"`
	}{
		Kind:   "model",
		Name:   d.Name,
		Fields: d.Fields,
		Doc:    d.Documentation.Summary,
	})
}

// MarshalJSON implements json.Marshaler for EnumDescriptor.
func (d *EnumDescriptor) MarshalJSON() ([]byte, error) {
	kind := "enum"
	if d.Open {
		kind = "openEnum"
	}
	return json.Marshal(&struct {
		Kind    string       `json:"kind"`
		Name    Identifier   `json:"name"`
		Members []EnumMember `json:"members"`
		Doc     string       `json:"doc,omitempty"`
	}{
		Kind:    kind,
		Name:    d.Name,
		Members: d.Members(),
		Doc:     d.Documentation.Summary,
	})
}

// MarshalJSON implements json.Marshaler for PrimitiveDescriptor.
func (d *PrimitiveDescriptor) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind          string `json:"kind"`
		PrimitiveKind string `json:"primitiveKind"`
	}{
		Kind:          "primitive",
		PrimitiveKind: d.PrimitiveKind.String(),
	})
}

// MarshalJSON implements json.Marshaler for ArrayDescriptor.
func (d *ArrayDescriptor) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind    string         `json:"kind"`
		Element TypeDescriptor `json:"element"`
	}{
		Kind:    "array",
		Element: d.Element,
	})
}

// MarshalJSON implements json.Marshaler for MapDescriptor.
func (d *MapDescriptor) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind  string         `json:"kind"`
		Value TypeDescriptor `json:"value"`
	}{
		Kind:  "map",
		Value: d.Value,
	})
}

// MarshalJSON implements json.Marshaler for ReferenceDescriptor.
// Only the target name is written, so recursive models terminate.
func (d *ReferenceDescriptor) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind string `json:"kind"`
		Name string `json:"name"`
		Pkg  string `json:"package,omitempty"`
	}{
		Kind: "reference",
		Name: d.Target.Name,
		Pkg:  d.Target.Package,
	})
}

// MarshalJSON implements json.Marshaler for UnionDescriptor.
func (d *UnionDescriptor) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Kind  string           `json:"kind"`
		Types []TypeDescriptor `json:"types"`
	}{
		Kind:  "union",
		Types: d.Types,
	})
}

// MarshalJSON implements json.Marshaler for Identifier.
func (id Identifier) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Name    string `json:"name"`
		Package string `json:"package,omitempty"`
	}{
		Name:    id.Name,
		Package: id.Package,
	})
}

// MarshalJSON implements json.Marshaler for FieldDescriptor.
func (f FieldDescriptor) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Name        string         `json:"name"`
		Type        TypeDescriptor `json:"type"`
		JSONName    string         `json:"jsonName"`
		Required    bool           `json:"required,omitempty"`
		ValidateTag string         `json:"validateTag,omitempty"`
		Doc         string         `json:"doc,omitempty"`
		Deprecated  *string        `json:"deprecated,omitempty"`
	}{
		Name:        f.Name,
		Type:        f.Type,
		JSONName:    f.JSONName,
		Required:    f.Required,
		ValidateTag: f.ValidateTag,
		Doc:         f.Documentation.Summary,
		Deprecated:  f.Documentation.Deprecated,
	})
}

// MarshalJSON implements json.Marshaler for EnumMember.
func (m EnumMember) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Key   string `json:"key"`
		Value string `json:"value"`
	}{
		Key:   m.Key,
		Value: m.Value,
	})
}
