package schema

import (
	"sort"
	"strings"
)

// Registry holds the named descriptors known to a client.
//
// Registry is not safe for concurrent mutation. Callers that add descriptors
// from several goroutines must serialize access.
type Registry struct {
	// Types contains named descriptors in insertion order.
	// Only Model and Enum descriptors appear here. Expression descriptors
	// (Primitive, Array, Map, etc.) appear nested within model fields.
	//
	// Ordering: descriptors are usually added dependencies first, but
	// consumers MUST NOT rely on it. Recursive models reference themselves.
	Types []TypeDescriptor

	// Warnings contains non-fatal issues encountered while describing types.
	Warnings []Warning
}

// Add adds a named descriptor to the registry.
func (r *Registry) Add(t TypeDescriptor) {
	r.Types = append(r.Types, t)
}

// AddWarning adds a warning to the registry.
func (r *Registry) AddWarning(w Warning) {
	r.Warnings = append(r.Warnings, w)
}

// Find looks up a type by name. Returns nil if not found.
func (r *Registry) Find(name Identifier) TypeDescriptor {
	for _, t := range r.Types {
		if t.TypeName() == name {
			return t
		}
	}
	return nil
}

// FindModel looks up a model by its short name, ignoring the package.
// Returns nil if no model has that name.
func (r *Registry) FindModel(name string) *ModelDescriptor {
	for _, t := range r.Types {
		if m, ok := t.(*ModelDescriptor); ok && m.Name.Name == name {
			return m
		}
	}
	return nil
}

// Resolve returns the model a reference points to.
func (r *Registry) Resolve(ref *ReferenceDescriptor) (*ModelDescriptor, bool) {
	if ref.Model != nil {
		return ref.Model, true
	}
	m, ok := r.Find(ref.Target).(*ModelDescriptor)
	return m, ok && m != nil
}

// Models returns all model descriptors sorted by name.
func (r *Registry) Models() []*ModelDescriptor {
	var out []*ModelDescriptor
	for _, t := range r.Types {
		if m, ok := t.(*ModelDescriptor); ok {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name.String() < out[j].Name.String()
	})
	return out
}

// Validate checks the registry for structural issues.
// Returns all validation errors found (not just the first).
func (r *Registry) Validate() []error {
	var errors []*Error

	// Build a set of type names, checking for duplicates
	typeNames := make(map[Identifier]bool)
	for _, t := range r.Types {
		name := t.TypeName()
		if !name.IsZero() {
			if typeNames[name] {
				errors = append(errors, &Error{
					Code:    "duplicate_type",
					Message: "duplicate type name: " + name.Name + " (package: " + name.Package + ")",
				})
			}
			typeNames[name] = true
		}
	}

	for _, t := range r.Types {
		switch d := t.(type) {
		case *ModelDescriptor:
			seen := make(map[string]bool)
			for _, field := range d.Fields {
				if field.JSONName == "" {
					errors = append(errors, &Error{
						Code:    "missing_wire_key",
						Message: "field " + d.Name.Name + "." + field.Name + " has no wire key",
					})
					continue
				}
				if seen[field.JSONName] {
					errors = append(errors, &Error{
						Code:    "duplicate_wire_key",
						Message: "duplicate wire key in model " + d.Name.Name + ": " + field.JSONName,
					})
				}
				seen[field.JSONName] = true
				errors = append(errors, validateTypeReferences(field.Type, typeNames, "field "+d.Name.Name+"."+field.Name)...)
			}
		case *EnumDescriptor:
			if d.Mapping == nil || d.Mapping.Len() == 0 {
				errors = append(errors, &Error{
					Code:    "empty_enum",
					Message: "enum " + d.Name.Name + " has no members",
				})
			}
		}
	}

	// Convert to regular errors
	var result []error
	for _, e := range errors {
		result = append(result, e)
	}
	return result
}

// validateTypeReferences recursively walks a TypeDescriptor and checks that all
// unbound ReferenceDescriptors point to types that exist in typeNames.
func validateTypeReferences(td TypeDescriptor, typeNames map[Identifier]bool, context string) []*Error {
	if td == nil {
		return []*Error{{
			Code:    "missing_type",
			Message: context + " has no type",
		}}
	}

	var errors []*Error

	switch d := td.(type) {
	case *ReferenceDescriptor:
		if d.Model == nil && !typeNames[d.Target] {
			errors = append(errors, &Error{
				Code:    "missing_type_reference",
				Message: context + " references unknown type: " + d.Target.Name,
			})
		}
	case *ArrayDescriptor:
		errors = append(errors, validateTypeReferences(d.Element, typeNames, context)...)
	case *MapDescriptor:
		errors = append(errors, validateTypeReferences(d.Value, typeNames, context)...)
	case *UnionDescriptor:
		if len(d.Types) == 0 {
			errors = append(errors, &Error{
				Code:    "empty_union",
				Message: context + " is a union with no members",
			})
		}
		for _, t := range d.Types {
			errors = append(errors, validateTypeReferences(t, typeNames, context)...)
		}
	case *EnumDescriptor:
		// Inline enums carry their own mapping
	case *PrimitiveDescriptor:
		// Primitives don't have references
	default:
		// Unknown descriptor type - skip
	}

	return errors
}

// Error represents a registry validation error.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Describe returns a short human-readable name for a descriptor, as used in
// validation messages ("string", "array of Employee", "enum GenderEnum").
func Describe(td TypeDescriptor) string {
	switch d := td.(type) {
	case nil:
		return "unknown"
	case *PrimitiveDescriptor:
		switch d.PrimitiveKind {
		case PrimitiveBool:
			return "boolean"
		case PrimitiveInt:
			return "integer"
		case PrimitiveFloat, PrimitiveDecimal:
			return "number"
		case PrimitiveString:
			return "string"
		case PrimitiveTime:
			return "date-time"
		default:
			return "any"
		}
	case *ArrayDescriptor:
		return "array of " + Describe(d.Element)
	case *MapDescriptor:
		return "object"
	case *ReferenceDescriptor:
		return d.Target.Name
	case *ModelDescriptor:
		return d.Name.Name
	case *EnumDescriptor:
		return "enum " + d.Name.Name
	case *UnionDescriptor:
		names := make([]string, len(d.Types))
		for i, t := range d.Types {
			names[i] = Describe(t)
		}
		return strings.Join(names, " or ")
	default:
		return td.Kind().String()
	}
}
