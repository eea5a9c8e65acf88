package model

import (
	"fmt"

	"go.uber.org/multierr"
)

// ParseError reports a field whose raw value could not be bound to its
// declared type. It aborts the whole parse.
type ParseError struct {
	// Model is the name of the model being parsed.
	Model string
	// Path is the dotted wire path of the offending field ("" for the root).
	Path string
	// Value is the offending raw text.
	Value string
	// Err is the underlying cause, if any.
	Err error
}

func (e *ParseError) Error() string {
	where := e.Model
	if e.Path != "" {
		where += "." + e.Path
	}
	if e.Err != nil {
		return fmt.Sprintf("parse %s: invalid value %s: %v", where, e.Value, e.Err)
	}
	return fmt.Sprintf("parse %s: invalid value %s", where, e.Value)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ValidationError reports one field of a raw object that does not match its
// declared type or constraints.
type ValidationError struct {
	// Model is the name of the model being validated.
	Model string
	// Path is the dotted wire path of the offending field ("" for the root).
	Path string
	// Message is a human-readable description of the problem.
	Message string
}

func (e *ValidationError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %s", e.Model, e.Message)
	}
	return fmt.Sprintf("%s.%s: %s", e.Model, e.Path, e.Message)
}

// ValidationErrors splits an error returned by ValidateRaw into its
// individual field problems.
func ValidationErrors(err error) []*ValidationError {
	var out []*ValidationError
	for _, e := range multierr.Errors(err) {
		if ve, ok := e.(*ValidationError); ok {
			out = append(out, ve)
		}
	}
	return out
}

// joinPath appends a wire key to a dotted path.
func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

// indexPath appends an array index to a dotted path.
func indexPath(path string, i int) string {
	return fmt.Sprintf("%s[%d]", path, i)
}
