package model

import "github.com/merge-api/merge-go-client/value"

// Base is embedded in every model. It carries the raw object the model was
// parsed from, so fields the model does not declare stay reachable.
type Base struct {
	raw value.Value
}

// AdditionalProperties returns the complete raw object this model was parsed
// from, or null for models built in code. The returned value is shared and
// must not be modified.
func (b *Base) AdditionalProperties() value.Value {
	if b == nil {
		return value.Null()
	}
	return b.raw
}

// Additional looks up an undeclared field by gjson path, for example
// "remote_data.0.path".
func (b *Base) Additional(path string) (value.Value, bool) {
	if b == nil || b.raw.IsNull() {
		return value.Null(), false
	}
	return value.Lookup(b.raw, path)
}

func (b *Base) setRaw(v value.Value) { b.raw = v }

// rawSetter is implemented by *Base and promoted to every model embedding it.
type rawSetter interface {
	setRaw(v value.Value)
}

// AfterParser is implemented by models that normalize themselves once all
// declared fields are bound.
type AfterParser interface {
	AfterParse() error
}
