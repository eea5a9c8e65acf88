package value

// Object is an insertion-ordered JSON object.
type Object struct {
	keys   []string
	fields map[string]Value
}

// NewObject returns an empty object.
func NewObject() *Object {
	return &Object{fields: make(map[string]Value)}
}

// Set stores v under key. A key that is already present keeps its position.
// It returns o for chaining.
func (o *Object) Set(key string, v Value) *Object {
	if _, ok := o.fields[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.fields[key] = v
	return o
}

// Clone returns a shallow copy of o. Member values are shared, which is safe
// since a Value is never modified in place.
func (o *Object) Clone() *Object {
	c := &Object{keys: make([]string, len(o.keys)), fields: make(map[string]Value, len(o.fields))}
	copy(c.keys, o.keys)
	for k, v := range o.fields {
		c.fields[k] = v
	}
	return c
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (Value, bool) {
	if o == nil {
		return Null(), false
	}
	v, ok := o.fields[key]
	return v, ok
}

// Has reports whether key is present, including when its value is null.
func (o *Object) Has(key string) bool {
	if o == nil {
		return false
	}
	_, ok := o.fields[key]
	return ok
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	keys := make([]string, len(o.keys))
	copy(keys, o.keys)
	return keys
}

// Len returns the number of members.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Range calls fn for each member in insertion order until fn returns false.
func (o *Object) Range(fn func(key string, v Value) bool) {
	if o == nil {
		return
	}
	for _, k := range o.keys {
		if !fn(k, o.fields[k]) {
			return
		}
	}
}
