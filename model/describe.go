// Package model binds Merge JSON objects to Go structs.
//
// Models are plain structs whose fields are pointers, slices or maps, so that
// an unset field encodes as null. A model's descriptor is derived from its
// struct tags: the json tag gives the wire key and validate:"required" marks
// required fields. Parse, Serialize and ValidateRaw all walk that descriptor.
package model

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/merge-api/merge-go-client/enum"
	"github.com/merge-api/merge-go-client/schema"
	"github.com/merge-api/merge-go-client/value"
)

var (
	timeType       = reflect.TypeOf(time.Time{})
	decimalType    = reflect.TypeOf(decimal.Decimal{})
	valueType      = reflect.TypeOf(value.Value{})
	baseType       = reflect.TypeOf(Base{})
	openEnumType   = reflect.TypeOf((*enum.OpenEnum)(nil)).Elem()
	mapperType     = reflect.TypeOf((*interface{ Mapping() *enum.Mapping })(nil)).Elem()
	expandableType = reflect.TypeOf((*expandable)(nil)).Elem()
)

// typeInfo binds a model descriptor to the Go struct it was built from.
type typeInfo struct {
	goType reflect.Type
	desc   *schema.ModelDescriptor
	fields []fieldInfo
	base   []int // index of the embedded Base, nil if absent
}

type fieldInfo struct {
	desc   *schema.FieldDescriptor
	index  []int
	goType reflect.Type
}

// provider builds descriptors by reflection and caches them per Go type.
// It is safe for concurrent use.
type provider struct {
	mu       sync.RWMutex
	types    map[reflect.Type]*typeInfo
	enums    map[reflect.Type]*schema.EnumDescriptor
	registry *schema.Registry
}

func newProvider() *provider {
	return &provider{
		types:    make(map[reflect.Type]*typeInfo),
		enums:    make(map[reflect.Type]*schema.EnumDescriptor),
		registry: &schema.Registry{},
	}
}

var defaultProvider = newProvider()

// Describe returns the descriptor of model type T.
func Describe[T any]() (*schema.ModelDescriptor, error) {
	return DescribeType(reflect.TypeOf((*T)(nil)).Elem())
}

// DescribeType returns the descriptor of the struct type t (or *t).
func DescribeType(t reflect.Type) (*schema.ModelDescriptor, error) {
	info, err := defaultProvider.info(t)
	if err != nil {
		return nil, err
	}
	return info.desc, nil
}

// Registry returns a snapshot of every descriptor built so far.
func Registry() *schema.Registry {
	p := defaultProvider
	p.mu.RLock()
	defer p.mu.RUnlock()
	return &schema.Registry{
		Types:    append([]schema.TypeDescriptor(nil), p.registry.Types...),
		Warnings: append([]schema.Warning(nil), p.registry.Warnings...),
	}
}

// info returns the cached typeInfo for t, building it on first use.
func (p *provider) info(t reflect.Type) (*typeInfo, error) {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("model: %s is not a struct", t)
	}

	p.mu.RLock()
	info, ok := p.types[t]
	p.mu.RUnlock()
	if ok {
		return info, nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	b := &builder{p: p}
	info, err := b.model(t)
	if err != nil {
		b.rollback()
		return nil, err
	}
	return info, nil
}

// builder tracks one descriptor build so a failure leaves no partial entries.
// The provider lock is held for the builder's lifetime.
type builder struct {
	p       *provider
	added   []reflect.Type
	enums   []reflect.Type
	regSize int
	started bool
}

func (b *builder) rollback() {
	for _, t := range b.added {
		delete(b.p.types, t)
	}
	for _, t := range b.enums {
		delete(b.p.enums, t)
	}
	if b.started {
		b.p.registry.Types = b.p.registry.Types[:b.regSize]
	}
}

// model builds the typeInfo for struct type t. The entry is cached before its
// fields are described so recursive models resolve to the same descriptor.
func (b *builder) model(t reflect.Type) (*typeInfo, error) {
	if info, ok := b.p.types[t]; ok {
		return info, nil
	}
	if !b.started {
		b.started = true
		b.regSize = len(b.p.registry.Types)
	}

	info := &typeInfo{
		goType: t,
		desc: &schema.ModelDescriptor{
			Name: schema.Identifier{Name: typeName(t), Package: t.PkgPath()},
		},
	}
	b.p.types[t] = info
	b.added = append(b.added, t)

	var fields []fieldInfo
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Anonymous && field.Type == baseType {
			info.base = field.Index
			continue
		}

		// Skip unexported fields
		if !field.IsExported() {
			continue
		}

		jsonName, skip := parseJSONTag(field.Tag.Get("json"), field.Name)
		if skip {
			continue
		}

		td, err := b.describe(field.Type)
		if err != nil {
			return nil, fmt.Errorf("field %s.%s: %w", t.Name(), field.Name, err)
		}

		validateTag := field.Tag.Get("validate")
		info.desc.Fields = append(info.desc.Fields, schema.FieldDescriptor{
			Name:        field.Name,
			JSONName:    jsonName,
			Type:        td,
			Required:    hasRule(validateTag, "required"),
			ValidateTag: validateTag,
			Documentation: schema.Documentation{
				Summary:    field.Tag.Get("doc"),
				Deprecated: deprecation(field.Tag),
			},
		})
		fields = append(fields, fieldInfo{index: field.Index, goType: field.Type})
	}

	// Field descriptors are addressed after the slice stops growing.
	for i := range fields {
		fields[i].desc = &info.desc.Fields[i]
	}
	info.fields = fields

	b.p.registry.Add(info.desc)
	return info, nil
}

// describe converts a Go field type to a descriptor.
func (b *builder) describe(t reflect.Type) (schema.TypeDescriptor, error) {
	if d := specialType(t); d != nil {
		return d, nil
	}

	// Types whose pointer carries the behavior: open enums and expandables.
	if t.Kind() == reflect.Ptr {
		if d, ok, err := b.pointerBacked(t.Elem()); ok || err != nil {
			return d, err
		}
		return b.describe(t.Elem())
	}
	if d, ok, err := b.pointerBacked(t); ok || err != nil {
		return d, err
	}

	if t.Kind() == reflect.String && t.Implements(mapperType) {
		return b.closedEnum(t), nil
	}

	switch t.Kind() {
	case reflect.Bool:
		return schema.Bool(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return schema.Int(), nil
	case reflect.Float32, reflect.Float64:
		return schema.Float(), nil
	case reflect.String:
		return schema.String(), nil
	case reflect.Slice, reflect.Array:
		elem, err := b.describe(t.Elem())
		if err != nil {
			return nil, err
		}
		return schema.Array(elem), nil
	case reflect.Map:
		if t.Key().Kind() != reflect.String {
			return nil, fmt.Errorf("unsupported map key type: %s", t.Key())
		}
		elem, err := b.describe(t.Elem())
		if err != nil {
			return nil, err
		}
		return schema.Map(elem), nil
	case reflect.Struct:
		info, err := b.model(t)
		if err != nil {
			return nil, err
		}
		return schema.RefTo(info.desc), nil
	case reflect.Interface:
		typeName := t.String()
		b.p.registry.AddWarning(schema.Warning{
			Code:     "INTERFACE_TYPE",
			Message:  fmt.Sprintf("Interface type %s mapped to 'any'", typeName),
			TypeName: typeName,
		})
		return schema.Any(), nil
	default:
		return nil, fmt.Errorf("unsupported type: %s (kind: %s)", t.String(), t.Kind())
	}
}

// pointerBacked describes t when *t is an open enum or an expandable.
func (b *builder) pointerBacked(t reflect.Type) (schema.TypeDescriptor, bool, error) {
	if t.Kind() != reflect.Struct {
		return nil, false, nil
	}
	pt := reflect.PointerTo(t)
	switch {
	case pt.Implements(openEnumType):
		return b.openEnum(t), true, nil
	case pt.Implements(expandableType):
		target := reflect.New(t).Interface().(expandable).expandedType()
		info, err := b.model(target)
		if err != nil {
			return nil, true, err
		}
		return schema.Union(schema.String(), schema.RefTo(info.desc)), true, nil
	}
	return nil, false, nil
}

func (b *builder) closedEnum(t reflect.Type) *schema.EnumDescriptor {
	if d, ok := b.p.enums[t]; ok {
		return d
	}
	m := reflect.Zero(t).Interface().(interface{ Mapping() *enum.Mapping }).Mapping()
	d := schema.ClosedEnum(schema.Identifier{Name: t.Name(), Package: t.PkgPath()}, m)
	b.p.enums[t] = d
	b.enums = append(b.enums, t)
	b.p.registry.Add(d)
	return d
}

// openEnum describes enum.Open[E]. The descriptor takes the synthetic generic
// name (Open_hris_GenderEnum) so it never collides with E's closed descriptor.
func (b *builder) openEnum(t reflect.Type) *schema.EnumDescriptor {
	if d, ok := b.p.enums[t]; ok {
		return d
	}
	m := reflect.New(t).Interface().(enum.OpenEnum).EnumMapping()
	d := schema.OpenEnum(schema.Identifier{Name: typeName(t), Package: t.PkgPath()}, m)
	b.p.enums[t] = d
	b.enums = append(b.enums, t)
	b.p.registry.Add(d)
	return d
}

// specialType checks for types that have dedicated primitive descriptors.
func specialType(t reflect.Type) schema.TypeDescriptor {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t {
	case timeType:
		return schema.Time()
	case decimalType:
		return schema.Decimal()
	case valueType:
		return schema.Any()
	}
	// Check for empty interface
	if t.Kind() == reflect.Interface && t.NumMethod() == 0 {
		return schema.Any()
	}
	return nil
}

// typeName returns the name for a type, using synthetic naming for generic
// instantiations: Page[github.com/x/hris.Employee] becomes Page_hris_Employee.
func typeName(t reflect.Type) string {
	name := t.Name()
	open := strings.Index(name, "[")
	if open < 0 {
		return name
	}
	args := strings.Split(strings.TrimSuffix(name[open+1:], "]"), ",")
	parts := []string{name[:open]}
	for _, arg := range args {
		arg = strings.TrimSpace(arg)
		arg = strings.TrimPrefix(arg, "*")
		if slash := strings.LastIndex(arg, "/"); slash >= 0 {
			arg = arg[slash+1:]
		}
		arg = strings.ReplaceAll(arg, ".", "_")
		arg = strings.ReplaceAll(arg, "[", "_")
		arg = strings.ReplaceAll(arg, "]", "")
		parts = append(parts, arg)
	}
	return strings.Join(parts, "_")
}

// parseJSONTag returns the wire key for a field and whether it is skipped.
func parseJSONTag(tag, fieldName string) (jsonName string, skip bool) {
	if tag == "" {
		return fieldName, false
	}
	parts := strings.Split(tag, ",")
	if parts[0] == "-" && len(parts) == 1 {
		return "", true
	}
	if parts[0] == "" {
		return fieldName, false
	}
	return parts[0], false
}

// hasRule reports whether a validate tag contains rule at the top level.
func hasRule(tag, rule string) bool {
	for _, r := range strings.Split(tag, ",") {
		if r == rule {
			return true
		}
	}
	return false
}

func deprecation(tag reflect.StructTag) *string {
	msg, ok := tag.Lookup("deprecated")
	if !ok {
		return nil
	}
	return &msg
}
