package model

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"go.uber.org/multierr"

	"github.com/merge-api/merge-go-client/schema"
	"github.com/merge-api/merge-go-client/value"
)

var constraints = validator.New()

// ValidateRaw checks a loosely typed object against a model descriptor
// without binding it. It is a pure check: nothing is modified.
//
// Optional fields that are absent or null always pass, whatever their
// declared type. Present values must match their declared type; nested
// models are checked recursively, closed enums must hold a member of their
// mapping and unions pass when any member does. Required fields must be
// present and non-null. All problems are reported, combined with multierr;
// use ValidationErrors to split them.
func ValidateRaw(d *schema.ModelDescriptor, v value.Value) error {
	c := &checker{model: d.Name.Name, registry: defaultProvider}
	if _, ok := v.Object(); !ok {
		return &ValidationError{Model: c.model, Message: "expected object, got " + v.Kind().String()}
	}
	return c.object("", d, v)
}

// ValidateRawFor is ValidateRaw with the descriptor of T.
func ValidateRawFor[T any](v value.Value) error {
	d, err := Describe[T]()
	if err != nil {
		return err
	}
	return ValidateRaw(d, v)
}

// ValidateJSON parses JSON text and validates it against the descriptor of T.
func ValidateJSON[T any](data []byte) error {
	v, err := value.Parse(data)
	if err != nil {
		return err
	}
	return ValidateRawFor[T](v)
}

type checker struct {
	model    string
	registry *provider
}

func (c *checker) fail(path, format string, args ...any) error {
	return &ValidationError{Model: c.model, Path: path, Message: fmt.Sprintf(format, args...)}
}

func (c *checker) object(path string, d *schema.ModelDescriptor, v value.Value) error {
	var errs error
	for _, f := range d.Fields {
		fp := joinPath(path, f.JSONName)
		raw, ok := v.Get(f.JSONName)
		if !ok || raw.IsNull() {
			if f.Required {
				errs = multierr.Append(errs, c.fail(fp, "required field is missing"))
			}
			continue
		}
		if err := c.value(fp, raw, f.Type); err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		if tag := constraintTag(f.ValidateTag); tag != "" {
			errs = multierr.Append(errs, c.constraint(fp, raw, tag))
		}
	}
	return errs
}

func (c *checker) value(path string, v value.Value, td schema.TypeDescriptor) error {
	switch d := td.(type) {
	case *schema.PrimitiveDescriptor:
		if !primitiveMatches(v, d.PrimitiveKind) {
			return c.fail(path, "expected %s, got %s", schema.Describe(d), describeValue(v))
		}
		if d.PrimitiveKind == schema.PrimitiveTime {
			s, _ := v.AsString()
			if _, err := ParseTime(s); err != nil {
				return c.fail(path, "expected date-time, got %q", s)
			}
		}
		return nil

	case *schema.EnumDescriptor:
		if d.Open {
			return nil
		}
		s, ok := v.AsString()
		if !ok {
			return c.fail(path, "expected %s, got %s", schema.Describe(d), describeValue(v))
		}
		if err := d.Mapping.Check(s); err != nil {
			return c.fail(path, "%v", err)
		}
		return nil

	case *schema.ArrayDescriptor:
		if v.Kind() != value.KindArray {
			return c.fail(path, "expected %s, got %s", schema.Describe(d), describeValue(v))
		}
		var errs error
		for i, e := range v.Elements() {
			if e.IsNull() {
				continue
			}
			errs = multierr.Append(errs, c.value(indexPath(path, i), e, d.Element))
		}
		return errs

	case *schema.MapDescriptor:
		obj, ok := v.Object()
		if !ok {
			return c.fail(path, "expected object, got %s", describeValue(v))
		}
		var errs error
		obj.Range(func(key string, e value.Value) bool {
			if !e.IsNull() {
				errs = multierr.Append(errs, c.value(joinPath(path, key), e, d.Value))
			}
			return true
		})
		return errs

	case *schema.ReferenceDescriptor:
		m, ok := c.resolve(d)
		if !ok {
			return c.fail(path, "unknown model %s", d.Target.Name)
		}
		if _, ok := v.Object(); !ok {
			return c.fail(path, "expected %s, got %s", m.Name.Name, describeValue(v))
		}
		return c.object(path, m, v)

	case *schema.UnionDescriptor:
		for _, member := range d.Types {
			if c.value(path, v, member) == nil {
				return nil
			}
		}
		return c.fail(path, "expected %s, got %s", schema.Describe(d), describeValue(v))

	default:
		return c.fail(path, "unsupported descriptor %v", td.Kind())
	}
}

func (c *checker) resolve(ref *schema.ReferenceDescriptor) (*schema.ModelDescriptor, bool) {
	if ref.Model != nil {
		return ref.Model, true
	}
	p := c.registry
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.registry.Resolve(ref)
}

// constraint applies the validator rules of a validate tag to a primitive.
func (c *checker) constraint(path string, v value.Value, tag string) error {
	var x any
	switch v.Kind() {
	case value.KindString:
		x, _ = v.AsString()
	case value.KindNumber:
		if n, ok := v.Int64(); ok {
			x = n
		} else {
			x, _ = v.Float64()
		}
	case value.KindBool:
		x, _ = v.AsBool()
	case value.KindArray:
		x = v.Elements()
	case value.KindObject:
		obj, _ := v.Object()
		x = obj.Keys()
	default:
		return nil
	}

	err := constraints.Var(x, tag)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return c.fail(path, "%s", FormatFieldError(verrs[0]))
	}
	return c.fail(path, "%v", err)
}

// constraintTag drops "required", which ValidateRaw handles itself, and
// element rules after "dive", since elements are checked as models.
// "omitempty" is kept so an empty value skips the remaining rules.
func constraintTag(tag string) string {
	if tag == "" {
		return ""
	}
	var rules []string
	omitEmpty := false
	for _, r := range strings.Split(tag, ",") {
		if r == "dive" {
			break
		}
		switch r {
		case "", "required":
			continue
		case "omitempty":
			omitEmpty = true
			continue
		}
		rules = append(rules, r)
	}
	if len(rules) == 0 {
		return ""
	}
	if omitEmpty {
		rules = append([]string{"omitempty"}, rules...)
	}
	return strings.Join(rules, ",")
}

func primitiveMatches(v value.Value, k schema.PrimitiveKind) bool {
	switch k {
	case schema.PrimitiveBool:
		return v.Kind() == value.KindBool
	case schema.PrimitiveInt:
		if _, ok := v.Int64(); ok {
			return true
		}
		f, ok := v.Float64()
		return ok && f == math.Trunc(f)
	case schema.PrimitiveFloat:
		return v.Kind() == value.KindNumber
	case schema.PrimitiveDecimal:
		if s, ok := v.AsString(); ok {
			_, err := decimal.NewFromString(s)
			return err == nil
		}
		return v.Kind() == value.KindNumber
	case schema.PrimitiveString, schema.PrimitiveTime:
		return v.Kind() == value.KindString
	case schema.PrimitiveAny:
		return true
	}
	return false
}

func describeValue(v value.Value) string {
	switch v.Kind() {
	case value.KindBool:
		return "boolean"
	case value.KindNumber:
		return "number"
	case value.KindString:
		return "string"
	case value.KindArray:
		return "array"
	case value.KindObject:
		return "object"
	default:
		return "null"
	}
}

// FormatFieldError converts a validator.FieldError to a human-readable message.
func FormatFieldError(ve validator.FieldError) string {
	switch ve.Tag() {
	case "required":
		return "required"
	case "min":
		return fmt.Sprintf("must be at least %s%s", ve.Param(), unit(ve))
	case "max":
		return fmt.Sprintf("must be at most %s%s", ve.Param(), unit(ve))
	case "len":
		return fmt.Sprintf("must be exactly %s%s", ve.Param(), unit(ve))
	case "eq":
		return fmt.Sprintf("must equal %s", ve.Param())
	case "ne":
		return fmt.Sprintf("must not equal %s", ve.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", ve.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", ve.Param())
	case "lt":
		return fmt.Sprintf("must be less than %s", ve.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", ve.Param())
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "uuid", "uuid4":
		return "must be a valid UUID"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", ve.Param())
	default:
		if ve.Param() != "" {
			return fmt.Sprintf("failed %s=%s validation", ve.Tag(), ve.Param())
		}
		return fmt.Sprintf("failed %s validation", ve.Tag())
	}
}

// unit names what min/max/len count for the failing value.
func unit(ve validator.FieldError) string {
	switch ve.Kind() {
	case reflect.String:
		return " characters"
	case reflect.Slice, reflect.Array, reflect.Map:
		return " items"
	default:
		return ""
	}
}
