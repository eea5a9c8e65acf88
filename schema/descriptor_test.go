package schema

import (
	"testing"

	"github.com/merge-api/merge-go-client/enum"
)

func TestDescriptorKind_String(t *testing.T) {
	tests := []struct {
		kind DescriptorKind
		want string
	}{
		{KindModel, "Model"},
		{KindEnum, "Enum"},
		{KindOpenEnum, "OpenEnum"},
		{KindPrimitive, "Primitive"},
		{KindArray, "Array"},
		{KindMap, "Map"},
		{KindReference, "Reference"},
		{KindUnion, "Union"},
		{DescriptorKind(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("DescriptorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestExpressionDescriptors_Kind(t *testing.T) {
	tests := []struct {
		name string
		desc TypeDescriptor
		want DescriptorKind
	}{
		{"primitive", String(), KindPrimitive},
		{"array", Array(Int()), KindArray},
		{"map", Map(Any()), KindMap},
		{"reference", Ref("Employee", "hris"), KindReference},
		{"union", Union(String(), Ref("Employee", "hris")), KindUnion},
		{"model", &ModelDescriptor{}, KindModel},
		{"closed enum", ClosedEnum(Identifier{Name: "Category"}, nil), KindEnum},
		{"open enum", OpenEnum(Identifier{Name: "Role"}, nil), KindOpenEnum},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.desc.Kind(); got != tt.want {
				t.Errorf("Kind() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExpressionDescriptors_ZeroNameAndDoc(t *testing.T) {
	for _, d := range []TypeDescriptor{Bool(), Array(String()), Map(String()), Union(String())} {
		if !d.TypeName().IsZero() {
			t.Errorf("%v.TypeName() = %v, want zero", d.Kind(), d.TypeName())
		}
		if !d.Doc().IsZero() {
			t.Errorf("%v.Doc() = %v, want zero", d.Kind(), d.Doc())
		}
	}
}

func TestIdentifier_String(t *testing.T) {
	if got := (Identifier{Name: "Employee"}).String(); got != "Employee" {
		t.Errorf("String() = %q, want %q", got, "Employee")
	}
	id := Identifier{Name: "Employee", Package: "github.com/merge-api/merge-go-client/hris"}
	if got := id.String(); got != "github.com/merge-api/merge-go-client/hris.Employee" {
		t.Errorf("String() = %q", got)
	}
}

func TestModelDescriptor_Field(t *testing.T) {
	m := &ModelDescriptor{
		Name: Identifier{Name: "AuditLogEvent"},
		Fields: []FieldDescriptor{
			{Name: "ID", JSONName: "id", Type: String()},
			{Name: "Role", JSONName: "role", Type: OpenEnum(Identifier{Name: "RoleEnum"}, nil), Required: true},
			{Name: "CreatedAt", JSONName: "created_at", Type: Time(), Required: true},
		},
	}

	f, ok := m.Field("role")
	if !ok {
		t.Fatal("Field(role) not found")
	}
	if f.Name != "Role" {
		t.Errorf("Field(role).Name = %q, want Role", f.Name)
	}
	if _, ok := m.Field("Role"); ok {
		t.Error("Field lookup should use wire keys")
	}

	req := m.RequiredFields()
	if len(req) != 2 || req[0] != "role" || req[1] != "created_at" {
		t.Errorf("RequiredFields() = %v, want [role created_at]", req)
	}

	if !m.Fields[2].IsTime() {
		t.Error("created_at should be a time field")
	}
	if m.Fields[0].IsTime() {
		t.Error("id should not be a time field")
	}
}

func TestEnumDescriptor_Members(t *testing.T) {
	m := enum.NewMapping("GenderEnum", "MALE", "FEMALE", "NON-BINARY")
	d := OpenEnum(Identifier{Name: "GenderEnum"}, m)

	members := d.Members()
	if len(members) != 3 {
		t.Fatalf("Members() length = %d, want 3", len(members))
	}
	if members[2].Key != "non_binary" || members[2].Value != "NON-BINARY" {
		t.Errorf("Members()[2] = %+v, want {non_binary NON-BINARY}", members[2])
	}

	if (&EnumDescriptor{}).Members() != nil {
		t.Error("Members() without a mapping should be nil")
	}
}

func TestDescribe(t *testing.T) {
	emp := &ModelDescriptor{Name: Identifier{Name: "Employee"}}
	tests := []struct {
		desc TypeDescriptor
		want string
	}{
		{String(), "string"},
		{Int(), "integer"},
		{Float(), "number"},
		{Decimal(), "number"},
		{Bool(), "boolean"},
		{Time(), "date-time"},
		{Any(), "any"},
		{Array(String()), "array of string"},
		{Map(Any()), "object"},
		{RefTo(emp), "Employee"},
		{Union(String(), RefTo(emp)), "string or Employee"},
		{ClosedEnum(Identifier{Name: "CategoryEnum"}, nil), "enum CategoryEnum"},
	}

	for _, tt := range tests {
		if got := Describe(tt.desc); got != tt.want {
			t.Errorf("Describe(%v) = %q, want %q", tt.desc.Kind(), got, tt.want)
		}
	}
}
