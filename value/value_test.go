package value

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParse_PreservesKeyOrder(t *testing.T) {
	v, err := ParseString(`{"b":1,"a":2,"c":{"z":true,"y":null}}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	obj, ok := v.Object()
	if !ok {
		t.Fatalf("expected object, got %s", v.Kind())
	}
	keys := obj.Keys()
	want := []string{"b", "a", "c"}
	if len(keys) != len(want) {
		t.Fatalf("keys = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("keys[%d] = %q, want %q", i, keys[i], want[i])
		}
	}

	if got := v.String(); got != `{"b":1,"a":2,"c":{"z":true,"y":null}}` {
		t.Errorf("re-encoded = %s", got)
	}
}

func TestParse_NumberLiteralKept(t *testing.T) {
	v := MustParse(`{"big":12345678901234567890,"dec":10.50}`)

	big, _ := v.Get("big")
	if lit, _ := big.AsNumber(); lit != "12345678901234567890" {
		t.Errorf("big literal = %q", lit)
	}
	dec, _ := v.Get("dec")
	if lit, _ := dec.AsNumber(); lit != "10.50" {
		t.Errorf("dec literal = %q", lit)
	}
	if _, ok := big.Int64(); ok {
		t.Error("expected overflowing literal to fail Int64")
	}
	if f, ok := dec.Float64(); !ok || f != 10.5 {
		t.Errorf("Float64() = %v, %v", f, ok)
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []string{``, `{`, `{"a":}`, `[1,2`, `nul`}
	for _, input := range tests {
		_, err := ParseString(input)
		if !errors.Is(err, ErrInvalidJSON) {
			t.Errorf("ParseString(%q) error = %v, want ErrInvalidJSON", input, err)
		}
	}
}

func TestParse_Scalars(t *testing.T) {
	tests := []struct {
		input string
		kind  Kind
	}{
		{`null`, KindNull},
		{`true`, KindBool},
		{`false`, KindBool},
		{`"x"`, KindString},
		{`-1.5e3`, KindNumber},
		{`[]`, KindArray},
		{`{}`, KindObject},
	}
	for _, tt := range tests {
		v, err := ParseString(tt.input)
		if err != nil {
			t.Fatalf("ParseString(%q): %v", tt.input, err)
		}
		if v.Kind() != tt.kind {
			t.Errorf("ParseString(%q).Kind() = %s, want %s", tt.input, v.Kind(), tt.kind)
		}
	}
}

func TestParse_DuplicateKeyLastWins(t *testing.T) {
	v := MustParse(`{"a":1,"b":2,"a":3}`)
	obj, _ := v.Object()
	if obj.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", obj.Len())
	}
	a, _ := obj.Get("a")
	if n, _ := a.Int64(); n != 3 {
		t.Errorf("a = %d, want 3", n)
	}
	if keys := obj.Keys(); keys[0] != "a" {
		t.Errorf("first key = %q, want a", keys[0])
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"object order ignored", `{"a":1,"b":[1,2]}`, `{"b":[1,2],"a":1}`, true},
		{"numeric equality", `1.0`, `1`, true},
		{"array order matters", `[1,2]`, `[2,1]`, false},
		{"null vs missing member", `{"a":null}`, `{}`, false},
		{"kind mismatch", `"1"`, `1`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(MustParse(tt.a), MustParse(tt.b)); got != tt.want {
				t.Errorf("Equal(%s, %s) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestFromAny_GenericDecode(t *testing.T) {
	var generic any
	if err := json.Unmarshal([]byte(`{"id":"123","count":3,"tags":["a"],"meta":{"ok":true}}`), &generic); err != nil {
		t.Fatal(err)
	}

	v, err := FromAny(generic)
	if err != nil {
		t.Fatalf("FromAny: %v", err)
	}
	if !Equal(v, MustParse(`{"count":3,"id":"123","meta":{"ok":true},"tags":["a"]}`)) {
		t.Errorf("FromAny result = %s", v)
	}

	back := ToAny(v).(map[string]any)
	if back["id"] != "123" {
		t.Errorf("ToAny id = %v", back["id"])
	}
	if back["count"] != json.Number("3") {
		t.Errorf("ToAny count = %#v", back["count"])
	}
}

func TestLookup(t *testing.T) {
	v := MustParse(`{"remote_data":[{"path":"/employees","data":{"x":1}}]}`)

	got, ok := Lookup(v, "remote_data.0.path")
	if !ok {
		t.Fatal("expected path to exist")
	}
	if s, _ := got.AsString(); s != "/employees" {
		t.Errorf("Lookup = %s", got)
	}

	if _, ok := Lookup(v, "remote_data.1.path"); ok {
		t.Error("expected missing path to report false")
	}
}

func TestValue_JSONInterop(t *testing.T) {
	type wrapper struct {
		Payload Value `json:"payload"`
	}
	var w wrapper
	if err := json.Unmarshal([]byte(`{"payload":{"k":[1,"two",null]}}`), &w); err != nil {
		t.Fatal(err)
	}
	out, err := json.Marshal(w)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `{"payload":{"k":[1,"two",null]}}` {
		t.Errorf("marshal = %s", out)
	}
}
