package capture

import (
	"strings"
	"testing"
	"time"
)

func TestCreatePropertyScalar(t *testing.T) {
	factory := NewPropertyFactory()

	tests := []struct {
		name  string
		value any
	}{
		{"int", 42},
		{"bool", true},
		{"float", 3.14},
		{"string", "hello"},
		{"duration", 5 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prop, err := factory.CreateProperty("P", tt.value, false)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if prop.Name != "P" {
				t.Errorf("unexpected name %q", prop.Name)
			}
			if prop.Value != tt.value {
				t.Errorf("scalar should pass through, got %v (%T)", prop.Value, prop.Value)
			}
		})
	}
}

func TestCreatePropertyEmptyName(t *testing.T) {
	factory := NewPropertyFactory()

	for _, name := range []string{"", "   ", "\t"} {
		if _, err := factory.CreateProperty(name, 42, false); err == nil {
			t.Errorf("expected error for name %q", name)
		}
	}
}

func TestCreatePropertyNilValue(t *testing.T) {
	factory := NewPropertyFactory()

	prop, err := factory.CreateProperty("P", nil, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := prop.Value.(Null); !ok {
		t.Errorf("expected Null sentinel, got %v (%T)", prop.Value, prop.Value)
	}

	if s, err := MarshalAsJSON(prop.Value); err != nil || s != "null" {
		t.Errorf("Null should marshal as null, got %q (err=%v)", s, err)
	}
	if got := prop.Value.(Null).String(); got != "nil" {
		t.Errorf("Null should render as nil, got %q", got)
	}
}

func TestCreatePropertyFlatComposite(t *testing.T) {
	type point struct{ X, Y int }
	factory := NewPropertyFactory()

	prop, err := factory.CreateProperty("P", point{1, 2}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := prop.Value.(string); !ok {
		t.Errorf("composite without destructuring should be a flat string, got %T", prop.Value)
	}
}

func TestCreatePropertyDestructuresStruct(t *testing.T) {
	type address struct {
		City string
	}
	type user struct {
		Id      int
		Name    string
		Addr    address
		private string
	}

	factory := NewPropertyFactory()
	prop, err := factory.CreateProperty("User", user{Id: 1, Name: "amy", Addr: address{City: "Oslo"}, private: "x"}, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	m, ok := prop.Value.(map[string]any)
	if !ok {
		t.Fatalf("expected map, got %T", prop.Value)
	}
	if m["Id"] != 1 || m["Name"] != "amy" {
		t.Errorf("unexpected fields: %v", m)
	}
	if _, ok := m["private"]; ok {
		t.Error("unexported fields should be skipped")
	}
	nested, ok := m["Addr"].(map[string]any)
	if !ok || nested["City"] != "Oslo" {
		t.Errorf("expected nested decomposition, got %v", m["Addr"])
	}
}

func TestCreatePropertyDestructuresMapAndSlice(t *testing.T) {
	factory := NewPropertyFactory()

	prop, err := factory.CreateProperty("M", map[string]int{"a": 1}, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m, ok := prop.Value.(map[string]any); !ok || m["a"] != 1 {
		t.Errorf("expected decomposed map, got %v (%T)", prop.Value, prop.Value)
	}

	prop, err = factory.CreateProperty("S", []string{"a", "b"}, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s, ok := prop.Value.([]any); !ok || len(s) != 2 || s[0] != "a" {
		t.Errorf("expected decomposed slice, got %v (%T)", prop.Value, prop.Value)
	}
}

func TestCreatePropertyPointer(t *testing.T) {
	type user struct{ Id int }
	factory := NewPropertyFactory()

	prop, err := factory.CreateProperty("U", &user{Id: 5}, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m, ok := prop.Value.(map[string]any); !ok || m["Id"] != 5 {
		t.Errorf("pointers should be followed, got %v (%T)", prop.Value, prop.Value)
	}

	var missing *user
	prop, err = factory.CreateProperty("U", missing, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := prop.Value.(Null); !ok {
		t.Errorf("nil pointer should become Null, got %v (%T)", prop.Value, prop.Value)
	}
}

func TestCreatePropertyDepthLimit(t *testing.T) {
	type node struct {
		Next *node
		Id   int
	}
	head := &node{Id: 0}
	cur := head
	for i := 1; i < 10; i++ {
		cur.Next = &node{Id: i}
		cur = cur.Next
	}

	factory := NewPropertyFactoryWithLimits(1, 1000, 100)
	prop, err := factory.CreateProperty("Chain", head, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Walk down: beyond the depth limit the chain flattens to a string.
	m, ok := prop.Value.(map[string]any)
	if !ok {
		t.Fatalf("expected map at depth 0, got %T", prop.Value)
	}
	inner, ok := m["Next"].(map[string]any)
	if !ok {
		t.Fatalf("expected map at depth 1, got %T", m["Next"])
	}
	if _, ok := inner["Next"].(string); !ok {
		t.Errorf("expected flat rendering beyond depth limit, got %T", inner["Next"])
	}
}

func TestCreatePropertyCollectionLimit(t *testing.T) {
	values := make([]int, 10)
	factory := NewPropertyFactoryWithLimits(5, 1000, 3)

	prop, err := factory.CreateProperty("S", values, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s, ok := prop.Value.([]any)
	if !ok {
		t.Fatalf("expected slice, got %T", prop.Value)
	}
	if len(s) != 4 {
		t.Fatalf("expected 3 elements plus marker, got %d", len(s))
	}
	marker, ok := s[3].(string)
	if !ok || !strings.Contains(marker, "10 total") {
		t.Errorf("expected truncation marker, got %v", s[3])
	}
}

func TestCreatePropertyStringTruncation(t *testing.T) {
	factory := NewPropertyFactoryWithLimits(5, 4, 100)

	prop, err := factory.CreateProperty("S", "abcdefgh", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prop.Value != "abcd..." {
		t.Errorf("expected truncated string, got %v", prop.Value)
	}
}

func TestCreatePropertyByteSlices(t *testing.T) {
	factory := NewPropertyFactory()

	// Printable UTF-8 bytes render as text, not element-wise.
	prop, err := factory.CreateProperty("B", []byte("hello"), true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prop.Value != "hello" {
		t.Errorf("expected text rendering, got %v (%T)", prop.Value, prop.Value)
	}

	// Binary bytes render as base64.
	prop, err = factory.CreateProperty("B", []byte{0x00, 0xff}, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prop.Value != "AP8=" {
		t.Errorf("expected base64 rendering, got %v (%T)", prop.Value, prop.Value)
	}

	// The flat path renders byte slices the same way.
	prop, err = factory.CreateProperty("B", []byte("hi"), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prop.Value != "hi" {
		t.Errorf("expected text rendering on flat path, got %v (%T)", prop.Value, prop.Value)
	}
}

type selfDescribing struct{}

func (selfDescribing) LogValue() any { return "described" }

type panickingLogValue struct{}

func (panickingLogValue) LogValue() any { panic("boom") }

func TestCreatePropertyLogValue(t *testing.T) {
	factory := NewPropertyFactory()

	prop, err := factory.CreateProperty("P", selfDescribing{}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prop.Value != "described" {
		t.Errorf("expected the substituted representation, got %v", prop.Value)
	}
}

func TestCreatePropertyLogValuePanic(t *testing.T) {
	factory := NewPropertyFactory()

	prop, err := factory.CreateProperty("P", panickingLogValue{}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prop == nil || prop.Name != "P" {
		t.Fatalf("expected a fallback property, got %v", prop)
	}
}

func TestCreatePropertyTime(t *testing.T) {
	factory := NewPropertyFactory()
	now := time.Now()

	prop, err := factory.CreateProperty("T", now, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prop.Value != now {
		t.Errorf("time.Time should pass through as a scalar, got %v (%T)", prop.Value, prop.Value)
	}

	prop, err = factory.CreateProperty("T", now, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prop.Value != now {
		t.Errorf("time.Time should not decompose field-wise, got %v (%T)", prop.Value, prop.Value)
	}
}
