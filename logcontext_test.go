package enrich

import (
	"context"
	"testing"
)

func TestPushPropertyAccumulates(t *testing.T) {
	ctx := PushProperty(context.Background(), "A", 1)
	ctx = PushProperty(ctx, "B", 2)

	props := logContextProperties(ctx)
	if props["A"] != 1 || props["B"] != 2 {
		t.Errorf("expected both pushed properties, got %v", props)
	}
}

func TestPushPropertyOverrides(t *testing.T) {
	ctx := PushProperty(context.Background(), "A", 1)
	ctx = PushProperty(ctx, "A", 2)

	if props := logContextProperties(ctx); props["A"] != 2 {
		t.Errorf("expected later push to win, got %v", props["A"])
	}
}

func TestPushPropertyDerivedContextsAreIndependent(t *testing.T) {
	base := PushProperty(context.Background(), "A", 1)
	left := PushProperty(base, "B", 2)
	right := PushProperty(base, "C", 3)

	if props := logContextProperties(base); len(props) != 1 {
		t.Errorf("base context should be unchanged, got %v", props)
	}
	if props := logContextProperties(left); props["B"] != 2 || len(props) != 2 {
		t.Errorf("unexpected left properties: %v", props)
	}
	if props := logContextProperties(right); props["C"] != 3 || len(props) != 2 {
		t.Errorf("unexpected right properties: %v", props)
	}
}

func TestPushPropertyNilContext(t *testing.T) {
	ctx := PushProperty(nil, "A", 1) //nolint:staticcheck // nil handling is part of the contract
	if props := logContextProperties(ctx); props["A"] != 1 {
		t.Errorf("expected property on fresh context, got %v", props)
	}
}

func TestLogContextPropertiesWithoutPushes(t *testing.T) {
	if props := logContextProperties(context.Background()); props != nil {
		t.Errorf("expected nil for a context without pushes, got %v", props)
	}
	if props := logContextProperties(nil); props != nil {
		t.Errorf("expected nil for a nil context, got %v", props)
	}
}
