package enrich

import (
	"context"
	"maps"
)

// logContextKey is a private type for context keys to avoid collisions.
type logContextKey struct{}

// logContextValue holds the properties pushed to the context.
type logContextValue struct {
	properties map[string]any
}

// PushProperty returns a context carrying the given property in addition to
// any properties already pushed. The enricher registered by
// EnrichmentConfiguration.FromLogContext applies these to every event.
//
// Each call copies the property map, so derived contexts are independent
// and the function is safe to call from multiple goroutines sharing a
// parent context.
//
//	ctx := enrich.PushProperty(context.Background(), "UserId", 123)
//	ctx = enrich.PushProperty(ctx, "TenantId", "acme-corp")
func PushProperty(ctx context.Context, name string, value any) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	var properties map[string]any
	if existing, ok := ctx.Value(logContextKey{}).(*logContextValue); ok {
		properties = make(map[string]any, len(existing.properties)+1)
		maps.Copy(properties, existing.properties)
	} else {
		properties = make(map[string]any, 1)
	}
	properties[name] = value

	return context.WithValue(ctx, logContextKey{}, &logContextValue{properties: properties})
}

// logContextProperties extracts a copy of the properties pushed onto ctx.
func logContextProperties(ctx context.Context) map[string]any {
	if ctx == nil {
		return nil
	}
	if lcv, ok := ctx.Value(logContextKey{}).(*logContextValue); ok {
		props := make(map[string]any, len(lcv.properties))
		maps.Copy(props, lcv.properties)
		return props
	}
	return nil
}
