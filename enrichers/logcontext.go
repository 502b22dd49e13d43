package enrichers

import (
	"context"

	"github.com/enrichgo/enrich/core"
)

// LogContextEnricher enriches log events with properties carried by a
// context. Property extraction is delegated so this package stays decoupled
// from how the properties were pushed.
type LogContextEnricher struct {
	ctx           context.Context
	getProperties func(context.Context) map[string]any
}

// NewLogContextEnricher creates an enricher extracting properties from ctx
// via getProperties.
func NewLogContextEnricher(ctx context.Context, getProperties func(context.Context) map[string]any) *LogContextEnricher {
	return &LogContextEnricher{ctx: ctx, getProperties: getProperties}
}

// Enrich adds the context properties to the log event. Event-specific
// properties win over context ones.
func (le *LogContextEnricher) Enrich(event *core.LogEvent, propertyFactory core.LogEventPropertyFactory) {
	if le.ctx == nil || le.getProperties == nil {
		return
	}
	for name, value := range le.getProperties(le.ctx) {
		if _, exists := event.Properties[name]; exists {
			continue
		}
		if prop, err := propertyFactory.CreateProperty(name, value, false); err == nil {
			event.AddPropertyIfAbsent(prop)
		}
	}
}
