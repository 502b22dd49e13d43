package enrichers

import (
	"github.com/enrichgo/enrich/core"
)

// ConditionalEnricher applies a wrapped enricher only to events matching a
// predicate.
type ConditionalEnricher struct {
	predicate func(*core.LogEvent) bool
	inner     core.LogEventEnricher
}

// NewConditionalEnricher creates an enricher gated by the given predicate.
func NewConditionalEnricher(predicate func(*core.LogEvent) bool, inner core.LogEventEnricher) *ConditionalEnricher {
	return &ConditionalEnricher{predicate: predicate, inner: inner}
}

// NewLevelConditionalEnricher gates an enricher to events at or above the
// given level.
func NewLevelConditionalEnricher(level core.LogEventLevel, inner core.LogEventEnricher) *ConditionalEnricher {
	return &ConditionalEnricher{
		predicate: func(event *core.LogEvent) bool { return event.Level >= level },
		inner:     inner,
	}
}

// Enrich applies the wrapped enricher when the predicate passes.
func (ce *ConditionalEnricher) Enrich(event *core.LogEvent, propertyFactory core.LogEventPropertyFactory) {
	if ce.predicate == nil || ce.inner == nil {
		return
	}
	if ce.predicate(event) {
		ce.inner.Enrich(event, propertyFactory)
	}
}
