package enrichers

import (
	"github.com/enrichgo/enrich/core"
)

// PropertyEnricher applies a single pre-built property to every log event.
// Existing event properties with the same name are kept.
type PropertyEnricher struct {
	property *core.LogEventProperty
}

// NewPropertyEnricher creates an enricher applying the given property.
func NewPropertyEnricher(property *core.LogEventProperty) *PropertyEnricher {
	return &PropertyEnricher{property: property}
}

// Enrich adds the fixed property to the log event.
func (pe *PropertyEnricher) Enrich(event *core.LogEvent, propertyFactory core.LogEventPropertyFactory) {
	if pe.property == nil {
		return
	}
	event.AddPropertyIfAbsent(pe.property)
}
