package enrichers

import (
	"sync"

	"github.com/google/uuid"

	"github.com/enrichgo/enrich/core"
)

// CorrelationIdEnricher adds a correlation ID to all log events, useful for
// tracing a request across services. With no ID supplied (including the
// zero value), a UUID is generated on first use and reused for the
// enricher's lifetime.
type CorrelationIdEnricher struct {
	correlationId string
	once          sync.Once
}

// NewCorrelationIdEnricher creates an enricher with a specific correlation
// ID. Pass an empty string to generate one.
func NewCorrelationIdEnricher(correlationId string) *CorrelationIdEnricher {
	return &CorrelationIdEnricher{correlationId: correlationId}
}

// Enrich adds the correlation ID to the log event.
func (ce *CorrelationIdEnricher) Enrich(event *core.LogEvent, propertyFactory core.LogEventPropertyFactory) {
	ce.once.Do(func() {
		if ce.correlationId == "" {
			ce.correlationId = uuid.NewString()
		}
	})

	if prop, err := propertyFactory.CreateProperty("CorrelationId", ce.correlationId, false); err == nil {
		event.AddPropertyIfAbsent(prop)
	}
}
