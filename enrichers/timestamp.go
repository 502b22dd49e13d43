package enrichers

import (
	"time"

	"github.com/enrichgo/enrich/core"
)

// TimestampEnricher adds a high-precision timestamp property to log events.
// The zero value adds a "Timestamp" property.
type TimestampEnricher struct {
	propertyName string
}

// NewTimestampEnricher creates a new timestamp enricher.
func NewTimestampEnricher() *TimestampEnricher {
	return &TimestampEnricher{}
}

// NewTimestampEnricherWithName creates a timestamp enricher writing to a
// custom property name.
func NewTimestampEnricherWithName(propertyName string) *TimestampEnricher {
	return &TimestampEnricher{propertyName: propertyName}
}

// Enrich adds the current timestamp to the log event.
func (te *TimestampEnricher) Enrich(event *core.LogEvent, propertyFactory core.LogEventPropertyFactory) {
	name := te.propertyName
	if name == "" {
		name = "Timestamp"
	}
	if prop, err := propertyFactory.CreateProperty(name, time.Now().Format(time.RFC3339Nano), false); err == nil {
		event.AddPropertyIfAbsent(prop)
	}
}
