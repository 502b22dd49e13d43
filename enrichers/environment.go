package enrichers

import (
	"os"

	"github.com/enrichgo/enrich/core"
)

// EnvironmentEnricher adds an environment variable value to log events.
type EnvironmentEnricher struct {
	variableName string
	propertyName string
	cached       bool
	cachedValue  string
}

// NewEnvironmentEnricher creates an enricher that reads the variable on
// every event.
func NewEnvironmentEnricher(variableName, propertyName string) *EnvironmentEnricher {
	return &EnvironmentEnricher{
		variableName: variableName,
		propertyName: propertyName,
	}
}

// NewEnvironmentEnricherCached creates an enricher that reads the variable
// once at construction.
func NewEnvironmentEnricherCached(variableName, propertyName string) *EnvironmentEnricher {
	return &EnvironmentEnricher{
		variableName: variableName,
		propertyName: propertyName,
		cached:       true,
		cachedValue:  os.Getenv(variableName),
	}
}

// Enrich adds the environment variable value to the log event. Events are
// left untouched when the variable is unset or empty.
func (ee *EnvironmentEnricher) Enrich(event *core.LogEvent, propertyFactory core.LogEventPropertyFactory) {
	value := ee.cachedValue
	if !ee.cached {
		value = os.Getenv(ee.variableName)
	}
	if value == "" {
		return
	}
	if prop, err := propertyFactory.CreateProperty(ee.propertyName, value, false); err == nil {
		event.AddPropertyIfAbsent(prop)
	}
}

// CommonEnvironmentEnrichers returns cached enrichers for deployment
// variables commonly present in service environments.
func CommonEnvironmentEnrichers() []core.LogEventEnricher {
	return []core.LogEventEnricher{
		NewEnvironmentEnricherCached("ENVIRONMENT", "Environment"),
		NewEnvironmentEnricherCached("SERVICE_NAME", "ServiceName"),
		NewEnvironmentEnricherCached("SERVICE_VERSION", "ServiceVersion"),
		NewEnvironmentEnricherCached("REGION", "Region"),
	}
}
