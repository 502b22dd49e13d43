// Package enrich is the enrichment subsystem of a structured logging
// pipeline, packaged standalone. A LoggerConfiguration collects enrichers
// through its fluent Enrich() surface and hands the host pipeline a single
// composed enricher via CreateEnricher().
//
//	cfg := enrich.NewLoggerConfiguration()
//	cfg.Enrich().With(enrichers.NewMachineNameEnricher()).
//		Enrich().WithProperty("Service", "checkout", false)
//
//	enricher, err := cfg.CreateEnricher()
package enrich

import (
	"github.com/enrichgo/enrich/core"
	"github.com/enrichgo/enrich/enrichers"
	"github.com/enrichgo/enrich/internal/capture"
)

// LoggerConfiguration is the parent handle of the fluent configuration
// surface. It owns the ordered enricher list, the property factory
// provider, and the first configuration error.
type LoggerConfiguration struct {
	enrichers       []core.LogEventEnricher
	factoryProvider func() core.LogEventPropertyFactory
	enrichment      *EnrichmentConfiguration
	err             error
}

// NewLoggerConfiguration creates a configuration wired to the default
// property factory.
func NewLoggerConfiguration() *LoggerConfiguration {
	lc := &LoggerConfiguration{
		factoryProvider: func() core.LogEventPropertyFactory {
			return capture.NewPropertyFactory()
		},
	}
	// Collaborators are supplied locally and non-nil, so construction of
	// the enrichment surface cannot fail here.
	lc.enrichment, _ = NewEnrichmentConfiguration(lc, lc.addEnricher, lc.createPropertyFactory)
	return lc
}

// Enrich returns the enrichment configuration surface bound to this
// configuration. The same instance is returned on every call.
func (lc *LoggerConfiguration) Enrich() *EnrichmentConfiguration {
	return lc.enrichment
}

// WithPropertyFactory overrides the property factory provider used by
// fixed-property registration.
func (lc *LoggerConfiguration) WithPropertyFactory(provider func() core.LogEventPropertyFactory) *LoggerConfiguration {
	if provider == nil {
		lc.setErr(&InvalidArgumentError{Argument: "provider"})
		return lc
	}
	lc.factoryProvider = provider
	return lc
}

// Enrichers returns the registered enrichers in registration order.
func (lc *LoggerConfiguration) Enrichers() []core.LogEventEnricher {
	out := make([]core.LogEventEnricher, len(lc.enrichers))
	copy(out, lc.enrichers)
	return out
}

// Error returns the first error recorded during configuration, if any.
func (lc *LoggerConfiguration) Error() error {
	return lc.err
}

// CreateEnricher composes all registered enrichers into a single panic-safe
// enricher, the artifact handed to a host logging pipeline. It fails if any
// configuration call failed.
func (lc *LoggerConfiguration) CreateEnricher() (core.LogEventEnricher, error) {
	if lc.err != nil {
		return nil, lc.err
	}
	return enrichers.NewAggregateEnricher(lc.enrichers...), nil
}

func (lc *LoggerConfiguration) addEnricher(enricher core.LogEventEnricher) {
	lc.enrichers = append(lc.enrichers, enricher)
}

func (lc *LoggerConfiguration) createPropertyFactory() core.LogEventPropertyFactory {
	return lc.factoryProvider()
}

// setErr records the first configuration error; later errors are dropped.
func (lc *LoggerConfiguration) setErr(err error) {
	if lc.err == nil {
		lc.err = err
	}
}
