package enrich

import (
	"context"
	"fmt"

	"github.com/enrichgo/enrich/core"
	"github.com/enrichgo/enrich/enrichers"
)

// EnrichmentConfiguration is the fluent surface for attaching enrichers to
// a configuration. It validates its inputs and forwards each enricher, in
// order, to the registration callback supplied at construction; every
// operation returns the parent configuration so calls can be chained.
//
// Because chained calls cannot return errors, validation failures are
// recorded as the parent configuration's first error and surfaced by
// LoggerConfiguration.Error and CreateEnricher.
type EnrichmentConfiguration struct {
	parent          *LoggerConfiguration
	addEnricher     func(core.LogEventEnricher)
	propertyFactory func() core.LogEventPropertyFactory
}

// NewEnrichmentConfiguration creates an enrichment surface forwarding to
// the given registration callback. All three collaborators are required.
func NewEnrichmentConfiguration(
	parent *LoggerConfiguration,
	addEnricher func(core.LogEventEnricher),
	propertyFactory func() core.LogEventPropertyFactory,
) (*EnrichmentConfiguration, error) {
	if parent == nil {
		return nil, &InvalidArgumentError{Argument: "parent"}
	}
	if addEnricher == nil {
		return nil, &InvalidArgumentError{Argument: "addEnricher"}
	}
	if propertyFactory == nil {
		return nil, &InvalidArgumentError{Argument: "propertyFactory"}
	}
	return &EnrichmentConfiguration{
		parent:          parent,
		addEnricher:     addEnricher,
		propertyFactory: propertyFactory,
	}, nil
}

// With registers the given enrichers in order. A nil slice fails with
// InvalidArgumentError — and because a zero-argument variadic call passes a
// nil slice, With() is treated as an absent sequence too. A nil element
// fails with InvalidOperationError at the point of detection, and elements
// before it remain registered.
func (ec *EnrichmentConfiguration) With(enrichers ...core.LogEventEnricher) *LoggerConfiguration {
	if enrichers == nil {
		ec.parent.setErr(&InvalidArgumentError{Argument: "enrichers"})
		return ec.parent
	}
	for i, enricher := range enrichers {
		if enricher == nil {
			ec.parent.setErr(&InvalidOperationError{
				Reason: fmt.Sprintf("enricher at index %d is nil", i),
			})
			return ec.parent
		}
		ec.addEnricher(enricher)
	}
	return ec.parent
}

// WithProperty registers an enricher that applies a fixed property built
// from name and value. With destructureObjects true, composite values are
// structurally decomposed instead of rendered to a flat string. Conversion
// failures (such as an empty name) are recorded on the parent and nothing
// is registered.
func (ec *EnrichmentConfiguration) WithProperty(name string, value any, destructureObjects bool) *LoggerConfiguration {
	factory := ec.propertyFactory()
	prop, err := factory.CreateProperty(name, value, destructureObjects)
	if err != nil {
		ec.parent.setErr(err)
		return ec.parent
	}
	return ec.With(enrichers.NewPropertyEnricher(prop))
}

// When registers the enrichers configured by configure behind a predicate:
// they only apply to events the predicate accepts.
func (ec *EnrichmentConfiguration) When(predicate func(*core.LogEvent) bool, configure func(*EnrichmentConfiguration)) *LoggerConfiguration {
	if predicate == nil {
		ec.parent.setErr(&InvalidArgumentError{Argument: "predicate"})
		return ec.parent
	}
	if configure == nil {
		ec.parent.setErr(&InvalidArgumentError{Argument: "configure"})
		return ec.parent
	}

	var collected []core.LogEventEnricher
	child, err := NewEnrichmentConfiguration(ec.parent, func(e core.LogEventEnricher) {
		collected = append(collected, e)
	}, ec.propertyFactory)
	if err != nil {
		ec.parent.setErr(err)
		return ec.parent
	}

	configure(child)
	if len(collected) == 0 {
		return ec.parent
	}
	return ec.With(enrichers.NewConditionalEnricher(predicate, enrichers.NewAggregateEnricher(collected...)))
}

// AtLevel registers the enrichers configured by configure for events at or
// above the given level.
func (ec *EnrichmentConfiguration) AtLevel(level core.LogEventLevel, configure func(*EnrichmentConfiguration)) *LoggerConfiguration {
	return ec.When(func(event *core.LogEvent) bool {
		return event.Level >= level
	}, configure)
}

// FromLogContext registers an enricher applying the properties pushed onto
// ctx with PushProperty.
func (ec *EnrichmentConfiguration) FromLogContext(ctx context.Context) *LoggerConfiguration {
	if ctx == nil {
		ec.parent.setErr(&InvalidArgumentError{Argument: "ctx"})
		return ec.parent
	}
	return ec.With(enrichers.NewLogContextEnricher(ctx, logContextProperties))
}

// WithType registers a default-constructed enricher of type T, for enricher
// types usable from their zero value:
//
//	enrich.WithType[enrichers.MachineNameEnricher](cfg.Enrich())
//
// It is a package-level function because Go methods cannot introduce type
// parameters.
func WithType[T any, PT interface {
	*T
	core.LogEventEnricher
}](ec *EnrichmentConfiguration) *LoggerConfiguration {
	var enricher T
	return ec.With(PT(&enricher))
}
