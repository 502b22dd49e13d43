package configuration

import (
	"fmt"
	"slices"

	"github.com/enrichgo/enrich"
	"github.com/enrichgo/enrich/core"
	"github.com/enrichgo/enrich/enrichers"
)

// EnricherFactory creates an enricher from configuration arguments.
type EnricherFactory func(args map[string]any) (core.LogEventEnricher, error)

// Builder maps enricher names to factories and applies loaded settings to a
// LoggerConfiguration.
type Builder struct {
	factories map[string]EnricherFactory
}

// NewBuilder creates a builder with the stock enrichers pre-registered.
func NewBuilder() *Builder {
	b := &Builder{factories: make(map[string]EnricherFactory)}

	b.RegisterEnricher("WithMachineName", func(args map[string]any) (core.LogEventEnricher, error) {
		if name := GetString(args, "property", ""); name != "" {
			return enrichers.NewMachineNameEnricherWithName(name), nil
		}
		return enrichers.NewMachineNameEnricher(), nil
	})
	b.RegisterEnricher("WithProcess", func(args map[string]any) (core.LogEventEnricher, error) {
		return enrichers.NewProcessEnricher(), nil
	})
	b.RegisterEnricher("WithTimestamp", func(args map[string]any) (core.LogEventEnricher, error) {
		if name := GetString(args, "property", ""); name != "" {
			return enrichers.NewTimestampEnricherWithName(name), nil
		}
		return enrichers.NewTimestampEnricher(), nil
	})
	b.RegisterEnricher("WithCorrelationId", func(args map[string]any) (core.LogEventEnricher, error) {
		return enrichers.NewCorrelationIdEnricher(GetString(args, "id", "")), nil
	})
	b.RegisterEnricher("WithEnvironment", func(args map[string]any) (core.LogEventEnricher, error) {
		variable := GetString(args, "variable", "")
		if variable == "" {
			return nil, fmt.Errorf("WithEnvironment requires a 'variable' argument")
		}
		property := GetString(args, "property", variable)
		if GetBool(args, "cached", false) {
			return enrichers.NewEnvironmentEnricherCached(variable, property), nil
		}
		return enrichers.NewEnvironmentEnricher(variable, property), nil
	})

	return b
}

// RegisterEnricher registers a factory under a name, replacing any existing
// registration.
func (b *Builder) RegisterEnricher(name string, factory EnricherFactory) {
	b.factories[name] = factory
}

// Apply registers the configured enrichers and fixed properties on the
// target configuration. Enrichers are registered in declaration order;
// ordering among fixed properties is not specified.
func (b *Builder) Apply(config *Configuration, target *enrich.LoggerConfiguration) error {
	if config == nil {
		return fmt.Errorf("configuration must not be nil")
	}
	if target == nil {
		return fmt.Errorf("target configuration must not be nil")
	}

	for _, name := range config.Enrichment.Enrich {
		enricher, err := b.create(name, nil)
		if err != nil {
			return fmt.Errorf("failed to create enricher %s: %w", name, err)
		}
		target.Enrich().With(enricher)
	}

	for _, ec := range config.Enrichment.EnrichWith {
		enricher, err := b.create(ec.Name, ec.Args)
		if err != nil {
			return fmt.Errorf("failed to create enricher %s: %w", ec.Name, err)
		}
		if ec.Level != "" {
			level, err := ParseLevel(ec.Level)
			if err != nil {
				return fmt.Errorf("enricher %s: %w", ec.Name, err)
			}
			enricher = enrichers.NewLevelConditionalEnricher(level, enricher)
		}
		target.Enrich().With(enricher)
	}

	for name, value := range config.Enrichment.Properties {
		destructure := slices.Contains(config.Enrichment.Destructure, name)
		target.Enrich().WithProperty(name, value, destructure)
	}

	return target.Error()
}

func (b *Builder) create(name string, args map[string]any) (core.LogEventEnricher, error) {
	factory, ok := b.factories[name]
	if !ok {
		return nil, fmt.Errorf("unknown enricher: %s", name)
	}
	return factory(args)
}
