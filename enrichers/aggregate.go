package enrichers

import (
	"github.com/enrichgo/enrich/core"
	"github.com/enrichgo/enrich/selflog"
)

// AggregateEnricher applies an ordered list of enrichers as one. A panicking
// element is reported to selflog and skipped; the remaining enrichers still
// run, so one faulty enricher cannot take down event emission.
type AggregateEnricher struct {
	enrichers []core.LogEventEnricher
}

// NewAggregateEnricher creates an aggregate over the given enrichers.
func NewAggregateEnricher(enrichers ...core.LogEventEnricher) *AggregateEnricher {
	return &AggregateEnricher{enrichers: enrichers}
}

// Enrich applies each enricher in order.
func (ae *AggregateEnricher) Enrich(event *core.LogEvent, propertyFactory core.LogEventPropertyFactory) {
	for _, enricher := range ae.enrichers {
		if enricher == nil {
			continue
		}
		safeEnrich(enricher, event, propertyFactory)
	}
}

func safeEnrich(enricher core.LogEventEnricher, event *core.LogEvent, propertyFactory core.LogEventPropertyFactory) {
	defer func() {
		if r := recover(); r != nil {
			if selflog.IsEnabled() {
				selflog.Printf("[enricher] panic in %T: %v", enricher, r)
			}
		}
	}()
	enricher.Enrich(event, propertyFactory)
}
