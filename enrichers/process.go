package enrichers

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/enrichgo/enrich/core"
)

// ProcessEnricher adds process information to log events. The zero value is
// ready to use.
type ProcessEnricher struct {
	processID   int
	processName string
	once        sync.Once
}

// NewProcessEnricher creates a new process enricher.
func NewProcessEnricher() *ProcessEnricher {
	return &ProcessEnricher{}
}

// Enrich adds the process ID and name to the log event.
func (pe *ProcessEnricher) Enrich(event *core.LogEvent, propertyFactory core.LogEventPropertyFactory) {
	pe.once.Do(func() {
		pe.processID = os.Getpid()
		pe.processName = filepath.Base(os.Args[0])
	})

	if prop, err := propertyFactory.CreateProperty("ProcessId", pe.processID, false); err == nil {
		event.AddPropertyIfAbsent(prop)
	}
	if prop, err := propertyFactory.CreateProperty("ProcessName", pe.processName, false); err == nil {
		event.AddPropertyIfAbsent(prop)
	}
}
