package enrichers

import (
	"os"
	"sync"

	"github.com/enrichgo/enrich/core"
)

// MachineNameEnricher adds the machine name to log events. The zero value
// is ready to use and adds a "MachineName" property.
type MachineNameEnricher struct {
	propertyName string
	machineName  string
	once         sync.Once
}

// NewMachineNameEnricher creates a new machine name enricher.
func NewMachineNameEnricher() *MachineNameEnricher {
	return &MachineNameEnricher{}
}

// NewMachineNameEnricherWithName creates a machine name enricher writing to
// a custom property name.
func NewMachineNameEnricherWithName(propertyName string) *MachineNameEnricher {
	return &MachineNameEnricher{propertyName: propertyName}
}

// Enrich adds the machine name to the log event.
func (me *MachineNameEnricher) Enrich(event *core.LogEvent, propertyFactory core.LogEventPropertyFactory) {
	me.once.Do(func() {
		hostname, err := os.Hostname()
		if err != nil {
			hostname = "unknown"
		}
		me.machineName = hostname
	})

	name := me.propertyName
	if name == "" {
		name = "MachineName"
	}
	if prop, err := propertyFactory.CreateProperty(name, me.machineName, false); err == nil {
		event.AddPropertyIfAbsent(prop)
	}
}
