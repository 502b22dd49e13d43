package core

import "time"

// LogEvent represents a single log event with all its properties.
type LogEvent struct {
	// Timestamp is when the event occurred.
	Timestamp time.Time

	// Level is the severity of the event.
	Level LogEventLevel

	// MessageTemplate is the original message template with placeholders.
	MessageTemplate string

	// Properties contains the event's properties.
	Properties map[string]any

	// Exception associated with the event, if any.
	Exception error
}

// NewLogEvent creates an event at the given level with an empty property map.
func NewLogEvent(level LogEventLevel, messageTemplate string) *LogEvent {
	return &LogEvent{
		Timestamp:       time.Now(),
		Level:           level,
		MessageTemplate: messageTemplate,
		Properties:      make(map[string]any),
	}
}

// AddPropertyIfAbsent adds a property to the event if it doesn't already exist.
func (e *LogEvent) AddPropertyIfAbsent(property *LogEventProperty) {
	if _, exists := e.Properties[property.Name]; !exists {
		e.Properties[property.Name] = property.Value
	}
}

// AddProperty adds or overwrites a property in the event.
func (e *LogEvent) AddProperty(name string, value any) {
	e.Properties[name] = value
}
