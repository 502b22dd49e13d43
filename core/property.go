package core

// LogEventProperty represents a single property of a log event.
type LogEventProperty struct {
	// Name is the property name.
	Name string

	// Value is the property value.
	Value any
}

// LogEventPropertyFactory creates log event properties.
//
// The factory owns the value-conversion policy: with destructure false the
// value is kept as a scalar or rendered to a flat string, with destructure
// true composite values are decomposed into a structured representation.
type LogEventPropertyFactory interface {
	// CreateProperty creates a new log event property from the given name
	// and value. It fails if the name is empty.
	CreateProperty(name string, value any, destructure bool) (*LogEventProperty, error)
}
