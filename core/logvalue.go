package core

// LogValue allows a type to substitute its own representation before
// property conversion takes place.
type LogValue interface {
	// LogValue returns the value to log instead of the receiver.
	LogValue() any
}
