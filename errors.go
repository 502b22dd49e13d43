package enrich

import "fmt"

// InvalidArgumentError reports a required argument or collaborator that was
// absent. It is raised before any side effect takes place.
type InvalidArgumentError struct {
	// Argument is the name of the offending parameter.
	Argument string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("enrich: argument %s must not be nil", e.Argument)
}

// InvalidOperationError reports a structural contract violation detected in
// the middle of an operation, such as a nil element inside an enricher
// sequence. Work performed before the violation is not rolled back.
type InvalidOperationError struct {
	Reason string
}

func (e *InvalidOperationError) Error() string {
	return "enrich: " + e.Reason
}
