package domain

import "fmt"

// ValidationError reports a malformed or missing input field. The whole
// request is rejected; there is no partial processing.
type ValidationError struct {
	Field  string
	Index  int // index into the items list, -1 for request-level fields
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("invalid field %q on item %d: %s", e.Field, e.Index, e.Reason)
	}
	return fmt.Sprintf("invalid field %q: %s", e.Field, e.Reason)
}

// ConfigurationError reports an unusable engine configuration, such as an
// unsupported country code or a malformed custom skip date.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration %q: %s", e.Field, e.Reason)
}
