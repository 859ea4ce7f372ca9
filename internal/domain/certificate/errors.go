package certificate

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a certificate id does not resolve to a record
var ErrNotFound = errors.New("certificate not found")

// ValidationError reports an input field that failed a constraint. It is
// distinguished from store failures so callers can render it as a 400.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// IsValidationError reports whether err is a field validation failure
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
