package repository

import (
	"errors"
	"fmt"
)

// ValidationError is returned when a create call is missing a required
// field or carries an invalid value. It is the only hard error the
// repositories surface; not-found conditions are reported with nil or
// false results, and storage failures are swallowed at the adapter.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err is a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
