package apperror

import "errors"

// Sentinel errors for the outcomes handlers translate to HTTP statuses.
// Unauthenticated and Forbidden are distinct so clients can tell
// "log in" apart from "you lack permission".
var (
	ErrUnauthenticated = errors.New("not authenticated")
	ErrForbidden       = errors.New("insufficient privileges")
	ErrNotFound        = errors.New("not found")
)

// ValidationError carries an actionable message for malformed input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func Validation(msg string) error {
	return &ValidationError{Message: msg}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
