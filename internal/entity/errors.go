package entity

import "errors"

var (
	ErrListingNotFound = errors.New("listing not found")
	ErrDetailsNotFound = errors.New("listing details not found")
	ErrAddressNotFound = errors.New("address not found")
	ErrPhotoNotFound   = errors.New("photo not found")
)

// ValidationError carries the user-facing domain message shown by the
// admin panel. The message names the missing concept, not a field name,
// and is part of the API contract.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
