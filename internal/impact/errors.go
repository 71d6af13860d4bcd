package impact

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// ErrValidation is matched by every *ValidationError.
const ErrValidation = constError("invalid canteen parameters")

// ValidationError reports a missing or out-of-range calculation input.
// No calculation work is done when one is returned.
type ValidationError struct {
	// Field is the JSON name of the offending parameter, e.g. "portion_sizes.protein_gram".
	Field string `json:"field"`

	// Message describes the problem.
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Unwrap lets errors.Is match ErrValidation.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func missing(field string) *ValidationError {
	return &ValidationError{Field: field, Message: "is required"}
}

func invalid(field, msg string) *ValidationError {
	return &ValidationError{Field: field, Message: msg}
}
