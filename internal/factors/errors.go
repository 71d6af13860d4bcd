package factors

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

var (
	// ErrNotFound indicates that no reference record matches a lookup.
	// Callers surface it as a not-found result, not a failure.
	ErrNotFound = constError("reference data not found")

	// ErrDataLoad indicates the reference dataset is missing or malformed.
	// It is fatal at startup.
	ErrDataLoad = constError("reference dataset load failed")
)
