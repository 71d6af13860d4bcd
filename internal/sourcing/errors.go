package sourcing

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

var (
	// ErrDataLoad indicates the sourcing dataset is missing or malformed.
	ErrDataLoad = constError("sourcing dataset load failed")

	// ErrInvalidMonth indicates a month index outside 0-11.
	ErrInvalidMonth = constError("month must be between 0 and 11")
)
