package peaking

import "errors"

// Error kinds reported at the engine boundary. The pipeline stages themselves
// assume well-formed input; validation happens before they run, and callers
// match these with errors.Is.
var (
	ErrInvalidColorFormat = errors.New("invalid color format")
	ErrDecodeFailure      = errors.New("decode failure")
	ErrEmptySource        = errors.New("empty source")
	ErrWriteFailure       = errors.New("write failure")
)
