package vector

import "errors"

// Common errors
var (
	ErrOutOfRange = errors.New("vector: index out of range")
)
