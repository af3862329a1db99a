package priority

import "errors"

var (
	// ErrInvalidRule is returned when a rule has no name or no Apply function.
	ErrInvalidRule = errors.New("invalid priority rule")
)
