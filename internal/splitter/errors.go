package splitter

import "errors"

var (
	// ErrConfig marks configuration errors. They are detected before any
	// splitting starts and are never silently clamped.
	ErrConfig = errors.New("splitter: invalid configuration")

	// ErrInput marks input of the wrong shape, such as the JSON key splitter
	// receiving something other than a top-level object.
	ErrInput = errors.New("splitter: invalid input")
)
