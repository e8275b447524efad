package queue

import "errors"

// Sentinel kinds for queue errors.
var (
	ErrFull   = errors.New("action queue full")
	ErrClosed = errors.New("action queue closed")
)
