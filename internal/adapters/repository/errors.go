package repository

import "errors"

// Sentinel kinds for key-value store errors.
var (
	ErrNotFound      = errors.New("key not found")
	ErrUnknownDriver = errors.New("unknown store driver")
)
