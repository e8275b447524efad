package catalog

import "errors"

// Sentinel kinds for catalog loading errors.
var (
	ErrDecode      = errors.New("catalog decode failed")
	ErrEmptyID     = errors.New("catalog record without id")
	ErrDuplicateID = errors.New("duplicate catalog id")
)
