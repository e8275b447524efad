package compare

import (
	"errors"
	"fmt"
)

// Sentinel kinds for comparison list outcomes.
var (
	ErrAlreadyAdded      = errors.New("university already in comparison list")
	ErrLimitReached      = errors.New("comparison list is full")
	ErrUnknownUniversity = errors.New("unknown university")
	ErrNotEnoughSelected = errors.New("not enough universities selected to compare")
)

// Error carries the operation and id behind a rejected change.
// Match the kind with errors.Is.
type Error struct {
	Op   string
	ID   string
	Kind error
}

func (e *Error) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("compare %s: %v", e.Op, e.Kind)
	}
	return fmt.Sprintf("compare %s %q: %v", e.Op, e.ID, e.Kind)
}

func (e *Error) Unwrap() error { return e.Kind }
