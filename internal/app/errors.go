package service

import (
	"errors"
	"fmt"

	"github.com/okian/campus/internal/adapters/mq/queue"
)

// Sentinel kinds returned by the service.
var (
	ErrStopped  = errors.New("service not running")
	ErrNotFound = errors.New("university not found")

	// ErrBackpressure is returned when the action queue is full.
	ErrBackpressure = fmt.Errorf("service busy: %w", queue.ErrFull)
)
