package orchestrator

import "errors"

// Domain-specific errors for the orchestrator package.
var (
	ErrEmptyMessage = errors.New("message is empty")
)
