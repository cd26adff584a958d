package http

import (
	"a2a-orchestrator/internal/orchestrator"
	"a2a-orchestrator/pkg/log"
)

type handler struct {
	l  log.Logger
	uc orchestrator.UseCase
}

// New creates the HTTP handler for the chat domain.
func New(l log.Logger, uc orchestrator.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
