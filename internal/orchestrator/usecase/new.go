package usecase

import (
	"context"

	"a2a-orchestrator/internal/registry"
	"a2a-orchestrator/internal/session"
	"a2a-orchestrator/pkg/agents"
	pkgLog "a2a-orchestrator/pkg/log"
	"a2a-orchestrator/pkg/llmprovider"
)

// generator is the LLM capability consumed by the classifier and the
// synthesizer; satisfied by *llmprovider.Manager.
type generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// agentCaller is the outbound resolution-service boundary used by the
// dispatch stage; satisfied by *agents.Client.
type agentCaller interface {
	Execute(ctx context.Context, agentID string, req agents.ExecuteRequest) (*agents.ExecuteResponse, error)
}

type implUseCase struct {
	l         pkgLog.Logger
	llm       generator
	agents    agentCaller
	registry  *registry.Registry
	store     session.Store
	voiceTone string
}

// New creates the orchestrator UseCase.
func New(
	l pkgLog.Logger,
	llm generator,
	agentsClient agentCaller,
	reg *registry.Registry,
	store session.Store,
	voiceTone string,
) *implUseCase {
	if voiceTone == "" {
		voiceTone = DefaultVoiceTone
	}
	return &implUseCase{
		l:         l,
		llm:       llm,
		agents:    agentsClient,
		registry:  reg,
		store:     store,
		voiceTone: voiceTone,
	}
}

// Sessions lists known session ids.
func (uc *implUseCase) Sessions(ctx context.Context) []string {
	return uc.store.List()
}

// DeleteSession removes a session's state.
func (uc *implUseCase) DeleteSession(ctx context.Context, sessionID string) {
	uc.store.Delete(sessionID)
}
