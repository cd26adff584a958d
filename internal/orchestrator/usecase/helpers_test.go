package usecase

import (
	"context"
	"errors"

	"a2a-orchestrator/internal/registry"
	"a2a-orchestrator/internal/session"
	"a2a-orchestrator/pkg/agents"
	"a2a-orchestrator/pkg/llmprovider"
)

// nopLogger discards everything.
type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, args ...any)                    {}
func (nopLogger) Debugf(ctx context.Context, template string, args ...any)  {}
func (nopLogger) Info(ctx context.Context, args ...any)                     {}
func (nopLogger) Infof(ctx context.Context, template string, args ...any)   {}
func (nopLogger) Warn(ctx context.Context, args ...any)                     {}
func (nopLogger) Warnf(ctx context.Context, template string, args ...any)   {}
func (nopLogger) Error(ctx context.Context, args ...any)                    {}
func (nopLogger) Errorf(ctx context.Context, template string, args ...any)  {}
func (nopLogger) Fatal(ctx context.Context, args ...any)                    {}
func (nopLogger) Fatalf(ctx context.Context, template string, args ...any)  {}
func (nopLogger) DPanic(ctx context.Context, args ...any)                   {}
func (nopLogger) DPanicf(ctx context.Context, template string, args ...any) {}
func (nopLogger) Panic(ctx context.Context, args ...any)                    {}
func (nopLogger) Panicf(ctx context.Context, template string, args ...any)  {}

// scriptedLLM returns canned responses in order, then repeats the last
// one. An empty script means every call fails.
type scriptedLLM struct {
	responses []string
	calls     int
	requests  []*llmprovider.Request
}

func (s *scriptedLLM) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	s.calls++
	s.requests = append(s.requests, req)
	if len(s.responses) == 0 {
		return nil, errors.New("llm unavailable")
	}
	idx := s.calls - 1
	if idx >= len(s.responses) {
		idx = len(s.responses) - 1
	}
	return &llmprovider.Response{Text: s.responses[idx]}, nil
}

// fakeAgents records Execute calls and returns a fixed result or error.
type fakeAgents struct {
	resp  *agents.ExecuteResponse
	err   error
	calls []agents.ExecuteRequest
	ids   []string
}

func (f *fakeAgents) Execute(ctx context.Context, agentID string, req agents.ExecuteRequest) (*agents.ExecuteResponse, error) {
	f.ids = append(f.ids, agentID)
	f.calls = append(f.calls, req)
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func newTestUseCase(llm *scriptedLLM, ag *fakeAgents) *implUseCase {
	if ag == nil {
		ag = &fakeAgents{}
	}
	return New(nopLogger{}, llm, ag, registry.Default(), session.NewMemory(), "")
}
