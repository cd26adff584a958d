package llmprovider_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"a2a-orchestrator/pkg/llmprovider"
)

type fakeProvider struct {
	name     string
	response string
	err      error
	calls    int
}

func (f *fakeProvider) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &llmprovider.Response{Text: f.response}, nil
}

func (f *fakeProvider) Name() string  { return f.name }
func (f *fakeProvider) Model() string { return f.name + "-model" }

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

func newManager(cfg *llmprovider.Config, providers ...llmprovider.Provider) *llmprovider.Manager {
	return llmprovider.NewManager(providers, cfg, nopLogger{})
}

func TestGenerateContentNoProviders(t *testing.T) {
	m := newManager(&llmprovider.Config{RetryAttempts: 1})

	_, err := m.GenerateContent(context.Background(), &llmprovider.Request{})
	assert.ErrorIs(t, err, llmprovider.ErrNoProvidersConfigured)
}

func TestGenerateContentFirstProviderWins(t *testing.T) {
	first := &fakeProvider{name: "openai", response: "first"}
	second := &fakeProvider{name: "gemini", response: "second"}
	m := newManager(&llmprovider.Config{FallbackEnabled: true, RetryAttempts: 1}, first, second)

	resp, err := m.GenerateContent(context.Background(), &llmprovider.Request{})
	require.NoError(t, err)
	assert.Equal(t, "first", resp.Text)
	assert.Equal(t, "openai", resp.ProviderName)
	assert.Zero(t, second.calls)
}

func TestGenerateContentFallback(t *testing.T) {
	first := &fakeProvider{name: "openai", err: errors.New("down")}
	second := &fakeProvider{name: "gemini", response: "fallback"}
	m := newManager(&llmprovider.Config{FallbackEnabled: true, RetryAttempts: 1}, first, second)

	resp, err := m.GenerateContent(context.Background(), &llmprovider.Request{})
	require.NoError(t, err)
	assert.Equal(t, "fallback", resp.Text)
	assert.Equal(t, "gemini", resp.ProviderName)
}

func TestGenerateContentFallbackDisabled(t *testing.T) {
	first := &fakeProvider{name: "openai", err: errors.New("down")}
	second := &fakeProvider{name: "gemini", response: "fallback"}
	m := newManager(&llmprovider.Config{FallbackEnabled: false, RetryAttempts: 1}, first, second)

	_, err := m.GenerateContent(context.Background(), &llmprovider.Request{})
	assert.ErrorIs(t, err, llmprovider.ErrAllProvidersFailed)
	assert.Zero(t, second.calls)
}

func TestGenerateContentRetries(t *testing.T) {
	p := &fakeProvider{name: "openai", err: errors.New("flaky")}
	m := newManager(&llmprovider.Config{
		RetryAttempts: 3,
		RetryDelay:    time.Millisecond,
	}, p)

	_, err := m.GenerateContent(context.Background(), &llmprovider.Request{})
	require.Error(t, err)
	assert.Equal(t, 3, p.calls)
}

func TestGenerateContentAllFail(t *testing.T) {
	first := &fakeProvider{name: "openai", err: errors.New("down")}
	second := &fakeProvider{name: "gemini", err: errors.New("also down")}
	m := newManager(&llmprovider.Config{FallbackEnabled: true, RetryAttempts: 1}, first, second)

	_, err := m.GenerateContent(context.Background(), &llmprovider.Request{})
	assert.ErrorIs(t, err, llmprovider.ErrAllProvidersFailed)
}
