package http

import (
	"bytes"
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"a2a-orchestrator/internal/model"
	"a2a-orchestrator/internal/orchestrator"
	"a2a-orchestrator/pkg/response"
)

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

type fakeUseCase struct {
	out      orchestrator.TurnOutput
	err      error
	inputs   []orchestrator.TurnInput
	sessions []string
	deleted  []string
}

func (f *fakeUseCase) ProcessTurn(ctx context.Context, input orchestrator.TurnInput) (orchestrator.TurnOutput, error) {
	f.inputs = append(f.inputs, input)
	return f.out, f.err
}

func (f *fakeUseCase) Sessions(ctx context.Context) []string { return f.sessions }

func (f *fakeUseCase) DeleteSession(ctx context.Context, sessionID string) {
	f.deleted = append(f.deleted, sessionID)
}

func newTestServer(uc orchestrator.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := New(nopLogger{}, uc)
	r := gin.New()
	chat := r.Group("/api/v1/chat")
	chat.POST("", h.Chat)
	chat.GET("/sessions", h.Sessions)
	chat.DELETE("/sessions/:id", h.DeleteSession)
	return r
}

func TestChatHandlerOK(t *testing.T) {
	uc := &fakeUseCase{out: orchestrator.TurnOutput{
		SessionID: "s1",
		Response:  "Olá!",
		Classification: &model.Classification{
			Mode:       model.ModeSmallTalk,
			Confidence: 0.9,
		},
		Debug: orchestrator.TurnDebug{NodePath: []string{"intake", "classification", "small_talk", "synthesis"}},
	}}
	r := newTestServer(uc)

	body, _ := json.Marshal(map[string]string{"session_id": "s1", "message": "oi"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(stdhttp.MethodPost, "/api/v1/chat", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, stdhttp.StatusOK, w.Code)

	var resp response.Resp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.ErrorCode)

	data := resp.Data.(map[string]any)
	assert.Equal(t, "s1", data["session_id"])
	assert.Equal(t, "Olá!", data["response"])

	require.Len(t, uc.inputs, 1)
	assert.Equal(t, "s1", uc.inputs[0].SessionID)
	assert.Equal(t, "oi", uc.inputs[0].Message)
}

func TestChatHandlerRejectsMissingMessage(t *testing.T) {
	uc := &fakeUseCase{}
	r := newTestServer(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(stdhttp.MethodPost, "/api/v1/chat", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, stdhttp.StatusBadRequest, w.Code)
	assert.Empty(t, uc.inputs, "invalid requests never reach the use case")
}

func TestChatHandlerRejectsBlankMessage(t *testing.T) {
	uc := &fakeUseCase{}
	r := newTestServer(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(stdhttp.MethodPost, "/api/v1/chat", bytes.NewReader([]byte(`{"message": "   "}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, stdhttp.StatusBadRequest, w.Code)
}

func TestSessionsHandler(t *testing.T) {
	uc := &fakeUseCase{sessions: []string{"a", "b"}}
	r := newTestServer(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(stdhttp.MethodGet, "/api/v1/chat/sessions", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, stdhttp.StatusOK, w.Code)

	var resp response.Resp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp.Data.(map[string]any)
	assert.Equal(t, float64(2), data["count"])
}

func TestDeleteSessionHandler(t *testing.T) {
	uc := &fakeUseCase{}
	r := newTestServer(uc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(stdhttp.MethodDelete, "/api/v1/chat/sessions/s1", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, stdhttp.StatusOK, w.Code)
	assert.Equal(t, []string{"s1"}, uc.deleted)
}
