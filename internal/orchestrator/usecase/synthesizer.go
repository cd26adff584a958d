package usecase

import (
	"context"
	"encoding/json"
	"strings"

	"a2a-orchestrator/internal/model"
	"a2a-orchestrator/pkg/llmprovider"
)

const (
	synthesisHistoryWindow = 8

	fallbackResponse = "Desculpe, algo deu errado internamente. Pode tentar novamente?"
)

// synthesizeNode turns the structured NodeResult into the final
// assistant reply. It never fails the turn: any LLM error degrades to
// a fixed apology.
func (uc *implUseCase) synthesizeNode(ctx context.Context, state *model.ConversationState) {
	text := uc.renderResponse(ctx, state)

	state.Response = text
	state.Messages = append(state.Messages, model.Message{
		Role:    model.RoleAssistant,
		Content: text,
	})
}

func (uc *implUseCase) renderResponse(ctx context.Context, state *model.ConversationState) string {
	if state.NodeResult == nil {
		uc.l.Warnf(ctx, "synthesis: no node result for session %s", state.SessionID)
		return fallbackResponse
	}

	resultJSON, err := json.MarshalIndent(state.NodeResult, "", "  ")
	if err != nil {
		uc.l.Errorf(ctx, "synthesis: marshal node result: %v", err)
		return fallbackResponse
	}

	history := renderHistory(state.RecentMessages(synthesisHistoryWindow))
	prompt := buildSynthesisPrompt(uc.voiceTone, history, string(resultJSON))

	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		Messages: []llmprovider.Message{
			{Role: "user", Content: prompt},
		},
		Temperature: 0.7,
	})
	if err != nil {
		uc.l.Errorf(ctx, "synthesis: generation failed: %v", err)
		return fallbackResponse
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return fallbackResponse
	}
	return text
}
