package usecase

import (
	"context"
	"strings"

	"a2a-orchestrator/internal/model"
	"a2a-orchestrator/internal/orchestrator"
)

// ProcessTurn runs one user message through the full pipeline and
// persists the resulting session state. The pipeline itself never
// fails a turn: every internal failure degrades into a NodeResult (or
// the synthesis fallback). The only caller-visible error is input
// validation.
func (uc *implUseCase) ProcessTurn(ctx context.Context, input orchestrator.TurnInput) (orchestrator.TurnOutput, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return orchestrator.TurnOutput{}, orchestrator.ErrEmptyMessage
	}

	state := uc.store.GetOrCreate(input.SessionID)

	uc.intake(state, message)

	classification, slots, intent := uc.classify(ctx, state)
	state.Classification = classification
	state.Slots = slots
	state.CurrentIntent = intent

	next := routeAfterClassification(classification)
	uc.l.Infof(ctx, "turn %s: mode=%s intent=%q confidence=%.2f",
		state.SessionID, next, intent, classification.Confidence)

	switch next {
	case nodeClarify:
		uc.clarifyNode(state)
	case nodeSelfServe:
		uc.selfServeNode(state)
	case nodeDispatch:
		uc.dispatchNode(ctx, state)
	default:
		uc.smallTalkNode(state)
	}

	uc.synthesizeNode(ctx, state)

	uc.store.Save(state)

	return orchestrator.TurnOutput{
		SessionID:      state.SessionID,
		Response:       state.Response,
		Classification: state.Classification,
		NodeResult:     state.NodeResult,
		AgentResult:    state.AgentResult,
		Debug: orchestrator.TurnDebug{
			Slots:         state.Slots,
			CurrentIntent: state.CurrentIntent,
			MessageCount:  len(state.Messages),
			NodePath:      []string{nodeIntake, nodeClassification, next, nodeSynthesis},
		},
	}, nil
}

// intake records the inbound message and clears the per-turn fields
// left over from the previous turn.
func (uc *implUseCase) intake(state *model.ConversationState, message string) {
	state.UserInput = message
	state.Messages = append(state.Messages, model.Message{
		Role:    model.RoleUser,
		Content: message,
	})
	state.Classification = nil
	state.NodeResult = nil
	state.Response = ""
	state.AgentResult = nil
}
