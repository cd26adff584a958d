package usecase

import (
	"context"
	"errors"
	"fmt"

	"a2a-orchestrator/internal/model"
	"a2a-orchestrator/pkg/agents"
)

// dispatchNode calls the external agent registered for the current
// intent. On success the collection cycle ends (intent and slots are
// reset); on any failure the accumulated context is preserved so the
// user can retry on the next message.
func (uc *implUseCase) dispatchNode(ctx context.Context, state *model.ConversationState) {
	intent := state.CurrentIntent

	card, ok := uc.registry.Lookup(intent)
	if !ok {
		// Should be unreachable given the classifier guards.
		state.NodeResult = &model.NodeResult{
			SourceNode:   nodeDispatch,
			Intent:       intent,
			Status:       model.StatusError,
			ErrorMessage: fmt.Sprintf("Agente não encontrado para intent '%s'", intent),
		}
		return
	}

	slots := state.Slots

	resp, err := uc.agents.Execute(ctx, card.ID, agents.ExecuteRequest{
		Intent: intent,
		Slots:  slots,
	})
	if err != nil {
		uc.l.Warnf(ctx, "dispatch: agent %s failed: %v", card.ID, err)
		state.NodeResult = dispatchErrorResult(card, intent, slots, err)
		return
	}

	uc.l.Infof(ctx, "dispatch: agent %s executed, status=%s", card.ID, resp.Status)

	status := resp.Status
	if status == "" {
		status = model.StatusOK
	}

	state.NodeResult = &model.NodeResult{
		SourceNode: nodeDispatch,
		Intent:     intent,
		Status:     status,
		Data: map[string]any{
			"agent_name":     card.Name,
			"agent_id":       card.ID,
			"agent_response": resp.Response,
			"agent_data":     resp.Data,
		},
		SlotsCollected: slots,
	}
	state.AgentResult = resp.AsMap()

	// Reset for the next collection cycle.
	state.CurrentIntent = ""
	state.Slots = map[string]string{}
}

// dispatchErrorResult maps agent-call failures to an error NodeResult
// with a human-readable description. Slots and intent stay untouched.
func dispatchErrorResult(card model.AgentCard, intent string, slots map[string]string, err error) *model.NodeResult {
	result := &model.NodeResult{
		SourceNode: nodeDispatch,
		Intent:     intent,
		Status:     model.StatusError,
		Data: map[string]any{
			"agent_name": card.Name,
			"agent_id":   card.ID,
		},
		SlotsCollected: slots,
	}

	var statusErr *agents.StatusError
	switch {
	case errors.As(err, &statusErr):
		result.Data["http_status"] = statusErr.Code
		result.ErrorMessage = fmt.Sprintf("Agente retornou erro HTTP %d", statusErr.Code)
	default:
		result.ErrorMessage = fmt.Sprintf("API do agente indisponível: %s", card.Name)
	}

	return result
}
