package usecase

import (
	"a2a-orchestrator/internal/model"
)

// Stages produce a structured NodeResult and apply their state deltas
// on the working copy. None of them generate user-facing language;
// that is the synthesizer's job alone.

// smallTalkNode handles everything outside the agent catalog.
func (uc *implUseCase) smallTalkNode(state *model.ConversationState) {
	state.NodeResult = &model.NodeResult{
		SourceNode: nodeSmallTalk,
		Status:     model.StatusOK,
		Data: map[string]any{
			"type":                 "general_conversation",
			"user_said":            state.UserInput,
			"is_first_interaction": state.UserMessageCount() <= 1,
		},
	}
}

// clarifyNode asks for the slots still missing. No slot reset: the
// collection cycle keeps accumulating across turns.
func (uc *implUseCase) clarifyNode(state *model.ConversationState) {
	classification := state.Classification

	intent := state.CurrentIntent
	var missing []string
	var question string
	if classification != nil {
		if classification.Intent != "" {
			intent = classification.Intent
		}
		missing = classification.MissingSlots
		question = classification.QuestionToAsk
	}

	data := map[string]any{
		"agent_name": nil,
		"agent_id":   nil,
	}
	if card, ok := uc.registry.Lookup(intent); ok {
		data["agent_name"] = card.Name
		data["agent_id"] = card.ID
	}

	state.NodeResult = &model.NodeResult{
		SourceNode:     nodeClarify,
		Intent:         intent,
		Status:         model.StatusPending,
		Data:           data,
		SlotsCollected: state.Slots,
		MissingSlots:   missing,
		QuestionToAsk:  question,
	}
}

// selfServeNode resolves the intent internally. The business logic is
// a pluggable placeholder: it echoes the collected slots as the query
// result. Completion ends the collection cycle.
func (uc *implUseCase) selfServeNode(state *model.ConversationState) {
	intent := state.CurrentIntent

	data := map[string]any{
		"agent_name":          nil,
		"agent_id":            nil,
		"resolved_internally": true,
		"query_params":        state.Slots,
	}
	if card, ok := uc.registry.Lookup(intent); ok {
		data["agent_name"] = card.Name
		data["agent_id"] = card.ID
	}

	state.NodeResult = &model.NodeResult{
		SourceNode:     nodeSelfServe,
		Intent:         intent,
		Status:         model.StatusOK,
		Data:           data,
		SlotsCollected: state.Slots,
	}

	// Reset for the next collection cycle.
	state.CurrentIntent = ""
	state.Slots = map[string]string{}
}
