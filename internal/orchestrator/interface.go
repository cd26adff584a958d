package orchestrator

import "context"

// UseCase defines the business logic interface for the orchestrator
// domain: one call processes exactly one conversational turn.
type UseCase interface {
	// ProcessTurn runs a user message through the full pipeline:
	// intake → classification → {small_talk | clarify | self_serve |
	// dispatch} → synthesis, and persists the updated session state.
	ProcessTurn(ctx context.Context, input TurnInput) (TurnOutput, error)

	// Sessions lists known session ids.
	Sessions(ctx context.Context) []string

	// DeleteSession removes a session's state.
	DeleteSession(ctx context.Context, sessionID string)
}
