package session

import "a2a-orchestrator/internal/model"

// Store keeps ConversationState between turns. Implementations hand out
// deep copies: the caller mutates its copy during the turn and writes
// it back with Save (last writer wins, no optimistic locking).
type Store interface {
	// GetOrCreate returns a copy of the state for sessionID, creating a
	// fresh state (with a generated id if sessionID is empty) on miss.
	GetOrCreate(sessionID string) *model.ConversationState

	// Save persists a copy of the state under its session id.
	Save(state *model.ConversationState)

	// Delete removes a session. Unknown ids are a no-op.
	Delete(sessionID string)

	// List returns all known session ids.
	List() []string
}
