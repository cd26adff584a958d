package orchestrator

import "a2a-orchestrator/internal/model"

// TurnInput is one inbound user turn.
type TurnInput struct {
	SessionID string // empty means "start a new session"
	Message   string
}

// TurnOutput is the full result of a processed turn, including the
// structured intermediates for debugging clients.
type TurnOutput struct {
	SessionID      string
	Response       string
	Classification *model.Classification
	NodeResult     *model.NodeResult
	AgentResult    map[string]any
	Debug          TurnDebug
}

// TurnDebug carries diagnostic state snapshots for the response.
type TurnDebug struct {
	Slots         map[string]string
	CurrentIntent string
	MessageCount  int
	NodePath      []string
}
