package agents

import (
	"fmt"
	"time"
)

// DefaultTimeout bounds every call to the agents API.
const DefaultTimeout = 30 * time.Second

// Config holds agents API client configuration.
type Config struct {
	BaseURL string
	APIKey  string // optional bearer token
	Timeout time.Duration
}

// ExecuteRequest is the payload sent to an agent.
type ExecuteRequest struct {
	Intent string            `json:"intent"`
	Slots  map[string]string `json:"slots"`
}

// ExecuteResponse is the agent's structured result.
type ExecuteResponse struct {
	AgentID  string         `json:"agent_id"`
	Status   string         `json:"status"`
	Response string         `json:"response"`
	Data     map[string]any `json:"data"`
}

// AsMap returns the raw response as a map for diagnostic storage.
func (r *ExecuteResponse) AsMap() map[string]any {
	return map[string]any{
		"agent_id": r.AgentID,
		"status":   r.Status,
		"response": r.Response,
		"data":     r.Data,
	}
}

// RegistryEntry is one agent listed by the agents API.
type RegistryEntry struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Intents []string `json:"intents"`
}

// StatusError reports a non-2xx response from the agents API.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("agents API returned HTTP %d: %s", e.Code, e.Body)
}
