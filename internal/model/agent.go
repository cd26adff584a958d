package model

// Environment names the deployment environment.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// AgentCard is a registry entry describing one resolvable intent and
// the external agent that fulfills it. Immutable after startup.
type AgentCard struct {
	Intent        string   `json:"intent"`
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	RequiredSlots []string `json:"required_slots"`
	SelfServe     bool     `json:"self_serve"`
}
