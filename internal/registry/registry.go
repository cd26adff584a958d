package registry

import "a2a-orchestrator/internal/model"

// Registry is the read-only catalog of intents the orchestrator can
// resolve. An unknown intent is always absent, never a default.
type Registry struct {
	cards map[string]model.AgentCard
	order []string
}

// New builds a registry from the given cards, keyed by intent.
// Insertion order is preserved for Catalog().
func New(cards []model.AgentCard) *Registry {
	r := &Registry{cards: make(map[string]model.AgentCard, len(cards))}
	for _, card := range cards {
		if _, dup := r.cards[card.Intent]; dup {
			continue
		}
		r.cards[card.Intent] = card
		r.order = append(r.order, card.Intent)
	}
	return r
}

// Lookup returns the card for an intent, if registered.
func (r *Registry) Lookup(intent string) (model.AgentCard, bool) {
	card, ok := r.cards[intent]
	return card, ok
}

// Catalog returns all cards in registration order. The classifier
// presents this list to the LLM as the exhaustive intent set.
func (r *Registry) Catalog() []model.AgentCard {
	out := make([]model.AgentCard, 0, len(r.order))
	for _, intent := range r.order {
		out = append(out, r.cards[intent])
	}
	return out
}

// Default returns the built-in agent catalog.
func Default() *Registry {
	return New([]model.AgentCard{
		{
			Intent:        "happy_birthday",
			ID:            "agent-happy-birthday",
			Name:          "Agente Parabéns",
			Description:   "Gera uma mensagem de feliz aniversário personalizada",
			RequiredSlots: []string{"nome", "data"},
		},
		{
			Intent:        "clima",
			ID:            "agent-clima",
			Name:          "Agente Clima",
			Description:   "Consulta a previsão do tempo para uma cidade",
			RequiredSlots: []string{"cidade"},
		},
		{
			Intent:        "traduzir",
			ID:            "agent-traduzir",
			Name:          "Agente Tradutor",
			Description:   "Traduz um texto para outro idioma",
			RequiredSlots: []string{"texto", "idioma"},
		},
		{
			Intent:        "lembrete",
			ID:            "agent-lembrete",
			Name:          "Agente Lembrete",
			Description:   "Cria um lembrete com descrição e horário",
			RequiredSlots: []string{"descricao", "horario"},
		},
	})
}
