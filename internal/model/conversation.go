package model

// RouteMode is the routing decision produced by classification.
type RouteMode string

const (
	ModeSmallTalk RouteMode = "small_talk"
	ModeClarify   RouteMode = "clarify"
	ModeSelfServe RouteMode = "self_serve"
	ModeDispatch  RouteMode = "dispatch"
)

// Valid reports whether the mode is one of the four routing targets.
func (m RouteMode) Valid() bool {
	switch m {
	case ModeSmallTalk, ModeClarify, ModeSelfServe, ModeDispatch:
		return true
	}
	return false
}

// Message is one entry in the conversation history.
type Message struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Classification is the structured decision produced by the classifier
// for a single turn. Everything downstream (router, stages) consumes
// this instead of raw user text.
type Classification struct {
	Mode            RouteMode         `json:"mode"`
	Intent          string            `json:"intent,omitempty"`
	Confidence      float64           `json:"confidence"`
	MissingSlots    []string          `json:"missing_slots"`
	QuestionToAsk   string            `json:"question_to_ask,omitempty"`
	CandidateAgents []string          `json:"candidate_agents"`
	ExtractedSlots  map[string]string `json:"extracted_slots"`
}

// Node result statuses.
const (
	StatusOK      = "ok"
	StatusError   = "error"
	StatusPending = "pending"
)

// NodeResult is the structured outcome of a processing stage
// (small_talk, clarify, self_serve, dispatch). It is the only channel
// through which stage outcomes reach the synthesizer; stages never emit
// user-facing text themselves.
type NodeResult struct {
	SourceNode     string            `json:"source_node"`
	Intent         string            `json:"intent,omitempty"`
	Status         string            `json:"status"`
	Data           map[string]any    `json:"data"`
	SlotsCollected map[string]string `json:"slots_collected"`
	MissingSlots   []string          `json:"missing_slots"`
	QuestionToAsk  string            `json:"question_to_ask,omitempty"`
	ErrorMessage   string            `json:"error_message,omitempty"`
}

// ConversationState is the per-session aggregate persisted between
// turns. It is owned by the session store: callers work on deep copies
// and write the whole state back at the end of a turn.
type ConversationState struct {
	SessionID string    `json:"session_id"`
	Messages  []Message `json:"messages"`

	// Per-turn fields, overwritten each turn.
	UserInput      string          `json:"user_input"`
	Classification *Classification `json:"classification,omitempty"`
	NodeResult     *NodeResult     `json:"node_result,omitempty"`
	Response       string          `json:"response"`

	// Cross-turn accumulation, cleared on dispatch/self-serve completion.
	Slots         map[string]string `json:"slots"`
	CurrentIntent string            `json:"current_intent,omitempty"`

	// Raw payload from the last external agent call, diagnostic only.
	AgentResult map[string]any `json:"agent_result,omitempty"`
}

// NewConversationState creates an empty state for a session.
func NewConversationState(sessionID string) *ConversationState {
	return &ConversationState{
		SessionID: sessionID,
		Messages:  []Message{},
		Slots:     map[string]string{},
	}
}

// Clone returns a deep copy. The store hands out clones so that a turn
// in flight never mutates stored state before Save.
func (s *ConversationState) Clone() *ConversationState {
	if s == nil {
		return nil
	}

	cp := *s

	cp.Messages = make([]Message, len(s.Messages))
	copy(cp.Messages, s.Messages)

	cp.Slots = make(map[string]string, len(s.Slots))
	for k, v := range s.Slots {
		cp.Slots[k] = v
	}

	if s.Classification != nil {
		c := *s.Classification
		c.MissingSlots = append([]string(nil), s.Classification.MissingSlots...)
		c.CandidateAgents = append([]string(nil), s.Classification.CandidateAgents...)
		c.ExtractedSlots = copyStringMap(s.Classification.ExtractedSlots)
		cp.Classification = &c
	}

	if s.NodeResult != nil {
		nr := *s.NodeResult
		nr.MissingSlots = append([]string(nil), s.NodeResult.MissingSlots...)
		nr.SlotsCollected = copyStringMap(s.NodeResult.SlotsCollected)
		nr.Data = copyAnyMap(s.NodeResult.Data)
		cp.NodeResult = &nr
	}

	cp.AgentResult = copyAnyMap(s.AgentResult)

	return &cp
}

// UserMessageCount counts user-role entries in the history.
func (s *ConversationState) UserMessageCount() int {
	n := 0
	for _, m := range s.Messages {
		if m.Role == RoleUser {
			n++
		}
	}
	return n
}

// RecentMessages returns the last n history entries.
func (s *ConversationState) RecentMessages(n int) []Message {
	if len(s.Messages) <= n {
		return s.Messages
	}
	return s.Messages[len(s.Messages)-n:]
}

func copyStringMap(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	cp := make(map[string]string, len(m))
	for k, v := range m {
		cp[k] = v
	}
	return cp
}

// copyAnyMap is a shallow copy: nested values come from decoded JSON
// and are treated as read-only.
func copyAnyMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	cp := make(map[string]any, len(m))
	for k, v := range m {
		cp[k] = v
	}
	return cp
}
