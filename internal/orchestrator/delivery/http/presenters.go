package http

import (
	"strings"

	"a2a-orchestrator/internal/model"
	"a2a-orchestrator/internal/orchestrator"
)

// --- Request DTOs ---

type chatReq struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message" binding:"required"`
}

func (r chatReq) validate() error {
	if strings.TrimSpace(r.Message) == "" {
		return orchestrator.ErrEmptyMessage
	}
	return nil
}

func (r chatReq) toInput() orchestrator.TurnInput {
	return orchestrator.TurnInput{
		SessionID: r.SessionID,
		Message:   r.Message,
	}
}

// --- Response DTOs ---

type classificationResp struct {
	Mode            string            `json:"mode"`
	Intent          string            `json:"intent,omitempty"`
	Confidence      float64           `json:"confidence"`
	MissingSlots    []string          `json:"missing_slots"`
	QuestionToAsk   string            `json:"question_to_ask,omitempty"`
	CandidateAgents []string          `json:"candidate_agents"`
	ExtractedSlots  map[string]string `json:"extracted_slots"`
}

func newClassificationResp(c *model.Classification) *classificationResp {
	if c == nil {
		return nil
	}
	return &classificationResp{
		Mode:            string(c.Mode),
		Intent:          c.Intent,
		Confidence:      c.Confidence,
		MissingSlots:    c.MissingSlots,
		QuestionToAsk:   c.QuestionToAsk,
		CandidateAgents: c.CandidateAgents,
		ExtractedSlots:  c.ExtractedSlots,
	}
}

type debugResp struct {
	Slots         map[string]string `json:"slots"`
	CurrentIntent string            `json:"current_intent,omitempty"`
	MessageCount  int               `json:"message_count"`
	NodePath      []string          `json:"node_path"`
}

type chatResp struct {
	SessionID      string              `json:"session_id"`
	Response       string              `json:"response"`
	Classification *classificationResp `json:"classification,omitempty"`
	NodeResult     *model.NodeResult   `json:"node_result,omitempty"`
	AgentResult    map[string]any      `json:"agent_result,omitempty"`
	Debug          debugResp           `json:"debug"`
}

func (h *handler) newChatResp(out orchestrator.TurnOutput) chatResp {
	return chatResp{
		SessionID:      out.SessionID,
		Response:       out.Response,
		Classification: newClassificationResp(out.Classification),
		NodeResult:     out.NodeResult,
		AgentResult:    out.AgentResult,
		Debug: debugResp{
			Slots:         out.Debug.Slots,
			CurrentIntent: out.Debug.CurrentIntent,
			MessageCount:  out.Debug.MessageCount,
			NodePath:      out.Debug.NodePath,
		},
	}
}

type sessionsResp struct {
	Sessions []string `json:"sessions"`
	Count    int      `json:"count"`
}

func newSessionsResp(ids []string) sessionsResp {
	if ids == nil {
		ids = []string{}
	}
	return sessionsResp{Sessions: ids, Count: len(ids)}
}

type deleteSessionResp struct {
	SessionID string `json:"session_id"`
	Deleted   bool   `json:"deleted"`
}
