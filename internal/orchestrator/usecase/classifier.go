package usecase

import (
	"context"
	"encoding/json"

	"a2a-orchestrator/internal/model"
	"a2a-orchestrator/pkg/llmprovider"
)

// classifyHistoryWindow bounds how much history the classifier sees.
const classifyHistoryWindow = 10

// classifierDecision mirrors the strict JSON payload expected from the
// classification LLM call.
type classifierDecision struct {
	Mode            string            `json:"mode"`
	Intent          string            `json:"intent"`
	Confidence      *float64          `json:"confidence"`
	MissingSlots    []string          `json:"missing_slots"`
	QuestionToAsk   string            `json:"question_to_ask"`
	CandidateAgents []string          `json:"candidate_agents"`
	ExtractedSlots  map[string]string `json:"extracted_slots"`
}

// classify turns the current input plus session context into a
// Classification. It never fails: transport or parse errors degrade to
// the safe default, and invariant violations are downgraded to
// small_talk before anything leaves this boundary.
//
// Returns the classification, the merged working slot set, and the
// resolved persistent intent for the orchestrator to fold into state.
func (uc *implUseCase) classify(ctx context.Context, state *model.ConversationState) (*model.Classification, map[string]string, string) {
	system := buildClassificationPrompt(uc.registry.Catalog(), state.Slots, state.CurrentIntent)

	messages := make([]llmprovider.Message, 0, classifyHistoryWindow+1)
	for _, m := range state.RecentMessages(classifyHistoryWindow) {
		messages = append(messages, llmprovider.Message{Role: m.Role, Content: m.Content})
	}
	messages = append(messages, llmprovider.Message{
		Role:    model.RoleUser,
		Content: "Mensagem atual do usuário: " + state.UserInput,
	})

	decision := uc.requestDecision(ctx, &llmprovider.Request{
		System:      system,
		Messages:    messages,
		Temperature: 0, // deterministic JSON output
		MaxTokens:   1024,
	})

	// Merge extracted slots over the accumulated set; new keys win.
	// The merged set is the turn's working slot set regardless of
	// which guards fire below.
	merged := mergeSlots(state.Slots, decision.ExtractedSlots)

	classification := applyGuards(decision)

	persistentIntent := state.CurrentIntent
	if classification.Intent != "" {
		persistentIntent = classification.Intent
	}

	return classification, merged, persistentIntent
}

// requestDecision calls the LLM and parses its payload, substituting
// the safe default on any failure.
func (uc *implUseCase) requestDecision(ctx context.Context, req *llmprovider.Request) classifierDecision {
	resp, err := uc.llm.GenerateContent(ctx, req)
	if err != nil {
		uc.l.Warnf(ctx, "classifier: LLM call failed, using safe default: %v", err)
		return safeDefaultDecision()
	}

	cleaned := sanitizeJSONResponse(resp.Text)

	var decision classifierDecision
	if err := json.Unmarshal([]byte(cleaned), &decision); err != nil {
		uc.l.Warnf(ctx, "classifier: unparseable payload, using safe default. raw=%q", resp.Text)
		return safeDefaultDecision()
	}

	return decision
}

// safeDefaultDecision is the fallback when the classifier output is
// malformed: harmless small talk, never a crash.
func safeDefaultDecision() classifierDecision {
	conf := 0.5
	return classifierDecision{
		Mode:           string(model.ModeSmallTalk),
		Confidence:     &conf,
		MissingSlots:   []string{},
		ExtractedSlots: map[string]string{},
	}
}

// applyGuards enforces the classification invariants:
//   - clarify requires an intent and a non-empty missing-slot list
//   - dispatch and self_serve require an intent
//
// Violations (and unknown modes) downgrade to small_talk.
func applyGuards(d classifierDecision) *model.Classification {
	mode := model.RouteMode(d.Mode)
	intent := d.Intent
	missing := d.MissingSlots

	if !mode.Valid() {
		mode = model.ModeSmallTalk
		intent = ""
		missing = nil
	}

	if mode == model.ModeClarify && (intent == "" || len(missing) == 0) {
		mode = model.ModeSmallTalk
		intent = ""
		missing = nil
	}

	if (mode == model.ModeDispatch || mode == model.ModeSelfServe) && intent == "" {
		mode = model.ModeSmallTalk
	}

	confidence := 0.5
	if d.Confidence != nil {
		confidence = *d.Confidence
	}
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}

	if missing == nil {
		missing = []string{}
	}
	candidates := d.CandidateAgents
	if candidates == nil {
		candidates = []string{}
	}
	extracted := d.ExtractedSlots
	if extracted == nil {
		extracted = map[string]string{}
	}

	return &model.Classification{
		Mode:            mode,
		Intent:          intent,
		Confidence:      confidence,
		MissingSlots:    missing,
		QuestionToAsk:   d.QuestionToAsk,
		CandidateAgents: candidates,
		ExtractedSlots:  extracted,
	}
}

// mergeSlots merges extracted slots into the accumulated set.
// New extractions overwrite same-named existing keys.
func mergeSlots(accumulated, extracted map[string]string) map[string]string {
	merged := make(map[string]string, len(accumulated)+len(extracted))
	for k, v := range accumulated {
		merged[k] = v
	}
	for k, v := range extracted {
		merged[k] = v
	}
	return merged
}
