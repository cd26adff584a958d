package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"a2a-orchestrator/internal/model"
)

func TestClassifySafeDefaultOnLLMFailure(t *testing.T) {
	uc := newTestUseCase(&scriptedLLM{}, nil)

	state := model.NewConversationState("s1")
	state.UserInput = "oi"

	c, slots, intent := uc.classify(context.Background(), state)

	assert.Equal(t, model.ModeSmallTalk, c.Mode)
	assert.Equal(t, 0.5, c.Confidence)
	assert.Empty(t, slots)
	assert.Empty(t, intent)
}

func TestClassifySafeDefaultOnMalformedJSON(t *testing.T) {
	uc := newTestUseCase(&scriptedLLM{responses: []string{"not json at all"}}, nil)

	state := model.NewConversationState("s1")
	state.UserInput = "oi"

	c, _, _ := uc.classify(context.Background(), state)

	assert.Equal(t, model.ModeSmallTalk, c.Mode)
	assert.Equal(t, 0.5, c.Confidence)
}

func TestClassifyStripsCodeFences(t *testing.T) {
	raw := "```json\n{\"mode\": \"dispatch\", \"intent\": \"clima\", \"confidence\": 0.9, \"extracted_slots\": {\"cidade\": \"Curitiba\"}}\n```"
	uc := newTestUseCase(&scriptedLLM{responses: []string{raw}}, nil)

	state := model.NewConversationState("s1")
	state.UserInput = "clima em Curitiba"

	c, slots, intent := uc.classify(context.Background(), state)

	assert.Equal(t, model.ModeDispatch, c.Mode)
	assert.Equal(t, "clima", intent)
	assert.Equal(t, map[string]string{"cidade": "Curitiba"}, slots)
}

func TestClassifyMergesSlotsNewWins(t *testing.T) {
	raw := `{"mode": "clarify", "intent": "happy_birthday", "confidence": 0.8,
		"missing_slots": ["data"], "extracted_slots": {"nome": "Maria"}}`
	uc := newTestUseCase(&scriptedLLM{responses: []string{raw}}, nil)

	state := model.NewConversationState("s1")
	state.Slots = map[string]string{"nome": "João", "data": "15/03"}
	state.UserInput = "na verdade é pra Maria"

	_, slots, _ := uc.classify(context.Background(), state)

	assert.Equal(t, "Maria", slots["nome"])
	assert.Equal(t, "15/03", slots["data"])
}

func TestClassifyKeepsPersistentIntentWhenNull(t *testing.T) {
	raw := `{"mode": "small_talk", "confidence": 0.7}`
	uc := newTestUseCase(&scriptedLLM{responses: []string{raw}}, nil)

	state := model.NewConversationState("s1")
	state.CurrentIntent = "lembrete"
	state.UserInput = "hmm deixa eu pensar"

	_, _, intent := uc.classify(context.Background(), state)

	assert.Equal(t, "lembrete", intent)
}

func TestApplyGuards(t *testing.T) {
	conf := func(v float64) *float64 { return &v }

	tests := []struct {
		name       string
		in         classifierDecision
		wantMode   model.RouteMode
		wantIntent string
	}{
		{
			name:     "unknown mode downgrades",
			in:       classifierDecision{Mode: "banana", Intent: "clima", Confidence: conf(0.9)},
			wantMode: model.ModeSmallTalk,
		},
		{
			name:     "clarify without intent downgrades",
			in:       classifierDecision{Mode: "clarify", MissingSlots: []string{"cidade"}, Confidence: conf(0.9)},
			wantMode: model.ModeSmallTalk,
		},
		{
			name:     "clarify without missing slots downgrades",
			in:       classifierDecision{Mode: "clarify", Intent: "clima", Confidence: conf(0.9)},
			wantMode: model.ModeSmallTalk,
		},
		{
			name:     "dispatch without intent downgrades",
			in:       classifierDecision{Mode: "dispatch", Confidence: conf(0.9)},
			wantMode: model.ModeSmallTalk,
		},
		{
			name:     "self_serve without intent downgrades",
			in:       classifierDecision{Mode: "self_serve", Confidence: conf(0.9)},
			wantMode: model.ModeSmallTalk,
		},
		{
			name:       "valid clarify passes",
			in:         classifierDecision{Mode: "clarify", Intent: "clima", MissingSlots: []string{"cidade"}, Confidence: conf(0.8)},
			wantMode:   model.ModeClarify,
			wantIntent: "clima",
		},
		{
			name:       "valid dispatch passes",
			in:         classifierDecision{Mode: "dispatch", Intent: "clima", Confidence: conf(0.95)},
			wantMode:   model.ModeDispatch,
			wantIntent: "clima",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := applyGuards(tt.in)
			assert.Equal(t, tt.wantMode, got.Mode)
			assert.Equal(t, tt.wantIntent, got.Intent)
		})
	}
}

func TestApplyGuardsClampsConfidence(t *testing.T) {
	high := 1.7
	low := -0.3

	assert.Equal(t, 1.0, applyGuards(classifierDecision{Mode: "small_talk", Confidence: &high}).Confidence)
	assert.Equal(t, 0.0, applyGuards(classifierDecision{Mode: "small_talk", Confidence: &low}).Confidence)
	assert.Equal(t, 0.5, applyGuards(classifierDecision{Mode: "small_talk"}).Confidence)
}

func TestApplyGuardsNormalizesNilCollections(t *testing.T) {
	got := applyGuards(classifierDecision{Mode: "small_talk"})

	require.NotNil(t, got.MissingSlots)
	require.NotNil(t, got.CandidateAgents)
	require.NotNil(t, got.ExtractedSlots)
}

func TestMergeSlots(t *testing.T) {
	base := map[string]string{"a": "1", "b": "2"}

	merged := mergeSlots(base, map[string]string{"b": "3", "c": "4"})

	assert.Equal(t, map[string]string{"a": "1", "b": "3", "c": "4"}, merged)
	assert.Equal(t, "2", base["b"], "input map must not be mutated")

	again := mergeSlots(merged, map[string]string{"b": "3", "c": "4"})
	assert.Equal(t, merged, again, "merge is idempotent for equal extractions")
}
