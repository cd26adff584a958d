package session_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"a2a-orchestrator/internal/model"
	"a2a-orchestrator/internal/session"
)

func stores(t *testing.T) map[string]session.Store {
	t.Helper()
	return map[string]session.Store{
		"memory": session.NewMemory(),
		"lru":    session.NewLRU(100, time.Minute),
	}
}

func TestGetOrCreate(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			state := store.GetOrCreate("")
			require.NotEmpty(t, state.SessionID, "empty id must generate one")
			assert.Empty(t, state.Messages)
			assert.Empty(t, state.Slots)

			again := store.GetOrCreate(state.SessionID)
			assert.Equal(t, state.SessionID, again.SessionID)

			named := store.GetOrCreate("my-session")
			assert.Equal(t, "my-session", named.SessionID)
		})
	}
}

func TestSaveReturnsCopies(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			state := store.GetOrCreate("s1")
			state.Slots["cidade"] = "Curitiba"
			state.Messages = append(state.Messages, model.Message{Role: model.RoleUser, Content: "oi"})
			store.Save(state)

			// Mutating the handed-out copy must not leak into the store.
			state.Slots["cidade"] = "mutated"
			state.Messages[0].Content = "mutated"

			reloaded := store.GetOrCreate("s1")
			assert.Equal(t, "Curitiba", reloaded.Slots["cidade"])
			assert.Equal(t, "oi", reloaded.Messages[0].Content)

			// And mutating the reloaded copy must not affect later reads.
			reloaded.Slots["cidade"] = "again"
			fresh := store.GetOrCreate("s1")
			assert.Equal(t, "Curitiba", fresh.Slots["cidade"])
		})
	}
}

func TestDeleteAndList(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			store.Save(model.NewConversationState("a"))
			store.Save(model.NewConversationState("b"))

			assert.ElementsMatch(t, []string{"a", "b"}, store.List())

			store.Delete("a")
			assert.ElementsMatch(t, []string{"b"}, store.List())

			// Deleting an unknown id is a no-op.
			store.Delete("does-not-exist")
			assert.ElementsMatch(t, []string{"b"}, store.List())
		})
	}
}

func TestLRUCapacityEviction(t *testing.T) {
	store := session.NewLRU(2, time.Minute)

	store.Save(model.NewConversationState("a"))
	store.Save(model.NewConversationState("b"))
	store.Save(model.NewConversationState("c"))

	ids := store.List()
	assert.Len(t, ids, 2)
	assert.NotContains(t, ids, "a", "oldest session should be evicted")
}

func TestCloneDeepCopiesNestedStructs(t *testing.T) {
	state := model.NewConversationState("s")
	state.Classification = &model.Classification{
		Mode:           model.ModeClarify,
		Intent:         "clima",
		MissingSlots:   []string{"cidade"},
		ExtractedSlots: map[string]string{"x": "1"},
	}
	state.NodeResult = &model.NodeResult{
		SourceNode:     "clarify",
		Data:           map[string]any{"agent_id": "agent-clima"},
		SlotsCollected: map[string]string{"x": "1"},
	}

	cp := state.Clone()
	cp.Classification.MissingSlots[0] = "mutated"
	cp.Classification.ExtractedSlots["x"] = "mutated"
	cp.NodeResult.Data["agent_id"] = "mutated"
	cp.NodeResult.SlotsCollected["x"] = "mutated"

	assert.Equal(t, "cidade", state.Classification.MissingSlots[0])
	assert.Equal(t, "1", state.Classification.ExtractedSlots["x"])
	assert.Equal(t, "agent-clima", state.NodeResult.Data["agent_id"])
	assert.Equal(t, "1", state.NodeResult.SlotsCollected["x"])
}
