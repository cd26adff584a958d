package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"a2a-orchestrator/internal/model"
	"a2a-orchestrator/internal/registry"
)

func TestLookup(t *testing.T) {
	r := registry.Default()

	card, ok := r.Lookup("clima")
	require.True(t, ok)
	assert.Equal(t, "agent-clima", card.ID)
	assert.Equal(t, []string{"cidade"}, card.RequiredSlots)

	_, ok = r.Lookup("nonexistent_intent")
	assert.False(t, ok, "unknown intent must be absent, never a default")

	_, ok = r.Lookup("")
	assert.False(t, ok)
}

func TestCatalogOrder(t *testing.T) {
	r := registry.New([]model.AgentCard{
		{Intent: "b", ID: "agent-b"},
		{Intent: "a", ID: "agent-a"},
		{Intent: "c", ID: "agent-c"},
	})

	catalog := r.Catalog()
	require.Len(t, catalog, 3)
	assert.Equal(t, "b", catalog[0].Intent)
	assert.Equal(t, "a", catalog[1].Intent)
	assert.Equal(t, "c", catalog[2].Intent)
}

func TestDuplicateIntentKeepsFirst(t *testing.T) {
	r := registry.New([]model.AgentCard{
		{Intent: "a", ID: "agent-first"},
		{Intent: "a", ID: "agent-second"},
	})

	card, ok := r.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, "agent-first", card.ID)
	assert.Len(t, r.Catalog(), 1)
}
