package session

import (
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"a2a-orchestrator/internal/model"
)

// lruStore bounds session memory with a capacity + TTL eviction policy.
// Evicted sessions simply restart on the next turn with empty state.
type lruStore struct {
	cache *expirable.LRU[string, *model.ConversationState]
}

// NewLRU creates a bounded session store holding at most capacity
// sessions, each expiring ttl after its last write.
func NewLRU(capacity int, ttl time.Duration) Store {
	if capacity <= 0 {
		capacity = 1000
	}
	return &lruStore{
		cache: expirable.NewLRU[string, *model.ConversationState](capacity, nil, ttl),
	}
}

func (s *lruStore) GetOrCreate(sessionID string) *model.ConversationState {
	if sessionID != "" {
		if state, ok := s.cache.Get(sessionID); ok {
			return state.Clone()
		}
	}

	sid := sessionID
	if sid == "" {
		sid = uuid.NewString()
	}

	state := model.NewConversationState(sid)
	s.cache.Add(sid, state)
	return state.Clone()
}

func (s *lruStore) Save(state *model.ConversationState) {
	if state == nil || state.SessionID == "" {
		return
	}
	s.cache.Add(state.SessionID, state.Clone())
}

func (s *lruStore) Delete(sessionID string) {
	s.cache.Remove(sessionID)
}

func (s *lruStore) List() []string {
	return s.cache.Keys()
}
