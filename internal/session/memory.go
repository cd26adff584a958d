package session

import (
	"sync"

	"github.com/google/uuid"

	"a2a-orchestrator/internal/model"
)

// memoryStore is the unbounded in-memory store. Sessions live until
// deleted explicitly or the process exits.
type memoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*model.ConversationState
}

// NewMemory creates an unbounded in-memory session store.
func NewMemory() Store {
	return &memoryStore{
		sessions: make(map[string]*model.ConversationState),
	}
}

func (s *memoryStore) GetOrCreate(sessionID string) *model.ConversationState {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sessionID != "" {
		if state, ok := s.sessions[sessionID]; ok {
			return state.Clone()
		}
	}

	sid := sessionID
	if sid == "" {
		sid = uuid.NewString()
	}

	state := model.NewConversationState(sid)
	s.sessions[sid] = state
	return state.Clone()
}

func (s *memoryStore) Save(state *model.ConversationState) {
	if state == nil || state.SessionID == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[state.SessionID] = state.Clone()
}

func (s *memoryStore) Delete(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}

func (s *memoryStore) List() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.sessions))
	for id := range s.sessions {
		ids = append(ids, id)
	}
	return ids
}
