package engine

import "sync"

// ConversationStates remembers, per session, the block waiting for the user.
// Entries live as long as the connection; nothing is persisted.
type ConversationStates struct {
	mu     sync.RWMutex
	blocks map[string]string
}

func NewConversationStates() *ConversationStates {
	return &ConversationStates{blocks: make(map[string]string)}
}

func (s *ConversationStates) CurrentBlock(sessionID string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.blocks[sessionID]
	return id, ok
}

func (s *ConversationStates) SetCurrentBlock(sessionID, blockID string) {
	if sessionID == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blocks[sessionID] = blockID
}

func (s *ConversationStates) Forget(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.blocks, sessionID)
}

func (s *ConversationStates) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.blocks)
}
