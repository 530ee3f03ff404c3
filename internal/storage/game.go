package storage

import (
	"sync"

	"github.com/aliskhannn/trivia-bot/internal/service"
)

// GameStorage keeps one GameSession per chat.
// The map is guarded; the sessions themselves are not and must be mutated
// by a single goroutine.
type GameStorage struct {
	mu       sync.RWMutex
	sessions map[int64]*service.GameSession
	newGame  func() *service.GameSession
}

// NewGameStorage creates a GameStorage; newGame builds a session for an unseen chat.
func NewGameStorage(newGame func() *service.GameSession) *GameStorage {
	return &GameStorage{
		sessions: make(map[int64]*service.GameSession),
		newGame:  newGame,
	}
}

// GetOrCreate returns the chat's session, creating an idle one if needed.
func (s *GameStorage) GetOrCreate(chatID int64) *service.GameSession {
	s.mu.RLock()
	g, ok := s.sessions[chatID]
	s.mu.RUnlock()
	if ok {
		return g
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if g, ok = s.sessions[chatID]; ok {
		return g
	}
	g = s.newGame()
	s.sessions[chatID] = g
	return g
}

// Get retrieves the chat's session.
func (s *GameStorage) Get(chatID int64) (*service.GameSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.sessions[chatID]
	return g, ok
}

// Delete removes the chat's session.
func (s *GameStorage) Delete(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, chatID)
}

// Len returns the number of tracked chats.
func (s *GameStorage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
