package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/aliskhannn/trivia-bot/internal/domain/entities"
)

// UserService keeps the player registry up to date. Players seen since the
// process started are remembered with their chat, so repeated updates from the
// same chat do not reach the database.
type UserService struct {
	repository UserRepository

	mu    sync.Mutex
	known map[int64]int64 // user id -> chat id
}

func NewUserService(repository UserRepository) *UserService {
	return &UserService{
		repository: repository,
		known:      make(map[int64]int64),
	}
}

// EnsureUser registers the player on first contact and records a chat change.
func (s *UserService) EnsureUser(ctx context.Context, userID, chatID int64) error {
	s.mu.Lock()
	knownChat, seen := s.known[userID]
	s.mu.Unlock()
	if seen && knownChat == chatID {
		return nil
	}

	user := entities.NewUser(userID, chatID)

	if !seen {
		exists, err := s.repository.UserExists(ctx, user.ID)
		if err != nil {
			return fmt.Errorf("check user %d: %w", userID, err)
		}
		if exists {
			s.remember(userID, chatID)
			return nil
		}
	}

	if err := s.repository.SaveUser(ctx, user); err != nil {
		return fmt.Errorf("save user %d: %w", userID, err)
	}
	s.remember(userID, chatID)

	return nil
}

func (s *UserService) remember(userID, chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.known[userID] = chatID
}
