package service

import (
	"context"

	"github.com/aliskhannn/trivia-bot/internal/domain/entities"
	"github.com/aliskhannn/trivia-bot/internal/opentdb"
)

// QuestionSource supplies raw question batches. Implemented by *opentdb.Client.
type QuestionSource interface {
	FetchQuestions(ctx context.Context, q opentdb.Query) (*opentdb.Response, error)
}

type UserRepository interface {
	SaveUser(ctx context.Context, user *entities.User) error
	UserExists(ctx context.Context, userID int64) (bool, error)
}
