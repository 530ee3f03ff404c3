package repository

import (
	"context"
	"fmt"

	"github.com/aliskhannn/trivia-bot/internal/domain/entities"
	"github.com/aliskhannn/trivia-bot/internal/infra/postgres"
)

const usersSchema = `
CREATE TABLE IF NOT EXISTS users (
    id         BIGINT PRIMARY KEY,
    chat_id    BIGINT      NOT NULL,
    is_active  BOOLEAN     NOT NULL DEFAULT TRUE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// UserRepository provides access to user data in the database.
type UserRepository struct {
	db postgres.DBTX
}

// NewUserRepository creates a new UserRepository with the provided database pool.
func NewUserRepository(db postgres.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

// EnsureSchema creates the users table if it does not exist.
func (r *UserRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, usersSchema); err != nil {
		return fmt.Errorf("create users table: %w", err)
	}
	return nil
}

// SaveUser inserts a new user into the database or updates the chat of an existing one.
// It sets IsActive and CreatedAt fields from the database.
func (r *UserRepository) SaveUser(ctx context.Context, user *entities.User) error {
	query := `
    INSERT INTO users (id, chat_id)
    VALUES ($1, $2)
    ON CONFLICT (id) DO UPDATE SET chat_id = EXCLUDED.chat_id
    RETURNING is_active, created_at
    `
	err := r.db.QueryRow(ctx, query, user.ID, user.ChatID).Scan(&user.IsActive, &user.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}

	return nil
}

// UserExists checks if a user with the given ID exists in the database.
func (r *UserRepository) UserExists(ctx context.Context, userID int64) (bool, error) {
	query := "SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)"

	var exists bool
	err := r.db.QueryRow(ctx, query, userID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check user existence: %w", err)
	}

	return exists, nil
}
