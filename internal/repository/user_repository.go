package repository

import (
	"context"
	"errors"

	"kenneltrack/internal/domain/model"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

type UserRepository interface {
	// Create inserts a new user. Returns ErrUserAlreadyExists when the
	// username is already taken (unique constraint on username).
	Create(ctx context.Context, user *model.User) error
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	// UpdatePasswordHash replaces the stored hash for the given user.
	UpdatePasswordHash(ctx context.Context, userID int64, passwordHash string) error
}
