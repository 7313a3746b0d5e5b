package repository

import (
	"context"
	"errors"

	"kenneltrack/internal/domain/model"
)

var ErrDogNotFound = errors.New("dog not found")

type DogRepository interface {
	GetAll(ctx context.Context, kennelID int64) ([]model.Dog, error)
	FindByName(ctx context.Context, kennelID int64, name string) (*model.Dog, error)
	FindByID(ctx context.Context, kennelID int64, dogID int64) (*model.Dog, error)
	Create(ctx context.Context, dog *model.Dog) error
	Delete(ctx context.Context, kennelID int64, dogID int64) error
}
