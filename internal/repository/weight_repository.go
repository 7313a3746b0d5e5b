package repository

import (
	"context"

	"kenneltrack/internal/domain/model"
)

type WeightRepository interface {
	GetAllForDog(ctx context.Context, dogID int64) ([]model.DogWeight, error)
	Create(ctx context.Context, entry *model.DogWeight) error
}
