package repository

import (
	"context"
	"errors"

	"kenneltrack/internal/domain/model"
)

var ErrKennelNotFound = errors.New("kennel not found")

type KennelRepository interface {
	GetAll(ctx context.Context) ([]model.Kennel, error)
	FindByName(ctx context.Context, name string) (*model.Kennel, error)
	Create(ctx context.Context, kennel *model.Kennel) error
}
