package repository

import (
	"context"
	"errors"

	"kenneltrack/internal/domain/model"
)

var ErrSportNotFound = errors.New("sport not found")

type SportRepository interface {
	GetAll(ctx context.Context) ([]model.Sport, error)
	FindByName(ctx context.Context, name string) (*model.Sport, error)
}
