package repository

import (
	"context"
	"errors"

	"kenneltrack/internal/domain/model"
)

var ErrLocationNotFound = errors.New("location not found")

type LocationRepository interface {
	GetAll(ctx context.Context, kennelID int64) ([]model.Location, error)
	Create(ctx context.Context, location *model.Location) error
	Update(ctx context.Context, location *model.Location) error
	Delete(ctx context.Context, kennelID int64, locationID int64) error
}
