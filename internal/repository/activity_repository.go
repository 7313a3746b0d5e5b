package repository

import (
	"context"

	"kenneltrack/internal/domain/model"
)

type ActivityRepository interface {
	GetAll(ctx context.Context, kennelID int64) ([]model.Activity, error)
	Create(ctx context.Context, activity *model.Activity) error
}
