package repository

import (
	"context"

	"kenneltrack/internal/domain/model"
)

type RunnerRepository interface {
	GetAll(ctx context.Context, kennelID int64) ([]model.Runner, error)
	Create(ctx context.Context, runner *model.Runner) error
}
