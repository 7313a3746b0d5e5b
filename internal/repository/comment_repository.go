package repository

import (
	"context"
	"errors"

	"kenneltrack/internal/domain/model"
)

var ErrCommentNotFound = errors.New("comment not found")

type CommentRepository interface {
	GetAllForActivity(ctx context.Context, activityID int64) ([]model.Comment, error)
	Create(ctx context.Context, comment *model.Comment) error
	Update(ctx context.Context, comment *model.Comment) error
	Delete(ctx context.Context, commentID int64) error
}
