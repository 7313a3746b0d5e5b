package usecase

import (
	"context"
	"errors"

	"kenneltrack/internal/domain/model"
	"kenneltrack/internal/repository"
)

var ErrCommentNotFound = errors.New("comment not found")

type CommentUsecase struct {
	comments repository.CommentRepository
}

func NewCommentUsecase(comments repository.CommentRepository) *CommentUsecase {
	return &CommentUsecase{comments: comments}
}

func (u *CommentUsecase) ListForActivity(ctx context.Context, activityID int64) ([]model.Comment, error) {
	return u.comments.GetAllForActivity(ctx, activityID)
}

func (u *CommentUsecase) Create(ctx context.Context, activityID, userID int64, body string) (*model.Comment, error) {
	comment := &model.Comment{
		ActivityID: activityID,
		UserID:     userID,
		Comment:    body,
	}
	if err := u.comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (u *CommentUsecase) Update(ctx context.Context, commentID int64, body string) error {
	err := u.comments.Update(ctx, &model.Comment{ID: commentID, Comment: body})
	if errors.Is(err, repository.ErrCommentNotFound) {
		return ErrCommentNotFound
	}
	return err
}

func (u *CommentUsecase) Delete(ctx context.Context, commentID int64) error {
	err := u.comments.Delete(ctx, commentID)
	if errors.Is(err, repository.ErrCommentNotFound) {
		return ErrCommentNotFound
	}
	return err
}
