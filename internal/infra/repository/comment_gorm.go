package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"kenneltrack/internal/domain/model"
	domainrepo "kenneltrack/internal/repository"
)

type commentGormRepository struct {
	db *gorm.DB
}

func NewCommentGormRepository(db *gorm.DB) domainrepo.CommentRepository {
	return &commentGormRepository{db: db}
}

func (r *commentGormRepository) GetAllForActivity(ctx context.Context, activityID int64) ([]model.Comment, error) {
	var comments []model.Comment
	if err := r.db.WithContext(ctx).
		Where("activity_id = ?", activityID).
		Order("created_at").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *commentGormRepository) Create(ctx context.Context, comment *model.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *commentGormRepository) Update(ctx context.Context, comment *model.Comment) error {
	now := time.Now()

	result := r.db.WithContext(ctx).
		Model(&model.Comment{}).
		Where("id = ?", comment.ID).
		Updates(map[string]interface{}{
			"comment":    comment.Comment,
			"updated_at": &now,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainrepo.ErrCommentNotFound
	}
	return nil
}

func (r *commentGormRepository) Delete(ctx context.Context, commentID int64) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", commentID).
		Delete(&model.Comment{})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainrepo.ErrCommentNotFound
	}
	return nil
}
