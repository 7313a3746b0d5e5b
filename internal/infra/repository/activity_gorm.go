package repository

import (
	"context"

	"gorm.io/gorm"

	"kenneltrack/internal/domain/model"
	domainrepo "kenneltrack/internal/repository"
)

type activityGormRepository struct {
	db *gorm.DB
}

func NewActivityGormRepository(db *gorm.DB) domainrepo.ActivityRepository {
	return &activityGormRepository{db: db}
}

func (r *activityGormRepository) GetAll(ctx context.Context, kennelID int64) ([]model.Activity, error) {
	var activities []model.Activity
	if err := r.db.WithContext(ctx).
		Where("kennel_id = ?", kennelID).
		Order("timestamp DESC").
		Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *activityGormRepository) Create(ctx context.Context, activity *model.Activity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}
