package repository

import (
	"context"

	"gorm.io/gorm"

	"kenneltrack/internal/domain/model"
	domainrepo "kenneltrack/internal/repository"
)

type weightGormRepository struct {
	db *gorm.DB
}

func NewWeightGormRepository(db *gorm.DB) domainrepo.WeightRepository {
	return &weightGormRepository{db: db}
}

func (r *weightGormRepository) GetAllForDog(ctx context.Context, dogID int64) ([]model.DogWeight, error) {
	var entries []model.DogWeight
	if err := r.db.WithContext(ctx).
		Where("dog_id = ?", dogID).
		Order("date").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *weightGormRepository) Create(ctx context.Context, entry *model.DogWeight) error {
	return r.db.WithContext(ctx).Create(entry).Error
}
