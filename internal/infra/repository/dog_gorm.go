package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"kenneltrack/internal/domain/model"
	domainrepo "kenneltrack/internal/repository"
)

type dogGormRepository struct {
	db *gorm.DB
}

func NewDogGormRepository(db *gorm.DB) domainrepo.DogRepository {
	return &dogGormRepository{db: db}
}

func (r *dogGormRepository) GetAll(ctx context.Context, kennelID int64) ([]model.Dog, error) {
	var dogs []model.Dog
	if err := r.db.WithContext(ctx).
		Where("kennel_id = ?", kennelID).
		Order("name").
		Find(&dogs).Error; err != nil {
		return nil, err
	}
	return dogs, nil
}

func (r *dogGormRepository) FindByName(ctx context.Context, kennelID int64, name string) (*model.Dog, error) {
	var d model.Dog

	err := r.db.WithContext(ctx).
		Where("kennel_id = ? AND name = ?", kennelID, name).
		First(&d).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainrepo.ErrDogNotFound
		}
		return nil, err
	}

	return &d, nil
}

func (r *dogGormRepository) FindByID(ctx context.Context, kennelID int64, dogID int64) (*model.Dog, error) {
	var d model.Dog

	err := r.db.WithContext(ctx).
		Where("kennel_id = ? AND id = ?", kennelID, dogID).
		First(&d).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainrepo.ErrDogNotFound
		}
		return nil, err
	}

	return &d, nil
}

func (r *dogGormRepository) Create(ctx context.Context, dog *model.Dog) error {
	return r.db.WithContext(ctx).Create(dog).Error
}

func (r *dogGormRepository) Delete(ctx context.Context, kennelID int64, dogID int64) error {
	result := r.db.WithContext(ctx).
		Where("kennel_id = ? AND id = ?", kennelID, dogID).
		Delete(&model.Dog{})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainrepo.ErrDogNotFound
	}
	return nil
}
