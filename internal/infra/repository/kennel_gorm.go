package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"kenneltrack/internal/domain/model"
	domainrepo "kenneltrack/internal/repository"
)

type kennelGormRepository struct {
	db *gorm.DB
}

func NewKennelGormRepository(db *gorm.DB) domainrepo.KennelRepository {
	return &kennelGormRepository{db: db}
}

func (r *kennelGormRepository) GetAll(ctx context.Context) ([]model.Kennel, error) {
	var kennels []model.Kennel
	if err := r.db.WithContext(ctx).Order("name").Find(&kennels).Error; err != nil {
		return nil, err
	}
	return kennels, nil
}

func (r *kennelGormRepository) FindByName(ctx context.Context, name string) (*model.Kennel, error) {
	var k model.Kennel

	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&k).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainrepo.ErrKennelNotFound
		}
		return nil, err
	}

	return &k, nil
}

// Create inserts the kennel. A concurrent registration against the same new
// kennel name is resolved by the unique constraint: on conflict the existing
// row wins and its id is loaded back.
func (r *kennelGormRepository) Create(ctx context.Context, kennel *model.Kennel) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).
		Create(kennel).Error
	if err != nil {
		return err
	}

	if kennel.ID == 0 {
		existing, err := r.FindByName(ctx, kennel.Name)
		if err != nil {
			return err
		}
		kennel.ID = existing.ID
	}
	return nil
}
