package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"kenneltrack/internal/domain/model"
	domainrepo "kenneltrack/internal/repository"
)

type runnerGormRepository struct {
	db *gorm.DB
}

func NewRunnerGormRepository(db *gorm.DB) domainrepo.RunnerRepository {
	return &runnerGormRepository{db: db}
}

func (r *runnerGormRepository) GetAll(ctx context.Context, kennelID int64) ([]model.Runner, error) {
	var runners []model.Runner
	if err := r.db.WithContext(ctx).
		Where("kennel_id = ?", kennelID).
		Order("name").
		Find(&runners).Error; err != nil {
		return nil, err
	}
	return runners, nil
}

func (r *runnerGormRepository) Create(ctx context.Context, runner *model.Runner) error {
	return r.db.WithContext(ctx).Create(runner).Error
}

type sportGormRepository struct {
	db *gorm.DB
}

func NewSportGormRepository(db *gorm.DB) domainrepo.SportRepository {
	return &sportGormRepository{db: db}
}

func (r *sportGormRepository) GetAll(ctx context.Context) ([]model.Sport, error) {
	var sports []model.Sport
	if err := r.db.WithContext(ctx).Order("name").Find(&sports).Error; err != nil {
		return nil, err
	}
	return sports, nil
}

func (r *sportGormRepository) FindByName(ctx context.Context, name string) (*model.Sport, error) {
	var s model.Sport

	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&s).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainrepo.ErrSportNotFound
		}
		return nil, err
	}

	return &s, nil
}

type locationGormRepository struct {
	db *gorm.DB
}

func NewLocationGormRepository(db *gorm.DB) domainrepo.LocationRepository {
	return &locationGormRepository{db: db}
}

func (r *locationGormRepository) GetAll(ctx context.Context, kennelID int64) ([]model.Location, error) {
	var locations []model.Location
	if err := r.db.WithContext(ctx).
		Where("kennel_id = ?", kennelID).
		Order("name").
		Find(&locations).Error; err != nil {
		return nil, err
	}
	return locations, nil
}

func (r *locationGormRepository) Create(ctx context.Context, location *model.Location) error {
	return r.db.WithContext(ctx).Create(location).Error
}

func (r *locationGormRepository) Update(ctx context.Context, location *model.Location) error {
	result := r.db.WithContext(ctx).
		Model(&model.Location{}).
		Where("id = ? AND kennel_id = ?", location.ID, location.KennelID).
		Update("name", location.Name)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainrepo.ErrLocationNotFound
	}
	return nil
}

func (r *locationGormRepository) Delete(ctx context.Context, kennelID int64, locationID int64) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND kennel_id = ?", locationID, kennelID).
		Delete(&model.Location{})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainrepo.ErrLocationNotFound
	}
	return nil
}
