package usecase

import (
	"context"
	"errors"

	"kenneltrack/internal/domain/model"
	"kenneltrack/internal/repository"
)

var (
	ErrSportNotFound    = errors.New("sport not found")
	ErrLocationNotFound = errors.New("location not found")
)

// CatalogUsecase serves the small lookup resources: runners, sports and
// training locations.
type CatalogUsecase struct {
	runners   repository.RunnerRepository
	sports    repository.SportRepository
	locations repository.LocationRepository
}

func NewCatalogUsecase(
	runners repository.RunnerRepository,
	sports repository.SportRepository,
	locations repository.LocationRepository,
) *CatalogUsecase {
	return &CatalogUsecase{runners: runners, sports: sports, locations: locations}
}

func (u *CatalogUsecase) ListRunners(ctx context.Context, kennelID int64) ([]model.Runner, error) {
	return u.runners.GetAll(ctx, kennelID)
}

func (u *CatalogUsecase) CreateRunner(ctx context.Context, kennelID int64, name string) (*model.Runner, error) {
	runner := &model.Runner{Name: name, KennelID: kennelID}
	if err := u.runners.Create(ctx, runner); err != nil {
		return nil, err
	}
	return runner, nil
}

func (u *CatalogUsecase) ListSports(ctx context.Context) ([]model.Sport, error) {
	return u.sports.GetAll(ctx)
}

func (u *CatalogUsecase) GetSport(ctx context.Context, name string) (*model.Sport, error) {
	sport, err := u.sports.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrSportNotFound) {
			return nil, ErrSportNotFound
		}
		return nil, err
	}
	return sport, nil
}

func (u *CatalogUsecase) ListLocations(ctx context.Context, kennelID int64) ([]model.Location, error) {
	return u.locations.GetAll(ctx, kennelID)
}

func (u *CatalogUsecase) CreateLocation(ctx context.Context, kennelID int64, name string) (*model.Location, error) {
	location := &model.Location{Name: name, KennelID: kennelID}
	if err := u.locations.Create(ctx, location); err != nil {
		return nil, err
	}
	return location, nil
}

func (u *CatalogUsecase) UpdateLocation(ctx context.Context, kennelID int64, locationID int64, name string) error {
	err := u.locations.Update(ctx, &model.Location{ID: locationID, Name: name, KennelID: kennelID})
	if errors.Is(err, repository.ErrLocationNotFound) {
		return ErrLocationNotFound
	}
	return err
}

func (u *CatalogUsecase) DeleteLocation(ctx context.Context, kennelID int64, locationID int64) error {
	err := u.locations.Delete(ctx, kennelID, locationID)
	if errors.Is(err, repository.ErrLocationNotFound) {
		return ErrLocationNotFound
	}
	return err
}
