package usecase

import (
	"context"
	"errors"
	"time"

	"kenneltrack/internal/domain/model"
	"kenneltrack/internal/repository"
)

var ErrDogNotFound = errors.New("dog not found")

type DogUsecase struct {
	dogs repository.DogRepository
}

func NewDogUsecase(dogs repository.DogRepository) *DogUsecase {
	return &DogUsecase{dogs: dogs}
}

func (u *DogUsecase) List(ctx context.Context, kennelID int64) ([]model.Dog, error) {
	return u.dogs.GetAll(ctx, kennelID)
}

func (u *DogUsecase) GetByName(ctx context.Context, kennelID int64, name string) (*model.Dog, error) {
	dog, err := u.dogs.FindByName(ctx, kennelID, name)
	if err != nil {
		if errors.Is(err, repository.ErrDogNotFound) {
			return nil, ErrDogNotFound
		}
		return nil, err
	}
	return dog, nil
}

func (u *DogUsecase) Create(ctx context.Context, kennelID int64, name, breed string, dateOfBirth time.Time, imageURL string) (*model.Dog, error) {
	dog := &model.Dog{
		Name:        name,
		Breed:       breed,
		DateOfBirth: dateOfBirth,
		KennelID:    kennelID,
		ImageURL:    imageURL,
	}
	if err := u.dogs.Create(ctx, dog); err != nil {
		return nil, err
	}
	return dog, nil
}

func (u *DogUsecase) Delete(ctx context.Context, kennelID int64, dogID int64) error {
	err := u.dogs.Delete(ctx, kennelID, dogID)
	if errors.Is(err, repository.ErrDogNotFound) {
		return ErrDogNotFound
	}
	return err
}
