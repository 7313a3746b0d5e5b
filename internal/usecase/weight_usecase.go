package usecase

import (
	"context"
	"errors"
	"time"

	"kenneltrack/internal/domain/model"
	"kenneltrack/internal/repository"
)

type WeightUsecase struct {
	weights repository.WeightRepository
	dogs    repository.DogRepository
}

func NewWeightUsecase(weights repository.WeightRepository, dogs repository.DogRepository) *WeightUsecase {
	return &WeightUsecase{weights: weights, dogs: dogs}
}

func (u *WeightUsecase) ListForDog(ctx context.Context, dogID int64) ([]model.DogWeight, error) {
	return u.weights.GetAllForDog(ctx, dogID)
}

// Create records a weight entry, deriving the dog's age at entry date from
// its date of birth.
func (u *WeightUsecase) Create(ctx context.Context, kennelID int64, dogID int64, date time.Time, weight float64) (*model.DogWeight, error) {
	dog, err := u.dogs.FindByID(ctx, kennelID, dogID)
	if err != nil {
		if errors.Is(err, repository.ErrDogNotFound) {
			return nil, ErrDogNotFound
		}
		return nil, err
	}

	age, err := dog.Age(date)
	if err != nil {
		return nil, err
	}

	entry := &model.DogWeight{
		Date:   date,
		DogID:  dog.ID,
		Weight: weight,
		Age:    age,
	}
	if err := u.weights.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}
