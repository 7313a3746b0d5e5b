package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"kenneltrack/internal/domain/model"
	"kenneltrack/internal/repository"
)

var (
	ErrActivityNeedsMetric = errors.New("at least one of speed or pace must be provided")
	ErrUnknownSport        = errors.New("unknown sport")
)

// Sports shown with a pace rather than a speed.
var paceSports = map[string]struct{}{
	"canicross": {},
	"canihike":  {},
}

type CreateActivityInput struct {
	Timestamp time.Time
	RunnerID  int64
	Sport     string
	Location  string
	Distance  float64
	Workout   bool
	Notes     string
	Speed     *float64
	Pace      *string
}

type ActivityUsecase struct {
	activities repository.ActivityRepository
	sports     repository.SportRepository
}

func NewActivityUsecase(activities repository.ActivityRepository, sports repository.SportRepository) *ActivityUsecase {
	return &ActivityUsecase{activities: activities, sports: sports}
}

func (u *ActivityUsecase) List(ctx context.Context, kennelID int64) ([]model.Activity, error) {
	return u.activities.GetAll(ctx, kennelID)
}

// Create resolves the sport, checks that at least one metric is present and
// derives the pace from the speed for pace-displayed sports.
func (u *ActivityUsecase) Create(ctx context.Context, kennelID int64, in CreateActivityInput) (*model.Activity, error) {
	if in.Speed == nil && in.Pace == nil {
		return nil, ErrActivityNeedsMetric
	}

	sport, err := u.sports.FindByName(ctx, in.Sport)
	if err != nil {
		if errors.Is(err, repository.ErrSportNotFound) {
			return nil, ErrUnknownSport
		}
		return nil, fmt.Errorf("resolve sport: %w", err)
	}

	activity := &model.Activity{
		Timestamp: in.Timestamp,
		RunnerID:  in.RunnerID,
		SportID:   sport.ID,
		KennelID:  kennelID,
		Location:  in.Location,
		Distance:  in.Distance,
		Workout:   in.Workout,
		Notes:     in.Notes,
		Speed:     in.Speed,
		Pace:      in.Pace,
	}

	if IsPaceSport(sport.Name) && in.Speed != nil {
		pace, err := PaceFromSpeed(*in.Speed)
		if err != nil {
			return nil, err
		}
		activity.Pace = &pace
	}

	if err := u.activities.Create(ctx, activity); err != nil {
		return nil, err
	}
	return activity, nil
}

// PaceFromSpeed converts a speed in km/h to a "MM:SS" min/km pace.
func PaceFromSpeed(speed float64) (string, error) {
	if speed <= 0 {
		return "", fmt.Errorf("speed must be positive, got %v", speed)
	}
	secPerKm := int(3600 / speed)
	return fmt.Sprintf("%02d:%02d", secPerKm/60, secPerKm%60), nil
}

// IsPaceSport reports whether the sport is displayed by pace.
func IsPaceSport(name string) bool {
	_, ok := paceSports[strings.ToLower(name)]
	return ok
}
