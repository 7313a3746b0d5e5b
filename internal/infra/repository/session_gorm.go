package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kenneltrack/internal/domain/model"
	domainrepo "kenneltrack/internal/repository"
)

type sessionGormRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewSessionGormRepository(db *gorm.DB) domainrepo.SessionRepository {
	return &sessionGormRepository{db: db, now: time.Now}
}

// NewSessionGormRepositoryWithClock injects the clock so tests can backdate
// expiry checks.
func NewSessionGormRepositoryWithClock(db *gorm.DB, now func() time.Time) domainrepo.SessionRepository {
	return &sessionGormRepository{db: db, now: now}
}

func (r *sessionGormRepository) Create(ctx context.Context, userID int64, rawToken string, ttl time.Duration) error {
	row := &model.RefreshToken{
		ID:                 uuid.NewString(),
		UserID:             userID,
		HashedRefreshToken: domainrepo.HashRefreshToken(rawToken),
		ExpiresOn:          r.now().Add(ttl),
	}
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *sessionGormRepository) Validate(ctx context.Context, userID int64, rawToken string) (bool, error) {
	var row model.RefreshToken

	err := r.db.WithContext(ctx).
		Where("user_id = ? AND hashed_refresh_token = ?", userID, domainrepo.HashRefreshToken(rawToken)).
		First(&row).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}

	if row.ExpiresOn.Before(r.now()) {
		return false, nil
	}
	return true, nil
}

// Revoke deletes the row whose hash matches. Deleting a hash with no row is
// not an error.
func (r *sessionGormRepository) Revoke(ctx context.Context, rawToken string) error {
	return r.db.WithContext(ctx).
		Where("hashed_refresh_token = ?", domainrepo.HashRefreshToken(rawToken)).
		Delete(&model.RefreshToken{}).Error
}

func (r *sessionGormRepository) RevokeAllForUser(ctx context.Context, userID int64) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.RefreshToken{}).Error
}
