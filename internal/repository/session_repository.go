package repository

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// SessionRepository owns the refresh_tokens table. Callers hand over the raw
// refresh token; implementations store and compare its hash only.
type SessionRepository interface {
	// Create stores a new session for userID expiring after ttl.
	Create(ctx context.Context, userID int64, rawToken string, ttl time.Duration) error
	// Validate reports whether an unexpired session exists for
	// (userID, rawToken). An expired or missing row is false, not an error.
	Validate(ctx context.Context, userID int64, rawToken string) (bool, error)
	// Revoke deletes the session matching rawToken. Idempotent.
	Revoke(ctx context.Context, rawToken string) error
	// RevokeAllForUser deletes every session of the given user.
	RevokeAllForUser(ctx context.Context, userID int64) error
}

// HashRefreshToken is the at-rest form of a refresh token: the hex encoded
// sha256 of the raw value.
func HashRefreshToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
