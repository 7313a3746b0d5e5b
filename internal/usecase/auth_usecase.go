package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"kenneltrack/internal/config"
	"kenneltrack/internal/domain/model"
	"kenneltrack/internal/repository"
	"kenneltrack/internal/token"
)

var (
	// 400: unknown user or wrong password, deliberately indistinguishable
	ErrInvalidCredentials = errors.New("incorrect username or password")
	// 422: registration against a taken username
	ErrAlreadyExists = errors.New("user already exists")
	// 401: signature, expiry or session validation failure
	ErrInvalidToken = errors.New("invalid token")
	// 404: token decoded but carries no identity claims
	ErrIdentityMissing = errors.New("user not found in token")
	// 404: reset-password against an unknown user
	ErrUserNotFound = errors.New("user not found")
	// 401: reset-password with a wrong old password
	ErrWrongPassword = errors.New("old password is incorrect")
)

const refreshTokenBytes = 32 // 256 bits of entropy

// TokenBundle is what a successful login or refresh hands back to the client.
type TokenBundle struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// Identity is the claims shape other services receive from Validate.
type Identity struct {
	Sub      string `json:"sub"`
	UserID   int64  `json:"user_id"`
	KennelID int64  `json:"kennel_id"`
}

// AuthUsecase orchestrates the credential and session-token lifecycle.
// It holds no mutable state beyond the injected collaborators, so it is safe
// for unbounded parallel request handling.
type AuthUsecase struct {
	cfg      config.Config
	users    repository.UserRepository
	kennels  repository.KennelRepository
	sessions repository.SessionRepository
	hasher   PasswordHasher
	verifier PasswordVerifier
	codec    *token.Codec
}

func NewAuthUsecase(
	cfg config.Config,
	users repository.UserRepository,
	kennels repository.KennelRepository,
	sessions repository.SessionRepository,
	hasher PasswordHasher,
	verifier PasswordVerifier,
	codec *token.Codec,
) *AuthUsecase {
	return &AuthUsecase{
		cfg:      cfg,
		users:    users,
		kennels:  kennels,
		sessions: sessions,
		hasher:   hasher,
		verifier: verifier,
		codec:    codec,
	}
}

func (u *AuthUsecase) accessTTL() time.Duration {
	return time.Duration(u.cfg.AccessTokenTTLMinutes) * time.Minute
}

func (u *AuthUsecase) refreshTTL() time.Duration {
	return time.Duration(u.cfg.RefreshTokenTTLDays) * 24 * time.Hour
}

// Register creates a new user under the named kennel, creating the kennel
// first when no kennel with that name exists yet.
func (u *AuthUsecase) Register(ctx context.Context, email, password, kennelName string) (int64, error) {
	kennel, err := u.kennels.FindByName(ctx, kennelName)
	if err != nil {
		if !errors.Is(err, repository.ErrKennelNotFound) {
			return 0, fmt.Errorf("resolve kennel: %w", err)
		}
		kennel = &model.Kennel{Name: kennelName}
		if err := u.kennels.Create(ctx, kennel); err != nil {
			return 0, fmt.Errorf("create kennel: %w", err)
		}
	}

	passwordHash, err := u.hasher.Hash(password)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:     email,
		PasswordHash: passwordHash,
		KennelID:     kennel.ID,
	}
	if err := u.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserAlreadyExists) {
			return 0, ErrAlreadyExists
		}
		return 0, fmt.Errorf("create user: %w", err)
	}

	return user.ID, nil
}

// Login verifies the password, mints an access token and registers a new
// refresh session. The raw refresh token is returned exactly once; only its
// hash survives server-side.
func (u *AuthUsecase) Login(ctx context.Context, email, password string) (*TokenBundle, string, error) {
	user, err := u.users.FindByUsername(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("find user: %w", err)
	}

	if !u.verifier.Verify(password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	bundle, err := u.mintAccessToken(user.Username, user.ID, user.KennelID)
	if err != nil {
		return nil, "", err
	}

	rawRefresh, err := generateRefreshToken()
	if err != nil {
		return nil, "", fmt.Errorf("generate refresh token: %w", err)
	}

	if err := u.sessions.Create(ctx, user.ID, rawRefresh, u.refreshTTL()); err != nil {
		return nil, "", fmt.Errorf("register session: %w", err)
	}

	return bundle, rawRefresh, nil
}

// Refresh mints a new access token from an access token whose expiry may have
// passed, provided its signature still verifies and the refresh session is
// live. The refresh token itself stays valid until its own expiry or logout.
func (u *AuthUsecase) Refresh(ctx context.Context, accessToken, rawRefresh string) (*TokenBundle, error) {
	claims, err := u.codec.Decode(accessToken, false)
	if err != nil {
		return nil, ErrInvalidToken
	}

	ok, err := u.sessions.Validate(ctx, claims.UserID, rawRefresh)
	if err != nil {
		return nil, fmt.Errorf("validate session: %w", err)
	}
	if !ok {
		log.Debug().Int64("user_id", claims.UserID).Msg("refresh rejected, no live session")
		return nil, ErrInvalidToken
	}

	return u.mintAccessToken(claims.Sub, claims.UserID, claims.KennelID)
}

// Validate is the stateless check other services run on every request. It
// returns the caller's identity claims or ErrInvalidToken / ErrIdentityMissing.
func (u *AuthUsecase) Validate(accessToken string) (*Identity, error) {
	claims, err := u.codec.Decode(accessToken, true)
	if err != nil {
		return nil, ErrInvalidToken
	}

	if claims.Sub == "" || claims.KennelID == 0 {
		return nil, ErrIdentityMissing
	}

	return &Identity{
		Sub:      claims.Sub,
		UserID:   claims.UserID,
		KennelID: claims.KennelID,
	}, nil
}

// Logout revokes the session tied to rawRefresh. Revoking a token that never
// existed is not an error.
func (u *AuthUsecase) Logout(ctx context.Context, rawRefresh string) error {
	if err := u.sessions.Revoke(ctx, rawRefresh); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}

// LogoutEverywhere revokes every live session of the user named by email.
func (u *AuthUsecase) LogoutEverywhere(ctx context.Context, email string) error {
	user, err := u.users.FindByUsername(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("find user: %w", err)
	}
	if err := u.sessions.RevokeAllForUser(ctx, user.ID); err != nil {
		return fmt.Errorf("revoke sessions: %w", err)
	}
	return nil
}

// ResetPassword replaces the stored hash after re-verifying the old password.
// No tokens are minted on this path.
func (u *AuthUsecase) ResetPassword(ctx context.Context, email, oldPassword, newPassword string) error {
	user, err := u.users.FindByUsername(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("find user: %w", err)
	}

	if !u.verifier.Verify(oldPassword, user.PasswordHash) {
		return ErrWrongPassword
	}

	newHash, err := u.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := u.users.UpdatePasswordHash(ctx, user.ID, newHash); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

// ListKennels feeds the registration form's kennel dropdown.
func (u *AuthUsecase) ListKennels(ctx context.Context) ([]model.Kennel, error) {
	return u.kennels.GetAll(ctx)
}

func (u *AuthUsecase) mintAccessToken(sub string, userID, kennelID int64) (*TokenBundle, error) {
	signed, expiresIn, err := u.codec.Mint(token.Claims{
		Sub:      sub,
		UserID:   userID,
		KennelID: kennelID,
	}, u.accessTTL())
	if err != nil {
		return nil, fmt.Errorf("mint access token: %w", err)
	}

	return &TokenBundle{
		AccessToken: signed,
		TokenType:   "bearer",
		ExpiresIn:   expiresIn,
	}, nil
}

func generateRefreshToken() (string, error) {
	b := make([]byte, refreshTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
