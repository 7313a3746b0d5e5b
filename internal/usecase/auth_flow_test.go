package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"kenneltrack/internal/domain/model"
	"kenneltrack/internal/repository"
	"kenneltrack/internal/token"
)

// In-memory fakes exercising the whole lifecycle with the real hasher and
// codec, no store mocks involved.

type fakeUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[string]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1, users: map[string]*model.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[user.Username]; ok {
		return repository.ErrUserAlreadyExists
	}
	user.ID = f.nextID
	f.nextID++
	clone := *user
	f.users[user.Username] = &clone
	return nil
}

func (f *fakeUserRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[username]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (f *fakeUserRepo) UpdatePasswordHash(_ context.Context, userID int64, passwordHash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.ID == userID {
			u.PasswordHash = passwordHash
			return nil
		}
	}
	return repository.ErrUserNotFound
}

type fakeKennelRepo struct {
	mu      sync.Mutex
	nextID  int64
	kennels map[string]*model.Kennel
}

func newFakeKennelRepo() *fakeKennelRepo {
	return &fakeKennelRepo{nextID: 1, kennels: map[string]*model.Kennel{}}
}

func (f *fakeKennelRepo) GetAll(_ context.Context) ([]model.Kennel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]model.Kennel, 0, len(f.kennels))
	for _, k := range f.kennels {
		out = append(out, *k)
	}
	return out, nil
}

func (f *fakeKennelRepo) FindByName(_ context.Context, name string) (*model.Kennel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	k, ok := f.kennels[name]
	if !ok {
		return nil, repository.ErrKennelNotFound
	}
	clone := *k
	return &clone, nil
}

func (f *fakeKennelRepo) Create(_ context.Context, kennel *model.Kennel) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if existing, ok := f.kennels[kennel.Name]; ok {
		kennel.ID = existing.ID
		return nil
	}
	kennel.ID = f.nextID
	f.nextID++
	clone := *kennel
	f.kennels[kennel.Name] = &clone
	return nil
}

type fakeSessionRow struct {
	userID    int64
	expiresOn time.Time
}

type fakeSessionRepo struct {
	mu       sync.Mutex
	now      func() time.Time
	sessions map[string]fakeSessionRow // keyed by hashed token
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{now: time.Now, sessions: map[string]fakeSessionRow{}}
}

func (f *fakeSessionRepo) Create(_ context.Context, userID int64, rawToken string, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions[repository.HashRefreshToken(rawToken)] = fakeSessionRow{
		userID:    userID,
		expiresOn: f.now().Add(ttl),
	}
	return nil
}

func (f *fakeSessionRepo) Validate(_ context.Context, userID int64, rawToken string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.sessions[repository.HashRefreshToken(rawToken)]
	if !ok || row.userID != userID {
		return false, nil
	}
	if row.expiresOn.Before(f.now()) {
		return false, nil
	}
	return true, nil
}

func (f *fakeSessionRepo) Revoke(_ context.Context, rawToken string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.sessions, repository.HashRefreshToken(rawToken))
	return nil
}

func (f *fakeSessionRepo) RevokeAllForUser(_ context.Context, userID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for hash, row := range f.sessions {
		if row.userID == userID {
			delete(f.sessions, hash)
		}
	}
	return nil
}

func TestAuthLifecycle_EndToEnd(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig()
	codec, err := token.NewCodec(cfg.JWTSecret, cfg.JWTAlgorithm)
	require.NoError(t, err)

	sessions := newFakeSessionRepo()
	uc := NewAuthUsecase(
		cfg,
		newFakeUserRepo(),
		newFakeKennelRepo(),
		sessions,
		NewBcryptPasswordHasher(bcrypt.MinCost),
		NewBcryptPasswordVerifier(),
		codec,
	)

	// Register once; a second registration with the same email must fail.
	userID, err := uc.Register(ctx, "alice@example.com", "pw123", "Pack A")
	require.NoError(t, err)
	assert.Equal(t, int64(1), userID)

	_, err = uc.Register(ctx, "alice@example.com", "pw123", "Pack A")
	assert.ErrorIs(t, err, ErrAlreadyExists)

	// Login yields a 60 minute access token and a raw refresh token.
	bundle, rawRefresh, err := uc.Login(ctx, "alice@example.com", "pw123")
	require.NoError(t, err)
	assert.Equal(t, 3600, bundle.ExpiresIn)
	require.NotEmpty(t, rawRefresh)

	// The access token validates and resolves the caller's kennel.
	identity, err := uc.Validate(bundle.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", identity.Sub)
	assert.Equal(t, int64(1), identity.KennelID)

	// Refresh with the still-live access token returns a fresh token with
	// identical claims; the original refresh token stays valid.
	refreshed, err := uc.Refresh(ctx, bundle.AccessToken, rawRefresh)
	require.NoError(t, err)
	newIdentity, err := uc.Validate(refreshed.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, identity, newIdentity)

	again, err := uc.Refresh(ctx, refreshed.AccessToken, rawRefresh)
	require.NoError(t, err)
	assert.NotEmpty(t, again.AccessToken)

	// Logout revokes the refresh token; a later refresh attempt fails.
	require.NoError(t, uc.Logout(ctx, rawRefresh))
	_, err = uc.Refresh(ctx, refreshed.AccessToken, rawRefresh)
	assert.ErrorIs(t, err, ErrInvalidToken)

	// Logging out twice is not an error.
	require.NoError(t, uc.Logout(ctx, rawRefresh))
}

func TestAuthLifecycle_SessionExpiry(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig()
	codec, err := token.NewCodec(cfg.JWTSecret, cfg.JWTAlgorithm)
	require.NoError(t, err)

	sessions := newFakeSessionRepo()
	uc := NewAuthUsecase(
		cfg,
		newFakeUserRepo(),
		newFakeKennelRepo(),
		sessions,
		NewBcryptPasswordHasher(bcrypt.MinCost),
		NewBcryptPasswordVerifier(),
		codec,
	)

	_, err = uc.Register(ctx, "bob@example.com", "pw123", "Pack B")
	require.NoError(t, err)
	bundle, rawRefresh, err := uc.Login(ctx, "bob@example.com", "pw123")
	require.NoError(t, err)

	// Backdate the clock used for expiry checks past the session TTL.
	sessions.now = func() time.Time { return time.Now().Add(8 * 24 * time.Hour) }

	_, err = uc.Refresh(ctx, bundle.AccessToken, rawRefresh)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestLogoutEverywhere_RevokesAllSessions(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig()
	codec, err := token.NewCodec(cfg.JWTSecret, cfg.JWTAlgorithm)
	require.NoError(t, err)

	sessions := newFakeSessionRepo()
	uc := NewAuthUsecase(
		cfg,
		newFakeUserRepo(),
		newFakeKennelRepo(),
		sessions,
		NewBcryptPasswordHasher(bcrypt.MinCost),
		NewBcryptPasswordVerifier(),
		codec,
	)

	_, err = uc.Register(ctx, "carol@example.com", "pw123", "Pack C")
	require.NoError(t, err)

	// Two concurrent sessions from two logins.
	bundle, refresh1, err := uc.Login(ctx, "carol@example.com", "pw123")
	require.NoError(t, err)
	_, refresh2, err := uc.Login(ctx, "carol@example.com", "pw123")
	require.NoError(t, err)
	assert.NotEqual(t, refresh1, refresh2)

	require.NoError(t, uc.LogoutEverywhere(ctx, "carol@example.com"))

	_, err = uc.Refresh(ctx, bundle.AccessToken, refresh1)
	assert.ErrorIs(t, err, ErrInvalidToken)
	_, err = uc.Refresh(ctx, bundle.AccessToken, refresh2)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
