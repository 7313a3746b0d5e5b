package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kenneltrack/internal/config"
	"kenneltrack/internal/domain/model"
	"kenneltrack/internal/repository"
	"kenneltrack/internal/token"
	"kenneltrack/internal/usecase"
)

type memUserRepo struct {
	users  map[string]*model.User
	nextID int64
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*model.User{}, nextID: 1}
}

func (r *memUserRepo) Create(_ context.Context, user *model.User) error {
	if _, ok := r.users[user.Username]; ok {
		return repository.ErrUserAlreadyExists
	}
	user.ID = r.nextID
	r.nextID++
	r.users[user.Username] = user
	return nil
}

func (r *memUserRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return u, nil
}

func (r *memUserRepo) UpdatePasswordHash(_ context.Context, userID int64, passwordHash string) error {
	for _, u := range r.users {
		if u.ID == userID {
			u.PasswordHash = passwordHash
			return nil
		}
	}
	return repository.ErrUserNotFound
}

type memKennelRepo struct {
	kennels map[string]*model.Kennel
	nextID  int64
}

func newMemKennelRepo() *memKennelRepo {
	return &memKennelRepo{kennels: map[string]*model.Kennel{}, nextID: 1}
}

func (r *memKennelRepo) GetAll(_ context.Context) ([]model.Kennel, error) {
	out := make([]model.Kennel, 0, len(r.kennels))
	for _, k := range r.kennels {
		out = append(out, *k)
	}
	return out, nil
}

func (r *memKennelRepo) FindByName(_ context.Context, name string) (*model.Kennel, error) {
	k, ok := r.kennels[name]
	if !ok {
		return nil, repository.ErrKennelNotFound
	}
	return k, nil
}

func (r *memKennelRepo) Create(_ context.Context, kennel *model.Kennel) error {
	if existing, ok := r.kennels[kennel.Name]; ok {
		kennel.ID = existing.ID
		return nil
	}
	kennel.ID = r.nextID
	r.nextID++
	r.kennels[kennel.Name] = kennel
	return nil
}

type memSessionRepo struct {
	sessions map[string]memSession // keyed by token hash
}

type memSession struct {
	userID    int64
	expiresOn time.Time
}

func newMemSessionRepo() *memSessionRepo {
	return &memSessionRepo{sessions: map[string]memSession{}}
}

func (r *memSessionRepo) Create(_ context.Context, userID int64, rawToken string, ttl time.Duration) error {
	r.sessions[repository.HashRefreshToken(rawToken)] = memSession{
		userID:    userID,
		expiresOn: time.Now().Add(ttl),
	}
	return nil
}

func (r *memSessionRepo) Validate(_ context.Context, userID int64, rawToken string) (bool, error) {
	s, ok := r.sessions[repository.HashRefreshToken(rawToken)]
	if !ok || s.userID != userID || s.expiresOn.Before(time.Now()) {
		return false, nil
	}
	return true, nil
}

func (r *memSessionRepo) Revoke(_ context.Context, rawToken string) error {
	delete(r.sessions, repository.HashRefreshToken(rawToken))
	return nil
}

func (r *memSessionRepo) RevokeAllForUser(_ context.Context, userID int64) error {
	for hash, s := range r.sessions {
		if s.userID == userID {
			delete(r.sessions, hash)
		}
	}
	return nil
}

// newAuthServer wires the full auth surface over in-memory repositories.
func newAuthServer(t *testing.T) (*echo.Echo, *memSessionRepo) {
	t.Helper()

	cfg := config.Config{
		JWTSecret:             "handler-test-secret",
		JWTAlgorithm:          "HS256",
		AccessTokenTTLMinutes: 60,
		RefreshTokenTTLDays:   7,
		GoEnv:                 "test",
	}
	codec, err := token.NewCodec(cfg.JWTSecret, cfg.JWTAlgorithm)
	require.NoError(t, err)

	sessions := newMemSessionRepo()
	uc := usecase.NewAuthUsecase(
		cfg,
		newMemUserRepo(),
		newMemKennelRepo(),
		sessions,
		usecase.NewBcryptPasswordHasher(4),
		usecase.NewBcryptPasswordVerifier(),
		codec,
	)

	e := echo.New()
	NewAuthHandler(uc, cfg).RegisterRoutes(e)
	return e, sessions
}

func postForm(e *echo.Echo, path string, form url.Values, mutate func(*http.Request)) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	if mutate != nil {
		mutate(req)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func registerMusher(t *testing.T, e *echo.Echo) {
	t.Helper()
	rec := postForm(e, "/auth/register", url.Values{
		"email":       {"musher@example.com"},
		"password":    {"super-secret-pw"},
		"kennel_name": {"North Ridge"},
	}, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
}

func loginMusher(t *testing.T, e *echo.Echo) (accessToken string, refreshCookie *http.Cookie) {
	t.Helper()
	rec := postForm(e, "/auth/token", url.Values{
		"username": {"musher@example.com"},
		"password": {"super-secret-pw"},
	}, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var bundle usecase.TokenBundle
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &bundle))

	for _, c := range rec.Result().Cookies() {
		if c.Name == "refresh_token" {
			refreshCookie = c
		}
	}
	require.NotNil(t, refreshCookie, "login must set the refresh cookie")
	return bundle.AccessToken, refreshCookie
}

func TestRegister_CreatedAndDuplicate(t *testing.T) {
	e, _ := newAuthServer(t)

	registerMusher(t, e)

	rec := postForm(e, "/auth/register", url.Values{
		"email":       {"musher@example.com"},
		"password":    {"another-password"},
		"kennel_name": {"North Ridge"},
	}, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "User already exists")
}

func TestRegister_RejectsBadInput(t *testing.T) {
	e, _ := newAuthServer(t)

	cases := []url.Values{
		{"email": {"not-an-email"}, "password": {"super-secret-pw"}, "kennel_name": {"North Ridge"}},
		{"email": {"musher@example.com"}, "password": {"short"}, "kennel_name": {"North Ridge"}},
		{"email": {"musher@example.com"}, "password": {"super-secret-pw"}},
	}
	for _, form := range cases {
		rec := postForm(e, "/auth/register", form, nil)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	}
}

func TestToken_SetsHardenedRefreshCookie(t *testing.T) {
	e, _ := newAuthServer(t)
	registerMusher(t, e)

	accessToken, cookie := loginMusher(t, e)
	assert.NotEmpty(t, accessToken)

	assert.Len(t, cookie.Value, 64)
	assert.Equal(t, "/auth", cookie.Path)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
	assert.Equal(t, 7*24*60*60, cookie.MaxAge)
}

func TestToken_WrongPasswordAndUnknownUserLookAlike(t *testing.T) {
	e, _ := newAuthServer(t)
	registerMusher(t, e)

	wrongPw := postForm(e, "/auth/token", url.Values{
		"username": {"musher@example.com"},
		"password": {"not-the-password"},
	}, nil)
	unknown := postForm(e, "/auth/token", url.Values{
		"username": {"ghost@example.com"},
		"password": {"not-the-password"},
	}, nil)

	assert.Equal(t, http.StatusBadRequest, wrongPw.Code)
	assert.Equal(t, http.StatusBadRequest, unknown.Code)
	assert.Equal(t, wrongPw.Body.String(), unknown.Body.String())
}

func TestValidate_ReturnsIdentity(t *testing.T) {
	e, _ := newAuthServer(t)
	registerMusher(t, e)
	accessToken, _ := loginMusher(t, e)

	body, _ := json.Marshal(map[string]string{"token": accessToken})
	req := httptest.NewRequest(http.MethodPost, "/auth/validate", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var identity usecase.Identity
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &identity))
	assert.Equal(t, "musher@example.com", identity.Sub)
	assert.NotZero(t, identity.UserID)
	assert.NotZero(t, identity.KennelID)
}

func TestValidate_RejectsGarbageToken(t *testing.T) {
	e, _ := newAuthServer(t)

	body, _ := json.Marshal(map[string]string{"token": "not.a.token"})
	req := httptest.NewRequest(http.MethodPost, "/auth/validate", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRefresh_RequiresCookieAndBearer(t *testing.T) {
	e, _ := newAuthServer(t)
	registerMusher(t, e)
	accessToken, cookie := loginMusher(t, e)

	// Bearer without cookie.
	rec := postForm(e, "/auth/refresh-token", url.Values{}, func(req *http.Request) {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+accessToken)
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Cookie without bearer.
	rec = postForm(e, "/auth/refresh-token", url.Values{}, func(req *http.Request) {
		req.AddCookie(cookie)
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Both present.
	rec = postForm(e, "/auth/refresh-token", url.Values{}, func(req *http.Request) {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+accessToken)
		req.AddCookie(cookie)
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var bundle usecase.TokenBundle
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &bundle))
	assert.NotEmpty(t, bundle.AccessToken)
	assert.Equal(t, "bearer", bundle.TokenType)
}

func TestLogout_RevokesSessionAndClearsCookie(t *testing.T) {
	e, sessions := newAuthServer(t)
	registerMusher(t, e)
	accessToken, cookie := loginMusher(t, e)
	require.Len(t, sessions.sessions, 1)

	rec := postForm(e, "/auth/logout", url.Values{}, func(req *http.Request) {
		req.AddCookie(cookie)
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, sessions.sessions)

	var cleared *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == "refresh_token" {
			cleared = c
		}
	}
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
	assert.Negative(t, cleared.MaxAge)

	// The revoked session no longer backs the refresh flow.
	rec = postForm(e, "/auth/refresh-token", url.Values{}, func(req *http.Request) {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+accessToken)
		req.AddCookie(cookie)
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Logging out twice is fine.
	rec = postForm(e, "/auth/logout", url.Values{}, func(req *http.Request) {
		req.AddCookie(cookie)
	})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestResetPassword_FlowAndFailureCodes(t *testing.T) {
	e, _ := newAuthServer(t)
	registerMusher(t, e)

	rec := postForm(e, "/auth/reset-password", url.Values{
		"email":        {"ghost@example.com"},
		"old_password": {"super-secret-pw"},
		"new_password": {"brand-new-secret"},
	}, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = postForm(e, "/auth/reset-password", url.Values{
		"email":        {"musher@example.com"},
		"old_password": {"not-the-password"},
		"new_password": {"brand-new-secret"},
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = postForm(e, "/auth/reset-password", url.Values{
		"email":        {"musher@example.com"},
		"old_password": {"super-secret-pw"},
		"new_password": {"brand-new-secret"},
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// Old password stops working, the new one logs in.
	rec = postForm(e, "/auth/token", url.Values{
		"username": {"musher@example.com"},
		"password": {"super-secret-pw"},
	}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postForm(e, "/auth/token", url.Values{
		"username": {"musher@example.com"},
		"password": {"brand-new-secret"},
	}, nil)
	assert.Equal(t, http.StatusCreated, rec.Code)
}
