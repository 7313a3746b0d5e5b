package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"kenneltrack/internal/config"
	"kenneltrack/internal/usecase"
	"kenneltrack/internal/validator"
)

const refreshCookieName = "refresh_token"

type AuthHandler struct {
	uc  *usecase.AuthUsecase
	cfg config.Config
}

func NewAuthHandler(uc *usecase.AuthUsecase, cfg config.Config) *AuthHandler {
	return &AuthHandler{uc: uc, cfg: cfg}
}

func (h *AuthHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/auth")
	g.GET("/kennels", h.kennels)
	g.POST("/register", h.register)
	g.POST("/token", h.token)
	g.POST("/validate", h.validate)
	g.POST("/refresh-token", h.refresh)
	g.POST("/logout", h.logout)
	g.POST("/reset-password", h.resetPassword)
}

type messageResponse struct {
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
}

func (h *AuthHandler) kennels(c echo.Context) error {
	kennels, err := h.uc.ListKennels(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, kennels)
}

// register handles POST /auth/register with form fields email, password and
// kennel_name. The kennel is created on the fly if the name is new.
func (h *AuthHandler) register(c echo.Context) error {
	email := c.FormValue("email")
	password := c.FormValue("password")
	kennelName := c.FormValue("kennel_name")

	if err := validator.ValidateRegister(email, password, kennelName); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	}

	if _, err := h.uc.Register(c.Request().Context(), email, password, kennelName); err != nil {
		if errors.Is(err, usecase.ErrAlreadyExists) {
			return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "User already exists"})
		}
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, messageResponse{
		StatusCode: http.StatusCreated,
		Message:    fmt.Sprintf("User %s was succesfully registered", email),
	})
}

// token handles POST /auth/token with form-encoded credentials. The access
// token travels in the body; the refresh token only ever leaves as a
// hardened cookie scoped to the auth path prefix.
func (h *AuthHandler) token(c echo.Context) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	if err := validator.ValidateLogin(username, password); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Incorrect username or password"})
	}

	bundle, rawRefresh, err := h.uc.Login(c.Request().Context(), username, password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Incorrect username or password"})
		}
		return writeError(c, err)
	}

	h.setRefreshCookie(c, rawRefresh)
	return c.JSON(http.StatusCreated, bundle)
}

type validateRequest struct {
	Token string `json:"token"`
}

// validate is the endpoint other services call to authorize a request and
// learn the caller's kennel.
func (h *AuthHandler) validate(c echo.Context) error {
	var req validateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	identity, err := h.uc.Validate(req.Token)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrIdentityMissing):
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "User not found in token"})
		case errors.Is(err, usecase.ErrInvalidToken):
			return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid or expired access token"})
		default:
			return writeError(c, err)
		}
	}

	return c.JSON(http.StatusOK, identity)
}

// refresh handles POST /auth/refresh-token: bearer access token, possibly
// expired, plus the refresh cookie.
func (h *AuthHandler) refresh(c echo.Context) error {
	accessToken, ok := bearerToken(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Missing access token"})
	}

	cookie, err := c.Cookie(refreshCookieName)
	if err != nil || cookie.Value == "" {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Missing refresh token"})
	}

	bundle, err := h.uc.Refresh(c.Request().Context(), accessToken, cookie.Value)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidToken) {
			return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid refresh token"})
		}
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, bundle)
}

// logout revokes the posted refresh token. Always 200, revoking an unknown
// token included.
func (h *AuthHandler) logout(c echo.Context) error {
	rawRefresh := c.FormValue("refresh_token")
	if rawRefresh == "" {
		if cookie, err := c.Cookie(refreshCookieName); err == nil {
			rawRefresh = cookie.Value
		}
	}

	if err := h.uc.Logout(c.Request().Context(), rawRefresh); err != nil {
		return writeError(c, err)
	}

	h.clearRefreshCookie(c)
	return c.JSON(http.StatusOK, "Success")
}

func (h *AuthHandler) resetPassword(c echo.Context) error {
	email := c.FormValue("email")
	oldPassword := c.FormValue("old_password")
	newPassword := c.FormValue("new_password")

	if err := validator.ValidateResetPassword(email, oldPassword, newPassword); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	}

	if err := h.uc.ResetPassword(c.Request().Context(), email, oldPassword, newPassword); err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: fmt.Sprintf("Could not find user %s", email)})
		case errors.Is(err, usecase.ErrWrongPassword):
			return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: fmt.Sprintf("Old password for user %s is incorrect", email)})
		default:
			return writeError(c, err)
		}
	}

	return c.JSON(http.StatusOK, messageResponse{
		StatusCode: http.StatusOK,
		Message:    fmt.Sprintf("Password for user %s was reset successfully", email),
	})
}

func (h *AuthHandler) setRefreshCookie(c echo.Context, rawRefresh string) {
	c.SetCookie(&http.Cookie{
		Name:     refreshCookieName,
		Value:    rawRefresh,
		Path:     "/auth",
		HttpOnly: true,
		Secure:   !h.cfg.IsDev(),
		SameSite: http.SameSiteStrictMode,
		MaxAge:   h.cfg.RefreshTokenTTLDays * 24 * 60 * 60,
	})
}

func (h *AuthHandler) clearRefreshCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     refreshCookieName,
		Value:    "",
		Path:     "/auth",
		HttpOnly: true,
		Secure:   !h.cfg.IsDev(),
		SameSite: http.SameSiteStrictMode,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
	})
}

func bearerToken(c echo.Context) (string, bool) {
	authz := c.Request().Header.Get("Authorization")
	if len(authz) > 7 && (authz[:7] == "Bearer " || authz[:7] == "bearer ") {
		return authz[7:], true
	}
	return "", false
}

// ErrorResponse is the JSON error envelope shared by every handler.
type ErrorResponse struct {
	Error string `json:"detail"`
}

// writeError converts unexpected errors to an opaque 500. Validation-shaped
// failures never reach here; they are mapped at the call site.
func writeError(c echo.Context, err error) error {
	log.Error().Err(err).Str("path", c.Path()).Msg("request failed")
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}
