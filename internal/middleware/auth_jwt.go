package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"kenneltrack/internal/usecase"
)

const (
	CtxSubKey      = "sub"       // string, login identifier
	CtxUserIDKey   = "user_id"   // int64
	CtxKennelIDKey = "kennel_id" // int64
)

type errorResponse struct {
	Error string `json:"detail"`
}

// AuthJWT guards the activity API. Every request runs the stateless Validate
// operation on the bearer token and the caller's identity lands in the echo
// context, so handlers can scope queries to the caller's kennel.
func AuthJWT(auth *usecase.AuthUsecase) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authz := c.Request().Header.Get("Authorization")
			if authz == "" {
				return c.JSON(http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
			}

			parts := strings.SplitN(authz, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return c.JSON(http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
			}
			rawToken := strings.TrimSpace(parts[1])
			if rawToken == "" {
				return c.JSON(http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
			}

			identity, err := auth.Validate(rawToken)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
			}

			c.Set(CtxSubKey, identity.Sub)
			c.Set(CtxUserIDKey, identity.UserID)
			c.Set(CtxKennelIDKey, identity.KennelID)

			return next(c)
		}
	}
}

// KennelID returns the caller's kennel as resolved by AuthJWT.
func KennelID(c echo.Context) int64 {
	id, _ := c.Get(CtxKennelIDKey).(int64)
	return id
}

// UserID returns the caller's user id as resolved by AuthJWT.
func UserID(c echo.Context) int64 {
	id, _ := c.Get(CtxUserIDKey).(int64)
	return id
}
