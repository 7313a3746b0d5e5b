package server

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"kenneltrack/internal/handler"
	"kenneltrack/internal/middleware"
	"kenneltrack/internal/usecase"
)

// NewAuth builds the echo instance for the authentication service.
func NewAuth(authH *handler.AuthHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())

	authH.RegisterRoutes(e)
	return e
}

// NewAPI builds the echo instance for the activity-tracking backend. All
// resource routes sit behind the access-token middleware.
func NewAPI(
	auth *usecase.AuthUsecase,
	dogH *handler.DogHandler,
	activityH *handler.ActivityHandler,
	weightH *handler.WeightHandler,
	commentH *handler.CommentHandler,
	catalogH *handler.CatalogHandler,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())

	g := e.Group("/api", middleware.AuthJWT(auth))
	dogH.RegisterRoutes(g)
	activityH.RegisterRoutes(g)
	weightH.RegisterRoutes(g)
	commentH.RegisterRoutes(g)
	catalogH.RegisterRoutes(g)

	return e
}
