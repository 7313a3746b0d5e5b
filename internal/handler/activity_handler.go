package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"kenneltrack/internal/middleware"
	"kenneltrack/internal/usecase"
)

type ActivityHandler struct {
	uc *usecase.ActivityUsecase
}

func NewActivityHandler(uc *usecase.ActivityUsecase) *ActivityHandler {
	return &ActivityHandler{uc: uc}
}

func (h *ActivityHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/activities", h.list)
	g.POST("/activities", h.create)
}

type activityRequest struct {
	Timestamp time.Time `json:"timestamp"`
	RunnerID  int64     `json:"runner_id"`
	Sport     string    `json:"sport"`
	Location  string    `json:"location"`
	Distance  float64   `json:"distance"`
	Workout   bool      `json:"workout"`
	Notes     string    `json:"notes"`
	Speed     *float64  `json:"speed"`
	Pace      *string   `json:"pace"`
}

func (h *ActivityHandler) list(c echo.Context) error {
	activities, err := h.uc.List(c.Request().Context(), middleware.KennelID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, activities)
}

func (h *ActivityHandler) create(c echo.Context) error {
	var req activityRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	activity, err := h.uc.Create(c.Request().Context(), middleware.KennelID(c), usecase.CreateActivityInput{
		Timestamp: req.Timestamp,
		RunnerID:  req.RunnerID,
		Sport:     req.Sport,
		Location:  req.Location,
		Distance:  req.Distance,
		Workout:   req.Workout,
		Notes:     req.Notes,
		Speed:     req.Speed,
		Pace:      req.Pace,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrActivityNeedsMetric):
			return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
		case errors.Is(err, usecase.ErrUnknownSport):
			return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
		default:
			return writeError(c, err)
		}
	}

	return c.JSON(http.StatusCreated, activity)
}
