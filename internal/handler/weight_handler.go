package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"kenneltrack/internal/middleware"
	"kenneltrack/internal/usecase"
)

type WeightHandler struct {
	uc *usecase.WeightUsecase
}

func NewWeightHandler(uc *usecase.WeightUsecase) *WeightHandler {
	return &WeightHandler{uc: uc}
}

func (h *WeightHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/dogs/:id/weights", h.list)
	g.POST("/dog-weights", h.create)
}

type weightRequest struct {
	DogID  int64   `json:"dog_id"`
	Date   string  `json:"date"` // YYYY-MM-DD
	Weight float64 `json:"weight"`
}

func (h *WeightHandler) list(c echo.Context) error {
	dogID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	entries, err := h.uc.ListForDog(c.Request().Context(), dogID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, entries)
}

func (h *WeightHandler) create(c echo.Context) error {
	var req weightRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "date must be YYYY-MM-DD"})
	}
	if req.Weight <= 0 {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "weight must be positive"})
	}

	entry, err := h.uc.Create(c.Request().Context(), middleware.KennelID(c), req.DogID, date, req.Weight)
	if err != nil {
		if errors.Is(err, usecase.ErrDogNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "dog not found"})
		}
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, entry)
}
