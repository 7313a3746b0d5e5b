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

type DogHandler struct {
	uc *usecase.DogUsecase
}

func NewDogHandler(uc *usecase.DogUsecase) *DogHandler {
	return &DogHandler{uc: uc}
}

func (h *DogHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/dogs", h.list)
	g.GET("/dogs/:name", h.detail)
	g.POST("/dogs", h.create)
	g.DELETE("/dogs/:id", h.remove)
}

type dogRequest struct {
	Name        string `json:"name"`
	Breed       string `json:"breed"`
	DateOfBirth string `json:"date_of_birth"` // YYYY-MM-DD
	ImageURL    string `json:"image_url"`
}

func (h *DogHandler) list(c echo.Context) error {
	dogs, err := h.uc.List(c.Request().Context(), middleware.KennelID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dogs)
}

func (h *DogHandler) detail(c echo.Context) error {
	dog, err := h.uc.GetByName(c.Request().Context(), middleware.KennelID(c), c.Param("name"))
	if err != nil {
		if errors.Is(err, usecase.ErrDogNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "dog not found"})
		}
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dog)
}

func (h *DogHandler) create(c echo.Context) error {
	var req dogRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if req.Name == "" || req.Breed == "" {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "name and breed are required"})
	}

	dob, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "date_of_birth must be YYYY-MM-DD"})
	}

	dog, err := h.uc.Create(c.Request().Context(), middleware.KennelID(c), req.Name, req.Breed, dob, req.ImageURL)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dog)
}

func (h *DogHandler) remove(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.Delete(c.Request().Context(), middleware.KennelID(c), id); err != nil {
		if errors.Is(err, usecase.ErrDogNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "dog not found"})
		}
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
