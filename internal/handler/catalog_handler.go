package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"kenneltrack/internal/middleware"
	"kenneltrack/internal/usecase"
)

// CatalogHandler serves runners, sports and training locations.
type CatalogHandler struct {
	uc *usecase.CatalogUsecase
}

func NewCatalogHandler(uc *usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

func (h *CatalogHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/runners", h.listRunners)
	g.POST("/runners", h.createRunner)
	g.GET("/sports", h.listSports)
	g.GET("/sports/:name", h.getSport)
	g.GET("/locations", h.listLocations)
	g.POST("/locations", h.createLocation)
	g.PUT("/locations/:id", h.updateLocation)
	g.DELETE("/locations/:id", h.removeLocation)
}

type nameRequest struct {
	Name string `json:"name"`
}

func (h *CatalogHandler) listRunners(c echo.Context) error {
	runners, err := h.uc.ListRunners(c.Request().Context(), middleware.KennelID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, runners)
}

func (h *CatalogHandler) createRunner(c echo.Context) error {
	var req nameRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "name is required"})
	}

	runner, err := h.uc.CreateRunner(c.Request().Context(), middleware.KennelID(c), req.Name)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, runner)
}

func (h *CatalogHandler) listSports(c echo.Context) error {
	sports, err := h.uc.ListSports(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, sports)
}

func (h *CatalogHandler) getSport(c echo.Context) error {
	sport, err := h.uc.GetSport(c.Request().Context(), c.Param("name"))
	if err != nil {
		if errors.Is(err, usecase.ErrSportNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "sport not found"})
		}
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, sport)
}

func (h *CatalogHandler) listLocations(c echo.Context) error {
	locations, err := h.uc.ListLocations(c.Request().Context(), middleware.KennelID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, locations)
}

func (h *CatalogHandler) createLocation(c echo.Context) error {
	var req nameRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "name is required"})
	}

	location, err := h.uc.CreateLocation(c.Request().Context(), middleware.KennelID(c), req.Name)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, location)
}

func (h *CatalogHandler) updateLocation(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req nameRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	if err := h.uc.UpdateLocation(c.Request().Context(), middleware.KennelID(c), id, req.Name); err != nil {
		if errors.Is(err, usecase.ErrLocationNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "location not found"})
		}
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, messageResponse{StatusCode: http.StatusOK, Message: "location updated"})
}

func (h *CatalogHandler) removeLocation(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.DeleteLocation(c.Request().Context(), middleware.KennelID(c), id); err != nil {
		if errors.Is(err, usecase.ErrLocationNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "location not found"})
		}
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
