package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"kenneltrack/internal/middleware"
	"kenneltrack/internal/usecase"
)

type CommentHandler struct {
	uc *usecase.CommentUsecase
}

func NewCommentHandler(uc *usecase.CommentUsecase) *CommentHandler {
	return &CommentHandler{uc: uc}
}

func (h *CommentHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/comments", h.list)
	g.POST("/comments", h.create)
	g.PUT("/comments/:id", h.update)
	g.DELETE("/comments/:id", h.remove)
}

type commentRequest struct {
	ActivityID int64  `json:"activity_id"`
	Comment    string `json:"comment"`
}

func (h *CommentHandler) list(c echo.Context) error {
	activityID, err := strconv.ParseInt(c.QueryParam("activity_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid activity_id"})
	}

	comments, err := h.uc.ListForActivity(c.Request().Context(), activityID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, comments)
}

func (h *CommentHandler) create(c echo.Context) error {
	var req commentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if req.Comment == "" {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "comment is required"})
	}

	comment, err := h.uc.Create(c.Request().Context(), req.ActivityID, middleware.UserID(c), req.Comment)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, comment)
}

func (h *CommentHandler) update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req commentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	if err := h.uc.Update(c.Request().Context(), id, req.Comment); err != nil {
		if errors.Is(err, usecase.ErrCommentNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "comment not found"})
		}
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, messageResponse{StatusCode: http.StatusOK, Message: "comment updated"})
}

func (h *CommentHandler) remove(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, usecase.ErrCommentNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "comment not found"})
		}
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
