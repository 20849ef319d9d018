package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/minipress/minipress/internal/api/metrics"
	"github.com/minipress/minipress/internal/api/view"
	"github.com/minipress/minipress/internal/core/ports"
)

// PostHandler handles the post form actions.
type PostHandler struct {
	service ports.PostService
}

func NewPostHandler(service ports.PostService) *PostHandler {
	return &PostHandler{service: service}
}

type createPostRequest struct {
	Title   string `form:"title"   validate:"required"`
	Content string `form:"content" validate:"required"`
	UserID  int64  `form:"user_id" validate:"required,gt=0"`
}

type updatePostRequest struct {
	Title   string `form:"title"   validate:"required"`
	Content string `form:"content" validate:"required"`
}

// Create handles POST /posts/create. The author id is taken as submitted;
// whether that user exists is not checked.
func (h *PostHandler) Create(c echo.Context) error {
	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.service.Create(c.Request().Context(), ports.CreatePostInput{
		Title:   req.Title,
		Content: req.Content,
		UserID:  req.UserID,
	}); err != nil {
		return err
	}

	metrics.RecordsCreatedTotal.WithLabelValues("post").Inc()
	return c.Redirect(http.StatusSeeOther, "/")
}

// EditForm handles GET /posts/edit/:id.
func (h *PostHandler) EditForm(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	post, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, "post_edit.html", view.PostEditPage{Post: post})
}

// Update handles POST /posts/edit/:id. Only title and content change.
func (h *PostHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.service.Update(c.Request().Context(), ports.UpdatePostInput{
		ID:      id,
		Title:   req.Title,
		Content: req.Content,
	}); err != nil {
		return err
	}

	return c.Redirect(http.StatusSeeOther, "/")
}

// Delete handles POST /posts/delete/:id, an idempotent no-op on absent ids.
func (h *PostHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	metrics.RecordsDeletedTotal.WithLabelValues("post").Inc()
	return c.Redirect(http.StatusSeeOther, "/")
}
