package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/minipress/minipress/internal/api/view"
	"github.com/minipress/minipress/internal/core/ports"
)

// HomeHandler renders the root listing page.
type HomeHandler struct {
	users ports.UserService
	posts ports.PostService
}

func NewHomeHandler(users ports.UserService, posts ports.PostService) *HomeHandler {
	return &HomeHandler{users: users, posts: posts}
}

// Index handles GET /: both listings, passed to the page unmodified.
func (h *HomeHandler) Index(c echo.Context) error {
	ctx := c.Request().Context()

	users, err := h.users.List(ctx)
	if err != nil {
		return err
	}

	posts, err := h.posts.List(ctx)
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, "index.html", view.HomePage{Users: users, Posts: posts})
}
