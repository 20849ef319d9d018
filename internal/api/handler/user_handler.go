package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/minipress/minipress/internal/api/metrics"
	"github.com/minipress/minipress/internal/api/view"
	"github.com/minipress/minipress/internal/core/ports"
)

// UserHandler handles the user form actions.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type createUserRequest struct {
	Username string `form:"username" validate:"required"`
	Email    string `form:"email"    validate:"required"`
	Password string `form:"password" validate:"required"`
}

type updateUserRequest struct {
	Username string `form:"username" validate:"required"`
	Email    string `form:"email"    validate:"required"`
}

// Create handles POST /users/create.
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.service.Create(c.Request().Context(), ports.CreateUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	}); err != nil {
		return err
	}

	metrics.RecordsCreatedTotal.WithLabelValues("user").Inc()
	return c.Redirect(http.StatusSeeOther, "/")
}

// EditForm handles GET /users/edit/:id. A missing record is a 404 before
// anything is rendered.
func (h *UserHandler) EditForm(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	user, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, "user_edit.html", view.UserEditPage{User: user})
}

// Update handles POST /users/edit/:id. Only username and email change; the
// password is fixed at creation.
func (h *UserHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.service.Update(c.Request().Context(), ports.UpdateUserInput{
		ID:       id,
		Username: req.Username,
		Email:    req.Email,
	}); err != nil {
		return err
	}

	return c.Redirect(http.StatusSeeOther, "/")
}

// Delete handles POST /users/delete/:id. Deleting an absent id still
// redirects — the operation is an idempotent no-op, not an error.
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	metrics.RecordsDeletedTotal.WithLabelValues("user").Inc()
	return c.Redirect(http.StatusSeeOther, "/")
}
