package api

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/minipress/minipress/internal/api/handler"
	"github.com/minipress/minipress/internal/api/view"
	"github.com/minipress/minipress/internal/core/service"
	"github.com/minipress/minipress/internal/infrastructure/db/sqlite"
	httphandlers "github.com/minipress/minipress/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *sqlx.DB, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	renderer, err := view.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("renderer: %w", err)
	}
	e.Renderer = renderer
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("minipress"))

	// --- Dependencies ---
	userRepo := sqlite.NewUserRepository(db)
	postRepo := sqlite.NewPostRepository(db)
	userService := service.NewUserService(userRepo, log)
	postService := service.NewPostService(postRepo, log)

	homeHandler := handler.NewHomeHandler(userService, postService)
	userHandler := handler.NewUserHandler(userService)
	postHandler := handler.NewPostHandler(postService)

	// --- Pages and form actions ---
	e.GET("/", homeHandler.Index)

	e.POST("/users/create", userHandler.Create)
	e.GET("/users/edit/:id", userHandler.EditForm)
	e.POST("/users/edit/:id", userHandler.Update)
	e.POST("/users/delete/:id", userHandler.Delete)

	e.POST("/posts/create", postHandler.Create)
	e.GET("/posts/edit/:id", postHandler.EditForm)
	e.POST("/posts/edit/:id", postHandler.Update)
	e.POST("/posts/delete/:id", postHandler.Delete)

	// --- Health probes and metrics ---
	healthHandler := httphandlers.NewHealthHandler()
	readyHandler := httphandlers.NewHealthDependenciesHandler(db)

	e.GET("/health", healthHandler.Liveness)       // liveness  – is the process alive?
	e.GET("/health/ready", readyHandler.Readiness) // readiness – is the store up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e, nil
}
