// Package view renders the server-side HTML pages. Each page receives a
// typed view model; nothing outside this package touches templates.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"

	"github.com/minipress/minipress/internal/core/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

// HomePage backs index.html: both record listings plus the create forms.
type HomePage struct {
	Users []*domain.User
	Posts []*domain.Post
}

// UserEditPage backs user_edit.html with the record pre-populating the form.
type UserEditPage struct {
	User *domain.User
}

// PostEditPage backs post_edit.html with the record pre-populating the form.
type PostEditPage struct {
	Post *domain.Post
}

// ErrorPage backs error.html.
type ErrorPage struct {
	Status  int
	Message string
}

// Renderer satisfies echo.Renderer over the embedded template set.
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses the embedded templates once at startup.
func NewRenderer() (*Renderer, error) {
	ts, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{templates: ts}, nil
}

// Render executes the named template into a buffer first so a template error
// surfaces as an error return instead of a half-written response body.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}
