package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/minipress/minipress/internal/core/domain"
)

func TestHomeHandler_Index_ListsBothEntities(t *testing.T) {
	e := newTestEcho(t)
	users := &stubUserService{
		listFn: func(_ context.Context) ([]*domain.User, error) {
			return []*domain.User{{ID: 1, Username: "alice", Email: "a@x.com"}}, nil
		},
	}
	posts := &stubPostService{
		listFn: func(_ context.Context) ([]*domain.Post, error) {
			return []*domain.Post{{ID: 1, Title: "hi", Content: "there", UserID: 1}}, nil
		},
	}
	h := NewHomeHandler(users, posts)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Index(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "alice") || !strings.Contains(body, "hi") {
		t.Fatalf("page missing records: %s", body)
	}
}
