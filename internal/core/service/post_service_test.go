package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/minipress/minipress/internal/core/domain"
	"github.com/minipress/minipress/internal/core/ports"
)

type stubPostRepo struct {
	byID   map[int64]*domain.Post
	nextID int64
	calls  []string
}

func newStubPostRepo() *stubPostRepo {
	return &stubPostRepo{byID: make(map[int64]*domain.Post), nextID: 1}
}

func (r *stubPostRepo) Create(_ context.Context, p *domain.Post) (*domain.Post, error) {
	r.calls = append(r.calls, "create")
	clone := *p
	clone.ID = r.nextID
	r.nextID++
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubPostRepo) List(_ context.Context) ([]*domain.Post, error) {
	r.calls = append(r.calls, "list")
	posts := make([]*domain.Post, 0, len(r.byID))
	for _, p := range r.byID {
		clone := *p
		posts = append(posts, &clone)
	}
	return posts, nil
}

func (r *stubPostRepo) FindByID(_ context.Context, id int64) (*domain.Post, error) {
	r.calls = append(r.calls, "find")
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubPostRepo) Update(_ context.Context, p *domain.Post) (*domain.Post, error) {
	r.calls = append(r.calls, "update")
	if _, ok := r.byID[p.ID]; !ok {
		return nil, domain.ErrPostNotFound
	}
	clone := *p
	r.byID[p.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubPostRepo) Delete(_ context.Context, id int64) error {
	r.calls = append(r.calls, "delete")
	delete(r.byID, id)
	return nil
}

func TestPostService_Create_KeepsUnvalidatedAuthor(t *testing.T) {
	repo := newStubPostRepo()
	svc := NewPostService(repo, zerolog.Nop())

	// user 42 does not exist anywhere; the reference is stored regardless
	created, err := svc.Create(context.Background(), ports.CreatePostInput{
		Title: "hi", Content: "there", UserID: 42,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.UserID != 42 {
		t.Fatalf("expected user_id 42, got %d", created.UserID)
	}
}

func TestPostService_Create_MissingField(t *testing.T) {
	repo := newStubPostRepo()
	svc := NewPostService(repo, zerolog.Nop())

	_, err := svc.Create(context.Background(), ports.CreatePostInput{Title: "hi", UserID: 1})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if len(repo.calls) != 0 {
		t.Fatalf("repository reached on invalid input: %v", repo.calls)
	}
}

func TestPostService_Update_ContentPreservedAcrossTitleEdit(t *testing.T) {
	repo := newStubPostRepo()
	svc := NewPostService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.CreatePostInput{
		Title: "hi", Content: "there", UserID: 1,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(context.Background(), ports.UpdatePostInput{
		ID: created.ID, Title: "bye", Content: "there",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Title != "bye" || updated.Content != "there" {
		t.Fatalf("unexpected record after update: %+v", updated)
	}
	if updated.UserID != 1 {
		t.Fatalf("update changed user_id: %d", updated.UserID)
	}
}

func TestPostService_Update_NotFound(t *testing.T) {
	repo := newStubPostRepo()
	svc := NewPostService(repo, zerolog.Nop())

	_, err := svc.Update(context.Background(), ports.UpdatePostInput{ID: 7, Title: "x", Content: "y"})
	if !errors.Is(err, domain.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestPostService_Delete_AbsentIDIsNoOp(t *testing.T) {
	repo := newStubPostRepo()
	svc := NewPostService(repo, zerolog.Nop())

	if err := svc.Delete(context.Background(), 99); err != nil {
		t.Fatalf("delete of absent id should be a no-op, got %v", err)
	}
}
