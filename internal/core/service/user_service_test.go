package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/minipress/minipress/internal/core/domain"
	"github.com/minipress/minipress/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	byID      map[int64]*domain.User
	nextID    int64
	createErr error // if set, Create returns this error
	calls     []string
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byID: make(map[int64]*domain.User), nextID: 1}
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	r.calls = append(r.calls, "create")
	if r.createErr != nil {
		return nil, r.createErr
	}
	clone := *u
	clone.ID = r.nextID
	r.nextID++
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	r.calls = append(r.calls, "list")
	users := make([]*domain.User, 0, len(r.byID))
	for _, u := range r.byID {
		clone := *u
		users = append(users, &clone)
	}
	return users, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	r.calls = append(r.calls, "find")
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) Update(_ context.Context, u *domain.User) (*domain.User, error) {
	r.calls = append(r.calls, "update")
	if _, ok := r.byID[u.ID]; !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	r.byID[u.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubUserRepo) Delete(_ context.Context, id int64) error {
	r.calls = append(r.calls, "delete")
	delete(r.byID, id)
	return nil
}

func TestUserService_Create_HashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.CreateUserInput{
		Username: "alice",
		Email:    "a@x.com",
		Password: "p",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected generated id")
	}
	if created.Password == "p" {
		t.Fatal("password stored in plaintext")
	}
	if bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("p")) != nil {
		t.Fatal("stored password is not a bcrypt hash of the input")
	}
}

func TestUserService_Create_MissingField(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	_, err := svc.Create(context.Background(), ports.CreateUserInput{Username: "alice", Email: "a@x.com"})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if len(repo.calls) != 0 {
		t.Fatalf("repository reached on invalid input: %v", repo.calls)
	}
}

func TestUserService_Update_OverwritesMutableFields(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.CreateUserInput{
		Username: "alice", Email: "a@x.com", Password: "p",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(context.Background(), ports.UpdateUserInput{
		ID: created.ID, Username: "bob", Email: "b@x.com",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Username != "bob" || updated.Email != "b@x.com" {
		t.Fatalf("unexpected record after update: %+v", updated)
	}
	if updated.Password != created.Password {
		t.Fatal("update changed the password")
	}
}

func TestUserService_Update_NotFound(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	_, err := svc.Update(context.Background(), ports.UpdateUserInput{
		ID: 42, Username: "bob", Email: "b@x.com",
	})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	for _, call := range repo.calls {
		if call == "update" {
			t.Fatal("update attempted against a missing record")
		}
	}
}

func TestUserService_Delete_AbsentIDIsNoOp(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	if err := svc.Delete(context.Background(), 99); err != nil {
		t.Fatalf("delete of absent id should be a no-op, got %v", err)
	}
}
