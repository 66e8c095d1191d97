package server

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/talenthq/talent-hub/internal/config"
	"github.com/talenthq/talent-hub/internal/db"
	"github.com/talenthq/talent-hub/internal/types"
)

// fakeUserStore is an in-memory UserStore for auth tests.
type fakeUserStore struct {
	byEmail map[string]*db.UserRecord
	byID    map[uuid.UUID]*db.UserRecord
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		byEmail: make(map[string]*db.UserRecord),
		byID:    make(map[uuid.UUID]*db.UserRecord),
	}
}

func (f *fakeUserStore) CreateUser(_ context.Context, name, email, passwordHash, role string) (*db.UserRecord, error) {
	rec := &db.UserRecord{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		Role:         role,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	f.byEmail[email] = rec
	f.byID[rec.ID] = rec
	return rec, nil
}

func (f *fakeUserStore) GetUserByEmail(_ context.Context, email string) (*db.UserRecord, error) {
	return f.byEmail[email], nil
}

func (f *fakeUserStore) GetUserByID(_ context.Context, id uuid.UUID) (*db.UserRecord, error) {
	return f.byID[id], nil
}

func (f *fakeUserStore) UpdateUserPassword(_ context.Context, id uuid.UUID, passwordHash string) error {
	rec, ok := f.byID[id]
	if !ok {
		return &db.NotFoundError{Entity: "user", ID: id.String()}
	}
	rec.PasswordHash = passwordHash
	return nil
}

func testPasswordConfig() *config.PasswordConfig {
	// Minimum cost keeps bcrypt fast in tests.
	return &config.PasswordConfig{BcryptCost: 10}
}

func TestUserService_RegisterAndLogin(t *testing.T) {
	svc := NewUserService(newFakeUserStore(), testPasswordConfig())
	ctx := context.Background()

	user, err := svc.Register(ctx, &types.CreateUserRequest{
		Name:     "Ann Chen",
		Email:    "ann@example.com",
		Password: "correct horse",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if user.Role != types.RoleRecruiter {
		t.Errorf("Role = %q, want default %q", user.Role, types.RoleRecruiter)
	}

	logged, err := svc.Login(ctx, &types.LoginRequest{Email: "ann@example.com", Password: "correct horse"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if logged.ID != user.ID {
		t.Errorf("Login() ID = %s, want %s", logged.ID, user.ID)
	}
}

func TestUserService_RegisterDuplicateEmail(t *testing.T) {
	svc := NewUserService(newFakeUserStore(), testPasswordConfig())
	ctx := context.Background()

	req := &types.CreateUserRequest{Name: "Ann", Email: "ann@example.com", Password: "password1"}
	if _, err := svc.Register(ctx, req); err != nil {
		t.Fatalf("first Register() error = %v", err)
	}

	_, err := svc.Register(ctx, req)
	var exists *ErrEmailAlreadyExists
	if !errors.As(err, &exists) {
		t.Fatalf("second Register() error = %v, want ErrEmailAlreadyExists", err)
	}
}

func TestUserService_RegisterKeepsExplicitRole(t *testing.T) {
	svc := NewUserService(newFakeUserStore(), testPasswordConfig())

	user, err := svc.Register(context.Background(), &types.CreateUserRequest{
		Name:     "Max",
		Email:    "max@example.com",
		Password: "password1",
		Role:     types.RoleManager,
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if user.Role != types.RoleManager {
		t.Errorf("Role = %q, want %q", user.Role, types.RoleManager)
	}
}

func TestUserService_LoginFailures(t *testing.T) {
	svc := NewUserService(newFakeUserStore(), testPasswordConfig())
	ctx := context.Background()

	if _, err := svc.Register(ctx, &types.CreateUserRequest{
		Name: "Ann", Email: "ann@example.com", Password: "password1",
	}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	tests := []struct {
		name string
		req  *types.LoginRequest
	}{
		{name: "unknown email", req: &types.LoginRequest{Email: "nobody@example.com", Password: "password1"}},
		{name: "wrong password", req: &types.LoginRequest{Email: "ann@example.com", Password: "wrong"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(ctx, tt.req)
			var invalid *ErrInvalidCredentials
			if !errors.As(err, &invalid) {
				t.Fatalf("Login() error = %v, want ErrInvalidCredentials", err)
			}
		})
	}
}

func TestUserService_UpdatePassword(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store, testPasswordConfig())
	ctx := context.Background()

	user, err := svc.Register(ctx, &types.CreateUserRequest{
		Name: "Ann", Email: "ann@example.com", Password: "old password",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if err := svc.UpdatePassword(ctx, user.ID, "wrong", "new password"); err != nil {
		var mismatch *ErrPasswordMismatch
		if !errors.As(err, &mismatch) {
			t.Fatalf("UpdatePassword() error = %v, want ErrPasswordMismatch", err)
		}
	} else {
		t.Fatal("UpdatePassword() with wrong current password succeeded")
	}

	if err := svc.UpdatePassword(ctx, user.ID, "old password", "new password"); err != nil {
		t.Fatalf("UpdatePassword() error = %v", err)
	}

	if _, err := svc.Login(ctx, &types.LoginRequest{Email: "ann@example.com", Password: "old password"}); err == nil {
		t.Fatal("old password still works after update")
	}
	if _, err := svc.Login(ctx, &types.LoginRequest{Email: "ann@example.com", Password: "new password"}); err != nil {
		t.Fatalf("Login() with new password error = %v", err)
	}
}

func TestUserService_UpdatePasswordUnknownUser(t *testing.T) {
	svc := NewUserService(newFakeUserStore(), testPasswordConfig())

	err := svc.UpdatePassword(context.Background(), uuid.New(), "a", "b")
	var notFound *ErrUserNotFound
	if !errors.As(err, &notFound) {
		t.Fatalf("UpdatePassword() error = %v, want ErrUserNotFound", err)
	}
}
