package service

import (
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/photoshare/photoshare-backend/internal/models"
	"github.com/photoshare/photoshare-backend/pkg/session"
)

func newAuthService(users UserStore) (*AuthService, *session.MemoryStore) {
	sessions := session.NewMemoryStore()
	return NewAuthService(users, sessions, time.Hour, zap.NewNop()), sessions
}

func TestRegisterThenLogin(t *testing.T) {
	users := newFakeUserStore()
	svc, sessions := newAuthService(users)
	defer sessions.Close()

	err := svc.Register(models.RegisterRequest{
		LoginName: "alice",
		Password:  "pw1",
		FirstName: "Alice",
		LastName:  "A",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	proj, token, err := svc.Login(models.LoginRequest{LoginName: "alice", Password: "pw1"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" {
		t.Fatal("Login returned empty session token")
	}
	if proj.FirstName != "Alice" || proj.LastName != "A" {
		t.Fatalf("Login projection = %+v", proj)
	}

	// Same credentials keep resolving to the same identifier.
	again, _, err := svc.Login(models.LoginRequest{LoginName: "alice", Password: "pw1"})
	if err != nil {
		t.Fatalf("second Login: %v", err)
	}
	if again.ID != proj.ID {
		t.Fatalf("login ids differ: %d vs %d", again.ID, proj.ID)
	}

	// And the session maps back to that identifier.
	userID, err := sessions.Get(token)
	if err != nil {
		t.Fatalf("session Get: %v", err)
	}
	if userID != proj.ID {
		t.Fatalf("session user = %d, want %d", userID, proj.ID)
	}
}

func TestRegisterDuplicateLoginName(t *testing.T) {
	users := newFakeUserStore()
	svc, sessions := newAuthService(users)
	defer sessions.Close()

	req := models.RegisterRequest{LoginName: "alice", Password: "pw1", FirstName: "Alice", LastName: "A"}
	if err := svc.Register(req); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	if err := svc.Register(req); !errors.Is(err, ErrLoginNameTaken) {
		t.Fatalf("second Register = %v, want ErrLoginNameTaken", err)
	}

	all, _ := users.GetAll()
	if len(all) != 1 {
		t.Fatalf("got %d users after duplicate register, want 1", len(all))
	}
}

func TestRegisterStoresHashedPassword(t *testing.T) {
	users := newFakeUserStore()
	svc, sessions := newAuthService(users)
	defer sessions.Close()

	if err := svc.Register(models.RegisterRequest{LoginName: "bob", Password: "hunter2", FirstName: "Bob", LastName: "B"}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	stored, err := users.GetByLoginName("bob")
	if err != nil {
		t.Fatalf("GetByLoginName: %v", err)
	}
	if stored.PasswordHash == "hunter2" {
		t.Fatal("password stored in plaintext")
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	users := newFakeUserStore()
	svc, sessions := newAuthService(users)
	defer sessions.Close()

	if err := svc.Register(models.RegisterRequest{LoginName: "alice", Password: "pw1", FirstName: "Alice", LastName: "A"}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, _, err := svc.Login(models.LoginRequest{LoginName: "alice", Password: "nope"}); !errors.Is(err, ErrInvalidLogin) {
		t.Fatalf("wrong password = %v, want ErrInvalidLogin", err)
	}
	if _, _, err := svc.Login(models.LoginRequest{LoginName: "nobody", Password: "pw1"}); !errors.Is(err, ErrInvalidLogin) {
		t.Fatalf("unknown user = %v, want ErrInvalidLogin", err)
	}
}

func TestLogoutDestroysSession(t *testing.T) {
	users := newFakeUserStore()
	svc, sessions := newAuthService(users)
	defer sessions.Close()

	if err := svc.Register(models.RegisterRequest{LoginName: "alice", Password: "pw1", FirstName: "Alice", LastName: "A"}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	_, token, err := svc.Login(models.LoginRequest{LoginName: "alice", Password: "pw1"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if err := svc.Logout(token); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if _, err := sessions.Get(token); !errors.Is(err, session.ErrNotFound) {
		t.Fatal("session still valid after logout")
	}
	if err := svc.Logout(token); !errors.Is(err, session.ErrNotFound) {
		t.Fatalf("second Logout = %v, want session.ErrNotFound", err)
	}
}
