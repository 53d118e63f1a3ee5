package service

import (
	"errors"
	"testing"

	"github.com/photoshare/photoshare-backend/internal/models"
)

func TestUserList(t *testing.T) {
	users := newFakeUserStore()
	svc := NewUserService(users)

	aliceID := addUser(t, users, "alice", "Alice", "A")
	bobID := addUser(t, users, "bob", "Bob", "B")

	list, err := svc.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("got %d users, want 2", len(list))
	}

	want := []models.UserProjection{
		{ID: aliceID, FirstName: "Alice", LastName: "A"},
		{ID: bobID, FirstName: "Bob", LastName: "B"},
	}
	for i := range want {
		if list[i] != want[i] {
			t.Fatalf("list[%d] = %+v, want %+v", i, list[i], want[i])
		}
	}
}

func TestUserGetByID(t *testing.T) {
	users := newFakeUserStore()
	svc := NewUserService(users)

	u := &models.User{
		LoginName:    "alice",
		PasswordHash: "hash",
		FirstName:    "Alice",
		LastName:     "A",
		Location:     "Oslo",
		Occupation:   "engineer",
	}
	if err := users.Create(u); err != nil {
		t.Fatalf("Create: %v", err)
	}

	profile, err := svc.GetByID(u.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if profile.FirstName != "Alice" || profile.Location != "Oslo" || profile.Occupation != "engineer" {
		t.Fatalf("profile = %+v", profile)
	}
}

func TestUserGetByIDNotFound(t *testing.T) {
	svc := NewUserService(newFakeUserStore())

	if _, err := svc.GetByID(404); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("GetByID = %v, want ErrUserNotFound", err)
	}
}
