package user_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stkrizh/conduit/internal/domain/errs"
	"github.com/stkrizh/conduit/internal/domain/user"
	"github.com/stkrizh/conduit/internal/domain/uuid"
)

func TestNewUser(t *testing.T) {
	u, err := user.NewUser("jake", "jake@example.com", "$2a$10$hash")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if u.ID().IsZero() {
		t.Error("expected a generated ID")
	}
	if u.Username() != "jake" {
		t.Errorf("expected username 'jake', got %q", u.Username())
	}
	if u.Email() != "jake@example.com" {
		t.Errorf("expected email 'jake@example.com', got %q", u.Email())
	}
	if u.PasswordHash() != "$2a$10$hash" {
		t.Error("expected password hash to be stored as given")
	}
	if u.CreatedAt().IsZero() || u.UpdatedAt().IsZero() {
		t.Error("expected timestamps to be set")
	}
}

func TestNewUser_Invalid(t *testing.T) {
	cases := []struct {
		name     string
		username string
		email    string
		hash     string
	}{
		{"empty username", "", "jake@example.com", "hash"},
		{"empty email", "jake", "", "hash"},
		{"empty password hash", "jake", "jake@example.com", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := user.NewUser(tc.username, tc.email, tc.hash)
			if !errors.Is(err, errs.ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got: %v", err)
			}
		})
	}
}

func TestReconstruct(t *testing.T) {
	id := uuid.NewUUID()
	created := time.Date(2023, 5, 1, 12, 0, 0, 0, time.UTC)
	updated := created.Add(48 * time.Hour)

	u := user.Reconstruct(id, "jake", "jake@example.com", "I work at statefarm", "https://img.example.com/jake.jpg", "hash", created, updated)

	if u.ID() != id {
		t.Error("expected reconstructed ID to match")
	}
	if u.Bio() != "I work at statefarm" {
		t.Errorf("unexpected bio: %q", u.Bio())
	}
	if u.Image() != "https://img.example.com/jake.jpg" {
		t.Errorf("unexpected image: %q", u.Image())
	}
	if !u.CreatedAt().Equal(created) || !u.UpdatedAt().Equal(updated) {
		t.Error("expected timestamps to round-trip unchanged")
	}
}
