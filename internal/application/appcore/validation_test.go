package appcore_test

import (
	"strings"
	"testing"

	"github.com/stkrizh/conduit/internal/application/appcore"
)

func TestValidateRequired(t *testing.T) {
	if err := appcore.ValidateRequired("field", "value"); err != nil {
		t.Errorf("expected no error for non-empty value, got: %v", err)
	}
	if err := appcore.ValidateRequired("field", ""); err == nil {
		t.Error("expected error for empty value")
	}
}

func TestValidateEmail(t *testing.T) {
	cases := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"valid", "user@example.com", false},
		{"valid with subdomain", "user@mail.example.com", false},
		{"empty", "", true},
		{"no at sign", "user.example.com", true},
		{"no dot after at", "user@examplecom", true},
		{"too long", strings.Repeat("a", appcore.MaxEmailLength) + "@example.com", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := appcore.ValidateEmail("email", tc.value)
			if tc.wantErr && err == nil {
				t.Errorf("expected error for %q", tc.value)
			}
			if !tc.wantErr && err != nil {
				t.Errorf("expected no error for %q, got: %v", tc.value, err)
			}
		})
	}
}

func TestValidateUsername(t *testing.T) {
	cases := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"valid", "jake_91", false},
		{"valid with hyphen", "jake-91", false},
		{"empty", "", true},
		{"spaces", "jake smith", true},
		{"unicode", "джейк", true},
		{"too long", strings.Repeat("a", appcore.MaxUsernameLength+1), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := appcore.ValidateUsername("username", tc.value)
			if tc.wantErr && err == nil {
				t.Errorf("expected error for %q", tc.value)
			}
			if !tc.wantErr && err != nil {
				t.Errorf("expected no error for %q, got: %v", tc.value, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	if err := appcore.ValidatePassword("password", "correct horse battery staple"); err != nil {
		t.Errorf("expected no error, got: %v", err)
	}
	if err := appcore.ValidatePassword("password", ""); err == nil {
		t.Error("expected error for empty password")
	}
	if err := appcore.ValidatePassword("password", strings.Repeat("x", appcore.MaxPasswordLength+1)); err == nil {
		t.Error("expected error for oversized password")
	}
}

func TestValidationError_Message(t *testing.T) {
	err := appcore.NewValidationError("email", "must be a valid email address")

	if got := err.Error(); got != "validation error on field 'email': must be a valid email address" {
		t.Errorf("unexpected message: %q", got)
	}
}
