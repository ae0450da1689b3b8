package auth

import (
	"errors"
	"testing"

	"github.com/lshigami/atcprep/config"
	"github.com/lshigami/atcprep/internal/model"
)

func newManager(secret string) *TokenManager {
	return NewTokenManager(&config.Config{Auth: config.Auth{JWTSecret: secret, JWTTTLHours: 1}})
}

func TestIssueAndParse(t *testing.T) {
	m := newManager("secret")
	token, _, err := m.Issue(&model.User{ID: "u-42", Role: model.RoleAdmin})
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	identity, err := m.Parse(token)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if identity.UserID != "u-42" || !identity.IsAdmin() {
		t.Fatalf("unexpected identity %+v", identity)
	}
}

func TestParseRejectsForeignSignature(t *testing.T) {
	token, _, err := newManager("one").Issue(&model.User{ID: "u1", Role: model.RoleUser})
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if _, err := newManager("two").Parse(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
	if _, err := newManager("one").Parse("garbage"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for garbage, got %v", err)
	}
}

func TestNilIdentityIsNotAdmin(t *testing.T) {
	var identity *Identity
	if identity.IsAdmin() {
		t.Fatalf("nil identity must not be admin")
	}
}
