package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/TusharMishra1811/writo-education-assessment-backend/domain"
)

func testUser() *domain.User {
	return &domain.User{
		ID:        42,
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
	}
}

func TestJWTServiceImpl_GenerateAndValidate(t *testing.T) {
	svc := NewJWTService("test-secret", "writo-education", 24*time.Hour)

	token, err := svc.Generate(testUser())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if claims.UserID != 42 {
		t.Errorf("expected user id 42, got %d", claims.UserID)
	}
	if claims.FirstName != "Jane" || claims.LastName != "Doe" {
		t.Errorf("unexpected name claims: %s %s", claims.FirstName, claims.LastName)
	}
	if claims.Email != "jane@example.com" {
		t.Errorf("expected email claim, got %s", claims.Email)
	}

	window := claims.ExpiresAt - claims.IssuedAt
	if window != int64((24 * time.Hour).Seconds()) {
		t.Errorf("expected 24h validity window, got %d seconds", window)
	}
}

func TestJWTServiceImpl_Validate_Expired(t *testing.T) {
	svc := NewJWTService("test-secret", "writo-education", -time.Minute)

	token, err := svc.Generate(testUser())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = svc.Validate(token)
	if !errors.Is(err, domain.ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestJWTServiceImpl_Validate_WrongSecret(t *testing.T) {
	issuer := NewJWTService("secret-a", "writo-education", 24*time.Hour)
	verifier := NewJWTService("secret-b", "writo-education", 24*time.Hour)

	token, err := issuer.Generate(testUser())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = verifier.Validate(token)
	if !errors.Is(err, domain.ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestJWTServiceImpl_Validate_Garbage(t *testing.T) {
	svc := NewJWTService("test-secret", "writo-education", 24*time.Hour)

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := svc.Validate(token); !errors.Is(err, domain.ErrTokenInvalid) {
			t.Errorf("token %q: expected ErrTokenInvalid, got %v", token, err)
		}
	}
}
