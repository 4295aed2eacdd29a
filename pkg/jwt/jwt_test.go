package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/NguyenMaiPhuong311/ISD-Final/config"
)

func newTestManager() *Manager {
	return NewManager(&config.AuthConfig{
		JWTSecret: "test-secret-key-for-unit-testing-2026",
		TokenTTL:  time.Hour,
	})
}

func TestGenerateAndParseToken(t *testing.T) {
	m := newTestManager()

	token, err := m.GenerateToken("user-1", "teacher")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}

	if claims.UserID != "user-1" {
		t.Errorf("UserID = %s, want user-1", claims.UserID)
	}
	if claims.Role != "teacher" {
		t.Errorf("Role = %s, want teacher", claims.Role)
	}
	if claims.ID == "" {
		t.Error("JTI should not be empty")
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	m := newTestManager()
	token, err := m.GenerateToken("user-1", "admin")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	other := NewManager(&config.AuthConfig{JWTSecret: "a-different-secret-entirely", TokenTTL: time.Hour})
	if _, err := other.ParseToken(token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestParseToken_Expired(t *testing.T) {
	m := NewManager(&config.AuthConfig{
		JWTSecret: "test-secret-key-for-unit-testing-2026",
		TokenTTL:  -time.Minute,
	})
	token, err := m.GenerateToken("user-1", "student")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := m.ParseToken(token); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestParseToken_Garbage(t *testing.T) {
	m := newTestManager()
	if _, err := m.ParseToken("not.a.token"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
