package auth

import (
	"strings"
	"testing"
	"time"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestJWTRoundTrip(t *testing.T) {
	m := NewJWTManager(testSecret, "marketing-cms-api", time.Hour)

	token, err := m.Generate("user-1", "admin@example.com", "ADMIN")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	claims, err := m.Validate(token)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Errorf("expected user-1, got %s", claims.UserID)
	}
	if claims.Email != "admin@example.com" {
		t.Errorf("expected admin@example.com, got %s", claims.Email)
	}
	if claims.Role != "ADMIN" {
		t.Errorf("expected ADMIN, got %s", claims.Role)
	}
}

func TestJWTRejectsTamperedToken(t *testing.T) {
	m := NewJWTManager(testSecret, "marketing-cms-api", time.Hour)

	token, _ := m.Generate("user-1", "user@example.com", "USER")
	tampered := token[:len(token)-2] + "xx"

	if _, err := m.Validate(tampered); err == nil {
		t.Error("tampered token should be rejected")
	}
}

func TestJWTRejectsWrongIssuer(t *testing.T) {
	issued := NewJWTManager(testSecret, "other-service", time.Hour)
	validated := NewJWTManager(testSecret, "marketing-cms-api", time.Hour)

	token, _ := issued.Generate("user-1", "user@example.com", "USER")
	_, err := validated.Validate(token)
	if err == nil {
		t.Fatal("token from wrong issuer should be rejected")
	}
	if !strings.Contains(err.Error(), "issuer") {
		t.Errorf("expected issuer error, got %v", err)
	}
}

func TestJWTRejectsExpiredToken(t *testing.T) {
	m := NewJWTManager(testSecret, "marketing-cms-api", -time.Minute)

	token, _ := m.Generate("user-1", "user@example.com", "USER")
	if _, err := m.Validate(token); err == nil {
		t.Error("expired token should be rejected")
	}
}

func TestJWTRejectsEmptyToken(t *testing.T) {
	m := NewJWTManager(testSecret, "marketing-cms-api", time.Hour)
	if _, err := m.Validate(""); err == nil {
		t.Error("empty token should be rejected")
	}
}

func TestPasswordHashAndVerify(t *testing.T) {
	hash, err := HashPassword("secret-password", 4)
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "secret-password" {
		t.Fatal("hash must not equal plaintext")
	}

	if !VerifyPassword("secret-password", hash) {
		t.Error("correct password should verify")
	}
	if VerifyPassword("wrong-password", hash) {
		t.Error("wrong password should not verify")
	}
}
