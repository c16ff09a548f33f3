package utils

import (
	"testing"
	"time"
)

func init() {
	SetJWTSecret("unit-test-signing-secret")
}

func TestGenerateToken(t *testing.T) {
	token, err := GenerateToken(1, "admin", "admin", 24)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	if token == "" {
		t.Error("GenerateToken() returned empty token")
	}
}

func TestParseToken_RoundTrip(t *testing.T) {
	token, err := GenerateToken(42, "editor", "admin", 24)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	claims, err := ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken() error = %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, expected 42", claims.UserID)
	}
	if claims.Username != "editor" {
		t.Errorf("Username = %q, expected %q", claims.Username, "editor")
	}
	if claims.Role != "admin" {
		t.Errorf("Role = %q, expected %q", claims.Role, "admin")
	}
}

func TestParseToken_Invalid(t *testing.T) {
	for _, token := range []string{"", "garbage", "a.b.c"} {
		if _, err := ParseToken(token); err == nil {
			t.Errorf("ParseToken(%q) should return error", token)
		}
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	SetJWTSecret("first-secret")
	token, _ := GenerateToken(1, "admin", "admin", 24)

	SetJWTSecret("second-secret")
	_, err := ParseToken(token)

	SetJWTSecret("unit-test-signing-secret")

	if err == nil {
		t.Error("ParseToken should fail after the secret changes")
	}
}

func TestGenerateToken_Expiration(t *testing.T) {
	token, _ := GenerateToken(1, "admin", "admin", 2)
	claims, err := ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken() error = %v", err)
	}

	expected := time.Now().Add(2 * time.Hour)
	diff := claims.ExpiresAt.Time.Sub(expected)
	if diff < -time.Minute || diff > time.Minute {
		t.Errorf("expiration off by more than a minute: %v", diff)
	}
}
