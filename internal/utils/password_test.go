package utils

import "testing"

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("letmein123")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "" || hash == "letmein123" {
		t.Error("HashPassword() should return a non-empty hash distinct from the input")
	}
}

func TestHashPassword_Salted(t *testing.T) {
	h1, _ := HashPassword("same-password")
	h2, _ := HashPassword("same-password")
	if h1 == h2 {
		t.Error("same password should produce different hashes (salt)")
	}
}

func TestCheckPassword(t *testing.T) {
	hash, _ := HashPassword("correct-horse")

	tests := []struct {
		name     string
		password string
		expected bool
	}{
		{"correct password", "correct-horse", true},
		{"wrong password", "battery-staple", false},
		{"empty password", "", false},
		{"case sensitive", "Correct-Horse", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckPassword(tt.password, hash); got != tt.expected {
				t.Errorf("CheckPassword(%q) = %v, expected %v", tt.password, got, tt.expected)
			}
		})
	}
}

func TestCheckPassword_InvalidHash(t *testing.T) {
	if CheckPassword("password", "not-a-bcrypt-hash") {
		t.Error("CheckPassword should return false for a malformed hash")
	}
}
