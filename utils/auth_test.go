// utils/auth_test.go
package utils

import "testing"

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatal(err)
	}
	if !CheckPasswordHash("correct horse battery staple", hash) {
		t.Fatal("expected password to match its hash")
	}
	if CheckPasswordHash("wrong password", hash) {
		t.Fatal("expected mismatch for wrong password")
	}
}

func TestGenerateToken(t *testing.T) {
	t.Setenv("JWT_SECRET", GenerateJWTSecret())

	token, err := GenerateToken("8a0f0566-1e62-4a3c-9f2a-1f6f5a3a9b2c")
	if err != nil {
		t.Fatal(err)
	}
	if token == "" {
		t.Fatal("expected a signed token")
	}
}

func TestGenerateToken_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	if _, err := GenerateToken("user"); err == nil {
		t.Fatal("expected an error without JWT_SECRET")
	}
}
