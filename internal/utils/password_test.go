package utils

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_VerifiesOnlyOriginal(t *testing.T) {
	hash, err := HashPassword("secret1", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if hash == "secret1" {
		t.Fatal("hash must differ from plaintext")
	}
	if !CheckPassword("secret1", hash) {
		t.Error("expected original password to match")
	}
	if CheckPassword("secret2", hash) {
		t.Error("expected different password not to match")
	}
}

func TestHashPassword_Salted(t *testing.T) {
	a, _ := HashPassword("same", bcrypt.MinCost)
	b, _ := HashPassword("same", bcrypt.MinCost)
	if a == b {
		t.Error("expected two hashes of the same password to differ")
	}
}

func TestHashPassword_UsesCost(t *testing.T) {
	hash, _ := HashPassword("secret1", 5)
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cost != 5 {
		t.Errorf("expected cost 5, got %d", cost)
	}
}

func TestHashPassword_TooLong(t *testing.T) {
	if _, err := HashPassword(strings.Repeat("x", 73), bcrypt.MinCost); !errors.Is(err, ErrPasswordTooLong) {
		t.Errorf("expected ErrPasswordTooLong, got: %v", err)
	}
	// 36 two-byte runes: 72 bytes is still accepted
	if _, err := HashPassword(strings.Repeat("ж", 36), bcrypt.MinCost); err != nil {
		t.Errorf("expected 72 bytes to hash, got: %v", err)
	}
	// 37 two-byte runes are only 37 characters but 74 bytes
	if _, err := HashPassword(strings.Repeat("ж", 37), bcrypt.MinCost); !errors.Is(err, ErrPasswordTooLong) {
		t.Errorf("expected ErrPasswordTooLong for 74 bytes, got: %v", err)
	}
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	for _, hash := range []string{"", "plain", "$2a$10$short"} {
		if CheckPassword("secret1", hash) {
			t.Errorf("expected false for malformed hash %q", hash)
		}
	}
}
