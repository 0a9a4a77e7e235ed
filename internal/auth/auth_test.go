package auth

import (
	"errors"
	"testing"
	"time"
)

func TestTokenManager(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	token, err := m.Generate("draw-1", "giver-1")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	claims, err := m.Validate(token)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if claims.DrawID != "draw-1" || claims.GiverID != "giver-1" {
		t.Errorf("Unexpected claims: %+v", claims)
	}

	t.Run("wrong secret", func(t *testing.T) {
		other := NewTokenManager("other-secret", time.Hour)
		if _, err := other.Validate(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("expired", func(t *testing.T) {
		short := NewTokenManager("test-secret", -time.Minute)
		expired, err := short.Generate("draw-1", "giver-1")
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if _, err := m.Validate(expired); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("garbage", func(t *testing.T) {
		if _, err := m.Validate("not-a-token"); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Expected ErrInvalidToken, got %v", err)
		}
	})
}

func TestPassphrase(t *testing.T) {
	if _, err := HashPassphrase("short"); !errors.Is(err, ErrWeakPassphrase) {
		t.Errorf("Expected ErrWeakPassphrase, got %v", err)
	}

	hash, err := HashPassphrase("mistletoe")
	if err != nil {
		t.Fatalf("HashPassphrase failed: %v", err)
	}
	if hash == "mistletoe" {
		t.Fatal("Expected passphrase to be hashed")
	}

	if err := CheckPassphrase(hash, "mistletoe"); err != nil {
		t.Errorf("CheckPassphrase failed for correct passphrase: %v", err)
	}
	if err := CheckPassphrase(hash, "mistleto3"); !errors.Is(err, ErrInvalidPassphrase) {
		t.Errorf("Expected ErrInvalidPassphrase, got %v", err)
	}
}
