package utils

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	m := NewTokenManager("secret", SessionTTL)
	tok, err := m.GenerateToken("user-1")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	sub, exp, err := m.ExtractIDFromToken(tok)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if sub != "user-1" {
		t.Fatalf("sub: got %q", sub)
	}
	if d := time.Until(exp); d < 23*time.Hour || d > 25*time.Hour {
		t.Fatalf("unexpected expiry in %v", d)
	}
}

func TestTokenWrongSecret(t *testing.T) {
	tok, _ := NewTokenManager("a", time.Hour).GenerateToken("user-1")
	if _, _, err := NewTokenManager("b", time.Hour).ExtractIDFromToken(tok); err == nil {
		t.Fatalf("expected signature error")
	}
}

func TestTokenExpired(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)
	m.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	tok, err := m.GenerateToken("user-1")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, _, err := NewTokenManager("secret", time.Hour).ExtractIDFromToken(tok); err == nil {
		t.Fatalf("expected expiry error")
	}
}

func TestTokenMissingSubject(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)
	tok, _ := m.GenerateToken("")
	if _, _, err := m.ExtractIDFromToken(tok); err != ErrMissingSub {
		t.Fatalf("expected ErrMissingSub, got %v", err)
	}
}

func TestHashTokenStable(t *testing.T) {
	if HashToken("abc") != HashToken("abc") {
		t.Fatalf("hash not deterministic")
	}
	if HashToken("abc") == HashToken("abd") {
		t.Fatalf("hash collision on trivial input")
	}
}
