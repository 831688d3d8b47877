package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHasherRoundTrip(t *testing.T) {
	t.Parallel()

	h := NewHasher(bcrypt.MinCost)
	hash, err := h.Hash("p")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "p" {
		t.Fatalf("hash must not equal the password")
	}
	if !h.Compare(hash, "p") {
		t.Fatalf("expected password to match")
	}
	if h.Compare(hash, "q") {
		t.Fatalf("expected mismatch for wrong password")
	}
}

func TestHasherUsesConfiguredCost(t *testing.T) {
	t.Parallel()

	hash, err := NewHasher(bcrypt.MinCost + 1).Hash("p")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("cost: %v", err)
	}
	if cost != bcrypt.MinCost+1 {
		t.Fatalf("expected cost %d, got %d", bcrypt.MinCost+1, cost)
	}
}

func TestHasherFallsBackToDefaultCost(t *testing.T) {
	t.Parallel()

	if NewHasher(0).cost != bcrypt.DefaultCost {
		t.Fatalf("expected default cost fallback")
	}
}
