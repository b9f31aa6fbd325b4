package kv

import (
	"errors"
	"testing"
)

func TestMemoryGetSet(t *testing.T) {
	s := NewMemory()

	if _, ok := s.Get("missing"); ok {
		t.Error("Get() on empty store should report missing")
	}

	if err := s.Set("portfolio-theme", "green"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if v, ok := s.Get("portfolio-theme"); !ok || v != "green" {
		t.Errorf("Get() = %q, %v, expected green, true", v, ok)
	}

	if err := s.Set("", "x"); !errors.Is(err, ErrEmptyKey) {
		t.Errorf("Set(\"\") error = %v, expected ErrEmptyKey", err)
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", s.Len())
	}
}

func TestNamespaceIsolation(t *testing.T) {
	base := NewMemory()
	alice := NewNamespace(base, "alice")
	bob := NewNamespace(base, "bob")

	if err := alice.Set("invaders-highscore", "300"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	if _, ok := bob.Get("invaders-highscore"); ok {
		t.Error("bob should not see alice's keys")
	}
	if v, ok := base.Get("alice.invaders-highscore"); !ok || v != "300" {
		t.Errorf("base Get() = %q, %v, expected prefixed key", v, ok)
	}
}

func TestNamespaceEmptyPrefix(t *testing.T) {
	base := NewMemory()
	if got := NewNamespace(base, "  "); got != Store(base) {
		t.Error("empty prefix should return the underlying store")
	}
}
