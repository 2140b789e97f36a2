package redis

import (
	"testing"
	"time"

	"github.com/veterinario/clinic-system/internal/core/domain"
)

func TestNewSessionStore_UsesConfiguredTTL(t *testing.T) {
	store := NewSessionStore(nil, 10*time.Minute)
	if store.ttl != 10*time.Minute {
		t.Fatalf("ttl = %v, want 10m", store.ttl)
	}
}

func TestNewSessionStore_DefaultsToInactivityWindow(t *testing.T) {
	for _, ttl := range []time.Duration{0, -time.Minute} {
		store := NewSessionStore(nil, ttl)
		if store.ttl != domain.DefaultSessionTTL {
			t.Fatalf("ttl(%v) = %v, want %v", ttl, store.ttl, domain.DefaultSessionTTL)
		}
	}
}

func TestNewToken_OpaqueAndUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := newToken()
		if err != nil {
			t.Fatalf("newToken: %v", err)
		}
		if len(token) != 64 {
			t.Fatalf("token length = %d, want 64 hex chars (256 bits)", len(token))
		}
		if seen[token] {
			t.Fatal("duplicate token generated")
		}
		seen[token] = true
	}
}
