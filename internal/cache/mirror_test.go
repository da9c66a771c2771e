package cache

import (
	"context"
	"errors"
	"testing"

	"github.com/forkfeed/forkfeed/pkg/config"
)

func TestNewDisabled(t *testing.T) {
	m, err := New(&config.RedisConfig{Enabled: false})
	if err != nil {
		t.Fatalf("Disabled mirror should not error: %v", err)
	}
	if m != nil {
		t.Fatal("Disabled mirror should be nil")
	}
}

func TestNilMirrorIsSafe(t *testing.T) {
	var m *Mirror
	ctx := context.Background()

	if err := m.Put(ctx, "recipes", "", nil); !errors.Is(err, ErrMirrorDisabled) {
		t.Errorf("Put on nil mirror = %v, want ErrMirrorDisabled", err)
	}
	if err := m.Get(ctx, "recipes", "", nil); !errors.Is(err, ErrMirrorDisabled) {
		t.Errorf("Get on nil mirror = %v, want ErrMirrorDisabled", err)
	}
	if err := m.Drop(ctx, "recipes", ""); !errors.Is(err, ErrMirrorDisabled) {
		t.Errorf("Drop on nil mirror = %v, want ErrMirrorDisabled", err)
	}
	if err := m.Close(); err != nil {
		t.Errorf("Close on nil mirror = %v, want nil", err)
	}
}

func TestKey(t *testing.T) {
	tests := []struct {
		kind     string
		scope    string
		expected string
	}{
		{"recipes", "", "collection:recipes"},
		{"favorites", "user-1", "collection:favorites:user-1"},
		{"shopping_list", "user-2", "collection:shopping_list:user-2"},
	}

	for _, tt := range tests {
		if got := Key(tt.kind, tt.scope); got != tt.expected {
			t.Errorf("Key(%q, %q) = %q, want %q", tt.kind, tt.scope, got, tt.expected)
		}
	}
}
