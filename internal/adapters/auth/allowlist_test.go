package auth

import (
	"context"
	"testing"
)

func TestAllowList(t *testing.T) {
	a := NewAllowList([]string{"1001", " 1002 "}, []string{"Seek"})
	ctx := context.Background()

	tests := []struct {
		name   string
		user   string
		action string
		want   bool
	}{
		{"anyone can move", "42", "next", true},
		{"anyone can bookmark", "42", "bookmark", true},
		{"admin can seek", "1001", "seek", true},
		{"trimmed admin can seek", "1002", "SEEK", true},
		{"non-admin cannot seek", "42", "seek", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.IsAuthorized(ctx, tt.user, tt.action); got != tt.want {
				t.Errorf("IsAuthorized(%q, %q) = %v, want %v", tt.user, tt.action, got, tt.want)
			}
		})
	}
}
