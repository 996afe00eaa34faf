// Package auth contains Authorizer implementations.
package auth

import (
	"context"
	"strings"

	"github.com/outerwinnie/remembrar/internal/ports/secondary"
)

// AllowList gates privileged actions behind a set of admin user IDs.
// Actions not listed as privileged are open to everyone.
type AllowList struct {
	admins     map[string]bool
	privileged map[string]bool
}

// NewAllowList creates an AllowList. Action names are case-insensitive.
func NewAllowList(admins, privileged []string) *AllowList {
	a := &AllowList{
		admins:     make(map[string]bool, len(admins)),
		privileged: make(map[string]bool, len(privileged)),
	}
	for _, id := range admins {
		a.admins[strings.TrimSpace(id)] = true
	}
	for _, action := range privileged {
		a.privileged[strings.ToLower(strings.TrimSpace(action))] = true
	}
	return a
}

// IsAuthorized implements secondary.Authorizer.
func (a *AllowList) IsAuthorized(ctx context.Context, userID, action string) bool {
	if !a.privileged[strings.ToLower(action)] {
		return true
	}
	return a.admins[userID]
}

var _ secondary.Authorizer = (*AllowList)(nil)
