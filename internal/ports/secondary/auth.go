package secondary

import "context"

// Authorizer decides whether a user may perform an action.
// It is supplied by whatever front-end owns user identity.
type Authorizer interface {
	IsAuthorized(ctx context.Context, userID, action string) bool
}
