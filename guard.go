package auth

import (
	"context"
)

// AuthorizeMutation decides whether the principal may mutate a resource
// owned by resourceOwnerID. Single owner semantics only: it succeeds iff
// the two ids are equal. Callers must invoke it before applying any
// change, never after.
func AuthorizeMutation(principalID, resourceOwnerID string) error {
	if principalID == "" || principalID != resourceOwnerID {
		return ErrNotResourceOwner
	}
	return nil
}

// AuthorizeContextMutation resolves the principal from the request
// context and runs the ownership check against it.
func AuthorizeContextMutation(ctx context.Context, resourceOwnerID string) error {
	principalID, ok := CurrentPrincipalID(ctx)
	if !ok {
		return ErrNotResourceOwner
	}
	return AuthorizeMutation(principalID, resourceOwnerID)
}
