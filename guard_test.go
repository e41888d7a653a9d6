package auth_test

import (
	"context"
	"testing"

	auth "github.com/coder-vc1/Blog-Application"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestAuthorizeMutation(t *testing.T) {
	tests := []struct {
		name        string
		principalID string
		ownerID     string
		wantErr     bool
	}{
		{
			name:        "owner may mutate",
			principalID: "user-a",
			ownerID:     "user-a",
			wantErr:     false,
		},
		{
			name:        "non owner is forbidden",
			principalID: "user-b",
			ownerID:     "user-a",
			wantErr:     true,
		},
		{
			name:        "empty principal is forbidden",
			principalID: "",
			ownerID:     "user-a",
			wantErr:     true,
		},
		{
			name:        "empty principal and empty owner is forbidden",
			principalID: "",
			ownerID:     "",
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := auth.AuthorizeMutation(tt.principalID, tt.ownerID)
			if tt.wantErr {
				assert.ErrorIs(t, err, auth.ErrNotResourceOwner)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthorizeContextMutation(t *testing.T) {
	claims := &auth.JWTClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "alice@example.com"},
		UID:              "user-a",
	}
	ctx := auth.WithClaimsContext(context.Background(), claims)

	assert.NoError(t, auth.AuthorizeContextMutation(ctx, "user-a"))
	assert.ErrorIs(t, auth.AuthorizeContextMutation(ctx, "user-b"), auth.ErrNotResourceOwner)

	// anonymous context can never mutate
	assert.ErrorIs(t, auth.AuthorizeContextMutation(context.Background(), "user-a"), auth.ErrNotResourceOwner)
}
