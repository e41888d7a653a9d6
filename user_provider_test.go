package auth_test

import (
	"context"
	"testing"

	auth "github.com/coder-vc1/Blog-Application"
	"github.com/goliatone/go-errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockUserStore implements auth.UserStore for testing
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*auth.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.User), args.Error(1)
}

func newStoredUser(t *testing.T, email, password string) *auth.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	return &auth.User{
		ID:           uuid.New(),
		Email:        email,
		Name:         "Test User",
		PasswordHash: hash,
	}
}

func TestVerifyIdentity(t *testing.T) {
	user := newStoredUser(t, "alice@example.com", "correct-horse-battery")

	tests := []struct {
		name     string
		email    string
		password string
		setup    func(store *MockUserStore)
		wantErr  bool
	}{
		{
			name:     "valid credentials",
			email:    "alice@example.com",
			password: "correct-horse-battery",
			setup: func(store *MockUserStore) {
				store.On("GetByEmail", mock.Anything, "alice@example.com").Return(user, nil)
			},
			wantErr: false,
		},
		{
			name:     "wrong password",
			email:    "alice@example.com",
			password: "nope",
			setup: func(store *MockUserStore) {
				store.On("GetByEmail", mock.Anything, "alice@example.com").Return(user, nil)
			},
			wantErr: true,
		},
		{
			name:     "unknown email",
			email:    "nobody@example.com",
			password: "whatever",
			setup: func(store *MockUserStore) {
				store.On("GetByEmail", mock.Anything, "nobody@example.com").
					Return(nil, auth.ErrUserNotFound)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &MockUserStore{}
			tt.setup(store)

			provider := auth.NewUserProvider(store)
			identity, err := provider.VerifyIdentity(context.Background(), tt.email, tt.password)

			if tt.wantErr {
				assert.ErrorIs(t, err, auth.ErrMismatchedHashAndPassword)
				assert.Nil(t, identity)
			} else {
				assert.NoError(t, err)
				require.NotNil(t, identity)
				assert.Equal(t, user.ID.String(), identity.ID())
				assert.Equal(t, user.Email, identity.Email())
			}
			store.AssertExpectations(t)
		})
	}
}

// The credential store's unknown-email error must carry the go-errors
// NotFound category: that is what the provider branches on to collapse
// a missing user into a credential mismatch. If the classification ever
// drifts, an unknown email would surface as an internal error while a
// wrong password stays a 401, making accounts enumerable.
func TestUserNotFoundClassification(t *testing.T) {
	assert.True(t, errors.IsNotFound(auth.ErrUserNotFound))

	store := &MockUserStore{}
	store.On("GetByEmail", mock.Anything, "ghost@example.com").
		Return(nil, auth.ErrUserNotFound)

	provider := auth.NewUserProvider(store)

	_, err := provider.VerifyIdentity(context.Background(), "ghost@example.com", "whatever")
	assert.ErrorIs(t, err, auth.ErrMismatchedHashAndPassword)
	assert.False(t, errors.IsInternal(err))
}

func TestVerifyIdentityDoesNotLeakWhichPartFailed(t *testing.T) {
	user := newStoredUser(t, "alice@example.com", "correct-horse-battery")

	store := &MockUserStore{}
	store.On("GetByEmail", mock.Anything, "alice@example.com").Return(user, nil)
	store.On("GetByEmail", mock.Anything, "ghost@example.com").
		Return(nil, auth.ErrUserNotFound)

	provider := auth.NewUserProvider(store)

	_, errMismatch := provider.VerifyIdentity(context.Background(), "alice@example.com", "wrong")
	_, errNotFound := provider.VerifyIdentity(context.Background(), "ghost@example.com", "wrong")

	// user enumeration resistance: same error either way
	assert.Equal(t, errMismatch, errNotFound)
}

func TestFindIdentityByIdentifier(t *testing.T) {
	user := newStoredUser(t, "alice@example.com", "correct-horse-battery")

	store := &MockUserStore{}
	store.On("GetByEmail", mock.Anything, "alice@example.com").Return(user, nil)
	store.On("GetByEmail", mock.Anything, "ghost@example.com").
		Return(nil, auth.ErrUserNotFound)

	provider := auth.NewUserProvider(store)

	identity, err := provider.FindIdentityByIdentifier(context.Background(), "alice@example.com")
	assert.NoError(t, err)
	assert.Equal(t, user.Email, identity.Email())

	identity, err = provider.FindIdentityByIdentifier(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, auth.ErrIdentityNotFound)
	assert.Nil(t, identity)
}
