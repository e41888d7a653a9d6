// Package account implements the user facing account flows: signup,
// login, and the current user lookup. Token minting and credential
// verification are delegated to the auth core.
package account

import (
	"context"

	auth "github.com/coder-vc1/Blog-Application"
	"github.com/goliatone/go-errors"
	"github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// Users is the slice of the credential store the account flows need.
type Users interface {
	Register(ctx context.Context, user *auth.User) (*auth.User, error)
	GetByEmail(ctx context.Context, email string) (*auth.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// Service wires the credential store and the authenticator together.
type Service struct {
	users      Users
	auther     auth.Authenticator
	bcryptCost int
	logger     auth.Logger
}

func NewService(users Users, auther auth.Authenticator, bcryptCost int) *Service {
	return &Service{
		users:      users,
		auther:     auther,
		bcryptCost: bcryptCost,
	}
}

func (s *Service) WithLogger(l auth.Logger) *Service {
	if l != nil {
		s.logger = l
	}
	return s
}

// Signup creates a credential record and returns the new user together
// with a freshly minted token, so a new account is signed in
// immediately. The token comes from the same issuance path login uses.
func (s *Service) Signup(ctx context.Context, name, email, password string) (*auth.User, string, error) {
	taken, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, "", errors.Wrap(err, errors.CategoryInternal, "failed to check email availability")
	}

	if taken {
		return nil, "", ErrEmailTaken
	}

	hash, err := auth.HashPasswordWithCost(password, s.bcryptCost)
	if err != nil {
		var richErr *errors.Error
		if errors.As(err, &richErr) {
			return nil, "", errors.Wrap(richErr, errors.CategoryValidation, "invalid password provided")
		}
		return nil, "", errors.Wrap(err, errors.CategoryInternal, "failed to hash password")
	}

	user := &auth.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}

	// Deterministic id derived from the email. Lets clients and tests
	// predict the id without a read back.
	if id, err := hashid.NewUUID(email); err == nil {
		user.ID = id
	} else {
		user.ID = uuid.New()
	}

	// The unique index on email still backstops the availability check
	// above when two signups for the same email race.
	user, err = s.users.Register(ctx, user)
	if err != nil {
		if s.logger != nil {
			s.logger.Error("signup could not create user", "error", err)
		}
		return nil, "", errors.Wrap(err, errors.CategoryConflict, "could not create user")
	}

	token, err := s.auther.IssueTokenFor(ctx, user.Email)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// Login verifies the credential pair and returns a fresh token.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	return s.auther.Login(ctx, email, password)
}

// CurrentUser resolves the request principal to its stored record. A
// valid token whose account has since been removed reads as a failed
// authentication, not a missing resource.
func (s *Service) CurrentUser(ctx context.Context) (*auth.User, error) {
	claims, ok := auth.GetClaims(ctx)
	if !ok {
		return nil, auth.ErrIdentityNotFound
	}

	user, err := s.users.GetByEmail(ctx, claims.Subject())
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, auth.ErrIdentityNotFound
		}
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to load current user")
	}

	return user, nil
}
