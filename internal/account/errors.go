package account

import "github.com/goliatone/go-errors"

const (
	TextCodeEmailTaken = "EMAIL_TAKEN"
)

// ErrEmailTaken is returned when a signup collides with an existing
// account. Unlike login failures this is deliberately specific: the
// caller just told us the email, so there is nothing to protect.
var ErrEmailTaken = errors.New("an account with this email already exists", errors.CategoryConflict).
	WithTextCode(TextCodeEmailTaken).
	WithCode(errors.CodeConflict)
