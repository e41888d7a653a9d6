package auth

import (
	"github.com/goliatone/go-errors"
)

const (
	TextCodeTokenMalformed    = "TOKEN_MALFORMED"
	TextCodeTokenBadSignature = "TOKEN_BAD_SIGNATURE"
	TextCodeTokenExpired      = "TOKEN_EXPIRED"
	TextCodeNotResourceOwner  = "NOT_RESOURCE_OWNER"
	TextCodeInvalidCreds      = "INVALID_CREDENTIALS"
	TextCodeUserNotFound      = "USER_NOT_FOUND"
)

// ErrTokenMalformed is returned when a token cannot be parsed into
// header, payload, and signature, or its claims cannot be decoded.
var ErrTokenMalformed = errors.New("malformed authentication token", errors.CategoryAuth).
	WithTextCode(TextCodeTokenMalformed).
	WithCode(errors.CodeUnauthorized)

// ErrTokenSignature is returned when the recomputed signature over
// header+payload does not match the one carried by the token.
var ErrTokenSignature = errors.New("invalid token signature", errors.CategoryAuth).
	WithTextCode(TextCodeTokenBadSignature).
	WithCode(errors.CodeUnauthorized)

// ErrTokenExpired is returned when a structurally valid, correctly signed
// token is past its expiration claim.
var ErrTokenExpired = errors.New("authentication token expired", errors.CategoryAuth).
	WithTextCode(TextCodeTokenExpired).
	WithCode(errors.CodeUnauthorized)

// ErrNotResourceOwner is returned by the authorization guard when the
// principal does not own the resource it is trying to mutate.
var ErrNotResourceOwner = errors.New("you are not allowed to modify this resource", errors.CategoryAuthz).
	WithTextCode(TextCodeNotResourceOwner).
	WithCode(errors.CodeForbidden)

// ErrUserNotFound is what the credential store returns for an unknown
// email. It carries the go-errors NotFound category so consumers can
// classify it with errors.IsNotFound regardless of the storage backend.
var ErrUserNotFound = errors.New("user not found", errors.CategoryNotFound).
	WithTextCode(TextCodeUserNotFound).
	WithCode(errors.CodeNotFound)

// ErrIdentityNotFound is the error we return for non found identities.
// The HTTP boundary surfaces it with the same message as a password
// mismatch so callers cannot probe which emails are registered.
var ErrIdentityNotFound = errors.New("invalid email or password", errors.CategoryAuth).
	WithTextCode(TextCodeInvalidCreds).
	WithCode(errors.CodeUnauthorized)

// ErrMismatchedHashAndPassword is returned when a password does not match
// the stored hash, or the stored hash is malformed.
var ErrMismatchedHashAndPassword = errors.New("invalid email or password", errors.CategoryAuth).
	WithTextCode(TextCodeInvalidCreds).
	WithCode(errors.CodeUnauthorized)

// ErrNoEmptyString is returned when an empty password is handed to the hasher.
var ErrNoEmptyString = errors.New("password must not be empty", errors.CategoryBadInput).
	WithTextCode("EMPTY_PASSWORD").
	WithCode(errors.CodeBadRequest)

// IsTokenExpiredError will check for expired tokens
func IsTokenExpiredError(err error) bool {
	return hasTextCode(err, TextCodeTokenExpired)
}

// IsMalformedError will check for structurally broken tokens
func IsMalformedError(err error) bool {
	return hasTextCode(err, TextCodeTokenMalformed)
}

// IsBadSignatureError will check for signature mismatches
func IsBadSignatureError(err error) bool {
	return hasTextCode(err, TextCodeTokenBadSignature)
}

func hasTextCode(err error, code string) bool {
	if err == nil {
		return false
	}
	var richErr *errors.Error
	if !errors.As(err, &richErr) {
		return false
	}
	return richErr.TextCode == code
}
