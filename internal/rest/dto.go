package rest

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	auth "github.com/coder-vc1/Blog-Application"
)

// SignupRequest is the payload for account creation.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate will validate the payload
func (r SignupRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(
			&r.Name,
			validation.Required,
			validation.Length(1, 100),
		),
		validation.Field(
			&r.Email,
			validation.Required,
			is.Email,
		),
		validation.Field(
			&r.Password,
			validation.Required,
			// bcrypt only reads the first 72 bytes
			validation.Length(8, 72),
		),
	)
}

// LoginRequest is the payload for password authentication.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate will validate the payload
func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(
			&r.Email,
			validation.Required,
			is.Email,
		),
		validation.Field(
			&r.Password,
			validation.Required,
		),
	)
}

// PostRequest is the payload for creating or rewriting a post.
type PostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Validate will validate the payload
func (r PostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(
			&r.Title,
			validation.Required,
			validation.Length(1, 200),
		),
		validation.Field(
			&r.Content,
			validation.Required,
		),
	)
}

// TokenResponse carries a freshly minted token back to the client.
type TokenResponse struct {
	Token string     `json:"token"`
	User  *auth.User `json:"user,omitempty"`
}
