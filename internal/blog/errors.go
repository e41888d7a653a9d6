package blog

import "github.com/goliatone/go-errors"

const (
	TextCodePostNotFound = "POST_NOT_FOUND"
)

// ErrPostNotFound is returned when a post does not exist or has been deleted.
var ErrPostNotFound = errors.New("blog post not found", errors.CategoryNotFound).
	WithTextCode(TextCodePostNotFound).
	WithCode(errors.CodeNotFound)
