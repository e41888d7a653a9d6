package rest

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-print"

	auth "github.com/coder-vc1/Blog-Application"
)

// ErrorResponse is the stable error body every endpoint returns.
type ErrorResponse struct {
	Status    int       `json:"status"`
	Category  string    `json:"category,omitempty"`
	TextCode  string    `json:"text_code,omitempty"`
	Message   string    `json:"message"`
	Details   any       `json:"details,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// NewErrorHandler translates domain errors into HTTP responses. The
// response body never carries internal detail beyond the curated
// message and codes.
func NewErrorHandler(logger auth.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		resp := translateError(err)

		if resp.Status >= fiber.StatusInternalServerError {
			logger.Error("request failed: %s", err)
		} else {
			logger.Debug("request rejected: %s", print.MaybePrettyJSON(resp))
		}

		return c.Status(resp.Status).JSON(resp)
	}
}

func translateError(err error) ErrorResponse {
	resp := ErrorResponse{
		Status:    fiber.StatusInternalServerError,
		Message:   "An unexpected server error occurred",
		Timestamp: time.Now().UTC(),
	}

	var verr validation.Errors
	if errors.As(err, &verr) {
		resp.Status = fiber.StatusBadRequest
		resp.Category = string(errors.CategoryValidation)
		resp.TextCode = "INVALID_PAYLOAD"
		resp.Message = "invalid request payload"
		resp.Details = verr
		return resp
	}

	if errors.Is(err, auth.ErrJWTMissingOrMalformed) {
		resp.Status = fiber.StatusUnauthorized
		resp.Category = string(errors.CategoryAuth)
		resp.TextCode = auth.TextCodeTokenMalformed
		resp.Message = "missing or malformed authentication token"
		return resp
	}

	var richErr *errors.Error
	if errors.As(err, &richErr) {
		resp.Category = string(richErr.Category)
		resp.TextCode = richErr.TextCode
		resp.Message = richErr.Message
		resp.Status = statusForError(richErr)
		if resp.Status >= fiber.StatusInternalServerError {
			// do not leak wrapped internals
			resp.Message = "An unexpected server error occurred"
			resp.TextCode = ""
		}
		return resp
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		resp.Status = fiberErr.Code
		resp.Message = fiberErr.Message
		return resp
	}

	return resp
}

func statusForError(richErr *errors.Error) int {
	if richErr.Code > 0 {
		return richErr.Code
	}

	switch richErr.Category {
	case errors.CategoryAuth:
		return fiber.StatusUnauthorized
	case errors.CategoryAuthz:
		return fiber.StatusForbidden
	case errors.CategoryNotFound:
		return fiber.StatusNotFound
	case errors.CategoryConflict:
		return fiber.StatusConflict
	case errors.CategoryValidation, errors.CategoryBadInput:
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
