package rest

import (
	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-errors"
)

func (s *Server) handleSignup(c *fiber.Ctx) error {
	payload := new(SignupRequest)
	if err := c.BodyParser(payload); err != nil {
		return errors.Wrap(err, errors.CategoryBadInput, "failed to parse request body").
			WithCode(errors.CodeBadRequest)
	}

	if err := payload.Validate(); err != nil {
		return err
	}

	user, token, err := s.accounts.Signup(c.UserContext(), payload.Name, payload.Email, payload.Password)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(TokenResponse{
		Token: token,
		User:  user,
	})
}

func (s *Server) handleLogin(c *fiber.Ctx) error {
	payload := new(LoginRequest)
	if err := c.BodyParser(payload); err != nil {
		return errors.Wrap(err, errors.CategoryBadInput, "failed to parse request body").
			WithCode(errors.CodeBadRequest)
	}

	if err := payload.Validate(); err != nil {
		return err
	}

	token, err := s.accounts.Login(c.UserContext(), payload.Email, payload.Password)
	if err != nil {
		return err
	}

	return c.JSON(TokenResponse{Token: token})
}

func (s *Server) handleCurrentUser(c *fiber.Ctx) error {
	user, err := s.accounts.CurrentUser(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(user)
}
