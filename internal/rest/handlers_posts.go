package rest

import (
	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-errors"
	"github.com/google/uuid"
)

func (s *Server) handleListPosts(c *fiber.Ctx) error {
	posts, err := s.posts.ListPosts(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(posts)
}

func (s *Server) handleGetPost(c *fiber.Ctx) error {
	id, err := postID(c)
	if err != nil {
		return err
	}

	post, err := s.posts.GetPost(c.UserContext(), id)
	if err != nil {
		return err
	}

	return c.JSON(post)
}

func (s *Server) handleCreatePost(c *fiber.Ctx) error {
	payload := new(PostRequest)
	if err := c.BodyParser(payload); err != nil {
		return errors.Wrap(err, errors.CategoryBadInput, "failed to parse request body").
			WithCode(errors.CodeBadRequest)
	}

	if err := payload.Validate(); err != nil {
		return err
	}

	post, err := s.posts.CreatePost(c.UserContext(), payload.Title, payload.Content)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

func (s *Server) handleUpdatePost(c *fiber.Ctx) error {
	id, err := postID(c)
	if err != nil {
		return err
	}

	payload := new(PostRequest)
	if err := c.BodyParser(payload); err != nil {
		return errors.Wrap(err, errors.CategoryBadInput, "failed to parse request body").
			WithCode(errors.CodeBadRequest)
	}

	if err := payload.Validate(); err != nil {
		return err
	}

	post, err := s.posts.UpdatePost(c.UserContext(), id, payload.Title, payload.Content)
	if err != nil {
		return err
	}

	return c.JSON(post)
}

func (s *Server) handleDeletePost(c *fiber.Ctx) error {
	id, err := postID(c)
	if err != nil {
		return err
	}

	if err := s.posts.DeletePost(c.UserContext(), id); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func postID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, errors.Wrap(err, errors.CategoryBadInput, "invalid post id").
			WithCode(errors.CodeBadRequest)
	}
	return id, nil
}
