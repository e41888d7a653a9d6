package blog

import (
	"context"

	auth "github.com/coder-vc1/Blog-Application"
	"github.com/goliatone/go-errors"
	"github.com/google/uuid"
)

// Service implements post CRUD. Reads are public; mutations require a
// bound principal and pass the ownership guard before any change is
// applied.
type Service struct {
	posts Posts
}

func NewService(posts Posts) *Service {
	return &Service{posts: posts}
}

// CreatePost publishes a new post owned by the current principal.
func (s *Service) CreatePost(ctx context.Context, title, content string) (*Post, error) {
	authorID, err := s.principalUUID(ctx)
	if err != nil {
		return nil, err
	}

	post := &Post{
		Title:    title,
		Content:  content,
		AuthorID: authorID,
	}

	return s.posts.Create(ctx, post)
}

// GetPost returns a single post with its author. Public.
func (s *Service) GetPost(ctx context.Context, id uuid.UUID) (*Post, error) {
	return s.posts.GetByID(ctx, id)
}

// ListPosts returns all posts, newest first. Public.
func (s *Service) ListPosts(ctx context.Context) ([]*Post, error) {
	return s.posts.List(ctx)
}

// UpdatePost rewrites a post's title and content. The ownership check
// runs before the mutation, and the store applies the change with the
// ownership predicate attached so the pair is atomic.
func (s *Service) UpdatePost(ctx context.Context, id uuid.UUID, title, content string) (*Post, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := auth.AuthorizeContextMutation(ctx, post.AuthorID.String()); err != nil {
		return nil, err
	}

	authorID, err := s.principalUUID(ctx)
	if err != nil {
		return nil, err
	}

	return s.posts.UpdateOwned(ctx, id, authorID, title, content)
}

// DeletePost removes a post. Same check-then-act shape as UpdatePost.
func (s *Service) DeletePost(ctx context.Context, id uuid.UUID) error {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := auth.AuthorizeContextMutation(ctx, post.AuthorID.String()); err != nil {
		return err
	}

	authorID, err := s.principalUUID(ctx)
	if err != nil {
		return err
	}

	return s.posts.DeleteOwned(ctx, id, authorID)
}

func (s *Service) principalUUID(ctx context.Context) (uuid.UUID, error) {
	principalID, ok := auth.CurrentPrincipalID(ctx)
	if !ok {
		return uuid.Nil, auth.ErrNotResourceOwner
	}

	id, err := uuid.Parse(principalID)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, errors.CategoryAuth, "principal id is not a valid uuid")
	}

	return id, nil
}
