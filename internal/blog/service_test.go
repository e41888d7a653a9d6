package blog_test

import (
	"context"
	"testing"

	auth "github.com/coder-vc1/Blog-Application"
	"github.com/coder-vc1/Blog-Application/internal/blog"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPosts struct {
	mock.Mock
}

func (m *MockPosts) Create(ctx context.Context, post *blog.Post) (*blog.Post, error) {
	args := m.Called(ctx, post)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*blog.Post), args.Error(1)
}

func (m *MockPosts) GetByID(ctx context.Context, id uuid.UUID) (*blog.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*blog.Post), args.Error(1)
}

func (m *MockPosts) List(ctx context.Context) ([]*blog.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*blog.Post), args.Error(1)
}

func (m *MockPosts) UpdateOwned(ctx context.Context, id, authorID uuid.UUID, title, content string) (*blog.Post, error) {
	args := m.Called(ctx, id, authorID, title, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*blog.Post), args.Error(1)
}

func (m *MockPosts) DeleteOwned(ctx context.Context, id, authorID uuid.UUID) error {
	args := m.Called(ctx, id, authorID)
	return args.Error(0)
}

var (
	ownerID    = uuid.MustParse("11111111-1111-4111-8111-111111111111")
	intruderID = uuid.MustParse("22222222-2222-4222-8222-222222222222")
)

func ctxForPrincipal(id uuid.UUID) context.Context {
	claims := &auth.JWTClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "someone@example.com"},
		UID:              id.String(),
	}
	return auth.WithClaimsContext(context.Background(), claims)
}

func ownedPost(id uuid.UUID) *blog.Post {
	return &blog.Post{
		ID:       id,
		Title:    "hello",
		Content:  "world",
		AuthorID: ownerID,
	}
}

func TestServiceCreatePost(t *testing.T) {
	store := &MockPosts{}
	svc := blog.NewService(store)
	ctx := ctxForPrincipal(ownerID)

	store.On("Create", mock.Anything, mock.MatchedBy(func(p *blog.Post) bool {
		return p.Title == "hello" && p.Content == "world" && p.AuthorID == ownerID
	})).Return(ownedPost(uuid.New()), nil)

	post, err := svc.CreatePost(ctx, "hello", "world")
	require.NoError(t, err)
	assert.Equal(t, ownerID, post.AuthorID)
	store.AssertExpectations(t)
}

func TestServiceCreatePostRequiresPrincipal(t *testing.T) {
	store := &MockPosts{}
	svc := blog.NewService(store)

	_, err := svc.CreatePost(context.Background(), "hello", "world")
	require.Error(t, err)
	assert.ErrorIs(t, err, auth.ErrNotResourceOwner)
	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestServiceUpdatePost(t *testing.T) {
	postID := uuid.New()

	tests := []struct {
		name      string
		ctx       context.Context
		stored    *blog.Post
		storedErr error
		wantErr   error
		mutates   bool
	}{
		{
			name:    "owner can update",
			ctx:     ctxForPrincipal(ownerID),
			stored:  ownedPost(postID),
			mutates: true,
		},
		{
			name:    "non owner is rejected",
			ctx:     ctxForPrincipal(intruderID),
			stored:  ownedPost(postID),
			wantErr: auth.ErrNotResourceOwner,
		},
		{
			name:    "anonymous is rejected",
			ctx:     context.Background(),
			stored:  ownedPost(postID),
			wantErr: auth.ErrNotResourceOwner,
		},
		{
			name:      "missing post",
			ctx:       ctxForPrincipal(ownerID),
			storedErr: blog.ErrPostNotFound,
			wantErr:   blog.ErrPostNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &MockPosts{}
			svc := blog.NewService(store)

			if tt.storedErr != nil {
				store.On("GetByID", mock.Anything, postID).Return(nil, tt.storedErr)
			} else {
				store.On("GetByID", mock.Anything, postID).Return(tt.stored, nil)
			}

			if tt.mutates {
				updated := ownedPost(postID)
				updated.Title = "new title"
				store.On("UpdateOwned", mock.Anything, postID, ownerID, "new title", "new content").
					Return(updated, nil)
			}

			post, err := svc.UpdatePost(tt.ctx, postID, "new title", "new content")

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				store.AssertNotCalled(t, "UpdateOwned",
					mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "new title", post.Title)
			store.AssertExpectations(t)
		})
	}
}

func TestServiceDeletePost(t *testing.T) {
	postID := uuid.New()

	tests := []struct {
		name    string
		ctx     context.Context
		wantErr error
		mutates bool
	}{
		{name: "owner can delete", ctx: ctxForPrincipal(ownerID), mutates: true},
		{name: "non owner is rejected", ctx: ctxForPrincipal(intruderID), wantErr: auth.ErrNotResourceOwner},
		{name: "anonymous is rejected", ctx: context.Background(), wantErr: auth.ErrNotResourceOwner},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &MockPosts{}
			svc := blog.NewService(store)

			store.On("GetByID", mock.Anything, postID).Return(ownedPost(postID), nil)
			if tt.mutates {
				store.On("DeleteOwned", mock.Anything, postID, ownerID).Return(nil)
			}

			err := svc.DeletePost(tt.ctx, postID)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				store.AssertNotCalled(t, "DeleteOwned", mock.Anything, mock.Anything, mock.Anything)
				return
			}

			require.NoError(t, err)
			store.AssertExpectations(t)
		})
	}
}

func TestServiceReadsArePublic(t *testing.T) {
	store := &MockPosts{}
	svc := blog.NewService(store)
	postID := uuid.New()

	store.On("GetByID", mock.Anything, postID).Return(ownedPost(postID), nil)
	store.On("List", mock.Anything).Return([]*blog.Post{ownedPost(postID)}, nil)

	post, err := svc.GetPost(context.Background(), postID)
	require.NoError(t, err)
	assert.Equal(t, postID, post.ID)

	posts, err := svc.ListPosts(context.Background())
	require.NoError(t, err)
	assert.Len(t, posts, 1)
}
