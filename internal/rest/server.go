// Package rest exposes the blog over HTTP: token based auth endpoints
// and the post CRUD, with ownership enforced on every mutation.
package rest

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/google/uuid"

	auth "github.com/coder-vc1/Blog-Application"
	"github.com/coder-vc1/Blog-Application/internal/blog"
)

// Accounts is the account service surface the handlers call.
type Accounts interface {
	Signup(ctx context.Context, name, email, password string) (*auth.User, string, error)
	Login(ctx context.Context, email, password string) (string, error)
	CurrentUser(ctx context.Context) (*auth.User, error)
}

// Posts is the blog service surface the handlers call.
type Posts interface {
	CreatePost(ctx context.Context, title, content string) (*blog.Post, error)
	GetPost(ctx context.Context, id uuid.UUID) (*blog.Post, error)
	ListPosts(ctx context.Context) ([]*blog.Post, error)
	UpdatePost(ctx context.Context, id uuid.UUID, title, content string) (*blog.Post, error)
	DeletePost(ctx context.Context, id uuid.UUID) error
}

// Options configures the HTTP server.
type Options struct {
	Accounts Accounts
	Posts    Posts
	// TokenValidator resolves bearer tokens into claims.
	TokenValidator auth.TokenValidator
	// AllowOrigins is the CORS allow list handed to the browser client.
	AllowOrigins string
	Logger       auth.Logger
}

// Server is the HTTP edge. Identity resolution happens in middleware;
// handlers read the principal from the request context only.
type Server struct {
	app      *fiber.App
	accounts Accounts
	posts    Posts
	logger   auth.Logger
}

func NewServer(opts Options) *Server {
	s := &Server{
		accounts: opts.Accounts,
		posts:    opts.Posts,
		logger:   opts.Logger,
	}

	s.app = fiber.New(fiber.Config{
		AppName:      "blog-application",
		ErrorHandler: NewErrorHandler(opts.Logger),
	})

	s.app.Use(cors.New(cors.Config{
		AllowOrigins: opts.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))

	s.registerRoutes(opts.TokenValidator)

	return s
}

// App exposes the underlying fiber app, mostly for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func (s *Server) registerRoutes(validator auth.TokenValidator) {
	// required rejects anonymous requests; optional resolves a
	// principal when a valid token is present and proceeds either way
	required := auth.NewTokenMiddleware(auth.MiddlewareConfig{
		TokenValidator: validator,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return err
		},
	})
	optional := auth.NewTokenMiddleware(auth.MiddlewareConfig{
		TokenValidator: validator,
		Optional:       true,
	})

	api := s.app.Group("/api")

	authAPI := api.Group("/auth")
	authAPI.Post("/signup", s.handleSignup)
	authAPI.Post("/login", s.handleLogin)
	authAPI.Get("/me", required, s.handleCurrentUser)

	postsAPI := api.Group("/posts")
	postsAPI.Get("/", optional, s.handleListPosts)
	postsAPI.Get("/:id", optional, s.handleGetPost)
	postsAPI.Post("/", required, s.handleCreatePost)
	postsAPI.Put("/:id", required, s.handleUpdatePost)
	postsAPI.Delete("/:id", required, s.handleDeletePost)
}
