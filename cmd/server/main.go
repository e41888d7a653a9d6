package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-logger/glog"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	auth "github.com/coder-vc1/Blog-Application"
	"github.com/coder-vc1/Blog-Application/internal/account"
	"github.com/coder-vc1/Blog-Application/internal/blog"
	"github.com/coder-vc1/Blog-Application/internal/config"
	"github.com/coder-vc1/Blog-Application/internal/rest"
)

func main() {
	lgr := glog.NewLogger(
		glog.WithLoggerTypePretty(),
		glog.WithLevel(glog.Debug),
		glog.WithName("blog"),
		glog.WithAddSource(false),
		glog.WithRichErrorHandler(errors.ToSlogAttributes),
	)

	cfg := config.LoadConfig()

	ctx := context.Background()

	db, err := openDatabase(ctx, cfg.DatabaseDSN)
	if err != nil {
		lgr.GetLogger("db").Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// auth core
	tokens := auth.NewTokenService(
		[]byte(cfg.JWTSecret),
		cfg.TokenTTL,
		cfg.Issuer,
		lgr.GetLogger("auth:tokens"),
	)

	users := auth.NewUsersRepository(db)
	provider := auth.NewUserProvider(users).
		WithLogger(lgr.GetLogger("auth:prv"))
	authenticator := auth.NewAuthenticator(provider, tokens).
		WithLogger(lgr.GetLogger("auth:authn"))

	// domain services
	accounts := account.NewService(users, authenticator, cfg.BcryptCost).
		WithLogger(lgr.GetLogger("account"))
	posts := blog.NewService(blog.NewPostsRepository(db))

	server := rest.NewServer(rest.Options{
		Accounts:       accounts,
		Posts:          posts,
		TokenValidator: tokens,
		AllowOrigins:   cfg.AllowOrigins,
		Logger:         lgr.GetLogger("http"),
	})

	go func() {
		if err := server.Listen(cfg.HTTPAddr); err != nil {
			lgr.GetLogger("http").Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	lgr.GetLogger("http").Info("listening", "addr", cfg.HTTPAddr)

	waitExitSignal()

	if err := server.Shutdown(); err != nil {
		lgr.GetLogger("http").Error("shutdown error", "error", err)
	}
}

func openDatabase(ctx context.Context, dsn string) (*bun.DB, error) {
	sqldb, err := sql.Open(sqliteshim.ShimName, dsn)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to open sqlite database")
	}

	db := bun.NewDB(sqldb, sqlitedialect.New())

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	for _, model := range []any{
		(*auth.User)(nil),
		(*blog.Post)(nil),
	} {
		if _, err := db.NewCreateTable().
			Model(model).
			IfNotExists().
			Exec(ctx); err != nil {
			return nil, errors.Wrap(err, errors.CategoryInternal, "failed to create schema")
		}
	}

	return db, nil
}

func waitExitSignal() {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch,
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	<-ch
}
