package blog

import (
	"context"
	"database/sql"
	"time"

	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Posts is the post store. Mutations are owner-conditional single
// statements: the ownership predicate travels with the UPDATE/DELETE so
// there is no gap between the check and the act.
type Posts interface {
	Create(ctx context.Context, post *Post) (*Post, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Post, error)
	List(ctx context.Context) ([]*Post, error)
	UpdateOwned(ctx context.Context, id, authorID uuid.UUID, title, content string) (*Post, error)
	DeleteOwned(ctx context.Context, id, authorID uuid.UUID) error
}

type posts struct {
	db *bun.DB
}

var _ Posts = (*posts)(nil)

func NewPostsRepository(db *bun.DB) Posts {
	return &posts{db: db}
}

func (p *posts) Create(ctx context.Context, post *Post) (*Post, error) {
	if post.ID == uuid.Nil {
		post.ID = uuid.New()
	}

	if _, err := p.db.NewInsert().Model(post).Exec(ctx); err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to create post")
	}

	return p.GetByID(ctx, post.ID)
}

func (p *posts) GetByID(ctx context.Context, id uuid.UUID) (*Post, error) {
	post := &Post{}
	err := p.db.NewSelect().
		Model(post).
		Relation("Author").
		Where("?TableAlias.id = ?", id).
		Limit(1).
		Scan(ctx)

	if err != nil {
		if repository.IsRecordNotFound(err) {
			return nil, ErrPostNotFound
		}
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to load post")
	}

	return post, nil
}

func (p *posts) List(ctx context.Context) ([]*Post, error) {
	var records []*Post
	err := p.db.NewSelect().
		Model(&records).
		Relation("Author").
		OrderExpr("?TableAlias.created_at DESC").
		Scan(ctx)

	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to list posts")
	}

	return records, nil
}

// UpdateOwned applies the new title and content iff the post still
// exists and is still owned by authorID, in one conditional statement.
func (p *posts) UpdateOwned(ctx context.Context, id, authorID uuid.UUID, title, content string) (*Post, error) {
	now := time.Now()
	res, err := p.db.NewUpdate().
		Model((*Post)(nil)).
		Set("title = ?", title).
		Set("content = ?", content).
		Set("updated_at = ?", now).
		Where("?TableAlias.id = ?", id).
		Where("?TableAlias.author_id = ?", authorID).
		Where("?TableAlias.deleted_at IS NULL").
		Exec(ctx)

	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to update post")
	}

	if affected(res) == 0 {
		return nil, ErrPostNotFound
	}

	return p.GetByID(ctx, id)
}

// DeleteOwned soft deletes the post iff it is still owned by authorID.
func (p *posts) DeleteOwned(ctx context.Context, id, authorID uuid.UUID) error {
	res, err := p.db.NewDelete().
		Model((*Post)(nil)).
		Where("?TableAlias.id = ?", id).
		Where("?TableAlias.author_id = ?", authorID).
		Exec(ctx)

	if err != nil {
		return errors.Wrap(err, errors.CategoryInternal, "failed to delete post")
	}

	if affected(res) == 0 {
		return ErrPostNotFound
	}

	return nil
}

func affected(res sql.Result) int64 {
	if res == nil {
		return 0
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0
	}
	return n
}
