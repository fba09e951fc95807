package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"stayhaven/internal/models"
)

type BlogRepositoryImpl struct {
	db *sqlx.DB
}

func NewBlogRepository(db *sqlx.DB) *BlogRepositoryImpl {
	return &BlogRepositoryImpl{db: db}
}

func (r *BlogRepositoryImpl) Create(ctx context.Context, post *models.BlogPost) error {
	query := `
        INSERT INTO blog_posts
        (post_id, title, slug, excerpt, content, category, author, image, status, featured,
         views_count, created_at, updated_at)
        VALUES
        (:post_id, :title, :slug, :excerpt, :content, :category, :author, :image, :status, :featured,
         :views_count, :created_at, :updated_at)
    `

	if post.PostID == "" {
		post.PostID = uuid.New().String()
	}
	if post.Status == "" {
		post.Status = models.PostDraft
	}

	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now

	_, err := r.db.NamedExecContext(ctx, query, post)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key value") &&
			strings.Contains(err.Error(), "slug") {
			return fmt.Errorf("slug %q is already in use: %w", post.Slug, err)
		}
		return fmt.Errorf("failed to create blog post: %w", err)
	}

	return nil
}

func (r *BlogRepositoryImpl) GetByID(ctx context.Context, postID string) (*models.BlogPost, error) {
	query := `SELECT * FROM blog_posts WHERE post_id = $1`

	var post models.BlogPost
	err := r.db.GetContext(ctx, &post, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("blog post %s: %w", postID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get blog post: %w", err)
	}

	return &post, nil
}

func (r *BlogRepositoryImpl) GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	query := `SELECT * FROM blog_posts WHERE slug = $1`

	var post models.BlogPost
	err := r.db.GetContext(ctx, &post, query, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("blog post %q: %w", slug, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get blog post: %w", err)
	}

	return &post, nil
}

func (r *BlogRepositoryImpl) GetAll(ctx context.Context, filter BlogFilter) ([]models.BlogPost, error) {
	query := `SELECT * FROM blog_posts`
	var args []interface{}

	where := ""
	addCond := func(cond string, arg interface{}) {
		args = append(args, arg)
		if where == "" {
			where = " WHERE "
		} else {
			where += " AND "
		}
		where += fmt.Sprintf(cond, len(args))
	}

	if filter.Status != "" {
		addCond("status = $%d", filter.Status)
	}
	if filter.Category != "" {
		addCond("category = $%d", filter.Category)
	}
	if filter.Featured != nil {
		addCond("featured = $%d", *filter.Featured)
	}

	query += where + ` ORDER BY created_at DESC`

	posts := []models.BlogPost{}
	err := r.db.SelectContext(ctx, &posts, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list blog posts: %w", err)
	}

	return posts, nil
}

func (r *BlogRepositoryImpl) Update(ctx context.Context, post *models.BlogPost) error {
	query := `
		UPDATE blog_posts SET
			title = :title,
			slug = :slug,
			excerpt = :excerpt,
			content = :content,
			category = :category,
			author = :author,
			image = :image,
			status = :status,
			featured = :featured,
			updated_at = :updated_at
		WHERE post_id = :post_id
	`

	post.UpdatedAt = time.Now()

	result, err := r.db.NamedExecContext(ctx, query, post)
	if err != nil {
		return fmt.Errorf("failed to update blog post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("blog post %s: %w", post.PostID, ErrNotFound)
	}

	return nil
}

func (r *BlogRepositoryImpl) Delete(ctx context.Context, postID string) error {
	query := `DELETE FROM blog_posts WHERE post_id = $1`

	result, err := r.db.ExecContext(ctx, query, postID)
	if err != nil {
		return fmt.Errorf("failed to delete blog post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("blog post %s: %w", postID, ErrNotFound)
	}

	return nil
}

func (r *BlogRepositoryImpl) Publish(ctx context.Context, postID string) error {
	query := `
		UPDATE blog_posts SET
			status = 'published',
			updated_at = CURRENT_TIMESTAMP
		WHERE post_id = $1 AND status = 'draft'
	`

	result, err := r.db.ExecContext(ctx, query, postID)
	if err != nil {
		return fmt.Errorf("failed to publish blog post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("blog post %s is missing or already published: %w", postID, ErrNotFound)
	}

	return nil
}
