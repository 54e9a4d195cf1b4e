package data

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// SQLBlogRepository stores blog posts.
type SQLBlogRepository struct {
	db *sqlx.DB
}

// NewSQLBlogRepository creates a new SQLBlogRepository.
func NewSQLBlogRepository(db *sqlx.DB) *SQLBlogRepository {
	return &SQLBlogRepository{db: db}
}

// GetAll returns every blog post. Callers sort for display.
func (r *SQLBlogRepository) GetAll(ctx context.Context) ([]*BlogPost, error) {
	var posts []*BlogPost
	query := `SELECT id, title, content, category, author, image, post_date FROM blog_posts`
	if err := r.db.SelectContext(ctx, &posts, query); err != nil {
		return nil, fmt.Errorf("failed to get blog posts: %w", err)
	}
	return posts, nil
}

// Create inserts a new blog post.
func (r *SQLBlogRepository) Create(ctx context.Context, p *BlogPost) error {
	p.ID = uuid.NewString()
	query := `INSERT INTO blog_posts (id, title, content, category, author, image, post_date)
		VALUES (:id, :title, :content, :category, :author, :image, :post_date)`
	if _, err := r.db.NamedExecContext(ctx, query, p); err != nil {
		return fmt.Errorf("failed to create blog post: %w", err)
	}
	return nil
}

// Update overwrites an existing blog post.
func (r *SQLBlogRepository) Update(ctx context.Context, p *BlogPost) error {
	query := `UPDATE blog_posts SET title = :title, content = :content, category = :category,
		author = :author, image = :image, post_date = :post_date WHERE id = :id`
	res, err := r.db.NamedExecContext(ctx, query, p)
	if err != nil {
		return fmt.Errorf("failed to update blog post: %w", err)
	}
	return expectOne(res, "blog post", p.ID)
}

// Delete removes a blog post by id.
func (r *SQLBlogRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM blog_posts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete blog post: %w", err)
	}
	return expectOne(res, "blog post", id)
}
