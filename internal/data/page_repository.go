package data

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// SQLPageRepository stores the page descriptors that toggle public panels.
type SQLPageRepository struct {
	db *sqlx.DB
}

// NewSQLPageRepository creates a new SQLPageRepository.
func NewSQLPageRepository(db *sqlx.DB) *SQLPageRepository {
	return &SQLPageRepository{db: db}
}

// GetAll returns the page descriptors in display order.
func (r *SQLPageRepository) GetAll(ctx context.Context) ([]*PageDescriptor, error) {
	var pages []*PageDescriptor
	query := `SELECT id, name, active, position FROM pages ORDER BY position, name`
	if err := r.db.SelectContext(ctx, &pages, query); err != nil {
		return nil, fmt.Errorf("failed to get pages: %w", err)
	}
	return pages, nil
}

// Create inserts a page descriptor at the end of the display order.
func (r *SQLPageRepository) Create(ctx context.Context, p *PageDescriptor) error {
	p.ID = uuid.NewString()
	if p.Position == 0 {
		var last int
		if err := r.db.GetContext(ctx, &last, `SELECT COALESCE(MAX(position), 0) FROM pages`); err != nil {
			return fmt.Errorf("failed to read page positions: %w", err)
		}
		p.Position = last + 1
	}
	query := `INSERT INTO pages (id, name, active, position) VALUES (:id, :name, :active, :position)`
	if _, err := r.db.NamedExecContext(ctx, query, p); err != nil {
		return fmt.Errorf("failed to create page: %w", err)
	}
	return nil
}

// Update merges the name and visibility of a page; its position is kept.
func (r *SQLPageRepository) Update(ctx context.Context, p *PageDescriptor) error {
	res, err := r.db.NamedExecContext(ctx, `UPDATE pages SET name = :name, active = :active WHERE id = :id`, p)
	if err != nil {
		return fmt.Errorf("failed to update page: %w", err)
	}
	return expectOne(res, "page", p.ID)
}

// Delete removes a page descriptor by id.
func (r *SQLPageRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM pages WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete page: %w", err)
	}
	return expectOne(res, "page", id)
}
