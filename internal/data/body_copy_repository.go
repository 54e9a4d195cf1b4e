package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// SQLBodyCopyRepository stores editable copy blocks keyed by location.
type SQLBodyCopyRepository struct {
	db *sqlx.DB
}

// NewSQLBodyCopyRepository creates a new SQLBodyCopyRepository.
func NewSQLBodyCopyRepository(db *sqlx.DB) *SQLBodyCopyRepository {
	return &SQLBodyCopyRepository{db: db}
}

// GetByLocation returns the copy block tagged with location.
func (r *SQLBodyCopyRepository) GetByLocation(ctx context.Context, location string) (*BodyCopy, error) {
	var bc BodyCopy
	query := `SELECT id, location, copy, image FROM body_copy WHERE location = ?`
	if err := r.db.GetContext(ctx, &bc, query, location); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("body copy for location '%s': %w", location, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get body copy: %w", err)
	}
	return &bc, nil
}

// Create inserts a new copy block.
func (r *SQLBodyCopyRepository) Create(ctx context.Context, bc *BodyCopy) error {
	bc.ID = uuid.NewString()
	query := `INSERT INTO body_copy (id, location, copy, image) VALUES (:id, :location, :copy, :image)`
	if _, err := r.db.NamedExecContext(ctx, query, bc); err != nil {
		return fmt.Errorf("failed to create body copy: %w", err)
	}
	return nil
}

// UpdateCopy merges only the text of a copy block.
func (r *SQLBodyCopyRepository) UpdateCopy(ctx context.Context, id, copy string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE body_copy SET copy = ? WHERE id = ?`, copy, id)
	if err != nil {
		return fmt.Errorf("failed to update body copy: %w", err)
	}
	return expectOne(res, "body copy", id)
}

// UpdateImage merges only the image URL of a copy block.
func (r *SQLBodyCopyRepository) UpdateImage(ctx context.Context, id, image string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE body_copy SET image = ? WHERE id = ?`, image, id)
	if err != nil {
		return fmt.Errorf("failed to update body copy image: %w", err)
	}
	return expectOne(res, "body copy", id)
}
