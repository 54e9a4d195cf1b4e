package data

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// SQLColorRepository stores the theme colors.
type SQLColorRepository struct {
	db *sqlx.DB
}

// NewSQLColorRepository creates a new SQLColorRepository.
func NewSQLColorRepository(db *sqlx.DB) *SQLColorRepository {
	return &SQLColorRepository{db: db}
}

// GetAll returns every theme color.
func (r *SQLColorRepository) GetAll(ctx context.Context) ([]*ThemeColor, error) {
	var colors []*ThemeColor
	if err := r.db.SelectContext(ctx, &colors, `SELECT id, name, hex FROM colors ORDER BY name`); err != nil {
		return nil, fmt.Errorf("failed to get colors: %w", err)
	}
	return colors, nil
}

// Create inserts a color and assigns its id.
func (r *SQLColorRepository) Create(ctx context.Context, c *ThemeColor) error {
	c.ID = uuid.NewString()
	if _, err := r.db.NamedExecContext(ctx, `INSERT INTO colors (id, name, hex) VALUES (:id, :name, :hex)`, c); err != nil {
		return fmt.Errorf("failed to create color: %w", err)
	}
	return nil
}

// Update writes the name and hex of an existing color.
func (r *SQLColorRepository) Update(ctx context.Context, c *ThemeColor) error {
	res, err := r.db.NamedExecContext(ctx, `UPDATE colors SET name = :name, hex = :hex WHERE id = :id`, c)
	if err != nil {
		return fmt.Errorf("failed to update color: %w", err)
	}
	return expectOne(res, "color", c.ID)
}

// Delete removes a color by id.
func (r *SQLColorRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM colors WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete color: %w", err)
	}
	return expectOne(res, "color", id)
}
