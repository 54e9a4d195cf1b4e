package data

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// SQLSocialRepository stores social network links.
type SQLSocialRepository struct {
	db *sqlx.DB
}

// NewSQLSocialRepository creates a new SQLSocialRepository.
func NewSQLSocialRepository(db *sqlx.DB) *SQLSocialRepository {
	return &SQLSocialRepository{db: db}
}

// GetAll returns the social links in display order.
func (r *SQLSocialRepository) GetAll(ctx context.Context) ([]*SocialLink, error) {
	var socials []*SocialLink
	query := `SELECT id, name, link, active, position FROM socials ORDER BY position, name`
	if err := r.db.SelectContext(ctx, &socials, query); err != nil {
		return nil, fmt.Errorf("failed to get socials: %w", err)
	}
	return socials, nil
}

// Create inserts a social link at the end of the display order.
func (r *SQLSocialRepository) Create(ctx context.Context, s *SocialLink) error {
	s.ID = uuid.NewString()
	if s.Position == 0 {
		var last int
		if err := r.db.GetContext(ctx, &last, `SELECT COALESCE(MAX(position), 0) FROM socials`); err != nil {
			return fmt.Errorf("failed to read social positions: %w", err)
		}
		s.Position = last + 1
	}
	query := `INSERT INTO socials (id, name, link, active, position) VALUES (:id, :name, :link, :active, :position)`
	if _, err := r.db.NamedExecContext(ctx, query, s); err != nil {
		return fmt.Errorf("failed to create social: %w", err)
	}
	return nil
}

// Update merges name, link and visibility of a social link.
func (r *SQLSocialRepository) Update(ctx context.Context, s *SocialLink) error {
	res, err := r.db.NamedExecContext(ctx, `UPDATE socials SET name = :name, link = :link, active = :active WHERE id = :id`, s)
	if err != nil {
		return fmt.Errorf("failed to update social: %w", err)
	}
	return expectOne(res, "social", s.ID)
}

// Delete removes a social link by id.
func (r *SQLSocialRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM socials WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete social: %w", err)
	}
	return expectOne(res, "social", id)
}
