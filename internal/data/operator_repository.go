package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// SQLOperatorRepository stores dashboard operators.
type SQLOperatorRepository struct {
	db *sqlx.DB
}

// NewSQLOperatorRepository creates a new SQLOperatorRepository.
func NewSQLOperatorRepository(db *sqlx.DB) *SQLOperatorRepository {
	return &SQLOperatorRepository{db: db}
}

// GetByEmail looks up an operator by login email, case-insensitively.
func (r *SQLOperatorRepository) GetByEmail(ctx context.Context, email string) (*Operator, error) {
	var op Operator
	query := `SELECT id, name, email, password_hash FROM operators WHERE email = ?`
	if err := r.db.GetContext(ctx, &op, query, strings.ToLower(email)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("operator '%s': %w", email, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get operator: %w", err)
	}
	return &op, nil
}

// Create inserts a new operator. Emails are stored lower-cased.
func (r *SQLOperatorRepository) Create(ctx context.Context, op *Operator) error {
	op.ID = uuid.NewString()
	op.Email = strings.ToLower(op.Email)
	query := `INSERT INTO operators (id, name, email, password_hash) VALUES (:id, :name, :email, :password_hash)`
	if _, err := r.db.NamedExecContext(ctx, query, op); err != nil {
		return fmt.Errorf("failed to create operator: %w", err)
	}
	return nil
}
