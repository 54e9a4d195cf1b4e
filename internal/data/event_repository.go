package data

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const eventColumns = `id, name, description, start_date, end_date, image, pay_link, standard_fee,
	early_bird_fee, promo_end_date, promo_pay_link, promo_embed_code, embed_code, age_restriction`

// SQLEventRepository stores workshop events.
type SQLEventRepository struct {
	db *sqlx.DB
}

// NewSQLEventRepository creates a new SQLEventRepository.
func NewSQLEventRepository(db *sqlx.DB) *SQLEventRepository {
	return &SQLEventRepository{db: db}
}

// GetAll returns the events ordered by start date.
func (r *SQLEventRepository) GetAll(ctx context.Context) ([]*Event, error) {
	var events []*Event
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY start_date`
	if err := r.db.SelectContext(ctx, &events, query); err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}
	return events, nil
}

// Create inserts a new event.
func (r *SQLEventRepository) Create(ctx context.Context, e *Event) error {
	e.ID = uuid.NewString()
	query := `INSERT INTO events (` + eventColumns + `) VALUES (:id, :name, :description, :start_date,
		:end_date, :image, :pay_link, :standard_fee, :early_bird_fee, :promo_end_date, :promo_pay_link,
		:promo_embed_code, :embed_code, :age_restriction)`
	if _, err := r.db.NamedExecContext(ctx, query, e); err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	return nil
}

// Update overwrites an existing event.
func (r *SQLEventRepository) Update(ctx context.Context, e *Event) error {
	query := `UPDATE events SET name = :name, description = :description, start_date = :start_date,
		end_date = :end_date, image = :image, pay_link = :pay_link, standard_fee = :standard_fee,
		early_bird_fee = :early_bird_fee, promo_end_date = :promo_end_date, promo_pay_link = :promo_pay_link,
		promo_embed_code = :promo_embed_code, embed_code = :embed_code, age_restriction = :age_restriction
		WHERE id = :id`
	res, err := r.db.NamedExecContext(ctx, query, e)
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}
	return expectOne(res, "event", e.ID)
}

// Delete removes an event by id.
func (r *SQLEventRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return expectOne(res, "event", id)
}
