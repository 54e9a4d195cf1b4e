package data

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// SQLGalleryRepository stores gallery images.
type SQLGalleryRepository struct {
	db *sqlx.DB
}

// NewSQLGalleryRepository creates a new SQLGalleryRepository.
func NewSQLGalleryRepository(db *sqlx.DB) *SQLGalleryRepository {
	return &SQLGalleryRepository{db: db}
}

func (r *SQLGalleryRepository) GetAll(ctx context.Context) ([]*GalleryImage, error) {
	var images []*GalleryImage
	if err := r.db.SelectContext(ctx, &images, `SELECT id, url, caption FROM gallery`); err != nil {
		return nil, fmt.Errorf("failed to get gallery: %w", err)
	}
	return images, nil
}

func (r *SQLGalleryRepository) Create(ctx context.Context, img *GalleryImage) error {
	img.ID = uuid.NewString()
	if _, err := r.db.NamedExecContext(ctx, `INSERT INTO gallery (id, url, caption) VALUES (:id, :url, :caption)`, img); err != nil {
		return fmt.Errorf("failed to create gallery image: %w", err)
	}
	return nil
}

func (r *SQLGalleryRepository) Update(ctx context.Context, img *GalleryImage) error {
	res, err := r.db.NamedExecContext(ctx, `UPDATE gallery SET url = :url, caption = :caption WHERE id = :id`, img)
	if err != nil {
		return fmt.Errorf("failed to update gallery image: %w", err)
	}
	return expectOne(res, "gallery image", img.ID)
}

func (r *SQLGalleryRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM gallery WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete gallery image: %w", err)
	}
	return expectOne(res, "gallery image", id)
}
