package service

import (
	"workshop-site/internal/data"
	"workshop-site/internal/logger"
	"workshop-site/internal/storage"
)

// NewGalleryEditor returns the editor for gallery images. uploader may be nil.
func NewGalleryEditor(repo Repository[*data.GalleryImage], uploader storage.Uploader, log logger.Logger) *Editor[*data.GalleryImage] {
	return NewEditor("Gallery", repo, log,
		WithValidation(validateGalleryImage),
		WithUploader[*data.GalleryImage](uploader),
	)
}
