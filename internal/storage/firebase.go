package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"

	gcs "cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
)

// Firebase uploads into the default bucket of a Firebase project.
type Firebase struct {
	bucket *gcs.BucketHandle
	name   string
}

// NewFirebase opens the app's default storage bucket.
func NewFirebase(ctx context.Context, app *firebase.App) (*Firebase, error) {
	client, err := app.Storage(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	bucket, err := client.DefaultBucket()
	if err != nil {
		return nil, fmt.Errorf("failed to open default bucket: %w", err)
	}
	return &Firebase{bucket: bucket, name: bucket.BucketName()}, nil
}

// Upload streams r to the object <collection>/<fileName>.
func (f *Firebase) Upload(ctx context.Context, collection, fileName string, r io.Reader, contentType string) (string, error) {
	key, err := objectKey(collection, fileName)
	if err != nil {
		return "", err
	}

	w := f.bucket.Object(key).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize upload %s: %w", key, err)
	}
	return downloadURL(f.name, key), nil
}

func downloadURL(bucket, key string) string {
	return fmt.Sprintf("https://firebasestorage.googleapis.com/v0/b/%s/o/%s?alt=media",
		bucket, url.PathEscape(key))
}
