// Package storage uploads images to a publicly readable blob store.
package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"workshop-site/internal/config"

	firebase "firebase.google.com/go/v4"
)

// Uploader stores a file under <collection>/<fileName> and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, collection, fileName string, r io.Reader, contentType string) (string, error)
}

// New returns the uploader selected by cfg.Backend. The Firebase app is only
// required for the "firebase" backend.
func New(ctx context.Context, cfg config.StorageConfig, app *firebase.App) (Uploader, error) {
	switch cfg.Backend {
	case "", "local":
		return NewLocal(cfg.LocalDir, cfg.PublicPath)
	case "firebase":
		if app == nil {
			return nil, fmt.Errorf("firebase storage requires a firebase app")
		}
		return NewFirebase(ctx, app)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

// objectKey builds the blob key. Directory parts of fileName are dropped so an
// upload can never escape its collection.
func objectKey(collection, fileName string) (string, error) {
	name := path.Base(strings.ReplaceAll(fileName, "\\", "/"))
	if name == "." || name == "/" || name == "" {
		return "", fmt.Errorf("invalid file name %q", fileName)
	}
	if collection == "" || strings.ContainsAny(collection, `/\`) || collection == ".." {
		return "", fmt.Errorf("invalid collection %q", collection)
	}
	return collection + "/" + name, nil
}
