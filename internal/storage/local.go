package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// Local writes uploads into a directory that the HTTP server exposes under publicPath.
type Local struct {
	dir        string
	publicPath string
}

// NewLocal creates the upload directory if needed.
func NewLocal(dir, publicPath string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &Local{dir: dir, publicPath: strings.TrimSuffix(publicPath, "/")}, nil
}

// Dir returns the directory uploads are written to.
func (l *Local) Dir() string { return l.dir }

// Upload writes r to <dir>/<collection>/<fileName>, replacing any previous file.
func (l *Local) Upload(ctx context.Context, collection, fileName string, r io.Reader, _ string) (string, error) {
	key, err := objectKey(collection, fileName)
	if err != nil {
		return "", err
	}
	dst := filepath.Join(l.dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", fmt.Errorf("failed to create collection directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(dst), ".upload-*")
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, &ctxReader{ctx: ctx, r: r}); err != nil {
		tmp.Close()
		return "", fmt.Errorf("failed to write upload: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to close upload: %w", err)
	}
	if err := os.Rename(tmp.Name(), dst); err != nil {
		return "", fmt.Errorf("failed to store upload: %w", err)
	}

	u := url.URL{Path: l.publicPath + "/" + key}
	return u.EscapedPath(), nil
}

// ctxReader stops a copy once ctx is done.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
