package service

import (
	"context"
	"errors"
	"io"
	"workshop-site/internal/data"
	"workshop-site/internal/logger"
	"workshop-site/internal/storage"
)

// ErrNoUploader is returned by UploadImage on editors without a blob store.
var ErrNoUploader = errors.New("image uploads are not configured")

// Editor is the create/read/update/delete workflow shared by every admin panel.
// A draft is validated before any store call. After every successful mutation
// the collection is fetched again, with or without a change hook.
type Editor[T data.Document] struct {
	collection string
	repo       Repository[T]
	uploader   storage.Uploader
	validate   func(T) error
	order      func([]T)
	onChange   func([]T)
	log        logger.Logger
}

// EditorOption customises an Editor.
type EditorOption[T data.Document] func(*Editor[T])

// WithValidation sets the draft validation rules.
func WithValidation[T data.Document](fn func(T) error) EditorOption[T] {
	return func(e *Editor[T]) { e.validate = fn }
}

// WithOrdering sorts every listed collection in place.
func WithOrdering[T data.Document](fn func([]T)) EditorOption[T] {
	return func(e *Editor[T]) { e.order = fn }
}

// WithChangeHook is called with the re-fetched collection after every successful mutation.
func WithChangeHook[T data.Document](fn func([]T)) EditorOption[T] {
	return func(e *Editor[T]) { e.onChange = fn }
}

// WithUploader enables UploadImage.
func WithUploader[T data.Document](u storage.Uploader) EditorOption[T] {
	return func(e *Editor[T]) { e.uploader = u }
}

// NewEditor creates an Editor for the named collection.
func NewEditor[T data.Document](collection string, repo Repository[T], log logger.Logger, opts ...EditorOption[T]) *Editor[T] {
	e := &Editor[T]{
		collection: collection,
		repo:       repo,
		log:        log.With(map[string]interface{}{"collection": collection}),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Collection returns the collection name, which is also the upload folder.
func (e *Editor[T]) Collection() string { return e.collection }

// List fetches the whole collection.
func (e *Editor[T]) List(ctx context.Context) ([]T, error) {
	docs, err := e.repo.GetAll(ctx)
	if err != nil {
		return nil, &FetchError{Collection: e.collection, Err: err}
	}
	if e.order != nil {
		e.order(docs)
	}
	return docs, nil
}

// Validate returns a *ValidationError listing every invalid field, or nil.
func (e *Editor[T]) Validate(draft T) error {
	if e.validate == nil {
		return nil
	}
	return asValidationError(e.validate(draft))
}

// Create validates and stores a new document.
func (e *Editor[T]) Create(ctx context.Context, draft T) error {
	if err := e.Validate(draft); err != nil {
		return err
	}
	if err := e.repo.Create(ctx, draft); err != nil {
		return &PersistenceError{Op: "create", Collection: e.collection, Err: err}
	}
	e.refresh(ctx)
	return nil
}

// Update validates draft and stores it under id.
func (e *Editor[T]) Update(ctx context.Context, id string, draft T) error {
	if err := e.Validate(draft); err != nil {
		return err
	}
	draft.SetID(id)
	if err := e.repo.Update(ctx, draft); err != nil {
		return &PersistenceError{Op: "update", Collection: e.collection, Err: err}
	}
	e.refresh(ctx)
	return nil
}

// Delete removes the document with the given id.
func (e *Editor[T]) Delete(ctx context.Context, id string) error {
	if err := e.repo.Delete(ctx, id); err != nil {
		return &PersistenceError{Op: "delete", Collection: e.collection, Err: err}
	}
	e.refresh(ctx)
	return nil
}

// UploadImage stores an image in the collection's folder and returns its URL.
// Nothing is written to the collection itself.
func (e *Editor[T]) UploadImage(ctx context.Context, fileName string, r io.Reader, contentType string) (string, error) {
	if e.uploader == nil {
		return "", &PersistenceError{Op: "upload", Collection: e.collection, Err: ErrNoUploader}
	}
	url, err := e.uploader.Upload(ctx, e.collection, fileName, r, contentType)
	if err != nil {
		return "", &PersistenceError{Op: "upload", Collection: e.collection, Err: err}
	}
	return url, nil
}

// refresh re-reads the collection after every committed write and hands it to
// the change hook, if any. A failed read is logged only; the write already succeeded.
func (e *Editor[T]) refresh(ctx context.Context) {
	docs, err := e.List(ctx)
	if err != nil {
		e.log.Error(err, "Failed to refresh collection after write")
		return
	}
	if e.onChange != nil {
		e.onChange(docs)
	}
}
