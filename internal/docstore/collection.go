package docstore

import (
	"context"
	"fmt"
	"sort"
	"workshop-site/internal/data"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Collection stores documents of type T in one Firestore collection.
// Document ids live in the snapshot reference, never in the document body.
type Collection[T data.Document] struct {
	client *firestore.Client
	name   string
	newDoc func() T
	merge  []firestore.FieldPath
	less   func(a, b T) bool
}

// Option customises a Collection.
type Option[T data.Document] func(*Collection[T])

// WithMerge makes Update write only the given fields.
func WithMerge[T data.Document](fields ...string) Option[T] {
	return func(c *Collection[T]) {
		for _, f := range fields {
			c.merge = append(c.merge, firestore.FieldPath{f})
		}
	}
}

// WithOrder sorts GetAll results.
func WithOrder[T data.Document](less func(a, b T) bool) Option[T] {
	return func(c *Collection[T]) { c.less = less }
}

// NewCollection returns a Collection named name. newDoc allocates an empty document.
func NewCollection[T data.Document](client *firestore.Client, name string, newDoc func() T, opts ...Option[T]) *Collection[T] {
	c := &Collection[T]{client: client, name: name, newDoc: newDoc}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetAll scans the whole collection.
func (c *Collection[T]) GetAll(ctx context.Context) ([]T, error) {
	snaps, err := c.client.Collection(c.name).Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", c.name, err)
	}
	return c.decode(snaps)
}

func (c *Collection[T]) decode(snaps []*firestore.DocumentSnapshot) ([]T, error) {
	docs := make([]T, 0, len(snaps))
	for _, snap := range snaps {
		doc := c.newDoc()
		if err := snap.DataTo(doc); err != nil {
			return nil, fmt.Errorf("failed to decode %s/%s: %w", c.name, snap.Ref.ID, err)
		}
		doc.SetID(snap.Ref.ID)
		docs = append(docs, doc)
	}
	if c.less != nil {
		sort.SliceStable(docs, func(i, j int) bool { return c.less(docs[i], docs[j]) })
	}
	return docs, nil
}

// Create adds doc under a new auto-generated id.
func (c *Collection[T]) Create(ctx context.Context, doc T) error {
	ref := c.client.Collection(c.name).NewDoc()
	doc.SetID(ref.ID)
	if _, err := ref.Set(ctx, doc); err != nil {
		return fmt.Errorf("failed to create %s document: %w", c.name, err)
	}
	return nil
}

// Update upserts doc, merging only the configured fields when a merge set exists.
func (c *Collection[T]) Update(ctx context.Context, doc T) error {
	if doc.GetID() == "" {
		return fmt.Errorf("%s document without id: %w", c.name, data.ErrNotFound)
	}
	ref := c.client.Collection(c.name).Doc(doc.GetID())
	var opts []firestore.SetOption
	if len(c.merge) > 0 {
		opts = append(opts, firestore.Merge(c.merge...))
	}
	if _, err := ref.Set(ctx, doc, opts...); err != nil {
		return fmt.Errorf("failed to update %s/%s: %w", c.name, doc.GetID(), err)
	}
	return nil
}

// Delete removes the document with the given id.
func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	if _, err := c.client.Collection(c.name).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete %s/%s: %w", c.name, id, err)
	}
	return nil
}

// notFound maps Firestore's NotFound status onto data.ErrNotFound.
func notFound(err error, what string) error {
	if status.Code(err) == codes.NotFound {
		return fmt.Errorf("%s: %w", what, data.ErrNotFound)
	}
	return err
}
