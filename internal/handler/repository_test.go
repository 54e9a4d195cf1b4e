//go:build unit

package handler

import (
	"context"
	"fmt"
	"io"
	"workshop-site/internal/data"
	"workshop-site/internal/service"
	"workshop-site/internal/storage"
)

// memRepository is an in-memory content store collection.
type memRepository[T data.Document] struct {
	docs        []T
	errToReturn error
	createCalls int
}

var _ service.Repository[*data.PageDescriptor] = (*memRepository[*data.PageDescriptor])(nil)

func (m *memRepository[T]) GetAll(ctx context.Context) ([]T, error) {
	if m.errToReturn != nil {
		return nil, m.errToReturn
	}
	return append([]T(nil), m.docs...), nil
}

func (m *memRepository[T]) Create(ctx context.Context, doc T) error {
	m.createCalls++
	if m.errToReturn != nil {
		return m.errToReturn
	}
	doc.SetID(fmt.Sprintf("id-%d", len(m.docs)+1))
	m.docs = append(m.docs, doc)
	return nil
}

func (m *memRepository[T]) Update(ctx context.Context, doc T) error {
	if m.errToReturn != nil {
		return m.errToReturn
	}
	for i, d := range m.docs {
		if d.GetID() == doc.GetID() {
			m.docs[i] = doc
			return nil
		}
	}
	return data.ErrNotFound
}

func (m *memRepository[T]) Delete(ctx context.Context, id string) error {
	if m.errToReturn != nil {
		return m.errToReturn
	}
	for i, d := range m.docs {
		if d.GetID() == id {
			m.docs = append(m.docs[:i], m.docs[i+1:]...)
			return nil
		}
	}
	return data.ErrNotFound
}

type memBodyCopyRepository struct {
	copy *data.BodyCopy
}

func (m *memBodyCopyRepository) GetByLocation(ctx context.Context, location string) (*data.BodyCopy, error) {
	if m.copy == nil {
		return nil, data.ErrNotFound
	}
	c := *m.copy
	return &c, nil
}
func (m *memBodyCopyRepository) Create(ctx context.Context, bc *data.BodyCopy) error {
	bc.ID = "home-1"
	c := *bc
	m.copy = &c
	return nil
}
func (m *memBodyCopyRepository) UpdateCopy(ctx context.Context, id, copy string) error {
	m.copy.Copy = copy
	return nil
}
func (m *memBodyCopyRepository) UpdateImage(ctx context.Context, id, image string) error {
	m.copy.Image = image
	return nil
}

type testRepos struct {
	colors  *memRepository[*data.ThemeColor]
	pages   *memRepository[*data.PageDescriptor]
	socials *memRepository[*data.SocialLink]
	posts   *memRepository[*data.BlogPost]
	events  *memRepository[*data.Event]
	gallery *memRepository[*data.GalleryImage]
}

func newTestRepos() (testRepos, service.Repositories) {
	tr := testRepos{
		colors:  &memRepository[*data.ThemeColor]{},
		pages:   &memRepository[*data.PageDescriptor]{},
		socials: &memRepository[*data.SocialLink]{},
		posts:   &memRepository[*data.BlogPost]{},
		events:  &memRepository[*data.Event]{},
		gallery: &memRepository[*data.GalleryImage]{},
	}
	return tr, service.Repositories{
		Colors:    tr.colors,
		Pages:     tr.pages,
		Socials:   tr.socials,
		BlogPosts: tr.posts,
		Events:    tr.events,
		Gallery:   tr.gallery,
		BodyCopy:  &memBodyCopyRepository{},
	}
}

// countingUploader records uploads instead of writing blobs.
type countingUploader struct {
	uploads     []string
	errToReturn error
}

var _ storage.Uploader = (*countingUploader)(nil)

func (u *countingUploader) Upload(ctx context.Context, collection, fileName string, r io.Reader, contentType string) (string, error) {
	if u.errToReturn != nil {
		return "", u.errToReturn
	}
	key := collection + "/" + fileName
	u.uploads = append(u.uploads, key)
	return "/uploads/" + key, nil
}
