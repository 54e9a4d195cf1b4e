//go:build unit

package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"workshop-site/internal/data"
)

// mockRepository is an in-memory Repository with call counters.
type mockRepository[T data.Document] struct {
	docs         []T
	errToReturn  error
	getAllErr    error
	nextID       int
	getAllCalled int
	createCalled int
	updateCalled int
	deleteCalled int
	lastDoc      T
}

func (m *mockRepository[T]) GetAll(ctx context.Context) ([]T, error) {
	m.getAllCalled++
	if m.getAllErr != nil {
		return nil, m.getAllErr
	}
	return append([]T(nil), m.docs...), nil
}

func (m *mockRepository[T]) Create(ctx context.Context, doc T) error {
	m.createCalled++
	m.lastDoc = doc
	if m.errToReturn != nil {
		return m.errToReturn
	}
	m.nextID++
	doc.SetID(fmt.Sprintf("id-%d", m.nextID))
	m.docs = append(m.docs, doc)
	return nil
}

func (m *mockRepository[T]) Update(ctx context.Context, doc T) error {
	m.updateCalled++
	m.lastDoc = doc
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

func (m *mockRepository[T]) Delete(ctx context.Context, id string) error {
	m.deleteCalled++
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

// mockBodyCopyRepository is a mock implementation of BodyCopyRepository.
type mockBodyCopyRepository struct {
	doc               *data.BodyCopy
	errToReturn       error
	createCalled      bool
	updateImageCalled bool
}

var _ BodyCopyRepository = (*mockBodyCopyRepository)(nil)

func (m *mockBodyCopyRepository) GetByLocation(ctx context.Context, location string) (*data.BodyCopy, error) {
	if m.doc == nil || m.doc.Location != location {
		return nil, data.ErrNotFound
	}
	c := *m.doc
	return &c, nil
}

func (m *mockBodyCopyRepository) Create(ctx context.Context, bc *data.BodyCopy) error {
	m.createCalled = true
	if m.errToReturn != nil {
		return m.errToReturn
	}
	bc.ID = "copy-1"
	c := *bc
	m.doc = &c
	return nil
}

func (m *mockBodyCopyRepository) UpdateCopy(ctx context.Context, id, copy string) error {
	if m.errToReturn != nil {
		return m.errToReturn
	}
	m.doc.Copy = copy
	return nil
}

func (m *mockBodyCopyRepository) UpdateImage(ctx context.Context, id, image string) error {
	m.updateImageCalled = true
	if m.errToReturn != nil {
		return m.errToReturn
	}
	m.doc.Image = image
	return nil
}

// mockOperatorRepository is a mock implementation of OperatorRepository.
type mockOperatorRepository struct {
	operators    map[string]*data.Operator
	createCalled bool
}

var _ OperatorRepository = (*mockOperatorRepository)(nil)

func (m *mockOperatorRepository) GetByEmail(ctx context.Context, email string) (*data.Operator, error) {
	if op, ok := m.operators[email]; ok {
		return op, nil
	}
	return nil, data.ErrNotFound
}

func (m *mockOperatorRepository) Create(ctx context.Context, op *data.Operator) error {
	m.createCalled = true
	if m.operators == nil {
		m.operators = map[string]*data.Operator{}
	}
	m.operators[op.Email] = op
	return nil
}

// mockUploader records uploads and can be told to fail.
type mockUploader struct {
	errToReturn error
	lastKey     string
}

func (m *mockUploader) Upload(ctx context.Context, collection, fileName string, r io.Reader, contentType string) (string, error) {
	if m.errToReturn != nil {
		return "", m.errToReturn
	}
	if _, err := io.ReadAll(r); err != nil {
		return "", err
	}
	m.lastKey = collection + "/" + fileName
	return "https://cdn.example.com/" + m.lastKey, nil
}

var errStore = errors.New("store unavailable")
