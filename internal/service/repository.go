package service

import (
	"context"
	"workshop-site/internal/data"
)

// Repository is a content store collection of documents of type T.
type Repository[T data.Document] interface {
	GetAll(ctx context.Context) ([]T, error)
	Create(ctx context.Context, doc T) error
	Update(ctx context.Context, doc T) error
	Delete(ctx context.Context, id string) error
}

// BodyCopyRepository stores copy blocks addressed by location.
type BodyCopyRepository interface {
	GetByLocation(ctx context.Context, location string) (*data.BodyCopy, error)
	Create(ctx context.Context, bc *data.BodyCopy) error
	UpdateCopy(ctx context.Context, id, copy string) error
	UpdateImage(ctx context.Context, id, image string) error
}

// OperatorRepository stores dashboard operators.
type OperatorRepository interface {
	GetByEmail(ctx context.Context, email string) (*data.Operator, error)
	Create(ctx context.Context, op *data.Operator) error
}

// Repositories groups the content store collections the services need.
type Repositories struct {
	Colors    Repository[*data.ThemeColor]
	Pages     Repository[*data.PageDescriptor]
	Socials   Repository[*data.SocialLink]
	BlogPosts Repository[*data.BlogPost]
	Events    Repository[*data.Event]
	Gallery   Repository[*data.GalleryImage]
	BodyCopy  BodyCopyRepository
	Operators OperatorRepository
}
