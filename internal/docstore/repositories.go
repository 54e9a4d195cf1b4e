package docstore

import (
	"context"
	"fmt"
	"strings"
	"workshop-site/internal/data"

	"cloud.google.com/go/firestore"
)

// NewColors returns the theme color collection. Updates merge Color and Hex.
func NewColors(client *firestore.Client) *Collection[*data.ThemeColor] {
	return NewCollection(client, ColorsCollection, func() *data.ThemeColor { return &data.ThemeColor{} },
		WithMerge[*data.ThemeColor]("Color", "Hex"))
}

// NewPages returns the page descriptor collection. Updates merge Name and Active.
func NewPages(client *firestore.Client) *Collection[*data.PageDescriptor] {
	return NewCollection(client, PagesCollection, func() *data.PageDescriptor { return &data.PageDescriptor{} },
		WithMerge[*data.PageDescriptor]("Name", "Active"),
		WithOrder(func(a, b *data.PageDescriptor) bool { return a.Position < b.Position }))
}

// NewSocials returns the social link collection. Updates merge Name, Link and Active.
func NewSocials(client *firestore.Client) *Collection[*data.SocialLink] {
	return NewCollection(client, SocialsCollection, func() *data.SocialLink { return &data.SocialLink{} },
		WithMerge[*data.SocialLink]("Name", "Link", "Active"),
		WithOrder(func(a, b *data.SocialLink) bool { return a.Position < b.Position }))
}

func NewBlogPosts(client *firestore.Client) *Collection[*data.BlogPost] {
	return NewCollection(client, BlogPostsCollection, func() *data.BlogPost { return &data.BlogPost{} })
}

func NewEvents(client *firestore.Client) *Collection[*data.Event] {
	return NewCollection(client, EventsCollection, func() *data.Event { return &data.Event{} },
		WithOrder(func(a, b *data.Event) bool { return a.StartDate.Before(b.StartDate) }))
}

func NewGallery(client *firestore.Client) *Collection[*data.GalleryImage] {
	return NewCollection(client, GalleryCollection, func() *data.GalleryImage { return &data.GalleryImage{} })
}

// BodyCopies finds copy blocks by their location tag.
type BodyCopies struct {
	*Collection[*data.BodyCopy]
}

// NewBodyCopies returns the body copy collection.
func NewBodyCopies(client *firestore.Client) *BodyCopies {
	return &BodyCopies{NewCollection(client, BodyCopyCollection, func() *data.BodyCopy { return &data.BodyCopy{} })}
}

// GetByLocation returns the first copy block tagged with location.
func (b *BodyCopies) GetByLocation(ctx context.Context, location string) (*data.BodyCopy, error) {
	snaps, err := b.client.Collection(b.name).Where("Location", "==", location).Limit(1).Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to query body copy: %w", err)
	}
	docs, err := b.decode(snaps)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("body copy for location '%s': %w", location, data.ErrNotFound)
	}
	return docs[0], nil
}

// UpdateCopy writes only the Copy field.
func (b *BodyCopies) UpdateCopy(ctx context.Context, id, copy string) error {
	return b.updateField(ctx, id, "Copy", copy)
}

// UpdateImage writes only the Image field.
func (b *BodyCopies) UpdateImage(ctx context.Context, id, image string) error {
	return b.updateField(ctx, id, "Image", image)
}

func (b *BodyCopies) updateField(ctx context.Context, id, field, value string) error {
	_, err := b.client.Collection(b.name).Doc(id).Update(ctx, []firestore.Update{{Path: field, Value: value}})
	if err != nil {
		return fmt.Errorf("failed to update body copy %s: %w", field, notFound(err, "body copy "+id))
	}
	return nil
}

// Operators looks up dashboard users by email.
type Operators struct {
	*Collection[*data.Operator]
}

// NewOperators returns the Users collection.
func NewOperators(client *firestore.Client) *Operators {
	return &Operators{NewCollection(client, UsersCollection, func() *data.Operator { return &data.Operator{} })}
}

// GetByEmail returns the operator registered with email.
func (o *Operators) GetByEmail(ctx context.Context, email string) (*data.Operator, error) {
	snaps, err := o.client.Collection(o.name).Where("email", "==", strings.ToLower(email)).Limit(1).Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to query operators: %w", err)
	}
	docs, err := o.decode(snaps)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("operator '%s': %w", email, data.ErrNotFound)
	}
	return docs[0], nil
}

// Create stores a new operator with a lower-cased email.
func (o *Operators) Create(ctx context.Context, op *data.Operator) error {
	op.Email = strings.ToLower(op.Email)
	return o.Collection.Create(ctx, op)
}
