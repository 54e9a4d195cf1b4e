// Package docstore implements the content repositories on Cloud Firestore.
package docstore

import (
	"context"
	"fmt"
	"workshop-site/internal/config"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

// Collection names used by the site.
const (
	ColorsCollection    = "Colors"
	PagesCollection     = "Pages"
	SocialsCollection   = "Socials"
	BodyCopyCollection  = "BodyCopy"
	BlogPostsCollection = "BlogPosts"
	EventsCollection    = "Events"
	GalleryCollection   = "Gallery"
	UsersCollection     = "Users"
)

// NewApp initialises the Firebase Admin SDK. Without a credentials file the
// application default credentials are used.
func NewApp(ctx context.Context, cfg config.FirebaseConfig) (*firebase.App, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	app, err := firebase.NewApp(ctx, &firebase.Config{
		ProjectID:     cfg.ProjectID,
		StorageBucket: cfg.Bucket,
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}
	return app, nil
}

// NewClient opens a Firestore client for app. The caller closes it.
func NewClient(ctx context.Context, app *firebase.App) (*firestore.Client, error) {
	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create firestore client: %w", err)
	}
	return client, nil
}
