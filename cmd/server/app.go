package main

import (
	"context"
	"errors"
	"fmt"
	"workshop-site/internal/config"
	"workshop-site/internal/data"
	"workshop-site/internal/docstore"
	"workshop-site/internal/logger"
	"workshop-site/internal/service"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/jmoiron/sqlx"
)

// app holds the connections shared by the commands.
type app struct {
	db       *sqlx.DB
	firebase *firebase.App
	fs       *firestore.Client
	repos    service.Repositories
}

// openApp connects to the database, applies its migrations and builds the
// content repositories for the configured backend.
func openApp(ctx context.Context, cfg *config.Config, log logger.Logger) (*app, error) {
	a := &app{}

	log.Info("Connecting to the database...")
	db, err := data.NewDB(cfg.DB)
	if err != nil {
		return nil, err
	}
	a.db = db
	if err := migrate(cfg.DB, db, log); err != nil {
		a.Close()
		return nil, err
	}

	if cfg.Content.Backend == "firestore" || cfg.Storage.Backend == "firebase" {
		log.Info("Initializing Firebase...")
		if a.firebase, err = docstore.NewApp(ctx, cfg.Content.Firebase); err != nil {
			a.Close()
			return nil, err
		}
	}

	switch cfg.Content.Backend {
	case "", "sql":
		a.repos = service.Repositories{
			Colors:    data.NewSQLColorRepository(db),
			Pages:     data.NewSQLPageRepository(db),
			Socials:   data.NewSQLSocialRepository(db),
			BlogPosts: data.NewSQLBlogRepository(db),
			Events:    data.NewSQLEventRepository(db),
			Gallery:   data.NewSQLGalleryRepository(db),
			BodyCopy:  data.NewSQLBodyCopyRepository(db),
			Operators: data.NewSQLOperatorRepository(db),
		}
	case "firestore":
		if a.fs, err = docstore.NewClient(ctx, a.firebase); err != nil {
			a.Close()
			return nil, err
		}
		a.repos = service.Repositories{
			Colors:    docstore.NewColors(a.fs),
			Pages:     docstore.NewPages(a.fs),
			Socials:   docstore.NewSocials(a.fs),
			BlogPosts: docstore.NewBlogPosts(a.fs),
			Events:    docstore.NewEvents(a.fs),
			Gallery:   docstore.NewGallery(a.fs),
			BodyCopy:  docstore.NewBodyCopies(a.fs),
			Operators: docstore.NewOperators(a.fs),
		}
	default:
		a.Close()
		return nil, fmt.Errorf("unknown content backend %q", cfg.Content.Backend)
	}
	log.Info(fmt.Sprintf("Using the %s content backend.", a.backend(cfg)))
	return a, nil
}

func (a *app) backend(cfg *config.Config) string {
	if cfg.Content.Backend == "" {
		return "sql"
	}
	return cfg.Content.Backend
}

// migrate applies the schema. In-memory SQLite databases get it on the open
// connection since a second connection would see an empty database.
func migrate(cfg config.DBConfig, db *sqlx.DB, log logger.Logger) error {
	log.Info("Applying database migrations...")
	var err error
	if data.IsInMemory(cfg) {
		err = data.ApplySchema(db, cfg.Driver)
	} else {
		err = data.ApplyMigrations(cfg)
	}
	if err != nil {
		return err
	}
	log.Info("Migrations applied successfully.")
	return nil
}

// Close releases every open connection.
func (a *app) Close() error {
	var errs []error
	if a.fs != nil {
		errs = append(errs, a.fs.Close())
	}
	if a.db != nil {
		errs = append(errs, a.db.Close())
	}
	return errors.Join(errs...)
}
