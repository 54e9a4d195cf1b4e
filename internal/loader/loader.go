// Package loader fetches the site-wide configuration into the state store.
package loader

import (
	"context"
	"time"
	"workshop-site/internal/data"
	"workshop-site/internal/logger"
	"workshop-site/internal/service"
	"workshop-site/internal/state"

	"github.com/sourcegraph/conc/pool"
)

// Loader populates a state.Store from the content store.
type Loader struct {
	colors  service.Repository[*data.ThemeColor]
	socials service.Repository[*data.SocialLink]
	pages   service.Repository[*data.PageDescriptor]
	store   *state.Store
	log     logger.Logger
}

// New creates a Loader reading from repos.
func New(repos service.Repositories, store *state.Store, log logger.Logger) *Loader {
	return &Loader{
		colors:  repos.Colors,
		socials: repos.Socials,
		pages:   repos.Pages,
		store:   store,
		log:     log,
	}
}

// Load fetches theme colors, socials and pages concurrently. Each fetch that
// fails is logged and leaves its part of the store untouched; the others are
// still published. The returned error joins every FetchError.
func (l *Loader) Load(ctx context.Context) error {
	p := pool.New().WithErrors()

	p.Go(func() error {
		colors, err := l.colors.GetAll(ctx)
		if err != nil {
			return l.failed("Colors", err)
		}
		l.store.SetThemeColors(data.Colors(colors))
		return nil
	})
	p.Go(func() error {
		socials, err := l.socials.GetAll(ctx)
		if err != nil {
			return l.failed("Socials", err)
		}
		l.store.SetSocials(socials)
		return nil
	})
	p.Go(func() error {
		pages, err := l.pages.GetAll(ctx)
		if err != nil {
			return l.failed("Pages", err)
		}
		l.store.SetPages(pages)
		return nil
	})

	return p.Wait()
}

func (l *Loader) failed(collection string, err error) error {
	ferr := &service.FetchError{Collection: collection, Err: err}
	l.log.With(map[string]interface{}{"collection": collection}).Error(ferr, "Failed to load site content")
	return ferr
}

// Run reloads the content every interval until ctx is done. A non-positive
// interval disables periodic refresh.
func (l *Loader) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := l.Load(ctx); err == nil {
				l.log.Debug("Site content refreshed")
			}
		}
	}
}
