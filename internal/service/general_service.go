package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"workshop-site/internal/data"
	"workshop-site/internal/logger"
	"workshop-site/internal/state"
	"workshop-site/internal/storage"
)

// HomeLocation tags the body copy shown on the home panel.
const HomeLocation = "home"

// GeneralService edits the site-wide settings: theme colors, pages, socials and
// the home panel copy. Changes to colors, pages and socials are pushed into the
// state store so the public site reflects them without a restart.
type GeneralService struct {
	Colors   *Editor[*data.ThemeColor]
	Pages    *Editor[*data.PageDescriptor]
	Socials  *Editor[*data.SocialLink]
	bodyCopy BodyCopyRepository
	uploader storage.Uploader
	log      logger.Logger
}

// NewGeneralService wires the general editors to the store. uploader may be nil.
func NewGeneralService(repos Repositories, store *state.Store, uploader storage.Uploader, log logger.Logger) *GeneralService {
	return &GeneralService{
		Colors: NewEditor("Colors", repos.Colors, log,
			WithValidation(validateColor),
			WithChangeHook(func(colors []*data.ThemeColor) { store.SetThemeColors(data.Colors(colors)) }),
		),
		Pages: NewEditor("Pages", repos.Pages, log,
			WithValidation(validatePage),
			WithChangeHook(store.SetPages),
		),
		Socials: NewEditor("Socials", repos.Socials, log,
			WithValidation(validateSocial),
			WithChangeHook(store.SetSocials),
		),
		bodyCopy: repos.BodyCopy,
		uploader: uploader,
		log:      log,
	}
}

// HomeCopy returns the home panel copy. A missing document yields an empty block.
func (s *GeneralService) HomeCopy(ctx context.Context) (*data.BodyCopy, error) {
	bc, err := s.bodyCopy.GetByLocation(ctx, HomeLocation)
	if errors.Is(err, data.ErrNotFound) {
		return &data.BodyCopy{Location: HomeLocation}, nil
	}
	if err != nil {
		return nil, &FetchError{Collection: "BodyCopy", Err: err}
	}
	return bc, nil
}

// SaveHomeCopy writes only the text of the home copy block, creating it if needed.
func (s *GeneralService) SaveHomeCopy(ctx context.Context, copy string) error {
	bc, err := s.HomeCopy(ctx)
	if err != nil {
		return &PersistenceError{Op: "update", Collection: "BodyCopy", Err: err}
	}
	if bc.ID == "" {
		bc.Copy = copy
		if err := s.bodyCopy.Create(ctx, bc); err != nil {
			return &PersistenceError{Op: "create", Collection: "BodyCopy", Err: err}
		}
		return nil
	}
	if err := s.bodyCopy.UpdateCopy(ctx, bc.ID, copy); err != nil {
		return &PersistenceError{Op: "update", Collection: "BodyCopy", Err: err}
	}
	return nil
}

// SetHeroImage uploads a new hero image and points the home copy at it. When the
// upload fails the stored image is left unchanged.
func (s *GeneralService) SetHeroImage(ctx context.Context, fileName string, r io.Reader, contentType string) (string, error) {
	if s.uploader == nil {
		return "", &PersistenceError{Op: "upload", Collection: "BodyCopy", Err: ErrNoUploader}
	}
	url, err := s.uploader.Upload(ctx, "BodyCopy", fileName, r, contentType)
	if err != nil {
		return "", &PersistenceError{Op: "upload", Collection: "BodyCopy", Err: err}
	}

	bc, err := s.HomeCopy(ctx)
	if err != nil {
		return "", &PersistenceError{Op: "update", Collection: "BodyCopy", Err: err}
	}
	if bc.ID == "" {
		bc.Image = url
		err = s.bodyCopy.Create(ctx, bc)
	} else {
		err = s.bodyCopy.UpdateImage(ctx, bc.ID, url)
	}
	if err != nil {
		return "", &PersistenceError{Op: "update", Collection: "BodyCopy", Err: fmt.Errorf("image uploaded to %s: %w", url, err)}
	}
	s.log.Info("Hero image updated")
	return url, nil
}
