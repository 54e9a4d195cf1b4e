package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
	"workshop-site/internal/data"
	"workshop-site/internal/logger"
	"workshop-site/internal/middleware"
	"workshop-site/internal/navigation"
	"workshop-site/internal/service"
	"workshop-site/internal/session"
	"workshop-site/internal/state"
	"workshop-site/internal/view"

	"github.com/go-chi/chi/v5"
)

// Dashboard sections. Blog, Events and Gallery are only offered while the
// matching public page is active.
const (
	sectionGeneral = "general"
	sectionBlog    = "blog"
	sectionEvents  = "events"
	sectionGallery = "gallery"
)

var sectionScreens = map[string]navigation.Screen{
	sectionBlog:    navigation.ScreenBlog,
	sectionEvents:  navigation.ScreenEvents,
	sectionGallery: navigation.ScreenGallery,
}

// AdminHandler serves the operator dashboard.
type AdminHandler struct {
	store    *state.Store
	general  *service.GeneralService
	blog     *service.BlogService
	events   *service.EventService
	gallery  *service.Editor[*data.GalleryImage]
	sessions session.Manager
	view     *view.View
	log      logger.Logger
	now      func() time.Time
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(store *state.Store, svc SiteServices, sm session.Manager, v *view.View, log logger.Logger) *AdminHandler {
	return &AdminHandler{
		store:    store,
		general:  svc.General,
		blog:     svc.Blog,
		events:   svc.Events,
		gallery:  svc.Gallery,
		sessions: sm,
		view:     v,
		log:      log,
		now:      time.Now,
	}
}

// sectionEnabled reports whether a dashboard section may be shown.
func (h *AdminHandler) sectionEnabled(section string) bool {
	if section == sectionGeneral {
		return true
	}
	screen, ok := sectionScreens[section]
	return ok && h.store.IsPageActive(screen.String())
}

func (h *AdminHandler) sections() []string {
	sections := []string{sectionGeneral}
	for _, s := range []string{sectionGallery, sectionBlog, sectionEvents} {
		if h.sectionEnabled(s) {
			sections = append(sections, s)
		}
	}
	return sections
}

// dashboardHandler renders one dashboard section.
func (h *AdminHandler) dashboardHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	ctx := r.Context()
	section := chi.URLParam(r, "section")
	if section == "" {
		section = sectionGeneral
	}
	if _, known := sectionScreens[section]; !known && section != sectionGeneral {
		return notFound(fmt.Errorf("unknown dashboard section %q", section))
	}
	if !h.sectionEnabled(section) {
		session.SetFlash(ctx, h.sessions, session.FlashError, "Activate the page before editing its content.")
		http.Redirect(w, r, "/admin", http.StatusFound)
		return nil
	}

	user := middleware.GetUserInfo(ctx)
	data := map[string]interface{}{
		"Greeting": service.Greeting(h.now()),
		"Operator": user.Name,
		"Section":  section,
		"Sections": h.sections(),
		"Flash":    session.PopFlash(ctx, h.sessions),
	}

	var err error
	switch section {
	case sectionGeneral:
		err = h.loadGeneral(ctx, data)
	case sectionBlog:
		data["Posts"], err = h.blog.List(ctx)
	case sectionEvents:
		data["Events"], err = h.events.List(ctx)
	case sectionGallery:
		data["Images"], err = h.gallery.List(ctx)
	}
	if err != nil {
		h.log.Error(err, "Failed to load dashboard section")
		data["FetchFailed"] = true
	}

	if err := h.view.Render(w, r, "admin.html", data); err != nil {
		return renderFailed(err, "dashboard")
	}
	return nil
}

func (h *AdminHandler) loadGeneral(ctx context.Context, data map[string]interface{}) error {
	var errs []error
	colors, err := h.general.Colors.List(ctx)
	errs = append(errs, err)
	pages, err := h.general.Pages.List(ctx)
	errs = append(errs, err)
	socials, err := h.general.Socials.List(ctx)
	errs = append(errs, err)
	home, err := h.general.HomeCopy(ctx)
	errs = append(errs, err)

	data["Colors"] = colors
	data["Pages"] = pages
	data["Socials"] = socials
	data["Home"] = home
	return errors.Join(errs...)
}

// homeCopyHandler saves the home panel text.
func (h *AdminHandler) homeCopyHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.general.SaveHomeCopy(ctx, r.FormValue("copy")); err != nil {
		flashForError(ctx, h.sessions, h.log, err)
	} else {
		session.SetFlash(ctx, h.sessions, session.FlashSuccess, "Home copy saved.")
	}
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// heroImageHandler uploads a new hero image for the home panel.
func (h *AdminHandler) heroImageHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	defer http.Redirect(w, r, "/admin", http.StatusSeeOther)

	file, name, contentType, err := formImage(w, r)
	if err != nil {
		flashForError(ctx, h.sessions, h.log, err)
		return
	}
	if file == nil {
		session.SetFlash(ctx, h.sessions, session.FlashError, "Choose an image to upload.")
		return
	}
	defer file.Close()

	if _, err := h.general.SetHeroImage(ctx, name, file, contentType); err != nil {
		flashForError(ctx, h.sessions, h.log, err)
		return
	}
	session.SetFlash(ctx, h.sessions, session.FlashSuccess, "Image uploaded.")
}

// formImage returns the optional "imageFile" upload of a multipart form. A nil
// file means no image was submitted.
func formImage(w http.ResponseWriter, r *http.Request) (io.ReadCloser, string, string, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return nil, "", "", fmt.Errorf("failed to read upload: %w", err)
	}
	file, header, err := r.FormFile("imageFile")
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, "", "", nil
	}
	if err != nil {
		return nil, "", "", fmt.Errorf("failed to read upload: %w", err)
	}
	if header.Size == 0 {
		file.Close()
		return nil, "", "", nil
	}
	return file, header.Filename, header.Header.Get("Content-Type"), nil
}
