package handler

import (
	"errors"
	"net"
	"net/http"
	"time"
	"workshop-site/internal/contact"
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

// Contact form notifications.
const (
	contactSent   = "Email sent successfully!"
	contactFailed = "Error sending email. Please try again later."
)

// SiteHandler serves the public panel site.
type SiteHandler struct {
	store            *state.Store
	general          *service.GeneralService
	blog             *service.BlogService
	events           *service.EventService
	gallery          *service.Editor[*data.GalleryImage]
	calendar         CalendarSource
	contact          ContactSender
	recaptchaSiteKey string
	sessions         session.Manager
	view             *view.View
	log              logger.Logger
	now              func() time.Time
}

// SiteServices groups the services read by the public site.
type SiteServices struct {
	General  *service.GeneralService
	Blog     *service.BlogService
	Events   *service.EventService
	Gallery  *service.Editor[*data.GalleryImage]
	Calendar CalendarSource
	Contact  ContactSender
}

// NewSiteHandler creates a new SiteHandler.
func NewSiteHandler(store *state.Store, svc SiteServices, recaptchaSiteKey string, sm session.Manager, v *view.View, log logger.Logger) *SiteHandler {
	return &SiteHandler{
		store:            store,
		general:          svc.General,
		blog:             svc.Blog,
		events:           svc.Events,
		gallery:          svc.Gallery,
		calendar:         svc.Calendar,
		contact:          svc.Contact,
		recaptchaSiteKey: recaptchaSiteKey,
		sessions:         sm,
		view:             v,
		log:              log,
		now:              time.Now,
	}
}

func (h *SiteHandler) layout() navigation.Layout {
	pages, count := h.store.Pages()
	return navigation.Compose(pages, count)
}

// homeHandler renders the whole panel stack scrolled to the visitor's position.
// A "screen" query parameter deep-links to a panel.
func (h *SiteHandler) homeHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	ctx := r.Context()
	layout := h.layout()

	nav := session.Navigation(ctx, h.sessions)
	nav.Reconcile(layout)
	if s := r.URL.Query().Get("screen"); s != "" {
		nav.Navigate(layout, navigation.ParseScreen(s))
	}
	now := h.now()
	nav.Mount(now)
	nav.Enter(now)
	nav.SetMobile(middleware.IsMobile(ctx))
	session.SaveNavigation(ctx, h.sessions, nav)

	viewData := map[string]interface{}{
		"Layout":   layout,
		"NavItems": layout.NavItems(),
		"Nav":      nav,
		"Flash":    session.PopFlash(ctx, h.sessions),

		"ContactEnabled": layout.Has(navigation.ScreenContact),
	}

	home, err := h.general.HomeCopy(ctx)
	if err != nil {
		h.log.Error(err, "Failed to fetch home copy")
		home = &data.BodyCopy{}
	}
	viewData["Home"] = home

	for _, p := range layout.Panels {
		switch p.Screen {
		case navigation.ScreenGallery:
			images, err := h.gallery.List(ctx)
			if err != nil {
				h.log.Error(err, "Failed to fetch gallery")
			}
			viewData["Gallery"] = images
		case navigation.ScreenEvents:
			listings, err := h.events.Listings(ctx, nav.Mobile)
			if err != nil {
				h.log.Error(err, "Failed to fetch events")
			}
			viewData["Events"] = listings
		case navigation.ScreenCalendar:
			if h.calendar == nil || !h.calendar.Configured() {
				continue
			}
			entries, err := h.calendar.Entries(ctx)
			if err != nil {
				h.log.Error(err, "Failed to fetch calendar entries")
			}
			viewData["Calendar"] = entries
		case navigation.ScreenBlog:
			posts, err := h.blog.List(ctx)
			if err != nil {
				h.log.Error(err, "Failed to fetch blog posts")
			}
			category := r.URL.Query().Get("category")
			if category == "" {
				category = service.AllCategories
			}
			viewData["Categories"] = service.Categories(posts)
			viewData["Category"] = category
			viewData["Posts"] = service.FilterByCategory(posts, category)
		case navigation.ScreenContact:
			viewData["RecaptchaSiteKey"] = h.recaptchaSiteKey
		}
	}

	if err := h.view.Render(w, r, "site.html", viewData); err != nil {
		return renderFailed(err, "site")
	}
	return nil
}

// navHandler scrolls to a panel. Tapping a destination in the open drawer also closes it.
func (h *SiteHandler) navHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	ctx := r.Context()
	screen := navigation.ParseScreen(chi.URLParam(r, "screen"))
	layout := h.layout()

	nav := session.Navigation(ctx, h.sessions)
	nav.Reconcile(layout)
	if nav.Drawer.Open() {
		nav.Tap(navigation.DestinationTap, layout, screen)
	} else if !nav.Navigate(layout, screen) {
		return notFound(errors.New("no panel for " + chi.URLParam(r, "screen")))
	}
	session.SaveNavigation(ctx, h.sessions, nav)

	http.Redirect(w, r, "/", http.StatusSeeOther)
	return nil
}

var drawerInputs = map[string]navigation.DrawerInput{
	"open":    navigation.MenuTap,
	"close":   navigation.CloseTap,
	"outside": navigation.OutsideTap,
}

// drawerHandler opens or closes the navigation drawer.
func (h *SiteHandler) drawerHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	in, ok := drawerInputs[chi.URLParam(r, "action")]
	if !ok {
		return notFound(errors.New("unknown drawer action"))
	}
	nav := session.Navigation(r.Context(), h.sessions)
	nav.Tap(in, navigation.Layout{}, navigation.ScreenNone)
	session.SaveNavigation(r.Context(), h.sessions, nav)

	http.Redirect(w, r, "/", http.StatusSeeOther)
	return nil
}

// postHandler renders a single blog post.
func (h *SiteHandler) postHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	if !h.store.IsPageActive(navigation.ScreenBlog.String()) {
		return notFound(errors.New("blog is not active"))
	}
	post, err := h.blog.Get(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, data.ErrNotFound) {
		return notFound(err)
	}
	if err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to load post", Code: http.StatusInternalServerError}
	}

	if err := h.view.Render(w, r, "post.html", map[string]interface{}{"Post": post}); err != nil {
		return renderFailed(err, "post")
	}
	return nil
}

// eventHandler renders the sign-up view of an event with its terms resolved now.
func (h *SiteHandler) eventHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	if !h.store.IsPageActive(navigation.ScreenEvents.String()) {
		return notFound(errors.New("events are not active"))
	}
	listing, err := h.events.Listing(r.Context(), chi.URLParam(r, "id"), middleware.IsMobile(r.Context()))
	if errors.Is(err, data.ErrNotFound) {
		return notFound(err)
	}
	if err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to load event", Code: http.StatusInternalServerError}
	}

	if err := h.view.Render(w, r, "event.html", map[string]interface{}{"Event": listing}); err != nil {
		return renderFailed(err, "event")
	}
	return nil
}

// contactHandler sends the contact form and returns the visitor to the Contact panel.
func (h *SiteHandler) contactHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	ctx := r.Context()
	layout := h.layout()
	if !layout.Has(navigation.ScreenContact) {
		return notFound(errors.New("contact is not active"))
	}
	msg := contact.Message{
		Name:         r.FormValue("name"),
		Email:        r.FormValue("email"),
		Message:      r.FormValue("message"),
		CaptchaToken: r.FormValue("g-recaptcha-response"),
	}

	err := h.contact.Send(ctx, msg, remoteIP(r))
	var verr *service.ValidationError
	switch {
	case err == nil:
		session.SetFlash(ctx, h.sessions, session.FlashSuccess, contactSent)
	case errors.As(err, &verr):
		session.SetFlash(ctx, h.sessions, session.FlashError, "Please fix the following: "+verr.Error())
	case errors.Is(err, contact.ErrCaptchaRequired), errors.Is(err, contact.ErrCaptchaRejected):
		session.SetFlash(ctx, h.sessions, session.FlashError, err.Error())
	default:
		h.log.Error(err, "Failed to send contact message")
		session.SetFlash(ctx, h.sessions, session.FlashError, contactFailed)
	}

	nav := session.Navigation(ctx, h.sessions)
	nav.Navigate(layout, navigation.ScreenContact)
	session.SaveNavigation(ctx, h.sessions, nav)

	http.Redirect(w, r, "/", http.StatusSeeOther)
	return nil
}

func remoteIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
