//go:build unit

package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"workshop-site/internal/contact"
	"workshop-site/internal/data"
	"workshop-site/internal/logger"
	"workshop-site/internal/middleware"
	"workshop-site/internal/navigation"
	"workshop-site/internal/service"
	"workshop-site/internal/session"
	"workshop-site/internal/state"

	"github.com/go-chi/chi/v5"
)

type siteFixture struct {
	store    *state.Store
	repos    testRepos
	sessions *mockSessionManager
	contact  *mockContactSender
	uploads  *countingUploader
	site     *SiteHandler
	admin    *AdminHandler
	router   chi.Router
}

// newSiteFixture builds the site and admin handlers over in-memory collections.
// Gallery, Blog and Contact are active; Events is not.
func newSiteFixture(t *testing.T) *siteFixture {
	t.Helper()
	log := logger.Nop()
	tr, repos := newTestRepos()
	tr.pages.docs = []*data.PageDescriptor{
		{ID: "p1", Name: "Gallery", Active: true, Position: 1},
		{ID: "p2", Name: "Events", Active: false, Position: 2},
		{ID: "p3", Name: "Blog", Active: true, Position: 3},
		{ID: "p4", Name: "Contact", Active: true, Position: 4},
	}
	store := state.NewStore()
	store.SetPages(tr.pages.docs)

	sender := &mockContactSender{}
	uploads := &countingUploader{}
	svc := SiteServices{
		General: service.NewGeneralService(repos, store, uploads, log),
		Blog:    service.NewBlogService(repos.BlogPosts, uploads, log),
		Events:  service.NewEventService(repos.Events, uploads, log),
		Gallery: service.NewGalleryEditor(repos.Gallery, uploads, log),
		Contact: sender,
	}
	sm := newMockSessionManager()
	f := &siteFixture{
		store:    store,
		repos:    tr,
		sessions: sm,
		contact:  sender,
		uploads:  uploads,
		site:     NewSiteHandler(store, svc, "", sm, nil, log),
		admin:    NewAdminHandler(store, svc, sm, nil, log),
	}

	errs := middleware.Error(log, &mockRenderer{})
	r := chi.NewRouter()
	r.Method(http.MethodPost, "/nav/{screen}", errs(f.site.navHandler))
	r.Method(http.MethodPost, "/drawer/{action}", errs(f.site.drawerHandler))
	r.Method(http.MethodGet, "/blog/{id}", errs(f.site.postHandler))
	r.Method(http.MethodGet, "/events/{id}", errs(f.site.eventHandler))
	r.Method(http.MethodPost, "/contact", errs(f.site.contactHandler))
	r.Method(http.MethodGet, "/admin/{section}", errs(f.admin.dashboardHandler))
	f.admin.routes(r)
	f.router = r
	return f
}

func (f *siteFixture) do(method, target string, form url.Values) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, req)
	return rr
}

func (f *siteFixture) nav() navigation.State {
	return session.Navigation(context.Background(), f.sessions)
}

func TestNavHandler(t *testing.T) {
	t.Run("scrolls to an active panel", func(t *testing.T) {
		f := newSiteFixture(t)
		rr := f.do(http.MethodPost, "/nav/blog", nil)

		if rr.Code != http.StatusSeeOther {
			t.Fatalf("expected status %d, got %d", http.StatusSeeOther, rr.Code)
		}
		nav := f.nav()
		if nav.ActiveScreen != navigation.ScreenBlog || nav.ScrollOffset != 200 {
			t.Errorf("expected Blog at offset 200, got %v at %d", nav.ActiveScreen, nav.ScrollOffset)
		}
	})

	t.Run("contact sits in the last slot", func(t *testing.T) {
		f := newSiteFixture(t)
		f.do(http.MethodPost, "/nav/contact", nil)

		if nav := f.nav(); nav.ScrollOffset != 300 {
			t.Errorf("expected offset 300 for Contact, got %d", nav.ScrollOffset)
		}
	})

	t.Run("inactive panel is not found", func(t *testing.T) {
		f := newSiteFixture(t)
		rr := f.do(http.MethodPost, "/nav/events", nil)

		if rr.Code != http.StatusNotFound {
			t.Errorf("expected status %d, got %d", http.StatusNotFound, rr.Code)
		}
		if nav := f.nav(); nav.ActiveScreen != navigation.ScreenHome || nav.ScrollOffset != 0 {
			t.Errorf("expected state to stay on Home, got %v at %d", nav.ActiveScreen, nav.ScrollOffset)
		}
	})
}

func TestDrawerHandler(t *testing.T) {
	f := newSiteFixture(t)

	f.do(http.MethodPost, "/drawer/open", nil)
	if !f.nav().Drawer.Open() {
		t.Fatal("expected drawer to be open")
	}

	// A destination tap in the open drawer navigates and closes it.
	f.do(http.MethodPost, "/nav/gallery", nil)
	nav := f.nav()
	if nav.Drawer.Open() {
		t.Error("expected drawer to close after choosing a destination")
	}
	if nav.ActiveScreen != navigation.ScreenGallery || nav.ScrollOffset != 100 {
		t.Errorf("expected Gallery at offset 100, got %v at %d", nav.ActiveScreen, nav.ScrollOffset)
	}

	f.do(http.MethodPost, "/drawer/open", nil)
	f.do(http.MethodPost, "/drawer/outside", nil)
	if f.nav().Drawer.Open() {
		t.Error("expected an outside tap to close the drawer")
	}

	if rr := f.do(http.MethodPost, "/drawer/shake", nil); rr.Code != http.StatusNotFound {
		t.Errorf("expected unknown drawer action to be not found, got %d", rr.Code)
	}
}

func TestContactHandler(t *testing.T) {
	form := url.Values{
		"name":                 {"Ada"},
		"email":                {"ada@example.com"},
		"message":              {"Hello"},
		"g-recaptcha-response": {"token"},
	}

	testCases := []struct {
		name        string
		errToReturn error
		wantKind    string
		wantMessage string
	}{
		{name: "sent", wantKind: session.FlashSuccess, wantMessage: contactSent},
		{
			name:        "delivery failure",
			errToReturn: &service.PersistenceError{Op: "send", Collection: "Contact", Err: errors.New("smtp down")},
			wantKind:    session.FlashError,
			wantMessage: contactFailed,
		},
		{
			name:        "captcha missing",
			errToReturn: contact.ErrCaptchaRequired,
			wantKind:    session.FlashError,
			wantMessage: contact.ErrCaptchaRequired.Error(),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newSiteFixture(t)
			f.contact.errToReturn = tc.errToReturn

			rr := f.do(http.MethodPost, "/contact", form)

			if rr.Code != http.StatusSeeOther {
				t.Fatalf("expected status %d, got %d", http.StatusSeeOther, rr.Code)
			}
			flash := f.sessions.flash()
			if flash == nil || flash.Kind != tc.wantKind || flash.Message != tc.wantMessage {
				t.Errorf("expected %s flash %q, got %+v", tc.wantKind, tc.wantMessage, flash)
			}
			if nav := f.nav(); nav.ActiveScreen != navigation.ScreenContact {
				t.Errorf("expected visitor to return to Contact, got %v", nav.ActiveScreen)
			}
		})
	}

	t.Run("passes the form through", func(t *testing.T) {
		f := newSiteFixture(t)
		f.do(http.MethodPost, "/contact", form)

		if len(f.contact.sent) != 1 {
			t.Fatalf("expected one message sent, got %d", len(f.contact.sent))
		}
		if got := f.contact.sent[0]; got.Email != "ada@example.com" || got.CaptchaToken != "token" {
			t.Errorf("unexpected message: %+v", got)
		}
	})
}

func TestDetailHandlers_InactivePage(t *testing.T) {
	f := newSiteFixture(t)
	f.repos.events.docs = []*data.Event{{ID: "e1", Name: "Wheel throwing"}}

	if rr := f.do(http.MethodGet, "/events/e1", nil); rr.Code != http.StatusNotFound {
		t.Errorf("expected events detail to be not found while Events is inactive, got %d", rr.Code)
	}
	if rr := f.do(http.MethodGet, "/blog/missing", nil); rr.Code != http.StatusNotFound {
		t.Errorf("expected unknown post to be not found, got %d", rr.Code)
	}
}

func TestContactHandler_Inactive(t *testing.T) {
	f := newSiteFixture(t)
	f.store.SetPages([]*data.PageDescriptor{
		{ID: "p1", Name: "Gallery", Active: true, Position: 1},
		{ID: "p4", Name: "Contact", Active: false, Position: 4},
	})

	rr := f.do(http.MethodPost, "/contact", url.Values{
		"name": {"Ada"}, "email": {"ada@example.com"}, "message": {"Hello"}, "g-recaptcha-response": {"token"},
	})

	if rr.Code != http.StatusNotFound {
		t.Errorf("expected status %d while Contact is inactive, got %d", http.StatusNotFound, rr.Code)
	}
	if len(f.contact.sent) != 0 {
		t.Errorf("expected no message sent, got %d", len(f.contact.sent))
	}
}
