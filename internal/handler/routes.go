package handler

import (
	"io/fs"
	"net/http"
	"workshop-site/internal/middleware"
	"workshop-site/internal/session"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// Router collects everything NewRouter wires together.
type Router struct {
	Site  *SiteHandler
	Auth  *AuthHandler
	Admin *AdminHandler
	Seo   *SeoHandler

	Sessions session.Manager
	Authz    func(http.Handler) http.Handler
	Errors   func(middleware.AppHandler) http.Handler
	CSRF     func(http.Handler) http.Handler // optional

	Static      fs.FS
	UploadsDir  string // served at UploadsPath when set
	UploadsPath string
}

// NewRouter creates and configures a new chi router.
func NewRouter(cfg Router) *chi.Mux {
	r := chi.NewRouter()

	// A good base middleware stack
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)

	if cfg.Static != nil {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(cfg.Static))))
	}
	if cfg.UploadsDir != "" {
		prefix := cfg.UploadsPath + "/"
		r.Handle(prefix+"*", http.StripPrefix(prefix, http.FileServer(http.Dir(cfg.UploadsDir))))
	}
	r.Get("/robots.txt", cfg.Seo.robotsHandler)
	r.Get("/sitemap.xml", cfg.Seo.sitemapHandler)

	r.Group(func(r chi.Router) {
		r.Use(cfg.Sessions.LoadAndSave)
		r.Use(middleware.Device)
		if cfg.CSRF != nil {
			r.Use(cfg.CSRF)
		}
		r.Use(cfg.Authz)

		r.Method(http.MethodGet, "/", cfg.Errors(cfg.Site.homeHandler))
		r.Method(http.MethodPost, "/nav/{screen}", cfg.Errors(cfg.Site.navHandler))
		r.Method(http.MethodPost, "/drawer/{action}", cfg.Errors(cfg.Site.drawerHandler))
		r.Method(http.MethodGet, "/blog/{id}", cfg.Errors(cfg.Site.postHandler))
		r.Method(http.MethodGet, "/events/{id}", cfg.Errors(cfg.Site.eventHandler))
		r.Method(http.MethodPost, "/contact", cfg.Errors(cfg.Site.contactHandler))

		r.Method(http.MethodGet, "/login", cfg.Errors(cfg.Auth.loginFormHandler))
		r.Post("/login", cfg.Auth.handleLogin)
		r.Post("/logout", cfg.Auth.handleLogout)
		r.Get("/auth/login", cfg.Auth.handleSSOLogin)
		r.Get("/auth/callback", cfg.Auth.handleCallback)

		r.Method(http.MethodGet, "/admin", cfg.Errors(cfg.Admin.dashboardHandler))
		r.Method(http.MethodGet, "/admin/{section}", cfg.Errors(cfg.Admin.dashboardHandler))
		cfg.Admin.routes(r)
	})

	return r
}
