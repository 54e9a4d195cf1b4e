package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"
	"workshop-site/internal/auth"
	"workshop-site/internal/cache"
	"workshop-site/internal/calendar"
	"workshop-site/internal/contact"
	"workshop-site/internal/handler"
	"workshop-site/internal/loader"
	"workshop-site/internal/middleware"
	"workshop-site/internal/service"
	"workshop-site/internal/session"
	"workshop-site/internal/state"
	"workshop-site/internal/storage"
	"workshop-site/internal/view"
	"workshop-site/web"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the public site and the operator dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Database and Content Store ---
	a, err := openApp(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer a.Close()

	// --- Session Management Setup ---
	sessionManager := session.New(cfg.Session, cfg.Server.TLS.Enabled, a.db, cfg.DB.Driver)

	// --- Authentication and Authorization Setup ---
	log.Info("Initializing authentication and authorization...")
	authenticator, err := auth.NewAuthenticator(ctx, cfg.OIDC)
	if err != nil {
		return err
	}
	enforcer, err := auth.NewEnforcer(cfg.DB.Driver, cfg.DB.DSN)
	if err != nil {
		return err
	}
	auth.SeedDefaultPolicies(enforcer, log)
	log.Info("Auth components initialized and policies seeded.")

	// --- Cache and Blob Storage ---
	log.Info("Initializing SQLite cache...")
	c, err := cache.New(cfg.Cache)
	if err != nil {
		return err
	}
	defer c.Close()

	uploader, err := storage.New(ctx, cfg.Storage, a.firebase)
	if err != nil {
		return err
	}

	// --- Site State ---
	store := state.NewStore()
	contentLoader := loader.New(a.repos, store, log)
	if err := contentLoader.Load(ctx); err != nil {
		log.Warn("Site content loaded with errors; affected sections keep their defaults.")
	}
	go contentLoader.Run(ctx, cfg.Content.RefreshInterval)

	// --- Services ---
	general := service.NewGeneralService(a.repos, store, uploader, log)
	services := handler.SiteServices{
		General: general,
		Blog:    service.NewBlogService(a.repos.BlogPosts, uploader, log),
		Events:  service.NewEventService(a.repos.Events, uploader, log),
		Gallery: service.NewGalleryEditor(a.repos.Gallery, uploader, log),
		Contact: newContactService(),
	}
	if cal, err := calendar.New(ctx, cfg.Calendar, c, cfg.Cache.CalendarTTL, log); err != nil {
		log.Error(err, "Calendar panel disabled")
	} else {
		services.Calendar = cal
	}

	// --- View Template Initialization ---
	viewService, err := view.New(web.TemplateFS, store)
	if err != nil {
		return fmt.Errorf("failed to initialize view templates: %w", err)
	}

	// --- Handlers and Router ---
	var sso handler.Identifier
	if authenticator != nil {
		sso = authenticator
	}
	routes := handler.Router{
		Site:     handler.NewSiteHandler(store, services, cfg.Contact.RecaptchaSite, sessionManager, viewService, log),
		Auth:     handler.NewAuthHandler(service.NewAuthService(a.repos.Operators), sso, sessionManager, viewService, log),
		Admin:    handler.NewAdminHandler(store, services, sessionManager, viewService, log),
		Seo:      handler.NewSeoHandler(cfg.Server.BaseURL, store, services.Blog, log),
		Sessions: sessionManager,
		Authz:    middleware.Authorizer(enforcer, sessionManager, log),
		Errors:   middleware.Error(log, viewService),
		Static:   web.StaticFS,
	}
	if cfg.Server.CSRFKey != "" {
		routes.CSRF = middleware.CSRF([]byte(cfg.Server.CSRFKey), cfg.Server.TLS.Enabled)
	}
	if local, ok := uploader.(*storage.Local); ok {
		routes.UploadsDir = local.Dir()
		routes.UploadsPath = cfg.Storage.PublicPath
	}

	// --- Server Initialization and Graceful Shutdown ---
	server := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:           handler.NewRouter(routes),
		ReadHeaderTimeout: 10 * time.Second,
	}
	serverErr := make(chan error, 1)
	go func() {
		if cfg.Server.TLS.Enabled {
			log.Info(fmt.Sprintf("Starting HTTPS server on %s", server.Addr))
			serverErr <- server.ListenAndServeTLS(cfg.Server.TLS.CertFile, cfg.Server.TLS.KeyFile)
		} else {
			log.Info(fmt.Sprintf("Starting HTTP server on %s", server.Addr))
			serverErr <- server.ListenAndServe()
		}
	}()

	select {
	case err := <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("could not start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Warn("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	log.Info("Server exiting")
	return nil
}

func newContactService() *contact.Service {
	var verifier contact.Verifier
	if cfg.Contact.RecaptchaSecret != "" {
		verifier = contact.NewRecaptcha(cfg.Contact.RecaptchaSecret, cfg.Contact.VerifyURL)
	}
	return contact.NewService(cfg.Contact, contact.NewDialer(cfg.Contact), verifier, log)
}
