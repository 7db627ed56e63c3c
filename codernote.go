// Package codernote is a small blog engine built with Go, Echo, and templ
// whose look and behavior are driven by an immutable theme configuration
// (see package siteconfig).
//
// The theme's templ components are supplied through ViewFuncs; the views
// package provides the default theme. codernote handles routing,
// pagination, storage, feeds, and the admin dashboard.
package codernote

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/eringen/codernote/siteconfig"
)

// ViewFuncs holds the templ components the App renders. Every field must
// be set; views.New builds the default theme.
type ViewFuncs struct {
	Home           func(page HomePage) templ.Component
	BlogList       func(page Page) templ.Component
	Post           func(post BlogPost, similar []BlogPost) templ.Component
	TermIndex      func(kind TaxonomyKind, terms []Term) templ.Component
	TermPosts      func(term Term, posts []BlogPost) templ.Component
	AdminLogin     func(showError bool, csrfToken string) templ.Component
	AdminDashboard func(posts []BlogPost, message string, csrfToken string) templ.Component
	AdminForm      func(post BlogPost, csrfToken string) templ.Component
	NotFound       func() templ.Component
	ServerError    func() templ.Component
}

// App is the central codernote application. It wires together the store,
// cache, handlers, middleware, and theme views.
type App struct {
	Config Config
	Echo   *echo.Echo
	Store  *Store
	Cache  *PostCache
	Views  ViewFuncs
	Logger zerolog.Logger

	site         siteconfig.SiteConfig
	loginLimiter *LoginLimiter
	metrics      *prometheus.Registry
	customRoutes []func(*App)
	staticDir    string
}

// New creates an App. site is copied; the App never changes it.
func New(cfg Config, site siteconfig.SiteConfig, views ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	a := &App{
		Config:    cfg,
		site:      site,
		Echo:      e,
		Views:     views,
		Logger:    zerolog.Nop(),
		metrics:   prometheus.NewRegistry(),
		staticDir: "public",
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Site returns a copy of the site configuration the App was built with.
func (a *App) Site() siteconfig.SiteConfig {
	return a.site
}

// Init validates the configuration, opens the store, and registers
// middleware and routes. After Init the App can serve requests through
// a.Echo without listening on a socket.
func (a *App) Init() error {
	if a.Config.AdminPassword == "" {
		return fmt.Errorf("codernote: AdminPassword is required")
	}
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("codernote: SessionSecret is required")
	}
	if err := siteconfig.Validate(a.site); err != nil {
		return fmt.Errorf("codernote: %w", err)
	}

	store, err := NewStore(a.Config.DatabasePath)
	if err != nil {
		return fmt.Errorf("codernote: init store: %w", err)
	}
	a.Store = store
	a.Cache = NewPostCache(a.Store, a.Config.PostCacheTTL, a.site.DefaultAuthorName)
	a.loginLimiter = NewLoginLimiter(5, time.Minute)

	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}
	return nil
}

// Run initializes the App and serves until ctx is cancelled, then shuts
// the server down gracefully.
func (a *App) Run(ctx context.Context) error {
	if err := a.Init(); err != nil {
		return err
	}
	defer a.Close()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.Logger.Info().
			Str("addr", a.Config.Addr).
			Str("site", a.site.SiteTitle).
			Msg("server listening")
		if err := a.Echo.Start(a.Config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Config.ShutdownTimeout)
		defer cancel()
		a.Logger.Info().Msg("shutting down")
		return a.Echo.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Framework stylesheet, then the user's static assets.
	e.GET("/public/theme.css", a.handleThemeCSS)
	e.Static("/public", a.staticDir)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/metrics", a.metricsHandler())

	// Public routes
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)
	e.GET("/", a.handleHome)
	e.GET("/blog/", a.handleBlog)
	e.GET("/blog/page/:page/", a.handleBlog)
	e.GET("/blog/:slug/", a.handlePost)
	for _, kind := range TaxonomyKinds {
		e.GET(kind.Path(), a.handleTermIndex(kind))
		e.GET(kind.Path()+":slug/", a.handleTermPosts(kind))
	}

	// Admin routes
	e.GET("/admin/", a.handleAdmin)
	e.POST("/admin/login/", a.handleAdminLogin)
	e.POST("/admin/logout/", handleAdminLogout)
	e.GET("/admin/new/", a.handleAdminNew)
	e.GET("/admin/post/:slug/", a.handleAdminPost)
	e.POST("/admin/save/", a.handleAdminSave)
	e.POST("/admin/post/:slug/delete/", a.handleAdminDelete)
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}
