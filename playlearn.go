// Package playlearn serves the Little Wonders preschool website with Echo.
// Pages are rendered on the server from static content tables; the little
// UI state the site has (gallery filter, lightbox photo, mobile menu) lives
// in the query string, and htmx swaps in fragments where it is available.
//
// Page markup is provided through the ViewFuncs struct, so a deployment can
// replace any page while playlearn keeps the handlers, middleware and content
// loading.
package playlearn

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"golang.org/x/sync/errgroup"

	"github.com/littlewonders/playlearn/content"
	"github.com/littlewonders/playlearn/views"
)

// ViewFuncs holds the components the handlers call when rendering pages.
// This is the inversion-of-control mechanism that lets a deployment own
// any template.
type ViewFuncs struct {
	Home           func(f views.Frame, g views.GalleryView) templ.Component
	GallerySection func(g views.GalleryView) templ.Component
	Programs       func(f views.Frame) templ.Component
	About          func(f views.Frame) templ.Component
	Contact        func(f views.Frame, branches []views.BranchView) templ.Component
	Lightbox       func(lb views.LightboxView) templ.Component
	NotFound       func(f views.Frame) templ.Component
	ServerError    func(f views.Frame) templ.Component
}

// DefaultViews returns the built-in pages.
func DefaultViews() ViewFuncs {
	return ViewFuncs{
		Home: func(f views.Frame, g views.GalleryView) templ.Component {
			return views.Component(views.Home(f, g))
		},
		GallerySection: func(g views.GalleryView) templ.Component {
			return views.Component(views.GallerySection(g))
		},
		Programs: func(f views.Frame) templ.Component {
			return views.Component(views.Programs(f))
		},
		About: func(f views.Frame) templ.Component {
			return views.Component(views.About(f))
		},
		Contact: func(f views.Frame, branches []views.BranchView) templ.Component {
			return views.Component(views.Contact(f, branches))
		},
		Lightbox: func(lb views.LightboxView) templ.Component {
			return views.Component(views.Lightbox(lb))
		},
		NotFound: func(f views.Frame) templ.Component {
			return views.Component(views.NotFound(f))
		},
		ServerError: func(f views.Frame) templ.Component {
			return views.Component(views.ServerError(f))
		},
	}
}

func (v ViewFuncs) merge(base ViewFuncs) ViewFuncs {
	if v.Home == nil {
		v.Home = base.Home
	}
	if v.GallerySection == nil {
		v.GallerySection = base.GallerySection
	}
	if v.Programs == nil {
		v.Programs = base.Programs
	}
	if v.About == nil {
		v.About = base.About
	}
	if v.Contact == nil {
		v.Contact = base.Contact
	}
	if v.Lightbox == nil {
		v.Lightbox = base.Lightbox
	}
	if v.NotFound == nil {
		v.NotFound = base.NotFound
	}
	if v.ServerError == nil {
		v.ServerError = base.ServerError
	}
	return v
}

// App is the central application. It wires together the content store,
// caches, handlers, middleware and page templates.
type App struct {
	Config  SiteConfig
	Echo    *echo.Echo
	Content *content.Store
	Views   ViewFuncs

	downloads    *RequestLimiter
	assets       *AssetCache
	customRoutes []func(*App)
}

// New creates an App with the given configuration. The content tables are
// loaded, and middleware and routes registered, before New returns.
func New(cfg SiteConfig, opts ...Option) (*App, error) {
	cfg.setDefaults()

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
		Views:  DefaultViews(),
		assets: NewAssetCache(),
	}

	for _, opt := range opts {
		opt(a)
	}

	lvl, err := parseLogLevel(a.Config.LogLevel)
	if err != nil {
		return nil, err
	}
	a.Echo.Logger.SetLevel(lvl)
	log.SetLevel(lvl)

	if a.Content == nil {
		store, err := content.NewStore(a.Config.ContentPath)
		if err != nil {
			return nil, fmt.Errorf("playlearn: load content: %w", err)
		}
		a.Content = store
	}
	next := a.Content.OnReload
	a.Content.OnReload = func(v uint64) {
		a.assets.Invalidate()
		if next != nil {
			next(v)
		}
	}

	a.downloads = NewRequestLimiter(a.Config.ProspectusPerMinute, time.Minute)

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}
	return a, nil
}

// Start serves HTTP until ctx is cancelled, then shuts the server down
// gracefully. When content watching is enabled the override file is reloaded
// on change for as long as the server runs.
func (a *App) Start(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := a.Echo.Start(a.Config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("playlearn: serve: %w", err)
		}
		return nil
	})

	if a.Config.WatchContent && a.Config.ContentPath != "" {
		g.Go(func() error {
			return a.Content.Watch(ctx)
		})
	}

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Config.ShutdownTimeout)
		defer cancel()
		if err := a.Echo.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("playlearn: shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Enhancement script shipped with the binary.
	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	embeddedHandler := http.FileServer(http.FS(embeddedFS))
	e.GET("/public/site.js", echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))

	// Photos, logos and the stylesheet keep their original paths.
	e.Static("/", a.Config.StaticDir)

	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/healthz", a.handleHealthz)

	e.GET("/", a.handleHome)
	e.GET("/our-program/", a.handlePrograms)
	e.GET("/about-us/", a.handleAbout)
	e.GET("/contact/", a.handleContact)
	e.GET("/contact/lightbox/", a.handleLightbox)

	limited := a.downloads.Middleware()
	e.GET("/prospectus.pdf", a.handleProspectus, limited)
	e.GET("/qr/admission.png", a.handleAdmissionQR)
	e.GET("/branches/:slug/qr.png", a.handleBranchQR, limited)
}

// Close stops background work. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.downloads != nil {
		a.downloads.Close()
	}
	return nil
}
