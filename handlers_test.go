package playlearn

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/littlewonders/playlearn/views"
)

func newTestApp(t *testing.T, opts ...Option) *App {
	t.Helper()
	cfg := SiteConfig{
		URL:       "https://littlewonders.example",
		StaticDir: t.TempDir(),
		LogLevel:  "error",
	}
	a, err := New(cfg, opts...)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	t.Cleanup(func() { a.Close() })
	return a
}

func get(t *testing.T, a *App, target string, htmx bool) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	rec := httptest.NewRecorder()
	a.Echo.ServeHTTP(rec, req)
	return rec
}

func TestHomeFilter(t *testing.T) {
	a := newTestApp(t)
	rec := get(t, a, "/?filter=learn", false)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.HasPrefix(body, "<!doctype html>") {
		t.Error("full page expected")
	}
	for n := 1; n <= 28; n++ {
		has := strings.Contains(body, fmt.Sprintf("/ALBUM/image (%d).webp", n))
		want := n >= 11 && n <= 20
		if has != want {
			t.Errorf("image %d shown = %v, want %v", n, has, want)
		}
	}
	if got := rec.Header().Get("Cache-Control"); got != "public, max-age=3600" {
		t.Errorf("Cache-Control = %q", got)
	}
}

func TestHomeUnknownFilterShowsAll(t *testing.T) {
	a := newTestApp(t)
	body := get(t, a, "/?filter=naps", false).Body.String()
	for _, n := range []int{1, 15, 28} {
		if !strings.Contains(body, fmt.Sprintf("/ALBUM/image (%d).webp", n)) {
			t.Errorf("image %d missing", n)
		}
	}
}

func TestHomeGalleryPartial(t *testing.T) {
	a := newTestApp(t)
	rec := get(t, a, "/?filter=events&partial=gallery", true)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if strings.Contains(body, "<!doctype html>") || strings.Contains(body, "<nav") {
		t.Error("partial should not include the layout")
	}
	if !strings.Contains(body, `id="gallery"`) {
		t.Error("partial is missing the gallery section")
	}
	if strings.Contains(body, "/ALBUM/image (1).webp") || !strings.Contains(body, "/ALBUM/image (21).webp") {
		t.Error("partial ignores the filter")
	}
	if got := rec.Header().Get("Cache-Control"); got != "no-store" {
		t.Errorf("Cache-Control = %q, want no-store", got)
	}
	if got := rec.Header().Get("Vary"); !strings.Contains(got, "HX-Request") {
		t.Errorf("Vary = %q, want HX-Request", got)
	}
}

func TestPartialWithoutHTMXRendersPage(t *testing.T) {
	a := newTestApp(t)
	body := get(t, a, "/?filter=play&partial=gallery", false).Body.String()
	if !strings.HasPrefix(body, "<!doctype html>") {
		t.Error("plain request for the partial URL should get the full page")
	}
}

func TestMenuOpen(t *testing.T) {
	a := newTestApp(t)

	closed := get(t, a, "/our-program/", false).Body.String()
	if strings.Contains(closed, `id="menu-overlay"`) {
		t.Error("overlay rendered while closed")
	}
	if !strings.Contains(closed, `href="/our-program/?menu=open"`) {
		t.Error("toggle does not open the menu")
	}

	open := get(t, a, "/our-program/?menu=open", false).Body.String()
	if !strings.Contains(open, `id="menu-overlay"`) {
		t.Fatal("overlay missing while open")
	}
	if strings.Contains(open, "menu=open") {
		t.Error("links on an open menu must not keep it open")
	}
}

func TestPages(t *testing.T) {
	a := newTestApp(t)
	tests := []struct {
		path  string
		title string
	}{
		{"/our-program/", "<title>Our Program | Little Wonders</title>"},
		{"/about-us/", "<title>About Us | Little Wonders</title>"},
		{"/contact/", "<title>Contact | Little Wonders</title>"},
	}
	for _, tt := range tests {
		rec := get(t, a, tt.path, false)
		if rec.Code != http.StatusOK {
			t.Errorf("%s: status = %d", tt.path, rec.Code)
			continue
		}
		if !strings.Contains(rec.Body.String(), tt.title) {
			t.Errorf("%s: missing %s", tt.path, tt.title)
		}
		if !strings.Contains(rec.Body.String(), `aria-current="page"`) {
			t.Errorf("%s: no active nav link", tt.path)
		}
	}
}

func TestTrailingSlashRedirect(t *testing.T) {
	a := newTestApp(t)
	rec := get(t, a, "/about-us", false)
	if rec.Code != http.StatusMovedPermanently {
		t.Fatalf("status = %d, want 301", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/about-us/" {
		t.Errorf("Location = %q", loc)
	}
}

func TestContactLightbox(t *testing.T) {
	a := newTestApp(t)
	tests := []struct {
		name   string
		target string
		open   bool
	}{
		{"selected", "/contact/?branch=gulshan&photo=3", true},
		{"out of range", "/contact/?branch=gulshan&photo=7", false},
		{"zero", "/contact/?branch=gulshan&photo=0", false},
		{"garbage", "/contact/?branch=gulshan&photo=x", false},
		{"unknown branch", "/contact/?branch=banani&photo=1", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, a, tt.target, false)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", rec.Code)
			}
			body := rec.Body.String()
			if got := strings.Contains(body, "data-lightbox"); got != tt.open {
				t.Fatalf("lightbox open = %v, want %v", got, tt.open)
			}
			if !strings.Contains(body, `<div id="lightbox-uttara"></div>`) {
				t.Error("uttara lightbox should stay closed")
			}
			if tt.open && !strings.Contains(body, `src="/ALBUM/Gulshan/Gulshan (3).jpeg" alt="Gallery Fullscreen"`) {
				t.Error("lightbox does not show image 3")
			}
		})
	}
}

func TestLightboxFragment(t *testing.T) {
	a := newTestApp(t)

	rec := get(t, a, "/contact/lightbox/?branch=uttara&photo=2", true)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.HasPrefix(body, `<div id="lightbox-uttara"`) {
		t.Errorf("fragment should be the lightbox slot, got %.60q", body)
	}
	if !strings.Contains(body, "/ALBUM/Uttara/Uttara (2).jpeg") {
		t.Error("fragment missing selected image")
	}
	if got := rec.Header().Get("Cache-Control"); got != "no-store" {
		t.Errorf("Cache-Control = %q, want no-store", got)
	}

	closed := get(t, a, "/contact/lightbox/?branch=uttara", true).Body.String()
	if closed != `<div id="lightbox-uttara"></div>` {
		t.Errorf("closed fragment = %q", closed)
	}

	if rec := get(t, a, "/contact/lightbox/?branch=banani", true); rec.Code != http.StatusNotFound {
		t.Errorf("unknown branch status = %d, want 404", rec.Code)
	}
}

func TestProspectus(t *testing.T) {
	a := newTestApp(t)
	rec := get(t, a, "/prospectus.pdf", false)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("Content-Type = %q", ct)
	}
	if !strings.HasPrefix(rec.Body.String(), "%PDF") {
		t.Error("body is not a PDF")
	}
	if got := rec.Header().Get("Cache-Control"); got != "public, max-age=86400" {
		t.Errorf("Cache-Control = %q", got)
	}
}

func TestQRCodes(t *testing.T) {
	a := newTestApp(t)
	for _, target := range []string{"/qr/admission.png", "/branches/gulshan/qr.png"} {
		rec := get(t, a, target, false)
		if rec.Code != http.StatusOK {
			t.Errorf("%s: status = %d", target, rec.Code)
			continue
		}
		if !strings.HasPrefix(rec.Body.String(), "\x89PNG") {
			t.Errorf("%s: not a PNG", target)
		}
	}
	if rec := get(t, a, "/branches/banani/qr.png", false); rec.Code != http.StatusNotFound {
		t.Errorf("unknown branch status = %d, want 404", rec.Code)
	}
}

func TestDownloadsRateLimited(t *testing.T) {
	a := newTestApp(t, func(a *App) { a.Config.ProspectusPerMinute = 2 })
	for i, want := range []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests} {
		rec := get(t, a, "/branches/uttara/qr.png", false)
		if rec.Code != want {
			t.Fatalf("request %d: status = %d, want %d", i, rec.Code, want)
		}
		if want == http.StatusTooManyRequests && rec.Header().Get("Retry-After") == "" {
			t.Error("missing Retry-After")
		}
	}
}

func TestSitemapAndRobots(t *testing.T) {
	a := newTestApp(t)

	sitemap := get(t, a, "/sitemap.xml", false).Body.String()
	for _, loc := range []string{
		"<loc>https://littlewonders.example</loc>",
		"<loc>https://littlewonders.example/our-program/</loc>",
		"<loc>https://littlewonders.example/about-us/</loc>",
		"<loc>https://littlewonders.example/contact/</loc>",
	} {
		if !strings.Contains(sitemap, loc) {
			t.Errorf("sitemap missing %s", loc)
		}
	}

	robots := get(t, a, "/robots.txt", false).Body.String()
	if !strings.Contains(robots, "Sitemap: https://littlewonders.example/sitemap.xml\n") {
		t.Errorf("robots.txt = %q", robots)
	}
}

func TestHealthz(t *testing.T) {
	a := newTestApp(t)
	rec := get(t, a, "/healthz", false)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"content_version":1`) {
		t.Errorf("body = %s", rec.Body.String())
	}
	if got := rec.Header().Get("Cache-Control"); got != "no-store" {
		t.Errorf("Cache-Control = %q", got)
	}
}

func TestNotFoundPage(t *testing.T) {
	a := newTestApp(t)
	rec := get(t, a, "/nope/", false)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "This page wandered off") {
		t.Error("404 page not rendered")
	}
}

func TestSiteScript(t *testing.T) {
	a := newTestApp(t)
	rec := get(t, a, "/public/site.js", false)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Escape") {
		t.Error("site.js missing Escape handling")
	}
	if got := rec.Header().Get("Cache-Control"); !strings.Contains(got, "immutable") {
		t.Errorf("Cache-Control = %q", got)
	}
}

func TestWithViewsOverridesOnePage(t *testing.T) {
	a := newTestApp(t, WithViews(ViewFuncs{
		About: func(f views.Frame) templ.Component {
			return templ.Raw("custom about")
		},
	}))
	if body := get(t, a, "/about-us/", false).Body.String(); body != "custom about" {
		t.Errorf("about = %q", body)
	}
	if body := get(t, a, "/our-program/", false).Body.String(); !strings.Contains(body, "<!doctype html>") {
		t.Error("other pages should keep the defaults")
	}
}

func TestWithCustomRoutes(t *testing.T) {
	a := newTestApp(t, WithCustomRoutes(func(a *App) {
		a.Echo.GET("/ping/", func(c echo.Context) error { return c.String(http.StatusOK, "pong") })
	}))
	if body := get(t, a, "/ping/", false).Body.String(); body != "pong" {
		t.Errorf("/ping/ = %q", body)
	}
}

func TestContentReloadDropsAssets(t *testing.T) {
	a := newTestApp(t)
	if rec := get(t, a, "/qr/admission.png", false); rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if _, ok := a.assets.lookup(1, "qr/admission"); !ok {
		t.Fatal("admission QR was not cached")
	}
	if err := a.Content.Reload(); err != nil {
		t.Fatalf("Reload failed: %v", err)
	}
	if _, ok := a.assets.lookup(1, "qr/admission"); ok {
		t.Error("reload left assets from the old tables cached")
	}
	if rec := get(t, a, "/healthz", false); !strings.Contains(rec.Body.String(), `"content_version":2`) {
		t.Errorf("healthz = %s", rec.Body.String())
	}
}

func TestMenuKeepsGalleryFilter(t *testing.T) {
	a := newTestApp(t)

	closed := get(t, a, "/?filter=learn", false).Body.String()
	if !strings.Contains(closed, `href="/?filter=learn&amp;menu=open"`) {
		t.Error("menu toggle drops the gallery filter")
	}

	open := get(t, a, "/?filter=learn&menu=open", false).Body.String()
	if !strings.Contains(open, `href="/?filter=learn" class="absolute top-6 right-6`) {
		t.Error("overlay close link drops the gallery filter")
	}
	if strings.Contains(open, "menu=open") {
		t.Error("links on an open menu must not keep it open")
	}
}
