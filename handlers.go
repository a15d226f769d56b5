package playlearn

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/littlewonders/playlearn/brochure"
	"github.com/littlewonders/playlearn/content"
	"github.com/littlewonders/playlearn/gallery"
	"github.com/littlewonders/playlearn/nav"
	"github.com/littlewonders/playlearn/views"
)

const qrSize = 512

func (a *App) siteConfig() views.SiteConfig {
	return views.SiteConfig{
		Name:        a.Config.Name,
		URL:         a.Config.URL,
		Description: a.Config.Description,
		HtmxSrc:     a.Config.HtmxSrc,
		Stylesheet:  a.Config.Stylesheet,
	}
}

// frame assembles the layout state for the nav destination called name.
// Unknown names (error pages) get the site defaults.
func (a *App) frame(c echo.Context, name string) views.Frame {
	cont, _ := a.Content.Get()
	p := c.Request().URL.Path

	meta := views.PageMeta{
		Title:       cont.Site.Title,
		Description: cont.Site.Description,
		URL:         BuildURL(a.Config.URL, p),
		OGType:      "website",
	}
	if meta.Title == "" {
		meta.Title = cont.Site.Name
	}
	if meta.Description == "" {
		meta.Description = a.Config.Description
	}
	if info, ok := pages[name]; ok {
		if info.Title != "" {
			meta.Title = info.Title + " | " + cont.Site.Name
		}
		if info.Description != "" {
			meta.Description = info.Description
		}
	}
	if d, ok := nav.Lookup(p); ok {
		meta.URL = BuildURL(a.Config.URL, d.Href)
		if d.Href == "/" {
			meta.URL = BuildURL(a.Config.URL)
		}
	}

	return views.Frame{
		Site:    a.siteConfig(),
		Content: cont,
		Meta:    meta,
		Path:    p,
		Query:   c.QueryParams(),
		Menu:    nav.MenuFromQuery(c.QueryParam("menu")),
	}
}

func (a *App) handleHome(c echo.Context) error {
	cont, _ := a.Content.Get()
	album, err := cont.Gallery.Album()
	if err != nil {
		return err
	}
	filter := gallery.NewFilter(album)
	// Unknown tags fall back to the full album.
	if t, ok := gallery.ParseTag(c.QueryParam("filter")); ok {
		filter.Set(t)
	}
	gv := views.GalleryView{Active: filter.Active(), Images: filter.Visible()}

	c.Response().Header().Add("Vary", "HX-Request")
	if isHTMX(c) && c.QueryParam("partial") == "gallery" {
		return renderFragment(c, a.Views.GallerySection(gv))
	}
	return Render(c, a.Views.Home(a.frame(c, "home"), gv))
}

func (a *App) handlePrograms(c echo.Context) error {
	return Render(c, a.Views.Programs(a.frame(c, "program")))
}

func (a *App) handleAbout(c echo.Context) error {
	return Render(c, a.Views.About(a.frame(c, "about")))
}

// branchView lays out one contact page section with image photo selected.
// An out of range photo leaves the lightbox closed.
func branchView(b content.Branch, photo int) (views.BranchView, error) {
	album, err := b.Album()
	if err != nil {
		return views.BranchView{}, err
	}
	lv := views.LightboxView{Slug: b.Slug, Name: b.Name}
	if img, ok := album.ByNumber(photo); ok {
		lv.Box.Open(img.Src)
	}
	return views.BranchView{Branch: b, Images: album.Images(), Lightbox: lv}, nil
}

func photoParam(c echo.Context) int {
	n, err := strconv.Atoi(c.QueryParam("photo"))
	if err != nil {
		return 0
	}
	return n
}

func (a *App) handleContact(c echo.Context) error {
	cont, _ := a.Content.Get()
	selected := c.QueryParam("branch")
	photo := photoParam(c)

	branches := make([]views.BranchView, 0, len(cont.Branches))
	for _, b := range cont.Branches {
		n := 0
		if b.Slug == selected {
			n = photo
		}
		bv, err := branchView(b, n)
		if err != nil {
			return err
		}
		branches = append(branches, bv)
	}
	return Render(c, a.Views.Contact(a.frame(c, "contact"), branches))
}

func (a *App) handleLightbox(c echo.Context) error {
	cont, _ := a.Content.Get()
	b, ok := cont.Branch(c.QueryParam("branch"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "unknown branch")
	}
	bv, err := branchView(b, photoParam(c))
	if err != nil {
		return err
	}
	return renderFragment(c, a.Views.Lightbox(bv.Lightbox))
}

func (a *App) handleProspectus(c echo.Context) error {
	cont, version := a.Content.Get()
	pdf, err := a.assets.Get(version, "prospectus.pdf", func() ([]byte, error) {
		return brochure.Build(cont, brochure.Options{AssetDir: a.Config.StaticDir, SiteURL: a.Config.URL})
	})
	if err != nil {
		return err
	}
	return sendBinary(c, "application/pdf", `inline; filename="prospectus.pdf"`, pdf)
}

func (a *App) handleAdmissionQR(c echo.Context) error {
	cont, version := a.Content.Get()
	if cont.Site.AdmissionURL == "" {
		return echo.NewHTTPError(http.StatusNotFound, "no admission form configured")
	}
	png, err := a.assets.Get(version, "qr/admission", func() ([]byte, error) {
		return brochure.QRCode(cont.Site.AdmissionURL, qrSize)
	})
	if err != nil {
		return err
	}
	return sendBinary(c, "image/png", "", png)
}

func (a *App) handleBranchQR(c echo.Context) error {
	cont, version := a.Content.Get()
	b, ok := cont.Branch(c.Param("slug"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "unknown branch")
	}
	png, err := a.assets.Get(version, "qr/branch/"+b.Slug, func() ([]byte, error) {
		return brochure.QRCode(brochure.BranchCard(b, cont.Site.Name), qrSize)
	})
	if err != nil {
		return err
	}
	return sendBinary(c, "image/png", `inline; filename="`+b.Slug+`-contact.png"`, png)
}

func (a *App) handleHealthz(c echo.Context) error {
	_, version := a.Content.Get()
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":          "ok",
		"content_version": version,
	})
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound(a.frame(c, "")))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, a.Views.ServerError(a.frame(c, "")))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
