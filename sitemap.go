package playlearn

import (
	"encoding/xml"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/littlewonders/playlearn/nav"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

func (a *App) sitemapURLs() []sitemapURL {
	base := a.Config.URL
	urls := make([]sitemapURL, 0, len(nav.Destinations))
	for _, d := range nav.Destinations {
		u := sitemapURL{Loc: BuildURL(base, d.Href), ChangeFreq: "monthly", Priority: "0.8"}
		if d.Href == "/" {
			u.Loc = BuildURL(base)
			u.Priority = "1.0"
		}
		urls = append(urls, u)
	}
	return urls
}

func (a *App) handleSitemap(c echo.Context) error {
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  a.sitemapURLs(),
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	c.Response().Write([]byte(xml.Header))
	return xml.NewEncoder(c.Response()).Encode(sitemap)
}

func (a *App) handleRobots(c echo.Context) error {
	sitemap := strings.TrimSuffix(BuildURL(a.Config.URL, "sitemap.xml"), "/")
	body := "User-agent: *\nAllow: /\nDisallow: /contact/lightbox/\n\nSitemap: " + sitemap + "\n"
	return c.String(http.StatusOK, body)
}
