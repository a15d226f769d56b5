package views

import (
	"net/url"

	"github.com/littlewonders/playlearn/content"
	"github.com/littlewonders/playlearn/gallery"
	"github.com/littlewonders/playlearn/nav"
)

// SiteConfig holds site-wide settings populated from configuration.
// Every handler passes this to templates so nothing is hardcoded.
type SiteConfig struct {
	Name        string // SITE_NAME
	URL         string // SITE_URL
	Description string // SITE_DESCRIPTION
	HtmxSrc     string // SITE_HTMX_SRC
	Stylesheet  string // SITE_STYLESHEET
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website"
}

// Frame is everything the shared layout needs: branding, the tables, which
// page is being drawn and whether the mobile menu is showing.
type Frame struct {
	Site    SiteConfig
	Content *content.Content
	Meta    PageMeta
	Path    string
	Query   url.Values // request query, kept by the menu toggle links
	Menu    nav.Menu
}

// GalleryView is the home page album after filtering.
type GalleryView struct {
	Active gallery.Tag
	Images []gallery.Image
}

// BranchView is one campus section of the contact page.
type BranchView struct {
	Branch   content.Branch
	Images   []gallery.Image
	Lightbox LightboxView
}

// LightboxView is the overlay slot of one branch. An unopened Box renders as
// an empty slot so htmx can swap into it.
type LightboxView struct {
	Slug string
	Name string
	Box  gallery.Lightbox
}
