package views

import (
	"encoding/json"
	"fmt"
	"net/url"
	"path"
	"strconv"
	"strings"

	"github.com/littlewonders/playlearn/content"
	"github.com/littlewonders/playlearn/gallery"
)

// buildURL joins path segments onto a base URL, ensuring a trailing slash.
func buildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// FilterTabClass returns CSS classes for a gallery filter tab, with active variant.
func FilterTabClass(active bool) string {
	base := "px-6 py-2 rounded-full font-bold text-lg capitalize transition-all transform hover:scale-105"
	if active {
		return base + " bg-purple-600 text-white shadow-lg scale-105"
	}
	return base + " bg-white text-slate-500 border-2 border-slate-200 hover:border-purple-300"
}

// FilterHref is the shareable home page URL for tag.
func FilterHref(t gallery.Tag) string {
	if t == gallery.TagAll {
		return "/"
	}
	return "/?filter=" + url.QueryEscape(string(t))
}

// filterPartialHref is the htmx endpoint that returns only the gallery section.
func filterPartialHref(t gallery.Tag) string {
	return "/?filter=" + url.QueryEscape(string(t)) + "&partial=gallery"
}

// LightboxHref opens image n of a branch on the full contact page.
func LightboxHref(slug string, n int) string {
	q := url.Values{}
	q.Set("branch", slug)
	q.Set("photo", strconv.Itoa(n))
	return "/contact/?" + q.Encode() + "#branch-" + slug
}

func lightboxFragmentHref(slug string, n int) string {
	q := url.Values{}
	q.Set("branch", slug)
	if n > 0 {
		q.Set("photo", strconv.Itoa(n))
	}
	return "/contact/lightbox/?" + q.Encode()
}

func itoa(n int) string { return strconv.Itoa(n) }

func boolString(b bool) string { return strconv.FormatBool(b) }

func rotateStyle(n int) string {
	return fmt.Sprintf("transform: rotate(%.2fdeg)", gallery.Rotation(n))
}

// PreschoolJsonLD produces a Schema.org Preschool JSON-LD block for the site.
func PreschoolJsonLD(cfg SiteConfig, c *content.Content) string {
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "Preschool",
		"name":     c.Site.Name,
		"url":      buildURL(cfg.URL),
	}
	if d := c.Site.Description; d != "" {
		data["description"] = d
	} else if cfg.Description != "" {
		data["description"] = cfg.Description
	}
	if c.Footer.Email != "" {
		data["email"] = c.Footer.Email
	}
	if len(c.Footer.Phones) > 0 {
		data["telephone"] = c.Footer.Phones[0]
	}
	var locations []map[string]interface{}
	for _, b := range c.Branches {
		locations = append(locations, map[string]interface{}{
			"@type": "Place",
			"name":  b.Name,
			"address": map[string]string{
				"@type":         "PostalAddress",
				"streetAddress": b.Address,
			},
		})
	}
	if len(locations) > 0 {
		data["location"] = locations
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
