// Package nav holds the site's navigation destinations and the open/closed
// state of the mobile menu overlay.
package nav

import (
	"net/url"
	"strings"
)

// Destination is one entry of the navigation bar.
type Destination struct {
	Name        string // stable identifier
	Label       string // desktop label
	MobileLabel string // label inside the mobile overlay
	Href        string
	Icon        string // decor icon name
	HoverBg     string
	HoverText   string
	MobileColor string
}

// Destinations is the fixed, ordered route list.
var Destinations = []Destination{
	{
		Name: "home", Label: "Home", MobileLabel: "Home", Href: "/", Icon: "home",
		HoverBg: "bg-lime-600", HoverText: "text-lime-900", MobileColor: "bg-white text-teal-600",
	},
	{
		Name: "program", Label: "Program", MobileLabel: "Our Program", Href: "/our-program/", Icon: "program",
		HoverBg: "bg-emerald-400", HoverText: "text-emerald-900", MobileColor: "bg-emerald-100 text-emerald-700",
	},
	{
		Name: "about", Label: "About Us", MobileLabel: "About Us", Href: "/about-us/", Icon: "about",
		HoverBg: "bg-violet-400", HoverText: "text-violet-900", MobileColor: "bg-purple-100 text-purple-700",
	},
	{
		Name: "contact", Label: "Contact", MobileLabel: "Contact", Href: "/contact/", Icon: "contact",
		HoverBg: "bg-sky-400", HoverText: "text-sky-900", MobileColor: "bg-orange-100 text-orange-700",
	},
}

// Lookup finds the destination whose href matches path, ignoring a missing
// trailing slash.
func Lookup(path string) (Destination, bool) {
	if path != "/" && !strings.HasSuffix(path, "/") {
		path += "/"
	}
	for _, d := range Destinations {
		if d.Href == path {
			return d, true
		}
	}
	return Destination{}, false
}

// Active reports whether d is the page being rendered at path.
func (d Destination) Active(path string) bool {
	got, ok := Lookup(path)
	return ok && got.Name == d.Name
}

// Menu is the mobile overlay toggle. The zero value is closed.
type Menu struct {
	open bool
}

// MenuFromQuery restores the menu from the "menu" query value.
func MenuFromQuery(v string) Menu {
	return Menu{open: v == "open"}
}

// Open reports whether the overlay is shown.
func (m *Menu) Open() bool {
	return m.open
}

// Toggle flips the overlay.
func (m *Menu) Toggle() {
	m.open = !m.open
}

// Close hides the overlay.
func (m *Menu) Close() {
	m.open = false
}

// Navigate closes the overlay and returns the href to follow, so choosing a
// destination never leaves the overlay up on the next page.
func (m *Menu) Navigate(d Destination) string {
	m.open = false
	return d.Href
}

// ToggleHref returns the link that flips the menu while staying on path.
// Other values in query (the gallery filter, a lightbox photo) are kept.
func (m Menu) ToggleHref(path string, query url.Values) string {
	q := url.Values{}
	for k, v := range query {
		if k != "menu" {
			q[k] = v
		}
	}
	if !m.open {
		q.Set("menu", "open")
	}
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}
