package views

import (
	"strconv"
	"time"

	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/littlewonders/playlearn/content"
	"github.com/littlewonders/playlearn/nav"
)

// Layout wraps page sections in the document shell: head, navigation bar,
// main and footer.
func Layout(f Frame, sections ...cmp.Node) cmp.Node {
	return g.Doctype(
		g.HTML(
			g.Lang("en"),
			head(f),
			g.Body(
				g.Class("font-sans antialiased text-slate-700 bg-white overflow-x-hidden selection:bg-yellow-300"),
				navBar(f),
				g.Main(g.ID("main"), cmp.Group(sections)),
				footer(f),
			),
		),
	)
}

func head(f Frame) cmp.Node {
	c := f.Content
	title := f.Meta.Title
	if title == "" {
		title = c.Site.Title
	}
	desc := f.Meta.Description
	if desc == "" {
		desc = c.Site.Description
	}
	ogType := f.Meta.OGType
	if ogType == "" {
		ogType = "website"
	}
	return g.Head(
		g.Meta(g.Charset("utf-8")),
		g.Meta(g.Name("viewport"), g.Content("width=device-width, initial-scale=1")),
		cmp.El("title", cmp.Text(title)),
		g.Meta(g.Name("description"), g.Content(desc)),
		cmp.If(f.Meta.URL != "", g.Link(g.Rel("canonical"), g.Href(f.Meta.URL))),
		g.Meta(cmp.Attr("property", "og:title"), g.Content(title)),
		g.Meta(cmp.Attr("property", "og:description"), g.Content(desc)),
		g.Meta(cmp.Attr("property", "og:type"), g.Content(ogType)),
		g.Meta(cmp.Attr("property", "og:site_name"), g.Content(c.Site.Name)),
		cmp.If(f.Meta.URL != "", g.Meta(cmp.Attr("property", "og:url"), g.Content(f.Meta.URL))),
		g.Link(g.Rel("icon"), g.Href(c.Site.Favicon)),
		cmp.If(f.Site.Stylesheet != "", g.Link(g.Rel("stylesheet"), g.Href(f.Site.Stylesheet))),
		g.Script(g.Type("application/ld+json"), cmp.Raw(PreschoolJsonLD(f.Site, c))),
		g.Script(g.Src(f.Site.HtmxSrc), cmp.Attr("defer")),
		g.Script(g.Src("/public/site.js"), cmp.Attr("defer")),
	)
}

func navBar(f Frame) cmp.Node {
	c := f.Content
	toggleIcon := "menu"
	toggleLabel := "Open menu"
	if f.Menu.Open() {
		toggleIcon, toggleLabel = "close", "Close menu"
	}
	return g.Nav(
		g.Class("relative w-full z-50 bg-white"),
		g.Div(
			g.Class("relative bg-lime-800 shadow-lg pt-4 pb-4"),
			g.Div(
				g.Class("container mx-auto px-6 flex justify-between items-center relative z-20"),
				g.A(g.Href("/"), g.Class("flex items-center gap-4 group"),
					g.Img(g.Src(c.Site.Logo), g.Alt(c.Site.Name+" Logo"), g.Class("h-14 w-44 object-contain")),
				),
				g.Div(
					g.Class("hidden xl:flex items-center space-x-2"),
					cmp.Map(nav.Destinations, func(d nav.Destination) cmp.Node {
						return navLink(d, d.Active(f.Path))
					}),
				),
				g.A(
					g.Href(c.Site.AdmissionURL),
					g.Class("flex items-center gap-2 px-8 py-3 rounded-2xl bg-yellow-400 text-teal-900 font-black text-lg "+
						"shadow-[0_4px_0_rgb(180,110,0)] hover:-translate-y-1 transition-all border-2 border-yellow-500"),
					g.Span(cmp.Text("Admission")),
				),
				g.A(
					g.Href(f.Menu.ToggleHref(f.Path, f.Query)),
					g.Class("xl:hidden bg-white text-teal-600 p-2 rounded-xl shadow-md active:scale-95 transition-transform"),
					g.Aria("label", toggleLabel),
					g.Aria("expanded", strconv.FormatBool(f.Menu.Open())),
					g.ID("menu-toggle"),
					icon(toggleIcon, "w-8 h-8"),
				),
			),
			g.Div(g.Class("absolute -bottom-1 left-0 w-full overflow-hidden leading-[0] z-10"), wave("text-lime-800", true)),
		),
		cmp.If(f.Menu.Open(), menuOverlay(f)),
	)
}

func navLink(d nav.Destination, active bool) cmp.Node {
	class := "group relative px-5 py-3 flex items-center gap-2 font-bold text-teal-50 rounded-2xl transition-colors hover:" + d.HoverBg
	if active {
		class += " " + d.HoverBg
	}
	return g.A(
		g.Href(d.Href),
		g.Class(class),
		cmp.If(active, g.Aria("current", "page")),
		g.Span(g.Class("relative z-10"), icon(d.Icon, "w-6 h-6")),
		g.Span(g.Class("relative z-10 text-lg group-hover:"+d.HoverText), cmp.Text(d.Label)),
	)
}

// menuOverlay is the full-screen mobile menu. Its links come from Navigate so
// they never carry the open flag to the next page.
func menuOverlay(f Frame) cmp.Node {
	m := f.Menu
	return g.Div(
		g.ID("menu-overlay"),
		g.Class("fixed top-0 left-0 w-full h-screen bg-lime-800 z-[60] overflow-hidden flex flex-col pt-32 pb-10"),
		g.Role("dialog"),
		g.Aria("modal", "true"),
		g.A(
			g.Href(f.Menu.ToggleHref(f.Path, f.Query)),
			g.Class("absolute top-6 right-6 bg-white text-lime-800 p-2 rounded-full shadow-lg z-50"),
			g.Aria("label", "Close menu"),
			cmp.Attr("data-close", ""),
			icon("close", "w-6 h-6"),
		),
		g.Div(
			g.Class("container mx-auto px-6 flex flex-col gap-6 relative z-50"),
			cmp.Map(nav.Destinations, func(d nav.Destination) cmp.Node {
				return g.A(
					g.Href(m.Navigate(d)),
					g.Class("block w-full p-6 rounded-3xl text-2xl font-black shadow-lg "+d.MobileColor),
					cmp.Text(d.MobileLabel),
				)
			}),
			g.A(
				g.Href(f.Content.Site.AdmissionURL),
				g.Class("mt-4 block w-full py-5 rounded-full bg-yellow-400 border-b-4 border-yellow-600 text-teal-900 font-black text-2xl text-center shadow-xl"),
				cmp.Text("Apply Now"),
			),
		),
	)
}

func footer(f Frame) cmp.Node {
	c := f.Content
	return g.Footer(
		g.Class("bg-slate-900 text-slate-300 border-t-4 border-sky-400 font-sans"),
		g.Div(
			g.Class("container px-5 py-12 mx-auto grid grid-cols-1 md:grid-cols-2 lg:grid-cols-3 gap-10"),
			g.Div(
				g.Class("flex flex-col items-start text-left"),
				g.Img(g.Src(c.Site.Logo), g.Alt(c.Site.Name+" Logo"), g.Class("w-44 h-14 mb-3 object-contain object-left")),
				g.P(g.Class("text-sm text-slate-400 leading-relaxed max-w-xs"), cmp.Text(c.Footer.Blurb)),
			),
			g.Div(
				g.Class("flex flex-col items-start text-left"),
				g.H2(g.Class("text-sky-400 font-bold tracking-wider text-sm uppercase mb-5"), cmp.Text("Get in Touch")),
				g.Ul(
					g.Class("space-y-4"),
					cmp.Map(c.Footer.Phones, func(p string) cmp.Node {
						return footerItem("contact", p)
					}),
					cmp.If(c.Footer.Email != "", footerItem("mail", c.Footer.Email)),
				),
			),
			g.Div(
				g.Class("flex flex-col items-start text-left"),
				g.H2(g.Class("text-lime-400 font-bold tracking-wider text-sm uppercase mb-5"), cmp.Text("Our Campuses")),
				g.Div(
					g.Class("space-y-6 w-full"),
					cmp.Map(c.Footer.Campuses, campus),
				),
			),
		),
		g.Div(
			g.Class("bg-slate-950 border-t border-slate-800"),
			g.Div(
				g.Class("container px-5 py-6 mx-auto"),
				g.P(g.Class("text-sm text-slate-500"),
					cmp.Textf("© %d %s. All rights reserved.", time.Now().Year(), c.Site.Name)),
			),
		),
	)
}

func footerItem(iconName, text string) cmp.Node {
	return g.Li(
		g.Class("flex items-center group"),
		g.Div(g.Class("w-8 h-8 rounded-full bg-slate-800 flex items-center justify-center mr-3"),
			icon(iconName, "w-3 h-3 text-sky-400")),
		g.Span(cmp.Text(text)),
	)
}

func campus(cp content.Campus) cmp.Node {
	lines := make([]cmp.Node, 0, 2*len(cp.Lines))
	for i, l := range cp.Lines {
		if i > 0 {
			lines = append(lines, g.Br())
		}
		lines = append(lines, cmp.Text(l))
	}
	return g.Div(
		g.Class("flex items-start gap-3"),
		icon("pin", "w-5 h-5 text-red-400 mt-1"),
		g.Div(
			g.H3(g.Class("text-white font-medium text-sm"), cmp.Text(cp.Name)),
			g.P(g.Class("text-sm text-slate-400 mt-1"), cmp.Group(lines)),
		),
	)
}
