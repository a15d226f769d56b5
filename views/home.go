package views

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/littlewonders/playlearn/content"
	"github.com/littlewonders/playlearn/gallery"
)

// Home renders the landing page.
func Home(f Frame, gv GalleryView) cmp.Node {
	c := f.Content
	return Layout(f,
		homeHero(c),
		mission(c),
		GallerySection(gv),
	)
}

func homeHero(c *content.Content) cmp.Node {
	return g.Div(
		g.Class("relative w-full h-[95vh] min-h-[600px] flex items-center overflow-hidden"),
		g.Div(g.Class("absolute inset-0 z-0"),
			g.Img(g.Src(c.Site.HeroImage), g.Alt(c.Site.Name+" Banner"), g.Class("w-full h-full object-cover scale-x-[-1]")),
		),
		g.Div(g.Class("absolute inset-0 z-10 bg-black/30")),
		g.Div(
			g.Class("container mx-auto px-6 relative z-20"),
			g.Div(
				g.Class("max-w-xl"),
				cmp.If(c.Site.Enrollment != "", g.Div(
					g.Class("inline-flex items-center gap-2 bg-white/90 border-2 border-lime-300 rounded-full px-4 pb-1.5 mb-6 shadow-md"),
					g.Span(g.Class("animate-pulse text-lime-600"), cmp.Text("★")),
					g.Span(g.Class("font-bold text-slate-800 text-sm tracking-wide uppercase"), cmp.Text(c.Site.Enrollment)),
				)),
				g.H1(
					g.Class("text-5xl md:text-7xl font-black text-white leading-[1.1] mb-6 drop-shadow-lg"),
					cmp.Text("Where Every"), g.Br(), cmp.Text("Child is a"), g.Br(),
					g.Span(g.Class("text-yellow-300 relative inline-block drop-shadow-md"), cmp.Text("Wonder.")),
				),
				g.P(
					g.Class("text-lg md:text-xl text-gray-200 font-medium mb-8 leading-relaxed max-w-lg"),
					cmp.Text("We provide a nurturing environment where play meets learning. "+
						"Join us to give your child the perfect start to their educational journey."),
				),
			),
		),
		g.Div(g.Class("absolute -bottom-1 left-0 w-full overflow-hidden z-10"), wave("text-white", false)),
	)
}

var missionThemes = map[string][2]string{
	"rose":   {"bg-rose-50 text-rose-600 border-rose-100", "bg-rose-500"},
	"sky":    {"bg-sky-50 text-sky-600 border-sky-100", "bg-sky-500"},
	"yellow": {"bg-yellow-50 text-yellow-600 border-yellow-100", "bg-yellow-500"},
}

func mission(c *content.Content) cmp.Node {
	return g.Section(
		g.Class("relative pb-12 bg-white overflow-hidden"),
		g.Div(
			g.Class("container mx-auto px-6 flex flex-col lg:flex-row items-center gap-16"),
			g.Div(
				g.Class("w-full lg:w-1/2 relative"),
				g.Div(g.Class("absolute top-0 right-0 w-full h-full bg-lime-100 rounded-[3rem] rotate-3 scale-95 z-0")),
				g.Div(g.Class("absolute top-0 right-0 w-full h-full bg-purple-100 rounded-[3rem] -rotate-2 scale-95 z-0")),
				g.Div(g.Class("relative z-10 bg-white p-3 rounded-[3rem] shadow-xl border-b-8 border-gray-100"),
					g.Img(g.Src(c.Site.MissionImage), g.Alt("Mission"), g.Width("720"), g.Height("600"), g.Class("rounded-[2.5rem]")),
				),
			),
			g.Div(
				g.Class("w-full lg:w-1/2"),
				g.H2(g.Class("text-purple-600 font-extrabold tracking-widest uppercase mb-2"), cmp.Text("Who We Are")),
				g.H2(g.Class("text-4xl md:text-6xl font-black text-slate-800 mb-8"), cmp.Text("Our Mission"), g.Br(), cmp.Text("& Vision")),
				g.Div(g.Class("space-y-6"), cmp.Map(c.Mission, infoCard)),
				g.Div(g.Class("mt-12"),
					g.A(g.Href("/our-program/"),
						g.Class("inline-block px-8 py-4 bg-lime-500 text-white font-bold rounded-full shadow-lg hover:bg-lime-600 transition-all"),
						cmp.Text("See Our Programs →"),
					),
				),
			),
		),
	)
}

func infoCard(card content.InfoCard) cmp.Node {
	theme, ok := missionThemes[card.Theme]
	if !ok {
		theme = missionThemes["sky"]
	}
	return g.Div(
		g.Class("flex items-start p-6 rounded-3xl border-2 transition-all "+theme[0]),
		g.Div(
			g.Class("flex-shrink-0 h-14 w-14 rounded-full flex items-center justify-center text-white font-black text-2xl shadow-md border-4 border-white "+theme[1]),
			cmp.Text(card.Number),
		),
		g.Div(g.Class("ml-6"),
			g.H3(g.Class("text-xl font-bold text-slate-800"), cmp.Text(card.Title)),
			g.P(g.Class("text-slate-600 mt-2 font-medium leading-relaxed"), cmp.Text(card.Description)),
		),
	)
}

// GallerySection is the filterable album. It is also served alone to htmx
// tab clicks, which swap it in place and push the filtered URL.
func GallerySection(gv GalleryView) cmp.Node {
	return g.Section(
		g.ID("gallery"),
		g.Class("relative py-24 bg-yellow-50"),
		g.Div(g.Class("absolute top-0 left-0 w-full overflow-hidden leading-none"), wave("text-white", true)),
		g.Div(
			g.Class("container mx-auto px-4 relative z-10"),
			g.Div(
				g.Class("text-center mb-12"),
				g.Span(g.Class("text-rose-500 font-bold tracking-widest uppercase bg-rose-100 px-4 py-1 rounded-full"), cmp.Text("Gallery")),
				g.H2(g.Class("text-5xl font-black text-slate-800 mt-4 mb-8"), cmp.Text("Capturing Joyful Moments")),
				g.Div(
					g.Class("flex flex-wrap justify-center gap-4"),
					g.Role("tablist"),
					cmp.Map(gallery.Tags, func(t gallery.Tag) cmp.Node {
						return filterTab(t, t == gv.Active)
					}),
				),
			),
			g.Div(
				g.Class("columns-1 sm:columns-2 lg:columns-3 gap-8 space-y-8 p-4"),
				cmp.Attr("data-filter", string(gv.Active)),
				cmp.Map(gv.Images, polaroid),
			),
		),
	)
}

func filterTab(t gallery.Tag, active bool) cmp.Node {
	return g.A(
		g.Href(FilterHref(t)),
		g.Class(FilterTabClass(active)),
		g.Role("tab"),
		g.Aria("selected", boolString(active)),
		cmp.Attr("hx-get", filterPartialHref(t)),
		cmp.Attr("hx-target", "#gallery"),
		cmp.Attr("hx-swap", "outerHTML"),
		cmp.Attr("hx-push-url", FilterHref(t)),
		cmp.Text(string(t)),
	)
}

func polaroid(img gallery.Image) cmp.Node {
	return g.Div(
		g.Class("break-inside-avoid mb-10 relative group"),
		g.Div(
			g.Class("bg-white p-3 pb-12 shadow-xl hover:shadow-2xl transition-all duration-300 transform group-hover:scale-[1.02]"),
			cmp.Attr("style", rotateStyle(img.Number)),
			g.Div(g.Class("absolute -top-3 left-1/2 -translate-x-1/2 w-24 h-8 opacity-80 rotate-[-2deg] shadow-sm z-10 "+gallery.TapeColor(img.Number))),
			g.Div(
				g.Class("relative overflow-hidden bg-gray-100 aspect-[4/3]"),
				g.Img(
					g.Src(img.Src),
					g.Width("500"), g.Height("400"),
					g.Alt("Little Wonders Memory "+itoa(img.Number)),
					g.Class("group-hover:scale-110 transition-transform duration-700"),
					cmp.Attr("loading", "lazy"),
				),
			),
			g.Div(g.Class("absolute bottom-2 left-0 right-0 text-center text-slate-500 font-bold"),
				cmp.Textf("Little Wonders #%d", img.Number)),
		),
	)
}
