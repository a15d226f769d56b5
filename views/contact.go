package views

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/littlewonders/playlearn/content"
	"github.com/littlewonders/playlearn/gallery"
)

type branchTheme struct {
	bg, accent, border, btn, iconBg string
}

var branchThemes = map[string]branchTheme{
	"amber":   {"bg-orange-50", "text-orange-600", "border-orange-200", "bg-orange-500", "bg-orange-100"},
	"emerald": {"bg-emerald-50", "text-emerald-600", "border-emerald-200", "bg-emerald-500", "bg-emerald-100"},
}

func themeFor(name string) branchTheme {
	if t, ok := branchThemes[name]; ok {
		return t
	}
	return branchThemes["emerald"]
}

// Contact renders the contact page, one section per branch.
func Contact(f Frame, branches []BranchView) cmp.Node {
	sections := make([]cmp.Node, 0, 2*len(branches))
	for i, b := range branches {
		if i > 0 {
			sections = append(sections, branchSeparator())
		}
		sections = append(sections, branchSection(b))
	}
	return Layout(f,
		pageHero("bg-sky-400", "Come Say Hello!", "Find your nearest campus below. We can't wait to meet you.", "text-yellow-300"),
		cmp.Group(sections),
	)
}

func branchSeparator() cmp.Node {
	return g.Div(
		g.Class("h-24 w-full bg-stone-50 relative overflow-hidden flex items-center justify-center"),
		g.Div(g.Class("w-full h-1 bg-gray-200 absolute")),
		g.Div(g.Class("bg-white p-4 rounded-full shadow-sm z-10 border-4 border-gray-100 text-gray-400"), icon("pin", "w-6 h-6")),
	)
}

func branchSection(bv BranchView) cmp.Node {
	b := bv.Branch
	t := themeFor(b.Theme)
	return g.Section(
		g.ID("branch-"+b.Slug),
		g.Class("relative py-20 "+t.bg),
		g.Div(
			g.Class("container mx-auto px-4 max-w-7xl"),
			g.Div(g.Class("flex justify-center mb-16"),
				g.Div(g.Class("bg-white px-10 py-5 rounded-[2rem] shadow-xl border-b-8 "+t.border),
					g.H2(g.Class("text-3xl md:text-5xl font-black tracking-tight uppercase flex items-center gap-3 "+t.accent),
						icon("pin", "w-9 h-9"), cmp.Text(b.Name)),
				),
			),
			g.Div(
				g.Class("flex flex-col xl:flex-row gap-12 items-start mb-24"),
				g.Div(
					g.Class("w-full xl:w-5/12 bg-white p-8 md:p-10 rounded-[2rem] shadow-xl border-4 border-white space-y-8"),
					contactItem(t, "pin", "Visit Us", []string{b.Address}, false),
					contactItem(t, "contact", "Call Us", b.Phones, true),
					contactItem(t, "mail", "Email Us", []string{b.Email}, false),
					g.A(g.Href("/branches/"+b.Slug+"/qr.png"), g.Class("inline-flex items-center gap-2 font-bold "+t.accent),
						cmp.Text("Save contact (QR)")),
				),
				g.Div(
					g.Class("w-full xl:w-7/12 bg-white p-3 rounded-[2rem] shadow-lg border-4 border-white h-[450px] overflow-hidden"),
					g.IFrame(
						g.Class("w-full h-full rounded-[1.5rem] bg-gray-200"),
						g.Src(b.MapURL),
						cmp.Attr("title", b.Name+" Map"),
						cmp.Attr("loading", "lazy"),
						cmp.Attr("referrerpolicy", "no-referrer-when-downgrade"),
					),
				),
			),
			g.Div(
				g.Div(g.Class("flex items-center gap-4 mb-10"),
					g.H3(g.Class("text-4xl font-black text-gray-800 tracking-tight"), cmp.Text("Gallery")),
				),
				g.Div(
					g.Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-3 gap-6"),
					cmp.Map(bv.Images, func(img gallery.Image) cmp.Node {
						return thumbnail(b, img)
					}),
				),
			),
		),
		Lightbox(bv.Lightbox),
	)
}

func contactItem(t branchTheme, iconName, title string, lines []string, mono bool) cmp.Node {
	class := "text-gray-600 font-medium text-lg leading-relaxed"
	if mono {
		class = "text-gray-600 font-medium text-lg font-mono"
	}
	return g.Div(
		g.Class("flex items-start gap-5"),
		g.Div(g.Class("p-4 rounded-2xl "+t.iconBg+" "+t.accent), icon(iconName, "w-7 h-7")),
		g.Div(
			g.H4(g.Class("font-bold text-gray-800 text-xl mb-1"), cmp.Text(title)),
			cmp.Map(lines, func(l string) cmp.Node {
				return g.P(g.Class(class), cmp.Text(l))
			}),
		),
	)
}

// thumbnail opens the lightbox. Without htmx the link reloads the contact
// page with the photo selected.
func thumbnail(b content.Branch, img gallery.Image) cmp.Node {
	return g.A(
		g.Href(LightboxHref(b.Slug, img.Number)),
		cmp.Attr("hx-get", lightboxFragmentHref(b.Slug, img.Number)),
		cmp.Attr("hx-target", "#lightbox-"+b.Slug),
		cmp.Attr("hx-swap", "outerHTML"),
		g.Class("block cursor-pointer group relative aspect-[4/3] rounded-2xl overflow-hidden shadow-md bg-gray-200"),
		g.Img(
			g.Src(img.Src),
			g.Alt(b.Name+" gallery "+itoa(img.Number)),
			g.Class("w-full h-full object-cover transition-transform duration-700 group-hover:scale-110"),
			cmp.Attr("loading", "lazy"),
		),
	)
}

// Lightbox renders a branch's overlay slot. When closed the slot is empty.
// The backdrop is a link to the closed state; the photo is a sibling drawn
// above it, so clicks on the photo never reach the backdrop.
func Lightbox(lv LightboxView) cmp.Node {
	slotID := "lightbox-" + lv.Slug
	src, open := lv.Box.Selected()
	if !open {
		return g.Div(g.ID(slotID))
	}
	closeHref := "/contact/#branch-" + lv.Slug
	closeAttrs := cmp.Group{
		g.Href(closeHref),
		cmp.Attr("hx-get", lightboxFragmentHref(lv.Slug, 0)),
		cmp.Attr("hx-target", "#"+slotID),
		cmp.Attr("hx-swap", "outerHTML"),
		cmp.Attr("data-close", ""),
	}
	return g.Div(
		g.ID(slotID),
		g.Class("fixed inset-0 z-50 flex items-center justify-center p-4"),
		g.Role("dialog"),
		g.Aria("modal", "true"),
		g.Aria("label", lv.Name+" photo"),
		cmp.Attr("data-lightbox", ""),
		g.A(
			closeAttrs,
			g.Class("absolute inset-0 bg-black/80 backdrop-blur-md"),
			g.Aria("label", "Close"),
		),
		g.A(
			closeAttrs,
			g.Class("absolute top-6 right-6 z-20 text-white bg-white/10 p-2 rounded-full hover:bg-white/20 transition"),
			g.Aria("label", "Close photo"),
			icon("close", "w-8 h-8"),
		),
		g.Div(
			g.Class("relative z-10 w-full max-w-5xl aspect-video bg-black rounded-lg overflow-hidden shadow-2xl"),
			g.Img(g.Src(src), g.Alt("Gallery Fullscreen"), g.Class("w-full h-full object-contain")),
		),
	)
}
