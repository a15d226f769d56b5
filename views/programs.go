package views

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/littlewonders/playlearn/content"
	"github.com/littlewonders/playlearn/decor"
)

// Programs renders the programs page.
func Programs(f Frame) cmp.Node {
	p := f.Content.Programs
	return Layout(f,
		pageHero("bg-emerald-400", "Our Playful Programs", "Fun and educational play-based learning for every little learner.", "text-emerald-400"),
		g.Section(
			g.Class("py-20 bg-white"),
			g.Div(
				g.Class("container mx-auto px-6"),
				sectionTitle("Regular Programs", "text-orange-500"),
				g.Div(g.Class("grid grid-cols-1 md:grid-cols-3 gap-10"), cmp.Map(p.Regular, sessionCard)),
			),
		),
		g.Section(
			g.Class("py-20 bg-sky-50"),
			g.Div(
				g.Class("container mx-auto px-6"),
				sectionTitle("Learning Path", "text-sky-600"),
				g.Div(g.Class("grid grid-cols-1 sm:grid-cols-2 lg:grid-cols-4 gap-8"), cmp.Map(p.Stages, stageCard)),
			),
		),
		g.Section(
			g.Class("py-20 bg-white"),
			g.Div(
				g.Class("container mx-auto px-6"),
				sectionTitle("Skill Boosters", "text-purple-600"),
				g.Div(g.Class("grid grid-cols-2 md:grid-cols-4 gap-6"), cmp.Map(p.Boosters, boosterCard)),
			),
		),
		g.Section(
			g.Class("py-20 bg-yellow-50"),
			g.Div(
				g.Class("container mx-auto px-6"),
				sectionTitle("After School", "text-rose-500"),
				g.Div(g.Class("grid grid-cols-1 md:grid-cols-2 gap-10"), cmp.Map(p.AfterSchool, activityCard)),
			),
		),
		g.Section(
			g.Class("py-20 bg-white"),
			g.Div(
				g.Class("container mx-auto px-6 text-center"),
				sectionTitle("Therapy Services", "text-emerald-600"),
				g.Div(g.Class("flex flex-wrap justify-center gap-6"), cmp.Map(p.Services, serviceBadge)),
			),
		),
		prospectusBanner(f),
	)
}

// prospectusBanner links the printable prospectus and the admission QR code.
func prospectusBanner(f Frame) cmp.Node {
	return g.Section(
		g.Class("py-16 bg-lime-800 text-white"),
		g.Div(
			g.Class("container mx-auto px-6 flex flex-col md:flex-row items-center justify-center gap-10"),
			g.Img(g.Src("/qr/admission.png"), g.Alt("Scan to apply"), g.Width("160"), g.Height("160"), g.Class("rounded-2xl bg-white p-2")),
			g.Div(
				g.H2(g.Class("text-3xl font-black mb-4"), cmp.Text("Take us home")),
				g.P(g.Class("text-lime-100 mb-6 max-w-md"), cmp.Text("Download the printable prospectus or scan the code to open the admission form.")),
				g.A(g.Href("/prospectus.pdf"),
					g.Class("inline-block px-8 py-4 bg-yellow-400 text-teal-900 font-black rounded-full shadow-lg"),
					cmp.Text("Download Prospectus (PDF)"),
				),
				cmp.If(f.Content.Site.AdmissionURL != "", g.A(g.Href(f.Content.Site.AdmissionURL),
					g.Class("ml-4 inline-block px-8 py-4 bg-white text-lime-800 font-black rounded-full shadow-lg"),
					cmp.Text("Apply Now"),
				)),
			),
		),
	)
}

// pageHero is the coloured banner at the top of every inner page.
func pageHero(bg, title, sub, accent string) cmp.Node {
	return g.Div(
		g.Class("relative w-full pt-24 pb-32 text-center overflow-hidden "+bg),
		g.Div(
			g.Class("relative z-10 px-4"),
			g.H1(g.Class("text-5xl md:text-7xl font-black text-white drop-shadow-md mb-4 tracking-tight"), cmp.Text(title)),
			g.P(g.Class("text-xl text-white/90 font-bold max-w-2xl mx-auto"), cmp.Text(sub)),
		),
		g.Div(g.Class("absolute -bottom-1 left-0 w-full overflow-hidden leading-none"), wave("text-white", false)),
		g.Div(g.Class("absolute -top-10 -left-10 w-40 h-40 opacity-30 "+accent), cmp.Raw(decor.Blob("w-full h-full", len(title)))),
	)
}

func sectionTitle(title, color string) cmp.Node {
	return g.H2(g.Class("text-4xl md:text-5xl font-black text-center mb-14 "+color), cmp.Text(title))
}

func sessionCard(s content.Session) cmp.Node {
	return g.Div(
		g.Class("p-8 rounded-[2rem] text-white shadow-xl transform hover:rotate-0 transition-transform "+s.Color+" "+s.Rotate),
		g.P(g.Class("text-lg font-bold opacity-90 font-mono"), cmp.Text(s.Time)),
		g.H3(g.Class("text-3xl font-black mt-2"), cmp.Text(s.Title)),
		g.P(g.Class("mt-3 font-semibold"), cmp.Text(s.Sub)),
	)
}

func stageCard(s content.Stage) cmp.Node {
	return g.Div(
		g.Class("bg-white rounded-3xl shadow-lg overflow-hidden border-b-8 "+s.Color),
		g.Div(g.Class("aspect-[4/3] bg-gray-100 overflow-hidden"),
			g.Img(g.Src(s.Image), g.Alt(s.Title), g.Class("w-full h-full object-cover"), cmp.Attr("loading", "lazy")),
		),
		g.H3(g.Class("text-2xl font-black text-slate-800 p-6 text-center"), cmp.Text(s.Title)),
	)
}

func boosterCard(b content.Booster) cmp.Node {
	return g.Div(
		g.Class("bg-purple-50 border-2 border-purple-100 rounded-2xl p-6 text-center"),
		g.H3(g.Class("text-xl font-black text-purple-700"), cmp.Text(b.Title)),
		g.P(g.Class("text-sm font-bold text-purple-400 uppercase tracking-wider mt-2"), cmp.Text(b.Duration)),
	)
}

func activityCard(a content.Activity) cmp.Node {
	return g.Div(
		g.Class("flex items-center gap-6 p-6 rounded-3xl shadow-md "+a.Background),
		g.Img(g.Src(a.Image), g.Alt(a.Title), g.Class("w-32 h-32 rounded-2xl object-cover flex-shrink-0"), cmp.Attr("loading", "lazy")),
		g.H3(g.Class("text-2xl font-black text-slate-800"), cmp.Text(a.Title)),
	)
}

func serviceBadge(s content.Service) cmp.Node {
	return g.Span(
		g.Class("px-8 py-4 rounded-full text-white font-black text-lg shadow-lg "+s.Color),
		cmp.Text(s.Title),
	)
}
