package views

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/littlewonders/playlearn/content"
	"github.com/littlewonders/playlearn/decor"
)

// About renders the about page: values, founders and the team.
func About(f Frame) cmp.Node {
	c := f.Content
	return Layout(f,
		pageHero("bg-violet-400", "About "+c.Site.Name, c.Footer.Blurb, "text-violet-200"),
		g.Section(
			g.Class("py-20 bg-white"),
			g.Div(
				g.Class("container mx-auto px-6"),
				sectionTitle("What We Believe", "text-slate-800"),
				g.Div(g.Class("grid grid-cols-1 md:grid-cols-3 gap-8"), cmp.Map(c.Values, valueCard)),
			),
		),
		g.Section(
			g.Class("py-20 bg-stone-50"),
			g.Div(
				g.Class("container mx-auto px-6 space-y-24"),
				sectionTitle("Our Visionaries", "text-purple-600"),
				cmp.Map(c.Founders, founder),
			),
		),
		g.Section(
			g.Class("py-20 bg-white"),
			g.Div(
				g.Class("container mx-auto px-6"),
				sectionTitle("The Dream Team", "text-rose-500"),
				g.P(g.Class("text-center text-lg text-slate-500 max-w-2xl mx-auto -mt-8 mb-14"),
					cmp.Text("Meet the passionate educators and therapists who make magic happen every single day.")),
				g.Div(g.Class("grid grid-cols-1 sm:grid-cols-2 lg:grid-cols-3 xl:grid-cols-4 gap-8"), cmp.Map(c.Team, memberCard)),
			),
		),
	)
}

func valueCard(v content.Value) cmp.Node {
	return g.Div(
		g.Class("bg-white p-8 rounded-3xl shadow-lg border-t-8 "+v.Accent),
		g.H3(g.Class("text-2xl font-black text-slate-800 mb-3"), cmp.Text(v.Title)),
		g.P(g.Class("text-slate-600 font-medium leading-relaxed"), cmp.Text(v.Description)),
	)
}

func founder(fd content.Founder) cmp.Node {
	row := "flex flex-col lg:flex-row items-center gap-12"
	if fd.Align == "right" {
		row = "flex flex-col lg:flex-row-reverse items-center gap-12"
	}
	return g.Div(
		g.Class(row),
		g.Div(
			g.Class("relative w-72 h-72 flex-shrink-0"),
			g.Div(g.Class("absolute inset-0 text-yellow-200"), cmp.Raw(decor.Blob("w-full h-full", len(fd.Name)))),
			g.Img(g.Src(fd.Photo), g.Alt(fd.Name), g.Class("relative w-full h-full object-cover rounded-full border-8 border-white shadow-xl")),
		),
		g.Div(
			g.Span(g.Class("text-sm font-black tracking-widest text-purple-500"), cmp.Text(fd.Title)),
			g.H3(g.Class("text-4xl font-black text-slate-800 mt-2 mb-4"), cmp.Text(fd.Name)),
			g.P(g.Class("text-lg text-slate-600 leading-relaxed"), cmp.Text(fd.Bio)),
		),
	)
}

func memberCard(m content.Member) cmp.Node {
	return g.Div(
		g.Class("bg-white rounded-3xl shadow-md hover:shadow-xl transition-shadow p-6 text-center"),
		g.Div(
			g.Class("w-32 h-32 mx-auto rounded-full p-1 "+m.Gradient()),
			g.Img(g.Src(m.Photo()), g.Alt(m.Name), g.Class("w-full h-full rounded-full object-cover border-4 border-white"), cmp.Attr("loading", "lazy")),
		),
		g.H3(g.Class("text-xl font-black text-slate-800 mt-4"), cmp.Text(m.Name)),
		g.P(g.Class("text-sm font-bold text-rose-500 uppercase tracking-wider"), cmp.Text(m.Role)),
		cmp.If(m.Quote != "", g.P(g.Class("mt-4 text-slate-500 italic"), cmp.Textf("“%s”", m.Quote))),
	)
}
