package views

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// NotFound renders the 404 page.
func NotFound(f Frame) cmp.Node {
	f.Meta.Title = "Page not found | " + f.Content.Site.Name
	return Layout(f, errorPanel("404", "Oops! This page wandered off.", "Let's head back to the playground."))
}

// ServerError renders the 5xx page.
func ServerError(f Frame) cmp.Node {
	f.Meta.Title = "Something went wrong | " + f.Content.Site.Name
	return Layout(f, errorPanel("500", "Something went wrong.", "Please try again in a moment."))
}

func errorPanel(code, title, sub string) cmp.Node {
	return g.Section(
		g.Class("py-32 bg-yellow-50 text-center"),
		g.P(g.Class("text-8xl font-black text-rose-400"), cmp.Text(code)),
		g.H1(g.Class("text-4xl font-black text-slate-800 mt-6"), cmp.Text(title)),
		g.P(g.Class("text-lg text-slate-500 mt-4"), cmp.Text(sub)),
		g.A(g.Href("/"), g.Class("inline-block mt-10 px-8 py-4 bg-lime-500 text-white font-bold rounded-full shadow-lg"),
			cmp.Text("Back to Home")),
	)
}
