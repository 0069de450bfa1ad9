package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type navLink struct {
	Href  string
	Label string
}

var navLinks = []navLink{
	{Href: "#results", Label: "Results"},
	{Href: "#services", Label: "Services"},
	{Href: "#book", Label: "Book Now"},
}

func SiteHeader() g.Node {
	return Header(
		Class("sticky top-0 z-10 backdrop-blur bg-white/70 border-b"),
		Div(
			Class("max-w-6xl mx-auto px-4 py-3 flex items-center justify-between"),
			Div(
				Class("flex items-center gap-2"),
				Div(Class("w-8 h-8 rounded bg-amber-500")),
				Span(Class("font-extrabold text-lg tracking-tight"), g.Text("Chimney Care")),
			),
			Nav(
				Class("hidden sm:flex gap-6 text-sm text-slate-600"),
				g.Map(navLinks, func(l navLink) g.Node {
					return A(Href(l.Href), Class("hover:text-slate-900"), g.Text(l.Label))
				}),
			),
		),
	)
}
