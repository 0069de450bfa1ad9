package components

import (
	"chimney_care_go/services"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

var heroBullets = []string{
	"Deep degreasing",
	"Motor & duct check",
	"Same-day service",
	"30-day warranty",
}

const (
	grimeSplatter = "background-image: radial-gradient(circle at 15% 25%, rgba(97, 64, 11, 0.55) 0 70px, transparent 90px), " +
		"radial-gradient(circle at 65% 35%, rgba(71, 46, 9, 0.5) 0 60px, transparent 85px), " +
		"radial-gradient(circle at 85% 70%, rgba(54, 35, 7, 0.5) 0 75px, transparent 100px), " +
		"radial-gradient(circle at 35% 80%, rgba(120, 80, 18, 0.45) 0 55px, transparent 90px)"
	oilStreaks = "background-image: repeating-linear-gradient(180deg, rgba(90, 60, 12, 0.4) 0 8px, transparent 8px 16px)"
)

// Hero is the top section: headline, selling points and the before/after slider
func Hero(pos services.SliderPosition, media services.ComparisonMedia) g.Node {
	return Section(
		Class("relative overflow-hidden"),
		Div(
			Class("absolute inset-0 pointer-events-none select-none"),
			g.Attr("aria-hidden", "true"),
			Div(Class("absolute inset-0 opacity-30 mix-blend-multiply"), g.Attr("style", grimeSplatter)),
			Div(Class("absolute inset-0 opacity-25"), g.Attr("style", oilStreaks)),
		),
		Div(
			Class("max-w-6xl mx-auto px-4 py-16 md:py-24 grid md:grid-cols-2 gap-10 items-center"),
			Div(
				H1(Class("text-4xl md:text-5xl font-extrabold leading-tight"), g.Text("Remove sticky oil. Restore fresh airflow.")),
				P(Class("mt-4 text-lg text-slate-700"),
					g.Text("Professional kitchen chimney cleaning and repair that makes filters shine and suction strong again.")),
				Ul(
					Class("mt-6 grid sm:grid-cols-2 gap-3 text-sm"),
					g.Map(heroBullets, func(b string) g.Node {
						return Li(
							Class("flex items-center gap-2 bg-white/70 rounded-md px-3 py-2 border"),
							Span(Class("inline-block w-2 h-2 rounded-full bg-emerald-500")),
							g.Text(b),
						)
					}),
				),
				A(Href("#book"), Class("inline-block mt-8 bg-amber-600 hover:bg-amber-700 text-white font-semibold px-5 py-3 rounded-md shadow"),
					g.Text("Get free quote")),
			),
			Div(
				ID("results"),
				Class("bg-white/70 rounded-xl border shadow-inner p-4"),
				ComparisonSlider(pos, media),
			),
		),
	)
}
