package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type serviceOffer struct {
	Title string
	Desc  string
}

var popularServices = []serviceOffer{
	{Title: "Chimney Deep Cleaning", Desc: "Complete filter, duct, and hood degreasing."},
	{Title: "Motor Service", Desc: "Noise, vibration, or low suction diagnosis and fix."},
	{Title: "Filter Replacement", Desc: "Baffle/mesh/filter replacement for better airflow."},
}

func ServicesGrid() g.Node {
	return Section(
		ID("services"),
		Class("max-w-6xl mx-auto px-4 py-12"),
		H2(Class("text-2xl font-bold mb-6"), g.Text("Popular services")),
		Div(
			Class("grid sm:grid-cols-2 lg:grid-cols-3 gap-4"),
			g.Map(popularServices, func(s serviceOffer) g.Node {
				return Div(
					Class("bg-white rounded-lg border p-4 shadow-sm"),
					H3(Class("font-semibold"), g.Text(s.Title)),
					P(Class("text-sm text-slate-600 mt-1"), g.Text(s.Desc)),
				)
			}),
		),
	)
}
