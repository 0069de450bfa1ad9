package components

import (
	"strconv"

	"chimney_care_go/services"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const (
	cleanTexture = "background-image: repeating-linear-gradient(45deg, rgba(255,255,255,0.35) 0px, rgba(255,255,255,0.35) 2px, rgba(0,0,0,0) 2px, rgba(0,0,0,0) 8px)"
	greaseBlobs  = "background-image: radial-gradient(circle at 20% 30%, rgba(60,40,10,0.7) 0 30px, transparent 40px), " +
		"radial-gradient(circle at 60% 40%, rgba(40,25,8,0.7) 0 24px, transparent 34px), " +
		"radial-gradient(circle at 80% 70%, rgba(30,20,6,0.7) 0 28px, transparent 38px), " +
		"radial-gradient(circle at 30% 80%, rgba(50,35,10,0.7) 0 22px, transparent 30px)"
	greaseDrips = "background-image: repeating-linear-gradient(to bottom, rgba(22, 12, 2, 0.6) 0 6px, transparent 6px 14px)"
)

// ComparisonSlider is the before/after widget. The range input stays outside
// the swapped layers so it keeps focus while dragging.
func ComparisonSlider(pos services.SliderPosition, media services.ComparisonMedia) g.Node {
	return Div(
		Class("relative w-full h-64 md:h-80 rounded-lg overflow-hidden"),
		SliderLayers(pos, media),
		Input(
			Type("range"),
			Name("pos"),
			g.Attr("aria-label", "Before after slider"),
			g.Attr("min", strconv.Itoa(services.SliderMin)),
			g.Attr("max", strconv.Itoa(services.SliderMax)),
			Value(strconv.Itoa(int(pos))),
			g.Attr("hx-get", "/htmx/slider"),
			g.Attr("hx-trigger", "input"),
			g.Attr("hx-target", "#comparison-layers"),
			g.Attr("hx-swap", "outerHTML"),
			g.Attr("hx-sync", "this:replace"),
			Class("absolute inset-x-0 bottom-2 w-[90%] mx-auto appearance-none h-1 bg-white/60 rounded outline-none cursor-pointer z-10"),
		),
	)
}

// SliderLayers renders the clean layer, the greasy layer clipped to the
// position and the divider handle.
func SliderLayers(pos services.SliderPosition, media services.ComparisonMedia) g.Node {
	return Div(
		ID("comparison-layers"),
		Class("absolute inset-0"),
		g.Attr("data-pos", strconv.Itoa(int(pos))),
		// After
		Div(
			Class("absolute inset-0"),
			g.Attr("aria-hidden", "true"),
			layerBackground(media.AfterURL, "w-full h-full bg-gradient-to-br from-zinc-50 to-slate-100"),
			g.If(media.AfterURL == "", Div(Class("absolute inset-0 opacity-50"), g.Attr("style", cleanTexture))),
			Div(Class("absolute bottom-3 right-3 text-[10px] font-semibold bg-white/70 backdrop-blur px-2 py-1 rounded-md text-emerald-700 border"),
				g.Text("After")),
		),
		// Before
		Div(
			Class("absolute inset-0 overflow-hidden"),
			g.Attr("style", pos.BeforeLayerStyle()),
			layerBackground(media.BeforeURL, "absolute inset-0 bg-gradient-to-br from-stone-700 to-stone-900"),
			g.If(media.BeforeURL == "", g.Group([]g.Node{
				Div(Class("absolute inset-0 mix-blend-multiply opacity-80"), g.Attr("style", greaseBlobs)),
				Div(Class("absolute inset-0 opacity-70"), g.Attr("style", greaseDrips)),
			})),
			Div(Class("absolute bottom-3 left-3 text-[10px] font-semibold bg-black/40 text-amber-200 backdrop-blur px-2 py-1 rounded-md border border-amber-900/30"),
				g.Text("Before")),
		),
		// Handle
		Div(
			Class("absolute inset-y-0"),
			g.Attr("style", pos.HandleStyle()),
			Div(Class("h-full w-0.5 bg-white shadow-[0_0_0_2px_rgba(0,0,0,0.2)]")),
			Div(
				Class("absolute top-1/2 -translate-y-1/2 -left-4"),
				Div(Class("w-8 h-8 rounded-full bg-white shadow-lg border flex items-center justify-center text-slate-700 text-xs font-semibold select-none"),
					g.Text("⇆")),
			),
		),
	)
}

// layerBackground uses the configured photo when present, the gradient otherwise
func layerBackground(imageURL, gradientClass string) g.Node {
	if imageURL == "" {
		return Div(Class(gradientClass))
	}
	return Div(
		Class("absolute inset-0 bg-cover bg-center"),
		g.Attr("style", "background-image: url('"+imageURL+"')"),
	)
}
