package components

import (
	"chimney_care_go/middleware"
	"chimney_care_go/models"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const htmxSrc = "https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js"

// htmxConfig lets 4xx fragments (rate limit, bad input) swap into the page
const htmxConfig = `{"responseHandling":[{"code":"204","swap":false},{"code":"[23]..","swap":true},{"code":"4..","swap":true,"error":true},{"code":"...","swap":false,"error":true}]}`

// turnstileBootstrap renders CAPTCHA widgets that arrive in htmx swaps
const turnstileBootstrap = `document.addEventListener("htmx:load", function (e) {
  if (!window.turnstile) return;
  e.detail.elt.querySelectorAll(".cf-turnstile:empty").forEach(function (el) { window.turnstile.render(el); });
});`

type LayoutOptions struct {
	SEO              *models.SEO
	Nonce            string
	CSRFToken        string
	TurnstileSiteKey string
}

func Layout(opts LayoutOptions, content ...g.Node) g.Node {
	meta := opts.SEO
	if meta == nil {
		meta = models.DefaultSEO("Chimney Care - Kitchen chimney cleaning & repair", "")
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(meta.Title)),
				Link(Rel("icon"), Type("image/png"), Href(middleware.AssetURL("images/favicon.png"))),
				Link(Rel("stylesheet"), Href(middleware.AssetURL("css/style.css"))),
				g.If(meta.Description != "", Meta(Name("description"), Content(meta.Description))),
				g.If(meta.Keywords != "", Meta(Name("keywords"), Content(meta.Keywords))),
				g.If(meta.NoIndex, Meta(Name("robots"), Content("noindex, nofollow"))),
				g.If(meta.Canonical != "", Link(Rel("canonical"), Href(meta.Canonical))),

				Meta(g.Attr("property", "og:title"), Content(meta.Title)),
				g.If(meta.Description != "", Meta(g.Attr("property", "og:description"), Content(meta.Description))),
				g.If(meta.OGType != "", Meta(g.Attr("property", "og:type"), Content(meta.OGType))),
				g.If(meta.OGImage != "", Meta(g.Attr("property", "og:image"), Content(meta.OGImage))),
				g.If(meta.TwitterCard != "", Meta(Name("twitter:card"), Content(meta.TwitterCard))),

				Meta(Name("htmx-config"), Content(htmxConfig)),
				Script(Src(htmxSrc), g.Attr("nonce", opts.Nonce)),
				g.If(opts.TurnstileSiteKey != "", g.Group([]g.Node{
					Script(Src("https://challenges.cloudflare.com/turnstile/v0/api.js"), g.Attr("nonce", opts.Nonce), g.Attr("async"), g.Attr("defer")),
					Script(g.Attr("nonce", opts.Nonce), g.Raw(turnstileBootstrap)),
				})),
			),
			Body(
				Class("min-h-screen bg-gradient-to-b from-amber-50 to-orange-50 text-slate-800"),
				g.Attr("hx-headers", JSON(map[string]string{"X-CSRF-Token": opts.CSRFToken})),
				g.Group(content),
			),
		),
	})
}
