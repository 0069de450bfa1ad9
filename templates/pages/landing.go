package pages

import (
	"chimney_care_go/models"
	"chimney_care_go/services"
	"chimney_care_go/templates/components"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// LandingData is everything the landing page renders from
type LandingData struct {
	SEO              *models.SEO
	Nonce            string
	CSRFToken        string
	TurnstileSiteKey string
	Slider           services.SliderPosition
	Media            services.ComparisonMedia
	Form             services.LeadFormState
	Year             int
}

func Landing(data LandingData) templ.Component {
	return components.Templ(LandingPage(data))
}

func LandingPage(data LandingData) g.Node {
	return components.Layout(
		components.LayoutOptions{
			SEO:              data.SEO,
			Nonce:            data.Nonce,
			CSRFToken:        data.CSRFToken,
			TurnstileSiteKey: data.TurnstileSiteKey,
		},
		Div(
			components.SiteHeader(),
			components.Hero(data.Slider, data.Media),
			components.ServicesGrid(),
			components.BookingSection(components.BookingFormProps{
				State:            data.Form,
				CSRFToken:        data.CSRFToken,
				TurnstileSiteKey: data.TurnstileSiteKey,
			}),
			components.SiteFooter(data.Year),
		),
	)
}
