package handlers

import (
	"time"

	"chimney_care_go/middleware"
	"chimney_care_go/services"
	"chimney_care_go/templates/pages"

	"github.com/labstack/echo/v4"
)

// LandingHandler renders the full page for the visitor's current form state
func LandingHandler(c echo.Context) error {
	cfg := getConfig(c)
	ctx := c.Request().Context()

	// A bad ?pos= on a full page load falls back to the default split
	pos, err := services.ParseSliderPosition(c.QueryParam("pos"))
	if err != nil {
		pos = services.NewSliderPosition(services.SliderDefault)
	}

	data := pages.LandingData{
		SEO:              landingSEO(cfg.AppURL),
		Nonce:            middleware.GetNonce(ctx),
		CSRFToken:        middleware.GetCSRFToken(c),
		TurnstileSiteKey: turnstileSiteKey(cfg),
		Slider:           pos,
		Media:            services.ResolveComparisonMedia(ctx, services.Media, cfg),
		Form:             services.LeadForms.State(middleware.GetVisitorID(c)),
		Year:             time.Now().Year(),
	}
	return render(c, pages.Landing(data))
}
