package handlers

import (
	"net/http"

	"chimney_care_go/middleware"
	"chimney_care_go/services"
	"chimney_care_go/templates/partials"

	"github.com/labstack/echo/v4"
)

// SliderHTMX returns the before/after layers for a new slider position
func SliderHTMX(c echo.Context) error {
	pos, err := services.ParseSliderPosition(c.QueryParam("pos"))
	if err != nil {
		if middleware.IsHTMX(c) {
			// Keep the current layers on screen
			c.Response().Header().Set("HX-Reswap", "none")
			return c.String(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	media := services.ResolveComparisonMedia(c.Request().Context(), services.Media, getConfig(c))
	return render(c, partials.SliderLayers(pos, media))
}
