package partials

import (
	"chimney_care_go/services"
	"chimney_care_go/templates/components"

	"github.com/a-h/templ"
)

// SliderLayers is the htmx response for a slider move
func SliderLayers(pos services.SliderPosition, media services.ComparisonMedia) templ.Component {
	return components.Templ(components.SliderLayers(pos, media))
}

// BookingForm is the htmx response for a form submission
func BookingForm(props components.BookingFormProps) templ.Component {
	return components.Templ(components.BookingForm(props))
}
