package components

import (
	"chimney_care_go/models"
	"chimney_care_go/services"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const (
	BookingFormID = "booking-form"
	OutcomeID     = "lead-outcome"

	SubmitLabel     = "Request callback"
	SubmittingLabel = "Submitting..."

	inputClass = "mt-1 w-full border rounded-md px-3 py-2 focus:outline-none focus:ring-2 focus:ring-amber-500"
)

type bookingField struct {
	Field       models.LeadField
	Label       string
	Placeholder string
	Type        string
	Required    bool
	Multiline   bool
}

var bookingFields = []bookingField{
	{Field: models.LeadFieldName, Label: "Name", Placeholder: "Your name", Required: true},
	{Field: models.LeadFieldPhone, Label: "Phone", Placeholder: "Phone number", Required: true},
	{Field: models.LeadFieldEmail, Label: "Email (optional)", Placeholder: "you@example.com", Type: "email"},
	{Field: models.LeadFieldCity, Label: "City/Area", Placeholder: "Your city"},
	{Field: models.LeadFieldPreferredDate, Label: "Preferred date", Placeholder: "YYYY-MM-DD"},
	{Field: models.LeadFieldMessage, Label: "Message", Placeholder: "Describe issues: heavy oil, smell, low suction...", Multiline: true},
}

var bookingPerks = []string{
	"Average visit time: 45–90 minutes",
	"Eco-safe degreasers used",
	"Upfront pricing, no surprises",
}

// BookingFormProps carries everything the form fragment needs to render
type BookingFormProps struct {
	State            services.LeadFormState
	CSRFToken        string
	TurnstileSiteKey string
}

func BookingSection(props BookingFormProps) g.Node {
	return Section(
		ID("book"),
		Class("bg-white/80 border-t"),
		Div(
			Class("max-w-6xl mx-auto px-4 py-12 grid md:grid-cols-2 gap-10"),
			Div(
				H2(Class("text-3xl font-extrabold"), g.Text("Book a cleaning")),
				P(Class("mt-3 text-slate-700"),
					g.Text("Share your details and a photo/video of the oily filter if possible. Our expert will call you back with an exact quote.")),
				Ul(
					Class("mt-6 space-y-2 text-sm"),
					g.Map(bookingPerks, func(p string) g.Node {
						return Li(g.Text("• " + p))
					}),
				),
			),
			BookingForm(props),
		),
	)
}

// BookingForm is swapped as a whole after every submission. Without
// JavaScript it still posts to /lead.
func BookingForm(props BookingFormProps) g.Node {
	state := props.State

	return Form(
		ID(BookingFormID),
		g.Attr("method", "post"),
		g.Attr("action", "/lead"),
		g.Attr("hx-post", "/htmx/lead/submit"),
		g.Attr("hx-target", "#"+BookingFormID),
		g.Attr("hx-swap", "outerHTML"),
		g.Attr("hx-disabled-elt", "find button[type='submit']"),
		Class("group bg-white rounded-xl border p-6 shadow"),
		Input(Type("hidden"), Name("_csrf"), Value(props.CSRFToken)),
		Div(
			Class("grid sm:grid-cols-2 gap-4"),
			g.Map(bookingFields, func(f bookingField) g.Node {
				return bookingInput(f, state.Record.Get(f.Field))
			}),
		),
		g.If(props.TurnstileSiteKey != "",
			Div(Class("cf-turnstile mt-4"), g.Attr("data-sitekey", props.TurnstileSiteKey)),
		),
		LeadOutcome(state.Outcome),
		submitButton(state.Submitting),
		P(Class("text-xs text-slate-500 text-center mt-2"), g.Text("We respond within 10 minutes during working hours.")),
	)
}

// LeadOutcome is the status line under the form. It is always rendered so
// error fragments can be retargeted into it.
func LeadOutcome(outcome *services.SubmissionOutcome) g.Node {
	if outcome == nil {
		return Div(ID(OutcomeID), g.Attr("role", "status"))
	}

	color := "bg-red-50 text-red-700 border-red-200"
	if outcome.IsSuccess() {
		color = "bg-emerald-50 text-emerald-700 border-emerald-200"
	}
	return Div(
		ID(OutcomeID),
		g.Attr("role", "status"),
		g.Attr("data-kind", string(outcome.Kind)),
		Class("mt-4 text-sm rounded-md px-3 py-2 border "+color),
		g.Text(outcome.Message),
	)
}

func bookingInput(f bookingField, value string) g.Node {
	name := string(f.Field)
	id := "lead-" + name

	attrs := []g.Node{
		ID(id),
		Name(name),
		g.Attr("placeholder", f.Placeholder),
		g.Attr("hx-post", "/htmx/lead/field/"+name),
		g.Attr("hx-trigger", "input changed delay:150ms"),
		g.Attr("hx-swap", "none"),
		Class(inputClass),
		g.If(f.Required, g.Attr("required")),
	}

	var control g.Node
	if f.Multiline {
		control = Textarea(g.Group(attrs), g.Attr("rows", "4"), g.Text(value))
	} else {
		inputType := f.Type
		if inputType == "" {
			inputType = "text"
		}
		control = Input(g.Group(attrs), Type(inputType), Value(value))
	}

	return Div(
		g.If(f.Multiline, Class("sm:col-span-2")),
		Label(g.Attr("for", id), Class("text-sm font-medium"), g.Text(f.Label)),
		control,
	)
}

func submitButton(submitting bool) g.Node {
	return Button(
		Type("submit"),
		g.If(submitting, g.Attr("disabled")),
		Class("mt-4 w-full bg-amber-600 hover:bg-amber-700 disabled:opacity-60 text-white font-semibold px-4 py-2 rounded-md"),
		g.If(submitting, g.Text(SubmittingLabel)),
		g.If(!submitting, g.Group([]g.Node{
			Span(Class("group-[.htmx-request]:hidden"), g.Text(SubmitLabel)),
			Span(Class("hidden group-[.htmx-request]:inline"), g.Text(SubmittingLabel)),
		})),
	)
}
