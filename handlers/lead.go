package handlers

import (
	"context"
	"errors"
	"net/http"

	"chimney_care_go/config"
	"chimney_care_go/db"
	"chimney_care_go/middleware"
	"chimney_care_go/models"
	"chimney_care_go/services"
	"chimney_care_go/templates/components"
	"chimney_care_go/templates/partials"

	"github.com/labstack/echo/v4"
)

// CaptchaFailedMessage is shown when the Turnstile check does not pass
const CaptchaFailedMessage = "Please complete the CAPTCHA verification and try again."

func leadForm(c echo.Context) *services.LeadForm {
	return services.LeadForms.Get(middleware.GetVisitorID(c))
}

func turnstileSiteKey(cfg *config.Config) string {
	if !cfg.TurnstileEnabled() {
		return ""
	}
	return cfg.TurnstileSiteKey
}

// LeadFieldHTMX applies a single field edit
func LeadFieldHTMX(c echo.Context) error {
	field := models.LeadField(c.Param("field"))
	if !field.IsValid() {
		if middleware.IsHTMX(c) {
			c.Response().Header().Set("HX-Reswap", "none")
			return c.String(http.StatusBadRequest, services.ErrUnknownLeadField.Error())
		}
		return echo.NewHTTPError(http.StatusBadRequest, services.ErrUnknownLeadField.Error())
	}

	if err := leadForm(c).HandleChange(field, c.FormValue(string(field))); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

// LeadSubmitHTMX submits the form and returns the updated form fragment
func LeadSubmitHTMX(c echo.Context) error {
	cfg := getConfig(c)
	form := leadForm(c)

	if err := submitLead(c, cfg, form); err != nil && !errors.Is(err, services.ErrSubmissionInFlight) {
		return err
	}

	return render(c, partials.BookingForm(components.BookingFormProps{
		State:            form.Snapshot(),
		CSRFToken:        middleware.GetCSRFToken(c),
		TurnstileSiteKey: turnstileSiteKey(cfg),
	}))
}

// LeadSubmitHandler is the no-JavaScript fallback: the outcome is kept on the
// visitor's form and shown after the redirect.
func LeadSubmitHandler(c echo.Context) error {
	err := submitLead(c, getConfig(c), leadForm(c))
	if errors.Is(err, services.ErrSubmissionInFlight) {
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	}
	if err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/#book")
}

// submitLead applies the posted fields, checks the CAPTCHA and submits once.
// Only ErrSubmissionInFlight is returned for a request the form refused.
func submitLead(c echo.Context, cfg *config.Config, form *services.LeadForm) error {
	if form.Snapshot().Submitting {
		services.LeadSubmissionsRejected.WithLabelValues("in_flight").Inc()
		return services.ErrSubmissionInFlight
	}

	params, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid form data")
	}
	for _, field := range models.LeadFields {
		if values, ok := params[string(field)]; ok && len(values) > 0 {
			_ = form.HandleChange(field, values[0])
		}
	}

	if cfg.TurnstileEnabled() {
		token := c.FormValue("cf-turnstile-response")
		if ok, err := services.VerifyTurnstileToken(c.Request().Context(), token, cfg.TurnstileSecretKey, c.RealIP()); !ok {
			c.Logger().Warnf("Turnstile verification failed: %v", err)
			services.LeadSubmissionsRejected.WithLabelValues("captcha").Inc()
			form.Fail(CaptchaFailedMessage)
			return nil
		}
	}

	// The lead call outlives a client that navigates away mid-request
	ctx := context.WithoutCancel(c.Request().Context())
	sub, err := form.HandleSubmit(ctx)
	if err != nil {
		services.LeadSubmissionsRejected.WithLabelValues("in_flight").Inc()
		return err
	}
	services.ObserveSubmission(sub)

	services.LogLeadAttempt(db.DB, services.AttemptContext{
		VisitorID: middleware.GetVisitorID(c),
		IPAddress: c.RealIP(),
		UserAgent: c.Request().UserAgent(),
	}, sub)

	if sub.Outcome.IsSuccess() {
		services.NotifyLeadReceived(cfg, sub.Record)
	} else {
		c.Logger().Infof("Lead submission failed (status %d): %s", sub.StatusCode, sub.Outcome.Message)
	}
	return nil
}
