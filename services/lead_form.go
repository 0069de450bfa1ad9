package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"chimney_care_go/models"
)

// SubmitConfirmationMessage is shown after the lead API accepts a submission
const SubmitConfirmationMessage = "Thanks! We will call you shortly to confirm your service."

var (
	ErrSubmissionInFlight = errors.New("a submission is already in progress")
	ErrUnknownLeadField   = errors.New("unknown lead field")
)

// SubmissionOutcome is the result of the last submission attempt
type SubmissionOutcome struct {
	Kind    models.OutcomeKind
	Message string
}

func (o SubmissionOutcome) IsSuccess() bool { return o.Kind == models.OutcomeSuccess }

// LeadFormState is a point-in-time copy of a form for rendering.
// Outcome is nil when no attempt has settled since the last submit.
type LeadFormState struct {
	Record     models.LeadRecord
	Submitting bool
	Outcome    *SubmissionOutcome
}

// Submission describes one settled HandleSubmit call
type Submission struct {
	Record     models.LeadRecord
	Outcome    SubmissionOutcome
	StatusCode int
	Duration   time.Duration
}

// LeadForm holds one visitor's booking form: the record being edited, the
// in-flight flag and the last outcome.
type LeadForm struct {
	submitter LeadSubmitter

	mu         sync.Mutex
	record     models.LeadRecord
	submitting bool
	outcome    *SubmissionOutcome
	lastSeen   time.Time
}

// NewLeadForm creates an empty form that submits through s
func NewLeadForm(s LeadSubmitter) *LeadForm {
	return &LeadForm{submitter: s, lastSeen: time.Now()}
}

// HandleChange replaces a single field, leaving the others untouched
func (f *LeadForm) HandleChange(field models.LeadField, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.lastSeen = time.Now()
	updated, ok := f.record.With(field, value)
	if !ok {
		return ErrUnknownLeadField
	}
	f.record = updated
	return nil
}

// HandleSubmit sends the current record to the lead API once.
// The form is cleared on success and kept as-is on failure. Failures are
// reported through the outcome, never as an error; the only error is
// ErrSubmissionInFlight, returned without contacting the API.
func (f *LeadForm) HandleSubmit(ctx context.Context) (Submission, error) {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return Submission{}, ErrSubmissionInFlight
	}
	f.submitting = true
	f.outcome = nil
	f.lastSeen = time.Now()
	record := f.record
	f.mu.Unlock()

	sub := Submission{Record: record}
	defer func() {
		f.mu.Lock()
		f.submitting = false
		f.lastSeen = time.Now()
		f.mu.Unlock()
	}()

	start := time.Now()
	status, err := f.submitter.Submit(ctx, record)
	sub.Duration = time.Since(start)
	sub.StatusCode = status

	f.mu.Lock()
	defer f.mu.Unlock()

	if err != nil {
		sub.Outcome = SubmissionOutcome{Kind: models.OutcomeError, Message: submissionMessage(err)}
	} else {
		sub.Outcome = SubmissionOutcome{Kind: models.OutcomeSuccess, Message: SubmitConfirmationMessage}
		f.record = models.LeadRecord{}
	}
	outcome := sub.Outcome
	f.outcome = &outcome

	return sub, nil
}

// Fail records an error outcome without calling the lead API, for requests
// rejected before submission (e.g. CAPTCHA).
func (f *LeadForm) Fail(message string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.lastSeen = time.Now()
	f.outcome = &SubmissionOutcome{Kind: models.OutcomeError, Message: message}
}

// Snapshot copies the current state
func (f *LeadForm) Snapshot() LeadFormState {
	f.mu.Lock()
	defer f.mu.Unlock()

	state := LeadFormState{Record: f.record, Submitting: f.submitting}
	if f.outcome != nil {
		outcome := *f.outcome
		state.Outcome = &outcome
	}
	return state
}

// idleSince reports whether the form can be evicted
func (f *LeadForm) idleSince(cutoff time.Time) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return !f.submitting && f.lastSeen.Before(cutoff)
}

func submissionMessage(err error) string {
	var subErr *SubmissionError
	if errors.As(err, &subErr) && subErr.Message != "" {
		return subErr.Message
	}
	return FallbackSubmitMessage
}
