package services

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"strings"
	"time"

	"chimney_care_go/models"

	"github.com/go-resty/resty/v2"
	"github.com/microcosm-cc/bluemonday"
)

const (
	// LeadsPath is appended to the configured backend base URL
	LeadsPath = "/api/leads"

	FallbackSubmitMessage     = "Failed to submit"
	UnreachableSubmitMessage  = "Failed to reach the booking service. Please try again."
	UnexpectedResponseMessage = "Unexpected response from the booking service"
	defaultLeadAPITimeout     = 30 * time.Second
)

// SubmissionError describes a failed lead submission.
// StatusCode is 0 when no response was received.
type SubmissionError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *SubmissionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("lead submission failed: %s: %v", e.Message, e.Err)
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("lead submission failed (HTTP %d): %s", e.StatusCode, e.Message)
	}
	return "lead submission failed: " + e.Message
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}

// LeadSubmitter sends a lead to the backend
type LeadSubmitter interface {
	Submit(ctx context.Context, lead models.LeadRecord) (int, error)
}

// LeadAPIClient posts leads to {baseURL}/api/leads
type LeadAPIClient struct {
	http   *resty.Client
	policy *bluemonday.Policy
}

// NewLeadAPIClient creates a client for the lead API rooted at baseURL
func NewLeadAPIClient(baseURL string, timeout time.Duration) *LeadAPIClient {
	if timeout <= 0 {
		timeout = defaultLeadAPITimeout
	}
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetRetryCount(0)

	return &LeadAPIClient{
		http:   client,
		policy: bluemonday.StrictPolicy(),
	}
}

// Submit issues exactly one POST with the record as JSON and returns the
// response status. Any failure is a *SubmissionError.
func (c *LeadAPIClient) Submit(ctx context.Context, lead models.LeadRecord) (int, error) {
	body, err := json.Marshal(lead)
	if err != nil {
		return 0, &SubmissionError{Message: FallbackSubmitMessage, Err: err}
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetBody(body).
		Post(LeadsPath)
	if err != nil {
		return 0, &SubmissionError{Message: UnreachableSubmitMessage, Err: err}
	}

	status := resp.StatusCode()

	var data interface{}
	if err := json.Unmarshal(resp.Body(), &data); err != nil {
		return status, &SubmissionError{
			StatusCode: status,
			Message:    UnexpectedResponseMessage,
			Err:        fmt.Errorf("failed to decode lead API response: %w", err),
		}
	}

	if !resp.IsSuccess() {
		return status, &SubmissionError{
			StatusCode: status,
			Message:    c.errorMessage(data),
		}
	}

	return status, nil
}

// errorMessage picks the server detail or the generic fallback
func (c *LeadAPIClient) errorMessage(data interface{}) string {
	obj, ok := data.(map[string]interface{})
	if !ok {
		return FallbackSubmitMessage
	}

	var msg string
	switch detail := obj["detail"].(type) {
	case string:
		msg = detail
	case []interface{}:
		// Validation errors: [{"loc": [...], "msg": "...", "type": "..."}]
		var parts []string
		for _, item := range detail {
			if entry, ok := item.(map[string]interface{}); ok {
				if m, ok := entry["msg"].(string); ok && strings.TrimSpace(m) != "" {
					parts = append(parts, strings.TrimSpace(m))
				}
			}
		}
		msg = strings.Join(parts, "; ")
	}

	msg = c.clean(msg)
	if msg == "" {
		return FallbackSubmitMessage
	}
	return msg
}

// clean strips markup from a server-supplied message
func (c *LeadAPIClient) clean(msg string) string {
	return strings.TrimSpace(html.UnescapeString(c.policy.Sanitize(msg)))
}
