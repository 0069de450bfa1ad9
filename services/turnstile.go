package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

var turnstileVerifyURL = "https://challenges.cloudflare.com/turnstile/v0/siteverify"

var turnstileClient = resty.New().SetTimeout(10 * time.Second).SetRetryCount(0)

type TurnstileResponse struct {
	Success     bool      `json:"success"`
	ChallengeTS time.Time `json:"challenge_ts"`
	Hostname    string    `json:"hostname"`
	ErrorCodes  []string  `json:"error-codes"`
}

// VerifyTurnstileToken checks a widget token with Cloudflare before a lead
// is submitted
func VerifyTurnstileToken(ctx context.Context, token, secretKey, ip string) (bool, error) {
	if token == "" || secretKey == "" {
		return false, fmt.Errorf("missing token or secret key")
	}

	resp, err := turnstileClient.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"secret":   secretKey,
			"response": token,
			"remoteip": ip,
		}).
		Post(turnstileVerifyURL)
	if err != nil {
		return false, fmt.Errorf("failed to verify token: %w", err)
	}

	var result TurnstileResponse
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return false, fmt.Errorf("failed to decode turnstile response (HTTP %d): %w", resp.StatusCode(), err)
	}

	if !result.Success {
		return false, fmt.Errorf("turnstile verification failed, error codes: %v", result.ErrorCodes)
	}

	return true, nil
}
