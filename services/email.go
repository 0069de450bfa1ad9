package services

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"log"
	"strings"
	texttemplate "text/template"
	"time"

	"chimney_care_go/config"
	"chimney_care_go/models"

	"github.com/resend/resend-go/v2"
)

//go:embed emails/*
var emailTemplates embed.FS

// Email represents an email message
type Email struct {
	To       []string
	Subject  string
	HTMLBody string
	TextBody string
}

// SendEmail sends an email using Resend API
func SendEmail(cfg *config.Config, email *Email) error {
	// In development mode, log the email instead of sending
	if cfg.EmailTestMode {
		logEmailToConsole(email)
		log.Printf("✅ Email logged successfully (development mode - not actually sent)")
		return nil
	}

	if cfg.ResendAPIKey == "" {
		return fmt.Errorf("RESEND_API_KEY not configured")
	}

	client := resend.NewClient(cfg.ResendAPIKey)

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", cfg.EmailFromName, cfg.EmailFrom),
		To:      email.To,
		Subject: email.Subject,
		Html:    email.HTMLBody,
		Text:    email.TextBody,
	}

	if params.Html == "" && params.Text == "" {
		return fmt.Errorf("email must have either HTMLBody or TextBody")
	}

	sent, err := client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send email via Resend: %w", err)
	}

	log.Printf("Email sent successfully via Resend (ID: %s) to: %v", sent.Id, email.To)
	return nil
}

// logEmailToConsole logs email details to console in development mode
func logEmailToConsole(email *Email) {
	separator := strings.Repeat("=", 80)
	log.Printf("\n%s\n📧 EMAIL (Development Mode - Not Actually Sent)\n%s", separator, separator)
	log.Printf("To: %v", email.To)
	log.Printf("Subject: %s", email.Subject)
	log.Printf("\n--- TEXT BODY ---\n%s", email.TextBody)
	log.Printf("%s\n", separator)
}

// SendEmailAsync sends an email in a goroutine so handlers don't block
func SendEmailAsync(cfg *config.Config, email *Email) {
	emailCopy := &Email{
		To:       append([]string{}, email.To...),
		Subject:  email.Subject,
		HTMLBody: email.HTMLBody,
		TextBody: email.TextBody,
	}

	go func(cfg *config.Config, email *Email) {
		if err := SendEmail(cfg, email); err != nil {
			log.Printf("Error sending async email: %v", err)
		}
	}(cfg, emailCopy)
}

// LeadEmailData is the template data for the operator notification
type LeadEmailData struct {
	models.LeadRecord
	ReceivedAt string
}

// BuildLeadReceivedEmail creates the notification sent to the operator
func BuildLeadReceivedEmail(to string, lead models.LeadRecord, receivedAt time.Time) (*Email, error) {
	data := LeadEmailData{
		LeadRecord: lead,
		ReceivedAt: receivedAt.Format("Jan 2, 2006 15:04 MST"),
	}

	htmlTmpl, err := htmltemplate.ParseFS(emailTemplates, "emails/lead_received.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse html template: %w", err)
	}
	textTmpl, err := texttemplate.ParseFS(emailTemplates, "emails/lead_received.txt")
	if err != nil {
		return nil, fmt.Errorf("failed to parse text template: %w", err)
	}

	var htmlBuf, textBuf bytes.Buffer
	if err := htmlTmpl.Execute(&htmlBuf, data); err != nil {
		return nil, fmt.Errorf("failed to execute html template: %w", err)
	}
	if err := textTmpl.Execute(&textBuf, data); err != nil {
		return nil, fmt.Errorf("failed to execute text template: %w", err)
	}

	subject := "New callback request"
	if name := strings.TrimSpace(lead.Name); name != "" {
		subject += " from " + name
	}

	return &Email{
		To:       []string{to},
		Subject:  subject,
		HTMLBody: htmlBuf.String(),
		TextBody: textBuf.String(),
	}, nil
}

// NotifyLeadReceived emails the operator about an accepted lead, if configured
func NotifyLeadReceived(cfg *config.Config, lead models.LeadRecord) {
	if cfg == nil || cfg.LeadNotifyEmail == "" {
		return
	}

	email, err := BuildLeadReceivedEmail(cfg.LeadNotifyEmail, lead, time.Now())
	if err != nil {
		log.Printf("Error building lead notification: %v", err)
		return
	}
	SendEmailAsync(cfg, email)
}
