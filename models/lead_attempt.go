package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OutcomeKind tags a submission result
type OutcomeKind string

const (
	OutcomeSuccess OutcomeKind = "success"
	OutcomeError   OutcomeKind = "error"
)

// LeadAttempt is an immutable journal row for one submission attempt
type LeadAttempt struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `gorm:"index:idx_lead_attempt_created_at" json:"created_at"`

	VisitorID string `gorm:"type:varchar(36);index" json:"visitor_id"`

	// Submitted record (denormalized)
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Email         string `json:"email,omitempty"`
	City          string `json:"city,omitempty"`
	PreferredDate string `json:"preferred_date,omitempty"`
	Message       string `gorm:"type:text" json:"message,omitempty"`

	// Result
	Outcome        OutcomeKind `gorm:"not null;index" json:"outcome"`
	OutcomeMessage string      `gorm:"type:text" json:"outcome_message"`
	StatusCode     int         `json:"status_code"` // 0 when the lead API was not reached
	DurationMs     int64       `json:"duration_ms"`

	// Request metadata
	IPAddress string `gorm:"type:varchar(45)" json:"ip_address,omitempty"`
	UserAgent string `gorm:"type:text" json:"user_agent,omitempty"`
}

// TableName specifies the table name for LeadAttempt model
func (LeadAttempt) TableName() string {
	return "lead_attempts"
}

// BeforeCreate assigns a UUID when none is set
func (a *LeadAttempt) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return nil
}
