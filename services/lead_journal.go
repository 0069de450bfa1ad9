package services

import (
	"fmt"
	"io"
	"log"

	"chimney_care_go/models"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

const (
	DefaultAttemptLimit = 100
	MaxAttemptLimit     = 500
)

// AttemptContext carries request metadata for the journal
type AttemptContext struct {
	VisitorID string
	IPAddress string
	UserAgent string
}

// NewLeadAttempt builds a journal row from a settled submission
func NewLeadAttempt(ctx AttemptContext, sub Submission) models.LeadAttempt {
	return models.LeadAttempt{
		VisitorID:      ctx.VisitorID,
		Name:           sub.Record.Name,
		Phone:          sub.Record.Phone,
		Email:          sub.Record.Email,
		City:           sub.Record.City,
		PreferredDate:  sub.Record.PreferredDate,
		Message:        sub.Record.Message,
		Outcome:        sub.Outcome.Kind,
		OutcomeMessage: sub.Outcome.Message,
		StatusCode:     sub.StatusCode,
		DurationMs:     sub.Duration.Milliseconds(),
		IPAddress:      ctx.IPAddress,
		UserAgent:      ctx.UserAgent,
	}
}

// RecordLeadAttempt stores one attempt
func RecordLeadAttempt(db *gorm.DB, attempt *models.LeadAttempt) error {
	if db == nil {
		return fmt.Errorf("database not initialized")
	}
	if err := db.Create(attempt).Error; err != nil {
		return fmt.Errorf("failed to record lead attempt: %w", err)
	}
	return nil
}

// LogLeadAttempt records the attempt asynchronously; failures are only logged
func LogLeadAttempt(db *gorm.DB, ctx AttemptContext, sub Submission) {
	// Run in goroutine to avoid blocking the request
	go func() {
		attempt := NewLeadAttempt(ctx, sub)
		if err := RecordLeadAttempt(db, &attempt); err != nil {
			log.Printf("[JOURNAL] %v", err)
		}
	}()
}

// ListLeadAttempts returns the most recent attempts, newest first
func ListLeadAttempts(db *gorm.DB, limit int) ([]models.LeadAttempt, error) {
	if limit <= 0 {
		limit = DefaultAttemptLimit
	}
	if limit > MaxAttemptLimit {
		limit = MaxAttemptLimit
	}

	var attempts []models.LeadAttempt
	if err := db.Order("created_at DESC").Limit(limit).Find(&attempts).Error; err != nil {
		return nil, fmt.Errorf("failed to list lead attempts: %w", err)
	}
	return attempts, nil
}

var attemptColumns = []string{
	"Created At", "Outcome", "Message", "HTTP Status", "Duration (ms)",
	"Name", "Phone", "Email", "City", "Preferred Date", "Request", "IP Address",
}

// ExportLeadAttemptsXLSX writes the attempts as a spreadsheet
func ExportLeadAttemptsXLSX(w io.Writer, attempts []models.LeadAttempt) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Attempts"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	for i, title := range attemptColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, title)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	for i, a := range attempts {
		row := []interface{}{
			a.CreatedAt.Format("2006-01-02 15:04:05"),
			string(a.Outcome),
			a.OutcomeMessage,
			a.StatusCode,
			a.DurationMs,
			a.Name,
			a.Phone,
			a.Email,
			a.City,
			a.PreferredDate,
			a.Message,
			a.IPAddress,
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	f.SetColWidth(sheet, "A", "A", 20)
	f.SetColWidth(sheet, "C", "C", 40)
	f.SetColWidth(sheet, "K", "K", 50)

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write spreadsheet: %w", err)
	}
	return nil
}
