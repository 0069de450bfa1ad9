package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"chimney_care_go/middleware"
	"chimney_care_go/models"
	"chimney_care_go/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"golang.org/x/crypto/bcrypt"
)

func setupAdmin(t *testing.T) *echo.Echo {
	testDB := setupTestDB(t)
	for _, a := range []models.LeadAttempt{
		{Name: "Asha", Phone: "555-0101", Outcome: models.OutcomeSuccess, OutcomeMessage: services.SubmitConfirmationMessage, StatusCode: 201},
		{Name: "Ravi", Phone: "12", Outcome: models.OutcomeError, OutcomeMessage: "Phone number looks invalid", StatusCode: 400},
	} {
		attempt := a
		require.NoError(t, services.RecordLeadAttempt(testDB, &attempt))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	e := echo.New()
	admin := e.Group("/admin", middleware.RequireAdmin("admin", string(hash)))
	admin.GET("/lead-attempts", ListLeadAttemptsHandler)
	admin.GET("/lead-attempts.xlsx", ExportLeadAttemptsHandler)
	return e
}

func TestListLeadAttemptsHandler(t *testing.T) {
	e := setupAdmin(t)

	t.Run("Unauthorized", func(t *testing.T) {
		rec := do(e, httptest.NewRequest(http.MethodGet, "/admin/lead-attempts", nil), "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Authorized", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/lead-attempts?limit=1", nil)
		req.SetBasicAuth("admin", "s3cret")
		rec := do(e, req, "")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Attempts []models.LeadAttempt `json:"attempts"`
			Count    int                  `json:"count"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.Count)
		assert.Len(t, resp.Attempts, 1)
	})
}

func TestExportLeadAttemptsHandler(t *testing.T) {
	e := setupAdmin(t)

	req := httptest.NewRequest(http.MethodGet, "/admin/lead-attempts.xlsx", nil)
	req.SetBasicAuth("admin", "s3cret")
	rec := do(e, req, "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, xlsxContentType, rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "lead-attempts-")

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Attempts")
	require.NoError(t, err)
	assert.Len(t, rows, 3)
	assert.Equal(t, "Created At", rows[0][0])
}
