package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"chimney_care_go/db"
	"chimney_care_go/services"

	"github.com/labstack/echo/v4"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ListLeadAttemptsHandler returns the submission journal as JSON
func ListLeadAttemptsHandler(c echo.Context) error {
	attempts, err := services.ListLeadAttempts(db.DB, queryLimit(c))
	if err != nil {
		c.Logger().Errorf("Failed to list lead attempts: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load lead attempts")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"attempts": attempts,
		"count":    len(attempts),
	})
}

// ExportLeadAttemptsHandler streams the submission journal as an XLSX file
func ExportLeadAttemptsHandler(c echo.Context) error {
	attempts, err := services.ListLeadAttempts(db.DB, queryLimit(c))
	if err != nil {
		c.Logger().Errorf("Failed to list lead attempts: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load lead attempts")
	}

	filename := fmt.Sprintf("lead-attempts-%s.xlsx", time.Now().Format("20060102"))
	c.Response().Header().Set(echo.HeaderContentType, xlsxContentType)
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	c.Response().WriteHeader(http.StatusOK)

	return services.ExportLeadAttemptsXLSX(c.Response(), attempts)
}

func queryLimit(c echo.Context) int {
	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil {
		return services.DefaultAttemptLimit
	}
	return limit
}
