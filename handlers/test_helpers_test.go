package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"chimney_care_go/config"
	"chimney_care_go/db"
	"chimney_care_go/middleware"
	"chimney_care_go/models"
	"chimney_care_go/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	// Use unique shared memory name to isolate tests while allowing shared cache for async tasks
	dbName := "mem_" + uuid.New().String()
	testDB, err := gorm.Open(sqlite.Open("file:"+dbName+"?mode=memory&cache=shared&_busy_timeout=5000"), &gorm.Config{})
	assert.NoError(t, err)

	err = testDB.AutoMigrate(&models.LeadAttempt{})
	assert.NoError(t, err)

	// Set global DB
	db.DB = testDB

	return testDB
}

// leadAPI is a fake booking backend
type leadAPI struct {
	*httptest.Server
	calls atomic.Int32
}

func newLeadAPI(t *testing.T, handler http.HandlerFunc) *leadAPI {
	api := &leadAPI{}
	api.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		api.calls.Add(1)
		handler(w, r)
	}))
	t.Cleanup(api.Close)
	return api
}

func jsonResponse(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		io.WriteString(w, body)
	}
}

// setupServer wires the public routes against a lead API at backendURL
func setupServer(t *testing.T, cfg *config.Config) *echo.Echo {
	if cfg.BackendURL != "" {
		services.LeadForms = services.NewLeadFormStore(services.NewLeadAPIClient(cfg.BackendURL, 5*time.Second), time.Hour)
	}
	services.Media = nil
	if cfg.AppURL == "" {
		cfg.AppURL = "https://chimney.test"
	}

	e := echo.New()
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("config", cfg)
			return next(c)
		}
	})
	e.Use(middleware.Visitor(false))

	e.GET("/", LandingHandler)
	e.GET("/htmx/slider", SliderHTMX)
	e.POST("/htmx/lead/field/:field", LeadFieldHTMX)
	e.POST("/htmx/lead/submit", LeadSubmitHTMX)
	e.POST("/lead", LeadSubmitHandler)
	e.GET("/sitemap.xml", GetSitemapHandler)
	e.GET("/robots.txt", GetRobotsHandler)
	e.GET("/health", HealthHandler)
	return e
}

// do sends req as the given visitor
func do(e *echo.Echo, req *http.Request, visitor string) *httptest.ResponseRecorder {
	if visitor != "" {
		req.AddCookie(&http.Cookie{Name: middleware.VisitorCookieName, Value: visitor})
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func formRequest(path string, form url.Values, htmx bool) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	return req
}

func countAttempts(testDB *gorm.DB, outcome models.OutcomeKind) int64 {
	var n int64
	testDB.Model(&models.LeadAttempt{}).Where("outcome = ?", outcome).Count(&n)
	return n
}
