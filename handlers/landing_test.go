package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"chimney_care_go/config"
	"chimney_care_go/middleware"
	"chimney_care_go/services"

	"github.com/stretchr/testify/assert"
)

func TestLandingHandler(t *testing.T) {
	e := setupServer(t, &config.Config{BackendURL: "http://127.0.0.1:1"})

	t.Run("Default", func(t *testing.T) {
		rec := do(e, httptest.NewRequest(http.MethodGet, "/", nil), "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")

		body := rec.Body.String()
		assert.Contains(t, body, "Remove sticky oil. Restore fresh airflow.")
		assert.Contains(t, body, `style="width: 50%"`)
		assert.Contains(t, body, `id="booking-form"`)
		assert.Contains(t, body, "Chimney Deep Cleaning")
		assert.Contains(t, body, `<link rel="canonical" href="https://chimney.test/">`)
		assert.NotEmpty(t, rec.Header().Get("Set-Cookie"), "new visitors get a cookie")
		assert.Contains(t, rec.Header().Get("Set-Cookie"), middleware.VisitorCookieName)
	})

	t.Run("InitialPosition", func(t *testing.T) {
		rec := do(e, httptest.NewRequest(http.MethodGet, "/?pos=37", nil), "")
		assert.Contains(t, rec.Body.String(), `style="width: 37%"`)
	})

	t.Run("BadPositionFallsBack", func(t *testing.T) {
		rec := do(e, httptest.NewRequest(http.MethodGet, "/?pos=abc", nil), "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `style="width: 50%"`)
	})

	t.Run("PageViewsKeepNoFormState", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			rec := do(e, httptest.NewRequest(http.MethodGet, "/", nil), "")
			assert.Equal(t, http.StatusOK, rec.Code)
		}
		assert.Zero(t, services.LeadForms.Len())
	})
}

func TestSliderHTMX(t *testing.T) {
	e := setupServer(t, &config.Config{})

	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"Zero", "0", `style="width: 0%"`},
		{"Full", "100", `style="width: 100%"`},
		{"ClampHigh", "150", `style="width: 100%"`},
		{"ClampLow", "-5", `style="width: 0%"`},
		{"Fraction", "33.6", `style="width: 34%"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/htmx/slider?pos="+tt.query, nil)
			req.Header.Set("HX-Request", "true")
			rec := do(e, req, "")

			assert.Equal(t, http.StatusOK, rec.Code)
			body := rec.Body.String()
			assert.True(t, strings.HasPrefix(body, `<div id="comparison-layers"`))
			assert.Contains(t, body, tt.want)
			assert.NotContains(t, body, `type="range"`, "the input is never replaced")
		})
	}

	t.Run("Invalid", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/htmx/slider?pos=abc", nil)
		req.Header.Set("HX-Request", "true")
		rec := do(e, req, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "none", rec.Header().Get("HX-Reswap"))

		rec = do(e, httptest.NewRequest(http.MethodGet, "/htmx/slider?pos=abc", nil), "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestSitemapRobotsHealth(t *testing.T) {
	e := setupServer(t, &config.Config{AppURL: "https://chimney.example"})

	rec := do(e, httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil), "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
	assert.Contains(t, rec.Body.String(), "<loc>https://chimney.example/</loc>")

	rec = do(e, httptest.NewRequest(http.MethodGet, "/robots.txt", nil), "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Disallow: /admin/")
	assert.Contains(t, rec.Body.String(), "Sitemap: https://chimney.example/sitemap.xml")

	rec = do(e, httptest.NewRequest(http.MethodGet, "/health", nil), "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
