package main

import (
	"log"
	"strings"

	"chimney_care_go/config"
	"chimney_care_go/db"
	"chimney_care_go/handlers"
	"chimney_care_go/middleware"
	"chimney_care_go/models"
	"chimney_care_go/services"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	if err := db.Initialize(db.Options{
		Path:        cfg.DBPath,
		TursoURL:    cfg.TursoDatabaseURL,
		TursoToken:  cfg.TursoAuthToken,
		Environment: cfg.Environment,
	}); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Run migrations
	if err := db.AutoMigrate(&models.LeadAttempt{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Before/after images (R2 or local static files)
	services.InitializeMedia(cfg)

	// One booking form per visitor, all submitting to the lead API
	services.InitLeadForms(services.NewLeadAPIClient(cfg.BackendURL, cfg.LeadAPITimeout), cfg.LeadFormTTL)
	defer services.LeadForms.Close()
	log.Printf("[INFO] Lead API: %s%s", cfg.BackendURL, services.LeadsPath)

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(echomiddleware.RequestLogger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
	}))
	e.Use(echomiddleware.CSRFWithConfig(echomiddleware.CSRFConfig{
		TokenLookup:    "header:X-CSRF-Token,form:_csrf",
		CookieName:     "_csrf",
		CookiePath:     "/",
		CookieHTTPOnly: true,
		CookieSecure:   cfg.Environment == "production",
		Skipper: func(c echo.Context) bool {
			// Operator routes are protected by basic auth and only read
			return strings.HasPrefix(c.Path(), "/admin/")
		},
	}))
	e.Use(middleware.CSPNonce())
	e.Use(middleware.Visitor(cfg.Environment == "production"))

	// Make config available to handlers
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("config", cfg)
			return next(c)
		}
	})

	// Static files
	middleware.InitAssetVersions(cfg.StaticDir)
	e.Static("/static", cfg.StaticDir)

	// Public routes
	e.GET("/", handlers.LandingHandler)
	e.GET("/sitemap.xml", handlers.GetSitemapHandler)
	e.GET("/robots.txt", handlers.GetRobotsHandler)
	e.GET("/health", handlers.HealthHandler)

	// HTMX fragments
	e.GET("/htmx/slider", handlers.SliderHTMX)
	e.POST("/htmx/lead/field/:field", handlers.LeadFieldHTMX)
	e.POST("/htmx/lead/submit", handlers.LeadSubmitHTMX, middleware.LeadSubmitRateLimiter.Middleware())

	// No-JavaScript form action
	e.POST("/lead", handlers.LeadSubmitHandler, middleware.LeadSubmitRateLimiter.Middleware())

	// Operator routes
	if cfg.AdminEnabled() {
		admin := e.Group("/admin")
		admin.Use(middleware.RequireAdmin(cfg.AdminUser, cfg.AdminPasswordHash))
		{
			admin.GET("/lead-attempts", handlers.ListLeadAttemptsHandler)
			admin.GET("/lead-attempts.xlsx", handlers.ExportLeadAttemptsHandler)
			admin.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
		}
	} else {
		log.Println("[INFO] ADMIN_PASSWORD_HASH not set, operator routes disabled")
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
