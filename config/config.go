package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DefaultBackendURL is the lead API root used when BACKEND_URL is unset
	DefaultBackendURL = "http://localhost:8000"
)

type Config struct {
	ServerPort  string
	Environment string
	AppURL      string
	StaticDir   string
	// Lead API
	BackendURL     string
	LeadAPITimeout time.Duration
	LeadFormTTL    time.Duration
	// Database (local SQLite, or Turso when the URL is set)
	DBPath           string
	TursoDatabaseURL string
	TursoAuthToken   string
	// Email (Resend)
	ResendAPIKey    string
	EmailFrom       string
	EmailFromName   string
	EmailTestMode   bool // When true, emails are logged to console instead of sent
	LeadNotifyEmail string
	// Cloudflare Turnstile
	TurnstileSiteKey   string
	TurnstileSecretKey string
	// Cloudflare R2 Storage
	R2AccountID       string
	R2AccessKeyID     string
	R2SecretAccessKey string
	R2BucketName      string
	R2PublicURL       string
	// Before/after visuals (storage keys, optional)
	ComparisonBeforeImage string
	ComparisonAfterImage  string
	// Operator area
	AdminUser         string
	AdminPasswordHash string
	// Other
	AllowedOrigins []string
}

func Load() *Config {
	// Load .env file (ignore error if not present - use system env vars)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	return &Config{
		ServerPort:            getEnv("SERVER_PORT", "8080"),
		Environment:           getEnv("ENVIRONMENT", "development"),
		AppURL:                strings.TrimRight(getEnv("APP_URL", "http://localhost:8080"), "/"),
		StaticDir:             getEnv("STATIC_DIR", "static"),
		BackendURL:            NormalizeBaseURL(getEnv("BACKEND_URL", DefaultBackendURL)),
		LeadAPITimeout:        getEnvDuration("LEAD_API_TIMEOUT", 30*time.Second),
		LeadFormTTL:           getEnvDuration("LEAD_FORM_TTL", 2*time.Hour),
		DBPath:                getEnv("DB_PATH", "db/app.db"),
		TursoDatabaseURL:      getEnv("TURSO_DATABASE_URL", ""),
		TursoAuthToken:        getEnv("TURSO_AUTH_TOKEN", ""),
		ResendAPIKey:          getEnv("RESEND_API_KEY", ""),
		EmailFrom:             getEnv("EMAIL_FROM", "noreply@chimneycare.example"),
		EmailFromName:         getEnv("EMAIL_FROM_NAME", "Chimney Care"),
		EmailTestMode:         getEnvBool("EMAIL_TEST_MODE", true), // Default true for safety
		LeadNotifyEmail:       getEnv("LEAD_NOTIFY_EMAIL", ""),
		TurnstileSiteKey:      getEnv("TURNSTILE_SITE_KEY", ""),
		TurnstileSecretKey:    getEnv("TURNSTILE_SECRET_KEY", ""),
		R2AccountID:           getEnv("R2_ACCOUNT_ID", ""),
		R2AccessKeyID:         getEnv("R2_ACCESS_KEY_ID", ""),
		R2SecretAccessKey:     getEnv("R2_SECRET_ACCESS_KEY", ""),
		R2BucketName:          getEnv("R2_BUCKET_NAME", ""),
		R2PublicURL:           getEnv("R2_PUBLIC_URL", ""),
		ComparisonBeforeImage: getEnv("COMPARISON_BEFORE_IMAGE", ""),
		ComparisonAfterImage:  getEnv("COMPARISON_AFTER_IMAGE", ""),
		AdminUser:             getEnv("ADMIN_USER", "admin"),
		AdminPasswordHash:     getEnv("ADMIN_PASSWORD_HASH", ""),
		AllowedOrigins:        strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
	}
}

// NormalizeBaseURL trims whitespace and trailing slashes so paths can be appended
func NormalizeBaseURL(raw string) string {
	base := strings.TrimRight(strings.TrimSpace(raw), "/")
	if base == "" {
		return DefaultBackendURL
	}
	return base
}

// AdminEnabled reports whether the operator routes should be mounted
func (c *Config) AdminEnabled() bool {
	return c.AdminUser != "" && c.AdminPasswordHash != ""
}

// TurnstileEnabled reports whether lead submissions must carry a CAPTCHA token
func (c *Config) TurnstileEnabled() bool {
	return c.TurnstileSecretKey != ""
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Printf("Using default value for %s: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	// Accept common boolean representations
	switch strings.ToLower(value) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return defaultValue
	}
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		log.Printf("[WARNING] Invalid duration for %s (%q), using %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}
