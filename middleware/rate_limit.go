package middleware

import (
	"html"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
)

// RateLimitConfig defines the configuration for rate limiting
type RateLimitConfig struct {
	// Requests is the maximum number of requests allowed within the window
	Requests int
	// Window is the time window for rate limiting
	Window time.Duration
	// KeyFunc is a function that returns a unique key for rate limiting (defaults to IP)
	KeyFunc func(c echo.Context) string
	// Message is the error message returned when rate limit is exceeded
	Message string
	// HTMXTarget, when set, retargets htmx error fragments to this selector
	HTMXTarget string
}

// rateLimitEntry tracks request count and window expiration
type rateLimitEntry struct {
	count     int
	expiresAt time.Time
}

// RateLimiter is a fixed-window, per-key rate limiter
type RateLimiter struct {
	config RateLimitConfig
	store  map[string]*rateLimitEntry
	mu     sync.Mutex
}

// NewRateLimiter creates a new rate limiter with the given configuration
func NewRateLimiter(config RateLimitConfig) *RateLimiter {
	if config.KeyFunc == nil {
		config.KeyFunc = func(c echo.Context) string {
			return c.RealIP()
		}
	}
	if config.Message == "" {
		config.Message = "Too many requests. Please try again later."
	}

	rl := &RateLimiter{
		config: config,
		store:  make(map[string]*rateLimitEntry),
	}

	go rl.cleanup()

	return rl
}

// Allow counts one request for key and reports whether it is within the limit
func (rl *RateLimiter) Allow(key string, now time.Time) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	entry, exists := rl.store[key]
	if !exists || now.After(entry.expiresAt) {
		rl.store[key] = &rateLimitEntry{count: 1, expiresAt: now.Add(rl.config.Window)}
		return true
	}

	if entry.count >= rl.config.Requests {
		return false
	}
	entry.count++
	return true
}

// Middleware returns the rate limiting middleware
func (rl *RateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if rl.Allow(rl.config.KeyFunc(c), time.Now()) {
				return next(c)
			}

			if IsHTMX(c) {
				if rl.config.HTMXTarget != "" {
					c.Response().Header().Set("HX-Retarget", rl.config.HTMXTarget)
					c.Response().Header().Set("HX-Reswap", "outerHTML")
				}
				return c.HTML(http.StatusTooManyRequests, ErrorFragment(rl.config.HTMXTarget, rl.config.Message))
			}
			return echo.NewHTTPError(http.StatusTooManyRequests, rl.config.Message)
		}
	}
}

// cleanup removes expired entries every minute
func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(1 * time.Minute)
	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for key, entry := range rl.store {
			if now.After(entry.expiresAt) {
				delete(rl.store, key)
			}
		}
		rl.mu.Unlock()
	}
}

// IsHTMX reports whether the request was issued by htmx
func IsHTMX(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true"
}

// ErrorFragment renders an inline error message. A "#id" target becomes the
// element id so htmx can swap it in place.
func ErrorFragment(target, message string) string {
	id := ""
	if len(target) > 1 && target[0] == '#' {
		id = ` id="` + html.EscapeString(target[1:]) + `"`
	}
	return `<div` + id + ` role="alert" class="mt-4 text-sm rounded-md px-3 py-2 border bg-red-50 text-red-700 border-red-200">` +
		html.EscapeString(message) + `</div>`
}

// LeadSubmitRateLimiter limits lead submissions to 10 per minute per IP
var LeadSubmitRateLimiter = NewRateLimiter(RateLimitConfig{
	Requests:   10,
	Window:     1 * time.Minute,
	Message:    "Too many form submissions. Please wait before trying again.",
	HTMXTarget: "#lead-outcome",
})
