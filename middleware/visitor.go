package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	VisitorCookieName = "cc_visitor"
	visitorContextKey = "visitor_id"
	visitorCookieTTL  = 30 * 24 * time.Hour
)

// Visitor assigns every browser a stable random ID, used to find its booking form
func Visitor(secure bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := ""
			if cookie, err := c.Cookie(VisitorCookieName); err == nil {
				if parsed, err := uuid.Parse(cookie.Value); err == nil {
					id = parsed.String()
				}
			}

			if id == "" {
				id = uuid.New().String()
				c.SetCookie(&http.Cookie{
					Name:     VisitorCookieName,
					Value:    id,
					Path:     "/",
					Expires:  time.Now().Add(visitorCookieTTL),
					HttpOnly: true,
					Secure:   secure,
					SameSite: http.SameSiteLaxMode,
				})
			}

			c.Set(visitorContextKey, id)
			return next(c)
		}
	}
}

// GetVisitorID returns the visitor ID set by the Visitor middleware
func GetVisitorID(c echo.Context) string {
	if id, ok := c.Get(visitorContextKey).(string); ok {
		return id
	}
	return ""
}
