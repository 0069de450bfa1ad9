package middleware

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// GetCSRFToken returns the token echo's CSRF middleware stored for this
// request. The layout puts it in hx-headers and the booking form carries it
// as _csrf for the no-JavaScript post. Empty when the middleware is not
// mounted.
func GetCSRFToken(c echo.Context) string {
	token, _ := c.Get(echomiddleware.DefaultCSRFConfig.ContextKey).(string)
	return token
}
