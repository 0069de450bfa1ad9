package middleware

import (
	"crypto/subtle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/crypto/bcrypt"
)

const adminRealm = "Chimney Care operator"

// RequireAdmin protects operator routes with HTTP basic auth.
// passwordHash is a bcrypt hash (htpasswd -bnBC 10 "" secret).
func RequireAdmin(user, passwordHash string) echo.MiddlewareFunc {
	return echomiddleware.BasicAuthWithConfig(echomiddleware.BasicAuthConfig{
		Realm: adminRealm,
		Validator: func(username, password string, c echo.Context) (bool, error) {
			if !CheckAdminCredentials(user, passwordHash, username, password) {
				c.Logger().Warnf("Rejected operator login for %q from %s", username, c.RealIP())
				return false, nil
			}
			return true, nil
		},
	})
}

// CheckAdminCredentials compares the supplied credentials with the configured ones
func CheckAdminCredentials(user, passwordHash, username, password string) bool {
	if user == "" || passwordHash == "" {
		return false
	}
	userOK := subtle.ConstantTimeCompare([]byte(user), []byte(username)) == 1
	passOK := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password)) == nil
	return userOK && passOK
}
