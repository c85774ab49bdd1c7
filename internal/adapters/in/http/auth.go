package http

import (
	"crypto/subtle"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/crypto/bcrypt"
)

// principalContextKey is where the authenticated admin's email is stored on
// the request context.
const principalContextKey = "principal"

// CredentialVerifier checks admin credentials against a single configured
// account. The password is stored as a bcrypt hash, never in plain text.
type CredentialVerifier struct {
	adminEmail   string
	passwordHash []byte
}

// NewCredentialVerifier creates a verifier for the configured admin account.
func NewCredentialVerifier(adminEmail, passwordHash string) CredentialVerifier {
	return CredentialVerifier{
		adminEmail:   adminEmail,
		passwordHash: []byte(passwordHash),
	}
}

// Verify reports whether the given credentials match the admin account.
// Both checks always run so a wrong email costs the same as a wrong password.
func (v CredentialVerifier) Verify(email, password string) bool {
	emailMatches := subtle.ConstantTimeCompare([]byte(email), []byte(v.adminEmail)) == 1
	passwordMatches := bcrypt.CompareHashAndPassword(v.passwordHash, []byte(password)) == nil

	return emailMatches && passwordMatches
}

// BasicAuthMiddleware guards the API with HTTP basic auth backed by the
// credential verifier. On success the admin's email is stored on the request
// context under the principal key.
func BasicAuthMiddleware(verifier CredentialVerifier) echo.MiddlewareFunc {
	return middleware.BasicAuth(func(email, password string, ctx echo.Context) (bool, error) {
		if !verifier.Verify(email, password) {
			return false, nil
		}

		ctx.Set(principalContextKey, email)
		return true, nil
	})
}

// Principal returns the authenticated admin's email, or an empty string when
// the request did not pass through the auth middleware.
func Principal(ctx echo.Context) string {
	principal, _ := ctx.Get(principalContextKey).(string)
	return principal
}
