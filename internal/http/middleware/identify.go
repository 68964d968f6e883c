// README: Identify middleware; attaches the Firebase caller when a valid bearer token is sent.
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"tripplanner/internal/infra"
)

const (
	ctxKeyUID   = "uid"
	ctxKeyEmail = "email"
)

// Identify never rejects a request. A missing, malformed or unverifiable token leaves the
// caller anonymous; a nil verifier disables the check entirely.
func Identify(verifier infra.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if verifier == nil {
			c.Next()
			return
		}
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			c.Next()
			return
		}
		id, err := verifier.VerifyIDToken(c.Request.Context(), strings.TrimSpace(token))
		if err == nil && id != nil {
			c.Set(ctxKeyUID, id.UID)
			c.Set(ctxKeyEmail, id.Email)
		}
		c.Next()
	}
}

// CallerUID returns the verified uid, or "" for anonymous callers.
func CallerUID(c *gin.Context) string {
	return c.GetString(ctxKeyUID)
}

func CallerEmail(c *gin.Context) string {
	return c.GetString(ctxKeyEmail)
}
