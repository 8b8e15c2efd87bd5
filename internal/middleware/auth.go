package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	// AdminCookieName is the cookie carrying the admin session token.
	AdminCookieName = "admin-token"
	// AdminContextKey is the context key under which the authenticated
	// admin's identity is stored.
	AdminContextKey = "admin"
)

// TokenVerifier validates an admin session token and returns the admin
// identity it was issued for.
type TokenVerifier interface {
	VerifyToken(token string) (adminID string, email string, err error)
}

// Auth creates a middleware guarding admin-only routes. The session token is
// accepted from the admin cookie or a Bearer authorization header; requests
// without a valid token are rejected with 401 before reaching the handler.
func Auth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			abortUnauthorized(c, "Authentication required")
			return
		}

		adminID, email, err := verifier.VerifyToken(token)
		if err != nil {
			if log := GetLogger(c); log != nil {
				log.Warn("Rejected admin token", map[string]interface{}{
					"error": err.Error(),
					"path":  c.Request.URL.Path,
				})
			}
			abortUnauthorized(c, "Invalid or expired session")
			return
		}

		c.Set(AdminContextKey, AdminIdentity{ID: adminID, Email: email})
		c.Next()
	}
}

// AdminIdentity is the authenticated admin attached to the request context.
type AdminIdentity struct {
	ID    string
	Email string
}

// GetAdmin retrieves the authenticated admin from the Gin context.
func GetAdmin(c *gin.Context) (AdminIdentity, bool) {
	if v, exists := c.Get(AdminContextKey); exists {
		if admin, ok := v.(AdminIdentity); ok {
			return admin, true
		}
	}
	return AdminIdentity{}, false
}

func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(AdminCookieName); err == nil && cookie != "" {
		return cookie
	}
	header := c.GetHeader("Authorization")
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return token
	}
	return ""
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": gin.H{
			"code":       "UNAUTHORIZED",
			"message":    message,
			"request_id": GetRequestID(c),
		},
	})
}
