package middleware

import (
	"net/http"

	"github.com/praveenkv0818/Travel-booking-app-back-End/internal/auth"

	"github.com/gin-gonic/gin"
)

// CookieName is the cookie carrying the session token.
const CookieName = "token"

// IdentityKey is the gin context key under which Auth stores the decoded
// *auth.Identity.
const IdentityKey = "identity"

// Auth reads the session cookie, validates the token, and stores the
// decoded identity in the Gin context. A missing cookie and a bad token
// both end the request with 401.
func Auth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie(CookieName)
		if err != nil || tokenStr == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			c.Abort()
			return
		}

		ident, err := auth.ParseToken(secret, tokenStr)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		c.Set(IdentityKey, ident)
		c.Next()
	}
}

// Identity fetches the identity set by Auth. Handlers behind the
// middleware can rely on it being present.
func Identity(c *gin.Context) *auth.Identity {
	v, _ := c.Get(IdentityKey)
	ident, _ := v.(*auth.Identity)
	return ident
}
