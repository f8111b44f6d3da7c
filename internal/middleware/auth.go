package middleware

import (
	"net/http"
	"strconv"

	"newvisas-cms/internal/utils"

	"github.com/gin-gonic/gin"
)

// CookieName is the session cookie holding the signed admin token.
const CookieName = "auth_token"

const identityKey = "admin_identity"

// Identity is the authenticated admin attached to the request context.
type Identity struct {
	ID       uint
	Username string
}

// AuthRequired redirects to the login page unless the request carries a
// valid session cookie. Every verification failure degrades to the same
// redirect; no detail is surfaced to the client.
func AuthRequired(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(CookieName)
		if err != nil || tokenString == "" {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(tokenString, secret)
		if err != nil {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}

		id, err := strconv.ParseUint(claims.Subject, 10, 32)
		if err != nil {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}

		c.Set(identityKey, Identity{ID: uint(id), Username: claims.Username})
		c.Next()
	}
}

// CurrentAdmin returns the identity set by AuthRequired.
func CurrentAdmin(c *gin.Context) (Identity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return Identity{}, false
	}
	identity, ok := value.(Identity)
	return identity, ok
}
