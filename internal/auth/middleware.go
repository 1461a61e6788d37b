package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"go-hotel/internal/config"
	"go-hotel/internal/user"
)

const identityKey = "identity"

// Identity is the authenticated-identity record attached to a request by
// the session guard. Handlers read it instead of touching session state
// directly.
type Identity struct {
	UserID    uint
	Username  string
	Role      user.Role
	SessionID string
}

// CurrentIdentity returns the identity attached by a Guard, if any.
func CurrentIdentity(c *gin.Context) (Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return Identity{}, false
	}
	id, ok := v.(Identity)
	return id, ok
}

// Guard validates the session cookie against the redis session store and
// attaches the Identity to the request context. Requests without a valid
// session, or without requiredRole when one is given, are redirected to
// loginPath. Admin routes pass "/admin/login" so the admin login view is
// shown rather than the generic one.
func Guard(cfg *config.Config, rdb *redis.Client, requiredRole user.Role, loginPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie(CookieName)
		if err != nil || tokenStr == "" {
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
			return
		}
		claims, err := ParseJWT(cfg.Server.JWTSecret, tokenStr)
		if err != nil {
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
			return
		}
		sessionToken, err := GetSession(rdb, claims.SessionID)
		if err != nil || sessionToken != tokenStr {
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
			return
		}
		// Sliding inactivity window
		ttl := time.Duration(cfg.Session.TTLMinutes) * time.Minute
		_ = SetSession(rdb, claims.SessionID, tokenStr, ttl)

		if requiredRole != "" && user.Role(claims.Role) != requiredRole {
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
			return
		}

		c.Set(identityKey, Identity{
			UserID:    claims.UserID,
			Username:  claims.Username,
			Role:      user.Role(claims.Role),
			SessionID: claims.SessionID,
		})
		c.Next()
	}
}
