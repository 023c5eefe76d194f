package httpserver

import (
	"net/http"
	"strings"

	"storefront/internal/service/auth"

	"github.com/gin-gonic/gin"
)

const (
	bearerPrefix = "Bearer "
	identityKey  = "identity"
)

// authRequired verifies the bearer token once per request and stores
// the caller's identity in the request context. Missing, malformed,
// tampered, and expired tokens all end the request with a 403.
func authRequired(svc authService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		identity, err := svc.Verify(strings.TrimPrefix(header, bearerPrefix))
		if err != nil {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Set(identityKey, identity)
		c.Next()
	}
}

func callerIdentity(c *gin.Context) (auth.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return auth.Identity{}, false
	}
	identity, ok := v.(auth.Identity)
	return identity, ok
}
