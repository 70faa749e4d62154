package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tiago154/fast-zero/internal/domain"
)

const principalKey = "principal"

// Authenticator resolves a bearer token to the request principal. It is the
// single place where "is this caller who they claim" is decided.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}

// Auth validates the Authorization header and stores the resolved principal
// in the gin context. Missing header, non-Bearer scheme, and every token
// failure produce the same 401 body.
func Auth(authn Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				gin.H{"error": domain.ErrUnauthenticated.Error()})
			return
		}

		raw := strings.TrimPrefix(header, "Bearer ")

		user, err := authn.Authenticate(c.Request.Context(), raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				gin.H{"error": domain.ErrUnauthenticated.Error()})
			return
		}

		c.Set(principalKey, user)
		c.Next()
	}
}

// Principal returns the authenticated user stored by Auth.
func Principal(c *gin.Context) (*domain.User, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*domain.User)
	return user, ok
}
