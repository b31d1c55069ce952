package delivery

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"plek-backend/pkg/identity"
	"plek-backend/pkg/response"
)

// Context keys set by the auth gate.
const (
	ContextUserID = "userID"
	ContextClaims = "userClaims"
)

// TokenVerifier checks a bearer ID token and returns the identity it
// carries.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, idToken string) (*identity.Token, error)
}

// AuthMiddleware rejects requests without a valid Bearer token and
// stashes the caller's identity on the request context.
func AuthMiddleware(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "authorization header required", "Authentication required")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "invalid authorization header format", "Authentication required")
			c.Abort()
			return
		}

		token, err := verifier.VerifyToken(c.Request.Context(), parts[1])
		if err != nil {
			response.Unauthorized(c, "invalid or expired token", "Authentication failed")
			c.Abort()
			return
		}

		c.Set(ContextUserID, token.UID)
		c.Set(ContextClaims, token.Claims)
		c.Next()
	}
}
