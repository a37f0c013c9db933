package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Iotonix/osams/internal/models"
	appErrors "github.com/Iotonix/osams/pkg/errors"
	"github.com/Iotonix/osams/pkg/response"
)

// Context keys for the authenticated identity.
const (
	ContextUserID = "auth.user_id"
	ContextEmail  = "auth.email"
	ContextRole   = "auth.role"
)

type tokenValidator interface {
	ValidateToken(token string) (*models.JWTClaims, error)
}

// Authenticated requires a valid bearer token and stores the identity in
// the request context.
func Authenticated(auth tokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}
		claims, err := auth.ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}
		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}

// RequireRole allows only the listed roles past. ADMIN always passes.
func RequireRole(roles ...models.UserRole) gin.HandlerFunc {
	allowed := make(map[models.UserRole]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}
	return func(c *gin.Context) {
		value, ok := c.Get(ContextRole)
		if !ok {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}
		role, ok := value.(models.UserRole)
		if !ok {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}
		if role == models.RoleAdmin {
			c.Next()
			return
		}
		if _, ok := allowed[role]; !ok {
			response.Error(c, appErrors.ErrForbidden)
			c.Abort()
			return
		}
		c.Next()
	}
}
