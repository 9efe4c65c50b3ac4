package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"cityinbox_backend/internal/auth"
	"cityinbox_backend/internal/logger"
	"cityinbox_backend/internal/models"

	"github.com/gin-gonic/gin"
)

const principalKey = "principal"

// AuthMiddleware verifies the bearer token and stores the principal in
// the request context.
func AuthMiddleware(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing or invalid"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		principal, err := tokens.Parse(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(principalKey, principal)

		actorID := string(principal.Role) + "#" + strconv.FormatUint(uint64(principal.ID), 10)
		ctx := logger.WithUserID(c.Request.Context(), actorID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RequireRoles rejects requests whose principal is not one of the given
// actor roles. Must run after AuthMiddleware.
func RequireRoles(roles ...models.ActorRole) gin.HandlerFunc {
	roleSet := make(map[models.ActorRole]bool)
	for _, r := range roles {
		roleSet[r] = true
	}

	return func(c *gin.Context) {
		principal := GetPrincipal(c)
		if principal == nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: not authenticated"})
			return
		}
		if !roleSet[principal.Role] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: insufficient permissions"})
			return
		}
		c.Next()
	}
}

// RequireSuperAdmin rejects admin requests that are not the super admin.
func RequireSuperAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := GetPrincipal(c)
		if principal == nil || principal.Role != models.ActorRoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: admin only"})
			return
		}
		if principal.AdminRole != models.AdminRoleSuper {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: super admin only"})
			return
		}
		c.Next()
	}
}

// GetPrincipal returns the authenticated principal, or nil.
func GetPrincipal(c *gin.Context) *auth.Principal {
	val, exists := c.Get(principalKey)
	if !exists {
		return nil
	}
	principal, ok := val.(*auth.Principal)
	if !ok {
		return nil
	}
	return principal
}
