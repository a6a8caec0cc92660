package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pricewatch/pricewatch/ent"
	"github.com/pricewatch/pricewatch/ent/user"
)

// RequireAnalyst middleware ensures the authenticated user may read the
// analytics surface: the marketing_analyst role, or admin.
// This middleware should be applied AFTER JWT authentication middleware
func RequireAnalyst(db *ent.Client) echo.MiddlewareFunc {
	return requireRoles(db, "marketing_analyst or admin", user.RoleMarketingAnalyst, user.RoleAdmin)
}

// RequireAdmin middleware ensures the authenticated user has the admin role
func RequireAdmin(db *ent.Client) echo.MiddlewareFunc {
	return requireRoles(db, "admin", user.RoleAdmin)
}

func requireRoles(db *ent.Client, required string, roles ...user.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Get user ID from context (set by JWT middleware)
			userID, ok := c.Get("user_id").(int)
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error":   "unauthorized",
					"message": "Authentication required",
				})
			}

			// Create context with timeout for database query
			ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
			defer cancel()

			// Get user to check role
			u, err := db.User.Get(ctx, userID)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error":   "user_not_found",
					"message": "User not found",
				})
			}

			allowed := false
			for _, role := range roles {
				if u.Role == role {
					allowed = true
					break
				}
			}

			if !allowed {
				return c.JSON(http.StatusForbidden, map[string]interface{}{
					"error":   "insufficient_permissions",
					"message": "You do not have access to this resource",
					"details": map[string]interface{}{
						"required_role": required,
						"current_role":  u.Role.String(),
					},
				})
			}

			// Store user role in context for further use
			c.Set("user_role", u.Role.String())

			return next(c)
		}
	}
}
