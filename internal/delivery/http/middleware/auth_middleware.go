package middleware

import (
	"slices"
	"strings"

	"warden/internal/delivery/http/response"
	"warden/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// Context keys populated by Authenticate for downstream handlers.
const (
	KeyUserID   = "userID"
	KeyUsername = "username"
	KeyRoles    = "roles"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the JWT access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		// Set caller identity on the context for handlers to use
		c.Set(KeyUserID, claims.UserID)
		c.Set(KeyUsername, claims.Username)
		c.Set(KeyRoles, claims.Roles)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the caller has a specific role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roles, ok := c.Get(KeyRoles).([]string)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: role information missing")
			}

			if !slices.Contains(roles, requiredRole) {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+requiredRole+"' role")
			}

			return next(c)
		}
	}
}

// RequireSelfOrRole allows a request when the authenticated caller matches the
// :username path parameter, or when it holds the given role. Used for account
// operations an account may perform on itself but only privileged callers may
// perform on others.
func (m *AuthMiddleware) RequireSelfOrRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			caller, _ := c.Get(KeyUsername).(string)
			if caller != "" && caller == c.Param("username") {
				return next(c)
			}

			roles, ok := c.Get(KeyRoles).([]string)
			if !ok || !slices.Contains(roles, role) {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: not account owner and missing '"+role+"' role")
			}

			return next(c)
		}
	}
}
