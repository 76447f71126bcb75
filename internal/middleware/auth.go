package middleware

import (
	"errors"

	apierrors "expense-bot/internal/errors"
	"expense-bot/internal/handlers"
	"expense-bot/internal/models"
	"expense-bot/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	// SubjectContextKey holds the token subject (operator name)
	SubjectContextKey = "subject"
	// RoleContextKey holds the role claim of the token
	RoleContextKey = "user_role"
	// TokenIDContextKey holds the jti claim of the token
	TokenIDContextKey = "token_jti"
)

// RequireAuth creates a middleware that requires a valid admin bearer token
func RequireAuth(tokenService services.TokenServiceInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return handlers.SendError(c, apierrors.AuthMissingToken)
			}

			token, err := tokenService.ExtractTokenFromHeader(authHeader)
			if err != nil {
				return handlers.SendError(c, apierrors.AuthInvalidTokenFormat)
			}

			claims, err := tokenService.ValidateAccessToken(token)
			if err != nil {
				if errors.Is(err, services.ErrExpiredToken) {
					return handlers.SendError(c, apierrors.AuthExpiredToken)
				}
				return handlers.SendError(c, apierrors.AuthInvalidTokenFormat)
			}

			c.Set(SubjectContextKey, claims.Subject)
			c.Set(RoleContextKey, claims.Role)
			c.Set(TokenIDContextKey, claims.ID)

			return next(c)
		}
	}
}

// RequireRole creates a middleware that requires one of the given roles
func RequireRole(requiredRoles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userRole, ok := c.Get(RoleContextKey).(string)
			if !ok {
				return handlers.SendError(c, apierrors.AuthInvalidTokenFormat, apierrors.WithDetails("Role not found in token"))
			}

			for _, role := range requiredRoles {
				if userRole == role {
					return next(c)
				}
			}

			return handlers.SendError(c, apierrors.AuthInsufficientPermission)
		}
	}
}

// RequireAdmin is a convenience middleware that requires admin role
func RequireAdmin() echo.MiddlewareFunc {
	return RequireRole(models.RoleAdmin)
}
