package middleware

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	authz "github.com/izeinnn/university-management-system/internal/app/auth"
	"github.com/izeinnn/university-management-system/internal/app/models"
	"github.com/izeinnn/university-management-system/internal/pkg/apperrors"
	pkgauth "github.com/izeinnn/university-management-system/internal/pkg/auth"
)

// ContextPrincipalKey is the gin context key holding the resolved principal.
const ContextPrincipalKey = "principal"

// UserLoader loads the user row behind a validated token.
type UserLoader interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// AuthMiddleware validates the bearer token, loads the user row and resolves
// the request principal. Requests with missing, invalid or expired tokens,
// unknown users or disabled accounts are rejected with 401.
func AuthMiddleware(jwtService *pkgauth.JWTService, users UserLoader, resolver *authz.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := pkgauth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			HandleAPIError(c, apperrors.ErrTokenInvalid)
			return
		}

		claims, err := jwtService.ValidateAndExtractClaims(token)
		if err != nil {
			if errors.Is(err, pkgauth.ErrExpiredToken) {
				HandleAPIError(c, apperrors.ErrTokenExpired)
			} else {
				HandleAPIError(c, apperrors.ErrTokenInvalid)
			}
			return
		}

		user, err := users.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			// A token for a deleted user is as good as no token.
			HandleAPIError(c, apperrors.ErrTokenInvalid)
			return
		}
		if !user.IsActive {
			HandleAPIError(c, apperrors.ErrAccountDisabled)
			return
		}

		principal, err := resolver.Resolve(c.Request.Context(), user)
		if err != nil {
			HandleAPIError(c, err)
			return
		}

		c.Set(ContextPrincipalKey, principal)
		c.Next()
	}
}

// PrincipalFromContext returns the principal stored by AuthMiddleware.
func PrincipalFromContext(c *gin.Context) (*authz.Principal, bool) {
	value, exists := c.Get(ContextPrincipalKey)
	if !exists {
		return nil, false
	}
	principal, ok := value.(*authz.Principal)
	return principal, ok
}
