package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"odgpos/internal/core/apperror"
	appctx "odgpos/internal/core/context"
	"odgpos/internal/domain/auth"
)

// TokenVerifier validates access tokens.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*auth.Claims, error)
}

// Auth middleware validates JWT tokens and populates the operator context.
func Auth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "missing authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			abortUnauthorized(c, "invalid authorization header format")
			return
		}

		claims, err := verifier.Verify(c.Request.Context(), parts[1])
		if err != nil {
			abortUnauthorized(c, "invalid token")
			return
		}

		user := &appctx.UserContext{
			UserCode: claims.Subject,
			Name:     claims.Name,
			WHCode:   claims.WHCode,
			Shelf:    claims.Shelf,
		}
		ctx := appctx.WithUser(c.Request.Context(), user)
		c.Request = c.Request.WithContext(ctx)

		c.Set("user_code", user.UserCode)

		c.Next()
	}
}

// OptionalAuth validates a token if present, but doesn't require one.
func OptionalAuth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			c.Next()
			return
		}

		if claims, err := verifier.Verify(c.Request.Context(), parts[1]); err == nil {
			user := &appctx.UserContext{
				UserCode: claims.Subject,
				Name:     claims.Name,
				WHCode:   claims.WHCode,
				Shelf:    claims.Shelf,
			}
			ctx := appctx.WithUser(c.Request.Context(), user)
			c.Request = c.Request.WithContext(ctx)
			c.Set("user_code", user.UserCode)
		}

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	_ = c.Error(apperror.NewUnauthorized(message))
	c.Abort()
}
