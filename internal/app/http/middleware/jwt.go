package middleware

import (
	"context"
	"strings"

	"sportsclub-app/internal/api/response"
	"sportsclub-app/internal/apperr"
	"sportsclub-app/internal/domain/users"

	"github.com/gin-gonic/gin"
)

const currentUserKey = "current_user"

type UserResolver interface {
	CurrentUser(ctx context.Context, accessToken string) (*users.User, error)
}

// AuthMiddleware resolves the bearer token to a stored user and puts it on the context.
func AuthMiddleware(resolver UserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Error(c, apperr.ErrUnauthenticated)
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || strings.TrimSpace(tokenString) == "" {
			response.Error(c, apperr.ErrUnauthenticated)
			return
		}

		user, err := resolver.CurrentUser(c.Request.Context(), strings.TrimSpace(tokenString))
		if err != nil {
			response.Error(c, err)
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// CurrentUser returns the user stored by AuthMiddleware.
func CurrentUser(c *gin.Context) (*users.User, bool) {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return nil, false
	}
	u, ok := v.(*users.User)
	return u, ok && u != nil
}
