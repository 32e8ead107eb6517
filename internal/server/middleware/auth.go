package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/travelpay/internal/apperrors"
	"github.com/kbukum/travelpay/internal/model"
	"github.com/kbukum/travelpay/internal/server"
)

// Authorizer resolves a bearer token into the user it belongs to.
type Authorizer interface {
	Authorize(ctx context.Context, token string) (*model.User, error)
}

// RequireUser returns middleware that authorizes the request via its
// bearer token and stores the user in the Gin context. A missing or
// malformed Authorization header fails exactly like a bad token.
func RequireUser(authz Authorizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.Abort()
			server.RespondWithError(c, apperrors.InvalidToken("Could not validate credentials"))
			return
		}
		user, err := authz.Authorize(c.Request.Context(), token)
		if err != nil {
			c.Abort()
			server.RespondWithError(c, err)
			return
		}
		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// CurrentUser returns the authenticated user stored by RequireUser.
func CurrentUser(c *gin.Context) *model.User {
	if v, ok := c.Get(ContextUserKey); ok {
		if user, ok := v.(*model.User); ok {
			return user
		}
	}
	return nil
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header. The scheme comparison is case-insensitive.
func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}
	return token, true
}
