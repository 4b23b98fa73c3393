package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cartonworks/stockline/internal/domain/user"
	"github.com/cartonworks/stockline/internal/infrastructure/auth"
	"github.com/cartonworks/stockline/internal/shared/constants"
	"github.com/cartonworks/stockline/internal/shared/logger"
	"github.com/cartonworks/stockline/internal/shared/utils"
)

// TokenVerifier checks a bearer token and returns its claims.
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// UserResolver looks up the operator named by a token.
type UserResolver interface {
	GetBySID(ctx context.Context, sid string) (*user.User, error)
}

type AuthMiddleware struct {
	verifier TokenVerifier
	users    UserResolver
	logger   logger.Interface
}

func NewAuthMiddleware(verifier TokenVerifier, users UserResolver, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
		users:    users,
		logger:   logger,
	}
}

// RequireAuth resolves the acting operator. Handlers read the numeric user
// id from constants.ContextKeyUserID.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(constants.HeaderAuthorization)
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := m.verifier.Verify(strings.TrimSpace(parts[1]))
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		u, err := m.users.GetBySID(c.Request.Context(), claims.UserSID)
		if err != nil {
			m.logger.Errorw("failed to resolve token user", "user_sid", claims.UserSID, "error", err)
			utils.ErrorResponse(c, http.StatusInternalServerError, constants.ErrMsgInternalServerError)
			c.Abort()
			return
		}
		if u == nil {
			m.logger.Warnw("token references unknown user", "user_sid", claims.UserSID)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, u.ID())
		c.Set(constants.ContextKeyUserSID, u.SID())
		c.Set(constants.ContextKeyUserRole, string(u.Role()))

		c.Next()
	}
}
