package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/crm-api/internal/auth"
	"github.com/BruksfildServices01/crm-api/internal/domain"
	domainUser "github.com/BruksfildServices01/crm-api/internal/domain/user"
	"github.com/BruksfildServices01/crm-api/internal/httperr"
	"github.com/BruksfildServices01/crm-api/internal/logger"
	"github.com/BruksfildServices01/crm-api/internal/models"
)

const (
	ContextUserID = "userID"
	ContextUser   = "user"
	ContextClaims = "claims"
)

type Authenticator struct {
	issuer      *auth.TokenIssuer
	revocations auth.RevocationStore
	users       domainUser.Repository
}

func NewAuthenticator(
	issuer *auth.TokenIssuer,
	revocations auth.RevocationStore,
	users domainUser.Repository,
) *Authenticator {
	return &Authenticator{
		issuer:      issuer,
		revocations: revocations,
		users:       users,
	}
}

// Middleware accepts "Authorization: Bearer <jwt>" for a live, unrevoked
// token whose user still exists.
func (a *Authenticator) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing_authorization_header", "Unauthenticated.")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			httperr.Unauthorized(c, "invalid_authorization_header", "Unauthenticated.")
			return
		}

		claims, err := a.issuer.Parse(strings.TrimSpace(parts[1]))
		if err != nil {
			httperr.Unauthorized(c, "invalid_token", "Unauthenticated.")
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			httperr.Unauthorized(c, "invalid_token", "Unauthenticated.")
			return
		}

		ctx := c.Request.Context()

		revoked, err := a.revocations.IsRevoked(ctx, claims.ID)
		if err != nil {
			logger.FromGin(c).Error("revocation lookup failed", zap.Error(err))
			httperr.Abort(c, http.StatusInternalServerError, "internal_error", "Internal server error.")
			return
		}
		if revoked {
			httperr.Unauthorized(c, "token_revoked", "Unauthenticated.")
			return
		}

		user, err := a.users.GetByID(ctx, userID)
		if errors.Is(err, domain.ErrNotFound) {
			httperr.Unauthorized(c, "invalid_token", "Unauthenticated.")
			return
		}
		if err != nil {
			logger.FromGin(c).Error("principal lookup failed", zap.Error(err))
			httperr.Abort(c, http.StatusInternalServerError, "internal_error", "Internal server error.")
			return
		}

		c.Set(ContextUserID, user.ID)
		c.Set(ContextUser, user)
		c.Set(ContextClaims, claims)

		if l, ok := c.Get(logger.ContextLogger); ok {
			if zl, ok := l.(*zap.Logger); ok {
				c.Set(logger.ContextLogger, zl.With(zap.Uint("user_id", user.ID)))
			}
		}

		c.Next()
	}
}

func PrincipalID(c *gin.Context) uint {
	return c.GetUint(ContextUserID)
}

func Principal(c *gin.Context) *models.User {
	if v, ok := c.Get(ContextUser); ok {
		if u, ok := v.(*models.User); ok {
			return u
		}
	}
	return nil
}

func Claims(c *gin.Context) *auth.Claims {
	if v, ok := c.Get(ContextClaims); ok {
		if cl, ok := v.(*auth.Claims); ok {
			return cl
		}
	}
	return nil
}
