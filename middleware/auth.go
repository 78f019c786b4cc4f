package middleware

import (
	"strings"

	"hotelbooking/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContextUserID is the gin context key holding the authenticated user id.
const ContextUserID = "userID"

// TokenFromRequest returns the session token from the auth cookie, falling
// back to an Authorization: Bearer header.
func TokenFromRequest(c *gin.Context) string {
	if token, err := c.Cookie(utils.AuthCookieName); err == nil && token != "" {
		return token
	}
	if authHeader := c.GetHeader("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	}
	return ""
}

// VerifyToken rejects requests without a valid, unrevoked session token and
// stores the token subject under ContextUserID. denylist may be nil.
func VerifyToken(tokens *utils.TokenManager, denylist utils.TokenDenylist) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := TokenFromRequest(c)
		if tokenString == "" {
			utils.RespondError(c, utils.NewAuthError("Unauthorized"), "")
			return
		}

		userID, _, err := tokens.ExtractIDFromToken(tokenString)
		if err != nil {
			utils.RespondError(c, utils.NewAuthError("Unauthorized"), "")
			return
		}

		if denylist != nil {
			revoked, err := denylist.IsRevoked(c.Request.Context(), utils.HashToken(tokenString))
			if err != nil {
				// Fail closed: a token we cannot check is not trusted.
				utils.GetLogger().Error("Denylist lookup failed", zap.Error(err))
				utils.RespondError(c, utils.NewAuthError("Unauthorized"), "")
				return
			}
			if revoked {
				utils.RespondError(c, utils.NewAuthError("Unauthorized"), "")
				return
			}
		}

		c.Set(ContextUserID, userID)
		c.Next()
	}
}
