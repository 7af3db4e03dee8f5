package middleware

import (
	"net/http"

	"github.com/Jezzej/craftique/internals/utils"

	"github.com/gin-gonic/gin"
)

// ContextUserKey is where the middleware attaches the authenticated
// identity for downstream handlers.
const ContextUserKey = "user"

type VerifyTokenMiddleware struct {
	TokenManager *utils.TokenManager
}

func NewVerifyTokenMiddleware(tokenManager *utils.TokenManager) *VerifyTokenMiddleware {
	return &VerifyTokenMiddleware{
		TokenManager: tokenManager,
	}
}

// VerifyToken authenticates the session cookie and attaches the sanitized
// user to the request context. Reset-purpose tokens are rejected here;
// they authorize exactly one password change, never a session.
func (m *VerifyTokenMiddleware) VerifyToken(c *gin.Context) {
	tokenStr, err := c.Cookie(utils.SessionCookieName)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Token missing, please login again"})
		return
	}

	claims, err := m.TokenManager.VerifyToken(tokenStr)
	if err != nil || claims.Purpose != utils.PurposeSession {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token, please login again"})
		return
	}

	c.Set(ContextUserKey, claims.User)
	c.Next()
}
