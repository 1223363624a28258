package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/taskboard-api/internal/constants"
	apierrors "github.com/yukikurage/taskboard-api/internal/errors"
	"github.com/yukikurage/taskboard-api/internal/identity"
)

// RequireAuth resolves the caller's account from a bearer token or, failing
// that, from the ID token kept in the session
func RequireAuth(verifier identity.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			token = sessionToken(c)
		}

		accountID := verifier.Verify(c.Request.Context(), token)
		if accountID == "" {
			apierrors.Abort(c, http.StatusUnauthorized, "")
			return
		}

		// Store account and token in context for handlers and the billing gate
		c.Set(constants.ContextKeyAccountID, accountID)
		c.Set(constants.ContextKeyIDToken, token)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if len(header) > 7 && strings.EqualFold(header[:7], "Bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return ""
}

func sessionToken(c *gin.Context) string {
	if _, ok := c.Get(sessions.DefaultKey); !ok {
		return ""
	}
	token, _ := sessions.Default(c).Get(constants.SessionKeyIDToken).(string)
	return token
}

// GetAccountID retrieves the current account ID from context
func GetAccountID(c *gin.Context) (string, bool) {
	accountID := c.GetString(constants.ContextKeyAccountID)
	return accountID, accountID != ""
}

// GetIDToken retrieves the verified ID token from context
func GetIDToken(c *gin.Context) string {
	return c.GetString(constants.ContextKeyIDToken)
}
