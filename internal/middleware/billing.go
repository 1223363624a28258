package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/taskboard-api/internal/billing"
	apierrors "github.com/yukikurage/taskboard-api/internal/errors"
)

// RequireWritable rejects the request with 402 when the account's billing
// status is read-only. Must run after RequireAuth.
func RequireWritable(checker billing.Checker) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := checker.Check(c.Request.Context(), GetIDToken(c))
		if err := billing.Guard(status); err != nil {
			apierrors.Abort(c, http.StatusPaymentRequired, err.Error())
			return
		}
		c.Next()
	}
}
