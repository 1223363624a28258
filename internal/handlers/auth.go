package handlers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/taskboard-api/internal/billing"
	"github.com/yukikurage/taskboard-api/internal/constants"
	apierrors "github.com/yukikurage/taskboard-api/internal/errors"
	"github.com/yukikurage/taskboard-api/internal/identity"
	"github.com/yukikurage/taskboard-api/internal/middleware"
	"github.com/yukikurage/taskboard-api/internal/schemas"
)

// AuthHandler exchanges ID tokens for session cookies.
type AuthHandler struct {
	verifier identity.Verifier
	billing  billing.Checker
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(verifier identity.Verifier, checker billing.Checker) *AuthHandler {
	return &AuthHandler{
		verifier: verifier,
		billing:  checker,
	}
}

// CreateSession verifies an ID token and keeps it in the session.
func (h *AuthHandler) CreateSession(c *gin.Context) {
	var req schemas.CreateSession
	if !bindJSON(c, &req) {
		return
	}

	accountID := h.verifier.Verify(c.Request.Context(), req.IDToken)
	if accountID == "" {
		apierrors.Unauthorized(c, "")
		return
	}

	session := sessions.Default(c)
	session.Set(constants.SessionKeyIDToken, req.IDToken)
	if err := session.Save(); err != nil {
		apierrors.InternalError(c, "Failed to save session")
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{"accountId": accountID})
}

// DeleteSession clears the session.
func (h *AuthHandler) DeleteSession(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	if err := session.Save(); err != nil {
		apierrors.InternalError(c, "Failed to clear session")
		return
	}

	respondSuccess(c, http.StatusOK, nil)
}

// Me returns the authenticated account and its billing status.
func (h *AuthHandler) Me(c *gin.Context) {
	accountID, ok := requireAccount(c)
	if !ok {
		return
	}

	status := h.billing.Check(c.Request.Context(), middleware.GetIDToken(c))
	c.JSON(http.StatusOK, gin.H{
		"accountId": accountID,
		"billing":   status,
	})
}
