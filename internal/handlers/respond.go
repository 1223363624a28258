package handlers

import (
	"errors"
	"log"

	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/taskboard-api/internal/errors"
	"github.com/yukikurage/taskboard-api/internal/middleware"
	"github.com/yukikurage/taskboard-api/internal/refresh"
	"github.com/yukikurage/taskboard-api/internal/schemas"
	"github.com/yukikurage/taskboard-api/internal/services"
)

// requireAccount returns the authenticated account or answers 401
func requireAccount(c *gin.Context) (string, bool) {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		apierrors.Unauthorized(c, "")
	}
	return accountID, ok
}

// bindJSON decodes and validates the body, answering 400 on failure
func bindJSON(c *gin.Context, v any) bool {
	if err := schemas.Bind(c, v); err != nil {
		apierrors.BadRequest(c, schemas.Message(err))
		return false
	}
	return true
}

// respondSuccess writes an action result, e.g. {"success": true, "taskId": "..."}
func respondSuccess(c *gin.Context, status int, fields gin.H) {
	body := gin.H{"success": true}
	for k, v := range fields {
		body[k] = v
	}
	c.JSON(status, body)
}

func respondError(c *gin.Context, err error) {
	switch {
	case schemas.IsValidation(err):
		apierrors.BadRequest(c, schemas.Message(err))
	case errors.Is(err, services.ErrWorkspaceNotFound),
		errors.Is(err, services.ErrProjectNotFound),
		errors.Is(err, services.ErrSectionNotFound),
		errors.Is(err, services.ErrTaskNotFound),
		errors.Is(err, services.ErrTagNotFound),
		errors.Is(err, services.ErrParentTaskNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrSubtaskNesting),
		errors.Is(err, services.ErrNoSuggestions):
		apierrors.UnprocessableEntity(c, err.Error())
	case errors.Is(err, services.ErrSuggestionsDisabled):
		apierrors.ServiceUnavailable(c, err.Error())
	default:
		log.Printf("handlers: %s %s: %v", c.Request.Method, c.FullPath(), err)
		apierrors.InternalError(c, "")
	}
}

// publish tells the account's open event streams that resource changed
func publish(bus *refresh.Bus, c *gin.Context, resource, id string) {
	if bus == nil {
		return
	}
	if accountID, ok := middleware.GetAccountID(c); ok {
		bus.Publish(accountID, refresh.Event{Resource: resource, ID: id})
	}
}

