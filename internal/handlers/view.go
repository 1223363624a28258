package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/taskboard-api/internal/dto"
	"github.com/yukikurage/taskboard-api/internal/middleware"
	"github.com/yukikurage/taskboard-api/internal/services"
	"github.com/yukikurage/taskboard-api/internal/utils"
)

// ViewHandler serves the cross-project task views
type ViewHandler struct {
	tasks *services.TaskService
	now   func() time.Time
}

func NewViewHandler(tasks *services.TaskService) *ViewHandler {
	return &ViewHandler{
		tasks: tasks,
		now:   time.Now,
	}
}

// Today lists open tasks due on the caller's local day
func (h *ViewHandler) Today(c *gin.Context) {
	accountID, ok := requireAccount(c)
	if !ok {
		return
	}

	now := h.now().In(middleware.GetLocation(c))
	tasks, err := h.tasks.Today(c.Request.Context(), accountID, now)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tasks": dto.ToTaskDTOs(tasks)})
}

// Completed lists completed tasks, newest first, optionally for one project
func (h *ViewHandler) Completed(c *gin.Context) {
	accountID, ok := requireAccount(c)
	if !ok {
		return
	}

	var projectID *string
	if id := c.Query("projectId"); id != "" {
		projectID = &id
	}
	params := utils.GetPaginationParams(c)

	tasks, total, err := h.tasks.Completed(c.Request.Context(), accountID, projectID, params)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskListResponse(tasks, params, total))
}

// Search matches q against task names and descriptions
func (h *ViewHandler) Search(c *gin.Context) {
	accountID, ok := requireAccount(c)
	if !ok {
		return
	}

	tasks, err := h.tasks.Search(c.Request.Context(), accountID, c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tasks": dto.ToTaskDTOs(tasks)})
}
