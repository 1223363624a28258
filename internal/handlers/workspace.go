package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/taskboard-api/internal/dto"
	"github.com/yukikurage/taskboard-api/internal/refresh"
	"github.com/yukikurage/taskboard-api/internal/schemas"
	"github.com/yukikurage/taskboard-api/internal/services"
)

type WorkspaceHandler struct {
	service *services.WorkspaceService
	bus     *refresh.Bus
}

func NewWorkspaceHandler(service *services.WorkspaceService, bus *refresh.Bus) *WorkspaceHandler {
	return &WorkspaceHandler{
		service: service,
		bus:     bus,
	}
}

// ListWorkspaces returns the sidebar: workspaces with projects and open counts
func (h *WorkspaceHandler) ListWorkspaces(c *gin.Context) {
	accountID, ok := requireAccount(c)
	if !ok {
		return
	}

	sidebar, err := h.service.List(c.Request.Context(), accountID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"workspaces": dto.ToWorkspaceDTOs(sidebar)})
}

func (h *WorkspaceHandler) GetWorkspace(c *gin.Context) {
	accountID, ok := requireAccount(c)
	if !ok {
		return
	}

	sidebar, err := h.service.Get(c.Request.Context(), accountID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkspaceDTOs(sidebar)[0])
}

func (h *WorkspaceHandler) CreateWorkspace(c *gin.Context) {
	accountID, ok := requireAccount(c)
	if !ok {
		return
	}

	var req schemas.CreateWorkspace
	if !bindJSON(c, &req) {
		return
	}

	ws, err := h.service.Create(c.Request.Context(), accountID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	publish(h.bus, c, "workspace", ws.ID)
	respondSuccess(c, http.StatusCreated, gin.H{"workspaceId": ws.ID})
}

func (h *WorkspaceHandler) RenameWorkspace(c *gin.Context) {
	accountID, ok := requireAccount(c)
	if !ok {
		return
	}

	var req schemas.Rename
	if !bindJSON(c, &req) {
		return
	}

	id := c.Param("id")
	if err := h.service.Rename(c.Request.Context(), accountID, id, req); err != nil {
		respondError(c, err)
		return
	}

	publish(h.bus, c, "workspace", id)
	respondSuccess(c, http.StatusOK, gin.H{"workspaceId": id})
}

func (h *WorkspaceHandler) DeleteWorkspace(c *gin.Context) {
	accountID, ok := requireAccount(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if err := h.service.Delete(c.Request.Context(), accountID, id); err != nil {
		respondError(c, err)
		return
	}

	publish(h.bus, c, "workspace", id)
	respondSuccess(c, http.StatusOK, nil)
}
