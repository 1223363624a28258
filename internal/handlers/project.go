package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/taskboard-api/internal/dto"
	"github.com/yukikurage/taskboard-api/internal/refresh"
	"github.com/yukikurage/taskboard-api/internal/schemas"
	"github.com/yukikurage/taskboard-api/internal/services"
)

type ProjectHandler struct {
	service *services.ProjectService
	bus     *refresh.Bus
}

func NewProjectHandler(service *services.ProjectService, bus *refresh.Bus) *ProjectHandler {
	return &ProjectHandler{
		service: service,
		bus:     bus,
	}
}

// ListProjects returns the account's projects ordered by name
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	accountID, ok := requireAccount(c)
	if !ok {
		return
	}

	projects, err := h.service.List(c.Request.Context(), accountID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"projects": dto.ToProjectDTOs(projects)})
}

// GetBoard returns a project laid out by section with effort totals
func (h *ProjectHandler) GetBoard(c *gin.Context) {
	accountID, ok := requireAccount(c)
	if !ok {
		return
	}

	board, err := h.service.Board(c.Request.Context(), accountID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBoardDTO(board))
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	accountID, ok := requireAccount(c)
	if !ok {
		return
	}

	var req schemas.CreateProject
	if !bindJSON(c, &req) {
		return
	}

	project, err := h.service.Create(c.Request.Context(), accountID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	publish(h.bus, c, "project", project.ID)
	respondSuccess(c, http.StatusCreated, gin.H{"projectId": project.ID})
}

func (h *ProjectHandler) RenameProject(c *gin.Context) {
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

	publish(h.bus, c, "project", id)
	respondSuccess(c, http.StatusOK, gin.H{"projectId": id})
}

func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	accountID, ok := requireAccount(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if err := h.service.Delete(c.Request.Context(), accountID, id); err != nil {
		respondError(c, err)
		return
	}

	publish(h.bus, c, "project", id)
	respondSuccess(c, http.StatusOK, nil)
}
