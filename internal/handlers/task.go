package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/taskboard-api/internal/dto"
	"github.com/yukikurage/taskboard-api/internal/refresh"
	"github.com/yukikurage/taskboard-api/internal/schemas"
	"github.com/yukikurage/taskboard-api/internal/services"
)

type TaskHandler struct {
	service *services.TaskService
	bus     *refresh.Bus
}

func NewTaskHandler(service *services.TaskService, bus *refresh.Bus) *TaskHandler {
	return &TaskHandler{
		service: service,
		bus:     bus,
	}
}

// GetTask returns a task with its subtasks, tags and section
func (h *TaskHandler) GetTask(c *gin.Context) {
	accountID, ok := requireAccount(c)
	if !ok {
		return
	}

	task, err := h.service.Get(c.Request.Context(), accountID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// CreateTask creates a task or, with parentTaskId, a subtask
func (h *TaskHandler) CreateTask(c *gin.Context) {
	accountID, ok := requireAccount(c)
	if !ok {
		return
	}

	var req schemas.CreateTask
	if !bindJSON(c, &req) {
		return
	}

	task, err := h.service.Create(c.Request.Context(), accountID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	publish(h.bus, c, "task", task.ID)
	respondSuccess(c, http.StatusCreated, gin.H{"taskId": task.ID, "task": dto.ToTaskDTO(*task)})
}

// UpdateTask applies a partial update; explicit nulls clear fields
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	accountID, ok := requireAccount(c)
	if !ok {
		return
	}

	var req schemas.UpdateTask
	if !bindJSON(c, &req) {
		return
	}

	task, err := h.service.Update(c.Request.Context(), accountID, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	publish(h.bus, c, "task", task.ID)
	respondSuccess(c, http.StatusOK, gin.H{"taskId": task.ID, "task": dto.ToTaskDTO(*task)})
}

// DeleteTask deletes a task with its subtasks
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	accountID, ok := requireAccount(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if err := h.service.Delete(c.Request.Context(), accountID, id); err != nil {
		respondError(c, err)
		return
	}

	publish(h.bus, c, "task", id)
	respondSuccess(c, http.StatusOK, nil)
}

// ToggleStatus flips a task between OPEN and COMPLETED
func (h *TaskHandler) ToggleStatus(c *gin.Context) {
	accountID, ok := requireAccount(c)
	if !ok {
		return
	}

	task, err := h.service.ToggleStatus(c.Request.Context(), accountID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	publish(h.bus, c, "task", task.ID)
	respondSuccess(c, http.StatusOK, gin.H{"taskId": task.ID, "status": task.Status})
}

// AssignSection moves a task into a section, or out of one with null
func (h *TaskHandler) AssignSection(c *gin.Context) {
	accountID, ok := requireAccount(c)
	if !ok {
		return
	}

	var req schemas.AssignSection
	if !bindJSON(c, &req) {
		return
	}

	id := c.Param("id")
	if err := h.service.AssignSection(c.Request.Context(), accountID, id, req.SectionID); err != nil {
		respondError(c, err)
		return
	}

	publish(h.bus, c, "task", id)
	respondSuccess(c, http.StatusOK, gin.H{"taskId": id})
}

func (h *TaskHandler) ReorderTask(c *gin.Context) {
	accountID, ok := requireAccount(c)
	if !ok {
		return
	}

	var req schemas.Reorder
	if !bindJSON(c, &req) {
		return
	}

	id := c.Param("id")
	if err := h.service.Reorder(c.Request.Context(), accountID, id, req); err != nil {
		respondError(c, err)
		return
	}

	publish(h.bus, c, "task", id)
	respondSuccess(c, http.StatusOK, gin.H{"taskId": id})
}

// SuggestTasks extracts task suggestions from free text for a project.
// Nothing is saved.
func (h *TaskHandler) SuggestTasks(c *gin.Context) {
	accountID, ok := requireAccount(c)
	if !ok {
		return
	}

	var req schemas.SuggestTasks
	if !bindJSON(c, &req) {
		return
	}

	suggestions, err := h.service.SuggestTasks(c.Request.Context(), accountID, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{"tasks": dto.ToSuggestionDTOs(suggestions)})
}
