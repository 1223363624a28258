package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/taskboard-api/internal/dto"
	"github.com/yukikurage/taskboard-api/internal/refresh"
	"github.com/yukikurage/taskboard-api/internal/schemas"
	"github.com/yukikurage/taskboard-api/internal/services"
)

type TagHandler struct {
	service *services.TagService
	bus     *refresh.Bus
}

func NewTagHandler(service *services.TagService, bus *refresh.Bus) *TagHandler {
	return &TagHandler{
		service: service,
		bus:     bus,
	}
}

// ListTags returns the account's tags with task counts
func (h *TagHandler) ListTags(c *gin.Context) {
	accountID, ok := requireAccount(c)
	if !ok {
		return
	}

	tags, err := h.service.List(c.Request.Context(), accountID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tags": dto.ToTagWithCountDTOs(tags)})
}

func (h *TagHandler) CreateTag(c *gin.Context) {
	accountID, ok := requireAccount(c)
	if !ok {
		return
	}

	var req schemas.CreateTag
	if !bindJSON(c, &req) {
		return
	}

	tag, err := h.service.Create(c.Request.Context(), accountID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	publish(h.bus, c, "tag", tag.ID)
	respondSuccess(c, http.StatusCreated, gin.H{"tagId": tag.ID})
}

func (h *TagHandler) UpdateTag(c *gin.Context) {
	accountID, ok := requireAccount(c)
	if !ok {
		return
	}

	var req schemas.UpdateTag
	if !bindJSON(c, &req) {
		return
	}

	tag, err := h.service.Update(c.Request.Context(), accountID, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	publish(h.bus, c, "tag", tag.ID)
	respondSuccess(c, http.StatusOK, gin.H{"tagId": tag.ID, "tag": dto.ToTagDTO(*tag)})
}

func (h *TagHandler) DeleteTag(c *gin.Context) {
	accountID, ok := requireAccount(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if err := h.service.Delete(c.Request.Context(), accountID, id); err != nil {
		respondError(c, err)
		return
	}

	publish(h.bus, c, "tag", id)
	respondSuccess(c, http.StatusOK, nil)
}

// ListTagTasks returns the top-level tasks carrying a tag
func (h *TagHandler) ListTagTasks(c *gin.Context) {
	accountID, ok := requireAccount(c)
	if !ok {
		return
	}

	tasks, err := h.service.Tasks(c.Request.Context(), accountID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tasks": dto.ToTaskDTOs(tasks)})
}
