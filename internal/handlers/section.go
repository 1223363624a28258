package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/taskboard-api/internal/refresh"
	"github.com/yukikurage/taskboard-api/internal/schemas"
	"github.com/yukikurage/taskboard-api/internal/services"
)

type SectionHandler struct {
	service *services.SectionService
	bus     *refresh.Bus
}

func NewSectionHandler(service *services.SectionService, bus *refresh.Bus) *SectionHandler {
	return &SectionHandler{
		service: service,
		bus:     bus,
	}
}

func (h *SectionHandler) CreateSection(c *gin.Context) {
	accountID, ok := requireAccount(c)
	if !ok {
		return
	}

	var req schemas.CreateSection
	if !bindJSON(c, &req) {
		return
	}

	section, err := h.service.Create(c.Request.Context(), accountID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	publish(h.bus, c, "section", section.ID)
	respondSuccess(c, http.StatusCreated, gin.H{"sectionId": section.ID})
}

func (h *SectionHandler) RenameSection(c *gin.Context) {
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

	publish(h.bus, c, "section", id)
	respondSuccess(c, http.StatusOK, gin.H{"sectionId": id})
}

func (h *SectionHandler) ReorderSection(c *gin.Context) {
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

	publish(h.bus, c, "section", id)
	respondSuccess(c, http.StatusOK, gin.H{"sectionId": id})
}

// DeleteSection deletes a section; its tasks stay in the project unsectioned
func (h *SectionHandler) DeleteSection(c *gin.Context) {
	accountID, ok := requireAccount(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if err := h.service.Delete(c.Request.Context(), accountID, id); err != nil {
		respondError(c, err)
		return
	}

	publish(h.bus, c, "section", id)
	respondSuccess(c, http.StatusOK, nil)
}
