package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/potorik/construction-expense-tracker/service"
)

type TagHandler struct {
	svc *service.Service
}

func NewTagHandler(svc *service.Service) *TagHandler {
	return &TagHandler{svc: svc}
}

// List returns all tags
func (h *TagHandler) List(c *gin.Context) {
	tags, err := h.svc.ListTags()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tags)
}

// Create adds a new tag
func (h *TagHandler) Create(c *gin.Context) {
	var req service.TagInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	tag, err := h.svc.CreateTag(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tag)
}

// Delete removes a tag and strips it from every contract
func (h *TagHandler) Delete(c *gin.Context) {
	if err := h.svc.DeleteTag(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tag deleted"})
}
