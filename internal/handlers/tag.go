package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openedu/institution-backend/internal/logger"
	"github.com/openedu/institution-backend/internal/services"
)

type TagHandler struct {
	log    *logger.Logger
	tagSvc services.TagService
}

func NewTagHandler(baseLog *logger.Logger, tagSvc services.TagService) *TagHandler {
	return &TagHandler{
		log:    baseLog.With("handler", "TagHandler"),
		tagSvc: tagSvc,
	}
}

type tagNameRequest struct {
	Name string `json:"name" binding:"required"`
}

type tagBatchRequest struct {
	TagIDs []uint `json:"tag_ids" binding:"required,min=1"`
}

// POST /api/tags
func (h *TagHandler) Create(c *gin.Context) {
	var req tagNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	tag, err := h.tagSvc.Create(c.Request.Context(), req.Name)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, tag)
}

// GET /api/tags
// Optional lookup: ?name=
func (h *TagHandler) List(c *gin.Context) {
	if name := c.Query("name"); name != "" {
		tag, err := h.tagSvc.GetByName(c.Request.Context(), name)
		if err != nil {
			RespondServiceError(c, err)
			return
		}
		RespondOK(c, tag)
		return
	}
	tags, err := h.tagSvc.List(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, tags)
}

// GET /api/tags/:id
func (h *TagHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	tag, err := h.tagSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, tag)
}

// PATCH /api/tags/:id
func (h *TagHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req tagNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	tag, err := h.tagSvc.Update(c.Request.Context(), id, req.Name)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, tag)
}

// DELETE /api/tags/:id
func (h *TagHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.tagSvc.Delete(c.Request.Context(), id); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondNoContent(c)
}

// GET /api/courses/:id/tags
func (h *TagHandler) ListForCourse(c *gin.Context) {
	courseID, ok := pathID(c, "id")
	if !ok {
		return
	}
	tags, err := h.tagSvc.ListForCourse(c.Request.Context(), courseID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, tags)
}

// PUT /api/courses/:id/tags/:tagId
func (h *TagHandler) AddToCourse(c *gin.Context) {
	courseID, ok := pathID(c, "id")
	if !ok {
		return
	}
	tagID, ok := pathID(c, "tagId")
	if !ok {
		return
	}
	tags, err := h.tagSvc.AddToCourse(c.Request.Context(), courseID, tagID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, tags)
}

// DELETE /api/courses/:id/tags/:tagId
func (h *TagHandler) RemoveFromCourse(c *gin.Context) {
	courseID, ok := pathID(c, "id")
	if !ok {
		return
	}
	tagID, ok := pathID(c, "tagId")
	if !ok {
		return
	}
	tags, err := h.tagSvc.RemoveFromCourse(c.Request.Context(), courseID, tagID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, tags)
}

// POST /api/courses/:id/tags/batch
func (h *TagHandler) AddBatch(c *gin.Context) {
	courseID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req tagBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	tags, err := h.tagSvc.AddBatch(c.Request.Context(), courseID, req.TagIDs)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, tags)
}

// DELETE /api/courses/:id/tags/batch
func (h *TagHandler) RemoveBatch(c *gin.Context) {
	courseID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req tagBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	tags, err := h.tagSvc.RemoveBatch(c.Request.Context(), courseID, req.TagIDs)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, tags)
}
