package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openedu/institution-backend/internal/logger"
	"github.com/openedu/institution-backend/internal/services"
)

type LessonHandler struct {
	log       *logger.Logger
	lessonSvc services.LessonService
}

func NewLessonHandler(baseLog *logger.Logger, lessonSvc services.LessonService) *LessonHandler {
	return &LessonHandler{
		log:       baseLog.With("handler", "LessonHandler"),
		lessonSvc: lessonSvc,
	}
}

type createLessonRequest struct {
	ModuleID uint   `json:"module_id" binding:"required"`
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content"`
	VideoURL string `json:"video_url"`
}

type updateLessonRequest struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	VideoURL *string `json:"video_url"`
}

// POST /api/lessons
func (h *LessonHandler) Create(c *gin.Context) {
	var req createLessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	lesson, err := h.lessonSvc.Create(c.Request.Context(), services.CreateLessonInput{
		ModuleID: req.ModuleID,
		Title:    req.Title,
		Content:  req.Content,
		VideoURL: req.VideoURL,
	})
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, lesson)
}

// GET /api/lessons/:id
func (h *LessonHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	lesson, err := h.lessonSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, lesson)
}

// GET /api/modules/:id/lessons
func (h *LessonHandler) ListByModule(c *gin.Context) {
	moduleID, ok := pathID(c, "id")
	if !ok {
		return
	}
	lessons, err := h.lessonSvc.ListByModule(c.Request.Context(), moduleID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, lessons)
}

// PATCH /api/lessons/:id
func (h *LessonHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req updateLessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	lesson, err := h.lessonSvc.Update(c.Request.Context(), id, services.UpdateLessonInput{
		Title:    req.Title,
		Content:  req.Content,
		VideoURL: req.VideoURL,
	})
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, lesson)
}

// DELETE /api/lessons/:id
func (h *LessonHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.lessonSvc.Delete(c.Request.Context(), id); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondNoContent(c)
}
