package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/openedu/institution-backend/internal/logger"
	"github.com/openedu/institution-backend/internal/services"
)

type AssignmentHandler struct {
	log           *logger.Logger
	assignmentSvc services.AssignmentService
}

func NewAssignmentHandler(baseLog *logger.Logger, assignmentSvc services.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{
		log:           baseLog.With("handler", "AssignmentHandler"),
		assignmentSvc: assignmentSvc,
	}
}

type createAssignmentRequest struct {
	LessonID    uint       `json:"lesson_id" binding:"required"`
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	MaxScore    int        `json:"max_score" binding:"required,min=1"`
}

type updateAssignmentRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	MaxScore    *int       `json:"max_score" binding:"omitempty,min=1"`
}

// POST /api/assignments
func (h *AssignmentHandler) Create(c *gin.Context) {
	var req createAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	assignment, err := h.assignmentSvc.Create(c.Request.Context(), services.CreateAssignmentInput{
		LessonID:    req.LessonID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		MaxScore:    req.MaxScore,
	})
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, assignment)
}

// GET /api/assignments/:id
func (h *AssignmentHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	assignment, err := h.assignmentSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, assignment)
}

// GET /api/lessons/:id/assignments
func (h *AssignmentHandler) ListByLesson(c *gin.Context) {
	lessonID, ok := pathID(c, "id")
	if !ok {
		return
	}
	assignments, err := h.assignmentSvc.ListByLesson(c.Request.Context(), lessonID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, assignments)
}

// PATCH /api/assignments/:id
func (h *AssignmentHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req updateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	assignment, err := h.assignmentSvc.Update(c.Request.Context(), id, services.UpdateAssignmentInput{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		MaxScore:    req.MaxScore,
	})
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, assignment)
}

// DELETE /api/assignments/:id
func (h *AssignmentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.assignmentSvc.Delete(c.Request.Context(), id); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondNoContent(c)
}
