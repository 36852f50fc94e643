package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openedu/institution-backend/internal/logger"
	"github.com/openedu/institution-backend/internal/services"
)

type SubmissionHandler struct {
	log           *logger.Logger
	submissionSvc services.SubmissionService
}

func NewSubmissionHandler(baseLog *logger.Logger, submissionSvc services.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{
		log:           baseLog.With("handler", "SubmissionHandler"),
		submissionSvc: submissionSvc,
	}
}

type createSubmissionRequest struct {
	AssignmentID uint   `json:"assignment_id" binding:"required"`
	StudentID    uint   `json:"student_id" binding:"required"`
	Content      string `json:"content" binding:"required"`
}

type gradeSubmissionRequest struct {
	Score    *int   `json:"score" binding:"required,min=0,max=100"`
	Feedback string `json:"feedback"`
}

// POST /api/submissions
func (h *SubmissionHandler) Create(c *gin.Context) {
	var req createSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	submission, err := h.submissionSvc.Create(c.Request.Context(), services.CreateSubmissionInput{
		AssignmentID: req.AssignmentID,
		StudentID:    req.StudentID,
		Content:      req.Content,
	})
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, submission)
}

// GET /api/submissions/:id
func (h *SubmissionHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	submission, err := h.submissionSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, submission)
}

// POST /api/submissions/:id/grade
func (h *SubmissionHandler) Grade(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req gradeSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	submission, err := h.submissionSvc.Grade(c.Request.Context(), id, services.GradeSubmissionInput{
		Score:    *req.Score,
		Feedback: req.Feedback,
	})
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, submission)
}

// GET /api/students/:id/submissions
func (h *SubmissionHandler) ListByStudent(c *gin.Context) {
	studentID, ok := pathID(c, "id")
	if !ok {
		return
	}
	submissions, err := h.submissionSvc.ListByStudent(c.Request.Context(), studentID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, submissions)
}

// GET /api/assignments/:id/submissions
func (h *SubmissionHandler) ListByAssignment(c *gin.Context) {
	assignmentID, ok := pathID(c, "id")
	if !ok {
		return
	}
	submissions, err := h.submissionSvc.ListByAssignment(c.Request.Context(), assignmentID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, submissions)
}
