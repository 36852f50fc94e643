package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openedu/institution-backend/internal/logger"
	"github.com/openedu/institution-backend/internal/services"
)

type QuizSubmissionHandler struct {
	log               *logger.Logger
	quizSubmissionSvc services.QuizSubmissionService
}

func NewQuizSubmissionHandler(baseLog *logger.Logger, quizSubmissionSvc services.QuizSubmissionService) *QuizSubmissionHandler {
	return &QuizSubmissionHandler{
		log:               baseLog.With("handler", "QuizSubmissionHandler"),
		quizSubmissionSvc: quizSubmissionSvc,
	}
}

type createQuizSubmissionRequest struct {
	QuizID    uint `json:"quiz_id" binding:"required"`
	StudentID uint `json:"student_id" binding:"required"`
	Score     *int `json:"score" binding:"required,min=0,max=100"`
}

// POST /api/quiz-submissions
func (h *QuizSubmissionHandler) Create(c *gin.Context) {
	var req createQuizSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	submission, err := h.quizSubmissionSvc.Create(c.Request.Context(), services.CreateQuizSubmissionInput{
		QuizID:    req.QuizID,
		StudentID: req.StudentID,
		Score:     *req.Score,
	})
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, submission)
}

// GET /api/quiz-submissions/:id
func (h *QuizSubmissionHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	submission, err := h.quizSubmissionSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, submission)
}

type updateQuizSubmissionRequest struct {
	Score *int `json:"score" binding:"required,min=0,max=100"`
}

// PATCH /api/quiz-submissions/:id
func (h *QuizSubmissionHandler) UpdateScore(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req updateQuizSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	submission, err := h.quizSubmissionSvc.UpdateScore(c.Request.Context(), id, *req.Score)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, submission)
}

// DELETE /api/quiz-submissions/:id
func (h *QuizSubmissionHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.quizSubmissionSvc.Delete(c.Request.Context(), id); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondNoContent(c)
}

// GET /api/students/:id/quiz-submissions
func (h *QuizSubmissionHandler) ListByStudent(c *gin.Context) {
	studentID, ok := pathID(c, "id")
	if !ok {
		return
	}
	submissions, err := h.quizSubmissionSvc.ListByStudent(c.Request.Context(), studentID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, submissions)
}

// GET /api/quizzes/:id/submissions
func (h *QuizSubmissionHandler) ListByQuiz(c *gin.Context) {
	quizID, ok := pathID(c, "id")
	if !ok {
		return
	}
	submissions, err := h.quizSubmissionSvc.ListByQuiz(c.Request.Context(), quizID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, submissions)
}
