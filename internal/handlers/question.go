package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openedu/institution-backend/internal/logger"
	"github.com/openedu/institution-backend/internal/services"
	"github.com/openedu/institution-backend/internal/types"
)

type QuestionHandler struct {
	log         *logger.Logger
	questionSvc services.QuestionService
}

func NewQuestionHandler(baseLog *logger.Logger, questionSvc services.QuestionService) *QuestionHandler {
	return &QuestionHandler{
		log:         baseLog.With("handler", "QuestionHandler"),
		questionSvc: questionSvc,
	}
}

type createQuestionRequest struct {
	QuizID uint               `json:"quiz_id" binding:"required"`
	Text   string             `json:"text" binding:"required"`
	Type   types.QuestionType `json:"type" binding:"required,oneof=SINGLE_CHOICE MULTIPLE_CHOICE TEXT"`
}

type updateQuestionRequest struct {
	Text *string             `json:"text"`
	Type *types.QuestionType `json:"type" binding:"omitempty,oneof=SINGLE_CHOICE MULTIPLE_CHOICE TEXT"`
}

// POST /api/questions
func (h *QuestionHandler) Create(c *gin.Context) {
	var req createQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	question, err := h.questionSvc.Create(c.Request.Context(), services.CreateQuestionInput{
		QuizID: req.QuizID,
		Text:   req.Text,
		Type:   req.Type,
	})
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, question)
}

// GET /api/questions/:id
func (h *QuestionHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	question, err := h.questionSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, question)
}

// GET /api/quizzes/:id/questions
func (h *QuestionHandler) ListByQuiz(c *gin.Context) {
	quizID, ok := pathID(c, "id")
	if !ok {
		return
	}
	questions, err := h.questionSvc.ListByQuiz(c.Request.Context(), quizID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, questions)
}

// PATCH /api/questions/:id
func (h *QuestionHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req updateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	question, err := h.questionSvc.Update(c.Request.Context(), id, services.UpdateQuestionInput{
		Text: req.Text,
		Type: req.Type,
	})
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, question)
}

// DELETE /api/questions/:id
func (h *QuestionHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.questionSvc.Delete(c.Request.Context(), id); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondNoContent(c)
}
