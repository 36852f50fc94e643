package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openedu/institution-backend/internal/logger"
	"github.com/openedu/institution-backend/internal/services"
)

type QuizHandler struct {
	log     *logger.Logger
	quizSvc services.QuizService
}

func NewQuizHandler(baseLog *logger.Logger, quizSvc services.QuizService) *QuizHandler {
	return &QuizHandler{
		log:     baseLog.With("handler", "QuizHandler"),
		quizSvc: quizSvc,
	}
}

type createQuizRequest struct {
	ModuleID  uint   `json:"module_id" binding:"required"`
	Title     string `json:"title" binding:"required"`
	TimeLimit int    `json:"time_limit" binding:"omitempty,min=1"`
}

type updateQuizRequest struct {
	Title     *string `json:"title"`
	TimeLimit *int    `json:"time_limit" binding:"omitempty,min=1"`
}

// POST /api/quizzes
func (h *QuizHandler) Create(c *gin.Context) {
	var req createQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	quiz, err := h.quizSvc.Create(c.Request.Context(), services.CreateQuizInput{
		ModuleID:  req.ModuleID,
		Title:     req.Title,
		TimeLimit: req.TimeLimit,
	})
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, quiz)
}

// GET /api/quizzes/:id
func (h *QuizHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	quiz, err := h.quizSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, quiz)
}

// GET /api/modules/:id/quiz
func (h *QuizHandler) GetByModule(c *gin.Context) {
	moduleID, ok := pathID(c, "id")
	if !ok {
		return
	}
	quiz, err := h.quizSvc.GetByModule(c.Request.Context(), moduleID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, quiz)
}

// PATCH /api/quizzes/:id
func (h *QuizHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req updateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	quiz, err := h.quizSvc.Update(c.Request.Context(), id, services.UpdateQuizInput{
		Title:     req.Title,
		TimeLimit: req.TimeLimit,
	})
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, quiz)
}

// DELETE /api/quizzes/:id
func (h *QuizHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.quizSvc.Delete(c.Request.Context(), id); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondNoContent(c)
}
