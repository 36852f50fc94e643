package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openedu/institution-backend/internal/logger"
	"github.com/openedu/institution-backend/internal/services"
)

type AnswerOptionHandler struct {
	log       *logger.Logger
	optionSvc services.AnswerOptionService
}

func NewAnswerOptionHandler(baseLog *logger.Logger, optionSvc services.AnswerOptionService) *AnswerOptionHandler {
	return &AnswerOptionHandler{
		log:       baseLog.With("handler", "AnswerOptionHandler"),
		optionSvc: optionSvc,
	}
}

type createAnswerOptionRequest struct {
	QuestionID uint   `json:"question_id" binding:"required"`
	Text       string `json:"text" binding:"required"`
	IsCorrect  bool   `json:"is_correct"`
}

type updateAnswerOptionRequest struct {
	Text      *string `json:"text"`
	IsCorrect *bool   `json:"is_correct"`
}

// POST /api/answer-options
func (h *AnswerOptionHandler) Create(c *gin.Context) {
	var req createAnswerOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	option, err := h.optionSvc.Create(c.Request.Context(), services.CreateAnswerOptionInput{
		QuestionID: req.QuestionID,
		Text:       req.Text,
		IsCorrect:  req.IsCorrect,
	})
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, option)
}

// GET /api/answer-options/:id
func (h *AnswerOptionHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	option, err := h.optionSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, option)
}

// GET /api/questions/:id/answer-options
func (h *AnswerOptionHandler) ListByQuestion(c *gin.Context) {
	questionID, ok := pathID(c, "id")
	if !ok {
		return
	}
	options, err := h.optionSvc.ListByQuestion(c.Request.Context(), questionID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, options)
}

// PATCH /api/answer-options/:id
func (h *AnswerOptionHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req updateAnswerOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	option, err := h.optionSvc.Update(c.Request.Context(), id, services.UpdateAnswerOptionInput{
		Text:      req.Text,
		IsCorrect: req.IsCorrect,
	})
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, option)
}

// DELETE /api/answer-options/:id
func (h *AnswerOptionHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.optionSvc.Delete(c.Request.Context(), id); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondNoContent(c)
}
