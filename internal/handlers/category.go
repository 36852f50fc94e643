package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/openedu/institution-backend/internal/logger"
	"github.com/openedu/institution-backend/internal/services"
)

type CategoryHandler struct {
	log         *logger.Logger
	categorySvc services.CategoryService
}

func NewCategoryHandler(baseLog *logger.Logger, categorySvc services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		log:         baseLog.With("handler", "CategoryHandler"),
		categorySvc: categorySvc,
	}
}

// GET /api/categories
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categorySvc.List(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, categories)
}

// GET /api/categories/:id
func (h *CategoryHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	category, err := h.categorySvc.GetByID(c.Request.Context(), id)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, category)
}

// POST /api/categories/refresh
func (h *CategoryHandler) Refresh(c *gin.Context) {
	if err := h.categorySvc.Refresh(c.Request.Context()); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondNoContent(c)
}
