package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openedu/institution-backend/internal/logger"
	"github.com/openedu/institution-backend/internal/services"
)

type ModuleHandler struct {
	log       *logger.Logger
	moduleSvc services.ModuleService
}

func NewModuleHandler(baseLog *logger.Logger, moduleSvc services.ModuleService) *ModuleHandler {
	return &ModuleHandler{
		log:       baseLog.With("handler", "ModuleHandler"),
		moduleSvc: moduleSvc,
	}
}

type createModuleRequest struct {
	CourseID    uint   `json:"course_id" binding:"required"`
	Title       string `json:"title" binding:"required"`
	OrderIndex  int    `json:"order_index"`
	Description string `json:"description"`
}

type updateModuleRequest struct {
	Title       *string `json:"title"`
	OrderIndex  *int    `json:"order_index"`
	Description *string `json:"description"`
}

type moveModuleRequest struct {
	CourseID uint `json:"course_id" binding:"required"`
}

type reorderModuleRequest struct {
	OrderIndex *int `json:"order_index" binding:"required"`
}

// POST /api/modules
func (h *ModuleHandler) Create(c *gin.Context) {
	var req createModuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	module, err := h.moduleSvc.Create(c.Request.Context(), services.CreateModuleInput{
		CourseID:    req.CourseID,
		Title:       req.Title,
		OrderIndex:  req.OrderIndex,
		Description: req.Description,
	})
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, module)
}

// GET /api/modules/:id
func (h *ModuleHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	module, err := h.moduleSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, module)
}

// GET /api/courses/:id/modules
func (h *ModuleHandler) ListByCourse(c *gin.Context) {
	courseID, ok := pathID(c, "id")
	if !ok {
		return
	}
	modules, err := h.moduleSvc.ListByCourse(c.Request.Context(), courseID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, modules)
}

// PATCH /api/modules/:id
func (h *ModuleHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req updateModuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	module, err := h.moduleSvc.Update(c.Request.Context(), id, services.UpdateModuleInput{
		Title:       req.Title,
		OrderIndex:  req.OrderIndex,
		Description: req.Description,
	})
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, module)
}

// POST /api/modules/:id/move
func (h *ModuleHandler) Move(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req moveModuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	module, err := h.moduleSvc.MoveToCourse(c.Request.Context(), id, req.CourseID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, module)
}

// POST /api/modules/:id/reorder
func (h *ModuleHandler) Reorder(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reorderModuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	module, err := h.moduleSvc.Reorder(c.Request.Context(), id, *req.OrderIndex)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, module)
}

// DELETE /api/modules/:id
func (h *ModuleHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.moduleSvc.Delete(c.Request.Context(), id); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondNoContent(c)
}
