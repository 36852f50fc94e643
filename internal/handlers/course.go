package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/openedu/institution-backend/internal/logger"
	"github.com/openedu/institution-backend/internal/services"
)

type CourseHandler struct {
	log       *logger.Logger
	courseSvc services.CourseService
}

func NewCourseHandler(baseLog *logger.Logger, courseSvc services.CourseService) *CourseHandler {
	return &CourseHandler{
		log:       baseLog.With("handler", "CourseHandler"),
		courseSvc: courseSvc,
	}
}

type createCourseRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	CategoryID  *uint      `json:"category_id"`
	TeacherID   uint       `json:"teacher_id" binding:"required"`
	Duration    *int       `json:"duration" binding:"omitempty,min=1"`
	StartDate   *time.Time `json:"start_date"`
}

type updateCourseRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	CategoryID  *uint      `json:"category_id"`
	TeacherID   *uint      `json:"teacher_id"`
	Duration    *int       `json:"duration" binding:"omitempty,min=1"`
	StartDate   *time.Time `json:"start_date"`
}

// POST /api/courses
func (h *CourseHandler) Create(c *gin.Context) {
	var req createCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	course, err := h.courseSvc.Create(c.Request.Context(), services.CreateCourseInput{
		Title:       req.Title,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		TeacherID:   req.TeacherID,
		Duration:    req.Duration,
		StartDate:   req.StartDate,
	})
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, course)
}

// GET /api/courses/:id
func (h *CourseHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	course, err := h.courseSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, course)
}

// GET /api/courses
// Optional filters: ?teacher_id=, ?category_id=, ?search=, ?tag=
func (h *CourseHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	if search := c.Query("search"); search != "" {
		courses, err := h.courseSvc.Search(ctx, search)
		if err != nil {
			RespondServiceError(c, err)
			return
		}
		RespondOK(c, courses)
		return
	}
	if tag := c.Query("tag"); tag != "" {
		courses, err := h.courseSvc.ListByTagName(ctx, tag)
		if err != nil {
			RespondServiceError(c, err)
			return
		}
		RespondOK(c, courses)
		return
	}
	if raw := c.Query("teacher_id"); raw != "" {
		id, ok := queryID(c, raw)
		if !ok {
			return
		}
		courses, err := h.courseSvc.ListByTeacher(ctx, id)
		if err != nil {
			RespondServiceError(c, err)
			return
		}
		RespondOK(c, courses)
		return
	}
	if raw := c.Query("category_id"); raw != "" {
		id, ok := queryID(c, raw)
		if !ok {
			return
		}
		courses, err := h.courseSvc.ListByCategory(ctx, id)
		if err != nil {
			RespondServiceError(c, err)
			return
		}
		RespondOK(c, courses)
		return
	}
	courses, err := h.courseSvc.List(ctx)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, courses)
}

// PATCH /api/courses/:id
func (h *CourseHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req updateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	course, err := h.courseSvc.Update(c.Request.Context(), id, services.UpdateCourseInput{
		Title:       req.Title,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		TeacherID:   req.TeacherID,
		Duration:    req.Duration,
		StartDate:   req.StartDate,
	})
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, course)
}

// DELETE /api/courses/:id
func (h *CourseHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.courseSvc.Delete(c.Request.Context(), id); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondNoContent(c)
}
