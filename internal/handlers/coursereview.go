package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openedu/institution-backend/internal/logger"
	"github.com/openedu/institution-backend/internal/services"
)

type CourseReviewHandler struct {
	log       *logger.Logger
	reviewSvc services.CourseReviewService
}

func NewCourseReviewHandler(baseLog *logger.Logger, reviewSvc services.CourseReviewService) *CourseReviewHandler {
	return &CourseReviewHandler{
		log:       baseLog.With("handler", "CourseReviewHandler"),
		reviewSvc: reviewSvc,
	}
}

type addCourseReviewRequest struct {
	CourseID  uint   `json:"course_id" binding:"required"`
	StudentID uint   `json:"student_id" binding:"required"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Comment   string `json:"comment"`
}

type updateCourseReviewRequest struct {
	Rating  *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Comment *string `json:"comment"`
}

// POST /api/reviews
func (h *CourseReviewHandler) Add(c *gin.Context) {
	var req addCourseReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	review, err := h.reviewSvc.Add(c.Request.Context(), services.AddCourseReviewInput{
		CourseID:  req.CourseID,
		StudentID: req.StudentID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, review)
}

// GET /api/reviews/:id
func (h *CourseReviewHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	review, err := h.reviewSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, review)
}

// PATCH /api/reviews/:id
func (h *CourseReviewHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req updateCourseReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	review, err := h.reviewSvc.Update(c.Request.Context(), id, services.UpdateCourseReviewInput{
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, review)
}

// DELETE /api/reviews/:id
func (h *CourseReviewHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.reviewSvc.Delete(c.Request.Context(), id); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondNoContent(c)
}

// GET /api/courses/:id/reviews
func (h *CourseReviewHandler) ListByCourse(c *gin.Context) {
	courseID, ok := pathID(c, "id")
	if !ok {
		return
	}
	reviews, err := h.reviewSvc.ListByCourse(c.Request.Context(), courseID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, reviews)
}

// GET /api/students/:id/reviews
func (h *CourseReviewHandler) ListByStudent(c *gin.Context) {
	studentID, ok := pathID(c, "id")
	if !ok {
		return
	}
	reviews, err := h.reviewSvc.ListByStudent(c.Request.Context(), studentID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, reviews)
}

// GET /api/courses/:id/rating
func (h *CourseReviewHandler) AverageRating(c *gin.Context) {
	courseID, ok := pathID(c, "id")
	if !ok {
		return
	}
	avg, err := h.reviewSvc.AverageRating(c.Request.Context(), courseID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"course_id": courseID, "average_rating": avg})
}
