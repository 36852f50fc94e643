package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openedu/institution-backend/internal/logger"
	"github.com/openedu/institution-backend/internal/services"
)

var errMissingStatus = errors.New("missing status query parameter")

type EnrollmentHandler struct {
	log           *logger.Logger
	enrollmentSvc services.EnrollmentService
}

func NewEnrollmentHandler(baseLog *logger.Logger, enrollmentSvc services.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{
		log:           baseLog.With("handler", "EnrollmentHandler"),
		enrollmentSvc: enrollmentSvc,
	}
}

type enrollRequest struct {
	StudentID uint `json:"student_id" binding:"required"`
	CourseID  uint `json:"course_id" binding:"required"`
}

type updateEnrollmentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// POST /api/enrollments
func (h *EnrollmentHandler) Enroll(c *gin.Context) {
	var req enrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	enrollment, err := h.enrollmentSvc.Enroll(c.Request.Context(), req.StudentID, req.CourseID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, enrollment)
}

// GET /api/enrollments/:studentId/:courseId
func (h *EnrollmentHandler) Get(c *gin.Context) {
	studentID, ok := pathID(c, "studentId")
	if !ok {
		return
	}
	courseID, ok := pathID(c, "courseId")
	if !ok {
		return
	}
	enrollment, err := h.enrollmentSvc.Get(c.Request.Context(), studentID, courseID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, enrollment)
}

// PATCH /api/enrollments/:studentId/:courseId
func (h *EnrollmentHandler) UpdateStatus(c *gin.Context) {
	studentID, ok := pathID(c, "studentId")
	if !ok {
		return
	}
	courseID, ok := pathID(c, "courseId")
	if !ok {
		return
	}
	var req updateEnrollmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	enrollment, err := h.enrollmentSvc.UpdateStatus(c.Request.Context(), studentID, courseID, req.Status)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, enrollment)
}

// DELETE /api/enrollments/:studentId/:courseId
func (h *EnrollmentHandler) Unenroll(c *gin.Context) {
	studentID, ok := pathID(c, "studentId")
	if !ok {
		return
	}
	courseID, ok := pathID(c, "courseId")
	if !ok {
		return
	}
	if err := h.enrollmentSvc.Unenroll(c.Request.Context(), studentID, courseID); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondNoContent(c)
}

// GET /api/students/:id/enrollments
func (h *EnrollmentHandler) ListByStudent(c *gin.Context) {
	studentID, ok := pathID(c, "id")
	if !ok {
		return
	}
	enrollments, err := h.enrollmentSvc.ListByStudent(c.Request.Context(), studentID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, enrollments)
}

// GET /api/courses/:id/enrollments
// Optional filter across all courses: GET /api/enrollments?status=
func (h *EnrollmentHandler) ListByCourse(c *gin.Context) {
	courseID, ok := pathID(c, "id")
	if !ok {
		return
	}
	enrollments, err := h.enrollmentSvc.ListByCourse(c.Request.Context(), courseID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, enrollments)
}

// GET /api/enrollments?status=Active
func (h *EnrollmentHandler) ListByStatus(c *gin.Context) {
	status := c.Query("status")
	if status == "" {
		RespondError(c, http.StatusBadRequest, "validation", errMissingStatus)
		return
	}
	enrollments, err := h.enrollmentSvc.ListByStatus(c.Request.Context(), status)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, enrollments)
}
