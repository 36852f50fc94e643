package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/openedu/institution-backend/internal/apierr"
	"github.com/openedu/institution-backend/internal/logger"
	"github.com/openedu/institution-backend/internal/repos"
	"github.com/openedu/institution-backend/internal/types"
)

type EnrollmentService interface {
	Enroll(ctx context.Context, studentID, courseID uint) (*types.EnrollmentResponse, error)
	Unenroll(ctx context.Context, studentID, courseID uint) error
	Get(ctx context.Context, studentID, courseID uint) (*types.EnrollmentResponse, error)
	UpdateStatus(ctx context.Context, studentID, courseID uint, status string) (*types.EnrollmentResponse, error)
	ListByStudent(ctx context.Context, studentID uint) ([]types.EnrollmentResponse, error)
	ListByCourse(ctx context.Context, courseID uint) ([]types.EnrollmentResponse, error)
	ListByStatus(ctx context.Context, status string) ([]types.EnrollmentResponse, error)
}

type enrollmentService struct {
	db             *gorm.DB
	log            *logger.Logger
	userRepo       repos.UserRepo
	courseRepo     repos.CourseRepo
	enrollmentRepo repos.EnrollmentRepo
}

func NewEnrollmentService(
	db *gorm.DB,
	baseLog *logger.Logger,
	userRepo repos.UserRepo,
	courseRepo repos.CourseRepo,
	enrollmentRepo repos.EnrollmentRepo,
) EnrollmentService {
	return &enrollmentService{
		db:             db,
		log:            baseLog.With("service", "EnrollmentService"),
		userRepo:       userRepo,
		courseRepo:     courseRepo,
		enrollmentRepo: enrollmentRepo,
	}
}

// Enroll creates the (student, course) membership row. Enrolling twice
// in the same course is a conflict.
func (s *enrollmentService) Enroll(ctx context.Context, studentID, courseID uint) (*types.EnrollmentResponse, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		student, err := s.userRepo.GetByID(ctx, tx, studentID)
		if err != nil {
			return err
		}
		if student == nil {
			return apierr.NotFound("User", studentID)
		}
		course, err := s.courseRepo.GetByID(ctx, tx, courseID)
		if err != nil {
			return err
		}
		if course == nil {
			return apierr.NotFound("Course", courseID)
		}
		exists, err := s.enrollmentRepo.Exists(ctx, tx, studentID, courseID)
		if err != nil {
			return err
		}
		if exists {
			return apierr.Conflictf("Enrollment", "student %d is already enrolled in course %d", studentID, courseID)
		}
		enrollment := &types.Enrollment{
			UserID:     studentID,
			CourseID:   courseID,
			EnrollDate: time.Now().UTC(),
			Status:     types.EnrollmentStatusActive,
		}
		return s.enrollmentRepo.Create(ctx, tx, enrollment)
	})
	if err != nil {
		s.log.Warn("enroll failed", "error", err, "student_id", studentID, "course_id", courseID)
		return nil, err
	}
	return s.getResponse(ctx, studentID, courseID)
}

func (s *enrollmentService) Unenroll(ctx context.Context, studentID, courseID uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		enrollment, err := s.enrollmentRepo.Get(ctx, tx, studentID, courseID)
		if err != nil {
			return err
		}
		if enrollment == nil {
			return apierr.NotFoundf("Enrollment", "enrollment of student %d in course %d not found", studentID, courseID)
		}
		return s.enrollmentRepo.Delete(ctx, tx, studentID, courseID)
	})
	if err != nil {
		s.log.Warn("unenroll failed", "error", err, "student_id", studentID, "course_id", courseID)
		return err
	}
	return nil
}

func (s *enrollmentService) Get(ctx context.Context, studentID, courseID uint) (*types.EnrollmentResponse, error) {
	return s.getResponse(ctx, studentID, courseID)
}

func (s *enrollmentService) UpdateStatus(ctx context.Context, studentID, courseID uint, status string) (*types.EnrollmentResponse, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		enrollment, err := s.enrollmentRepo.Get(ctx, tx, studentID, courseID)
		if err != nil {
			return err
		}
		if enrollment == nil {
			return apierr.NotFoundf("Enrollment", "enrollment of student %d in course %d not found", studentID, courseID)
		}
		enrollment.Status = status
		return s.enrollmentRepo.Save(ctx, tx, enrollment)
	})
	if err != nil {
		s.log.Warn("update enrollment status failed", "error", err,
			"student_id", studentID, "course_id", courseID)
		return nil, err
	}
	return s.getResponse(ctx, studentID, courseID)
}

func (s *enrollmentService) ListByStudent(ctx context.Context, studentID uint) ([]types.EnrollmentResponse, error) {
	student, err := s.userRepo.GetByID(ctx, nil, studentID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apierr.NotFound("User", studentID)
	}
	enrollments, err := s.enrollmentRepo.GetByStudentID(ctx, nil, studentID)
	if err != nil {
		return nil, err
	}
	return toEnrollmentResponses(enrollments), nil
}

func (s *enrollmentService) ListByCourse(ctx context.Context, courseID uint) ([]types.EnrollmentResponse, error) {
	course, err := s.courseRepo.GetByID(ctx, nil, courseID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, apierr.NotFound("Course", courseID)
	}
	enrollments, err := s.enrollmentRepo.GetByCourseID(ctx, nil, courseID)
	if err != nil {
		return nil, err
	}
	return toEnrollmentResponses(enrollments), nil
}

func (s *enrollmentService) ListByStatus(ctx context.Context, status string) ([]types.EnrollmentResponse, error) {
	enrollments, err := s.enrollmentRepo.GetByStatus(ctx, nil, status)
	if err != nil {
		return nil, err
	}
	return toEnrollmentResponses(enrollments), nil
}

func (s *enrollmentService) getResponse(ctx context.Context, studentID, courseID uint) (*types.EnrollmentResponse, error) {
	enrollment, err := s.enrollmentRepo.Get(ctx, nil, studentID, courseID)
	if err != nil {
		s.log.Warn("load enrollment failed", "error", err, "student_id", studentID, "course_id", courseID)
		return nil, err
	}
	if enrollment == nil {
		return nil, apierr.NotFoundf("Enrollment", "enrollment of student %d in course %d not found", studentID, courseID)
	}
	out := toEnrollmentResponse(enrollment)
	return &out, nil
}
