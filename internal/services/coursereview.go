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

type AddCourseReviewInput struct {
	CourseID  uint
	StudentID uint
	Rating    int
	Comment   string
}

type UpdateCourseReviewInput struct {
	Rating  *int
	Comment *string
}

type CourseReviewService interface {
	Add(ctx context.Context, input AddCourseReviewInput) (*types.CourseReviewResponse, error)
	GetByID(ctx context.Context, id uint) (*types.CourseReviewResponse, error)
	Update(ctx context.Context, id uint, input UpdateCourseReviewInput) (*types.CourseReviewResponse, error)
	Delete(ctx context.Context, id uint) error
	ListByCourse(ctx context.Context, courseID uint) ([]types.CourseReviewResponse, error)
	ListByStudent(ctx context.Context, studentID uint) ([]types.CourseReviewResponse, error)
	AverageRating(ctx context.Context, courseID uint) (*float64, error)
}

type courseReviewService struct {
	db               *gorm.DB
	log              *logger.Logger
	userRepo         repos.UserRepo
	courseRepo       repos.CourseRepo
	courseReviewRepo repos.CourseReviewRepo
}

func NewCourseReviewService(
	db *gorm.DB,
	baseLog *logger.Logger,
	userRepo repos.UserRepo,
	courseRepo repos.CourseRepo,
	courseReviewRepo repos.CourseReviewRepo,
) CourseReviewService {
	return &courseReviewService{
		db:               db,
		log:              baseLog.With("service", "CourseReviewService"),
		userRepo:         userRepo,
		courseRepo:       courseRepo,
		courseReviewRepo: courseReviewRepo,
	}
}

// Add records a student's review of a course. One review per
// (course, student).
func (s *courseReviewService) Add(ctx context.Context, input AddCourseReviewInput) (*types.CourseReviewResponse, error) {
	var created *types.CourseReview
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		course, err := s.courseRepo.GetByID(ctx, tx, input.CourseID)
		if err != nil {
			return err
		}
		if course == nil {
			return apierr.NotFound("Course", input.CourseID)
		}
		student, err := s.userRepo.GetByID(ctx, tx, input.StudentID)
		if err != nil {
			return err
		}
		if student == nil {
			return apierr.NotFound("User", input.StudentID)
		}
		existing, err := s.courseReviewRepo.GetByCourseAndStudent(ctx, tx, input.CourseID, input.StudentID)
		if err != nil {
			return err
		}
		if existing != nil {
			return apierr.Conflictf("CourseReview", "student %d already reviewed course %d", input.StudentID, input.CourseID)
		}
		review := &types.CourseReview{
			CourseID:  input.CourseID,
			StudentID: input.StudentID,
			Rating:    input.Rating,
			Comment:   input.Comment,
			CreatedAt: time.Now().UTC(),
		}
		if err := s.courseReviewRepo.Create(ctx, tx, review); err != nil {
			return err
		}
		created = review
		return nil
	})
	if err != nil {
		s.log.Warn("add review failed", "error", err,
			"course_id", input.CourseID, "student_id", input.StudentID)
		return nil, err
	}
	return s.getResponse(ctx, created.ID)
}

func (s *courseReviewService) GetByID(ctx context.Context, id uint) (*types.CourseReviewResponse, error) {
	return s.getResponse(ctx, id)
}

func (s *courseReviewService) Update(ctx context.Context, id uint, input UpdateCourseReviewInput) (*types.CourseReviewResponse, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		review, err := s.courseReviewRepo.GetByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if review == nil {
			return apierr.NotFound("CourseReview", id)
		}
		if input.Rating != nil {
			review.Rating = *input.Rating
		}
		if input.Comment != nil {
			review.Comment = *input.Comment
		}
		return s.courseReviewRepo.Save(ctx, tx, review)
	})
	if err != nil {
		s.log.Warn("update review failed", "error", err, "review_id", id)
		return nil, err
	}
	return s.getResponse(ctx, id)
}

func (s *courseReviewService) Delete(ctx context.Context, id uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		review, err := s.courseReviewRepo.GetByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if review == nil {
			return apierr.NotFound("CourseReview", id)
		}
		return s.courseReviewRepo.Delete(ctx, tx, id)
	})
	if err != nil {
		s.log.Warn("delete review failed", "error", err, "review_id", id)
		return err
	}
	return nil
}

func (s *courseReviewService) ListByCourse(ctx context.Context, courseID uint) ([]types.CourseReviewResponse, error) {
	course, err := s.courseRepo.GetByID(ctx, nil, courseID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, apierr.NotFound("Course", courseID)
	}
	reviews, err := s.courseReviewRepo.GetByCourseID(ctx, nil, courseID)
	if err != nil {
		return nil, err
	}
	return toCourseReviewResponses(reviews), nil
}

func (s *courseReviewService) ListByStudent(ctx context.Context, studentID uint) ([]types.CourseReviewResponse, error) {
	student, err := s.userRepo.GetByID(ctx, nil, studentID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apierr.NotFound("User", studentID)
	}
	reviews, err := s.courseReviewRepo.GetByStudentID(ctx, nil, studentID)
	if err != nil {
		return nil, err
	}
	return toCourseReviewResponses(reviews), nil
}

// AverageRating recomputes from the stored rows on every call. A course
// with no reviews yields nil, not zero.
func (s *courseReviewService) AverageRating(ctx context.Context, courseID uint) (*float64, error) {
	course, err := s.courseRepo.GetByID(ctx, nil, courseID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, apierr.NotFound("Course", courseID)
	}
	avg, err := s.courseReviewRepo.AverageRating(ctx, nil, courseID)
	if err != nil {
		s.log.Warn("average rating failed", "error", err, "course_id", courseID)
		return nil, err
	}
	return avg, nil
}

func (s *courseReviewService) getResponse(ctx context.Context, id uint) (*types.CourseReviewResponse, error) {
	review, err := s.courseReviewRepo.GetByID(ctx, nil, id)
	if err != nil {
		s.log.Warn("load review failed", "error", err, "review_id", id)
		return nil, err
	}
	if review == nil {
		return nil, apierr.NotFound("CourseReview", id)
	}
	out := toCourseReviewResponse(review)
	return &out, nil
}
