package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/openedu/institution-backend/internal/logger"
	"github.com/openedu/institution-backend/internal/types"
)

type CourseReviewRepo interface {
	Create(ctx context.Context, tx *gorm.DB, review *types.CourseReview) error
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.CourseReview, error)
	Save(ctx context.Context, tx *gorm.DB, review *types.CourseReview) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
	GetByCourseID(ctx context.Context, tx *gorm.DB, courseID uint) ([]*types.CourseReview, error)
	GetByStudentID(ctx context.Context, tx *gorm.DB, studentID uint) ([]*types.CourseReview, error)
	GetByCourseAndStudent(ctx context.Context, tx *gorm.DB, courseID, studentID uint) (*types.CourseReview, error)
	AverageRating(ctx context.Context, tx *gorm.DB, courseID uint) (*float64, error)
	CountByCourseID(ctx context.Context, tx *gorm.DB, courseID uint) (int64, error)
}

type courseReviewRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCourseReviewRepo(db *gorm.DB, baseLog *logger.Logger) CourseReviewRepo {
	return &courseReviewRepo{db: db, log: baseLog.With("repo", "CourseReviewRepo")}
}

func (r *courseReviewRepo) Create(ctx context.Context, tx *gorm.DB, review *types.CourseReview) error {
	return conn(r.db, tx).WithContext(ctx).Create(review).Error
}

func (r *courseReviewRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.CourseReview, error) {
	var review types.CourseReview
	err := conn(r.db, tx).WithContext(ctx).
		Preload("Course").
		Preload("Student").
		First(&review, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *courseReviewRepo) Save(ctx context.Context, tx *gorm.DB, review *types.CourseReview) error {
	return conn(r.db, tx).WithContext(ctx).
		Omit("Course", "Student").
		Save(review).Error
}

func (r *courseReviewRepo) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	return conn(r.db, tx).WithContext(ctx).Delete(&types.CourseReview{}, id).Error
}

func (r *courseReviewRepo) GetByCourseID(ctx context.Context, tx *gorm.DB, courseID uint) ([]*types.CourseReview, error) {
	var reviews []*types.CourseReview
	if err := conn(r.db, tx).WithContext(ctx).
		Preload("Course").
		Preload("Student").
		Where("course_id = ?", courseID).
		Order("id").
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *courseReviewRepo) GetByStudentID(ctx context.Context, tx *gorm.DB, studentID uint) ([]*types.CourseReview, error) {
	var reviews []*types.CourseReview
	if err := conn(r.db, tx).WithContext(ctx).
		Preload("Course").
		Preload("Student").
		Where("student_id = ?", studentID).
		Order("id").
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *courseReviewRepo) GetByCourseAndStudent(ctx context.Context, tx *gorm.DB, courseID, studentID uint) (*types.CourseReview, error) {
	var review types.CourseReview
	err := conn(r.db, tx).WithContext(ctx).
		Where("course_id = ? AND student_id = ?", courseID, studentID).
		First(&review).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// AverageRating returns nil when the course has no reviews.
func (r *courseReviewRepo) AverageRating(ctx context.Context, tx *gorm.DB, courseID uint) (*float64, error) {
	var avg *float64
	if err := conn(r.db, tx).WithContext(ctx).
		Model(&types.CourseReview{}).
		Select("AVG(rating)").
		Where("course_id = ?", courseID).
		Scan(&avg).Error; err != nil {
		return nil, err
	}
	return avg, nil
}

func (r *courseReviewRepo) CountByCourseID(ctx context.Context, tx *gorm.DB, courseID uint) (int64, error) {
	var count int64
	if err := conn(r.db, tx).WithContext(ctx).
		Model(&types.CourseReview{}).
		Where("course_id = ?", courseID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
