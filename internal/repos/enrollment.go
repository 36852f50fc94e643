package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/openedu/institution-backend/internal/logger"
	"github.com/openedu/institution-backend/internal/types"
)

// EnrollmentRepo works on the composite (user_id, course_id) key.
type EnrollmentRepo interface {
	Create(ctx context.Context, tx *gorm.DB, enrollment *types.Enrollment) error
	Get(ctx context.Context, tx *gorm.DB, userID, courseID uint) (*types.Enrollment, error)
	Exists(ctx context.Context, tx *gorm.DB, userID, courseID uint) (bool, error)
	Save(ctx context.Context, tx *gorm.DB, enrollment *types.Enrollment) error
	Delete(ctx context.Context, tx *gorm.DB, userID, courseID uint) error
	GetByStudentID(ctx context.Context, tx *gorm.DB, studentID uint) ([]*types.Enrollment, error)
	GetByCourseID(ctx context.Context, tx *gorm.DB, courseID uint) ([]*types.Enrollment, error)
	GetByStatus(ctx context.Context, tx *gorm.DB, status string) ([]*types.Enrollment, error)
	DeleteByCourseID(ctx context.Context, tx *gorm.DB, courseID uint) error
}

type enrollmentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewEnrollmentRepo(db *gorm.DB, baseLog *logger.Logger) EnrollmentRepo {
	return &enrollmentRepo{db: db, log: baseLog.With("repo", "EnrollmentRepo")}
}

func (r *enrollmentRepo) Create(ctx context.Context, tx *gorm.DB, enrollment *types.Enrollment) error {
	return conn(r.db, tx).WithContext(ctx).
		Omit("Student", "Course").
		Create(enrollment).Error
}

func (r *enrollmentRepo) Get(ctx context.Context, tx *gorm.DB, userID, courseID uint) (*types.Enrollment, error) {
	var enrollment types.Enrollment
	err := conn(r.db, tx).WithContext(ctx).
		Preload("Student").
		Preload("Course").
		Where("user_id = ? AND course_id = ?", userID, courseID).
		First(&enrollment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

func (r *enrollmentRepo) Exists(ctx context.Context, tx *gorm.DB, userID, courseID uint) (bool, error) {
	var count int64
	if err := conn(r.db, tx).WithContext(ctx).
		Model(&types.Enrollment{}).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *enrollmentRepo) Save(ctx context.Context, tx *gorm.DB, enrollment *types.Enrollment) error {
	return conn(r.db, tx).WithContext(ctx).
		Omit("Student", "Course").
		Save(enrollment).Error
}

func (r *enrollmentRepo) Delete(ctx context.Context, tx *gorm.DB, userID, courseID uint) error {
	return conn(r.db, tx).WithContext(ctx).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Delete(&types.Enrollment{}).Error
}

func (r *enrollmentRepo) GetByStudentID(ctx context.Context, tx *gorm.DB, studentID uint) ([]*types.Enrollment, error) {
	var enrollments []*types.Enrollment
	if err := conn(r.db, tx).WithContext(ctx).
		Preload("Student").
		Preload("Course").
		Where("user_id = ?", studentID).
		Order("course_id").
		Find(&enrollments).Error; err != nil {
		return nil, err
	}
	return enrollments, nil
}

func (r *enrollmentRepo) GetByCourseID(ctx context.Context, tx *gorm.DB, courseID uint) ([]*types.Enrollment, error) {
	var enrollments []*types.Enrollment
	if err := conn(r.db, tx).WithContext(ctx).
		Preload("Student").
		Preload("Course").
		Where("course_id = ?", courseID).
		Order("user_id").
		Find(&enrollments).Error; err != nil {
		return nil, err
	}
	return enrollments, nil
}

func (r *enrollmentRepo) GetByStatus(ctx context.Context, tx *gorm.DB, status string) ([]*types.Enrollment, error) {
	var enrollments []*types.Enrollment
	if err := conn(r.db, tx).WithContext(ctx).
		Preload("Student").
		Preload("Course").
		Where("status = ?", status).
		Order("course_id, user_id").
		Find(&enrollments).Error; err != nil {
		return nil, err
	}
	return enrollments, nil
}

func (r *enrollmentRepo) DeleteByCourseID(ctx context.Context, tx *gorm.DB, courseID uint) error {
	return conn(r.db, tx).WithContext(ctx).
		Where("course_id = ?", courseID).
		Delete(&types.Enrollment{}).Error
}
