package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/openedu/institution-backend/internal/logger"
	"github.com/openedu/institution-backend/internal/types"
)

type SubmissionRepo interface {
	Create(ctx context.Context, tx *gorm.DB, submission *types.Submission) error
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Submission, error)
	Save(ctx context.Context, tx *gorm.DB, submission *types.Submission) error
	GetByStudentID(ctx context.Context, tx *gorm.DB, studentID uint) ([]*types.Submission, error)
	GetByAssignmentID(ctx context.Context, tx *gorm.DB, assignmentID uint) ([]*types.Submission, error)
	GetByAssignmentAndStudent(ctx context.Context, tx *gorm.DB, assignmentID, studentID uint) (*types.Submission, error)
	CountByAssignmentIDs(ctx context.Context, tx *gorm.DB, assignmentIDs []uint) (int64, error)
}

type submissionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSubmissionRepo(db *gorm.DB, baseLog *logger.Logger) SubmissionRepo {
	return &submissionRepo{db: db, log: baseLog.With("repo", "SubmissionRepo")}
}

func (r *submissionRepo) Create(ctx context.Context, tx *gorm.DB, submission *types.Submission) error {
	return conn(r.db, tx).WithContext(ctx).Create(submission).Error
}

func (r *submissionRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Submission, error) {
	var submission types.Submission
	err := conn(r.db, tx).WithContext(ctx).
		Preload("Assignment").
		Preload("Student").
		First(&submission, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &submission, nil
}

func (r *submissionRepo) Save(ctx context.Context, tx *gorm.DB, submission *types.Submission) error {
	return conn(r.db, tx).WithContext(ctx).
		Omit("Assignment", "Student").
		Save(submission).Error
}

func (r *submissionRepo) GetByStudentID(ctx context.Context, tx *gorm.DB, studentID uint) ([]*types.Submission, error) {
	var submissions []*types.Submission
	if err := conn(r.db, tx).WithContext(ctx).
		Preload("Assignment").
		Preload("Student").
		Where("student_id = ?", studentID).
		Order("id").
		Find(&submissions).Error; err != nil {
		return nil, err
	}
	return submissions, nil
}

func (r *submissionRepo) GetByAssignmentID(ctx context.Context, tx *gorm.DB, assignmentID uint) ([]*types.Submission, error) {
	var submissions []*types.Submission
	if err := conn(r.db, tx).WithContext(ctx).
		Preload("Assignment").
		Preload("Student").
		Where("assignment_id = ?", assignmentID).
		Order("id").
		Find(&submissions).Error; err != nil {
		return nil, err
	}
	return submissions, nil
}

func (r *submissionRepo) GetByAssignmentAndStudent(ctx context.Context, tx *gorm.DB, assignmentID, studentID uint) (*types.Submission, error) {
	var submission types.Submission
	err := conn(r.db, tx).WithContext(ctx).
		Where("assignment_id = ? AND student_id = ?", assignmentID, studentID).
		First(&submission).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &submission, nil
}

func (r *submissionRepo) CountByAssignmentIDs(ctx context.Context, tx *gorm.DB, assignmentIDs []uint) (int64, error) {
	if len(assignmentIDs) == 0 {
		return 0, nil
	}
	var count int64
	if err := conn(r.db, tx).WithContext(ctx).
		Model(&types.Submission{}).
		Where("assignment_id IN ?", assignmentIDs).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
