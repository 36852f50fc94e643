package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/openedu/institution-backend/internal/logger"
	"github.com/openedu/institution-backend/internal/types"
)

type QuizSubmissionRepo interface {
	Create(ctx context.Context, tx *gorm.DB, submission *types.QuizSubmission) error
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.QuizSubmission, error)
	GetByQuizID(ctx context.Context, tx *gorm.DB, quizID uint) ([]*types.QuizSubmission, error)
	GetByStudentID(ctx context.Context, tx *gorm.DB, studentID uint) ([]*types.QuizSubmission, error)
	GetByQuizAndStudent(ctx context.Context, tx *gorm.DB, quizID, studentID uint) (*types.QuizSubmission, error)
	CountByQuizIDs(ctx context.Context, tx *gorm.DB, quizIDs []uint) (int64, error)
	Save(ctx context.Context, tx *gorm.DB, submission *types.QuizSubmission) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
}

type quizSubmissionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewQuizSubmissionRepo(db *gorm.DB, baseLog *logger.Logger) QuizSubmissionRepo {
	return &quizSubmissionRepo{db: db, log: baseLog.With("repo", "QuizSubmissionRepo")}
}

func (r *quizSubmissionRepo) Create(ctx context.Context, tx *gorm.DB, submission *types.QuizSubmission) error {
	return conn(r.db, tx).WithContext(ctx).Create(submission).Error
}

func (r *quizSubmissionRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.QuizSubmission, error) {
	var submission types.QuizSubmission
	err := conn(r.db, tx).WithContext(ctx).
		Preload("Quiz").
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

func (r *quizSubmissionRepo) GetByQuizID(ctx context.Context, tx *gorm.DB, quizID uint) ([]*types.QuizSubmission, error) {
	var submissions []*types.QuizSubmission
	if err := conn(r.db, tx).WithContext(ctx).
		Preload("Quiz").
		Preload("Student").
		Where("quiz_id = ?", quizID).
		Order("id").
		Find(&submissions).Error; err != nil {
		return nil, err
	}
	return submissions, nil
}

func (r *quizSubmissionRepo) GetByStudentID(ctx context.Context, tx *gorm.DB, studentID uint) ([]*types.QuizSubmission, error) {
	var submissions []*types.QuizSubmission
	if err := conn(r.db, tx).WithContext(ctx).
		Preload("Quiz").
		Preload("Student").
		Where("student_id = ?", studentID).
		Order("id").
		Find(&submissions).Error; err != nil {
		return nil, err
	}
	return submissions, nil
}

func (r *quizSubmissionRepo) GetByQuizAndStudent(ctx context.Context, tx *gorm.DB, quizID, studentID uint) (*types.QuizSubmission, error) {
	var submission types.QuizSubmission
	err := conn(r.db, tx).WithContext(ctx).
		Where("quiz_id = ? AND student_id = ?", quizID, studentID).
		First(&submission).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &submission, nil
}

func (r *quizSubmissionRepo) Save(ctx context.Context, tx *gorm.DB, submission *types.QuizSubmission) error {
	return conn(r.db, tx).WithContext(ctx).
		Omit("Quiz", "Student").
		Save(submission).Error
}

func (r *quizSubmissionRepo) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	return conn(r.db, tx).WithContext(ctx).Delete(&types.QuizSubmission{}, id).Error
}

func (r *quizSubmissionRepo) CountByQuizIDs(ctx context.Context, tx *gorm.DB, quizIDs []uint) (int64, error) {
	if len(quizIDs) == 0 {
		return 0, nil
	}
	var count int64
	if err := conn(r.db, tx).WithContext(ctx).
		Model(&types.QuizSubmission{}).
		Where("quiz_id IN ?", quizIDs).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
