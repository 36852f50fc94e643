package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/openedu/institution-backend/internal/logger"
	"github.com/openedu/institution-backend/internal/types"
)

type QuestionRepo interface {
	Create(ctx context.Context, tx *gorm.DB, question *types.Question) error
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Question, error)
	Save(ctx context.Context, tx *gorm.DB, question *types.Question) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
	GetByQuizID(ctx context.Context, tx *gorm.DB, quizID uint) ([]*types.Question, error)
	GetByQuizIDs(ctx context.Context, tx *gorm.DB, quizIDs []uint) ([]*types.Question, error)
	DeleteByQuizIDs(ctx context.Context, tx *gorm.DB, quizIDs []uint) error
}

type questionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewQuestionRepo(db *gorm.DB, baseLog *logger.Logger) QuestionRepo {
	return &questionRepo{db: db, log: baseLog.With("repo", "QuestionRepo")}
}

func (r *questionRepo) Create(ctx context.Context, tx *gorm.DB, question *types.Question) error {
	return conn(r.db, tx).WithContext(ctx).Create(question).Error
}

func (r *questionRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Question, error) {
	var question types.Question
	err := conn(r.db, tx).WithContext(ctx).First(&question, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepo) Save(ctx context.Context, tx *gorm.DB, question *types.Question) error {
	return conn(r.db, tx).WithContext(ctx).Omit("Quiz").Save(question).Error
}

func (r *questionRepo) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	return conn(r.db, tx).WithContext(ctx).Delete(&types.Question{}, id).Error
}

// GetByQuizID returns questions in insertion order.
func (r *questionRepo) GetByQuizID(ctx context.Context, tx *gorm.DB, quizID uint) ([]*types.Question, error) {
	var questions []*types.Question
	if err := conn(r.db, tx).WithContext(ctx).
		Where("quiz_id = ?", quizID).
		Order("id").
		Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepo) GetByQuizIDs(ctx context.Context, tx *gorm.DB, quizIDs []uint) ([]*types.Question, error) {
	var questions []*types.Question
	if len(quizIDs) == 0 {
		return questions, nil
	}
	if err := conn(r.db, tx).WithContext(ctx).
		Where("quiz_id IN ?", quizIDs).
		Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepo) DeleteByQuizIDs(ctx context.Context, tx *gorm.DB, quizIDs []uint) error {
	if len(quizIDs) == 0 {
		return nil
	}
	return conn(r.db, tx).WithContext(ctx).
		Where("quiz_id IN ?", quizIDs).
		Delete(&types.Question{}).Error
}
