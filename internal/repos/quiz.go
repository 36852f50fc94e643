package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/openedu/institution-backend/internal/logger"
	"github.com/openedu/institution-backend/internal/types"
)

type QuizRepo interface {
	Create(ctx context.Context, tx *gorm.DB, quiz *types.Quiz) error
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Quiz, error)
	Save(ctx context.Context, tx *gorm.DB, quiz *types.Quiz) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
	GetByModuleID(ctx context.Context, tx *gorm.DB, moduleID uint) (*types.Quiz, error)
	GetByModuleIDs(ctx context.Context, tx *gorm.DB, moduleIDs []uint) ([]*types.Quiz, error)
	DeleteByIDs(ctx context.Context, tx *gorm.DB, ids []uint) error
}

type quizRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewQuizRepo(db *gorm.DB, baseLog *logger.Logger) QuizRepo {
	return &quizRepo{db: db, log: baseLog.With("repo", "QuizRepo")}
}

func (r *quizRepo) Create(ctx context.Context, tx *gorm.DB, quiz *types.Quiz) error {
	return conn(r.db, tx).WithContext(ctx).Create(quiz).Error
}

func (r *quizRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Quiz, error) {
	var quiz types.Quiz
	err := conn(r.db, tx).WithContext(ctx).
		Preload("Module").
		First(&quiz, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *quizRepo) Save(ctx context.Context, tx *gorm.DB, quiz *types.Quiz) error {
	return conn(r.db, tx).WithContext(ctx).Omit("Module").Save(quiz).Error
}

func (r *quizRepo) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	return conn(r.db, tx).WithContext(ctx).Delete(&types.Quiz{}, id).Error
}

func (r *quizRepo) GetByModuleID(ctx context.Context, tx *gorm.DB, moduleID uint) (*types.Quiz, error) {
	var quiz types.Quiz
	err := conn(r.db, tx).WithContext(ctx).
		Preload("Module").
		Where("module_id = ?", moduleID).
		First(&quiz).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (r *quizRepo) GetByModuleIDs(ctx context.Context, tx *gorm.DB, moduleIDs []uint) ([]*types.Quiz, error) {
	var quizzes []*types.Quiz
	if len(moduleIDs) == 0 {
		return quizzes, nil
	}
	if err := conn(r.db, tx).WithContext(ctx).
		Where("module_id IN ?", moduleIDs).
		Find(&quizzes).Error; err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (r *quizRepo) DeleteByIDs(ctx context.Context, tx *gorm.DB, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return conn(r.db, tx).WithContext(ctx).Delete(&types.Quiz{}, ids).Error
}
