package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/openedu/institution-backend/internal/logger"
	"github.com/openedu/institution-backend/internal/types"
)

type AnswerOptionRepo interface {
	Create(ctx context.Context, tx *gorm.DB, option *types.AnswerOption) error
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.AnswerOption, error)
	Save(ctx context.Context, tx *gorm.DB, option *types.AnswerOption) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
	GetByQuestionID(ctx context.Context, tx *gorm.DB, questionID uint) ([]*types.AnswerOption, error)
	DeleteByQuestionIDs(ctx context.Context, tx *gorm.DB, questionIDs []uint) error
}

type answerOptionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAnswerOptionRepo(db *gorm.DB, baseLog *logger.Logger) AnswerOptionRepo {
	return &answerOptionRepo{db: db, log: baseLog.With("repo", "AnswerOptionRepo")}
}

func (r *answerOptionRepo) Create(ctx context.Context, tx *gorm.DB, option *types.AnswerOption) error {
	return conn(r.db, tx).WithContext(ctx).Create(option).Error
}

func (r *answerOptionRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.AnswerOption, error) {
	var option types.AnswerOption
	err := conn(r.db, tx).WithContext(ctx).First(&option, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &option, nil
}

func (r *answerOptionRepo) Save(ctx context.Context, tx *gorm.DB, option *types.AnswerOption) error {
	return conn(r.db, tx).WithContext(ctx).Omit("Question").Save(option).Error
}

func (r *answerOptionRepo) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	return conn(r.db, tx).WithContext(ctx).Delete(&types.AnswerOption{}, id).Error
}

func (r *answerOptionRepo) GetByQuestionID(ctx context.Context, tx *gorm.DB, questionID uint) ([]*types.AnswerOption, error) {
	var options []*types.AnswerOption
	if err := conn(r.db, tx).WithContext(ctx).
		Where("question_id = ?", questionID).
		Order("id").
		Find(&options).Error; err != nil {
		return nil, err
	}
	return options, nil
}

func (r *answerOptionRepo) DeleteByQuestionIDs(ctx context.Context, tx *gorm.DB, questionIDs []uint) error {
	if len(questionIDs) == 0 {
		return nil
	}
	return conn(r.db, tx).WithContext(ctx).
		Where("question_id IN ?", questionIDs).
		Delete(&types.AnswerOption{}).Error
}
