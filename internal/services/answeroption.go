package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/openedu/institution-backend/internal/apierr"
	"github.com/openedu/institution-backend/internal/logger"
	"github.com/openedu/institution-backend/internal/repos"
	"github.com/openedu/institution-backend/internal/types"
)

type CreateAnswerOptionInput struct {
	QuestionID uint
	Text       string
	IsCorrect  bool
}

type UpdateAnswerOptionInput struct {
	Text      *string
	IsCorrect *bool
}

type AnswerOptionService interface {
	Create(ctx context.Context, input CreateAnswerOptionInput) (*types.AnswerOptionResponse, error)
	GetByID(ctx context.Context, id uint) (*types.AnswerOptionResponse, error)
	Update(ctx context.Context, id uint, input UpdateAnswerOptionInput) (*types.AnswerOptionResponse, error)
	Delete(ctx context.Context, id uint) error
	ListByQuestion(ctx context.Context, questionID uint) ([]types.AnswerOptionResponse, error)
}

type answerOptionService struct {
	db               *gorm.DB
	log              *logger.Logger
	questionRepo     repos.QuestionRepo
	answerOptionRepo repos.AnswerOptionRepo
}

func NewAnswerOptionService(
	db *gorm.DB,
	baseLog *logger.Logger,
	questionRepo repos.QuestionRepo,
	answerOptionRepo repos.AnswerOptionRepo,
) AnswerOptionService {
	return &answerOptionService{
		db:               db,
		log:              baseLog.With("service", "AnswerOptionService"),
		questionRepo:     questionRepo,
		answerOptionRepo: answerOptionRepo,
	}
}

func (s *answerOptionService) Create(ctx context.Context, input CreateAnswerOptionInput) (*types.AnswerOptionResponse, error) {
	var created *types.AnswerOption
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		question, err := s.questionRepo.GetByID(ctx, tx, input.QuestionID)
		if err != nil {
			return err
		}
		if question == nil {
			return apierr.NotFound("Question", input.QuestionID)
		}
		option := &types.AnswerOption{
			QuestionID: input.QuestionID,
			Text:       input.Text,
			IsCorrect:  input.IsCorrect,
		}
		if err := s.answerOptionRepo.Create(ctx, tx, option); err != nil {
			return err
		}
		created = option
		return nil
	})
	if err != nil {
		s.log.Warn("create answer option failed", "error", err, "question_id", input.QuestionID)
		return nil, err
	}
	out := toAnswerOptionResponse(created)
	return &out, nil
}

func (s *answerOptionService) GetByID(ctx context.Context, id uint) (*types.AnswerOptionResponse, error) {
	option, err := s.answerOptionRepo.GetByID(ctx, nil, id)
	if err != nil {
		s.log.Warn("load answer option failed", "error", err, "answer_option_id", id)
		return nil, err
	}
	if option == nil {
		return nil, apierr.NotFound("AnswerOption", id)
	}
	out := toAnswerOptionResponse(option)
	return &out, nil
}

func (s *answerOptionService) Update(ctx context.Context, id uint, input UpdateAnswerOptionInput) (*types.AnswerOptionResponse, error) {
	var updated *types.AnswerOption
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		option, err := s.answerOptionRepo.GetByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if option == nil {
			return apierr.NotFound("AnswerOption", id)
		}
		if input.Text != nil {
			option.Text = *input.Text
		}
		if input.IsCorrect != nil {
			option.IsCorrect = *input.IsCorrect
		}
		if err := s.answerOptionRepo.Save(ctx, tx, option); err != nil {
			return err
		}
		updated = option
		return nil
	})
	if err != nil {
		s.log.Warn("update answer option failed", "error", err, "answer_option_id", id)
		return nil, err
	}
	out := toAnswerOptionResponse(updated)
	return &out, nil
}

func (s *answerOptionService) Delete(ctx context.Context, id uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		option, err := s.answerOptionRepo.GetByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if option == nil {
			return apierr.NotFound("AnswerOption", id)
		}
		return s.answerOptionRepo.Delete(ctx, tx, id)
	})
	if err != nil {
		s.log.Warn("delete answer option failed", "error", err, "answer_option_id", id)
		return err
	}
	return nil
}

func (s *answerOptionService) ListByQuestion(ctx context.Context, questionID uint) ([]types.AnswerOptionResponse, error) {
	question, err := s.questionRepo.GetByID(ctx, nil, questionID)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, apierr.NotFound("Question", questionID)
	}
	options, err := s.answerOptionRepo.GetByQuestionID(ctx, nil, questionID)
	if err != nil {
		return nil, err
	}
	return toAnswerOptionResponses(options), nil
}
