package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/openedu/institution-backend/internal/apierr"
	"github.com/openedu/institution-backend/internal/logger"
	"github.com/openedu/institution-backend/internal/repos"
	"github.com/openedu/institution-backend/internal/types"
)

type CreateQuestionInput struct {
	QuizID uint
	Text   string
	Type   types.QuestionType
}

type UpdateQuestionInput struct {
	Text *string
	Type *types.QuestionType
}

type QuestionService interface {
	Create(ctx context.Context, input CreateQuestionInput) (*types.QuestionResponse, error)
	GetByID(ctx context.Context, id uint) (*types.QuestionResponse, error)
	Update(ctx context.Context, id uint, input UpdateQuestionInput) (*types.QuestionResponse, error)
	Delete(ctx context.Context, id uint) error
	ListByQuiz(ctx context.Context, quizID uint) ([]types.QuestionResponse, error)
}

type questionService struct {
	db               *gorm.DB
	log              *logger.Logger
	quizRepo         repos.QuizRepo
	questionRepo     repos.QuestionRepo
	answerOptionRepo repos.AnswerOptionRepo
}

func NewQuestionService(
	db *gorm.DB,
	baseLog *logger.Logger,
	quizRepo repos.QuizRepo,
	questionRepo repos.QuestionRepo,
	answerOptionRepo repos.AnswerOptionRepo,
) QuestionService {
	return &questionService{
		db:               db,
		log:              baseLog.With("service", "QuestionService"),
		quizRepo:         quizRepo,
		questionRepo:     questionRepo,
		answerOptionRepo: answerOptionRepo,
	}
}

func (s *questionService) Create(ctx context.Context, input CreateQuestionInput) (*types.QuestionResponse, error) {
	var created *types.Question
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		quiz, err := s.quizRepo.GetByID(ctx, tx, input.QuizID)
		if err != nil {
			return err
		}
		if quiz == nil {
			return apierr.NotFound("Quiz", input.QuizID)
		}
		question := &types.Question{
			QuizID: input.QuizID,
			Text:   input.Text,
			Type:   input.Type,
		}
		if err := s.questionRepo.Create(ctx, tx, question); err != nil {
			return err
		}
		created = question
		return nil
	})
	if err != nil {
		s.log.Warn("create question failed", "error", err, "quiz_id", input.QuizID)
		return nil, err
	}
	out := toQuestionResponse(created)
	return &out, nil
}

func (s *questionService) GetByID(ctx context.Context, id uint) (*types.QuestionResponse, error) {
	question, err := s.questionRepo.GetByID(ctx, nil, id)
	if err != nil {
		s.log.Warn("load question failed", "error", err, "question_id", id)
		return nil, err
	}
	if question == nil {
		return nil, apierr.NotFound("Question", id)
	}
	out := toQuestionResponse(question)
	return &out, nil
}

func (s *questionService) Update(ctx context.Context, id uint, input UpdateQuestionInput) (*types.QuestionResponse, error) {
	var updated *types.Question
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		question, err := s.questionRepo.GetByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if question == nil {
			return apierr.NotFound("Question", id)
		}
		if input.Text != nil {
			question.Text = *input.Text
		}
		if input.Type != nil {
			question.Type = *input.Type
		}
		if err := s.questionRepo.Save(ctx, tx, question); err != nil {
			return err
		}
		updated = question
		return nil
	})
	if err != nil {
		s.log.Warn("update question failed", "error", err, "question_id", id)
		return nil, err
	}
	out := toQuestionResponse(updated)
	return &out, nil
}

// Delete cascades the question's answer options.
func (s *questionService) Delete(ctx context.Context, id uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		question, err := s.questionRepo.GetByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if question == nil {
			return apierr.NotFound("Question", id)
		}
		if err := s.answerOptionRepo.DeleteByQuestionIDs(ctx, tx, []uint{id}); err != nil {
			return err
		}
		return s.questionRepo.Delete(ctx, tx, id)
	})
	if err != nil {
		s.log.Warn("delete question failed", "error", err, "question_id", id)
		return err
	}
	return nil
}

func (s *questionService) ListByQuiz(ctx context.Context, quizID uint) ([]types.QuestionResponse, error) {
	quiz, err := s.quizRepo.GetByID(ctx, nil, quizID)
	if err != nil {
		return nil, err
	}
	if quiz == nil {
		return nil, apierr.NotFound("Quiz", quizID)
	}
	questions, err := s.questionRepo.GetByQuizID(ctx, nil, quizID)
	if err != nil {
		return nil, err
	}
	return toQuestionResponses(questions), nil
}
