package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/openedu/institution-backend/internal/apierr"
	"github.com/openedu/institution-backend/internal/logger"
	"github.com/openedu/institution-backend/internal/repos"
	"github.com/openedu/institution-backend/internal/types"
)

type CreateQuizInput struct {
	ModuleID  uint
	Title     string
	TimeLimit int
}

type UpdateQuizInput struct {
	Title     *string
	TimeLimit *int
}

type QuizService interface {
	Create(ctx context.Context, input CreateQuizInput) (*types.QuizResponse, error)
	GetByID(ctx context.Context, id uint) (*types.QuizResponse, error)
	Update(ctx context.Context, id uint, input UpdateQuizInput) (*types.QuizResponse, error)
	Delete(ctx context.Context, id uint) error
	GetByModule(ctx context.Context, moduleID uint) (*types.QuizResponse, error)
}

type quizService struct {
	db                 *gorm.DB
	log                *logger.Logger
	moduleRepo         repos.ModuleRepo
	quizRepo           repos.QuizRepo
	questionRepo       repos.QuestionRepo
	answerOptionRepo   repos.AnswerOptionRepo
	quizSubmissionRepo repos.QuizSubmissionRepo
}

func NewQuizService(
	db *gorm.DB,
	baseLog *logger.Logger,
	moduleRepo repos.ModuleRepo,
	quizRepo repos.QuizRepo,
	questionRepo repos.QuestionRepo,
	answerOptionRepo repos.AnswerOptionRepo,
	quizSubmissionRepo repos.QuizSubmissionRepo,
) QuizService {
	return &quizService{
		db:                 db,
		log:                baseLog.With("service", "QuizService"),
		moduleRepo:         moduleRepo,
		quizRepo:           quizRepo,
		questionRepo:       questionRepo,
		answerOptionRepo:   answerOptionRepo,
		quizSubmissionRepo: quizSubmissionRepo,
	}
}

// Create attaches a quiz to a module. A module holds at most one quiz;
// a second create against the same module is a conflict.
func (s *quizService) Create(ctx context.Context, input CreateQuizInput) (*types.QuizResponse, error) {
	var created *types.Quiz
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		module, err := s.moduleRepo.GetByID(ctx, tx, input.ModuleID)
		if err != nil {
			return err
		}
		if module == nil {
			return apierr.NotFound("Module", input.ModuleID)
		}
		existing, err := s.quizRepo.GetByModuleID(ctx, tx, input.ModuleID)
		if err != nil {
			return err
		}
		if existing != nil {
			return apierr.Conflictf("Quiz", "module %d already has a quiz", input.ModuleID)
		}
		moduleID := input.ModuleID
		quiz := &types.Quiz{
			ModuleID:  &moduleID,
			Title:     input.Title,
			TimeLimit: input.TimeLimit,
		}
		if err := s.quizRepo.Create(ctx, tx, quiz); err != nil {
			return err
		}
		created = quiz
		return nil
	})
	if err != nil {
		s.log.Warn("create quiz failed", "error", err, "module_id", input.ModuleID)
		return nil, err
	}
	return s.getResponse(ctx, created.ID)
}

func (s *quizService) GetByID(ctx context.Context, id uint) (*types.QuizResponse, error) {
	return s.getResponse(ctx, id)
}

func (s *quizService) Update(ctx context.Context, id uint, input UpdateQuizInput) (*types.QuizResponse, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		quiz, err := s.quizRepo.GetByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if quiz == nil {
			return apierr.NotFound("Quiz", id)
		}
		if input.Title != nil {
			quiz.Title = *input.Title
		}
		if input.TimeLimit != nil {
			quiz.TimeLimit = *input.TimeLimit
		}
		return s.quizRepo.Save(ctx, tx, quiz)
	})
	if err != nil {
		s.log.Warn("update quiz failed", "error", err, "quiz_id", id)
		return nil, err
	}
	return s.getResponse(ctx, id)
}

// Delete cascades questions and their options. Recorded attempts block
// the delete.
func (s *quizService) Delete(ctx context.Context, id uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		quiz, err := s.quizRepo.GetByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if quiz == nil {
			return apierr.NotFound("Quiz", id)
		}
		submissionCount, err := s.quizSubmissionRepo.CountByQuizIDs(ctx, tx, []uint{id})
		if err != nil {
			return err
		}
		if submissionCount > 0 {
			return apierr.Conflictf("Quiz", "quiz %d has %d submissions and cannot be deleted", id, submissionCount)
		}
		questions, err := s.questionRepo.GetByQuizIDs(ctx, tx, []uint{id})
		if err != nil {
			return err
		}
		questionIDs := make([]uint, 0, len(questions))
		for _, question := range questions {
			questionIDs = append(questionIDs, question.ID)
		}
		if err := s.answerOptionRepo.DeleteByQuestionIDs(ctx, tx, questionIDs); err != nil {
			return err
		}
		if err := s.questionRepo.DeleteByQuizIDs(ctx, tx, []uint{id}); err != nil {
			return err
		}
		return s.quizRepo.Delete(ctx, tx, id)
	})
	if err != nil {
		s.log.Warn("delete quiz failed", "error", err, "quiz_id", id)
		return err
	}
	return nil
}

// GetByModule returns the module's quiz, or a NotFound error naming the
// module when none is attached.
func (s *quizService) GetByModule(ctx context.Context, moduleID uint) (*types.QuizResponse, error) {
	module, err := s.moduleRepo.GetByID(ctx, nil, moduleID)
	if err != nil {
		return nil, err
	}
	if module == nil {
		return nil, apierr.NotFound("Module", moduleID)
	}
	quiz, err := s.quizRepo.GetByModuleID(ctx, nil, moduleID)
	if err != nil {
		return nil, err
	}
	if quiz == nil {
		return nil, apierr.NotFoundf("Quiz", "module %d has no quiz", moduleID)
	}
	out := toQuizResponse(quiz)
	return &out, nil
}

func (s *quizService) getResponse(ctx context.Context, id uint) (*types.QuizResponse, error) {
	quiz, err := s.quizRepo.GetByID(ctx, nil, id)
	if err != nil {
		s.log.Warn("load quiz failed", "error", err, "quiz_id", id)
		return nil, err
	}
	if quiz == nil {
		return nil, apierr.NotFound("Quiz", id)
	}
	out := toQuizResponse(quiz)
	return &out, nil
}
