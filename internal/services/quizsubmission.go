package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/openedu/institution-backend/internal/apierr"
	"github.com/openedu/institution-backend/internal/logger"
	"github.com/openedu/institution-backend/internal/repos"
	"github.com/openedu/institution-backend/internal/types"
)

type CreateQuizSubmissionInput struct {
	QuizID    uint
	StudentID uint
	Score     int
}

type QuizSubmissionService interface {
	Create(ctx context.Context, input CreateQuizSubmissionInput) (*types.QuizSubmissionResponse, error)
	GetByID(ctx context.Context, id uint) (*types.QuizSubmissionResponse, error)
	UpdateScore(ctx context.Context, id uint, score int) (*types.QuizSubmissionResponse, error)
	Delete(ctx context.Context, id uint) error
	ListByStudent(ctx context.Context, studentID uint) ([]types.QuizSubmissionResponse, error)
	ListByQuiz(ctx context.Context, quizID uint) ([]types.QuizSubmissionResponse, error)
}

type quizSubmissionService struct {
	db                 *gorm.DB
	log                *logger.Logger
	userRepo           repos.UserRepo
	quizRepo           repos.QuizRepo
	quizSubmissionRepo repos.QuizSubmissionRepo
}

func NewQuizSubmissionService(
	db *gorm.DB,
	baseLog *logger.Logger,
	userRepo repos.UserRepo,
	quizRepo repos.QuizRepo,
	quizSubmissionRepo repos.QuizSubmissionRepo,
) QuizSubmissionService {
	return &quizSubmissionService{
		db:                 db,
		log:                baseLog.With("service", "QuizSubmissionService"),
		userRepo:           userRepo,
		quizRepo:           quizRepo,
		quizSubmissionRepo: quizSubmissionRepo,
	}
}

// Create records a scored attempt. One attempt per (quiz, student).
func (s *quizSubmissionService) Create(ctx context.Context, input CreateQuizSubmissionInput) (*types.QuizSubmissionResponse, error) {
	var created *types.QuizSubmission
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		quiz, err := s.quizRepo.GetByID(ctx, tx, input.QuizID)
		if err != nil {
			return err
		}
		if quiz == nil {
			return apierr.NotFound("Quiz", input.QuizID)
		}
		student, err := s.userRepo.GetByID(ctx, tx, input.StudentID)
		if err != nil {
			return err
		}
		if student == nil {
			return apierr.NotFound("User", input.StudentID)
		}
		existing, err := s.quizSubmissionRepo.GetByQuizAndStudent(ctx, tx, input.QuizID, input.StudentID)
		if err != nil {
			return err
		}
		if existing != nil {
			return apierr.Conflictf("QuizSubmission", "student %d already took quiz %d", input.StudentID, input.QuizID)
		}
		submission := &types.QuizSubmission{
			QuizID:    input.QuizID,
			StudentID: input.StudentID,
			Score:     input.Score,
			TakenAt:   time.Now().UTC(),
		}
		if err := s.quizSubmissionRepo.Create(ctx, tx, submission); err != nil {
			return err
		}
		created = submission
		return nil
	})
	if err != nil {
		s.log.Warn("create quiz submission failed", "error", err,
			"quiz_id", input.QuizID, "student_id", input.StudentID)
		return nil, err
	}
	return s.getResponse(ctx, created.ID)
}

func (s *quizSubmissionService) GetByID(ctx context.Context, id uint) (*types.QuizSubmissionResponse, error) {
	return s.getResponse(ctx, id)
}

func (s *quizSubmissionService) UpdateScore(ctx context.Context, id uint, score int) (*types.QuizSubmissionResponse, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		submission, err := s.quizSubmissionRepo.GetByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if submission == nil {
			return apierr.NotFound("QuizSubmission", id)
		}
		submission.Score = score
		return s.quizSubmissionRepo.Save(ctx, tx, submission)
	})
	if err != nil {
		s.log.Warn("update quiz submission failed", "error", err, "quiz_submission_id", id)
		return nil, err
	}
	return s.getResponse(ctx, id)
}

func (s *quizSubmissionService) Delete(ctx context.Context, id uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		submission, err := s.quizSubmissionRepo.GetByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if submission == nil {
			return apierr.NotFound("QuizSubmission", id)
		}
		return s.quizSubmissionRepo.Delete(ctx, tx, id)
	})
	if err != nil {
		s.log.Warn("delete quiz submission failed", "error", err, "quiz_submission_id", id)
		return err
	}
	return nil
}

func (s *quizSubmissionService) ListByStudent(ctx context.Context, studentID uint) ([]types.QuizSubmissionResponse, error) {
	student, err := s.userRepo.GetByID(ctx, nil, studentID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apierr.NotFound("User", studentID)
	}
	submissions, err := s.quizSubmissionRepo.GetByStudentID(ctx, nil, studentID)
	if err != nil {
		return nil, err
	}
	return toQuizSubmissionResponses(submissions), nil
}

func (s *quizSubmissionService) ListByQuiz(ctx context.Context, quizID uint) ([]types.QuizSubmissionResponse, error) {
	quiz, err := s.quizRepo.GetByID(ctx, nil, quizID)
	if err != nil {
		return nil, err
	}
	if quiz == nil {
		return nil, apierr.NotFound("Quiz", quizID)
	}
	submissions, err := s.quizSubmissionRepo.GetByQuizID(ctx, nil, quizID)
	if err != nil {
		return nil, err
	}
	return toQuizSubmissionResponses(submissions), nil
}

func (s *quizSubmissionService) getResponse(ctx context.Context, id uint) (*types.QuizSubmissionResponse, error) {
	submission, err := s.quizSubmissionRepo.GetByID(ctx, nil, id)
	if err != nil {
		s.log.Warn("load quiz submission failed", "error", err, "quiz_submission_id", id)
		return nil, err
	}
	if submission == nil {
		return nil, apierr.NotFound("QuizSubmission", id)
	}
	out := toQuizSubmissionResponse(submission)
	return &out, nil
}
