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

type CreateSubmissionInput struct {
	AssignmentID uint
	StudentID    uint
	Content      string
}

type GradeSubmissionInput struct {
	Score    int
	Feedback string
}

type SubmissionService interface {
	Create(ctx context.Context, input CreateSubmissionInput) (*types.SubmissionResponse, error)
	GetByID(ctx context.Context, id uint) (*types.SubmissionResponse, error)
	Grade(ctx context.Context, id uint, input GradeSubmissionInput) (*types.SubmissionResponse, error)
	ListByStudent(ctx context.Context, studentID uint) ([]types.SubmissionResponse, error)
	ListByAssignment(ctx context.Context, assignmentID uint) ([]types.SubmissionResponse, error)
}

type submissionService struct {
	db             *gorm.DB
	log            *logger.Logger
	userRepo       repos.UserRepo
	assignmentRepo repos.AssignmentRepo
	submissionRepo repos.SubmissionRepo
}

func NewSubmissionService(
	db *gorm.DB,
	baseLog *logger.Logger,
	userRepo repos.UserRepo,
	assignmentRepo repos.AssignmentRepo,
	submissionRepo repos.SubmissionRepo,
) SubmissionService {
	return &submissionService{
		db:             db,
		log:            baseLog.With("service", "SubmissionService"),
		userRepo:       userRepo,
		assignmentRepo: assignmentRepo,
		submissionRepo: submissionRepo,
	}
}

// Create records a student's answer for an assignment. One submission
// per (assignment, student); score and feedback stay null until graded.
func (s *submissionService) Create(ctx context.Context, input CreateSubmissionInput) (*types.SubmissionResponse, error) {
	var created *types.Submission
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		assignment, err := s.assignmentRepo.GetByID(ctx, tx, input.AssignmentID)
		if err != nil {
			return err
		}
		if assignment == nil {
			return apierr.NotFound("Assignment", input.AssignmentID)
		}
		student, err := s.userRepo.GetByID(ctx, tx, input.StudentID)
		if err != nil {
			return err
		}
		if student == nil {
			return apierr.NotFound("User", input.StudentID)
		}
		existing, err := s.submissionRepo.GetByAssignmentAndStudent(ctx, tx, input.AssignmentID, input.StudentID)
		if err != nil {
			return err
		}
		if existing != nil {
			return apierr.Conflictf("Submission", "student %d already submitted assignment %d", input.StudentID, input.AssignmentID)
		}
		submission := &types.Submission{
			AssignmentID: input.AssignmentID,
			StudentID:    input.StudentID,
			Content:      input.Content,
			SubmittedAt:  time.Now().UTC(),
		}
		if err := s.submissionRepo.Create(ctx, tx, submission); err != nil {
			return err
		}
		created = submission
		return nil
	})
	if err != nil {
		s.log.Warn("create submission failed", "error", err,
			"assignment_id", input.AssignmentID, "student_id", input.StudentID)
		return nil, err
	}
	return s.getResponse(ctx, created.ID)
}

func (s *submissionService) GetByID(ctx context.Context, id uint) (*types.SubmissionResponse, error) {
	return s.getResponse(ctx, id)
}

func (s *submissionService) Grade(ctx context.Context, id uint, input GradeSubmissionInput) (*types.SubmissionResponse, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		submission, err := s.submissionRepo.GetByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if submission == nil {
			return apierr.NotFound("Submission", id)
		}
		score := input.Score
		feedback := input.Feedback
		submission.Score = &score
		submission.Feedback = &feedback
		return s.submissionRepo.Save(ctx, tx, submission)
	})
	if err != nil {
		s.log.Warn("grade submission failed", "error", err, "submission_id", id)
		return nil, err
	}
	return s.getResponse(ctx, id)
}

func (s *submissionService) ListByStudent(ctx context.Context, studentID uint) ([]types.SubmissionResponse, error) {
	student, err := s.userRepo.GetByID(ctx, nil, studentID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apierr.NotFound("User", studentID)
	}
	submissions, err := s.submissionRepo.GetByStudentID(ctx, nil, studentID)
	if err != nil {
		return nil, err
	}
	return toSubmissionResponses(submissions), nil
}

func (s *submissionService) ListByAssignment(ctx context.Context, assignmentID uint) ([]types.SubmissionResponse, error) {
	assignment, err := s.assignmentRepo.GetByID(ctx, nil, assignmentID)
	if err != nil {
		return nil, err
	}
	if assignment == nil {
		return nil, apierr.NotFound("Assignment", assignmentID)
	}
	submissions, err := s.submissionRepo.GetByAssignmentID(ctx, nil, assignmentID)
	if err != nil {
		return nil, err
	}
	return toSubmissionResponses(submissions), nil
}

func (s *submissionService) getResponse(ctx context.Context, id uint) (*types.SubmissionResponse, error) {
	submission, err := s.submissionRepo.GetByID(ctx, nil, id)
	if err != nil {
		s.log.Warn("load submission failed", "error", err, "submission_id", id)
		return nil, err
	}
	if submission == nil {
		return nil, apierr.NotFound("Submission", id)
	}
	out := toSubmissionResponse(submission)
	return &out, nil
}
