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

type CreateAssignmentInput struct {
	LessonID    uint
	Title       string
	Description string
	DueDate     *time.Time
	MaxScore    int
}

type UpdateAssignmentInput struct {
	Title       *string
	Description *string
	DueDate     *time.Time
	MaxScore    *int
}

type AssignmentService interface {
	Create(ctx context.Context, input CreateAssignmentInput) (*types.AssignmentResponse, error)
	GetByID(ctx context.Context, id uint) (*types.AssignmentResponse, error)
	Update(ctx context.Context, id uint, input UpdateAssignmentInput) (*types.AssignmentResponse, error)
	Delete(ctx context.Context, id uint) error
	ListByLesson(ctx context.Context, lessonID uint) ([]types.AssignmentResponse, error)
}

type assignmentService struct {
	db             *gorm.DB
	log            *logger.Logger
	lessonRepo     repos.LessonRepo
	assignmentRepo repos.AssignmentRepo
	submissionRepo repos.SubmissionRepo
}

func NewAssignmentService(
	db *gorm.DB,
	baseLog *logger.Logger,
	lessonRepo repos.LessonRepo,
	assignmentRepo repos.AssignmentRepo,
	submissionRepo repos.SubmissionRepo,
) AssignmentService {
	return &assignmentService{
		db:             db,
		log:            baseLog.With("service", "AssignmentService"),
		lessonRepo:     lessonRepo,
		assignmentRepo: assignmentRepo,
		submissionRepo: submissionRepo,
	}
}

func (s *assignmentService) Create(ctx context.Context, input CreateAssignmentInput) (*types.AssignmentResponse, error) {
	var created *types.Assignment
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		lesson, err := s.lessonRepo.GetByID(ctx, tx, input.LessonID)
		if err != nil {
			return err
		}
		if lesson == nil {
			return apierr.NotFound("Lesson", input.LessonID)
		}
		assignment := &types.Assignment{
			LessonID:    input.LessonID,
			Title:       input.Title,
			Description: input.Description,
			DueDate:     input.DueDate,
			MaxScore:    input.MaxScore,
		}
		if err := s.assignmentRepo.Create(ctx, tx, assignment); err != nil {
			return err
		}
		created = assignment
		return nil
	})
	if err != nil {
		s.log.Warn("create assignment failed", "error", err, "lesson_id", input.LessonID)
		return nil, err
	}
	return s.getResponse(ctx, created.ID)
}

func (s *assignmentService) GetByID(ctx context.Context, id uint) (*types.AssignmentResponse, error) {
	return s.getResponse(ctx, id)
}

func (s *assignmentService) Update(ctx context.Context, id uint, input UpdateAssignmentInput) (*types.AssignmentResponse, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		assignment, err := s.assignmentRepo.GetByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if assignment == nil {
			return apierr.NotFound("Assignment", id)
		}
		if input.Title != nil {
			assignment.Title = *input.Title
		}
		if input.Description != nil {
			assignment.Description = *input.Description
		}
		if input.DueDate != nil {
			assignment.DueDate = input.DueDate
		}
		if input.MaxScore != nil {
			assignment.MaxScore = *input.MaxScore
		}
		return s.assignmentRepo.Save(ctx, tx, assignment)
	})
	if err != nil {
		s.log.Warn("update assignment failed", "error", err, "assignment_id", id)
		return nil, err
	}
	return s.getResponse(ctx, id)
}

func (s *assignmentService) Delete(ctx context.Context, id uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		assignment, err := s.assignmentRepo.GetByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if assignment == nil {
			return apierr.NotFound("Assignment", id)
		}
		submissionCount, err := s.submissionRepo.CountByAssignmentIDs(ctx, tx, []uint{id})
		if err != nil {
			return err
		}
		if submissionCount > 0 {
			return apierr.Conflictf("Assignment", "assignment %d has %d submissions and cannot be deleted", id, submissionCount)
		}
		return s.assignmentRepo.Delete(ctx, tx, id)
	})
	if err != nil {
		s.log.Warn("delete assignment failed", "error", err, "assignment_id", id)
		return err
	}
	return nil
}

func (s *assignmentService) ListByLesson(ctx context.Context, lessonID uint) ([]types.AssignmentResponse, error) {
	lesson, err := s.lessonRepo.GetByID(ctx, nil, lessonID)
	if err != nil {
		return nil, err
	}
	if lesson == nil {
		return nil, apierr.NotFound("Lesson", lessonID)
	}
	assignments, err := s.assignmentRepo.GetByLessonID(ctx, nil, lessonID)
	if err != nil {
		return nil, err
	}
	return toAssignmentResponses(assignments), nil
}

func (s *assignmentService) getResponse(ctx context.Context, id uint) (*types.AssignmentResponse, error) {
	assignment, err := s.assignmentRepo.GetByID(ctx, nil, id)
	if err != nil {
		s.log.Warn("load assignment failed", "error", err, "assignment_id", id)
		return nil, err
	}
	if assignment == nil {
		return nil, apierr.NotFound("Assignment", id)
	}
	out := toAssignmentResponse(assignment)
	return &out, nil
}
