package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/openedu/institution-backend/internal/apierr"
	"github.com/openedu/institution-backend/internal/logger"
	"github.com/openedu/institution-backend/internal/repos"
	"github.com/openedu/institution-backend/internal/types"
)

type CreateLessonInput struct {
	ModuleID uint
	Title    string
	Content  string
	VideoURL string
}

type UpdateLessonInput struct {
	Title    *string
	Content  *string
	VideoURL *string
}

type LessonService interface {
	Create(ctx context.Context, input CreateLessonInput) (*types.LessonResponse, error)
	GetByID(ctx context.Context, id uint) (*types.LessonResponse, error)
	Update(ctx context.Context, id uint, input UpdateLessonInput) (*types.LessonResponse, error)
	Delete(ctx context.Context, id uint) error
	ListByModule(ctx context.Context, moduleID uint) ([]types.LessonResponse, error)
}

type lessonService struct {
	db             *gorm.DB
	log            *logger.Logger
	moduleRepo     repos.ModuleRepo
	lessonRepo     repos.LessonRepo
	assignmentRepo repos.AssignmentRepo
	submissionRepo repos.SubmissionRepo
}

func NewLessonService(
	db *gorm.DB,
	baseLog *logger.Logger,
	moduleRepo repos.ModuleRepo,
	lessonRepo repos.LessonRepo,
	assignmentRepo repos.AssignmentRepo,
	submissionRepo repos.SubmissionRepo,
) LessonService {
	return &lessonService{
		db:             db,
		log:            baseLog.With("service", "LessonService"),
		moduleRepo:     moduleRepo,
		lessonRepo:     lessonRepo,
		assignmentRepo: assignmentRepo,
		submissionRepo: submissionRepo,
	}
}

func (s *lessonService) Create(ctx context.Context, input CreateLessonInput) (*types.LessonResponse, error) {
	var created *types.Lesson
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		module, err := s.moduleRepo.GetByID(ctx, tx, input.ModuleID)
		if err != nil {
			return err
		}
		if module == nil {
			return apierr.NotFound("Module", input.ModuleID)
		}
		lesson := &types.Lesson{
			ModuleID: input.ModuleID,
			Title:    input.Title,
			Content:  input.Content,
			VideoURL: input.VideoURL,
		}
		if err := s.lessonRepo.Create(ctx, tx, lesson); err != nil {
			return err
		}
		created = lesson
		return nil
	})
	if err != nil {
		s.log.Warn("create lesson failed", "error", err, "module_id", input.ModuleID)
		return nil, err
	}
	return s.getResponse(ctx, created.ID)
}

func (s *lessonService) GetByID(ctx context.Context, id uint) (*types.LessonResponse, error) {
	return s.getResponse(ctx, id)
}

func (s *lessonService) Update(ctx context.Context, id uint, input UpdateLessonInput) (*types.LessonResponse, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		lesson, err := s.lessonRepo.GetByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if lesson == nil {
			return apierr.NotFound("Lesson", id)
		}
		if input.Title != nil {
			lesson.Title = *input.Title
		}
		if input.Content != nil {
			lesson.Content = *input.Content
		}
		if input.VideoURL != nil {
			lesson.VideoURL = *input.VideoURL
		}
		return s.lessonRepo.Save(ctx, tx, lesson)
	})
	if err != nil {
		s.log.Warn("update lesson failed", "error", err, "lesson_id", id)
		return nil, err
	}
	return s.getResponse(ctx, id)
}

// Delete cascades the lesson's assignments. Submitted work against any
// of them blocks the delete.
func (s *lessonService) Delete(ctx context.Context, id uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		lesson, err := s.lessonRepo.GetByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if lesson == nil {
			return apierr.NotFound("Lesson", id)
		}
		assignments, err := s.assignmentRepo.GetByLessonIDs(ctx, tx, []uint{id})
		if err != nil {
			return err
		}
		assignmentIDs := make([]uint, 0, len(assignments))
		for _, assignment := range assignments {
			assignmentIDs = append(assignmentIDs, assignment.ID)
		}
		submissionCount, err := s.submissionRepo.CountByAssignmentIDs(ctx, tx, assignmentIDs)
		if err != nil {
			return err
		}
		if submissionCount > 0 {
			return apierr.Conflictf("Lesson", "lesson %d has %d submissions and cannot be deleted", id, submissionCount)
		}
		if err := s.assignmentRepo.DeleteByLessonIDs(ctx, tx, []uint{id}); err != nil {
			return err
		}
		return s.lessonRepo.Delete(ctx, tx, id)
	})
	if err != nil {
		s.log.Warn("delete lesson failed", "error", err, "lesson_id", id)
		return err
	}
	return nil
}

func (s *lessonService) ListByModule(ctx context.Context, moduleID uint) ([]types.LessonResponse, error) {
	module, err := s.moduleRepo.GetByID(ctx, nil, moduleID)
	if err != nil {
		return nil, err
	}
	if module == nil {
		return nil, apierr.NotFound("Module", moduleID)
	}
	lessons, err := s.lessonRepo.GetByModuleID(ctx, nil, moduleID)
	if err != nil {
		return nil, err
	}
	return toLessonResponses(lessons), nil
}

func (s *lessonService) getResponse(ctx context.Context, id uint) (*types.LessonResponse, error) {
	lesson, err := s.lessonRepo.GetByID(ctx, nil, id)
	if err != nil {
		s.log.Warn("load lesson failed", "error", err, "lesson_id", id)
		return nil, err
	}
	if lesson == nil {
		return nil, apierr.NotFound("Lesson", id)
	}
	out := toLessonResponse(lesson)
	return &out, nil
}
