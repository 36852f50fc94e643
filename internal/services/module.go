package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/openedu/institution-backend/internal/apierr"
	"github.com/openedu/institution-backend/internal/logger"
	"github.com/openedu/institution-backend/internal/repos"
	"github.com/openedu/institution-backend/internal/types"
)

type CreateModuleInput struct {
	CourseID    uint
	Title       string
	OrderIndex  int
	Description string
}

type UpdateModuleInput struct {
	Title       *string
	OrderIndex  *int
	Description *string
}

type ModuleService interface {
	Create(ctx context.Context, input CreateModuleInput) (*types.ModuleResponse, error)
	GetByID(ctx context.Context, id uint) (*types.ModuleResponse, error)
	Update(ctx context.Context, id uint, input UpdateModuleInput) (*types.ModuleResponse, error)
	Delete(ctx context.Context, id uint) error
	ListByCourse(ctx context.Context, courseID uint) ([]types.ModuleResponse, error)
	MoveToCourse(ctx context.Context, id, targetCourseID uint) (*types.ModuleResponse, error)
	Reorder(ctx context.Context, id uint, orderIndex int) (*types.ModuleResponse, error)
}

type moduleService struct {
	db                 *gorm.DB
	log                *logger.Logger
	courseRepo         repos.CourseRepo
	moduleRepo         repos.ModuleRepo
	lessonRepo         repos.LessonRepo
	assignmentRepo     repos.AssignmentRepo
	submissionRepo     repos.SubmissionRepo
	quizRepo           repos.QuizRepo
	questionRepo       repos.QuestionRepo
	answerOptionRepo   repos.AnswerOptionRepo
	quizSubmissionRepo repos.QuizSubmissionRepo
}

func NewModuleService(
	db *gorm.DB,
	baseLog *logger.Logger,
	courseRepo repos.CourseRepo,
	moduleRepo repos.ModuleRepo,
	lessonRepo repos.LessonRepo,
	assignmentRepo repos.AssignmentRepo,
	submissionRepo repos.SubmissionRepo,
	quizRepo repos.QuizRepo,
	questionRepo repos.QuestionRepo,
	answerOptionRepo repos.AnswerOptionRepo,
	quizSubmissionRepo repos.QuizSubmissionRepo,
) ModuleService {
	return &moduleService{
		db:                 db,
		log:                baseLog.With("service", "ModuleService"),
		courseRepo:         courseRepo,
		moduleRepo:         moduleRepo,
		lessonRepo:         lessonRepo,
		assignmentRepo:     assignmentRepo,
		submissionRepo:     submissionRepo,
		quizRepo:           quizRepo,
		questionRepo:       questionRepo,
		answerOptionRepo:   answerOptionRepo,
		quizSubmissionRepo: quizSubmissionRepo,
	}
}

func (s *moduleService) Create(ctx context.Context, input CreateModuleInput) (*types.ModuleResponse, error) {
	var created *types.Module
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		course, err := s.courseRepo.GetByID(ctx, tx, input.CourseID)
		if err != nil {
			return err
		}
		if course == nil {
			return apierr.NotFound("Course", input.CourseID)
		}
		module := &types.Module{
			CourseID:    input.CourseID,
			Title:       input.Title,
			OrderIndex:  input.OrderIndex,
			Description: input.Description,
		}
		if err := s.moduleRepo.Create(ctx, tx, module); err != nil {
			return err
		}
		created = module
		return nil
	})
	if err != nil {
		s.log.Warn("create module failed", "error", err, "course_id", input.CourseID)
		return nil, err
	}
	return s.getResponse(ctx, created.ID)
}

func (s *moduleService) GetByID(ctx context.Context, id uint) (*types.ModuleResponse, error) {
	return s.getResponse(ctx, id)
}

func (s *moduleService) Update(ctx context.Context, id uint, input UpdateModuleInput) (*types.ModuleResponse, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		module, err := s.moduleRepo.GetByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if module == nil {
			return apierr.NotFound("Module", id)
		}
		if input.Title != nil {
			module.Title = *input.Title
		}
		if input.OrderIndex != nil {
			module.OrderIndex = *input.OrderIndex
		}
		if input.Description != nil {
			module.Description = *input.Description
		}
		return s.moduleRepo.Save(ctx, tx, module)
	})
	if err != nil {
		s.log.Warn("update module failed", "error", err, "module_id", id)
		return nil, err
	}
	return s.getResponse(ctx, id)
}

// Delete removes the module with its lessons, their assignments, and
// the module quiz subtree. Student work under the module blocks it.
func (s *moduleService) Delete(ctx context.Context, id uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		module, err := s.moduleRepo.GetByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if module == nil {
			return apierr.NotFound("Module", id)
		}

		lessons, err := s.lessonRepo.GetByModuleIDs(ctx, tx, []uint{id})
		if err != nil {
			return err
		}
		lessonIDs := make([]uint, 0, len(lessons))
		for _, lesson := range lessons {
			lessonIDs = append(lessonIDs, lesson.ID)
		}

		assignments, err := s.assignmentRepo.GetByLessonIDs(ctx, tx, lessonIDs)
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
			return apierr.Conflictf("Module", "module %d has %d submissions and cannot be deleted", id, submissionCount)
		}

		quiz, err := s.quizRepo.GetByModuleID(ctx, tx, id)
		if err != nil {
			return err
		}
		if quiz != nil {
			quizSubmissionCount, err := s.quizSubmissionRepo.CountByQuizIDs(ctx, tx, []uint{quiz.ID})
			if err != nil {
				return err
			}
			if quizSubmissionCount > 0 {
				return apierr.Conflictf("Module", "module %d has %d quiz submissions and cannot be deleted", id, quizSubmissionCount)
			}
			questions, err := s.questionRepo.GetByQuizIDs(ctx, tx, []uint{quiz.ID})
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
			if err := s.questionRepo.DeleteByQuizIDs(ctx, tx, []uint{quiz.ID}); err != nil {
				return err
			}
			if err := s.quizRepo.Delete(ctx, tx, quiz.ID); err != nil {
				return err
			}
		}

		if err := s.assignmentRepo.DeleteByLessonIDs(ctx, tx, lessonIDs); err != nil {
			return err
		}
		if err := s.lessonRepo.DeleteByModuleIDs(ctx, tx, []uint{id}); err != nil {
			return err
		}
		return s.moduleRepo.Delete(ctx, tx, id)
	})
	if err != nil {
		s.log.Warn("delete module failed", "error", err, "module_id", id)
		return err
	}
	s.log.Info("module deleted", "module_id", id)
	return nil
}

func (s *moduleService) ListByCourse(ctx context.Context, courseID uint) ([]types.ModuleResponse, error) {
	course, err := s.courseRepo.GetByID(ctx, nil, courseID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, apierr.NotFound("Course", courseID)
	}
	modules, err := s.moduleRepo.GetByCourseID(ctx, nil, courseID)
	if err != nil {
		return nil, err
	}
	return toModuleResponses(modules), nil
}

// MoveToCourse reparents the module. Only the target course is
// validated; the subtree moves with the module untouched.
func (s *moduleService) MoveToCourse(ctx context.Context, id, targetCourseID uint) (*types.ModuleResponse, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		module, err := s.moduleRepo.GetByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if module == nil {
			return apierr.NotFound("Module", id)
		}
		course, err := s.courseRepo.GetByID(ctx, tx, targetCourseID)
		if err != nil {
			return err
		}
		if course == nil {
			return apierr.NotFound("Course", targetCourseID)
		}
		module.CourseID = targetCourseID
		return s.moduleRepo.Save(ctx, tx, module)
	})
	if err != nil {
		s.log.Warn("move module failed", "error", err, "module_id", id, "target_course_id", targetCourseID)
		return nil, err
	}
	return s.getResponse(ctx, id)
}

func (s *moduleService) Reorder(ctx context.Context, id uint, orderIndex int) (*types.ModuleResponse, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		module, err := s.moduleRepo.GetByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if module == nil {
			return apierr.NotFound("Module", id)
		}
		module.OrderIndex = orderIndex
		return s.moduleRepo.Save(ctx, tx, module)
	})
	if err != nil {
		s.log.Warn("reorder module failed", "error", err, "module_id", id)
		return nil, err
	}
	return s.getResponse(ctx, id)
}

func (s *moduleService) getResponse(ctx context.Context, id uint) (*types.ModuleResponse, error) {
	module, err := s.moduleRepo.GetByID(ctx, nil, id)
	if err != nil {
		s.log.Warn("load module failed", "error", err, "module_id", id)
		return nil, err
	}
	if module == nil {
		return nil, apierr.NotFound("Module", id)
	}
	out := toModuleResponse(module)
	return &out, nil
}
