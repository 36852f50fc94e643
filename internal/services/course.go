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

const defaultCourseDuration = 30

type CreateCourseInput struct {
	Title       string
	Description string
	CategoryID  *uint
	TeacherID   uint
	Duration    *int
	StartDate   *time.Time
}

// UpdateCourseInput carries only the fields the caller wants to change;
// nil fields keep their stored values.
type UpdateCourseInput struct {
	Title       *string
	Description *string
	CategoryID  *uint
	TeacherID   *uint
	Duration    *int
	StartDate   *time.Time
}

type CourseService interface {
	Create(ctx context.Context, input CreateCourseInput) (*types.CourseResponse, error)
	GetByID(ctx context.Context, id uint) (*types.CourseResponse, error)
	List(ctx context.Context) ([]types.CourseResponse, error)
	Update(ctx context.Context, id uint, input UpdateCourseInput) (*types.CourseResponse, error)
	Delete(ctx context.Context, id uint) error
	ListByTeacher(ctx context.Context, teacherID uint) ([]types.CourseResponse, error)
	ListByCategory(ctx context.Context, categoryID uint) ([]types.CourseResponse, error)
	Search(ctx context.Context, keyword string) ([]types.CourseResponse, error)
	ListByTagName(ctx context.Context, tagName string) ([]types.CourseResponse, error)
}

type courseService struct {
	db                 *gorm.DB
	log                *logger.Logger
	cache              *CategoryCache
	userRepo           repos.UserRepo
	courseRepo         repos.CourseRepo
	moduleRepo         repos.ModuleRepo
	lessonRepo         repos.LessonRepo
	assignmentRepo     repos.AssignmentRepo
	submissionRepo     repos.SubmissionRepo
	quizRepo           repos.QuizRepo
	questionRepo       repos.QuestionRepo
	answerOptionRepo   repos.AnswerOptionRepo
	quizSubmissionRepo repos.QuizSubmissionRepo
	enrollmentRepo     repos.EnrollmentRepo
	courseReviewRepo   repos.CourseReviewRepo
}

func NewCourseService(
	db *gorm.DB,
	baseLog *logger.Logger,
	cache *CategoryCache,
	userRepo repos.UserRepo,
	courseRepo repos.CourseRepo,
	moduleRepo repos.ModuleRepo,
	lessonRepo repos.LessonRepo,
	assignmentRepo repos.AssignmentRepo,
	submissionRepo repos.SubmissionRepo,
	quizRepo repos.QuizRepo,
	questionRepo repos.QuestionRepo,
	answerOptionRepo repos.AnswerOptionRepo,
	quizSubmissionRepo repos.QuizSubmissionRepo,
	enrollmentRepo repos.EnrollmentRepo,
	courseReviewRepo repos.CourseReviewRepo,
) CourseService {
	return &courseService{
		db:                 db,
		log:                baseLog.With("service", "CourseService"),
		cache:              cache,
		userRepo:           userRepo,
		courseRepo:         courseRepo,
		moduleRepo:         moduleRepo,
		lessonRepo:         lessonRepo,
		assignmentRepo:     assignmentRepo,
		submissionRepo:     submissionRepo,
		quizRepo:           quizRepo,
		questionRepo:       questionRepo,
		answerOptionRepo:   answerOptionRepo,
		quizSubmissionRepo: quizSubmissionRepo,
		enrollmentRepo:     enrollmentRepo,
		courseReviewRepo:   courseReviewRepo,
	}
}

func (s *courseService) Create(ctx context.Context, input CreateCourseInput) (*types.CourseResponse, error) {
	var created *types.Course
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		teacher, err := s.userRepo.GetByID(ctx, tx, input.TeacherID)
		if err != nil {
			return err
		}
		if teacher == nil {
			return apierr.NotFound("User", input.TeacherID)
		}
		if input.CategoryID != nil {
			if _, ok := s.cache.FindByID(*input.CategoryID); !ok {
				return apierr.NotFound("Category", *input.CategoryID)
			}
		}

		course := &types.Course{
			Title:       input.Title,
			Description: input.Description,
			CategoryID:  input.CategoryID,
			TeacherID:   input.TeacherID,
			Duration:    defaultCourseDuration,
			StartDate:   time.Now().UTC(),
		}
		if input.Duration != nil {
			course.Duration = *input.Duration
		}
		if input.StartDate != nil {
			course.StartDate = *input.StartDate
		}
		if err := s.courseRepo.Create(ctx, tx, course); err != nil {
			return err
		}
		created = course
		return nil
	})
	if err != nil {
		s.log.Warn("create course failed", "error", err, "teacher_id", input.TeacherID)
		return nil, err
	}
	return s.getResponse(ctx, created.ID)
}

func (s *courseService) GetByID(ctx context.Context, id uint) (*types.CourseResponse, error) {
	return s.getResponse(ctx, id)
}

func (s *courseService) List(ctx context.Context) ([]types.CourseResponse, error) {
	courses, err := s.courseRepo.List(ctx, nil)
	if err != nil {
		s.log.Warn("list courses failed", "error", err)
		return nil, err
	}
	return toCourseResponses(courses), nil
}

// Update merges the provided fields into the stored course. A provided
// category or teacher id is re-validated; absent references stay as-is.
func (s *courseService) Update(ctx context.Context, id uint, input UpdateCourseInput) (*types.CourseResponse, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		course, err := s.courseRepo.GetByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if course == nil {
			return apierr.NotFound("Course", id)
		}
		if input.Title != nil {
			course.Title = *input.Title
		}
		if input.Description != nil {
			course.Description = *input.Description
		}
		if input.CategoryID != nil {
			if _, ok := s.cache.FindByID(*input.CategoryID); !ok {
				return apierr.NotFound("Category", *input.CategoryID)
			}
			course.CategoryID = input.CategoryID
		}
		if input.TeacherID != nil {
			teacher, err := s.userRepo.GetByID(ctx, tx, *input.TeacherID)
			if err != nil {
				return err
			}
			if teacher == nil {
				return apierr.NotFound("User", *input.TeacherID)
			}
			course.TeacherID = *input.TeacherID
		}
		if input.Duration != nil {
			course.Duration = *input.Duration
		}
		if input.StartDate != nil {
			course.StartDate = *input.StartDate
		}
		return s.courseRepo.Save(ctx, tx, course)
	})
	if err != nil {
		s.log.Warn("update course failed", "error", err, "course_id", id)
		return nil, err
	}
	return s.getResponse(ctx, id)
}

// Delete removes the course and its owned subtree: modules, their
// lessons and assignments, the module quizzes with questions and
// options, enrollments, and tag links. Reviews, submissions, and quiz
// submissions are student work and block the delete.
func (s *courseService) Delete(ctx context.Context, id uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		course, err := s.courseRepo.GetByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if course == nil {
			return apierr.NotFound("Course", id)
		}

		reviewCount, err := s.courseReviewRepo.CountByCourseID(ctx, tx, id)
		if err != nil {
			return err
		}
		if reviewCount > 0 {
			return apierr.Conflictf("Course", "course %d has %d reviews and cannot be deleted", id, reviewCount)
		}

		modules, err := s.moduleRepo.GetByCourseID(ctx, tx, id)
		if err != nil {
			return err
		}
		moduleIDs := make([]uint, 0, len(modules))
		for _, module := range modules {
			moduleIDs = append(moduleIDs, module.ID)
		}

		lessons, err := s.lessonRepo.GetByModuleIDs(ctx, tx, moduleIDs)
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
			return apierr.Conflictf("Course", "course %d has %d submissions and cannot be deleted", id, submissionCount)
		}

		quizzes, err := s.quizRepo.GetByModuleIDs(ctx, tx, moduleIDs)
		if err != nil {
			return err
		}
		quizIDs := make([]uint, 0, len(quizzes))
		for _, quiz := range quizzes {
			quizIDs = append(quizIDs, quiz.ID)
		}

		quizSubmissionCount, err := s.quizSubmissionRepo.CountByQuizIDs(ctx, tx, quizIDs)
		if err != nil {
			return err
		}
		if quizSubmissionCount > 0 {
			return apierr.Conflictf("Course", "course %d has %d quiz submissions and cannot be deleted", id, quizSubmissionCount)
		}

		questions, err := s.questionRepo.GetByQuizIDs(ctx, tx, quizIDs)
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
		if err := s.questionRepo.DeleteByQuizIDs(ctx, tx, quizIDs); err != nil {
			return err
		}
		if err := s.quizRepo.DeleteByIDs(ctx, tx, quizIDs); err != nil {
			return err
		}
		if err := s.assignmentRepo.DeleteByLessonIDs(ctx, tx, lessonIDs); err != nil {
			return err
		}
		if err := s.lessonRepo.DeleteByModuleIDs(ctx, tx, moduleIDs); err != nil {
			return err
		}
		if err := s.moduleRepo.DeleteByCourseID(ctx, tx, id); err != nil {
			return err
		}
		if err := s.enrollmentRepo.DeleteByCourseID(ctx, tx, id); err != nil {
			return err
		}
		if err := s.courseRepo.ClearTags(ctx, tx, course); err != nil {
			return err
		}
		return s.courseRepo.Delete(ctx, tx, id)
	})
	if err != nil {
		s.log.Warn("delete course failed", "error", err, "course_id", id)
		return err
	}
	s.log.Info("course deleted", "course_id", id)
	return nil
}

func (s *courseService) ListByTeacher(ctx context.Context, teacherID uint) ([]types.CourseResponse, error) {
	teacher, err := s.userRepo.GetByID(ctx, nil, teacherID)
	if err != nil {
		return nil, err
	}
	if teacher == nil {
		return nil, apierr.NotFound("User", teacherID)
	}
	courses, err := s.courseRepo.GetByTeacherID(ctx, nil, teacherID)
	if err != nil {
		return nil, err
	}
	return toCourseResponses(courses), nil
}

func (s *courseService) ListByCategory(ctx context.Context, categoryID uint) ([]types.CourseResponse, error) {
	if _, ok := s.cache.FindByID(categoryID); !ok {
		return nil, apierr.NotFound("Category", categoryID)
	}
	courses, err := s.courseRepo.GetByCategoryID(ctx, nil, categoryID)
	if err != nil {
		return nil, err
	}
	return toCourseResponses(courses), nil
}

func (s *courseService) Search(ctx context.Context, keyword string) ([]types.CourseResponse, error) {
	courses, err := s.courseRepo.SearchByTitle(ctx, nil, keyword)
	if err != nil {
		return nil, err
	}
	return toCourseResponses(courses), nil
}

func (s *courseService) ListByTagName(ctx context.Context, tagName string) ([]types.CourseResponse, error) {
	courses, err := s.courseRepo.GetByTagName(ctx, nil, tagName)
	if err != nil {
		return nil, err
	}
	return toCourseResponses(courses), nil
}

func (s *courseService) getResponse(ctx context.Context, id uint) (*types.CourseResponse, error) {
	course, err := s.courseRepo.GetByID(ctx, nil, id)
	if err != nil {
		s.log.Warn("load course failed", "error", err, "course_id", id)
		return nil, err
	}
	if course == nil {
		return nil, apierr.NotFound("Course", id)
	}
	out := toCourseResponse(course)
	return &out, nil
}
