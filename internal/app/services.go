package app

import (
	"gorm.io/gorm"

	"github.com/openedu/institution-backend/internal/logger"
	"github.com/openedu/institution-backend/internal/services"
)

type Services struct {
	CategoryCache  *services.CategoryCache
	Category       services.CategoryService
	User           services.UserService
	Course         services.CourseService
	Module         services.ModuleService
	Lesson         services.LessonService
	Assignment     services.AssignmentService
	Submission     services.SubmissionService
	Quiz           services.QuizService
	Question       services.QuestionService
	AnswerOption   services.AnswerOptionService
	QuizSubmission services.QuizSubmissionService
	Enrollment     services.EnrollmentService
	CourseReview   services.CourseReviewService
	Tag            services.TagService
}

func wireServices(db *gorm.DB, log *logger.Logger, r Repos) Services {
	log.Info("Wiring services...")
	cache := services.NewCategoryCache(log, r.Category)
	return Services{
		CategoryCache: cache,
		Category:      services.NewCategoryService(log, cache),
		User: services.NewUserService(db, log,
			r.User, r.Course, r.Enrollment, r.Submission, r.QuizSubmission, r.CourseReview),
		Course: services.NewCourseService(db, log, cache,
			r.User, r.Course, r.Module, r.Lesson, r.Assignment, r.Submission,
			r.Quiz, r.Question, r.AnswerOption, r.QuizSubmission, r.Enrollment, r.CourseReview),
		Module: services.NewModuleService(db, log,
			r.Course, r.Module, r.Lesson, r.Assignment, r.Submission,
			r.Quiz, r.Question, r.AnswerOption, r.QuizSubmission),
		Lesson:     services.NewLessonService(db, log, r.Module, r.Lesson, r.Assignment, r.Submission),
		Assignment: services.NewAssignmentService(db, log, r.Lesson, r.Assignment, r.Submission),
		Submission: services.NewSubmissionService(db, log, r.User, r.Assignment, r.Submission),
		Quiz: services.NewQuizService(db, log,
			r.Module, r.Quiz, r.Question, r.AnswerOption, r.QuizSubmission),
		Question:       services.NewQuestionService(db, log, r.Quiz, r.Question, r.AnswerOption),
		AnswerOption:   services.NewAnswerOptionService(db, log, r.Question, r.AnswerOption),
		QuizSubmission: services.NewQuizSubmissionService(db, log, r.User, r.Quiz, r.QuizSubmission),
		Enrollment:     services.NewEnrollmentService(db, log, r.User, r.Course, r.Enrollment),
		CourseReview:   services.NewCourseReviewService(db, log, r.User, r.Course, r.CourseReview),
		Tag:            services.NewTagService(db, log, r.Course, r.Tag),
	}
}
