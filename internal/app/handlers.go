package app

import (
	"github.com/openedu/institution-backend/internal/handlers"
	"github.com/openedu/institution-backend/internal/logger"
)

type Handlers struct {
	User           *handlers.UserHandler
	Category       *handlers.CategoryHandler
	Course         *handlers.CourseHandler
	Module         *handlers.ModuleHandler
	Lesson         *handlers.LessonHandler
	Assignment     *handlers.AssignmentHandler
	Submission     *handlers.SubmissionHandler
	Quiz           *handlers.QuizHandler
	Question       *handlers.QuestionHandler
	AnswerOption   *handlers.AnswerOptionHandler
	QuizSubmission *handlers.QuizSubmissionHandler
	Enrollment     *handlers.EnrollmentHandler
	CourseReview   *handlers.CourseReviewHandler
	Tag            *handlers.TagHandler
}

func wireHandlers(log *logger.Logger, s Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		User:           handlers.NewUserHandler(log, s.User),
		Category:       handlers.NewCategoryHandler(log, s.Category),
		Course:         handlers.NewCourseHandler(log, s.Course),
		Module:         handlers.NewModuleHandler(log, s.Module),
		Lesson:         handlers.NewLessonHandler(log, s.Lesson),
		Assignment:     handlers.NewAssignmentHandler(log, s.Assignment),
		Submission:     handlers.NewSubmissionHandler(log, s.Submission),
		Quiz:           handlers.NewQuizHandler(log, s.Quiz),
		Question:       handlers.NewQuestionHandler(log, s.Question),
		AnswerOption:   handlers.NewAnswerOptionHandler(log, s.AnswerOption),
		QuizSubmission: handlers.NewQuizSubmissionHandler(log, s.QuizSubmission),
		Enrollment:     handlers.NewEnrollmentHandler(log, s.Enrollment),
		CourseReview:   handlers.NewCourseReviewHandler(log, s.CourseReview),
		Tag:            handlers.NewTagHandler(log, s.Tag),
	}
}
