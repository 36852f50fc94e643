package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/openedu/institution-backend/internal/handlers"
	"github.com/openedu/institution-backend/internal/middleware"
)

type RouterConfig struct {
	ServiceName           string
	AllowOrigins          []string
	UserHandler           *handlers.UserHandler
	CategoryHandler       *handlers.CategoryHandler
	CourseHandler         *handlers.CourseHandler
	ModuleHandler         *handlers.ModuleHandler
	LessonHandler         *handlers.LessonHandler
	AssignmentHandler     *handlers.AssignmentHandler
	SubmissionHandler     *handlers.SubmissionHandler
	QuizHandler           *handlers.QuizHandler
	QuestionHandler       *handlers.QuestionHandler
	AnswerOptionHandler   *handlers.AnswerOptionHandler
	QuizSubmissionHandler *handlers.QuizSubmissionHandler
	EnrollmentHandler     *handlers.EnrollmentHandler
	CourseReviewHandler   *handlers.CourseReviewHandler
	TagHandler            *handlers.TagHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.RequestID())
	router.Use(otelgin.Middleware(cfg.ServiceName))

	origins := cfg.AllowOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With", middleware.RequestIDHeader},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")
	{
		// Users
		api.POST("/users", cfg.UserHandler.Create)
		api.GET("/users/:id", cfg.UserHandler.GetByID)

		// Categories
		api.GET("/categories", cfg.CategoryHandler.List)
		api.GET("/categories/:id", cfg.CategoryHandler.GetByID)
		api.POST("/categories/refresh", cfg.CategoryHandler.Refresh)

		// Courses
		api.POST("/courses", cfg.CourseHandler.Create)
		api.GET("/courses", cfg.CourseHandler.List)
		api.GET("/courses/:id", cfg.CourseHandler.GetByID)
		api.PATCH("/courses/:id", cfg.CourseHandler.Update)
		api.DELETE("/courses/:id", cfg.CourseHandler.Delete)
		api.GET("/courses/:id/modules", cfg.ModuleHandler.ListByCourse)
		api.GET("/courses/:id/enrollments", cfg.EnrollmentHandler.ListByCourse)
		api.GET("/courses/:id/reviews", cfg.CourseReviewHandler.ListByCourse)
		api.GET("/courses/:id/rating", cfg.CourseReviewHandler.AverageRating)
		api.GET("/courses/:id/tags", cfg.TagHandler.ListForCourse)
		api.PUT("/courses/:id/tags/:tagId", cfg.TagHandler.AddToCourse)
		api.DELETE("/courses/:id/tags/:tagId", cfg.TagHandler.RemoveFromCourse)
		api.POST("/courses/:id/tags/batch", cfg.TagHandler.AddBatch)
		api.DELETE("/courses/:id/tags/batch", cfg.TagHandler.RemoveBatch)

		// Modules
		api.POST("/modules", cfg.ModuleHandler.Create)
		api.GET("/modules/:id", cfg.ModuleHandler.GetByID)
		api.PATCH("/modules/:id", cfg.ModuleHandler.Update)
		api.DELETE("/modules/:id", cfg.ModuleHandler.Delete)
		api.POST("/modules/:id/move", cfg.ModuleHandler.Move)
		api.POST("/modules/:id/reorder", cfg.ModuleHandler.Reorder)
		api.GET("/modules/:id/lessons", cfg.LessonHandler.ListByModule)
		api.GET("/modules/:id/quiz", cfg.QuizHandler.GetByModule)

		// Lessons
		api.POST("/lessons", cfg.LessonHandler.Create)
		api.GET("/lessons/:id", cfg.LessonHandler.GetByID)
		api.PATCH("/lessons/:id", cfg.LessonHandler.Update)
		api.DELETE("/lessons/:id", cfg.LessonHandler.Delete)
		api.GET("/lessons/:id/assignments", cfg.AssignmentHandler.ListByLesson)

		// Assignments
		api.POST("/assignments", cfg.AssignmentHandler.Create)
		api.GET("/assignments/:id", cfg.AssignmentHandler.GetByID)
		api.PATCH("/assignments/:id", cfg.AssignmentHandler.Update)
		api.DELETE("/assignments/:id", cfg.AssignmentHandler.Delete)
		api.GET("/assignments/:id/submissions", cfg.SubmissionHandler.ListByAssignment)

		// Submissions
		api.POST("/submissions", cfg.SubmissionHandler.Create)
		api.GET("/submissions/:id", cfg.SubmissionHandler.GetByID)
		api.POST("/submissions/:id/grade", cfg.SubmissionHandler.Grade)

		// Quizzes
		api.POST("/quizzes", cfg.QuizHandler.Create)
		api.GET("/quizzes/:id", cfg.QuizHandler.GetByID)
		api.PATCH("/quizzes/:id", cfg.QuizHandler.Update)
		api.DELETE("/quizzes/:id", cfg.QuizHandler.Delete)
		api.GET("/quizzes/:id/questions", cfg.QuestionHandler.ListByQuiz)
		api.GET("/quizzes/:id/submissions", cfg.QuizSubmissionHandler.ListByQuiz)

		// Questions
		api.POST("/questions", cfg.QuestionHandler.Create)
		api.GET("/questions/:id", cfg.QuestionHandler.GetByID)
		api.PATCH("/questions/:id", cfg.QuestionHandler.Update)
		api.DELETE("/questions/:id", cfg.QuestionHandler.Delete)
		api.GET("/questions/:id/answer-options", cfg.AnswerOptionHandler.ListByQuestion)

		// Answer options
		api.POST("/answer-options", cfg.AnswerOptionHandler.Create)
		api.GET("/answer-options/:id", cfg.AnswerOptionHandler.GetByID)
		api.PATCH("/answer-options/:id", cfg.AnswerOptionHandler.Update)
		api.DELETE("/answer-options/:id", cfg.AnswerOptionHandler.Delete)

		// Quiz submissions
		api.POST("/quiz-submissions", cfg.QuizSubmissionHandler.Create)
		api.GET("/quiz-submissions/:id", cfg.QuizSubmissionHandler.GetByID)
		api.PATCH("/quiz-submissions/:id", cfg.QuizSubmissionHandler.UpdateScore)
		api.DELETE("/quiz-submissions/:id", cfg.QuizSubmissionHandler.Delete)

		// Enrollments
		api.POST("/enrollments", cfg.EnrollmentHandler.Enroll)
		api.GET("/enrollments", cfg.EnrollmentHandler.ListByStatus)
		api.GET("/enrollments/:studentId/:courseId", cfg.EnrollmentHandler.Get)
		api.PATCH("/enrollments/:studentId/:courseId", cfg.EnrollmentHandler.UpdateStatus)
		api.DELETE("/enrollments/:studentId/:courseId", cfg.EnrollmentHandler.Unenroll)

		// Student collections
		api.GET("/students/:id/submissions", cfg.SubmissionHandler.ListByStudent)
		api.GET("/students/:id/quiz-submissions", cfg.QuizSubmissionHandler.ListByStudent)
		api.GET("/students/:id/enrollments", cfg.EnrollmentHandler.ListByStudent)
		api.GET("/students/:id/reviews", cfg.CourseReviewHandler.ListByStudent)

		// Reviews
		api.POST("/reviews", cfg.CourseReviewHandler.Add)
		api.GET("/reviews/:id", cfg.CourseReviewHandler.GetByID)
		api.PATCH("/reviews/:id", cfg.CourseReviewHandler.Update)
		api.DELETE("/reviews/:id", cfg.CourseReviewHandler.Delete)

		// Tags
		api.POST("/tags", cfg.TagHandler.Create)
		api.GET("/tags", cfg.TagHandler.List)
		api.GET("/tags/:id", cfg.TagHandler.GetByID)
		api.PATCH("/tags/:id", cfg.TagHandler.Update)
		api.DELETE("/tags/:id", cfg.TagHandler.Delete)
	}

	return router
}
