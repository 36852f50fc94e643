package app

import (
	"gorm.io/gorm"

	"github.com/openedu/institution-backend/internal/logger"
	"github.com/openedu/institution-backend/internal/repos"
)

type Repos struct {
	User           repos.UserRepo
	Category       repos.CategoryRepo
	Course         repos.CourseRepo
	Module         repos.ModuleRepo
	Lesson         repos.LessonRepo
	Assignment     repos.AssignmentRepo
	Submission     repos.SubmissionRepo
	Quiz           repos.QuizRepo
	Question       repos.QuestionRepo
	AnswerOption   repos.AnswerOptionRepo
	QuizSubmission repos.QuizSubmissionRepo
	Enrollment     repos.EnrollmentRepo
	CourseReview   repos.CourseReviewRepo
	Tag            repos.TagRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:           repos.NewUserRepo(db, log),
		Category:       repos.NewCategoryRepo(db, log),
		Course:         repos.NewCourseRepo(db, log),
		Module:         repos.NewModuleRepo(db, log),
		Lesson:         repos.NewLessonRepo(db, log),
		Assignment:     repos.NewAssignmentRepo(db, log),
		Submission:     repos.NewSubmissionRepo(db, log),
		Quiz:           repos.NewQuizRepo(db, log),
		Question:       repos.NewQuestionRepo(db, log),
		AnswerOption:   repos.NewAnswerOptionRepo(db, log),
		QuizSubmission: repos.NewQuizSubmissionRepo(db, log),
		Enrollment:     repos.NewEnrollmentRepo(db, log),
		CourseReview:   repos.NewCourseReviewRepo(db, log),
		Tag:            repos.NewTagRepo(db, log),
	}
}
