package services

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/openedu/institution-backend/internal/logger"
	"github.com/openedu/institution-backend/internal/repos"
	"github.com/openedu/institution-backend/internal/types"
)

// harness wires the full service graph against an in-memory sqlite
// database. Each test gets a fresh schema.
type harness struct {
	db *gorm.DB

	userRepo           repos.UserRepo
	categoryRepo       repos.CategoryRepo
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
	tagRepo            repos.TagRepo

	cache          *CategoryCache
	categories     CategoryService
	users          UserService
	courses        CourseService
	modules        ModuleService
	lessons        LessonService
	assignments    AssignmentService
	submissions    SubmissionService
	quizzes        QuizService
	questions      QuestionService
	answerOptions  AnswerOptionService
	quizAttempts   QuizSubmissionService
	enrollments    EnrollmentService
	reviews        CourseReviewService
	tags           TagService
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	// A single connection keeps the in-memory database alive and shared.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&types.User{},
		&types.Profile{},
		&types.Category{},
		&types.Course{},
		&types.Module{},
		&types.Lesson{},
		&types.Assignment{},
		&types.Submission{},
		&types.Quiz{},
		&types.Question{},
		&types.AnswerOption{},
		&types.QuizSubmission{},
		&types.Enrollment{},
		&types.CourseReview{},
		&types.Tag{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}

	h := &harness{db: db}
	h.userRepo = repos.NewUserRepo(db, log)
	h.categoryRepo = repos.NewCategoryRepo(db, log)
	h.courseRepo = repos.NewCourseRepo(db, log)
	h.moduleRepo = repos.NewModuleRepo(db, log)
	h.lessonRepo = repos.NewLessonRepo(db, log)
	h.assignmentRepo = repos.NewAssignmentRepo(db, log)
	h.submissionRepo = repos.NewSubmissionRepo(db, log)
	h.quizRepo = repos.NewQuizRepo(db, log)
	h.questionRepo = repos.NewQuestionRepo(db, log)
	h.answerOptionRepo = repos.NewAnswerOptionRepo(db, log)
	h.quizSubmissionRepo = repos.NewQuizSubmissionRepo(db, log)
	h.enrollmentRepo = repos.NewEnrollmentRepo(db, log)
	h.courseReviewRepo = repos.NewCourseReviewRepo(db, log)
	h.tagRepo = repos.NewTagRepo(db, log)

	h.cache = NewCategoryCache(log, h.categoryRepo)
	h.categories = NewCategoryService(log, h.cache)
	h.users = NewUserService(db, log,
		h.userRepo, h.courseRepo, h.enrollmentRepo, h.submissionRepo, h.quizSubmissionRepo, h.courseReviewRepo)
	h.courses = NewCourseService(db, log, h.cache,
		h.userRepo, h.courseRepo, h.moduleRepo, h.lessonRepo, h.assignmentRepo, h.submissionRepo,
		h.quizRepo, h.questionRepo, h.answerOptionRepo, h.quizSubmissionRepo, h.enrollmentRepo, h.courseReviewRepo)
	h.modules = NewModuleService(db, log,
		h.courseRepo, h.moduleRepo, h.lessonRepo, h.assignmentRepo, h.submissionRepo,
		h.quizRepo, h.questionRepo, h.answerOptionRepo, h.quizSubmissionRepo)
	h.lessons = NewLessonService(db, log, h.moduleRepo, h.lessonRepo, h.assignmentRepo, h.submissionRepo)
	h.assignments = NewAssignmentService(db, log, h.lessonRepo, h.assignmentRepo, h.submissionRepo)
	h.submissions = NewSubmissionService(db, log, h.userRepo, h.assignmentRepo, h.submissionRepo)
	h.quizzes = NewQuizService(db, log,
		h.moduleRepo, h.quizRepo, h.questionRepo, h.answerOptionRepo, h.quizSubmissionRepo)
	h.questions = NewQuestionService(db, log, h.quizRepo, h.questionRepo, h.answerOptionRepo)
	h.answerOptions = NewAnswerOptionService(db, log, h.questionRepo, h.answerOptionRepo)
	h.quizAttempts = NewQuizSubmissionService(db, log, h.userRepo, h.quizRepo, h.quizSubmissionRepo)
	h.enrollments = NewEnrollmentService(db, log, h.userRepo, h.courseRepo, h.enrollmentRepo)
	h.reviews = NewCourseReviewService(db, log, h.userRepo, h.courseRepo, h.courseReviewRepo)
	h.tags = NewTagService(db, log, h.courseRepo, h.tagRepo)

	return h
}

func (h *harness) seedUser(t *testing.T, name string, role types.Role) *types.User {
	t.Helper()
	user := &types.User{
		Name:  name,
		Email: name + "@example.com",
		Role:  role,
		Profile: &types.Profile{
			Bio: name + " bio",
		},
	}
	if err := h.db.Create(user).Error; err != nil {
		t.Fatalf("seed user %s: %v", name, err)
	}
	return user
}

func (h *harness) seedCategory(t *testing.T, name string) *types.Category {
	t.Helper()
	category := &types.Category{Name: name}
	if err := h.db.Create(category).Error; err != nil {
		t.Fatalf("seed category %s: %v", name, err)
	}
	return category
}

func (h *harness) seedCourse(t *testing.T, title string, teacherID uint) *types.Course {
	t.Helper()
	course := &types.Course{
		Title:     title,
		TeacherID: teacherID,
		Duration:  30,
	}
	if err := h.db.Create(course).Error; err != nil {
		t.Fatalf("seed course %s: %v", title, err)
	}
	return course
}

func (h *harness) seedModule(t *testing.T, courseID uint, title string, order int) *types.Module {
	t.Helper()
	module := &types.Module{CourseID: courseID, Title: title, OrderIndex: order}
	if err := h.db.Create(module).Error; err != nil {
		t.Fatalf("seed module %s: %v", title, err)
	}
	return module
}

func (h *harness) seedLesson(t *testing.T, moduleID uint, title string) *types.Lesson {
	t.Helper()
	lesson := &types.Lesson{ModuleID: moduleID, Title: title}
	if err := h.db.Create(lesson).Error; err != nil {
		t.Fatalf("seed lesson %s: %v", title, err)
	}
	return lesson
}

func (h *harness) seedAssignment(t *testing.T, lessonID uint, title string) *types.Assignment {
	t.Helper()
	assignment := &types.Assignment{LessonID: lessonID, Title: title, MaxScore: 100}
	if err := h.db.Create(assignment).Error; err != nil {
		t.Fatalf("seed assignment %s: %v", title, err)
	}
	return assignment
}

func (h *harness) loadCache(t *testing.T) {
	t.Helper()
	if err := h.cache.Load(context.Background()); err != nil {
		t.Fatalf("load category cache: %v", err)
	}
}
