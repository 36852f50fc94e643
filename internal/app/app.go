package app

import (
	"context"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/openedu/institution-backend/internal/db"
	"github.com/openedu/institution-backend/internal/logger"
	"github.com/openedu/institution-backend/internal/observability"
	"github.com/openedu/institution-backend/internal/server"
)

type App struct {
	Log      *logger.Logger
	DB       *gorm.DB
	Router   *gin.Engine
	Cfg      Config
	Repos    Repos
	Services Services
	Handlers Handlers

	otelShutdown func(context.Context) error
}

func New() (*App, error) {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	log.Info("Loading environment variables...")
	cfg := LoadConfig(log)

	otelShutdown := observability.InitOTel(context.Background(), log, observability.OtelConfig{
		ServiceName: cfg.ServiceName,
		Environment: cfg.Environment,
		Version:     cfg.Version,
	})

	pg, err := db.NewPostgresService(log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init postgres: %w", err)
	}
	if err := pg.AutoMigrateAll(); err != nil {
		log.Sync()
		return nil, fmt.Errorf("postgres automigrate: %w", err)
	}
	theDB := pg.DB()

	if err := db.SeedCategories(theDB, log, cfg.CategorySeedPath); err != nil {
		log.Sync()
		return nil, fmt.Errorf("seed categories: %w", err)
	}

	reposet := wireRepos(theDB, log)
	serviceset := wireServices(theDB, log, reposet)

	// The category cache must be populated before anything serves
	// traffic; a failed load here is fatal.
	if err := serviceset.CategoryCache.Load(context.Background()); err != nil {
		log.Sync()
		return nil, fmt.Errorf("load category cache: %w", err)
	}

	handlerset := wireHandlers(log, serviceset)
	router := server.NewRouter(server.RouterConfig{
		ServiceName:           cfg.ServiceName,
		AllowOrigins:          cfg.AllowOrigins,
		UserHandler:           handlerset.User,
		CategoryHandler:       handlerset.Category,
		CourseHandler:         handlerset.Course,
		ModuleHandler:         handlerset.Module,
		LessonHandler:         handlerset.Lesson,
		AssignmentHandler:     handlerset.Assignment,
		SubmissionHandler:     handlerset.Submission,
		QuizHandler:           handlerset.Quiz,
		QuestionHandler:       handlerset.Question,
		AnswerOptionHandler:   handlerset.AnswerOption,
		QuizSubmissionHandler: handlerset.QuizSubmission,
		EnrollmentHandler:     handlerset.Enrollment,
		CourseReviewHandler:   handlerset.CourseReview,
		TagHandler:            handlerset.Tag,
	})

	return &App{
		Log:          log,
		DB:           theDB,
		Router:       router,
		Cfg:          cfg,
		Repos:        reposet,
		Services:     serviceset,
		Handlers:     handlerset,
		otelShutdown: otelShutdown,
	}, nil
}

func (a *App) Run() error {
	if a == nil || a.Router == nil {
		return fmt.Errorf("app not initialized")
	}
	return a.Router.Run(":" + a.Cfg.Port)
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.otelShutdown != nil {
		if err := a.otelShutdown(context.Background()); err != nil {
			a.Log.Warn("otel shutdown failed", "error", err)
		}
		a.otelShutdown = nil
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
