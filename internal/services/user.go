package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/openedu/institution-backend/internal/apierr"
	"github.com/openedu/institution-backend/internal/logger"
	"github.com/openedu/institution-backend/internal/repos"
	"github.com/openedu/institution-backend/internal/types"
)

type CreateUserInput struct {
	Name      string
	Email     string
	Role      types.Role
	Bio       string
	AvatarURL string
}

type UserService interface {
	Create(ctx context.Context, input CreateUserInput) (*types.UserResponse, error)
	GetByID(ctx context.Context, id uint) (*types.UserResponse, error)
}

type userService struct {
	db                 *gorm.DB
	log                *logger.Logger
	userRepo           repos.UserRepo
	courseRepo         repos.CourseRepo
	enrollmentRepo     repos.EnrollmentRepo
	submissionRepo     repos.SubmissionRepo
	quizSubmissionRepo repos.QuizSubmissionRepo
	courseReviewRepo   repos.CourseReviewRepo
}

func NewUserService(
	db *gorm.DB,
	baseLog *logger.Logger,
	userRepo repos.UserRepo,
	courseRepo repos.CourseRepo,
	enrollmentRepo repos.EnrollmentRepo,
	submissionRepo repos.SubmissionRepo,
	quizSubmissionRepo repos.QuizSubmissionRepo,
	courseReviewRepo repos.CourseReviewRepo,
) UserService {
	return &userService{
		db:                 db,
		log:                baseLog.With("service", "UserService"),
		userRepo:           userRepo,
		courseRepo:         courseRepo,
		enrollmentRepo:     enrollmentRepo,
		submissionRepo:     submissionRepo,
		quizSubmissionRepo: quizSubmissionRepo,
		courseReviewRepo:   courseReviewRepo,
	}
}

// Create persists the user and its profile together. The profile row has
// no independent lifecycle.
func (s *userService) Create(ctx context.Context, input CreateUserInput) (*types.UserResponse, error) {
	var created *types.User
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		taken, err := s.userRepo.EmailExists(ctx, tx, input.Email)
		if err != nil {
			return err
		}
		if taken {
			return apierr.Conflictf("User", "user with email '%s' already exists", input.Email)
		}
		user := &types.User{
			Name:  input.Name,
			Email: input.Email,
			Role:  input.Role,
			Profile: &types.Profile{
				Bio:       input.Bio,
				AvatarURL: input.AvatarURL,
			},
		}
		if err := s.userRepo.Create(ctx, tx, user); err != nil {
			return err
		}
		created = user
		return nil
	})
	if err != nil {
		s.log.Warn("create user failed", "error", err, "email", input.Email)
		return nil, err
	}
	return s.project(ctx, created)
}

func (s *userService) GetByID(ctx context.Context, id uint) (*types.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, nil, id)
	if err != nil {
		s.log.Warn("load user failed", "error", err, "user_id", id)
		return nil, err
	}
	if user == nil {
		return nil, apierr.NotFound("User", id)
	}
	return s.project(ctx, user)
}

// project assembles the full user view: profile fields plus the owned
// collections keyed by the user id.
func (s *userService) project(ctx context.Context, user *types.User) (*types.UserResponse, error) {
	out := &types.UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}
	if user.Profile != nil {
		out.Bio = user.Profile.Bio
		out.AvatarURL = user.Profile.AvatarURL
	}

	taught, err := s.courseRepo.GetByTeacherID(ctx, nil, user.ID)
	if err != nil {
		return nil, err
	}
	out.CoursesTaught = toCourseResponses(taught)

	enrollments, err := s.enrollmentRepo.GetByStudentID(ctx, nil, user.ID)
	if err != nil {
		return nil, err
	}
	out.Enrollments = toEnrollmentResponses(enrollments)

	submissions, err := s.submissionRepo.GetByStudentID(ctx, nil, user.ID)
	if err != nil {
		return nil, err
	}
	out.Submissions = toSubmissionResponses(submissions)

	quizSubmissions, err := s.quizSubmissionRepo.GetByStudentID(ctx, nil, user.ID)
	if err != nil {
		return nil, err
	}
	out.QuizSubmissions = toQuizSubmissionResponses(quizSubmissions)

	reviews, err := s.courseReviewRepo.GetByStudentID(ctx, nil, user.ID)
	if err != nil {
		return nil, err
	}
	out.CourseReviews = toCourseReviewResponses(reviews)

	return out, nil
}
