package services

import (
	"context"
	"testing"

	"github.com/openedu/institution-backend/internal/apierr"
	"github.com/openedu/institution-backend/internal/types"
)

func TestUserCreateWithProfile(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	created, err := h.users.Create(ctx, CreateUserInput{
		Name:      "Ada Lovelace",
		Email:     "ada@example.com",
		Role:      types.RoleTeacher,
		Bio:       "first programmer",
		AvatarURL: "https://example.com/ada.png",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Bio != "first programmer" {
		t.Fatalf("bio = %q", created.Bio)
	}
	if created.AvatarURL != "https://example.com/ada.png" {
		t.Fatalf("avatar = %q", created.AvatarURL)
	}

	var profiles int64
	if err := h.db.Model(&types.Profile{}).Where("user_id = ?", created.ID).Count(&profiles).Error; err != nil {
		t.Fatalf("count profiles: %v", err)
	}
	if profiles != 1 {
		t.Fatalf("profile rows = %d, want 1", profiles)
	}
}

func TestUserCreateDuplicateEmail(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	if _, err := h.users.Create(ctx, CreateUserInput{
		Name:  "One",
		Email: "same@example.com",
		Role:  types.RoleStudent,
	}); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := h.users.Create(ctx, CreateUserInput{
		Name:  "Two",
		Email: "same@example.com",
		Role:  types.RoleStudent,
	})
	if !apierr.IsConflict(err) {
		t.Fatalf("duplicate email = %v, want conflict", err)
	}

	var users int64
	if err := h.db.Model(&types.User{}).Count(&users).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if users != 1 {
		t.Fatalf("user rows = %d, want 1", users)
	}
}

func TestUserProjectionCollectsOwnedWork(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	teacher := h.seedUser(t, "poly", types.RoleTeacher)
	course := h.seedCourse(t, "Everything", teacher.ID)
	module := h.seedModule(t, course.ID, "All of it", 1)
	lesson := h.seedLesson(t, module.ID, "Deep dive")
	assignment := h.seedAssignment(t, lesson.ID, "Do it all")

	// The teacher also acts as a student of their own course.
	if _, err := h.enrollments.Enroll(ctx, teacher.ID, course.ID); err != nil {
		t.Fatalf("enroll: %v", err)
	}
	if _, err := h.submissions.Create(ctx, CreateSubmissionInput{
		AssignmentID: assignment.ID,
		StudentID:    teacher.ID,
		Content:      "self graded",
	}); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := h.reviews.Add(ctx, AddCourseReviewInput{
		CourseID:  course.ID,
		StudentID: teacher.ID,
		Rating:    5,
	}); err != nil {
		t.Fatalf("review: %v", err)
	}

	view, err := h.users.GetByID(ctx, teacher.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(view.CoursesTaught) != 1 {
		t.Fatalf("courses taught = %d, want 1", len(view.CoursesTaught))
	}
	if len(view.Enrollments) != 1 {
		t.Fatalf("enrollments = %d, want 1", len(view.Enrollments))
	}
	if len(view.Submissions) != 1 {
		t.Fatalf("submissions = %d, want 1", len(view.Submissions))
	}
	if len(view.CourseReviews) != 1 {
		t.Fatalf("reviews = %d, want 1", len(view.CourseReviews))
	}
}

func TestUserGetMissing(t *testing.T) {
	h := newHarness(t)
	if _, err := h.users.GetByID(context.Background(), 404); !apierr.IsNotFound(err) {
		t.Fatalf("err = %v, want not found", err)
	}
}
