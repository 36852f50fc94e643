package services

import (
	"context"
	"testing"

	"github.com/openedu/institution-backend/internal/apierr"
	"github.com/openedu/institution-backend/internal/types"
)

func submissionFixture(t *testing.T, h *harness) (*types.User, *types.Assignment) {
	t.Helper()
	teacher := h.seedUser(t, "teach", types.RoleTeacher)
	student := h.seedUser(t, "stud", types.RoleStudent)
	course := h.seedCourse(t, "Writing", teacher.ID)
	module := h.seedModule(t, course.ID, "Essays", 1)
	lesson := h.seedLesson(t, module.ID, "Structure")
	assignment := h.seedAssignment(t, lesson.ID, "Five paragraphs")
	return student, assignment
}

func TestSubmissionCreateAndDuplicate(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	student, assignment := submissionFixture(t, h)

	created, err := h.submissions.Create(ctx, CreateSubmissionInput{
		AssignmentID: assignment.ID,
		StudentID:    student.ID,
		Content:      "my essay",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Score != nil || created.Feedback != nil {
		t.Fatalf("new submission already graded: score=%v feedback=%v", created.Score, created.Feedback)
	}
	if created.SubmittedAt.IsZero() {
		t.Fatal("submitted_at not set")
	}

	_, err = h.submissions.Create(ctx, CreateSubmissionInput{
		AssignmentID: assignment.ID,
		StudentID:    student.ID,
		Content:      "second try",
	})
	if !apierr.IsConflict(err) {
		t.Fatalf("duplicate submit = %v, want conflict", err)
	}

	// The first row is untouched by the rejected duplicate.
	var count int64
	if err := h.db.Model(&types.Submission{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("submission count = %d, want 1", count)
	}
	got, err := h.submissions.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.Content != "my essay" {
		t.Fatalf("content = %q, want original", got.Content)
	}
}

func TestSubmissionGrade(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	student, assignment := submissionFixture(t, h)

	created, err := h.submissions.Create(ctx, CreateSubmissionInput{
		AssignmentID: assignment.ID,
		StudentID:    student.ID,
		Content:      "graded soon",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	graded, err := h.submissions.Grade(ctx, created.ID, GradeSubmissionInput{
		Score:    87,
		Feedback: "solid work",
	})
	if err != nil {
		t.Fatalf("grade: %v", err)
	}
	if graded.Score == nil || *graded.Score != 87 {
		t.Fatalf("score = %v, want 87", graded.Score)
	}
	if graded.Feedback == nil || *graded.Feedback != "solid work" {
		t.Fatalf("feedback = %v", graded.Feedback)
	}

	if _, err := h.submissions.Grade(ctx, 999, GradeSubmissionInput{Score: 1}); !apierr.IsNotFound(err) {
		t.Fatalf("grade missing = %v, want not found", err)
	}
}

func TestSubmissionCreateMissingReferences(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	student, assignment := submissionFixture(t, h)

	if _, err := h.submissions.Create(ctx, CreateSubmissionInput{
		AssignmentID: 999,
		StudentID:    student.ID,
	}); !apierr.IsNotFound(err) {
		t.Fatalf("missing assignment = %v, want not found", err)
	}
	if _, err := h.submissions.Create(ctx, CreateSubmissionInput{
		AssignmentID: assignment.ID,
		StudentID:    999,
	}); !apierr.IsNotFound(err) {
		t.Fatalf("missing student = %v, want not found", err)
	}
}

func TestSubmissionListByAssignment(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	student, assignment := submissionFixture(t, h)
	other := h.seedUser(t, "other", types.RoleStudent)

	for _, id := range []uint{student.ID, other.ID} {
		if _, err := h.submissions.Create(ctx, CreateSubmissionInput{
			AssignmentID: assignment.ID,
			StudentID:    id,
			Content:      "essay",
		}); err != nil {
			t.Fatalf("create for %d: %v", id, err)
		}
	}

	listed, err := h.submissions.ListByAssignment(ctx, assignment.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("len = %d, want 2", len(listed))
	}

	mine, err := h.submissions.ListByStudent(ctx, student.ID)
	if err != nil {
		t.Fatalf("list by student: %v", err)
	}
	if len(mine) != 1 || mine[0].StudentID != student.ID {
		t.Fatalf("student list = %v", mine)
	}
}
