package services

import (
	"context"
	"testing"
	"time"

	"github.com/openedu/institution-backend/internal/apierr"
	"github.com/openedu/institution-backend/internal/types"
)

func TestLessonCreateAndListByModule(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	teacher := h.seedUser(t, "planner", types.RoleTeacher)
	course := h.seedCourse(t, "Planning", teacher.ID)
	module := h.seedModule(t, course.ID, "Week 1", 1)

	created, err := h.lessons.Create(ctx, CreateLessonInput{
		ModuleID: module.ID,
		Title:    "Kickoff",
		Content:  "welcome",
		VideoURL: "https://example.com/v1",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ModuleID != module.ID {
		t.Fatalf("module id = %d, want %d", created.ModuleID, module.ID)
	}

	if _, err := h.lessons.Create(ctx, CreateLessonInput{ModuleID: 999, Title: "Orphan"}); !apierr.IsNotFound(err) {
		t.Fatalf("missing module = %v, want not found", err)
	}

	listed, err := h.lessons.ListByModule(ctx, module.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 1 || listed[0].Title != "Kickoff" {
		t.Fatalf("listed = %v", listed)
	}
}

func TestLessonDeleteCascadesAssignments(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	teacher := h.seedUser(t, "sweeper", types.RoleTeacher)
	course := h.seedCourse(t, "Cleanup", teacher.ID)
	module := h.seedModule(t, course.ID, "Only", 1)
	lesson := h.seedLesson(t, module.ID, "Short lived")
	assignment := h.seedAssignment(t, lesson.ID, "Also short lived")

	if err := h.lessons.Delete(ctx, lesson.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := h.assignments.GetByID(ctx, assignment.ID); !apierr.IsNotFound(err) {
		t.Fatalf("assignment after cascade = %v, want not found", err)
	}
}

func TestLessonDeleteBlockedBySubmissions(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	teacher := h.seedUser(t, "strict2", types.RoleTeacher)
	student := h.seedUser(t, "worker", types.RoleStudent)
	course := h.seedCourse(t, "Guarded", teacher.ID)
	module := h.seedModule(t, course.ID, "Only", 1)
	lesson := h.seedLesson(t, module.ID, "Protected")
	assignment := h.seedAssignment(t, lesson.ID, "Submitted to")

	if _, err := h.submissions.Create(ctx, CreateSubmissionInput{
		AssignmentID: assignment.ID,
		StudentID:    student.ID,
		Content:      "work",
	}); err != nil {
		t.Fatalf("submit: %v", err)
	}

	if err := h.lessons.Delete(ctx, lesson.ID); !apierr.IsConflict(err) {
		t.Fatalf("delete with submission = %v, want conflict", err)
	}
	if _, err := h.assignments.GetByID(ctx, assignment.ID); err != nil {
		t.Fatalf("assignment gone after blocked delete: %v", err)
	}
}

func TestAssignmentUpdatePartialMerge(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	teacher := h.seedUser(t, "grader", types.RoleTeacher)
	course := h.seedCourse(t, "Graded", teacher.ID)
	module := h.seedModule(t, course.ID, "M", 1)
	lesson := h.seedLesson(t, module.ID, "L")

	due := time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)
	created, err := h.assignments.Create(ctx, CreateAssignmentInput{
		LessonID:    lesson.ID,
		Title:       "Essay",
		Description: "1000 words",
		DueDate:     &due,
		MaxScore:    100,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.DueDate == nil || !created.DueDate.Equal(due) {
		t.Fatalf("due date = %v, want %v", created.DueDate, due)
	}

	maxScore := 50
	updated, err := h.assignments.Update(ctx, created.ID, UpdateAssignmentInput{MaxScore: &maxScore})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.MaxScore != 50 {
		t.Fatalf("max score = %d, want 50", updated.MaxScore)
	}
	if updated.Title != "Essay" {
		t.Fatalf("title = %q, want unchanged", updated.Title)
	}
	if updated.DueDate == nil || !updated.DueDate.Equal(due) {
		t.Fatalf("due date = %v, want unchanged", updated.DueDate)
	}
}

func TestAssignmentDeleteBlockedBySubmissions(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	teacher := h.seedUser(t, "keeper", types.RoleTeacher)
	student := h.seedUser(t, "doer", types.RoleStudent)
	course := h.seedCourse(t, "Kept", teacher.ID)
	module := h.seedModule(t, course.ID, "M", 1)
	lesson := h.seedLesson(t, module.ID, "L")
	assignment := h.seedAssignment(t, lesson.ID, "Handed in")

	if _, err := h.submissions.Create(ctx, CreateSubmissionInput{
		AssignmentID: assignment.ID,
		StudentID:    student.ID,
		Content:      "done",
	}); err != nil {
		t.Fatalf("submit: %v", err)
	}

	if err := h.assignments.Delete(ctx, assignment.ID); !apierr.IsConflict(err) {
		t.Fatalf("delete = %v, want conflict", err)
	}

	// Without submissions the delete goes through.
	empty := h.seedAssignment(t, lesson.ID, "Untouched")
	if err := h.assignments.Delete(ctx, empty.ID); err != nil {
		t.Fatalf("delete clean assignment: %v", err)
	}
}
