package services

import (
	"context"
	"testing"

	"github.com/openedu/institution-backend/internal/apierr"
	"github.com/openedu/institution-backend/internal/types"
)

func TestModuleDeleteCascadesLessonsAndAssignments(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	teacher := h.seedUser(t, "niklaus", types.RoleTeacher)
	student := h.seedUser(t, "nina", types.RoleStudent)
	course := h.seedCourse(t, "Compilers", teacher.ID)
	module := h.seedModule(t, course.ID, "Parsing", 1)
	lesson := h.seedLesson(t, module.ID, "Grammars")
	assignment := h.seedAssignment(t, lesson.ID, "Write a parser")

	if err := h.modules.Delete(ctx, module.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := h.lessons.GetByID(ctx, lesson.ID); !apierr.IsNotFound(err) {
		t.Fatalf("lesson after cascade: %v, want not found", err)
	}
	if _, err := h.assignments.GetByID(ctx, assignment.ID); !apierr.IsNotFound(err) {
		t.Fatalf("assignment after cascade: %v, want not found", err)
	}

	// A submission against the cascaded assignment now names a missing
	// reference.
	_, err := h.submissions.Create(ctx, CreateSubmissionInput{
		AssignmentID: assignment.ID,
		StudentID:    student.ID,
		Content:      "late",
	})
	if !apierr.IsNotFound(err) {
		t.Fatalf("submit to deleted assignment: %v, want not found", err)
	}
}

func TestModuleDeleteBlockedBySubmissions(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	teacher := h.seedUser(t, "dennis", types.RoleTeacher)
	student := h.seedUser(t, "dana", types.RoleStudent)
	course := h.seedCourse(t, "Systems", teacher.ID)
	module := h.seedModule(t, course.ID, "Memory", 1)
	lesson := h.seedLesson(t, module.ID, "Allocators")
	assignment := h.seedAssignment(t, lesson.ID, "Build one")

	if _, err := h.submissions.Create(ctx, CreateSubmissionInput{
		AssignmentID: assignment.ID,
		StudentID:    student.ID,
		Content:      "done",
	}); err != nil {
		t.Fatalf("submit: %v", err)
	}

	if err := h.modules.Delete(ctx, module.ID); !apierr.IsConflict(err) {
		t.Fatalf("delete with submission = %v, want conflict", err)
	}
	if _, err := h.lessons.GetByID(ctx, lesson.ID); err != nil {
		t.Fatalf("lesson gone after blocked delete: %v", err)
	}
}

func TestModuleDeleteBlockedByQuizSubmissions(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	teacher := h.seedUser(t, "tony", types.RoleTeacher)
	student := h.seedUser(t, "tara", types.RoleStudent)
	course := h.seedCourse(t, "Databases", teacher.ID)
	module := h.seedModule(t, course.ID, "Indexes", 1)

	quiz, err := h.quizzes.Create(ctx, CreateQuizInput{ModuleID: module.ID, Title: "B-trees", TimeLimit: 10})
	if err != nil {
		t.Fatalf("create quiz: %v", err)
	}
	if _, err := h.quizAttempts.Create(ctx, CreateQuizSubmissionInput{
		QuizID:    quiz.ID,
		StudentID: student.ID,
		Score:     80,
	}); err != nil {
		t.Fatalf("take quiz: %v", err)
	}

	if err := h.modules.Delete(ctx, module.ID); !apierr.IsConflict(err) {
		t.Fatalf("delete with quiz submission = %v, want conflict", err)
	}
}

func TestModuleMoveAndReorder(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	teacher := h.seedUser(t, "rich", types.RoleTeacher)
	source := h.seedCourse(t, "Source", teacher.ID)
	target := h.seedCourse(t, "Target", teacher.ID)
	module := h.seedModule(t, source.ID, "Nomad", 3)
	lesson := h.seedLesson(t, module.ID, "Cargo")

	moved, err := h.modules.MoveToCourse(ctx, module.ID, target.ID)
	if err != nil {
		t.Fatalf("move: %v", err)
	}
	if moved.CourseID != target.ID {
		t.Fatalf("course id = %d, want %d", moved.CourseID, target.ID)
	}
	// The subtree rides along untouched.
	got, err := h.lessons.GetByID(ctx, lesson.ID)
	if err != nil {
		t.Fatalf("lesson after move: %v", err)
	}
	if got.ModuleID != module.ID {
		t.Fatalf("lesson module = %d, want %d", got.ModuleID, module.ID)
	}

	if _, err := h.modules.MoveToCourse(ctx, module.ID, 999); !apierr.IsNotFound(err) {
		t.Fatalf("move to missing course: %v, want not found", err)
	}

	reordered, err := h.modules.Reorder(ctx, module.ID, 7)
	if err != nil {
		t.Fatalf("reorder: %v", err)
	}
	if reordered.OrderIndex != 7 {
		t.Fatalf("order index = %d, want 7", reordered.OrderIndex)
	}
}

func TestModuleListByCourseOrdering(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	teacher := h.seedUser(t, "donald", types.RoleTeacher)
	course := h.seedCourse(t, "Algorithms", teacher.ID)
	h.seedModule(t, course.ID, "Sorting", 2)
	h.seedModule(t, course.ID, "Searching", 1)

	modules, err := h.modules.ListByCourse(ctx, course.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(modules) != 2 {
		t.Fatalf("len = %d, want 2", len(modules))
	}
	if modules[0].OrderIndex > modules[1].OrderIndex {
		t.Fatalf("modules not ordered by index: %v", modules)
	}

	if _, err := h.modules.ListByCourse(ctx, 999); !apierr.IsNotFound(err) {
		t.Fatalf("list for missing course: %v, want not found", err)
	}
}
