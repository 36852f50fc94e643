package services

import (
	"context"
	"testing"
	"time"

	"github.com/openedu/institution-backend/internal/apierr"
	"github.com/openedu/institution-backend/internal/types"
)

func TestCourseCreateDefaults(t *testing.T) {
	h := newHarness(t)
	h.loadCache(t)
	ctx := context.Background()
	teacher := h.seedUser(t, "ada", types.RoleTeacher)

	before := time.Now().UTC().Add(-time.Second)
	course, err := h.courses.Create(ctx, CreateCourseInput{
		Title:     "Go Basics",
		TeacherID: teacher.ID,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if course.Duration != 30 {
		t.Fatalf("default duration = %d, want 30", course.Duration)
	}
	if course.StartDate.Before(before) {
		t.Fatalf("start date %v not defaulted to now", course.StartDate)
	}
	if course.TeacherName != "ada" {
		t.Fatalf("teacher name = %q, want ada", course.TeacherName)
	}

	start := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	duration := 45
	course, err = h.courses.Create(ctx, CreateCourseInput{
		Title:     "Advanced Go",
		TeacherID: teacher.ID,
		Duration:  &duration,
		StartDate: &start,
	})
	if err != nil {
		t.Fatalf("create with overrides: %v", err)
	}
	if course.Duration != 45 {
		t.Fatalf("duration = %d, want 45", course.Duration)
	}
	if !course.StartDate.Equal(start) {
		t.Fatalf("start date = %v, want %v", course.StartDate, start)
	}
}

func TestCourseCreateMissingCategory(t *testing.T) {
	h := newHarness(t)
	h.loadCache(t)
	ctx := context.Background()
	teacher := h.seedUser(t, "grace", types.RoleTeacher)

	missing := uint(99)
	_, err := h.courses.Create(ctx, CreateCourseInput{
		Title:      "Orphaned",
		TeacherID:  teacher.ID,
		CategoryID: &missing,
	})
	if !apierr.IsNotFound(err) {
		t.Fatalf("err = %v, want not found", err)
	}
	if got := err.Error(); got != "Category with id '99' not found" {
		t.Fatalf("message = %q", got)
	}

	var count int64
	if err := h.db.Model(&types.Course{}).Count(&count).Error; err != nil {
		t.Fatalf("count courses: %v", err)
	}
	if count != 0 {
		t.Fatalf("course count = %d after failed create, want 0", count)
	}
}

func TestCourseCreateMissingTeacher(t *testing.T) {
	h := newHarness(t)
	h.loadCache(t)

	_, err := h.courses.Create(context.Background(), CreateCourseInput{
		Title:     "No Teacher",
		TeacherID: 42,
	})
	if !apierr.IsNotFound(err) {
		t.Fatalf("err = %v, want not found", err)
	}
}

func TestCourseCreateWithCategoryAfterRefresh(t *testing.T) {
	h := newHarness(t)
	h.loadCache(t)
	ctx := context.Background()
	teacher := h.seedUser(t, "alan", types.RoleTeacher)

	// The category row exists but the cache predates it; a refresh is
	// required before it resolves.
	category := h.seedCategory(t, "Programming")
	_, err := h.courses.Create(ctx, CreateCourseInput{
		Title:      "Stale Cache",
		TeacherID:  teacher.ID,
		CategoryID: &category.ID,
	})
	if !apierr.IsNotFound(err) {
		t.Fatalf("err before refresh = %v, want not found", err)
	}

	if err := h.cache.Refresh(ctx); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	course, err := h.courses.Create(ctx, CreateCourseInput{
		Title:      "Fresh Cache",
		TeacherID:  teacher.ID,
		CategoryID: &category.ID,
	})
	if err != nil {
		t.Fatalf("create after refresh: %v", err)
	}
	if course.CategoryName != "Programming" {
		t.Fatalf("category name = %q, want Programming", course.CategoryName)
	}
}

func TestCourseUpdatePartialMerge(t *testing.T) {
	h := newHarness(t)
	h.loadCache(t)
	ctx := context.Background()
	teacher := h.seedUser(t, "edsger", types.RoleTeacher)

	duration := 60
	created, err := h.courses.Create(ctx, CreateCourseInput{
		Title:       "Original",
		Description: "keep me",
		TeacherID:   teacher.ID,
		Duration:    &duration,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	title := "Renamed"
	updated, err := h.courses.Update(ctx, created.ID, UpdateCourseInput{Title: &title})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Title != "Renamed" {
		t.Fatalf("title = %q", updated.Title)
	}
	if updated.Description != "keep me" {
		t.Fatalf("description = %q, want unchanged", updated.Description)
	}
	if updated.Duration != 60 {
		t.Fatalf("duration = %d, want unchanged 60", updated.Duration)
	}

	missing := uint(404)
	if _, err := h.courses.Update(ctx, created.ID, UpdateCourseInput{CategoryID: &missing}); !apierr.IsNotFound(err) {
		t.Fatalf("update with bad category: %v, want not found", err)
	}
}

func TestCourseDeleteBlockedByStudentWork(t *testing.T) {
	h := newHarness(t)
	h.loadCache(t)
	ctx := context.Background()
	teacher := h.seedUser(t, "barbara", types.RoleTeacher)
	student := h.seedUser(t, "bob", types.RoleStudent)
	course := h.seedCourse(t, "Reviewed", teacher.ID)

	if _, err := h.reviews.Add(ctx, AddCourseReviewInput{
		CourseID:  course.ID,
		StudentID: student.ID,
		Rating:    5,
	}); err != nil {
		t.Fatalf("add review: %v", err)
	}

	err := h.courses.Delete(ctx, course.ID)
	if !apierr.IsConflict(err) {
		t.Fatalf("delete with review = %v, want conflict", err)
	}
	if got, getErr := h.courses.GetByID(ctx, course.ID); getErr != nil || got == nil {
		t.Fatalf("course gone after blocked delete: %v", getErr)
	}
}

func TestCourseDeleteCascadesOwnedSubtree(t *testing.T) {
	h := newHarness(t)
	h.loadCache(t)
	ctx := context.Background()
	teacher := h.seedUser(t, "ken", types.RoleTeacher)
	student := h.seedUser(t, "kim", types.RoleStudent)
	course := h.seedCourse(t, "Doomed", teacher.ID)
	module := h.seedModule(t, course.ID, "Week 1", 1)
	lesson := h.seedLesson(t, module.ID, "Intro")
	h.seedAssignment(t, lesson.ID, "Homework")

	quiz, err := h.quizzes.Create(ctx, CreateQuizInput{ModuleID: module.ID, Title: "Checkpoint", TimeLimit: 15})
	if err != nil {
		t.Fatalf("create quiz: %v", err)
	}
	question, err := h.questions.Create(ctx, CreateQuestionInput{
		QuizID: quiz.ID,
		Text:   "2+2?",
		Type:   types.QuestionSingleChoice,
	})
	if err != nil {
		t.Fatalf("create question: %v", err)
	}
	if _, err := h.answerOptions.Create(ctx, CreateAnswerOptionInput{
		QuestionID: question.ID,
		Text:       "4",
		IsCorrect:  true,
	}); err != nil {
		t.Fatalf("create option: %v", err)
	}
	if _, err := h.enrollments.Enroll(ctx, student.ID, course.ID); err != nil {
		t.Fatalf("enroll: %v", err)
	}
	tag, err := h.tags.Create(ctx, "golang")
	if err != nil {
		t.Fatalf("create tag: %v", err)
	}
	if _, err := h.tags.AddToCourse(ctx, course.ID, tag.ID); err != nil {
		t.Fatalf("attach tag: %v", err)
	}

	if err := h.courses.Delete(ctx, course.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	tables := []struct {
		name  string
		model interface{}
	}{
		{"courses", &types.Course{}},
		{"modules", &types.Module{}},
		{"lessons", &types.Lesson{}},
		{"assignments", &types.Assignment{}},
		{"quizzes", &types.Quiz{}},
		{"questions", &types.Question{}},
		{"answer_options", &types.AnswerOption{}},
		{"enrollments", &types.Enrollment{}},
	}
	for _, table := range tables {
		var count int64
		if err := h.db.Model(table.model).Count(&count).Error; err != nil {
			t.Fatalf("count %s: %v", table.name, err)
		}
		if count != 0 {
			t.Fatalf("%s count = %d after cascade, want 0", table.name, count)
		}
	}

	// The tag itself survives; only the link row goes.
	if _, err := h.tags.GetByID(ctx, tag.ID); err != nil {
		t.Fatalf("tag should survive course delete: %v", err)
	}
}

func TestCourseSearchAndTagListing(t *testing.T) {
	h := newHarness(t)
	h.loadCache(t)
	ctx := context.Background()
	teacher := h.seedUser(t, "rob", types.RoleTeacher)
	goCourse := h.seedCourse(t, "Go Concurrency Patterns", teacher.ID)
	h.seedCourse(t, "Intro to Painting", teacher.ID)

	found, err := h.courses.Search(ctx, "concurrency")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(found) != 1 || found[0].ID != goCourse.ID {
		t.Fatalf("search hits = %v, want only course %d", found, goCourse.ID)
	}

	tag, err := h.tags.Create(ctx, "concurrency")
	if err != nil {
		t.Fatalf("create tag: %v", err)
	}
	if _, err := h.tags.AddToCourse(ctx, goCourse.ID, tag.ID); err != nil {
		t.Fatalf("attach tag: %v", err)
	}
	tagged, err := h.courses.ListByTagName(ctx, "concurrency")
	if err != nil {
		t.Fatalf("list by tag: %v", err)
	}
	if len(tagged) != 1 || tagged[0].ID != goCourse.ID {
		t.Fatalf("tagged = %v, want only course %d", tagged, goCourse.ID)
	}
}

func TestCourseListByTeacherValidatesTeacher(t *testing.T) {
	h := newHarness(t)
	h.loadCache(t)

	if _, err := h.courses.ListByTeacher(context.Background(), 123); !apierr.IsNotFound(err) {
		t.Fatalf("err = %v, want not found", err)
	}
}
