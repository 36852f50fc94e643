package services

import (
	"context"
	"testing"

	"github.com/openedu/institution-backend/internal/apierr"
	"github.com/openedu/institution-backend/internal/types"
)

func quizFixture(t *testing.T, h *harness) (*types.User, *types.Module) {
	t.Helper()
	teacher := h.seedUser(t, "quizmaster", types.RoleTeacher)
	student := h.seedUser(t, "taker", types.RoleStudent)
	course := h.seedCourse(t, "Trivia", teacher.ID)
	module := h.seedModule(t, course.ID, "Round 1", 1)
	return student, module
}

func TestQuizOnePerModule(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	_, module := quizFixture(t, h)

	if _, err := h.quizzes.Create(ctx, CreateQuizInput{ModuleID: module.ID, Title: "First", TimeLimit: 20}); err != nil {
		t.Fatalf("create: %v", err)
	}
	_, err := h.quizzes.Create(ctx, CreateQuizInput{ModuleID: module.ID, Title: "Second", TimeLimit: 20})
	if !apierr.IsConflict(err) {
		t.Fatalf("second quiz = %v, want conflict", err)
	}

	got, err := h.quizzes.GetByModule(ctx, module.ID)
	if err != nil {
		t.Fatalf("get by module: %v", err)
	}
	if got.Title != "First" {
		t.Fatalf("title = %q, want First", got.Title)
	}
}

func TestQuizGetByModuleWithoutQuiz(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	_, module := quizFixture(t, h)

	_, err := h.quizzes.GetByModule(ctx, module.ID)
	if !apierr.IsNotFound(err) {
		t.Fatalf("err = %v, want not found", err)
	}
	if _, err := h.quizzes.GetByModule(ctx, 999); !apierr.IsNotFound(err) {
		t.Fatalf("missing module = %v, want not found", err)
	}
}

func TestQuizDeleteCascadesQuestions(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	_, module := quizFixture(t, h)

	quiz, err := h.quizzes.Create(ctx, CreateQuizInput{ModuleID: module.ID, Title: "Doomed", TimeLimit: 5})
	if err != nil {
		t.Fatalf("create quiz: %v", err)
	}
	question, err := h.questions.Create(ctx, CreateQuestionInput{
		QuizID: quiz.ID,
		Text:   "Capital of France?",
		Type:   types.QuestionSingleChoice,
	})
	if err != nil {
		t.Fatalf("create question: %v", err)
	}
	option, err := h.answerOptions.Create(ctx, CreateAnswerOptionInput{
		QuestionID: question.ID,
		Text:       "Paris",
		IsCorrect:  true,
	})
	if err != nil {
		t.Fatalf("create option: %v", err)
	}

	if err := h.quizzes.Delete(ctx, quiz.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := h.questions.GetByID(ctx, question.ID); !apierr.IsNotFound(err) {
		t.Fatalf("question after cascade: %v, want not found", err)
	}
	if _, err := h.answerOptions.GetByID(ctx, option.ID); !apierr.IsNotFound(err) {
		t.Fatalf("option after cascade: %v, want not found", err)
	}
}

func TestQuizDeleteBlockedByAttempts(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	student, module := quizFixture(t, h)

	quiz, err := h.quizzes.Create(ctx, CreateQuizInput{ModuleID: module.ID, Title: "Attempted", TimeLimit: 5})
	if err != nil {
		t.Fatalf("create quiz: %v", err)
	}
	if _, err := h.quizAttempts.Create(ctx, CreateQuizSubmissionInput{
		QuizID:    quiz.ID,
		StudentID: student.ID,
		Score:     90,
	}); err != nil {
		t.Fatalf("take quiz: %v", err)
	}

	if err := h.quizzes.Delete(ctx, quiz.ID); !apierr.IsConflict(err) {
		t.Fatalf("delete attempted quiz = %v, want conflict", err)
	}
}

func TestQuizSubmissionOneAttemptPerStudent(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	student, module := quizFixture(t, h)

	quiz, err := h.quizzes.Create(ctx, CreateQuizInput{ModuleID: module.ID, Title: "Single shot", TimeLimit: 5})
	if err != nil {
		t.Fatalf("create quiz: %v", err)
	}
	first, err := h.quizAttempts.Create(ctx, CreateQuizSubmissionInput{
		QuizID:    quiz.ID,
		StudentID: student.ID,
		Score:     70,
	})
	if err != nil {
		t.Fatalf("first attempt: %v", err)
	}
	if first.TakenAt.IsZero() {
		t.Fatal("taken_at not set")
	}

	_, err = h.quizAttempts.Create(ctx, CreateQuizSubmissionInput{
		QuizID:    quiz.ID,
		StudentID: student.ID,
		Score:     100,
	})
	if !apierr.IsConflict(err) {
		t.Fatalf("retake = %v, want conflict", err)
	}

	attempts, err := h.quizAttempts.ListByQuiz(ctx, quiz.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(attempts) != 1 || attempts[0].Score != 70 {
		t.Fatalf("attempts = %v, want single attempt with score 70", attempts)
	}
}

func TestQuizSubmissionRescoreAndDelete(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	student, module := quizFixture(t, h)

	quiz, err := h.quizzes.Create(ctx, CreateQuizInput{ModuleID: module.ID, Title: "Regrade", TimeLimit: 5})
	if err != nil {
		t.Fatalf("create quiz: %v", err)
	}
	attempt, err := h.quizAttempts.Create(ctx, CreateQuizSubmissionInput{
		QuizID:    quiz.ID,
		StudentID: student.ID,
		Score:     55,
	})
	if err != nil {
		t.Fatalf("attempt: %v", err)
	}

	rescored, err := h.quizAttempts.UpdateScore(ctx, attempt.ID, 65)
	if err != nil {
		t.Fatalf("rescore: %v", err)
	}
	if rescored.Score != 65 {
		t.Fatalf("score = %d, want 65", rescored.Score)
	}

	if err := h.quizAttempts.Delete(ctx, attempt.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := h.quizAttempts.GetByID(ctx, attempt.ID); !apierr.IsNotFound(err) {
		t.Fatalf("get after delete = %v, want not found", err)
	}
	// With the attempt voided the student can retake.
	if _, err := h.quizAttempts.Create(ctx, CreateQuizSubmissionInput{
		QuizID:    quiz.ID,
		StudentID: student.ID,
		Score:     95,
	}); err != nil {
		t.Fatalf("retake after delete: %v", err)
	}
}

func TestQuizUpdatePartialMerge(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	_, module := quizFixture(t, h)

	quiz, err := h.quizzes.Create(ctx, CreateQuizInput{ModuleID: module.ID, Title: "Before", TimeLimit: 25})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	title := "After"
	updated, err := h.quizzes.Update(ctx, quiz.ID, UpdateQuizInput{Title: &title})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Title != "After" {
		t.Fatalf("title = %q", updated.Title)
	}
	if updated.TimeLimit != 25 {
		t.Fatalf("time limit = %d, want unchanged 25", updated.TimeLimit)
	}
}
