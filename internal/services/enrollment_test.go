package services

import (
	"context"
	"testing"

	"github.com/openedu/institution-backend/internal/apierr"
	"github.com/openedu/institution-backend/internal/types"
)

func TestEnrollAndDuplicate(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	teacher := h.seedUser(t, "prof", types.RoleTeacher)
	student := h.seedUser(t, "fresh", types.RoleStudent)
	course := h.seedCourse(t, "Economics", teacher.ID)

	enrollment, err := h.enrollments.Enroll(ctx, student.ID, course.ID)
	if err != nil {
		t.Fatalf("enroll: %v", err)
	}
	if enrollment.Status != types.EnrollmentStatusActive {
		t.Fatalf("status = %q, want %q", enrollment.Status, types.EnrollmentStatusActive)
	}
	if enrollment.EnrollDate.IsZero() {
		t.Fatal("enroll date not set")
	}

	if _, err := h.enrollments.Enroll(ctx, student.ID, course.ID); !apierr.IsConflict(err) {
		t.Fatalf("re-enroll = %v, want conflict", err)
	}

	var count int64
	if err := h.db.Model(&types.Enrollment{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("enrollment count = %d, want 1", count)
	}
}

func TestEnrollMissingReferences(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	teacher := h.seedUser(t, "lone", types.RoleTeacher)
	course := h.seedCourse(t, "Empty", teacher.ID)

	if _, err := h.enrollments.Enroll(ctx, 999, course.ID); !apierr.IsNotFound(err) {
		t.Fatalf("missing student = %v, want not found", err)
	}
	if _, err := h.enrollments.Enroll(ctx, teacher.ID, 999); !apierr.IsNotFound(err) {
		t.Fatalf("missing course = %v, want not found", err)
	}
}

func TestEnrollmentStatusLifecycle(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	teacher := h.seedUser(t, "mentor", types.RoleTeacher)
	student := h.seedUser(t, "mentee", types.RoleStudent)
	course := h.seedCourse(t, "Capstone", teacher.ID)

	if _, err := h.enrollments.Enroll(ctx, student.ID, course.ID); err != nil {
		t.Fatalf("enroll: %v", err)
	}

	updated, err := h.enrollments.UpdateStatus(ctx, student.ID, course.ID, types.EnrollmentStatusCompleted)
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if updated.Status != types.EnrollmentStatusCompleted {
		t.Fatalf("status = %q", updated.Status)
	}

	completed, err := h.enrollments.ListByStatus(ctx, types.EnrollmentStatusCompleted)
	if err != nil {
		t.Fatalf("list by status: %v", err)
	}
	if len(completed) != 1 || completed[0].StudentID != student.ID {
		t.Fatalf("completed = %v", completed)
	}
	active, err := h.enrollments.ListByStatus(ctx, types.EnrollmentStatusActive)
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	if len(active) != 0 {
		t.Fatalf("active = %v, want empty", active)
	}
}

func TestUnenroll(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	teacher := h.seedUser(t, "host", types.RoleTeacher)
	student := h.seedUser(t, "guest", types.RoleStudent)
	course := h.seedCourse(t, "Seminar", teacher.ID)

	if _, err := h.enrollments.Enroll(ctx, student.ID, course.ID); err != nil {
		t.Fatalf("enroll: %v", err)
	}
	if err := h.enrollments.Unenroll(ctx, student.ID, course.ID); err != nil {
		t.Fatalf("unenroll: %v", err)
	}
	if _, err := h.enrollments.Get(ctx, student.ID, course.ID); !apierr.IsNotFound(err) {
		t.Fatalf("get after unenroll = %v, want not found", err)
	}
	if err := h.enrollments.Unenroll(ctx, student.ID, course.ID); !apierr.IsNotFound(err) {
		t.Fatalf("second unenroll = %v, want not found", err)
	}
}

func TestEnrollmentListByCourseAndStudent(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	teacher := h.seedUser(t, "lecturer", types.RoleTeacher)
	alpha := h.seedUser(t, "alpha", types.RoleStudent)
	beta := h.seedUser(t, "beta", types.RoleStudent)
	course := h.seedCourse(t, "Popular", teacher.ID)
	other := h.seedCourse(t, "Niche", teacher.ID)

	for _, id := range []uint{alpha.ID, beta.ID} {
		if _, err := h.enrollments.Enroll(ctx, id, course.ID); err != nil {
			t.Fatalf("enroll %d: %v", id, err)
		}
	}
	if _, err := h.enrollments.Enroll(ctx, alpha.ID, other.ID); err != nil {
		t.Fatalf("enroll alpha in other: %v", err)
	}

	roster, err := h.enrollments.ListByCourse(ctx, course.ID)
	if err != nil {
		t.Fatalf("list by course: %v", err)
	}
	if len(roster) != 2 {
		t.Fatalf("roster = %d, want 2", len(roster))
	}

	mine, err := h.enrollments.ListByStudent(ctx, alpha.ID)
	if err != nil {
		t.Fatalf("list by student: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("alpha enrollments = %d, want 2", len(mine))
	}

	if _, err := h.enrollments.ListByCourse(ctx, 999); !apierr.IsNotFound(err) {
		t.Fatalf("missing course = %v, want not found", err)
	}
	if _, err := h.enrollments.ListByStudent(ctx, 999); !apierr.IsNotFound(err) {
		t.Fatalf("missing student = %v, want not found", err)
	}
}
