package types

import "time"

// Score and Feedback stay nil until the submission is graded. One
// submission per (assignment, student); the composite unique index is the
// backstop for concurrent duplicate requests.
type Submission struct {
	ID           uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	AssignmentID uint        `gorm:"column:assignment_id;not null;index:idx_submission_assignment_student,unique,priority:1" json:"assignment_id"`
	Assignment   *Assignment `gorm:"foreignKey:AssignmentID;references:ID" json:"assignment,omitempty"`
	StudentID    uint        `gorm:"column:student_id;not null;index:idx_submission_assignment_student,unique,priority:2" json:"student_id"`
	Student      *User       `gorm:"foreignKey:StudentID;references:ID" json:"student,omitempty"`
	Content      string      `gorm:"column:content" json:"content"`
	SubmittedAt  time.Time   `gorm:"column:submitted_at;not null" json:"submitted_at"`
	Score        *int        `gorm:"column:score" json:"score,omitempty"`
	Feedback     *string     `gorm:"column:feedback" json:"feedback,omitempty"`
}

func (Submission) TableName() string { return "submissions" }
