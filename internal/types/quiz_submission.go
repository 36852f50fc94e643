package types

import "time"

// One scored attempt per (quiz, student); no per-question answers are
// recorded.
type QuizSubmission struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	QuizID    uint      `gorm:"column:quiz_id;not null;index:idx_quiz_submission_quiz_student,unique,priority:1" json:"quiz_id"`
	Quiz      *Quiz     `gorm:"foreignKey:QuizID;references:ID" json:"quiz,omitempty"`
	StudentID uint      `gorm:"column:student_id;not null;index:idx_quiz_submission_quiz_student,unique,priority:2" json:"student_id"`
	Student   *User     `gorm:"foreignKey:StudentID;references:ID" json:"student,omitempty"`
	Score     int       `gorm:"column:score" json:"score"`
	TakenAt   time.Time `gorm:"column:taken_at;not null" json:"taken_at"`
}

func (QuizSubmission) TableName() string { return "quiz_submissions" }
