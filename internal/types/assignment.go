package types

import "time"

type Assignment struct {
	ID          uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	LessonID    uint       `gorm:"column:lesson_id;not null;index" json:"lesson_id"`
	Lesson      *Lesson    `gorm:"constraint:OnDelete:CASCADE;foreignKey:LessonID;references:ID" json:"lesson,omitempty"`
	Title       string     `gorm:"column:title;not null" json:"title"`
	Description string     `gorm:"column:description" json:"description"`
	DueDate     *time.Time `gorm:"column:due_date" json:"due_date,omitempty"`
	MaxScore    int        `gorm:"column:max_score" json:"max_score"`
}

func (Assignment) TableName() string { return "assignments" }
