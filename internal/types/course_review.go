package types

import "time"

type CourseReview struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CourseID  uint      `gorm:"column:course_id;not null;index:idx_course_review_course_student,unique,priority:1" json:"course_id"`
	Course    *Course   `gorm:"foreignKey:CourseID;references:ID" json:"course,omitempty"`
	StudentID uint      `gorm:"column:student_id;not null;index:idx_course_review_course_student,unique,priority:2" json:"student_id"`
	Student   *User     `gorm:"foreignKey:StudentID;references:ID" json:"student,omitempty"`
	Rating    int       `gorm:"column:rating;not null" json:"rating"`
	Comment   string    `gorm:"column:comment" json:"comment"`
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

func (CourseReview) TableName() string { return "course_reviews" }
