package types

import "time"

// Enrollment has no surrogate id: the (user, course) pair is both the
// storage key and the uniqueness boundary.
type Enrollment struct {
	UserID     uint      `gorm:"column:user_id;primaryKey;autoIncrement:false" json:"user_id"`
	CourseID   uint      `gorm:"column:course_id;primaryKey;autoIncrement:false" json:"course_id"`
	Student    *User     `gorm:"foreignKey:UserID;references:ID" json:"student,omitempty"`
	Course     *Course   `gorm:"constraint:OnDelete:CASCADE;foreignKey:CourseID;references:ID" json:"course,omitempty"`
	EnrollDate time.Time `gorm:"column:enroll_date;not null" json:"enroll_date"`
	Status     string    `gorm:"column:status;not null" json:"status"`
}

func (Enrollment) TableName() string { return "enrollments" }

const (
	EnrollmentStatusActive    = "Active"
	EnrollmentStatusCompleted = "Completed"
	EnrollmentStatusDropped   = "Dropped"
)
