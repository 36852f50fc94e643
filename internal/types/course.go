package types

import "time"

type Course struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string    `gorm:"column:title;not null" json:"title"`
	Description string    `gorm:"column:description" json:"description"`
	CategoryID  *uint     `gorm:"column:category_id;index" json:"category_id,omitempty"`
	Category    *Category `gorm:"constraint:OnDelete:SET NULL;foreignKey:CategoryID;references:ID" json:"category,omitempty"`
	TeacherID   uint      `gorm:"column:teacher_id;not null;index" json:"teacher_id"`
	Teacher     *User     `gorm:"foreignKey:TeacherID;references:ID" json:"teacher,omitempty"`
	Duration    int       `gorm:"column:duration" json:"duration"`
	StartDate   time.Time `gorm:"column:start_date" json:"start_date"`
	Tags        []Tag     `gorm:"many2many:course_tag" json:"tags,omitempty"`
}

func (Course) TableName() string { return "courses" }
