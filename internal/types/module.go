package types

// OrderIndex is caller-assigned; siblings are not renumbered and no
// uniqueness is enforced within a course.
type Module struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	CourseID    uint    `gorm:"column:course_id;not null;index" json:"course_id"`
	Course      *Course `gorm:"constraint:OnDelete:CASCADE;foreignKey:CourseID;references:ID" json:"course,omitempty"`
	Title       string  `gorm:"column:title;not null" json:"title"`
	OrderIndex  int     `gorm:"column:order_index" json:"order_index"`
	Description string  `gorm:"column:description" json:"description"`
}

func (Module) TableName() string { return "modules" }
