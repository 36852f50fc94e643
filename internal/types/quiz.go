package types

// A module holds at most one quiz; the unique index on module_id enforces
// it (NULL module ids do not collide).
type Quiz struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	ModuleID  *uint   `gorm:"column:module_id;uniqueIndex" json:"module_id,omitempty"`
	Module    *Module `gorm:"constraint:OnDelete:CASCADE;foreignKey:ModuleID;references:ID" json:"module,omitempty"`
	Title     string  `gorm:"column:title;not null" json:"title"`
	TimeLimit int     `gorm:"column:time_limit" json:"time_limit"`
}

func (Quiz) TableName() string { return "quizzes" }
