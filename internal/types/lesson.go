package types

type Lesson struct {
	ID       uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	ModuleID uint    `gorm:"column:module_id;not null;index" json:"module_id"`
	Module   *Module `gorm:"constraint:OnDelete:CASCADE;foreignKey:ModuleID;references:ID" json:"module,omitempty"`
	Title    string  `gorm:"column:title;not null" json:"title"`
	Content  string  `gorm:"column:content" json:"content"`
	VideoURL string  `gorm:"column:video_url" json:"video_url"`
}

func (Lesson) TableName() string { return "lessons" }
