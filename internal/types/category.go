package types

// Category is immutable reference data, seeded externally and served from
// the in-process snapshot cache after boot.
type Category struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"column:name;uniqueIndex;not null" json:"name"`
}

func (Category) TableName() string { return "categories" }
