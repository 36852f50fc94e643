package types

// Profile lifecycle is tied 1:1 to its user: created together, deleted
// together.
type Profile struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint   `gorm:"column:user_id;uniqueIndex;not null" json:"user_id"`
	Bio       string `gorm:"column:bio" json:"bio"`
	AvatarURL string `gorm:"column:avatar_url" json:"avatar_url"`
}

func (Profile) TableName() string { return "profiles" }
