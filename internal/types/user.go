package types

type Role string

const (
	RoleStudent Role = "STUDENT"
	RoleTeacher Role = "TEACHER"
	RoleAdmin   Role = "ADMIN"
)

type User struct {
	ID      uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name    string   `gorm:"column:name;not null" json:"name"`
	Email   string   `gorm:"column:email;uniqueIndex;not null" json:"email"`
	Role    Role     `gorm:"column:role;not null" json:"role"`
	Profile *Profile `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"profile,omitempty"`
}

func (User) TableName() string { return "users" }
