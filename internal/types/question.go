package types

type QuestionType string

const (
	QuestionSingleChoice   QuestionType = "SINGLE_CHOICE"
	QuestionMultipleChoice QuestionType = "MULTIPLE_CHOICE"
	QuestionText           QuestionType = "TEXT"
)

type Question struct {
	ID     uint         `gorm:"primaryKey;autoIncrement" json:"id"`
	QuizID uint         `gorm:"column:quiz_id;not null;index" json:"quiz_id"`
	Quiz   *Quiz        `gorm:"constraint:OnDelete:CASCADE;foreignKey:QuizID;references:ID" json:"quiz,omitempty"`
	Text   string       `gorm:"column:text;not null" json:"text"`
	Type   QuestionType `gorm:"column:type;not null" json:"type"`
}

func (Question) TableName() string { return "questions" }
