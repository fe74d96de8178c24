package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Answer defines the structure for answer records. Deleting a question
// cascades to its answers.
type Answer struct {
	AnswerUUID   string    `json:"answer_uuid" gorm:"column:answer_uuid;type:uuid;primaryKey"`
	QuestionUUID string    `json:"question_uuid" gorm:"column:question_uuid;type:uuid;not null;index"`
	Content      string    `json:"content" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`

	Question *Question `json:"-" gorm:"foreignKey:QuestionUUID;references:QuestionUUID;constraint:OnDelete:CASCADE"`
}

// TableName overrides the default table name.
func (Answer) TableName() string {
	return "answers"
}

// BeforeCreate assigns the primary key.
func (a *Answer) BeforeCreate(tx *gorm.DB) error {
	if a.AnswerUUID == "" {
		a.AnswerUUID = uuid.NewString()
	}
	return nil
}
