package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Question defines the structure for question records.
type Question struct {
	QuestionUUID string    `json:"question_uuid" gorm:"column:question_uuid;type:uuid;primaryKey"`
	Title        string    `json:"title" gorm:"not null"`
	Description  string    `json:"description" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName overrides the default table name.
func (Question) TableName() string {
	return "questions"
}

// BeforeCreate assigns the primary key. Generating it here rather than with a
// column default keeps the behavior identical across PostgreSQL and SQLite.
func (q *Question) BeforeCreate(tx *gorm.DB) error {
	if q.QuestionUUID == "" {
		q.QuestionUUID = uuid.NewString()
	}
	return nil
}
