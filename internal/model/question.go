package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Question struct {
	ID           uuid.UUID `gorm:"type:uuid;primarykey" json:"id"`
	Question     string    `json:"question" gorm:"type:text;not null"`
	QuestionType string    `json:"question_type" gorm:"not null"` // "behavioral", "technical", ...
	RoleID       uuid.UUID `json:"role_id" gorm:"type:uuid;not null;index"`
	CreatedAt    time.Time `json:"created_at"`
}

func (q *Question) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}
