package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Response is one recorded answer. Rows are insert-only.
type Response struct {
	ID         uuid.UUID         `gorm:"type:uuid;primarykey" json:"id"`
	SessionID  uuid.UUID         `json:"session_id" gorm:"type:uuid;not null;index"`
	Session    *InterviewSession `json:"-" gorm:"foreignKey:SessionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	QuestionID uuid.UUID         `json:"question_id" gorm:"type:uuid;not null;index"`
	Question   *Question         `json:"-" gorm:"foreignKey:QuestionID"`
	VideoURL   string            `json:"video_url" gorm:"type:text;not null"`
	CreatedAt  time.Time         `json:"created_at"`
}

func (r *Response) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
