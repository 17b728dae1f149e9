package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SessionStatus string

const (
	SessionPending    SessionStatus = "pending"
	SessionInProgress SessionStatus = "in_progress"
	SessionCompleted  SessionStatus = "completed"
)

type InterviewSession struct {
	ID        uuid.UUID     `gorm:"type:uuid;primarykey" json:"id"`
	UserID    uuid.UUID     `json:"user_id" gorm:"type:uuid;not null;index"`
	RoleID    uuid.UUID     `json:"role_id" gorm:"type:uuid;not null;index"`
	Role      *JobRole      `json:"role,omitempty" gorm:"foreignKey:RoleID"`
	Status    SessionStatus `json:"status" gorm:"type:varchar(20);not null"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

func (s *InterviewSession) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
