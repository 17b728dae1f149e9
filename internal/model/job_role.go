package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type JobRole struct {
	ID        uuid.UUID `gorm:"type:uuid;primarykey" json:"id"`
	Title     string    `json:"title" gorm:"not null"`
	CompanyID uuid.UUID `json:"company_id" gorm:"type:uuid;not null;index"`
	CreatedAt time.Time `json:"created_at"`
}

func (JobRole) TableName() string {
	return "job_roles"
}

func (r *JobRole) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
