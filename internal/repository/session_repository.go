package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/lshigami/Rehearse/internal/model"
	"gorm.io/gorm"
)

type SessionRepository interface {
	Create(ctx context.Context, session *model.InterviewSession) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.InterviewSession, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.SessionStatus) error
}

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(ctx context.Context, session *model.InterviewSession) error {
	return r.db.WithContext(ctx).Create(session).Error
}

// FindByID returns gorm.ErrRecordNotFound when no session has the id.
func (r *sessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.InterviewSession, error) {
	var session model.InterviewSession
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.SessionStatus) error {
	result := r.db.WithContext(ctx).
		Model(&model.InterviewSession{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
