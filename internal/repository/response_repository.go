package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/lshigami/Rehearse/internal/model"
	"gorm.io/gorm"
)

type ResponseRepository interface {
	Create(ctx context.Context, response *model.Response) error
	FindBySessionID(ctx context.Context, sessionID uuid.UUID) ([]model.Response, error)
}

type responseRepository struct {
	db *gorm.DB
}

func NewResponseRepository(db *gorm.DB) ResponseRepository {
	return &responseRepository{db: db}
}

// Create relies on the database foreign keys to reject unknown sessions or questions.
func (r *responseRepository) Create(ctx context.Context, response *model.Response) error {
	return r.db.WithContext(ctx).Create(response).Error
}

func (r *responseRepository) FindBySessionID(ctx context.Context, sessionID uuid.UUID) ([]model.Response, error) {
	var responses []model.Response
	if err := r.db.WithContext(ctx).Where("session_id = ?", sessionID).Order("created_at ASC").Find(&responses).Error; err != nil {
		return nil, err
	}
	return responses, nil
}
