package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/lshigami/Rehearse/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	// FindFirstByRoleID returns (nil, nil) when the role has no questions.
	FindFirstByRoleID(ctx context.Context, roleID uuid.UUID) (*model.Question, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

// FindFirstByRoleID takes whichever row the store returns first; no ordering is applied.
func (r *questionRepository) FindFirstByRoleID(ctx context.Context, roleID uuid.UUID) (*model.Question, error) {
	var question model.Question
	err := r.db.WithContext(ctx).Where("role_id = ?", roleID).Limit(1).Take(&question).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &question, nil
}
