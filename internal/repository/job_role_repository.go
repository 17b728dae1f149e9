package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/lshigami/Rehearse/internal/model"
	"gorm.io/gorm"
)

type JobRoleRepository interface {
	FindByCompanyID(ctx context.Context, companyID uuid.UUID) ([]model.JobRole, error)
}

type jobRoleRepository struct {
	db *gorm.DB
}

func NewJobRoleRepository(db *gorm.DB) JobRoleRepository {
	return &jobRoleRepository{db: db}
}

func (r *jobRoleRepository) FindByCompanyID(ctx context.Context, companyID uuid.UUID) ([]model.JobRole, error) {
	var roles []model.JobRole
	if err := r.db.WithContext(ctx).Where("company_id = ?", companyID).Order("title ASC").Find(&roles).Error; err != nil {
		return nil, err
	}
	return roles, nil
}
