package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/lshigami/Rehearse/internal/apperr"
	"github.com/lshigami/Rehearse/internal/dto"
	"github.com/lshigami/Rehearse/internal/metrics"
	"github.com/lshigami/Rehearse/internal/model"
	"github.com/lshigami/Rehearse/internal/repository"
	"github.com/rs/zerolog/log"
)

// InterviewRoute is where the client goes once a session exists.
const InterviewRoute = "/interview/"

type SetupService interface {
	ListCompanies(ctx context.Context) ([]dto.CompanyDTO, error)
	ListRoles(ctx context.Context, companyID string) ([]dto.JobRoleDTO, error)
	StartSession(ctx context.Context, userID uuid.UUID, roleID string) (*dto.StartSessionResponse, error)
}

type setupService struct {
	companyRepo repository.CompanyRepository
	roleRepo    repository.JobRoleRepository
	sessionRepo repository.SessionRepository
}

func NewSetupService(
	companyRepo repository.CompanyRepository,
	roleRepo repository.JobRoleRepository,
	sessionRepo repository.SessionRepository,
) SetupService {
	return &setupService{
		companyRepo: companyRepo,
		roleRepo:    roleRepo,
		sessionRepo: sessionRepo,
	}
}

func (s *setupService) ListCompanies(ctx context.Context) ([]dto.CompanyDTO, error) {
	companies, err := s.companyRepo.FindAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list companies")
		return nil, apperr.Wrap(apperr.KindFetchFailure, "Failed to load companies", err)
	}
	resp := make([]dto.CompanyDTO, 0, len(companies))
	copier.Copy(&resp, &companies)
	return resp, nil
}

// ListRoles returns an empty list without touching the store when no company is selected.
func (s *setupService) ListRoles(ctx context.Context, companyID string) ([]dto.JobRoleDTO, error) {
	companyID = strings.TrimSpace(companyID)
	if companyID == "" {
		return []dto.JobRoleDTO{}, nil
	}
	id, err := uuid.Parse(companyID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, "Invalid company id", err)
	}

	roles, err := s.roleRepo.FindByCompanyID(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("companyId", companyID).Msg("Failed to list roles")
		return nil, apperr.Wrap(apperr.KindFetchFailure, "Failed to load roles", err)
	}
	resp := make([]dto.JobRoleDTO, 0, len(roles))
	copier.Copy(&resp, &roles)
	return resp, nil
}

func (s *setupService) StartSession(ctx context.Context, userID uuid.UUID, roleID string) (*dto.StartSessionResponse, error) {
	roleID = strings.TrimSpace(roleID)
	if roleID == "" {
		return nil, apperr.New(apperr.KindValidation, "Please select a role")
	}
	if userID == uuid.Nil {
		return nil, apperr.New(apperr.KindUnauthorized, "Authentication required").WithRedirect("/auth")
	}
	rid, err := uuid.Parse(roleID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, "Please select a role", err)
	}

	session := model.InterviewSession{
		UserID: userID,
		RoleID: rid,
		Status: model.SessionPending,
	}
	if err := s.sessionRepo.Create(ctx, &session); err != nil {
		log.Error().Err(err).Str("roleId", roleID).Msg("Failed to create interview session")
		return nil, apperr.Wrap(apperr.KindPersistFailure, "Failed to start interview", err)
	}
	metrics.SessionsStarted.Inc()
	log.Info().Str("sessionId", session.ID.String()).Str("roleId", roleID).Msg("Interview session started")

	resp := &dto.StartSessionResponse{Next: fmt.Sprintf("%s%s", InterviewRoute, session.ID)}
	copier.Copy(&resp.Session, &session)
	return resp, nil
}
