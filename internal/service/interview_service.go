package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/lshigami/Rehearse/internal/apperr"
	"github.com/lshigami/Rehearse/internal/dto"
	"github.com/lshigami/Rehearse/internal/model"
	"github.com/lshigami/Rehearse/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// SetupRoute is where the client is sent back to when an interview cannot be loaded.
const SetupRoute = "/setup"

type InterviewService interface {
	LoadInterview(ctx context.Context, sessionID string) (*dto.InterviewDTO, error)
	ListResponses(ctx context.Context, sessionID string) ([]dto.ResponseDTO, error)
}

type interviewService struct {
	sessionRepo  repository.SessionRepository
	questionRepo repository.QuestionRepository
	responseRepo repository.ResponseRepository
}

func NewInterviewService(
	sessionRepo repository.SessionRepository,
	questionRepo repository.QuestionRepository,
	responseRepo repository.ResponseRepository,
) InterviewService {
	return &interviewService{
		sessionRepo:  sessionRepo,
		questionRepo: questionRepo,
		responseRepo: responseRepo,
	}
}

// LoadInterview marks the session in progress and returns the first question for its role.
// A role without questions is reported through QuestionAvailable, not as an error.
func (s *interviewService) LoadInterview(ctx context.Context, sessionID string) (*dto.InterviewDTO, error) {
	id, err := parseSessionID(sessionID)
	if err != nil {
		return nil, err
	}

	session, err := s.sessionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, sessionFetchError(err, sessionID)
	}

	if err := s.sessionRepo.UpdateStatus(ctx, id, model.SessionInProgress); err != nil {
		return nil, sessionFetchError(err, sessionID)
	}
	session.Status = model.SessionInProgress

	question, err := s.questionRepo.FindFirstByRoleID(ctx, session.RoleID)
	if err != nil {
		log.Error().Err(err).Str("sessionId", sessionID).Msg("Failed to fetch first question")
		return nil, apperr.Wrap(apperr.KindFetchFailure, "Failed to load interview", err).WithRedirect(SetupRoute)
	}

	resp := &dto.InterviewDTO{}
	copier.Copy(&resp.Session, session)
	if question == nil {
		log.Warn().Str("sessionId", sessionID).Str("roleId", session.RoleID.String()).Msg("Role has no questions")
		return resp, nil
	}
	resp.Question = &dto.QuestionDTO{}
	copier.Copy(resp.Question, question)
	resp.QuestionAvailable = true
	return resp, nil
}

func (s *interviewService) ListResponses(ctx context.Context, sessionID string) ([]dto.ResponseDTO, error) {
	id, err := parseSessionID(sessionID)
	if err != nil {
		return nil, err
	}
	if _, err := s.sessionRepo.FindByID(ctx, id); err != nil {
		return nil, sessionFetchError(err, sessionID)
	}

	responses, err := s.responseRepo.FindBySessionID(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("sessionId", sessionID).Msg("Failed to list responses")
		return nil, apperr.Wrap(apperr.KindFetchFailure, "Failed to load responses", err)
	}
	resp := make([]dto.ResponseDTO, 0, len(responses))
	copier.Copy(&resp, &responses)
	return resp, nil
}

func parseSessionID(sessionID string) (uuid.UUID, error) {
	id, err := uuid.Parse(sessionID)
	if err != nil {
		return uuid.Nil, apperr.Wrap(apperr.KindValidation, "Invalid session id", err).WithRedirect(SetupRoute)
	}
	return id, nil
}

func sessionFetchError(err error, sessionID string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.Wrap(apperr.KindNotFound, "Interview session not found", err).WithRedirect(SetupRoute)
	}
	log.Error().Err(err).Str("sessionId", sessionID).Msg("Failed to fetch interview session")
	return apperr.Wrap(apperr.KindFetchFailure, "Failed to load interview", err).WithRedirect(SetupRoute)
}
