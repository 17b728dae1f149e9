package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/lshigami/Rehearse/config"
	"github.com/lshigami/Rehearse/internal/apperr"
	"github.com/lshigami/Rehearse/internal/dto"
	"github.com/lshigami/Rehearse/internal/metrics"
	"github.com/lshigami/Rehearse/internal/model"
	"github.com/lshigami/Rehearse/internal/recording"
	"github.com/lshigami/Rehearse/internal/repository"
	"github.com/lshigami/Rehearse/internal/storage"
	"github.com/rs/zerolog/log"
)

const PermissionGranted = "granted"

type RecordingService interface {
	StartRecording(ctx context.Context, sessionID string, req dto.StartRecordingRequest) (*dto.RecordingStateDTO, error)
	AppendChunk(ctx context.Context, sessionID string, chunk []byte) (*dto.RecordingStateDTO, error)
	StopRecording(ctx context.Context, sessionID string) (*dto.ResponseDTO, error)
	DiscardRecording(ctx context.Context, sessionID string) error
	RecordingState(ctx context.Context, sessionID string) (*dto.RecordingStateDTO, error)
	// Sweep discards controllers with no activity since now minus the idle TTL and returns
	// how many were dropped.
	Sweep(now time.Time) int
	RunReaper(ctx context.Context)
}

// recordingEntry is the server-side half of one interview view.
type recordingEntry struct {
	mu         sync.Mutex
	controller *recording.Controller
	questionID uuid.UUID
	last       *model.Response
}

func (e *recordingEntry) setQuestion(id uuid.UUID) {
	e.mu.Lock()
	e.questionID = id
	e.last = nil
	e.mu.Unlock()
}

type recordingService struct {
	mu           sync.Mutex
	entries      map[uuid.UUID]*recordingEntry
	sessionRepo  repository.SessionRepository
	responseRepo repository.ResponseRepository
	store        storage.ObjectStore
	idleTTL      time.Duration
	now          func() time.Time
}

func NewRecordingService(
	cfg *config.Config,
	sessionRepo repository.SessionRepository,
	responseRepo repository.ResponseRepository,
	store storage.ObjectStore,
) RecordingService {
	return &recordingService{
		entries:      make(map[uuid.UUID]*recordingEntry),
		sessionRepo:  sessionRepo,
		responseRepo: responseRepo,
		store:        store,
		idleTTL:      cfg.Recording.IdleTTL,
		now:          time.Now,
	}
}

func (s *recordingService) StartRecording(ctx context.Context, sessionID string, req dto.StartRecordingRequest) (*dto.RecordingStateDTO, error) {
	id, err := parseSessionID(sessionID)
	if err != nil {
		return nil, err
	}
	questionID, err := uuid.Parse(req.QuestionID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, "Invalid question id", err)
	}
	if _, err := s.sessionRepo.FindByID(ctx, id); err != nil {
		return nil, sessionFetchError(err, sessionID)
	}

	entry := s.entry(id)
	device := recording.NewClientDevice(req.Permission == PermissionGranted)
	if err := entry.controller.Start(ctx, device); err != nil {
		log.Warn().Err(err).Str("sessionId", sessionID).Msg("Recording could not start")
		return nil, recordingError(err)
	}
	entry.setQuestion(questionID)
	log.Info().Str("sessionId", sessionID).Str("questionId", req.QuestionID).Msg("Recording started")
	return stateDTO(id, entry.controller), nil
}

func (s *recordingService) AppendChunk(ctx context.Context, sessionID string, chunk []byte) (*dto.RecordingStateDTO, error) {
	id, err := parseSessionID(sessionID)
	if err != nil {
		return nil, err
	}
	entry, ok := s.lookup(id)
	if !ok {
		return nil, recordingError(recording.ErrNotRecording)
	}
	if _, err := entry.controller.Write(chunk); err != nil {
		return nil, recordingError(err)
	}
	return stateDTO(id, entry.controller), nil
}

// StopRecording finalizes the buffered media. On failure the recording is gone; the caller
// has to record again.
func (s *recordingService) StopRecording(ctx context.Context, sessionID string) (*dto.ResponseDTO, error) {
	id, err := parseSessionID(sessionID)
	if err != nil {
		return nil, err
	}
	entry, ok := s.lookup(id)
	if !ok {
		return nil, recordingError(recording.ErrNotRecording)
	}
	if err := entry.controller.Stop(ctx); err != nil {
		return nil, recordingError(err)
	}

	entry.mu.Lock()
	saved := entry.last
	entry.mu.Unlock()

	resp := &dto.ResponseDTO{}
	copier.Copy(resp, saved)
	return resp, nil
}

func (s *recordingService) DiscardRecording(ctx context.Context, sessionID string) error {
	id, err := parseSessionID(sessionID)
	if err != nil {
		return err
	}
	entry, ok := s.lookup(id)
	if !ok {
		return nil
	}
	entry.controller.Discard()
	if entry.controller.State() == recording.StateIdle {
		s.remove(id)
	}
	log.Info().Str("sessionId", sessionID).Msg("Recording discarded")
	return nil
}

func (s *recordingService) RecordingState(ctx context.Context, sessionID string) (*dto.RecordingStateDTO, error) {
	id, err := parseSessionID(sessionID)
	if err != nil {
		return nil, err
	}
	entry, ok := s.lookup(id)
	if !ok {
		return &dto.RecordingStateDTO{SessionID: id, State: string(recording.StateIdle)}, nil
	}
	return stateDTO(id, entry.controller), nil
}

func (s *recordingService) Sweep(now time.Time) int {
	if s.idleTTL <= 0 {
		return 0
	}
	cutoff := now.Add(-s.idleTTL)

	s.mu.Lock()
	defer s.mu.Unlock()
	reaped := 0
	for id, entry := range s.entries {
		ctrl := entry.controller
		if ctrl.State() == recording.StateUploading || ctrl.LastActivity().After(cutoff) {
			continue
		}
		ctrl.Discard()
		delete(s.entries, id)
		reaped++
	}
	metrics.ActiveRecordings.Set(float64(len(s.entries)))
	if reaped > 0 {
		log.Info().Int("reaped", reaped).Dur("idle_ttl", s.idleTTL).Msg("Reaped idle recordings")
	}
	return reaped
}

// RunReaper sweeps every half TTL until ctx is done.
func (s *recordingService) RunReaper(ctx context.Context) {
	if s.idleTTL <= 0 {
		log.Info().Msg("Recording reaper disabled")
		return
	}
	ticker := time.NewTicker(s.idleTTL / 2)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep(s.now())
		}
	}
}

func (s *recordingService) entry(id uuid.UUID) *recordingEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.entries[id]; ok {
		return e
	}
	e := &recordingEntry{}
	e.controller = recording.NewController(&responseFinalizer{
		sessionID: id,
		entry:     e,
		store:     s.store,
		repo:      s.responseRepo,
	})
	s.entries[id] = e
	metrics.ActiveRecordings.Set(float64(len(s.entries)))
	return e
}

func (s *recordingService) lookup(id uuid.UUID) (*recordingEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[id]
	return e, ok
}

func (s *recordingService) remove(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id)
	metrics.ActiveRecordings.Set(float64(len(s.entries)))
}

// responseFinalizer uploads a blob and records it as the answer to the entry's current question.
type responseFinalizer struct {
	sessionID uuid.UUID
	entry     *recordingEntry
	store     storage.ObjectStore
	repo      repository.ResponseRepository
}

// RecordingKey is the object key for a recording finalized at t.
func RecordingKey(sessionID uuid.UUID, t time.Time) string {
	return fmt.Sprintf("%s/%d.webm", sessionID, t.UnixMilli())
}

func (f *responseFinalizer) Finalize(ctx context.Context, blob recording.Blob) error {
	key := RecordingKey(f.sessionID, blob.FinalizedAt)
	metrics.RecordingBytes.Observe(float64(len(blob.Data)))

	if err := f.store.Upload(ctx, key, blob.Data, blob.ContentType); err != nil {
		metrics.RecordingsFinalized.WithLabelValues("upload_failure").Inc()
		log.Error().Err(err).Str("key", key).Msg("Failed to upload recording")
		return apperr.Wrap(apperr.KindUploadFailure, "Failed to upload recording", err)
	}

	f.entry.mu.Lock()
	questionID := f.entry.questionID
	f.entry.mu.Unlock()

	response := model.Response{
		SessionID:  f.sessionID,
		QuestionID: questionID,
		VideoURL:   f.store.PublicURL(key),
	}
	if err := f.repo.Create(ctx, &response); err != nil {
		metrics.RecordingsFinalized.WithLabelValues("persist_failure").Inc()
		log.Error().Err(err).Str("key", key).Msg("Failed to save response record")
		return apperr.Wrap(apperr.KindPersistFailure, "Failed to save response", err)
	}

	f.entry.mu.Lock()
	f.entry.last = &response
	f.entry.mu.Unlock()

	metrics.RecordingsFinalized.WithLabelValues("success").Inc()
	log.Info().Str("sessionId", f.sessionID.String()).Str("videoUrl", response.VideoURL).Msg("Recording saved")
	return nil
}

func stateDTO(id uuid.UUID, ctrl *recording.Controller) *dto.RecordingStateDTO {
	chunks, size := ctrl.Buffered()
	return &dto.RecordingStateDTO{
		SessionID:     id,
		State:         string(ctrl.State()),
		BufferedBytes: size,
		Chunks:        chunks,
	}
}

func recordingError(err error) error {
	var appErr *apperr.Error
	switch {
	case errors.As(err, &appErr):
		return err
	case errors.Is(err, recording.ErrPermissionDenied):
		return apperr.Wrap(apperr.KindPermissionDenial, "Camera and microphone access was denied", err)
	case errors.Is(err, recording.ErrAlreadyRecording), errors.Is(err, recording.ErrNotRecording):
		return apperr.Wrap(apperr.KindInvalidState, err.Error(), err)
	default:
		return err
	}
}
