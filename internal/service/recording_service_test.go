package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lshigami/Rehearse/config"
	"github.com/lshigami/Rehearse/internal/apperr"
	"github.com/lshigami/Rehearse/internal/dto"
	"github.com/lshigami/Rehearse/internal/recording"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingFixture struct {
	svc       *recordingService
	session   uuid.UUID
	question  uuid.UUID
	store     *fakeObjectStore
	responses *fakeResponseRepo
}

func newRecordingFixture(t *testing.T) *recordingFixture {
	t.Helper()
	session := seededSession()
	store := newFakeObjectStore()
	responses := &fakeResponseRepo{}
	cfg := &config.Config{Recording: config.Recording{IdleTTL: 30 * time.Minute}}
	svc := NewRecordingService(cfg, newFakeSessionRepo(session), responses, store).(*recordingService)
	return &recordingFixture{
		svc:       svc,
		session:   session.ID,
		question:  uuid.New(),
		store:     store,
		responses: responses,
	}
}

func (f *recordingFixture) start(t *testing.T, permission string) (*dto.RecordingStateDTO, error) {
	t.Helper()
	return f.svc.StartRecording(context.Background(), f.session.String(), dto.StartRecordingRequest{
		QuestionID: f.question.String(),
		Permission: permission,
	})
}

func TestRecordingService_StartAppendStop(t *testing.T) {
	f := newRecordingFixture(t)
	ctx := context.Background()

	state, err := f.start(t, "granted")
	require.NoError(t, err)
	assert.Equal(t, string(recording.StateRecording), state.State)

	_, err = f.svc.AppendChunk(ctx, f.session.String(), []byte("abc"))
	require.NoError(t, err)
	state, err = f.svc.AppendChunk(ctx, f.session.String(), []byte("def"))
	require.NoError(t, err)
	assert.Equal(t, 2, state.Chunks)
	assert.Equal(t, 6, state.BufferedBytes)

	saved, err := f.svc.StopRecording(ctx, f.session.String())
	require.NoError(t, err)
	assert.Equal(t, f.session, saved.SessionID)
	assert.Equal(t, f.question, saved.QuestionID)
	assert.True(t, strings.HasPrefix(saved.VideoURL, "https://cdn.test/interview-recordings/"+f.session.String()+"/"))
	assert.True(t, strings.HasSuffix(saved.VideoURL, ".webm"))

	require.Len(t, f.store.objects, 1)
	for key, data := range f.store.objects {
		assert.Equal(t, []byte("abcdef"), data)
		assert.Equal(t, "video/webm", f.store.contentType[key])
	}
	require.Len(t, f.responses.saved, 1)

	state, err = f.svc.RecordingState(ctx, f.session.String())
	require.NoError(t, err)
	assert.Equal(t, string(recording.StateIdle), state.State)
	assert.Zero(t, state.BufferedBytes)
}

func TestRecordingService_PermissionDenied(t *testing.T) {
	f := newRecordingFixture(t)

	_, err := f.start(t, "denied")
	require.Error(t, err)
	assert.Equal(t, apperr.KindPermissionDenial, apperr.KindOf(err))

	state, err := f.svc.RecordingState(context.Background(), f.session.String())
	require.NoError(t, err)
	assert.Equal(t, string(recording.StatePermissionDenied), state.State)

	_, err = f.start(t, "granted")
	require.NoError(t, err)
}

func TestRecordingService_StartTwice(t *testing.T) {
	f := newRecordingFixture(t)

	_, err := f.start(t, "granted")
	require.NoError(t, err)
	_, err = f.start(t, "granted")
	require.Error(t, err)
	assert.Equal(t, apperr.KindInvalidState, apperr.KindOf(err))
}

func TestRecordingService_UnknownSession(t *testing.T) {
	f := newRecordingFixture(t)

	_, err := f.svc.StartRecording(context.Background(), uuid.NewString(), dto.StartRecordingRequest{
		QuestionID: uuid.NewString(),
		Permission: "granted",
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestRecordingService_StopWithoutStart(t *testing.T) {
	f := newRecordingFixture(t)

	_, err := f.svc.StopRecording(context.Background(), f.session.String())
	require.Error(t, err)
	assert.Equal(t, apperr.KindInvalidState, apperr.KindOf(err))

	_, err = f.svc.AppendChunk(context.Background(), f.session.String(), []byte("x"))
	require.Error(t, err)
	assert.Equal(t, apperr.KindInvalidState, apperr.KindOf(err))
}

func TestRecordingService_UploadFailure(t *testing.T) {
	f := newRecordingFixture(t)
	f.store.err = errors.New("AccessDenied")

	_, err := f.start(t, "granted")
	require.NoError(t, err)
	_, err = f.svc.AppendChunk(context.Background(), f.session.String(), []byte("abc"))
	require.NoError(t, err)

	_, err = f.svc.StopRecording(context.Background(), f.session.String())
	require.Error(t, err)
	assert.Equal(t, apperr.KindUploadFailure, apperr.KindOf(err))
	assert.Empty(t, f.responses.saved)

	state, err := f.svc.RecordingState(context.Background(), f.session.String())
	require.NoError(t, err)
	assert.Equal(t, string(recording.StateIdle), state.State)
	assert.Zero(t, state.BufferedBytes)
}

func TestRecordingService_PersistFailure(t *testing.T) {
	f := newRecordingFixture(t)
	f.responses.createErr = errors.New("violates foreign key constraint")

	_, err := f.start(t, "granted")
	require.NoError(t, err)
	_, err = f.svc.AppendChunk(context.Background(), f.session.String(), []byte("abc"))
	require.NoError(t, err)

	_, err = f.svc.StopRecording(context.Background(), f.session.String())
	require.Error(t, err)
	assert.Equal(t, apperr.KindPersistFailure, apperr.KindOf(err))
	assert.Len(t, f.store.objects, 1)
}

func TestRecordingService_Discard(t *testing.T) {
	f := newRecordingFixture(t)
	ctx := context.Background()

	_, err := f.start(t, "granted")
	require.NoError(t, err)
	_, err = f.svc.AppendChunk(ctx, f.session.String(), []byte("abc"))
	require.NoError(t, err)

	require.NoError(t, f.svc.DiscardRecording(ctx, f.session.String()))
	_, ok := f.svc.lookup(f.session)
	assert.False(t, ok)
	assert.Empty(t, f.store.objects)

	require.NoError(t, f.svc.DiscardRecording(ctx, f.session.String()))
}

func TestRecordingService_Sweep(t *testing.T) {
	f := newRecordingFixture(t)

	_, err := f.start(t, "granted")
	require.NoError(t, err)

	assert.Zero(t, f.svc.Sweep(time.Now()))
	assert.Equal(t, 1, f.svc.Sweep(time.Now().Add(time.Hour)))

	_, ok := f.svc.lookup(f.session)
	assert.False(t, ok)
}

func TestRecordingService_SweepDisabled(t *testing.T) {
	f := newRecordingFixture(t)
	f.svc.idleTTL = 0

	_, err := f.start(t, "granted")
	require.NoError(t, err)
	assert.Zero(t, f.svc.Sweep(time.Now().Add(24*time.Hour)))
}

func TestRecordingKey(t *testing.T) {
	id := uuid.MustParse("6f1c2f9e-0d5b-4d38-9a53-1c1f8f3b2a10")
	at := time.UnixMilli(1700000000123)
	assert.Equal(t, "6f1c2f9e-0d5b-4d38-9a53-1c1f8f3b2a10/1700000000123.webm", RecordingKey(id, at))
}
