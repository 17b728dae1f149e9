package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/lshigami/Rehearse/internal/model"
	"gorm.io/gorm"
)

type fakeCompanyRepo struct {
	companies []model.Company
	err       error
	calls     int
}

func (f *fakeCompanyRepo) FindAll(ctx context.Context) ([]model.Company, error) {
	f.calls++
	return f.companies, f.err
}

type fakeRoleRepo struct {
	roles []model.JobRole
	err   error
	calls int
	last  uuid.UUID
}

func (f *fakeRoleRepo) FindByCompanyID(ctx context.Context, companyID uuid.UUID) ([]model.JobRole, error) {
	f.calls++
	f.last = companyID
	return f.roles, f.err
}

type fakeSessionRepo struct {
	mu        sync.Mutex
	sessions  map[uuid.UUID]*model.InterviewSession
	createErr error
	findErr   error
	updateErr error
	creates   int
}

func newFakeSessionRepo(sessions ...*model.InterviewSession) *fakeSessionRepo {
	f := &fakeSessionRepo{sessions: make(map[uuid.UUID]*model.InterviewSession)}
	for _, s := range sessions {
		f.sessions[s.ID] = s
	}
	return f
}

func (f *fakeSessionRepo) Create(ctx context.Context, session *model.InterviewSession) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.creates++
	if f.createErr != nil {
		return f.createErr
	}
	if session.ID == uuid.Nil {
		session.ID = uuid.New()
	}
	cp := *session
	f.sessions[session.ID] = &cp
	return nil
}

func (f *fakeSessionRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.InterviewSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	s, ok := f.sessions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *s
	return &cp, nil
}

func (f *fakeSessionRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status model.SessionStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return f.updateErr
	}
	s, ok := f.sessions[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	s.Status = status
	return nil
}

type fakeQuestionRepo struct {
	byRole map[uuid.UUID]*model.Question
	err    error
}

func (f *fakeQuestionRepo) FindFirstByRoleID(ctx context.Context, roleID uuid.UUID) (*model.Question, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byRole[roleID], nil
}

type fakeResponseRepo struct {
	mu        sync.Mutex
	saved     []model.Response
	createErr error
}

func (f *fakeResponseRepo) Create(ctx context.Context, response *model.Response) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	if response.ID == uuid.Nil {
		response.ID = uuid.New()
	}
	f.saved = append(f.saved, *response)
	return nil
}

func (f *fakeResponseRepo) FindBySessionID(ctx context.Context, sessionID uuid.UUID) ([]model.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Response
	for _, r := range f.saved {
		if r.SessionID == sessionID {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeObjectStore struct {
	mu          sync.Mutex
	objects     map[string][]byte
	contentType map[string]string
	err         error
}

func newFakeObjectStore() *fakeObjectStore {
	return &fakeObjectStore{objects: make(map[string][]byte), contentType: make(map[string]string)}
}

func (f *fakeObjectStore) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.objects[key] = data
	f.contentType[key] = contentType
	return nil
}

func (f *fakeObjectStore) PublicURL(key string) string {
	return fmt.Sprintf("https://cdn.test/interview-recordings/%s", key)
}

type fakeCritiqueLLM struct {
	content, expression       string
	contentErr, expressionErr error
	gotTranscript, gotURL     string
}

func (f *fakeCritiqueLLM) CritiqueTranscript(ctx context.Context, transcript string) (string, error) {
	f.gotTranscript = transcript
	return f.content, f.contentErr
}

func (f *fakeCritiqueLLM) CritiqueExpressions(ctx context.Context, videoURL string) (string, error) {
	f.gotURL = videoURL
	return f.expression, f.expressionErr
}

func (f *fakeCritiqueLLM) Provider() string { return "fake" }
