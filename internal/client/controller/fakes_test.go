package controller

import (
	"context"
	"errors"
	"sync"

	"github.com/paperdock/paperdock/internal/client/api"
	"github.com/paperdock/paperdock/internal/client/models"
)

// fakeAPI implements api.Client with canned responses and a call trace.
type fakeAPI struct {
	mu    sync.Mutex
	calls []string
	token string

	loginToken  string
	loginErr    error
	registerErr error

	docs    []models.DocumentSummary
	listErr error

	docsByID map[int64]*models.DocumentDetail
	getErr   error

	perms   map[int64]string
	permErr error
	// permGate, when non-nil, blocks GetPermission until closed.
	permGate chan struct{}

	created   *models.DocumentDetail
	createErr error

	updates   []string
	updateIDs []int64
	updateErr error

	deleteErr error

	templates []models.Template
	tplByID   map[int64]*models.Template
	fromTpl   *models.DocumentDetail
	fromErr   error

	shares    []models.Share
	shareErr  error
	revokeErr error

	exportPayload []byte
	exportErr     error

	versions []models.VersionEntry
	histErr  error
}

func (f *fakeAPI) record(name string) {
	f.mu.Lock()
	f.calls = append(f.calls, name)
	f.mu.Unlock()
}

func (f *fakeAPI) callCount(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == name {
			n++
		}
	}
	return n
}

func (f *fakeAPI) Login(_ context.Context, _, _ string) (string, error) {
	f.record("Login")
	return f.loginToken, f.loginErr
}

func (f *fakeAPI) Register(_ context.Context, _ api.RegisterRequest) error {
	f.record("Register")
	return f.registerErr
}

func (f *fakeAPI) SetToken(token string) {
	f.mu.Lock()
	f.token = token
	f.mu.Unlock()
}

func (f *fakeAPI) Token() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.token
}

func (f *fakeAPI) ListDocuments(context.Context) ([]models.DocumentSummary, error) {
	f.record("ListDocuments")
	return f.docs, f.listErr
}

func (f *fakeAPI) GetDocument(_ context.Context, id int64) (*models.DocumentDetail, error) {
	f.record("GetDocument")
	if f.getErr != nil {
		return nil, f.getErr
	}
	if doc, ok := f.docsByID[id]; ok {
		copied := *doc
		return &copied, nil
	}
	return nil, errors.New("document not found")
}

func (f *fakeAPI) setPermGate(gate chan struct{}) {
	f.mu.Lock()
	f.permGate = gate
	f.mu.Unlock()
}

func (f *fakeAPI) GetPermission(_ context.Context, id int64) (string, error) {
	f.record("GetPermission")
	f.mu.Lock()
	gate := f.permGate
	f.mu.Unlock()
	if gate != nil {
		<-gate
	}
	if f.permErr != nil {
		return "", f.permErr
	}
	return f.perms[id], nil
}

func (f *fakeAPI) CreateDocument(_ context.Context, _, _ string) (*models.DocumentDetail, error) {
	f.record("CreateDocument")
	return f.created, f.createErr
}

func (f *fakeAPI) UpdateDocument(_ context.Context, id int64, content string) error {
	f.record("UpdateDocument")
	if f.updateErr != nil {
		return f.updateErr
	}
	f.mu.Lock()
	f.updates = append(f.updates, content)
	f.updateIDs = append(f.updateIDs, id)
	f.mu.Unlock()
	return nil
}

func (f *fakeAPI) DeleteDocument(context.Context, int64) error {
	f.record("DeleteDocument")
	return f.deleteErr
}

func (f *fakeAPI) ListTemplates(context.Context) ([]models.Template, error) {
	f.record("ListTemplates")
	return f.templates, nil
}

func (f *fakeAPI) GetTemplate(_ context.Context, id int64) (*models.Template, error) {
	f.record("GetTemplate")
	if tpl, ok := f.tplByID[id]; ok {
		return tpl, nil
	}
	return nil, f.histErr
}

func (f *fakeAPI) CreateFromTemplate(_ context.Context, _ int64, _ string) (*models.DocumentDetail, error) {
	f.record("CreateFromTemplate")
	return f.fromTpl, f.fromErr
}

func (f *fakeAPI) ShareDocument(_ context.Context, _ int64, _, _ string) error {
	f.record("ShareDocument")
	return f.shareErr
}

func (f *fakeAPI) ListShares(context.Context, int64) ([]models.Share, error) {
	f.record("ListShares")
	return f.shares, nil
}

func (f *fakeAPI) RevokeShare(context.Context, int64, string) error {
	f.record("RevokeShare")
	return f.revokeErr
}

func (f *fakeAPI) ExportDocument(context.Context, int64, string) ([]byte, error) {
	f.record("ExportDocument")
	return f.exportPayload, f.exportErr
}

func (f *fakeAPI) VersionHistory(context.Context, int64) ([]models.VersionEntry, error) {
	f.record("VersionHistory")
	return f.versions, f.histErr
}

// fakeRenderer records every draw request.
type fakeRenderer struct {
	mu sync.Mutex

	notices      []string // "kind:msg"
	authShown    int
	sessionUser  string
	lastList     []models.DocumentSummary
	listDrawn    int
	lastDoc      *models.DocumentDetail
	lastEditable bool
	docDrawn     int
	lastShares   []models.Share
	lastTpls     []models.Template
	lastPreview  *models.Template
	lastVersions []models.VersionEntry
}

func (r *fakeRenderer) Notice(kind NoticeKind, msg string) {
	r.mu.Lock()
	r.notices = append(r.notices, string(kind)+":"+msg)
	r.mu.Unlock()
}

func (r *fakeRenderer) AuthRequired() {
	r.mu.Lock()
	r.authShown++
	r.mu.Unlock()
}

func (r *fakeRenderer) SessionStarted(user models.User) {
	r.mu.Lock()
	r.sessionUser = user.Username
	r.mu.Unlock()
}

func (r *fakeRenderer) DocumentList(docs []models.DocumentSummary, _ string) {
	r.mu.Lock()
	r.lastList = docs
	r.listDrawn++
	r.mu.Unlock()
}

func (r *fakeRenderer) Document(doc *models.DocumentDetail, editable bool) {
	r.mu.Lock()
	r.lastDoc = doc
	r.lastEditable = editable
	r.docDrawn++
	r.mu.Unlock()
}

func (r *fakeRenderer) Shares(shares []models.Share) {
	r.mu.Lock()
	r.lastShares = shares
	r.mu.Unlock()
}

func (r *fakeRenderer) Templates(tpls []models.Template) {
	r.mu.Lock()
	r.lastTpls = tpls
	r.mu.Unlock()
}

func (r *fakeRenderer) TemplatePreview(tpl *models.Template) {
	r.mu.Lock()
	r.lastPreview = tpl
	r.mu.Unlock()
}

func (r *fakeRenderer) Versions(entries []models.VersionEntry) {
	r.mu.Lock()
	r.lastVersions = entries
	r.mu.Unlock()
}

func (r *fakeRenderer) noticeKinds() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.notices...)
}

// fakeConfirmer answers every confirmation the same way.
type fakeConfirmer struct {
	answer bool
	asked  []string
}

func (f *fakeConfirmer) Confirm(prompt string) bool {
	f.asked = append(f.asked, prompt)
	return f.answer
}

// memStore is an in-memory session.Store.
type memStore struct {
	mu      sync.Mutex
	sess    models.Session
	has     bool
	loadErr error
	saveErr error
}

func (m *memStore) Load(context.Context) (models.Session, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sess, m.has, m.loadErr
}

func (m *memStore) Save(_ context.Context, s models.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.sess, m.has = s, true
	return nil
}

func (m *memStore) Clear(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sess, m.has = models.Session{}, false
	return nil
}

func (m *memStore) Close() error { return nil }
