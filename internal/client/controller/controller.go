// Package controller holds the client's session/document state machine.
// Every user intent becomes one method here: the controller calls the remote
// API, reconciles the response into its state, and asks the Renderer to
// redraw. Failures surface as one transient notice and leave prior state
// untouched; nothing is retried.
package controller

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/paperdock/paperdock/internal/client/api"
	"github.com/paperdock/paperdock/internal/client/models"
	"github.com/paperdock/paperdock/internal/client/session"
	"github.com/paperdock/paperdock/internal/common"
	"github.com/paperdock/paperdock/internal/logging"
)

// View is the main-area mode: the document workspace or the template gallery.
type View string

const (
	ViewDocuments View = "documents"
	ViewTemplates View = "templates"
)

// DefaultAutosaveDelay is the quiescence window after the last edit before
// an automatic save fires.
const DefaultAutosaveDelay = 2000 * time.Millisecond

// Params collects the controller's collaborators.
type Params struct {
	API       api.Client
	Store     session.Store
	Renderer  Renderer
	Confirmer Confirmer
	Log       logging.Logger

	// DownloadDir receives exported documents.
	DownloadDir string

	// AutosaveDelay overrides DefaultAutosaveDelay (tests use a short one).
	AutosaveDelay time.Duration
}

// Controller mediates every state transition of the client.
//
// Locking: mu guards the mutable state below it. It is never held across a
// network call, so calls may overlap and responses are applied in completion
// order — except document opens, which carry an open token so a stale
// response for a superseded open is discarded.
type Controller struct {
	api     api.Client
	store   session.Store
	render  Renderer
	confirm Confirmer
	log     logging.Logger

	downloadDir   string
	autosaveDelay time.Duration

	mu        sync.Mutex
	session   models.Session
	current   *models.DocumentDetail
	view      View
	openToken uuid.UUID
	saveTimer *time.Timer
	dirty     bool
}

// New builds a Controller. Renderer and API are required; a nil Confirmer
// rejects every destructive operation.
func New(p Params) *Controller {
	delay := p.AutosaveDelay
	if delay <= 0 {
		delay = DefaultAutosaveDelay
	}
	log := p.Log
	if log == nil {
		log = logging.Nop{}
	}
	return &Controller{
		api:           p.API,
		store:         p.Store,
		render:        p.Renderer,
		confirm:       p.Confirmer,
		log:           log,
		downloadDir:   p.DownloadDir,
		autosaveDelay: delay,
		view:          ViewDocuments,
	}
}

// Startup hydrates the session from durable storage. With a stored token and
// user the client goes straight to the authenticated view and loads the
// document list; otherwise the auth view is shown.
func (c *Controller) Startup(ctx context.Context) error {
	sess, ok, err := c.store.Load(ctx)
	if err != nil {
		c.log.Error(ctx, "session hydration failed", "err", err)
	}
	if !ok {
		c.render.AuthRequired()
		return nil
	}

	c.mu.Lock()
	c.session = sess
	c.mu.Unlock()
	c.api.SetToken(sess.Token)

	c.log.Info(ctx, "session restored", "user", sess.User.Username)
	c.render.SessionStarted(sess.User)
	return c.ListDocuments(ctx)
}

// Login authenticates and, on success, persists the session and loads the
// document list. Non-success status and transport failure are reported the
// same way and leave the client unauthenticated.
func (c *Controller) Login(ctx context.Context, username, password string) error {
	token, err := c.api.Login(ctx, username, password)
	if err != nil {
		c.log.Warn(ctx, "login failed", "user", username, "err", err)
		c.render.Notice(NoticeError, "Login failed. Please check your credentials.")
		return err
	}

	sess := models.Session{Token: token, User: models.User{Username: username}}
	c.api.SetToken(token)
	if err := c.store.Save(ctx, sess); err != nil {
		// The session still works for this run; it just won't survive a
		// restart.
		c.log.Error(ctx, "session persist failed", "err", err)
	}

	c.mu.Lock()
	c.session = sess
	c.mu.Unlock()

	c.render.Notice(NoticeSuccess, "Login successful!")
	c.render.SessionStarted(sess.User)
	return c.ListDocuments(ctx)
}

// Register creates an account. It does not authenticate: on success the user
// is returned to the login form. Validation is the server's job.
func (c *Controller) Register(ctx context.Context, req api.RegisterRequest) error {
	if err := c.api.Register(ctx, req); err != nil {
		c.log.Warn(ctx, "registration failed", "user", req.Username, "err", err)
		c.render.Notice(NoticeError, "Registration failed. Please try again.")
		return err
	}
	c.render.Notice(NoticeSuccess, "Registration successful! Please login.")
	c.render.AuthRequired()
	return nil
}

// Logout clears durable and in-memory session state unconditionally. No
// server round-trip is made; the token is simply forgotten.
func (c *Controller) Logout(ctx context.Context) error {
	if err := c.store.Clear(ctx); err != nil {
		c.log.Error(ctx, "session clear failed", "err", err)
	}
	c.api.SetToken("")

	c.mu.Lock()
	c.session = models.Session{}
	c.current = nil
	c.dirty = false
	c.view = ViewDocuments
	c.stopAutosaveLocked()
	c.mu.Unlock()

	c.render.AuthRequired()
	c.render.Notice(NoticeInfo, "Logged out successfully.")
	return nil
}

// LoggedIn reports whether a session is active.
func (c *Controller) LoggedIn() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session.Valid()
}

// CurrentUser returns the authenticated username, or "".
func (c *Controller) CurrentUser() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session.User.Username
}

// View returns the current main-area mode.
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view
}

// CurrentDocument returns a copy of the open document, or nil.
func (c *Controller) CurrentDocument() *models.DocumentDetail {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		return nil
	}
	doc := *c.current
	return &doc
}

// requireSession reports whether a session exists, showing the standard
// notice when it does not.
func (c *Controller) requireSession() bool {
	if c.LoggedIn() {
		return true
	}
	c.render.Notice(NoticeError, "Please login first.")
	return false
}

// requireDocument returns the id of the open document, or an error (and the
// standard notice) when none is open.
func (c *Controller) requireDocument() (int64, error) {
	c.mu.Lock()
	cur := c.current
	c.mu.Unlock()
	if cur == nil {
		c.render.Notice(NoticeError, "No document selected.")
		return 0, common.ErrNoDocument
	}
	return cur.ID, nil
}
