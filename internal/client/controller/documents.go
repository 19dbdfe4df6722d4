package controller

import (
	"context"

	"github.com/google/uuid"

	"github.com/paperdock/paperdock/internal/client/models"
	"github.com/paperdock/paperdock/internal/common"
)

// ListDocuments fetches every document visible to the session (owned and
// shared) and redraws the list.
func (c *Controller) ListDocuments(ctx context.Context) error {
	if !c.requireSession() {
		return common.ErrNoSession
	}

	docs, err := c.api.ListDocuments(ctx)
	if err != nil {
		c.log.Warn(ctx, "document list failed", "err", err)
		c.render.Notice(NoticeError, "Failed to load documents.")
		return err
	}

	c.render.DocumentList(docs, c.CurrentUser())
	return nil
}

// OpenDocument fetches the document body, then the effective permission for
// the current user, and installs the composed detail as the open document.
//
// Permission resolution: the owner is always "owner" regardless of the
// permission endpoint; a failed lookup defaults to read-only. Each call
// claims a fresh open token, and a response whose token has been superseded
// by a newer open is discarded instead of clobbering the newer document.
func (c *Controller) OpenDocument(ctx context.Context, id int64) error {
	if !c.requireSession() {
		return common.ErrNoSession
	}

	// Unsaved edits on the outgoing document are flushed before it is
	// replaced.
	c.flushPendingSave(ctx)

	token := uuid.New()
	c.mu.Lock()
	c.openToken = token
	c.mu.Unlock()

	doc, err := c.api.GetDocument(ctx, id)
	if err != nil {
		c.log.Warn(ctx, "document fetch failed", "id", id, "err", err)
		c.render.Notice(NoticeError, "Failed to load document.")
		return err
	}

	perm := models.PermissionReadOnly
	if raw, permErr := c.api.GetPermission(ctx, id); permErr == nil {
		perm = models.NormalizePermission(raw)
	} else {
		// Fail closed: an unresolvable permission means read-only.
		c.log.Warn(ctx, "permission lookup failed, defaulting to read-only", "id", id, "err", permErr)
	}

	c.mu.Lock()
	if c.openToken != token {
		c.mu.Unlock()
		c.log.Debug(ctx, "stale open response discarded", "id", id)
		return nil
	}
	user := c.session.User.Username
	if doc.Owner == user {
		perm = models.PermissionOwner
	}
	doc.Permission = perm
	c.current = doc
	c.dirty = false
	c.stopAutosaveLocked()
	editable := doc.Editable(user)
	// The renderer gets its own copy so later edits to the live document
	// cannot mutate a retained view value.
	snapshot := *doc
	c.mu.Unlock()

	c.log.Info(ctx, "document opened", "id", id, "permission", perm, "editable", editable)
	c.render.Document(&snapshot, editable)
	return nil
}

// CreateDocument posts a new document and finishes like UseTemplate does:
// list refreshed, then the created document opened so the detail view shows
// the server-assigned fields.
func (c *Controller) CreateDocument(ctx context.Context, title, content string) error {
	if !c.requireSession() {
		return common.ErrNoSession
	}

	doc, err := c.api.CreateDocument(ctx, title, content)
	if err != nil {
		c.log.Warn(ctx, "document create failed", "err", err)
		c.render.Notice(NoticeError, "Failed to create document.")
		return err
	}

	c.render.Notice(NoticeSuccess, "Document created successfully!")
	return c.finishCreate(ctx, doc.ID)
}

// finishCreate is the shared completion sequence of CreateDocument and
// UseTemplate: re-list, then open the new document by id.
func (c *Controller) finishCreate(ctx context.Context, id int64) error {
	if err := c.ListDocuments(ctx); err != nil {
		return err
	}
	return c.OpenDocument(ctx, id)
}

// Edit applies a local edit to the open document's content and restarts the
// autosave window. Edits to a read-only document are rejected before any
// state changes.
func (c *Controller) Edit(ctx context.Context, content string) error {
	c.mu.Lock()
	if c.current == nil {
		c.mu.Unlock()
		c.render.Notice(NoticeError, "No document selected.")
		return common.ErrNoDocument
	}
	if !c.current.Editable(c.session.User.Username) {
		c.mu.Unlock()
		c.render.Notice(NoticeError, "You have read-only access to this document.")
		return common.ErrUnauthorized
	}
	c.current.Content = content
	c.dirty = true
	c.scheduleAutosaveLocked()
	c.mu.Unlock()
	return nil
}

// SaveDocument puts the open document's content. The update is optimistic:
// on success the local copy is considered saved as sent, with no re-fetch.
func (c *Controller) SaveDocument(ctx context.Context) error {
	c.mu.Lock()
	if c.current == nil {
		c.mu.Unlock()
		c.render.Notice(NoticeError, "No document selected.")
		return common.ErrNoDocument
	}
	id := c.current.ID
	content := c.current.Content
	c.mu.Unlock()

	if err := c.api.UpdateDocument(ctx, id, content); err != nil {
		c.log.Warn(ctx, "save failed", "id", id, "err", err)
		c.render.Notice(NoticeError, "Failed to save document.")
		return err
	}

	c.mu.Lock()
	// The document may have been switched or edited while the save was in
	// flight; only a save of the still-current content clears the dirty
	// flag.
	if c.current != nil && c.current.ID == id && c.current.Content == content {
		c.dirty = false
	}
	c.mu.Unlock()

	c.log.Info(ctx, "document saved", "id", id)
	c.render.Notice(NoticeSuccess, "Document saved successfully!")
	return nil
}

// DeleteDocument asks for confirmation, deletes, and re-lists. Deleting the
// open document also resets the detail view to its placeholder; deleting any
// other document leaves the detail view untouched.
func (c *Controller) DeleteDocument(ctx context.Context, id int64) error {
	if !c.requireSession() {
		return common.ErrNoSession
	}
	if c.confirm == nil || !c.confirm.Confirm("Are you sure you want to delete this document?") {
		return nil
	}

	if err := c.api.DeleteDocument(ctx, id); err != nil {
		c.log.Warn(ctx, "delete failed", "id", id, "err", err)
		c.render.Notice(NoticeError, "Failed to delete document.")
		return err
	}

	c.render.Notice(NoticeSuccess, "Document deleted successfully!")

	c.mu.Lock()
	cleared := c.current != nil && c.current.ID == id
	if cleared {
		c.current = nil
		c.dirty = false
		c.stopAutosaveLocked()
	}
	c.mu.Unlock()

	if err := c.ListDocuments(ctx); err != nil {
		return err
	}
	if cleared {
		c.render.Document(nil, false)
	}
	return nil
}
