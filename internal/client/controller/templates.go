package controller

import (
	"context"

	"github.com/paperdock/paperdock/internal/client/models"
	"github.com/paperdock/paperdock/internal/common"
)

// ShowTemplates switches the main area to the template gallery and loads it.
func (c *Controller) ShowTemplates(ctx context.Context) error {
	if !c.requireSession() {
		return common.ErrNoSession
	}

	c.mu.Lock()
	c.view = ViewTemplates
	c.mu.Unlock()

	tpls, err := c.api.ListTemplates(ctx)
	if err != nil {
		c.log.Warn(ctx, "template list failed", "err", err)
		c.render.Notice(NoticeError, "Failed to load templates.")
		return err
	}

	c.render.Templates(tpls)
	return nil
}

// ShowDocuments switches the main area back to the document workspace.
func (c *Controller) ShowDocuments() {
	c.mu.Lock()
	c.view = ViewDocuments
	var snapshot *models.DocumentDetail
	var editable bool
	if c.current != nil {
		cp := *c.current
		snapshot = &cp
		editable = cp.Editable(c.session.User.Username)
	}
	c.mu.Unlock()

	c.render.Document(snapshot, editable)
}

// PreviewTemplate fetches one template and shows it without instantiating.
func (c *Controller) PreviewTemplate(ctx context.Context, id int64) error {
	if !c.requireSession() {
		return common.ErrNoSession
	}

	tpl, err := c.api.GetTemplate(ctx, id)
	if err != nil {
		c.log.Warn(ctx, "template fetch failed", "id", id, "err", err)
		c.render.Notice(NoticeError, "Failed to load template preview.")
		return err
	}

	c.render.TemplatePreview(tpl)
	return nil
}

// UseTemplate instantiates a template into a new document with the given
// title, switches back to the document view, and completes exactly like
// CreateDocument: list refreshed, new document opened.
func (c *Controller) UseTemplate(ctx context.Context, id int64, title string) error {
	if !c.requireSession() {
		return common.ErrNoSession
	}
	if title == "" {
		c.render.Notice(NoticeError, "A title is required to use a template.")
		return common.ErrEmptyTitle
	}

	doc, err := c.api.CreateFromTemplate(ctx, id, title)
	if err != nil {
		c.log.Warn(ctx, "template instantiation failed", "id", id, "err", err)
		c.render.Notice(NoticeError, "Failed to create document from template.")
		return err
	}

	c.render.Notice(NoticeSuccess, "Document created from template!")

	c.mu.Lock()
	c.view = ViewDocuments
	c.mu.Unlock()

	return c.finishCreate(ctx, doc.ID)
}
