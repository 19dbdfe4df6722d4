package controller

import (
	"context"

	"github.com/paperdock/paperdock/internal/common"
)

// ShareDocument grants another user access to the open document. On success
// both the share list and the document list are re-fetched: a new share can
// change what the grantee sees, and the server is the authority on both.
func (c *Controller) ShareDocument(ctx context.Context, username, permission string) error {
	id, err := c.requireDocument()
	if err != nil {
		return err
	}
	if username == "" {
		c.render.Notice(NoticeError, "Username is required.")
		return common.ErrEmptyField
	}

	if err := c.api.ShareDocument(ctx, id, username, permission); err != nil {
		c.log.Warn(ctx, "share failed", "id", id, "with", username, "err", err)
		c.render.Notice(NoticeError, "Failed to share document.")
		return err
	}

	c.render.Notice(NoticeSuccess, "Document shared successfully!")
	if err := c.ListShares(ctx); err != nil {
		return err
	}
	return c.ListDocuments(ctx)
}

// ListShares re-fetches and redraws the open document's share list. There is
// no local patching of the list; the server copy is always authoritative.
func (c *Controller) ListShares(ctx context.Context) error {
	id, err := c.requireDocument()
	if err != nil {
		return err
	}

	shares, err := c.api.ListShares(ctx, id)
	if err != nil {
		c.log.Warn(ctx, "share list failed", "id", id, "err", err)
		c.render.Notice(NoticeError, "Failed to load shares.")
		return err
	}

	c.render.Shares(shares)
	return nil
}

// RevokeShare removes a grant after confirmation, then refreshes both lists
// like ShareDocument does.
func (c *Controller) RevokeShare(ctx context.Context, username string) error {
	id, err := c.requireDocument()
	if err != nil {
		return err
	}
	if c.confirm == nil || !c.confirm.Confirm("Are you sure you want to revoke access for "+username+"?") {
		return nil
	}

	if err := c.api.RevokeShare(ctx, id, username); err != nil {
		c.log.Warn(ctx, "revoke failed", "id", id, "user", username, "err", err)
		c.render.Notice(NoticeError, "Failed to revoke share.")
		return err
	}

	c.render.Notice(NoticeSuccess, "Share revoked successfully!")
	if err := c.ListShares(ctx); err != nil {
		return err
	}
	return c.ListDocuments(ctx)
}
