package controller

import (
	"context"
	"fmt"
	"strings"

	"github.com/paperdock/paperdock/internal/filex"
)

// ExportDocument downloads the open document in the given format and writes
// it to the download directory as "<title>.<format>". The format string is
// passed to the API verbatim; the payload is not inspected.
func (c *Controller) ExportDocument(ctx context.Context, format string) error {
	id, err := c.requireDocument()
	if err != nil {
		return err
	}

	c.mu.Lock()
	var title string
	if c.current != nil {
		title = c.current.Title
	}
	c.mu.Unlock()

	payload, err := c.api.ExportDocument(ctx, id, format)
	if err != nil {
		c.log.Warn(ctx, "export failed", "id", id, "format", format, "err", err)
		c.render.Notice(NoticeError, "Failed to export document.")
		return err
	}

	path, err := filex.WriteDownload(c.downloadDir, title, format, payload)
	if err != nil {
		c.log.Error(ctx, "export write failed", "id", id, "err", err)
		c.render.Notice(NoticeError, "Failed to export document.")
		return err
	}

	c.log.Info(ctx, "document exported", "id", id, "path", path)
	c.render.Notice(NoticeSuccess, fmt.Sprintf("Document exported as %s! Saved to %s", strings.ToUpper(format), path))
	return nil
}

// LoadVersionHistory fetches and shows the ordered snapshot history of the
// open document.
func (c *Controller) LoadVersionHistory(ctx context.Context) error {
	id, err := c.requireDocument()
	if err != nil {
		return err
	}

	versions, err := c.api.VersionHistory(ctx, id)
	if err != nil {
		c.log.Warn(ctx, "version history failed", "id", id, "err", err)
		c.render.Notice(NoticeError, "Failed to load version history.")
		return err
	}

	c.render.Versions(versions)
	return nil
}
