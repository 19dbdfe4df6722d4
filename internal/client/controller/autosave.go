package controller

import (
	"context"
	"time"
)

// Debounced autosave: each edit restarts the quiescence window; the save
// fires only after the window elapses with no further edits, so a burst of
// keystrokes produces at most one pending save.

// scheduleAutosaveLocked (re)arms the autosave timer. Caller holds mu.
func (c *Controller) scheduleAutosaveLocked() {
	if c.saveTimer != nil {
		c.saveTimer.Stop()
	}
	c.saveTimer = time.AfterFunc(c.autosaveDelay, c.autosaveFire)
}

// stopAutosaveLocked cancels any pending autosave. Caller holds mu.
func (c *Controller) stopAutosaveLocked() {
	if c.saveTimer != nil {
		c.saveTimer.Stop()
		c.saveTimer = nil
	}
}

// autosaveFire runs when the quiescence window elapses. The open document
// may have been saved, switched or closed since the last edit; only a still
// dirty, still open document is saved.
func (c *Controller) autosaveFire() {
	c.mu.Lock()
	pending := c.current != nil && c.dirty
	c.mu.Unlock()
	if !pending {
		return
	}

	ctx := context.Background()
	c.log.Debug(ctx, "autosave firing")
	_ = c.SaveDocument(ctx)
}

// flushPendingSave saves synchronously if edits are waiting on the autosave
// timer, so switching documents cannot drop them.
func (c *Controller) flushPendingSave(ctx context.Context) {
	c.mu.Lock()
	pending := c.current != nil && c.dirty
	c.stopAutosaveLocked()
	c.mu.Unlock()
	if !pending {
		return
	}

	c.log.Debug(ctx, "flushing pending autosave before switch")
	_ = c.SaveDocument(ctx)
}
