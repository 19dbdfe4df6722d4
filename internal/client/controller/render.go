package controller

import "github.com/paperdock/paperdock/internal/client/models"

// NoticeKind classifies the short-lived user-visible notices. Every failure,
// whatever its cause, surfaces as exactly one notice; callers never see the
// taxonomy.
type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
	NoticeInfo    NoticeKind = "info"
)

// Renderer is the view layer. The controller owns all state and decides what
// to show; implementations only draw. The CLI provides the real one, tests
// use a recording fake.
type Renderer interface {
	// Notice shows a transient success/error/info message.
	Notice(kind NoticeKind, msg string)

	// AuthRequired switches to the login/register view.
	AuthRequired()

	// SessionStarted switches to the main view for the given user.
	SessionStarted(user models.User)

	// DocumentList redraws the sidebar. An empty slice must render a
	// distinct "no documents yet" affordance, not a blank list.
	// currentUser lets the view mark ownership on each row.
	DocumentList(docs []models.DocumentSummary, currentUser string)

	// Document redraws the detail view. A nil doc means the empty
	// placeholder ("select a document").
	Document(doc *models.DocumentDetail, editable bool)

	// Shares redraws the share list of the open document.
	Shares(shares []models.Share)

	// Templates redraws the template gallery.
	Templates(tpls []models.Template)

	// TemplatePreview shows a single template's description and content.
	TemplatePreview(tpl *models.Template)

	// Versions shows the version history of the open document.
	Versions(entries []models.VersionEntry)
}

// Confirmer guards destructive operations. The call must block until the
// user answers; false cancels the operation before any request is issued.
type Confirmer interface {
	Confirm(prompt string) bool
}
