// Package api implements the client for the collaboration backend. The
// backend is an external HTTP/JSON service; everything here is a thin,
// context-aware wrapper over its endpoints with uniform error mapping.
package api

import (
	"context"

	"github.com/paperdock/paperdock/internal/client/models"
)

// RegisterRequest carries the fields of the registration form. Validation is
// the server's responsibility.
type RegisterRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Client is the remote operation surface the controller depends on.
//
// Contract:
//   - Login returns the bearer token; it does not store it. SetToken installs
//     the credential used by every other call, SetToken("") clears it.
//   - GetPermission returns the server's raw permission text; normalization
//     is the caller's job.
//   - All methods honor context cancellation and map transport failures and
//     auth failures to common.ErrUnavailable / common.ErrUnauthorized.
type Client interface {
	Login(ctx context.Context, username, password string) (string, error)
	Register(ctx context.Context, req RegisterRequest) error
	SetToken(token string)

	ListDocuments(ctx context.Context) ([]models.DocumentSummary, error)
	GetDocument(ctx context.Context, id int64) (*models.DocumentDetail, error)
	GetPermission(ctx context.Context, id int64) (string, error)
	CreateDocument(ctx context.Context, title, content string) (*models.DocumentDetail, error)
	UpdateDocument(ctx context.Context, id int64, content string) error
	DeleteDocument(ctx context.Context, id int64) error

	ListTemplates(ctx context.Context) ([]models.Template, error)
	GetTemplate(ctx context.Context, id int64) (*models.Template, error)
	CreateFromTemplate(ctx context.Context, templateID int64, title string) (*models.DocumentDetail, error)

	ShareDocument(ctx context.Context, docID int64, username, permission string) error
	ListShares(ctx context.Context, docID int64) ([]models.Share, error)
	RevokeShare(ctx context.Context, docID int64, username string) error

	ExportDocument(ctx context.Context, id int64, format string) ([]byte, error)
	VersionHistory(ctx context.Context, id int64) ([]models.VersionEntry, error)
}
