package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/paperdock/paperdock/internal/client/models"
	"github.com/paperdock/paperdock/internal/common"
)

// HTTPClient talks to the backend over HTTP/JSON. The bearer token is held
// here and attached to every request once set.
type HTTPClient struct {
	baseURL string
	http    *http.Client

	// mu guards token: SetToken runs on the REPL goroutine while requests
	// issued by the autosave timer read it concurrently.
	mu    sync.RWMutex
	token string
}

// NewHTTPClient builds a client for the API at baseURL. A zero timeout
// disables the per-request deadline.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// SetToken installs (or with "" clears) the bearer credential.
func (c *HTTPClient) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *HTTPClient) bearer() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// do performs one round-trip: marshal body (if any), attach the token,
// check the status, decode into out (if any). Response bodies of failed
// requests are drained and discarded.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, out any) error {
	raw, err := c.doRaw(ctx, method, path, body)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

// doRaw is do without response decoding; it returns the raw response body.
func (c *HTTPClient) doRaw(ctx context.Context, method, path string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.bearer(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		// Unreachable host, timeout, DNS failure: all one bucket.
		return nil, fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", common.ErrUnavailable, err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, mapStatusError(method, path, resp.StatusCode)
	}
	return raw, nil
}

func mapStatusError(method, path string, status int) error {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s %s", common.ErrUnauthorized, method, path)
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return fmt.Errorf("%w: %s %s: status %d", common.ErrUnavailable, method, path, status)
	default:
		return fmt.Errorf("%s %s: unexpected status %d", method, path, status)
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (string, error) {
	var resp loginResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login", loginRequest{Username: username, Password: password}, &resp)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}

func (c *HTTPClient) Register(ctx context.Context, req RegisterRequest) error {
	return c.do(ctx, http.MethodPost, "/api/auth/register", req, nil)
}

func (c *HTTPClient) ListDocuments(ctx context.Context) ([]models.DocumentSummary, error) {
	var docs []models.DocumentSummary
	if err := c.do(ctx, http.MethodGet, "/api/documents", nil, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (c *HTTPClient) GetDocument(ctx context.Context, id int64) (*models.DocumentDetail, error) {
	var doc models.DocumentDetail
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/documents/%d", id), nil, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// GetPermission returns the effective permission of the current user on the
// document as raw text. Some backends quote the value; callers normalize.
func (c *HTTPClient) GetPermission(ctx context.Context, id int64) (string, error) {
	raw, err := c.doRaw(ctx, http.MethodGet, fmt.Sprintf("/api/documents/%d/permission", id), nil)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(raw)), nil
}

type createDocumentRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (c *HTTPClient) CreateDocument(ctx context.Context, title, content string) (*models.DocumentDetail, error) {
	var doc models.DocumentDetail
	req := createDocumentRequest{Title: title, Content: content}
	if err := c.do(ctx, http.MethodPost, "/api/documents", req, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

type updateDocumentRequest struct {
	Content string `json:"content"`
}

func (c *HTTPClient) UpdateDocument(ctx context.Context, id int64, content string) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/documents/%d", id), updateDocumentRequest{Content: content}, nil)
}

func (c *HTTPClient) DeleteDocument(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/documents/%d", id), nil, nil)
}

func (c *HTTPClient) ListTemplates(ctx context.Context) ([]models.Template, error) {
	var templates []models.Template
	if err := c.do(ctx, http.MethodGet, "/api/documents/templates", nil, &templates); err != nil {
		return nil, err
	}
	return templates, nil
}

func (c *HTTPClient) GetTemplate(ctx context.Context, id int64) (*models.Template, error) {
	var tpl models.Template
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/documents/templates/%d", id), nil, &tpl); err != nil {
		return nil, err
	}
	return &tpl, nil
}

type createFromTemplateRequest struct {
	Title string `json:"title"`
}

func (c *HTTPClient) CreateFromTemplate(ctx context.Context, templateID int64, title string) (*models.DocumentDetail, error) {
	var doc models.DocumentDetail
	path := fmt.Sprintf("/api/documents/templates/%d/create-document", templateID)
	if err := c.do(ctx, http.MethodPost, path, createFromTemplateRequest{Title: title}, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

type shareRequest struct {
	SharedWithUser string `json:"sharedWithUser"`
	Permission     string `json:"permission"`
}

func (c *HTTPClient) ShareDocument(ctx context.Context, docID int64, username, permission string) error {
	req := shareRequest{SharedWithUser: username, Permission: permission}
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/api/documents/%d/share", docID), req, nil)
}

func (c *HTTPClient) ListShares(ctx context.Context, docID int64) ([]models.Share, error) {
	var shares []models.Share
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/documents/%d/shares", docID), nil, &shares); err != nil {
		return nil, err
	}
	return shares, nil
}

func (c *HTTPClient) RevokeShare(ctx context.Context, docID int64, username string) error {
	path := fmt.Sprintf("/api/documents/%d/share/%s", docID, url.PathEscape(username))
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// ExportDocument fetches the rendered document in the given format. The
// format string is passed through verbatim; the payload is opaque bytes.
func (c *HTTPClient) ExportDocument(ctx context.Context, id int64, format string) ([]byte, error) {
	path := fmt.Sprintf("/api/documents/%d/export/%s", id, url.PathEscape(format))
	return c.doRaw(ctx, http.MethodGet, path, nil)
}

func (c *HTTPClient) VersionHistory(ctx context.Context, id int64) ([]models.VersionEntry, error) {
	var versions []models.VersionEntry
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/versions/%d/history", id), nil, &versions); err != nil {
		return nil, err
	}
	return versions, nil
}
