// Package models defines the domain types exchanged with the collaboration
// API and the permission gate applied to open documents.
package models

import "time"

// User is the locally stored record of the authenticated account.
// Only the username is known client-side; everything else lives on the server.
type User struct {
	Username string `json:"username"`
}

// Session couples the authenticated user with its bearer credential.
// A zero Session means "not logged in".
type Session struct {
	User  User
	Token string
}

// Valid reports whether the session carries both a credential and a user.
func (s Session) Valid() bool {
	return s.Token != "" && s.User.Username != ""
}

// DocumentSummary is one row of the document list. Ephemeral: rebuilt on
// every list refresh, never mutated in place.
type DocumentSummary struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Owner   string `json:"owner"`
}

// Preview returns a short excerpt of the content for list rendering. The
// cut lands on a rune boundary so multibyte content stays valid UTF-8.
func (d DocumentSummary) Preview() string {
	if d.Content == "" {
		return "Empty document"
	}
	return Excerpt(d.Content, 50)
}

// Excerpt truncates s to at most max runes, appending "..." when shortened.
func Excerpt(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

// DocumentDetail is the currently open document, composed from the document
// fetch plus a separate permission lookup for the current user.
type DocumentDetail struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Owner   string `json:"owner"`

	// Permission is the resolved access level of the current user on this
	// document. Per-(user, document): recomputed on every open, never
	// carried over from a previously open document.
	Permission Permission `json:"-"`
}

// Share is a grant of access from the document owner to another user.
type Share struct {
	SharedWithUser string `json:"sharedWithUser"`
	Permission     string `json:"permission"`
}

// Template is a reusable document skeleton, read-only for the client.
type Template struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Content     string `json:"content"`
}

// VersionEntry is one historical snapshot reference of a document.
type VersionEntry struct {
	ID        int64     `json:"id"`
	EditedBy  string    `json:"editedBy"`
	Timestamp time.Time `json:"timestamp"`
}
