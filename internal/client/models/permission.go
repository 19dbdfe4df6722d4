package models

import "strings"

// Permission is the effective access level of the current user on a document.
// Canonical values are PermissionOwner, PermissionReadWrite and
// PermissionReadOnly; unrecognized server values pass through unchanged and
// are treated as non-editable.
type Permission string

const (
	PermissionOwner     Permission = "owner"
	PermissionReadWrite Permission = "read-write"
	PermissionReadOnly  Permission = "read-only"
)

// quoteTrimmer strips the quoting some backends wrap around the plain-text
// permission response.
var quoteTrimmer = strings.NewReplacer(`"`, "", "'", "")

// NormalizePermission maps the server's permission enumeration onto the
// canonical client values. Matching is case-insensitive and treats '_' and
// space as equivalent to '-', so READ_WRITE, read_write, "read write" and
// WRITE all normalize to read-write. Values that match nothing are returned
// lower-cased but otherwise unchanged; the editability gate rejects them.
func NormalizePermission(raw string) Permission {
	s := strings.TrimSpace(quoteTrimmer.Replace(raw))
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "_", "-")
	s = strings.ReplaceAll(s, " ", "-")

	switch s {
	case "read-write", "write":
		return PermissionReadWrite
	case "read-only":
		return PermissionReadOnly
	case "owner":
		return PermissionOwner
	default:
		return Permission(s)
	}
}

// Editable reports whether a document with the given ownership flag and
// resolved permission may be modified. The gate fails closed: anything that
// is not ownership or an explicit read-write grant is read-only.
func Editable(isOwner bool, p Permission) bool {
	return isOwner || p == PermissionOwner || p == PermissionReadWrite
}

// Editable is the gate applied to the open document.
func (d *DocumentDetail) Editable(currentUser string) bool {
	return Editable(d.Owner == currentUser, d.Permission)
}
