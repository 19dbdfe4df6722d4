package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePermission(t *testing.T) {
	tests := []struct {
		raw  string
		want Permission
	}{
		{"read-write", PermissionReadWrite},
		{"READ_WRITE", PermissionReadWrite},
		{"read_write", PermissionReadWrite},
		{"read write", PermissionReadWrite},
		{"WRITE", PermissionReadWrite},
		{"write", PermissionReadWrite},
		{`"READ_WRITE"`, PermissionReadWrite},
		{"  READ_WRITE \n", PermissionReadWrite},
		{"READ_ONLY", PermissionReadOnly},
		{"read-only", PermissionReadOnly},
		{`"read-only"`, PermissionReadOnly},
		{"OWNER", PermissionOwner},
		{"owner", PermissionOwner},
		// Unrecognized values pass through lower-cased, untranslated.
		{"ADMIN", Permission("admin")},
		{"garbled???", Permission("garbled???")},
		{"", Permission("")},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePermission(tt.raw))
		})
	}
}

func TestEditable_FailsClosed(t *testing.T) {
	editable := []string{"READ_WRITE", "WRITE", "read_write", "write", "read-write"}
	for _, raw := range editable {
		require.True(t, Editable(false, NormalizePermission(raw)), "want editable for %q", raw)
	}

	notEditable := []string{"READ_ONLY", "read-only", "ADMIN", "garbage", "", "rw"}
	for _, raw := range notEditable {
		require.False(t, Editable(false, NormalizePermission(raw)), "want read-only for %q", raw)
	}
}

func TestEditable_OwnerOverridesPermission(t *testing.T) {
	// Whatever the permission endpoint said, the owner can always edit.
	require.True(t, Editable(true, PermissionReadOnly))
	require.True(t, Editable(true, Permission("garbage")))

	d := &DocumentDetail{Owner: "alice", Permission: PermissionReadOnly}
	assert.True(t, d.Editable("alice"))
	assert.False(t, d.Editable("bob"))
}

func TestDocumentSummaryPreview(t *testing.T) {
	assert.Equal(t, "Empty document", DocumentSummary{}.Preview())
	assert.Equal(t, "short", DocumentSummary{Content: "short"}.Preview())

	long := DocumentSummary{Content: string(make([]byte, 100))}
	assert.Len(t, long.Preview(), 53)
}

func TestSessionValid(t *testing.T) {
	assert.False(t, Session{}.Valid())
	assert.False(t, Session{Token: "t"}.Valid())
	assert.False(t, Session{User: User{Username: "alice"}}.Valid())
	assert.True(t, Session{Token: "t", User: User{Username: "alice"}}.Valid())
}
