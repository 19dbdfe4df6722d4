package filex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDir_CreatesAndReturnsAbsolute(t *testing.T) {
	base := t.TempDir()
	dir, err := EnsureDir(filepath.Join(base, "downloads"))
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(dir))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestEnsureDir_Idempotent(t *testing.T) {
	base := t.TempDir()
	first, err := EnsureDir(filepath.Join(base, "d"))
	require.NoError(t, err)
	second, err := EnsureDir(filepath.Join(base, "d"))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Meeting Notes", "Meeting Notes"},
		{"a/b\\c", "a_b_c"},
		{"tabs\tand\nnewlines", "tabsandnewlines"},
		{"   ", "document"},
		{"", "document"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeName(tt.in), "input %q", tt.in)
	}
}

func TestWriteDownload(t *testing.T) {
	dir := t.TempDir()
	path, err := WriteDownload(dir, "Project Plan", "pdf", []byte("%PDF-1.4"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Project Plan.pdf"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4"), data)
}
