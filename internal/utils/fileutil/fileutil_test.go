package fileutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAtomicWriteFile tests creation, overwrite and cleanup of temp files
// TestAtomicWriteFile 测试创建、覆盖以及临时文件清理
func TestAtomicWriteFile(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "nested", "out.prom")

	require.NoError(t, AtomicWriteFile(target, []byte("first\n"), 0644))
	require.NoError(t, AtomicWriteFile(target, []byte("second\n"), 0600))

	content, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "second\n", string(content))

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	entries, err := os.ReadDir(filepath.Dir(target))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}
