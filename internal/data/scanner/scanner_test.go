package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileScannerScanEmptyDirectory(t *testing.T) {
	files, err := NewFileScanner(t.TempDir()).Scan()

	require.NoError(t, err)
	assert.Empty(t, files, "Empty directory should return no files")
}

func TestFileScannerScanNonExistentDirectory(t *testing.T) {
	files, err := NewFileScanner("/path/that/does/not/exist").Scan()

	require.NoError(t, err, "Scanner should handle non-existent directory gracefully")
	assert.Empty(t, files)
}

func TestFileScannerScanProjectFiles(t *testing.T) {
	tempDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(tempDir, "nested"), 0755))

	names := []string{
		"b.yaml",
		"a.json",
		"nested/c.jsonl",
		"nested/d.YML",
		"notes.txt",
		"image.png",
	}
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(tempDir, name), []byte("[]"), 0644))
	}

	files, err := NewFileScanner(tempDir).Scan()
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(tempDir, "a.json"),
		filepath.Join(tempDir, "b.yaml"),
		filepath.Join(tempDir, "nested/c.jsonl"),
		filepath.Join(tempDir, "nested/d.YML"),
	}, files)
}
