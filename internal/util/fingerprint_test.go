package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateFileFingerprint(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"title":"a"}]`), 0644))

	first, err := CalculateFileFingerprint(path)
	require.NoError(t, err)
	assert.Equal(t, int64(15), first.Size)
	assert.Len(t, first.CRC, 8)
	assert.True(t, first.SameContent(FingerprintBytes([]byte(`[{"title":"a"}]`))))

	require.NoError(t, os.WriteFile(path, []byte(`[{"title":"b"}]`), 0644))
	second, err := CalculateFileFingerprint(path)
	require.NoError(t, err)
	assert.False(t, first.SameContent(second))
}

func TestCalculateFileFingerprintMissing(t *testing.T) {
	_, err := CalculateFileFingerprint(filepath.Join(t.TempDir(), "nope.json"))
	assert.True(t, os.IsNotExist(err))
}
