package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReport(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "draft.txt")

	require.NoError(t, WriteReport(path, "Slices", "19 0 20"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Slices\n19 0 20\n", string(data))

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "draft.txt", entries[0].Name())
}

func TestWriteReportOverwrite(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "draft.txt")
	require.NoError(t, WriteReport(path, "first"))
	require.NoError(t, WriteReport(path, "second"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second\n", string(data))
}

func TestWriteReportMissingDir(t *testing.T) {
	t.Parallel()

	err := WriteReport(filepath.Join(t.TempDir(), "absent", "draft.txt"), "x")
	assert.Error(t, err)
}
