package api

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"deskline/internal/domain/upload"
)

// writeTempFile stages a throwaway file of the given size as an upload.
func writeTempFile(t *testing.T, name string, size int) []upload.Attachment {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, make([]byte, size), 0o600))
	a, err := upload.NewAttachment(path)
	require.NoError(t, err)
	return []upload.Attachment{a}
}
