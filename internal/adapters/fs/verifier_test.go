package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/plugindev/internal/adapters/fs"
)

func TestVerifier_VerifyOutputs(t *testing.T) {
	tmpDir := t.TempDir()
	verifier := fs.NewVerifier()

	// Case 1: All outputs exist
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "out1.txt"), []byte("content"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "out2.txt"), []byte("content"), 0o600))

	exists, err := verifier.VerifyOutputs(tmpDir, []string{"out1.txt", "out2.txt"})
	require.NoError(t, err)
	assert.True(t, exists)

	// Case 2: One output missing
	exists, err = verifier.VerifyOutputs(tmpDir, []string{"out1.txt", "missing.txt"})
	require.NoError(t, err)
	assert.False(t, exists)

	// Case 3: Absolute outputs ignore root
	exists, err = verifier.VerifyOutputs("/nonexistent", []string{filepath.Join(tmpDir, "out1.txt")})
	require.NoError(t, err)
	assert.True(t, exists)
}
