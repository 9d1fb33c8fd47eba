package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gemspell/gemspell/internal/adapters/inbound/cli"
)

func TestInitCmd_CreatesConfigFile(t *testing.T) {
	tmpDir := t.TempDir()

	root := cli.NewRootCmdForTest()
	root.SetArgs([]string{"init", tmpDir})
	require.NoError(t, root.Execute())

	data, err := os.ReadFile(filepath.Join(tmpDir, ".gemspell.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "max_distance: 2")
	assert.Contains(t, string(data), "max_suggestions: 5")
	assert.Contains(t, string(data), "# extra_gems:")
}

func TestInitCmd_GeneratedConfigLoads(t *testing.T) {
	tmpDir := t.TempDir()

	root := cli.NewRootCmdForTest()
	root.SetArgs([]string{"init", tmpDir})
	require.NoError(t, root.Execute())

	// The generated file must round-trip through the loader untouched.
	writeFile(t, tmpDir, "Gemfile", cleanGemfile)
	lint := cli.NewRootCmdForTest()
	lint.SetOut(new(bytes.Buffer))
	lint.SetArgs([]string{"lint", tmpDir})
	require.NoError(t, lint.Execute())
}

func TestInitCmd_FailsIfExists(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".gemspell.yaml"), []byte("existing"), 0644))

	root := cli.NewRootCmdForTest()
	root.SetArgs([]string{"init", tmpDir})
	err := root.Execute()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestInitCmd_ForceOverwrites(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ".gemspell.yaml"), []byte("old"), 0644))

	root := cli.NewRootCmdForTest()
	root.SetArgs([]string{"init", tmpDir, "--force"})
	require.NoError(t, root.Execute())

	data, err := os.ReadFile(filepath.Join(tmpDir, ".gemspell.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "max_distance:")
	assert.NotEqual(t, "old", string(data))
}
