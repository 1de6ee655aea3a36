package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arcanaland/richcard/internal/card"
)

func setupXDG(t *testing.T) string {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))
	return dir
}

func run(t *testing.T, args ...string) (string, error) {
	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&out)
	RootCmd.SetArgs(args)
	t.Cleanup(func() { RootCmd.SetArgs(nil) })

	err := Execute()
	return out.String(), err
}

func TestLibraryCommands(t *testing.T) {
	setupXDG(t)

	out, err := run(t, "library", "ls")
	require.NoError(t, err)
	require.Contains(t, out, "does not exist")

	out, err = run(t, "library", "init")
	require.NoError(t, err)
	require.Contains(t, out, "Example card written to:")

	out, err = run(t, "library", "ls")
	require.NoError(t, err)
	require.Contains(t, out, "* welcome (Card Title) [DEFAULT]")

	_, err = run(t, "library", "set-default", "missing")
	require.Error(t, err)
}

func TestJSONCommand(t *testing.T) {
	setupXDG(t)
	_, err := run(t, "library", "init")
	require.NoError(t, err)

	out, err := run(t, "json", "welcome", "--envelope=false", "--indent=false")
	require.NoError(t, err)

	var c card.Card
	require.NoError(t, json.Unmarshal([]byte(out), &c))
	require.Equal(t, "Card Title", *c.Title)
	require.Equal(t, "Google Assistant logo", c.Image.Alt)
	require.Nil(t, c.Button)
	require.Nil(t, c.ImageFill)

	out, err = run(t, "json", "--envelope=true", "--indent=true")
	require.NoError(t, err)
	require.Contains(t, out, `"firstSimple"`)
	require.Contains(t, out, `"card"`)
}

func TestValidateCommand(t *testing.T) {
	dir := setupXDG(t)

	good := filepath.Join(dir, "good.toml")
	require.NoError(t, os.WriteFile(good, []byte("[card]\ntext = \"hi\"\n"), 0644))

	out, err := run(t, "validate", good)
	require.NoError(t, err)
	require.Contains(t, out, "✅")

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[card.image]\nalt = \"x\"\n"), 0644))

	out, err = run(t, "validate", bad)
	require.Error(t, err)
	require.Contains(t, out, "❌")
	require.Contains(t, out, "image.url is required")

	_, err = run(t, "validate", filepath.Join(dir, "missing.toml"))
	require.Error(t, err)
}

func TestShowCommand(t *testing.T) {
	setupXDG(t)
	_, err := run(t, "library", "init")
	require.NoError(t, err)

	out, err := run(t, "show", "--no-color")
	require.NoError(t, err)
	require.Contains(t, out, "Card Title")
	require.Contains(t, out, "Card Content")
	require.Contains(t, out, "[image: Google Assistant logo]")
}
