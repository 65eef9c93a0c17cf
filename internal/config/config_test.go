package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/uikit/internal/errors"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, CurrentConfigVersion, cfg.Version)
	assert.Equal(t, "light", cfg.Theme)
	assert.Equal(t, "auto", cfg.Color)
	assert.Equal(t, "*", cfg.InputMask.Placeholder)
	assert.False(t, cfg.InputMask.AllowClear)
	assert.Equal(t, "999-999-9999", cfg.Masks["phone"])
	assert.NoError(t, Validate(cfg))
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
version: 1
theme: dark
color: never
input_mask:
  placeholder: "_"
  allow_clear: true
masks:
  phone: "(999) 999-9999"
  Extension: "x9999"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "dark", cfg.Theme)
	assert.Equal(t, "never", cfg.Color)
	assert.Equal(t, '_', cfg.PlaceholderRune())
	assert.True(t, cfg.InputMask.AllowClear)
	assert.Equal(t, "(999) 999-9999", cfg.Masks["phone"], "file overrides built-in preset")
	assert.Equal(t, "x9999", cfg.Masks["extension"], "preset names are lowercased")
	assert.Equal(t, "99999", cfg.Masks["zip"], "built-in presets remain")
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "theme: dark\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "dark", cfg.Theme)
	assert.Equal(t, "auto", cfg.Color)
	assert.Equal(t, "*", cfg.InputMask.Placeholder)
	assert.Len(t, cfg.Masks, len(DefaultPresets()))
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("UIKIT_THEME", "dark")
	t.Setenv("UIKIT_INPUT_MASK_PLACEHOLDER", "#")
	path := writeConfig(t, t.TempDir(), "theme: light\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "dark", cfg.Theme)
	assert.Equal(t, '#', cfg.PlaceholderRune())
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "theme: [unterminated\n")
	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestFind_Explicit(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "theme: dark\n")

	found, err := Find(path)
	require.NoError(t, err)
	assert.Equal(t, path, found)

	_, err = Find(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestFind_CurrentAndParentDirectories(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, ".git"), 0755))
	path := writeConfig(t, root, "theme: dark\n")
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))

	t.Chdir(nested)
	found, err := Find("")
	require.NoError(t, err)
	assert.Equal(t, path, found)

	t.Chdir(root)
	found, err = Find("")
	require.NoError(t, err)
	assert.Equal(t, path, found)
}

func TestFind_StopsAtGitRoot(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	outer := t.TempDir()
	writeConfig(t, outer, "theme: dark\n")
	repo := filepath.Join(outer, "repo")
	require.NoError(t, os.MkdirAll(filepath.Join(repo, ".git"), 0755))
	sub := filepath.Join(repo, "sub")
	require.NoError(t, os.Mkdir(sub, 0755))

	t.Chdir(sub)
	found, err := Find("")
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestFind_Global(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	globalDir := filepath.Join(home, GlobalConfigDir)
	require.NoError(t, os.MkdirAll(globalDir, 0755))
	global := filepath.Join(globalDir, GlobalConfigFile)
	require.NoError(t, os.WriteFile(global, []byte("theme: dark\n"), 0644))

	work := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(work, ".git"), 0755))
	t.Chdir(work)

	found, err := Find("")
	require.NoError(t, err)
	assert.Equal(t, global, found)
}

func TestLoadOrDefault_NoFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	work := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(work, ".git"), 0755))
	t.Chdir(work)

	cfg, path, err := LoadOrDefault("")
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestExpandTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	assert.Equal(t, home, ExpandTilde("~"))
	assert.Equal(t, filepath.Join(home, "cfg.yaml"), ExpandTilde("~/cfg.yaml"))
	assert.Equal(t, "/abs/path", ExpandTilde("/abs/path"))
	assert.Equal(t, "~other/x", ExpandTilde("~other/x"))
	assert.Equal(t, "", ExpandTilde(""))
}

func TestResolveMask(t *testing.T) {
	cfg := DefaultConfig()

	pattern, preset := cfg.ResolveMask("Phone")
	assert.True(t, preset)
	assert.Equal(t, "999-999-9999", pattern)

	pattern, preset = cfg.ResolveMask("99/99")
	assert.False(t, preset)
	assert.Equal(t, "99/99", pattern)
}

func TestPresetNamesSorted(t *testing.T) {
	cfg := &Config{Masks: map[string]string{"zip": "99999", "date": "99/99", "card": "9999"}}
	assert.Equal(t, []string{"card", "date", "zip"}, cfg.PresetNames())
}

func TestPlaceholderRune_Fallback(t *testing.T) {
	cfg := &Config{}
	assert.Equal(t, '*', cfg.PlaceholderRune())
}
