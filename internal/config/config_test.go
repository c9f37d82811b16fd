package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultMaxExpansion, cfg.MaxExpansion())
	assert.True(t, cfg.Color())
}

func TestLocalOverridesGlobal(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	chdir(t, dir)

	require.NoError(t, os.MkdirAll(filepath.Dir(LocalPath()), 0755))
	require.NoError(t, os.WriteFile(LocalPath(), []byte("limits:\n  max_expansion: 50\n"), 0644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ScopeLocal, cfg.Scope())
	assert.Equal(t, 50, cfg.MaxExpansion())
}

func TestValidateBounds(t *testing.T) {
	zero := 0
	cfg := &Config{Limits: Limits{MaxExpansion: &zero}}
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidValue)

	huge := MaxMaxExpansion + 1
	cfg = &Config{Limits: Limits{MaxExpansion: &huge}}
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidValue)
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	n := 123
	cfg := &Config{Limits: Limits{MaxExpansion: &n}}
	require.NoError(t, cfg.SaveScope(ScopeGlobal))

	loaded, err := LoadScope(ScopeGlobal)
	require.NoError(t, err)
	assert.Equal(t, 123, loaded.MaxExpansion())
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(cwd) })
}
