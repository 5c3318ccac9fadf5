package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/inovacc/tablr/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.ini"))
	require.NoError(t, err)

	assert.Equal(t, model.DefaultConfig(), cfg)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.ini")

	want := model.Config{Theme: model.ThemeLight, PageSize: 25, StorePath: "/tmp/x.bolt"}
	require.NoError(t, Save(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadNormalizesNonsense(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.ini")

	require.NoError(t, os.WriteFile(path, []byte("theme = neon\npage_size = -3\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, model.ThemeDark, cfg.Theme)
	assert.Equal(t, model.DefaultPageSize, cfg.PageSize)
}
