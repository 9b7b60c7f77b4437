package mcconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/craftget/craftget/pkg/mirror"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	cfg, err := Default()
	assert.NoError(t, err)
	cfg.GameVersion = "1.20.4"
	cfg.GameDir = "/srv/minecraft"
	cfg.Mirror = mirror.BMCLAPI()

	path := filepath.Join(t.TempDir(), "craftget.toml")
	assert.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestDefaults(t *testing.T) {
	cfg, err := Default()
	assert.NoError(t, err)
	assert.Equal(t, "offline", cfg.UserType)
	assert.Equal(t, mirror.Official(), cfg.Mirror)
	assert.NotEmpty(t, cfg.GameDir)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(
		filepath.Join(t.TempDir(), "nope.toml"),
	)
	assert.True(t, os.IsNotExist(err))
}

func TestLoadRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "craftget.toml")
	assert.NoError(t,
		os.WriteFile(path, []byte("=== not toml"), 0644),
	)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveIsReadableTOML(t *testing.T) {
	cfg, err := Default()
	assert.NoError(t, err)

	path := filepath.Join(t.TempDir(), "craftget.toml")
	assert.NoError(t, cfg.Save(path))

	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Contains(t, string(data), "game_version")
	assert.Contains(t, string(data), "[mirror]")
	assert.Contains(t, string(data), "version_manifest")
}
