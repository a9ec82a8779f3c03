package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadMissingOptionalFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"), false)
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)
	assert.True(t, cfg.Production())
}

func TestLoadMissingRequiredFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"), true)
	assert.ErrorContains(t, err, "unable to read config")
}

func TestLoadMalformedFile(t *testing.T) {
	_, err := Load(writeConfig(t, "{"), false)
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `{
		"mode": "development",
		"addr": "localhost:9000",
		"seed": 42,
		"log": {"file": "/tmp/textsweeper.log", "level": "warn"}
	}`)

	cfg, err := Load(path, true)
	require.NoError(t, err)
	assert.True(t, cfg.Development())
	assert.Equal(t, "localhost:9000", cfg.Addr)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, uint64(42), *cfg.Seed)
	assert.Equal(t, "/tmp/textsweeper.log", cfg.Log.File)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, 3, cfg.Log.MaxBackups, "unset fields keep their defaults")
	assert.Equal(t, "42", cfg.Fields()["seed"])
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("TEXTSWEEPER_MODE", "development")
	t.Setenv("TEXTSWEEPER_ADDR", ":9999")
	t.Setenv("TEXTSWEEPER_LOG_FILE", "game.log")
	t.Setenv("TEXTSWEEPER_LOG_LEVEL", "debug")
	t.Setenv("TEXTSWEEPER_SEED", "7")

	cfg, err := Load(writeConfig(t, `{"addr": ":1"}`), true)
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Mode)
	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, "game.log", cfg.Log.File)
	assert.Equal(t, "debug", cfg.Log.Level)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, uint64(7), *cfg.Seed)
}

func TestLoadBadSeed(t *testing.T) {
	t.Setenv("TEXTSWEEPER_SEED", "-1")
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"), false)
	assert.ErrorContains(t, err, "TEXTSWEEPER_SEED")
}

func TestDevelopmentEnv(t *testing.T) {
	t.Setenv("DEVELOPMENT", "1")
	assert.True(t, Development())
	t.Setenv("DEVELOPMENT", "0")
	assert.False(t, Development())
}

func TestFieldsRandomSeed(t *testing.T) {
	assert.Equal(t, "random", Default().Fields()["seed"])
}
