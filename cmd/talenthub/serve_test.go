package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("LLM_API_KEY", "")
	servePort = 0
	serveConfigPath = ""

	cfg, err := loadConfig()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "pdftotext", cfg.Pdftotext)
	assert.Equal(t, 144, cfg.OCRDPI)
	assert.EqualValues(t, 10*1024*1024, cfg.MaxUploadBytes)
}

func TestLoadConfig_FlagOverridesFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"port": 9000, "ocr_dpi": 300}`), 0o644))

	t.Setenv("DATABASE_URL", "postgres://env/db")
	t.Setenv("LLM_API_KEY", "sk-or-env-key")
	servePort = 9999
	serveConfigPath = path
	t.Cleanup(func() {
		servePort = 0
		serveConfigPath = ""
	})

	cfg, err := loadConfig()
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.Port, "flag should beat config file")
	assert.Equal(t, 300, cfg.OCRDPI, "file value should beat default")
	assert.Equal(t, "postgres://env/db", cfg.DatabaseURL)
	assert.Equal(t, "sk-or-env-key", cfg.APIKey)
}

func TestLoadConfig_BadFile(t *testing.T) {
	serveConfigPath = filepath.Join(t.TempDir(), "missing.json")
	t.Cleanup(func() { serveConfigPath = "" })

	_, err := loadConfig()
	require.Error(t, err)
}
