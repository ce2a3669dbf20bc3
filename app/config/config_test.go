package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("SPREADSHEET_ID", "sheet-1")
	t.Setenv("GOOGLE_API_KEY", "key-1")
	t.Setenv("HTTP_TIMEOUT_SECONDS", "30")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "sheet-1", cfg.SpreadsheetID)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.NotEmpty(t, cfg.JWTSecret)
}

func TestLoadMissingSpreadsheet(t *testing.T) {
	t.Setenv("SPREADSHEET_ID", "")
	t.Setenv("GOOGLE_API_KEY", "key-1")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadMissingAPIKey(t *testing.T) {
	t.Setenv("SPREADSHEET_ID", "sheet-1")
	t.Setenv("GOOGLE_API_KEY", "")

	_, err := Load()
	assert.Error(t, err)
}
