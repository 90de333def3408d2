package server

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/minesweeper/internal/game"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "server.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", cfg.Addr())
	assert.Len(t, cfg.Difficulties, 3)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfigParsesHCL(t *testing.T) {
	path := writeConfig(t, `
server {
  address   = "0.0.0.0"
  port      = 9090
  log_level = "debug"
  max_games = 5
}

difficulty "tiny" {
  rows  = 4
  cols  = 4
  mines = 2
}

difficulty "huge" {
  rows  = 30
  cols  = 30
  mines = 150
}
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "0.0.0.0:9090", cfg.Addr())
	assert.Equal(t, 5, cfg.Server.MaxGames)

	tiny, ok := cfg.DifficultyByName("tiny")
	require.True(t, ok)
	assert.Equal(t, game.Difficulty{Rows: 4, Cols: 4, Mines: 2}, tiny.Difficulty())

	_, ok = cfg.DifficultyByName("beginner")
	assert.False(t, ok, "explicit difficulties replace the default catalog")
}

func TestLoadConfigRejectsMalformedHCL(t *testing.T) {
	path := writeConfig(t, `server { address = `)
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidateRejectsBadDifficulty(t *testing.T) {
	path := writeConfig(t, `
difficulty "saturated" {
  rows  = 2
  cols  = 2
  mines = 4
}
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsDuplicateDifficulty(t *testing.T) {
	path := writeConfig(t, `
difficulty "dup" {
  rows  = 4
  cols  = 4
  mines = 1
}

difficulty "dup" {
  rows  = 5
  cols  = 5
  mines = 1
}
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Error(t, cfg.Validate())
}
