package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "flatsql.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "text", cfg.Format)
	assert.Equal(t, ">: ", cfg.Prompt)
	assert.Equal(t, 500, cfg.HistoryLimit)
	assert.False(t, cfg.Source.IsDatabase())
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
format: table
prompt: "sql> "
history_file: /tmp/flatsql_history
verbose: true
source:
  engine: postgres
  dsn: postgres://localhost/cities
  table: city
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, &Config{
		Format:       "table",
		Prompt:       "sql> ",
		HistoryFile:  "/tmp/flatsql_history",
		HistoryLimit: 500,
		Verbose:      true,
		Source: Source{
			Engine: "postgres",
			DSN:    "postgres://localhost/cities",
			Table:  "city",
		},
	}, cfg)
}

func TestLoad_EmptyFileKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		invalid bool
	}{
		{"unknown key", "colour: red\n", false},
		{"bad yaml", "format: [text\n", false},
		{"unknown format", "format: xml\n", true},
		{"negative history", "history_limit: -1\n", true},
		{"unknown engine", "source:\n  engine: oracle\n  dsn: x\n  table: t\n", true},
		{"missing dsn", "source:\n  engine: mysql\n  table: t\n", true},
		{"missing table", "source:\n  engine: sqlite\n  dsn: cities.db\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Equal(t, tt.invalid, errors.Is(err, ErrInvalidConfig))
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
