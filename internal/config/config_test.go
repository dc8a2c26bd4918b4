package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := NewDefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "utf-8", cfg.Editor.Encoding)
	assert.Empty(t, cfg.Storage.NotesPath)
}

func TestLoadMissingFileKeepsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, NewDefaultConfig(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, NewDefaultConfig(), cfg)
}

func TestLoadOverridesAndExpandsEnv(t *testing.T) {
	t.Setenv("NOTEPAD_TEST_DIR", "/tmp/notes")
	path := writeConfig(t, `
app:
  log_level: debug
  locale: ru
storage:
  notes_path: ${NOTEPAD_TEST_DIR}/notes.json
editor:
  encoding: utf-32
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, LocaleRussian, cfg.App.Locale)
	assert.Equal(t, "/tmp/notes/notes.json", cfg.Storage.NotesPath)
	assert.Equal(t, "utf-32", cfg.Editor.Encoding)
	assert.Equal(t, float32(800), cfg.Editor.WindowWidth, "unset keys keep defaults")
	assert.True(t, cfg.Editor.Wrap)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"level":    "app:\n  log_level: loud\n",
		"locale":   "app:\n  locale: fr\n",
		"encoding": "editor:\n  encoding: ebcdic\n",
		"width":    "editor:\n  window_width: 10\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "config validation failed")
		})
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "app: [unclosed\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}
