package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notepad/internal/models"
)

func tempStore(t *testing.T) *JSONStore {
	t.Helper()
	s, err := NewJSONStore(filepath.Join(t.TempDir(), AppDirName, NotesFileName))
	require.NoError(t, err)
	return s
}

func TestDefaultPath(t *testing.T) {
	p, err := DefaultPath()
	if err != nil {
		t.Skip("no user config dir on this system")
	}
	assert.Equal(t, NotesFileName, filepath.Base(p))
	assert.Equal(t, AppDirName, filepath.Base(filepath.Dir(p)))
}

func TestLoadMissingDocument(t *testing.T) {
	s := tempStore(t)

	notes, err := s.Load()
	assert.Nil(t, notes)
	assert.True(t, errors.Is(err, ErrNoDocument))
}

func TestSaveCreatesDirectoryAndRoundTrips(t *testing.T) {
	s := tempStore(t)
	in := []models.Note{
		{Title: "New 1", Text: "one", RichText: "one"},
		{Title: "todo.txt", Text: "two", RichText: "---\nbold: true\n---\ntwo", FilePath: "/tmp/todo.txt", IsModified: true},
	}

	require.NoError(t, s.Save(in))

	out, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestSaveWritesIndentedArray(t *testing.T) {
	s := tempStore(t)
	require.NoError(t, s.Save([]models.Note{{Title: "New 1"}}))

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)

	content := string(data)
	assert.True(t, strings.HasPrefix(content, "[\n  {\n"))
	for _, field := range []string{`"Text"`, `"RtfText"`, `"Title"`, `"FilePath"`, `"IsModified"`} {
		assert.Contains(t, content, field)
	}
}

func TestSaveNilWritesEmptyArray(t *testing.T) {
	s := tempStore(t)
	require.NoError(t, s.Save(nil))

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestSaveOverwrites(t *testing.T) {
	s := tempStore(t)
	require.NoError(t, s.Save([]models.Note{{Title: "a"}, {Title: "b"}}))
	require.NoError(t, s.Save([]models.Note{{Title: "c"}}))

	out, err := s.Load()
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "c", out[0].Title)

	entries, err := os.ReadDir(filepath.Dir(s.Path()))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestLoadInvalidJSON(t *testing.T) {
	s := tempStore(t)
	require.NoError(t, s.EnsureDir())
	require.NoError(t, os.WriteFile(s.Path(), []byte("{not json"), 0o644))

	notes, err := s.Load()
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNoDocument))
	assert.Nil(t, notes)
}

func TestLoadNull(t *testing.T) {
	s := tempStore(t)
	require.NoError(t, s.EnsureDir())
	require.NoError(t, os.WriteFile(s.Path(), []byte("null"), 0o644))

	notes, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestSaveFailsWhenParentIsAFile(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	s, err := NewJSONStore(filepath.Join(blocker, NotesFileName))
	require.NoError(t, err)

	assert.Error(t, s.Save([]models.Note{{Title: "a"}}))
}
