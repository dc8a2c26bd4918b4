package session

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"notepad/internal/models"
	"notepad/internal/richtext"
	"notepad/internal/storage"
)

type fakeTab struct {
	id    string
	title string
	doc   richtext.Document
}

// fakeSurface mimics a tab control: the first tab added is selected, and
// removing the selected last tab moves the selection to the new last tab.
type fakeSurface struct {
	tabs     []fakeTab
	selected int
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{selected: -1}
}

func (f *fakeSurface) AddTab(id, title string, doc richtext.Document) {
	f.tabs = append(f.tabs, fakeTab{id: id, title: title, doc: doc})
	if f.selected < 0 {
		f.selected = 0
	}
}

func (f *fakeSurface) RemoveTab(index int) {
	f.tabs = append(f.tabs[:index], f.tabs[index+1:]...)
	if f.selected >= len(f.tabs) {
		f.selected = len(f.tabs) - 1
	}
}

func (f *fakeSurface) ClearTabs() {
	f.tabs = nil
	f.selected = -1
}

func (f *fakeSurface) TabCount() int {
	return len(f.tabs)
}

func (f *fakeSurface) TabTitles() []string {
	titles := make([]string, len(f.tabs))
	for i, tab := range f.tabs {
		titles[i] = tab.title
	}
	return titles
}

func (f *fakeSurface) SelectedTab() int {
	return f.selected
}

func (f *fakeSurface) SelectTab(index int) {
	if index >= 0 && index < len(f.tabs) {
		f.selected = index
	}
}

func (f *fakeSurface) TabDocument(index int) (richtext.Document, bool) {
	if index < 0 || index >= len(f.tabs) {
		return richtext.Document{}, false
	}
	return f.tabs[index].doc, true
}

// typeInto replaces the content of a tab the way a user edit would.
func (f *fakeSurface) typeInto(index int, body string) {
	f.tabs[index].doc.Body = body
}

type fakeChooser struct {
	openPath  string
	savePath  string
	cancel    bool
	suggested string
}

func (c *fakeChooser) ChooseOpen(done func(string, bool)) {
	done(c.openPath, !c.cancel)
}

func (c *fakeChooser) ChooseSave(suggested string, done func(string, bool)) {
	c.suggested = suggested
	done(c.savePath, !c.cancel)
}

type message struct {
	title string
	text  string
	err   error
}

type fakeMessenger struct {
	infos  []message
	errors []message
}

func (m *fakeMessenger) ShowInfo(title, text string) {
	m.infos = append(m.infos, message{title: title, text: text})
}

func (m *fakeMessenger) ShowError(title string, err error) {
	m.errors = append(m.errors, message{title: title, err: err})
}

type failingStore struct {
	saved   []models.Note
	saveErr error
	loadErr error
}

func (s *failingStore) EnsureDir() error { return nil }

func (s *failingStore) Load() ([]models.Note, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return nil, storage.ErrNoDocument
}

func (s *failingStore) Save(notes []models.Note) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saved = notes
	return nil
}

var errDiskFull = errors.New("disk full")

type fixture struct {
	session   *Session
	surface   *fakeSurface
	chooser   *fakeChooser
	messenger *fakeMessenger
	store     *storage.JSONStore
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store, err := storage.NewJSONStore(filepath.Join(t.TempDir(), storage.AppDirName, storage.NotesFileName))
	require.NoError(t, err)
	return newFixtureWithStore(t, store)
}

func newFixtureWithStore(t *testing.T, store *storage.JSONStore) *fixture {
	t.Helper()
	f := &fixture{
		surface:   newFakeSurface(),
		chooser:   &fakeChooser{},
		messenger: &fakeMessenger{},
		store:     store,
	}
	f.session = New(f.surface, store,
		WithChooser(f.chooser),
		WithMessenger(f.messenger),
	)
	return f
}

func titlesOf(notes []models.Note) []string {
	out := make([]string, len(notes))
	for i, n := range notes {
		out[i] = n.Title
	}
	return out
}
