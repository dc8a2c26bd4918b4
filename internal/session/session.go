// Package session owns the note collection of one editor window and keeps it
// index-aligned with the window's tabs.
package session

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"

	"notepad/internal/logger"
	"notepad/internal/models"
	"notepad/internal/richtext"
	"notepad/internal/storage"
	"notepad/internal/textenc"
)

const component = "Session"

// Session is the note collection of one window. All methods must be called
// from the UI goroutine.
type Session struct {
	notes   []*models.Note
	surface Surface
	store   NoteStore
	chooser FileChooser
	msg     Messenger
	labels  Labels
	log     logger.Logger
	state   State
}

// Option configures a Session.
type Option func(*Session)

func WithChooser(c FileChooser) Option {
	return func(s *Session) {
		s.chooser = c
	}
}

func WithMessenger(m Messenger) Option {
	return func(s *Session) {
		s.msg = m
	}
}

func WithLabels(l Labels) Option {
	return func(s *Session) {
		s.labels = l
	}
}

func WithLogger(l logger.Logger) Option {
	return func(s *Session) {
		s.log = l
	}
}

// New creates an empty, uninitialized session over surface and store.
func New(surface Surface, store NoteStore, opts ...Option) *Session {
	s := &Session{
		surface: surface,
		store:   store,
		chooser: cancelChooser{},
		labels:  DefaultLabels(),
		log:     logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.msg == nil {
		s.msg = logMessenger{log: s.log}
	}
	return s
}

// State returns the persistence lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Len returns the number of notes.
func (s *Session) Len() int {
	return len(s.notes)
}

// Notes returns a copy of the collection in tab order.
func (s *Session) Notes() []models.Note {
	out := make([]models.Note, len(s.notes))
	for i, n := range s.notes {
		out[i] = *n
	}
	return out
}

// Note returns a copy of the note at index.
func (s *Session) Note(index int) (models.Note, bool) {
	if index < 0 || index >= len(s.notes) {
		return models.Note{}, false
	}
	return *s.notes[index], true
}

// Aligned reports whether every tab has exactly one note.
func (s *Session) Aligned() bool {
	return len(s.notes) == s.surface.TabCount()
}

// Create appends a note holding initialText in a new, selected tab. Its
// title continues the "<prefix> <n>" numbering of the open tabs.
func (s *Session) Create(initialText string) *models.Note {
	n := models.NewNote()
	n.Title = fmt.Sprintf("%s %d", s.labels.NewNotePrefix, nextNumber(s.surface.TabTitles(), s.labels.NewNotePrefix))
	n.Text = initialText

	doc := richtext.Plain(initialText)
	n.RichText = s.encode(doc)

	s.notes = append(s.notes, n)
	s.surface.AddTab(n.ID, n.Title, doc)
	s.surface.SelectTab(s.surface.TabCount() - 1)

	s.log.Debug(component, "note created", map[string]interface{}{
		"title": n.Title,
		"count": len(s.notes),
	})
	return n
}

// Open asks the chooser for a file and opens it in a new tab.
func (s *Session) Open() {
	s.chooser.ChooseOpen(func(path string, ok bool) {
		if !ok {
			return
		}
		_, _ = s.OpenFile(path)
	})
}

// OpenFile reads path and appends it as a note named after the file. On
// failure the error is reported and the collection is left unchanged.
func (s *Session) OpenFile(path string) (*models.Note, error) {
	text, err := storage.ReadText(path)
	if err != nil {
		s.reportError(s.labels.OpenFailed, err)
		return nil, err
	}

	n := models.NewNote()
	n.Title = filepath.Base(path)
	n.Text = text
	n.FilePath = path

	s.notes = append(s.notes, n)
	s.surface.AddTab(n.ID, n.Title, richtext.Plain(text))
	if s.surface.SelectedTab() < 0 {
		s.surface.SelectTab(s.surface.TabCount() - 1)
	}

	s.log.Info(component, "file opened", map[string]interface{}{
		"path":  path,
		"bytes": len(text),
	})
	return n, nil
}

// TextChanged copies the live content of the tab at index into its note and
// marks it modified.
func (s *Session) TextChanged(index int) Result {
	if index < 0 || index >= len(s.notes) || index >= s.surface.TabCount() {
		return Stale
	}
	doc, ok := s.surface.TabDocument(index)
	if !ok {
		return Stale
	}
	s.notes[index].Edited(doc.Body, s.encode(doc))
	return Applied
}

// TextChangedByID is TextChanged addressed by note ID.
func (s *Session) TextChangedByID(id string) Result {
	return s.TextChanged(s.indexOf(id))
}

// CloseTab removes the tab at index and its note. The selection moves to
// the tab now at index, or the last tab.
func (s *Session) CloseTab(index int) Result {
	if index < 0 || index >= s.surface.TabCount() {
		return Stale
	}

	s.surface.RemoveTab(index)
	if index < len(s.notes) {
		s.notes = slices.Delete(s.notes, index, index+1)
	}

	if remaining := s.surface.TabCount(); remaining > 0 {
		s.surface.SelectTab(min(index, remaining-1))
	}

	if !s.Aligned() {
		s.log.Warning(component, "notes and tabs out of step", map[string]interface{}{
			"notes": len(s.notes),
			"tabs":  s.surface.TabCount(),
		})
	}
	return Applied
}

// CloseActive closes the selected tab.
func (s *Session) CloseActive() Result {
	return s.CloseTab(s.surface.SelectedTab())
}

// SaveActive writes the selected tab's text to a file chosen by the user.
// The chooser is pre-filled with the note's file path, or a name derived
// from its first heading or title.
func (s *Session) SaveActive(enc textenc.Encoding) Result {
	index := s.surface.SelectedTab()
	if index < 0 || index >= s.surface.TabCount() {
		return Stale
	}
	doc, ok := s.surface.TabDocument(index)
	if !ok {
		return Stale
	}

	var id, suggested string
	if index < len(s.notes) {
		n := s.notes[index]
		id = n.ID
		suggested = n.FilePath
		if suggested == "" {
			suggested = saveName(richtext.Headline(doc.Body), n.Title)
		}
	}

	text := doc.Body
	s.chooser.ChooseSave(suggested, func(path string, ok bool) {
		if !ok {
			return
		}
		_ = s.writeNote(id, path, text, enc)
	})
	return Applied
}

// SaveNoteAs writes the current text of the note with id to path.
func (s *Session) SaveNoteAs(id, path string, enc textenc.Encoding) error {
	index := s.indexOf(id)
	if index < 0 {
		return fmt.Errorf("save note %s: %w", id, ErrStale)
	}
	doc, ok := s.surface.TabDocument(index)
	if !ok {
		return fmt.Errorf("save note %s: %w", id, ErrStale)
	}
	return s.writeNote(id, path, doc.Body, enc)
}

func (s *Session) writeNote(id, path, text string, enc textenc.Encoding) error {
	if err := storage.WriteText(path, text, enc); err != nil {
		s.reportError(s.labels.SaveFailed, err)
		return err
	}

	if index := s.indexOf(id); index >= 0 {
		s.notes[index].Saved(path)
	} else {
		s.log.Warning(component, "saved note is no longer open", map[string]interface{}{
			"path": path,
		})
	}

	s.log.Info(component, "file saved", map[string]interface{}{
		"path":     path,
		"encoding": enc.Name(),
	})
	s.msg.ShowInfo(s.labels.InfoTitle, s.labels.FileSaved)
	return nil
}

// Persist refreshes every note's rich text from its tab and writes the
// collection to the store. The in-memory collection is not affected by a
// failed write.
func (s *Session) Persist() error {
	count := min(s.surface.TabCount(), len(s.notes))
	out := make([]models.Note, 0, count)
	for i := 0; i < count; i++ {
		if doc, ok := s.surface.TabDocument(i); ok {
			s.notes[i].RichText = s.encode(doc)
		}
		out = append(out, *s.notes[i])
	}

	if err := s.store.Save(out); err != nil {
		s.reportError(s.labels.PersistFailed, err)
		return err
	}

	s.state = StateSaved
	s.log.Info(component, "notes saved", map[string]interface{}{
		"count": len(out),
	})
	return nil
}

// Load replaces the collection and all tabs with the stored notes. A missing
// document is not an error and changes nothing. On any other failure the
// error is reported and the current collection is kept.
func (s *Session) Load() error {
	loaded, err := s.store.Load()
	if errors.Is(err, storage.ErrNoDocument) {
		s.log.Debug(component, "no stored notes", nil)
		return nil
	}
	if err != nil {
		s.reportError(s.labels.LoadFailed, err)
		return err
	}
	if loaded == nil {
		return nil
	}

	s.surface.ClearTabs()
	s.notes = make([]*models.Note, 0, len(loaded))
	for i := range loaded {
		n := loaded[i]
		n.ID = models.NewID()
		n.IsModified = false

		s.notes = append(s.notes, &n)
		s.surface.AddTab(n.ID, n.Title, s.decode(&n))
	}
	if len(s.notes) > 0 {
		s.surface.SelectTab(0)
	}

	s.state = StateLoaded
	s.log.Info(component, "notes loaded", map[string]interface{}{
		"count": len(s.notes),
	})
	return nil
}

// Start prepares the store directory, loads stored notes and seeds a note
// holding DefaultText when nothing was loaded. The returned error is the
// load failure, already reported to the user.
func (s *Session) Start() error {
	if err := s.store.EnsureDir(); err != nil {
		s.log.Warning(component, "cannot create notes directory", map[string]interface{}{
			"error": err.Error(),
		})
	}

	err := s.Load()
	if len(s.notes) == 0 {
		s.Create(DefaultText)
		s.state = StateLoaded
	}
	return err
}

// Shutdown persists the collection.
func (s *Session) Shutdown() error {
	return s.Persist()
}

func (s *Session) indexOf(id string) int {
	if id == "" {
		return -1
	}
	return slices.IndexFunc(s.notes, func(n *models.Note) bool {
		return n.ID == id
	})
}

func (s *Session) encode(doc richtext.Document) string {
	out, err := richtext.Encode(doc)
	if err != nil {
		s.log.Warning(component, "rich text encode failed, keeping plain body", map[string]interface{}{
			"error": err.Error(),
		})
		return doc.Body
	}
	return out
}

// decode rebuilds a tab document from a stored note, falling back to the
// plain text when the rich payload is empty or unreadable.
func (s *Session) decode(n *models.Note) richtext.Document {
	if n.RichText == "" {
		return richtext.Plain(n.Text)
	}
	doc, err := richtext.Decode(n.RichText)
	if err != nil {
		s.log.Warning(component, "unreadable rich text, using plain text", map[string]interface{}{
			"title": n.Title,
			"error": err.Error(),
		})
		return richtext.Plain(n.Text)
	}
	return doc
}

func (s *Session) reportError(message string, err error) {
	s.log.Error(component, err, map[string]interface{}{
		"message": message,
	})
	s.msg.ShowError(s.labels.ErrorTitle, fmt.Errorf("%s: %w", message, err))
}
