package session

import (
	"notepad/internal/logger"
	"notepad/internal/models"
	"notepad/internal/richtext"
)

// Surface is the ordered set of editor tabs the note collection is aligned
// with. Indexes are positions in tab order.
type Surface interface {
	AddTab(id, title string, doc richtext.Document)
	RemoveTab(index int)
	ClearTabs()
	TabCount() int
	TabTitles() []string
	// SelectedTab returns -1 when no tab is selected.
	SelectedTab() int
	SelectTab(index int)
	// TabDocument returns the live content of the tab at index.
	TabDocument(index int) (richtext.Document, bool)
}

// FileChooser asks the user for a path. done is called with ok=false when
// the user cancels.
type FileChooser interface {
	ChooseOpen(done func(path string, ok bool))
	ChooseSave(suggested string, done func(path string, ok bool))
}

// Messenger shows fire-and-forget messages to the user.
type Messenger interface {
	ShowInfo(title, message string)
	ShowError(title string, err error)
}

// NoteStore persists the whole collection.
type NoteStore interface {
	EnsureDir() error
	Load() ([]models.Note, error)
	Save(notes []models.Note) error
}

type cancelChooser struct{}

func (cancelChooser) ChooseOpen(done func(string, bool))          { done("", false) }
func (cancelChooser) ChooseSave(_ string, done func(string, bool)) { done("", false) }

type logMessenger struct {
	log logger.Logger
}

func (m logMessenger) ShowInfo(title, message string) {
	m.log.Info(component, message, map[string]interface{}{"title": title})
}

func (m logMessenger) ShowError(title string, err error) {
	m.log.Error(component, err, map[string]interface{}{"title": title})
}
