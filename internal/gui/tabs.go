package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"notepad/internal/gui/widgets"
	"notepad/internal/richtext"
)

// TabSurface is the session surface backed by fyne DocTabs. Each tab holds a
// NoteEditor for one note.
type TabSurface struct {
	tabs    *container.DocTabs
	wrap    bool
	preview bool

	// OnEdit receives the note ID of an edited tab.
	OnEdit func(id string)
	// OnCloseRequest receives the index of a tab whose close button was
	// pressed. The tab stays open until RemoveTab is called.
	OnCloseRequest func(index int)
	// OnSelected fires when the selected tab changes, with -1 when none.
	OnSelected func(index int)
}

func NewTabSurface() *TabSurface {
	s := &TabSurface{
		tabs: container.NewDocTabs(),
		wrap: true,
	}
	s.tabs.CloseIntercept = func(item *container.TabItem) {
		if s.OnCloseRequest != nil {
			s.OnCloseRequest(s.indexOf(item))
		}
	}
	s.tabs.OnSelected = func(item *container.TabItem) {
		s.notifySelected()
	}
	return s
}

// Widget is the tab container to place in the window.
func (s *TabSurface) Widget() fyne.CanvasObject {
	return s.tabs
}

func (s *TabSurface) AddTab(id, title string, doc richtext.Document) {
	editor := widgets.NewNoteEditor(id, doc)
	editor.SetWrap(s.wrap)
	if s.preview {
		editor.SetPreview(true)
	}
	editor.OnChanged = func() {
		if s.OnEdit != nil {
			s.OnEdit(id)
		}
	}
	s.tabs.Append(container.NewTabItem(title, editor))
}

func (s *TabSurface) RemoveTab(index int) {
	if index < 0 || index >= len(s.tabs.Items) {
		return
	}
	s.tabs.RemoveIndex(index)
	if len(s.tabs.Items) == 0 {
		s.notifySelected()
	}
}

func (s *TabSurface) ClearTabs() {
	s.tabs.SetItems(nil)
	s.notifySelected()
}

func (s *TabSurface) TabCount() int {
	return len(s.tabs.Items)
}

func (s *TabSurface) TabTitles() []string {
	titles := make([]string, len(s.tabs.Items))
	for i, item := range s.tabs.Items {
		titles[i] = item.Text
	}
	return titles
}

func (s *TabSurface) SelectedTab() int {
	if len(s.tabs.Items) == 0 {
		return -1
	}
	return s.tabs.SelectedIndex()
}

func (s *TabSurface) SelectTab(index int) {
	if index < 0 || index >= len(s.tabs.Items) {
		return
	}
	s.tabs.SelectIndex(index)
}

func (s *TabSurface) TabDocument(index int) (richtext.Document, bool) {
	editor := s.Editor(index)
	if editor == nil {
		return richtext.Document{}, false
	}
	return editor.Document(), true
}

// Editor returns the editor of the tab at index, or nil.
func (s *TabSurface) Editor(index int) *widgets.NoteEditor {
	if index < 0 || index >= len(s.tabs.Items) {
		return nil
	}
	editor, _ := s.tabs.Items[index].Content.(*widgets.NoteEditor)
	return editor
}

// ActiveEditor returns the editor of the selected tab, or nil.
func (s *TabSurface) ActiveEditor() *widgets.NoteEditor {
	return s.Editor(s.SelectedTab())
}

// SetWrap applies word wrapping to every tab, including ones added later.
func (s *TabSurface) SetWrap(wrap bool) {
	s.wrap = wrap
	for i := range s.tabs.Items {
		if editor := s.Editor(i); editor != nil {
			editor.SetWrap(wrap)
		}
	}
}

// SetPreview switches every tab between editing and Markdown preview.
func (s *TabSurface) SetPreview(on bool) {
	s.preview = on
	for i := range s.tabs.Items {
		if editor := s.Editor(i); editor != nil {
			editor.SetPreview(on)
		}
	}
}

func (s *TabSurface) Previewing() bool {
	return s.preview
}

func (s *TabSurface) indexOf(item *container.TabItem) int {
	for i, it := range s.tabs.Items {
		if it == item {
			return i
		}
	}
	return -1
}

func (s *TabSurface) notifySelected() {
	if s.OnSelected != nil {
		s.OnSelected(s.SelectedTab())
	}
}
