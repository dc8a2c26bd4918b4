package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	"notepad/internal/gui"
	"notepad/internal/gui/widgets"
	"notepad/internal/i18n"
	"notepad/internal/session"
	"notepad/internal/textenc"
)

// statusMessenger refreshes the status bar after every message, so a path
// set by a completed save shows up.
type statusMessenger struct {
	session.Messenger
	after func()
}

func (m *statusMessenger) ShowInfo(title, message string) {
	m.Messenger.ShowInfo(title, message)
	m.after()
}

func (a *Application) setupHandlers() {
	surface := a.gui.Surface()
	surface.OnEdit = a.handleEdit
	surface.OnCloseRequest = a.handleCloseRequest
	surface.OnSelected = func(int) { a.refreshStatus() }

	a.gui.SetNewHandler(a.handleNew)
	a.gui.SetOpenHandler(a.handleOpen)
	a.gui.SetSaveHandler(a.handleSave)
	a.gui.SetCloseHandler(a.handleCloseActive)
	a.gui.SetStyleHandler(a.handleStyle)
}

func (a *Application) handleNew() {
	a.session.Create("")
	a.refreshStatus()
}

func (a *Application) handleOpen() {
	a.session.Open()
}

func (a *Application) handleSave(enc textenc.Encoding) {
	if a.session.SaveActive(enc) == session.Stale {
		a.logger.Debug(component, "save requested without a tab", nil)
	}
}

func (a *Application) handleCloseActive() {
	a.session.CloseActive()
	a.refreshStatus()
}

func (a *Application) handleCloseRequest(index int) {
	if a.session.CloseTab(index) == session.Stale {
		a.logger.Warning(component, "close requested for unknown tab", map[string]interface{}{
			"index": index,
		})
	}
	a.refreshStatus()
}

func (a *Application) handleEdit(id string) {
	if a.session.TextChangedByID(id) == session.Stale {
		a.logger.Warning(component, "edit reported for unknown note", map[string]interface{}{
			"id": id,
		})
		return
	}
	a.refreshStatus()
}

func (a *Application) handleStyle() {
	editor := a.gui.Surface().ActiveEditor()
	if editor == nil {
		return
	}
	gui.ShowStyleDialog(a.window, styleLabels(), editor.Style(), editor.SetStyle)
}

// handleClipboard forwards a clipboard shortcut to the focused widget.
func (a *Application) handleClipboard(shortcut fyne.Shortcut) {
	focused, ok := a.window.Canvas().Focused().(fyne.Shortcutable)
	if !ok {
		if editor := a.gui.Surface().ActiveEditor(); editor != nil {
			a.window.Canvas().Focus(editor.Entry())
			focused = editor.Entry()
		} else {
			return
		}
	}
	focused.TypedShortcut(shortcut)
}

func (a *Application) handleAbout() {
	dialog.ShowInformation(i18n.T("menu.help.about"), AppName+" "+AppVersion+"\n\n"+i18n.T("about.text"), a.window)
}

func (a *Application) refreshStatus() {
	surface := a.gui.Surface()
	index := surface.SelectedTab()
	note, ok := a.session.Note(index)
	doc, hasDoc := surface.TabDocument(index)
	if !ok || !hasDoc {
		a.gui.ClearStatus()
		return
	}
	a.gui.ShowNoteStatus(note.FilePath, doc.Body)
}

func toolbarLabels() widgets.ToolbarLabels {
	return widgets.ToolbarLabels{
		New:     i18n.T("menu.file.new"),
		Open:    i18n.T("menu.file.open"),
		Save:    i18n.T("menu.file.save"),
		Close:   i18n.T("menu.file.close_tab"),
		Style:   i18n.T("menu.format.style"),
		Preview: i18n.T("menu.view.preview"),
	}
}

func styleLabels() gui.StyleLabels {
	return gui.StyleLabels{
		Title:     i18n.T("style.title"),
		Bold:      i18n.T("style.bold"),
		Italic:    i18n.T("style.italic"),
		Monospace: i18n.T("style.monospace"),
		Apply:     i18n.T("button.apply"),
		Cancel:    i18n.T("button.cancel"),
	}
}
