// Package gui is the fyne front end of the notepad: the tab surface the
// session drives, its dialogs and the window layout around them.
package gui

import (
	"strings"
	"unicode/utf8"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"notepad/internal/gui/components"
	"notepad/internal/gui/widgets"
	"notepad/internal/logger"
	"notepad/internal/textenc"
)

const managerComponent = "GUIManager"

type Manager struct {
	window     fyne.Window
	logger     logger.Logger
	isShutdown bool

	surface *TabSurface
	toolbar *widgets.Toolbar
	status  *components.StatusBar
	dialogs *Dialogs
}

func NewManager(window fyne.Window, log logger.Logger, labels widgets.ToolbarLabels, enc textenc.Encoding) *Manager {
	manager := &Manager{
		window:  window,
		logger:  log,
		surface: NewTabSurface(),
		toolbar: widgets.NewToolbar(labels, enc),
		status:  components.NewStatusBar(),
		dialogs: NewDialogs(window, log),
	}
	manager.toolbar.SetPreviewHandler(manager.SetPreview)
	manager.toolbar.SetTabActionsEnabled(false)

	log.Info(managerComponent, "initialized", map[string]interface{}{
		"encoding": enc.Name(),
	})
	return manager
}

func (m *Manager) GetMainContainer() fyne.CanvasObject {
	return container.NewBorder(
		m.toolbar.GetContainer(),
		m.status.GetContainer(),
		nil, nil,
		m.surface.Widget(),
	)
}

func (m *Manager) GetWindow() fyne.Window {
	return m.window
}

func (m *Manager) Surface() *TabSurface {
	return m.surface
}

func (m *Manager) Dialogs() *Dialogs {
	return m.dialogs
}

func (m *Manager) Toolbar() *widgets.Toolbar {
	return m.toolbar
}

func (m *Manager) SetNewHandler(handler func()) {
	m.toolbar.SetNewHandler(handler)
}

func (m *Manager) SetOpenHandler(handler func()) {
	m.toolbar.SetOpenHandler(handler)
}

func (m *Manager) SetSaveHandler(handler func(textenc.Encoding)) {
	m.toolbar.SetSaveHandler(handler)
}

func (m *Manager) SetCloseHandler(handler func()) {
	m.toolbar.SetCloseHandler(handler)
}

func (m *Manager) SetStyleHandler(handler func()) {
	m.toolbar.SetStyleHandler(handler)
}

// SetPreview switches all tabs between editing and Markdown preview and
// keeps the toolbar check in step.
func (m *Manager) SetPreview(on bool) {
	m.surface.SetPreview(on)
	m.toolbar.SetPreview(on)
	m.logger.Debug(managerComponent, "preview toggled", map[string]interface{}{
		"preview": on,
	})
}

func (m *Manager) SetWrap(on bool) {
	m.surface.SetWrap(on)
}

// ShowNoteStatus describes the selected note in the status bar.
func (m *Manager) ShowNoteStatus(path, body string) {
	m.status.SetPath(path)
	m.status.SetCounts(utf8.RuneCountInString(body), strings.Count(body, "\n")+1)
	m.toolbar.SetTabActionsEnabled(true)
}

// ClearStatus is shown while no tab is open.
func (m *Manager) ClearStatus() {
	m.status.Clear()
	m.toolbar.SetTabActionsEnabled(false)
}

// Status exposes the status bar captions.
func (m *Manager) Status() *components.StatusBar {
	return m.status
}

func (m *Manager) Shutdown() error {
	if m.isShutdown {
		return nil
	}

	m.isShutdown = true
	m.logger.Info(managerComponent, "shutdown initiated", nil)
	return nil
}
