package main

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"notepad/internal/config"
	"notepad/internal/gui"
	"notepad/internal/i18n"
	"notepad/internal/logger"
	"notepad/internal/session"
	"notepad/internal/shutdown"
	"notepad/internal/storage"
	"notepad/internal/textenc"
)

const component = "Application"

// Application wires the window, the tab surface and the note session.
type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	logger  logger.Logger
	config  *config.Config

	gui      *gui.Manager
	session  *session.Session
	store    *storage.JSONStore
	shutdown *shutdown.Manager
	mainMenu *fyne.MainMenu
}

// NewApplication builds the application from a validated config.
func NewApplication(cfg *config.Config) (*Application, error) {
	level, err := logger.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		return nil, err
	}
	appLogger := logger.NewConsoleLogger(level)

	if err := i18n.Register(cfg.App.Locale); err != nil {
		appLogger.Warning(component, "translations unavailable", map[string]interface{}{
			"error": err.Error(),
		})
	}

	enc, err := textenc.Lookup(cfg.Editor.Encoding)
	if err != nil {
		return nil, err
	}

	store, err := storage.NewJSONStore(cfg.Storage.NotesPath)
	if err != nil {
		return nil, err
	}

	fyneApp := app.NewWithID(AppID)
	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(cfg.Editor.WindowWidth, cfg.Editor.WindowHeight))
	window.CenterOnScreen()

	manager := gui.NewManager(window, appLogger, toolbarLabels(), enc)
	manager.SetWrap(cfg.Editor.Wrap)

	application := &Application{
		fyneApp:  fyneApp,
		window:   window,
		logger:   appLogger,
		config:   cfg,
		gui:      manager,
		store:    store,
		shutdown: shutdown.NewManager(appLogger),
	}

	application.session = session.New(manager.Surface(), store,
		session.WithChooser(manager.Dialogs()),
		session.WithMessenger(&statusMessenger{Messenger: manager.Dialogs(), after: application.refreshStatus}),
		session.WithLabels(i18n.Labels()),
		session.WithLogger(appLogger),
	)

	// Registered last, stopped first: the notes are written while the
	// window still exists.
	application.shutdown.Register("gui", manager)
	application.shutdown.Register("session", application.session)

	application.setupHandlers()
	application.setupMenus()
	application.setupWindowEvents()

	appLogger.Info(component, "initialized", map[string]interface{}{
		"version":    AppVersion,
		"notes_path": store.Path(),
		"encoding":   enc.Name(),
		"locale":     cfg.App.Locale,
	})
	return application, nil
}

// Run loads the stored notes, shows the window and blocks until the UI
// exits.
func (a *Application) Run(ctx context.Context) error {
	a.window.SetContent(a.gui.GetMainContainer())

	if err := a.session.Start(); err != nil {
		a.logger.Warning(component, "starting without stored notes", map[string]interface{}{
			"error": err.Error(),
		})
	}
	if a.config.Editor.Preview {
		a.gui.SetPreview(true)
	}
	a.refreshStatus()

	a.shutdown.Listen(fyne.DoAndWait, a.fyneApp.Quit)

	go func() {
		select {
		case <-ctx.Done():
			a.logger.Info(component, "context cancelled, initiating shutdown", nil)
			fyne.DoAndWait(a.quit)
		case <-a.shutdown.Done():
		}
	}()

	a.window.ShowAndRun()

	select {
	case <-a.shutdown.Done():
	default:
		a.logger.Warning(component, "ui exited without shutdown, saving notes now", nil)
		a.shutdown.Shutdown()
	}

	a.logger.Info(component, "terminated", map[string]interface{}{
		"state": a.session.State().String(),
	})
	return nil
}

// setupWindowEvents saves the notes before the window goes away.
func (a *Application) setupWindowEvents() {
	a.window.SetCloseIntercept(func() {
		a.logger.Info(component, "window close requested", nil)
		a.shutdown.Shutdown()
		a.window.Close()
	})
}

func (a *Application) quit() {
	a.shutdown.Shutdown()
	a.fyneApp.Quit()
}
