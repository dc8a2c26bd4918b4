package gui

import (
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"

	"notepad/internal/logger"
)

const dialogComponent = "Dialogs"

var textFilter = storage.NewExtensionFileFilter([]string{".txt"})

// Dialogs implements the session's file chooser and messenger with fyne
// dialogs attached to one window.
type Dialogs struct {
	window fyne.Window
	log    logger.Logger
	dir    string
}

func NewDialogs(window fyne.Window, log logger.Logger) *Dialogs {
	return &Dialogs{window: window, log: log}
}

// ChooseOpen shows a file open dialog filtered to text files. Only the path
// is reported; the session reads the file itself.
func (d *Dialogs) ChooseOpen(done func(path string, ok bool)) {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			d.ShowError("", err)
			done("", false)
			return
		}
		if reader == nil {
			done("", false)
			return
		}
		path := reader.URI().Path()
		_ = reader.Close()

		d.dir = filepath.Dir(path)
		done(path, true)
	}, d.window)

	fd.SetFilter(textFilter)
	d.setLocation(fd, d.dir)
	fd.Show()
}

// ChooseSave shows a file save dialog. suggested may be a bare file name or
// a full path whose directory becomes the starting location.
func (d *Dialogs) ChooseSave(suggested string, done func(path string, ok bool)) {
	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			d.ShowError("", err)
			done("", false)
			return
		}
		if writer == nil {
			done("", false)
			return
		}
		path := writer.URI().Path()
		_ = writer.Close()

		d.dir = filepath.Dir(path)
		done(path, true)
	}, d.window)

	fd.SetFilter(textFilter)
	dir := d.dir
	if suggested != "" {
		fd.SetFileName(filepath.Base(suggested))
		if filepath.IsAbs(suggested) {
			dir = filepath.Dir(suggested)
		}
	}
	d.setLocation(fd, dir)
	fd.Show()
}

func (d *Dialogs) ShowInfo(title, message string) {
	dialog.ShowInformation(title, message, d.window)
}

func (d *Dialogs) ShowError(title string, err error) {
	d.log.Error(dialogComponent, err, map[string]interface{}{
		"title": title,
	})
	dialog.ShowError(err, d.window)
}

func (d *Dialogs) setLocation(fd *dialog.FileDialog, dir string) {
	if dir == "" {
		return
	}
	lister, err := storage.ListerForURI(storage.NewFileURI(dir))
	if err != nil {
		d.log.Debug(dialogComponent, "start directory unavailable", map[string]interface{}{
			"dir":   dir,
			"error": err.Error(),
		})
		return
	}
	fd.SetLocation(lister)
}
