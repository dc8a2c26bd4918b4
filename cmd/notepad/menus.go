package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"notepad/internal/i18n"
	"notepad/internal/textenc"
)

func shortcut(key fyne.KeyName) fyne.Shortcut {
	return &desktop.CustomShortcut{KeyName: key, Modifier: fyne.KeyModifierShortcutDefault}
}

func (a *Application) setupMenus() {
	newItem := fyne.NewMenuItem(i18n.T("menu.file.new"), a.handleNew)
	newItem.Shortcut = shortcut(fyne.KeyN)

	openItem := fyne.NewMenuItem(i18n.T("menu.file.open"), a.handleOpen)
	openItem.Shortcut = shortcut(fyne.KeyO)

	saveItem := fyne.NewMenuItem(i18n.T("menu.file.save"), func() {
		a.handleSave(a.gui.Toolbar().Encoding())
	})
	saveItem.Shortcut = shortcut(fyne.KeyS)

	saveAsItems := make([]*fyne.MenuItem, 0, len(textenc.All()))
	for _, enc := range textenc.All() {
		saveAsItems = append(saveAsItems, fyne.NewMenuItem(enc.Label(), func() {
			a.handleSave(enc)
		}))
	}
	saveAsItem := fyne.NewMenuItem(i18n.T("menu.file.save_as"), nil)
	saveAsItem.ChildMenu = fyne.NewMenu("", saveAsItems...)

	closeItem := fyne.NewMenuItem(i18n.T("menu.file.close_tab"), a.handleCloseActive)
	closeItem.Shortcut = shortcut(fyne.KeyW)

	quitItem := fyne.NewMenuItem(i18n.T("menu.file.quit"), a.quit)
	quitItem.IsQuit = true

	fileMenu := fyne.NewMenu(i18n.T("menu.file"),
		newItem,
		openItem,
		fyne.NewMenuItemSeparator(),
		saveItem,
		saveAsItem,
		fyne.NewMenuItemSeparator(),
		closeItem,
		quitItem,
	)

	clipboard := a.fyneApp.Clipboard()
	editMenu := fyne.NewMenu(i18n.T("menu.edit"),
		fyne.NewMenuItem(i18n.T("menu.edit.cut"), func() {
			a.handleClipboard(&fyne.ShortcutCut{Clipboard: clipboard})
		}),
		fyne.NewMenuItem(i18n.T("menu.edit.copy"), func() {
			a.handleClipboard(&fyne.ShortcutCopy{Clipboard: clipboard})
		}),
		fyne.NewMenuItem(i18n.T("menu.edit.paste"), func() {
			a.handleClipboard(&fyne.ShortcutPaste{Clipboard: clipboard})
		}),
	)

	wrapItem := fyne.NewMenuItem(i18n.T("menu.format.wrap"), nil)
	wrapItem.Checked = a.config.Editor.Wrap
	wrapItem.Action = func() {
		wrapItem.Checked = !wrapItem.Checked
		a.gui.SetWrap(wrapItem.Checked)
		a.mainMenu.Refresh()
	}
	formatMenu := fyne.NewMenu(i18n.T("menu.format"),
		fyne.NewMenuItem(i18n.T("menu.format.style"), a.handleStyle),
		wrapItem,
	)

	previewItem := fyne.NewMenuItem(i18n.T("menu.view.preview"), nil)
	previewItem.Checked = a.config.Editor.Preview
	previewItem.Action = func() {
		previewItem.Checked = !a.gui.Surface().Previewing()
		a.gui.SetPreview(previewItem.Checked)
		a.mainMenu.Refresh()
	}
	viewMenu := fyne.NewMenu(i18n.T("menu.view"), previewItem)

	helpMenu := fyne.NewMenu(i18n.T("menu.help"),
		fyne.NewMenuItem(i18n.T("menu.help.about"), a.handleAbout),
	)

	a.mainMenu = fyne.NewMainMenu(fileMenu, editMenu, formatMenu, viewMenu, helpMenu)
	a.window.SetMainMenu(a.mainMenu)
}
