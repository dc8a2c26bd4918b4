// Package i18n registers the UI translations and exposes the localized
// strings used outside of widgets.
package i18n

import (
	"embed"
	"fmt"
	"os"

	"fyne.io/fyne/v2/lang"

	"notepad/internal/session"
)

//go:embed translations
var translations embed.FS

// Register loads the embedded catalogs into fyne. A non-empty locale takes
// precedence over the system language.
func Register(locale string) error {
	if locale != "" {
		if err := os.Setenv("LANGUAGE", locale); err != nil {
			return fmt.Errorf("set locale %q: %w", locale, err)
		}
	}
	if err := lang.AddTranslationsFS(translations, "translations"); err != nil {
		return fmt.Errorf("load translations: %w", err)
	}
	return nil
}

// T returns the translation of key, falling back to the English catalog.
func T(key string) string {
	return lang.X(key, english(key))
}

// Labels returns the session strings in the active language.
func Labels() session.Labels {
	return session.Labels{
		NewNotePrefix: T("note.new_prefix"),
		ErrorTitle:    T("dialog.error_title"),
		InfoTitle:     T("dialog.info_title"),
		FileSaved:     T("msg.file_saved"),
		OpenFailed:    T("msg.open_failed"),
		SaveFailed:    T("msg.save_failed"),
		PersistFailed: T("msg.persist_failed"),
		LoadFailed:    T("msg.load_failed"),
	}
}
