// Package config holds the notepad configuration file format.
package config

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"notepad/internal/logger"
	"notepad/internal/textenc"
)

// Supported UI locales. An empty locale follows the system language.
const (
	LocaleSystem  = ""
	LocaleEnglish = "en"
	LocaleRussian = "ru"
)

// Config represents the application configuration.
type Config struct {
	App     AppConfig     `yaml:"app"`
	Storage StorageConfig `yaml:"storage"`
	Editor  EditorConfig  `yaml:"editor"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return err
	}
	if err := c.Storage.Validate(); err != nil {
		return err
	}
	return c.Editor.Validate()
}

// AppConfig holds application-level configuration.
type AppConfig struct {
	LogLevel string `yaml:"log_level"`
	Locale   string `yaml:"locale"`
}

func (c *AppConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.LogLevel, validation.By(checkLevel)),
		validation.Field(&c.Locale, validation.In(LocaleSystem, LocaleEnglish, LocaleRussian)),
	)
}

// StorageConfig locates the notes document. An empty NotesPath selects the
// per-user config directory.
type StorageConfig struct {
	NotesPath string `yaml:"notes_path"`
}

func (c *StorageConfig) Validate() error {
	return nil
}

// EditorConfig controls the editor window.
type EditorConfig struct {
	// Encoding is used by the plain Save command.
	Encoding     string  `yaml:"encoding"`
	Wrap         bool    `yaml:"wrap"`
	Preview      bool    `yaml:"preview"`
	WindowWidth  float32 `yaml:"window_width"`
	WindowHeight float32 `yaml:"window_height"`
}

func (c *EditorConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Encoding, validation.Required, validation.By(checkEncoding)),
		validation.Field(&c.WindowWidth, validation.Required, validation.Min(float32(200))),
		validation.Field(&c.WindowHeight, validation.Required, validation.Min(float32(150))),
	)
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: AppConfig{
			LogLevel: "info",
		},
		Editor: EditorConfig{
			Encoding:     textenc.NameUTF8,
			Wrap:         true,
			WindowWidth:  800,
			WindowHeight: 600,
		},
	}
}

func checkLevel(value interface{}) error {
	s, _ := value.(string)
	if _, err := logger.ParseLevel(s); err != nil {
		return errors.New("must be one of debug, info, warn, error, disabled")
	}
	return nil
}

func checkEncoding(value interface{}) error {
	s, _ := value.(string)
	if _, err := textenc.Lookup(s); err != nil {
		return errors.New("must be one of utf-8, utf-32, ascii")
	}
	return nil
}
