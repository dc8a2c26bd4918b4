package storage

import (
	"fmt"
	"os"

	"notepad/internal/textenc"
)

// ReadText returns the content of the file at path decoded as UTF-8 text.
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("storage: read %s: %w", path, err)
	}
	text, err := textenc.DecodeAuto(data)
	if err != nil {
		return "", fmt.Errorf("storage: %s: %w", path, err)
	}
	return text, nil
}

// WriteText writes text to path in enc, creating or truncating the file.
func WriteText(path, text string, enc textenc.Encoding) error {
	data, err := enc.Encode(text)
	if err != nil {
		return fmt.Errorf("storage: %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("storage: write %s: %w", path, err)
	}
	return nil
}
