package i18n

import (
	"encoding/json"
	"fmt"
	"sync"
)

var (
	englishOnce sync.Once
	englishMsgs map[string]string
)

func english(key string) string {
	englishOnce.Do(func() {
		msgs, err := Catalog("en")
		if err != nil {
			msgs = map[string]string{}
		}
		englishMsgs = msgs
	})
	if msg, ok := englishMsgs[key]; ok {
		return msg
	}
	return key
}

// Catalog returns the embedded messages for locale.
func Catalog(locale string) (map[string]string, error) {
	data, err := translations.ReadFile("translations/" + locale + ".json")
	if err != nil {
		return nil, fmt.Errorf("no catalog for %q: %w", locale, err)
	}
	msgs := map[string]string{}
	if err := json.Unmarshal(data, &msgs); err != nil {
		return nil, fmt.Errorf("parse catalog %q: %w", locale, err)
	}
	return msgs, nil
}
