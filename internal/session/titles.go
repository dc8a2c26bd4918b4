package session

import (
	"strconv"
	"strings"
)

// nextNumber returns one more than the largest n among titles of the form
// "<prefix> <n>", or 1 when none match.
func nextNumber(titles []string, prefix string) int {
	lead := prefix + " "
	highest := 0
	for _, title := range titles {
		rest, ok := strings.CutPrefix(title, lead)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(rest))
		if err != nil {
			continue
		}
		if n > highest {
			highest = n
		}
	}
	return highest + 1
}

// saveName suggests a file name for a note that was never saved.
func saveName(headline, title string) string {
	base := strings.TrimSpace(headline)
	if base == "" {
		base = strings.TrimSpace(title)
	}
	base = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, base)
	if base == "" {
		base = "note"
	}
	return base + ".txt"
}
