// Package textenc maps the encodings offered by "Save as" onto
// golang.org/x/text transformers.
package textenc

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// Encoding names accepted by Lookup.
const (
	NameUTF8  = "utf-8"
	NameUTF32 = "utf-32"
	NameASCII = "ascii"
)

// ErrUnknown is returned by Lookup for names it does not recognise.
var ErrUnknown = errors.New("unknown text encoding")

// Encoding turns editor text into file bytes.
type Encoding struct {
	name  string
	label string
	enc   encoding.Encoding
	pre   transform.Transformer
}

var (
	UTF8 = Encoding{name: NameUTF8, label: "UTF-8", enc: unicode.UTF8}

	// UTF32 is little-endian with a byte order mark.
	UTF32 = Encoding{name: NameUTF32, label: "UTF-32", enc: utf32.UTF32(utf32.LittleEndian, utf32.UseBOM)}

	// ASCII replaces every rune above U+007F with '?'.
	ASCII = Encoding{name: NameASCII, label: "ASCII", enc: unicode.UTF8, pre: runes.Map(toASCII)}
)

var all = []Encoding{UTF8, UTF32, ASCII}

// All returns the supported encodings in menu order.
func All() []Encoding {
	out := make([]Encoding, len(all))
	copy(out, all)
	return out
}

// Lookup finds an encoding by name, case-insensitively. "utf8" and "utf32"
// are accepted as aliases.
func Lookup(name string) (Encoding, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	switch key {
	case "utf8":
		key = NameUTF8
	case "utf32":
		key = NameUTF32
	case "us-ascii":
		key = NameASCII
	}
	for _, e := range all {
		if e.name == key {
			return e, nil
		}
	}
	return Encoding{}, fmt.Errorf("%w: %q", ErrUnknown, name)
}

// Name is the lookup key of the encoding.
func (e Encoding) Name() string {
	return e.name
}

// Label is the human readable name shown in menus.
func (e Encoding) Label() string {
	return e.label
}

// Encode converts s into bytes in this encoding.
func (e Encoding) Encode(s string) ([]byte, error) {
	if e.enc == nil {
		return nil, fmt.Errorf("%w: zero Encoding", ErrUnknown)
	}
	var t transform.Transformer = e.enc.NewEncoder()
	if e.pre != nil {
		t = transform.Chain(e.pre, t)
	}
	out, _, err := transform.Bytes(t, []byte(s))
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", e.label, err)
	}
	return out, nil
}

// DecodeAuto decodes file content as UTF-8, honouring a UTF-8 or UTF-16 byte
// order mark when one is present.
func DecodeAuto(data []byte) (string, error) {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(dec, data)
	if err != nil {
		return "", fmt.Errorf("decode text: %w", err)
	}
	return string(out), nil
}

func toASCII(r rune) rune {
	if r >= utf8.RuneSelf {
		return '?'
	}
	return r
}
