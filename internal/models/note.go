package models

import "github.com/google/uuid"

// DefaultTitle is the title a note carries before the session names it.
const DefaultTitle = "New note"

// Note is one editor tab's worth of content. The JSON field names match the
// persisted notes.json layout.
type Note struct {
	ID         string `json:"-"`
	Text       string `json:"Text"`
	RichText   string `json:"RtfText"`
	Title      string `json:"Title"`
	FilePath   string `json:"FilePath"`
	IsModified bool   `json:"IsModified"`
}

// NewID returns a fresh opaque note identifier.
func NewID() string {
	return uuid.NewString()
}

// NewNote creates a blank note with a fresh ID.
func NewNote() *Note {
	return &Note{
		ID:    NewID(),
		Title: DefaultTitle,
	}
}

// Saved records a successful write of the note to path.
func (n *Note) Saved(path string) {
	n.FilePath = path
	n.IsModified = false
}

// Edited replaces the note content from the editor.
func (n *Note) Edited(text, richText string) {
	n.Text = text
	n.RichText = richText
	n.IsModified = true
}
