package widgets

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"notepad/internal/richtext"
)

// NoteEditor is the content of one tab: a multi-line entry that can be
// swapped for a rendered Markdown preview.
type NoteEditor struct {
	widget.BaseWidget

	id         string
	entry      *widget.Entry
	preview    *widget.RichText
	previewBox *container.Scroll
	content    *fyne.Container
	style      richtext.Style
	previewing bool

	// OnChanged fires after every user edit and style change.
	OnChanged func()
}

func NewNoteEditor(id string, doc richtext.Document) *NoteEditor {
	e := &NoteEditor{id: id}

	e.entry = widget.NewMultiLineEntry()
	e.entry.Wrapping = fyne.TextWrapWord
	e.entry.SetText(doc.Body)
	e.applyStyle(doc.Style)
	// SetText fires OnChanged, so the hook goes in after the initial text.
	e.entry.OnChanged = func(string) {
		e.changed()
	}

	e.preview = widget.NewRichTextFromMarkdown("")
	e.preview.Wrapping = fyne.TextWrapWord
	e.previewBox = container.NewVScroll(e.preview)
	e.previewBox.Hide()

	e.content = container.NewStack(e.entry, e.previewBox)
	e.ExtendBaseWidget(e)
	return e
}

func (e *NoteEditor) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(e.content)
}

// ID is the note the editor belongs to.
func (e *NoteEditor) ID() string {
	return e.id
}

// Entry exposes the text entry for focus and clipboard shortcuts.
func (e *NoteEditor) Entry() *widget.Entry {
	return e.entry
}

func (e *NoteEditor) Document() richtext.Document {
	return richtext.Document{Style: e.style, Body: e.entry.Text}
}

func (e *NoteEditor) Style() richtext.Style {
	return e.style
}

// SetStyle restyles the whole tab and counts as an edit.
func (e *NoteEditor) SetStyle(style richtext.Style) {
	if style == e.style {
		return
	}
	e.applyStyle(style)
	e.changed()
}

func (e *NoteEditor) SetWrap(wrap bool) {
	if wrap {
		e.entry.Wrapping = fyne.TextWrapWord
	} else {
		e.entry.Wrapping = fyne.TextWrapOff
	}
	e.entry.Refresh()
}

func (e *NoteEditor) Previewing() bool {
	return e.previewing
}

// SetPreview toggles between the entry and its rendered Markdown.
func (e *NoteEditor) SetPreview(on bool) {
	e.previewing = on
	if on {
		e.preview.ParseMarkdown(e.entry.Text)
		e.entry.Hide()
		e.previewBox.Show()
		return
	}
	e.previewBox.Hide()
	e.entry.Show()
}

func (e *NoteEditor) applyStyle(style richtext.Style) {
	e.style = style
	e.entry.TextStyle = fyne.TextStyle{
		Bold:      style.Bold,
		Italic:    style.Italic,
		Monospace: style.Monospace,
	}
	e.entry.Refresh()
}

func (e *NoteEditor) changed() {
	if e.previewing {
		e.preview.ParseMarkdown(e.entry.Text)
	}
	if e.OnChanged != nil {
		e.OnChanged()
	}
}
