package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"notepad/internal/richtext"
)

// StyleLabels are the translated strings of the style dialog.
type StyleLabels struct {
	Title     string
	Bold      string
	Italic    string
	Monospace string
	Apply     string
	Cancel    string
}

// StyleForm holds the checkboxes of the style dialog.
type StyleForm struct {
	bold      *widget.Check
	italic    *widget.Check
	monospace *widget.Check
}

func NewStyleForm(current richtext.Style) *StyleForm {
	f := &StyleForm{
		bold:      widget.NewCheck("", nil),
		italic:    widget.NewCheck("", nil),
		monospace: widget.NewCheck("", nil),
	}
	f.bold.SetChecked(current.Bold)
	f.italic.SetChecked(current.Italic)
	f.monospace.SetChecked(current.Monospace)
	return f
}

func (f *StyleForm) Items(labels StyleLabels) []*widget.FormItem {
	return []*widget.FormItem{
		widget.NewFormItem(labels.Bold, f.bold),
		widget.NewFormItem(labels.Italic, f.italic),
		widget.NewFormItem(labels.Monospace, f.monospace),
	}
}

func (f *StyleForm) Style() richtext.Style {
	return richtext.Style{
		Bold:      f.bold.Checked,
		Italic:    f.italic.Checked,
		Monospace: f.monospace.Checked,
	}
}

// ShowStyleDialog asks for a tab style and calls apply when confirmed.
func ShowStyleDialog(window fyne.Window, labels StyleLabels, current richtext.Style, apply func(richtext.Style)) {
	form := NewStyleForm(current)
	dialog.ShowForm(labels.Title, labels.Apply, labels.Cancel, form.Items(labels), func(ok bool) {
		if ok {
			apply(form.Style())
		}
	}, window)
}
