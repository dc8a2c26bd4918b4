package widgets

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"notepad/internal/textenc"
)

// ToolbarLabels are the translated captions of the toolbar.
type ToolbarLabels struct {
	New     string
	Open    string
	Save    string
	Close   string
	Style   string
	Preview string
}

type Toolbar struct {
	container      *fyne.Container
	newButton      *widget.Button
	openButton     *widget.Button
	saveButton     *widget.Button
	closeButton    *widget.Button
	styleButton    *widget.Button
	encodingSelect *widget.Select
	previewCheck   *widget.Check

	newHandler      func()
	openHandler     func()
	saveHandler     func(textenc.Encoding)
	closeHandler    func()
	styleHandler    func()
	previewHandler  func(bool)
	encodingHandler func(textenc.Encoding)

	encoding textenc.Encoding
}

func NewToolbar(labels ToolbarLabels, enc textenc.Encoding) *Toolbar {
	toolbar := &Toolbar{encoding: enc}
	toolbar.createComponents(labels)
	toolbar.buildLayout()
	return toolbar
}

func (t *Toolbar) createComponents(labels ToolbarLabels) {
	t.newButton = widget.NewButtonWithIcon(labels.New, theme.DocumentCreateIcon(), t.onNewClicked)
	t.openButton = widget.NewButtonWithIcon(labels.Open, theme.FolderOpenIcon(), t.onOpenClicked)

	t.saveButton = widget.NewButtonWithIcon(labels.Save, theme.DocumentSaveIcon(), t.onSaveClicked)
	t.saveButton.Importance = widget.HighImportance

	t.closeButton = widget.NewButtonWithIcon(labels.Close, theme.CancelIcon(), t.onCloseClicked)
	t.styleButton = widget.NewButtonWithIcon(labels.Style, theme.ColorPaletteIcon(), t.onStyleClicked)

	options := make([]string, 0, len(textenc.All()))
	for _, enc := range textenc.All() {
		options = append(options, enc.Label())
	}
	t.encodingSelect = widget.NewSelect(options, nil)
	t.encodingSelect.SetSelected(t.encoding.Label())
	// Set after SetSelected so the initial value is not reported.
	t.encodingSelect.OnChanged = t.onEncodingChanged

	t.previewCheck = widget.NewCheck(labels.Preview, t.onPreviewChanged)
}

func (t *Toolbar) buildLayout() {
	fileSection := container.NewHBox(
		t.newButton,
		t.openButton,
		widget.NewSeparator(),
		t.saveButton,
		t.encodingSelect,
		widget.NewSeparator(),
		t.closeButton,
	)

	viewSection := container.NewHBox(
		t.styleButton,
		t.previewCheck,
	)

	t.container = container.NewBorder(nil, nil, fileSection, viewSection)
}

func (t *Toolbar) onNewClicked() {
	if t.newHandler != nil {
		t.newHandler()
	}
}

func (t *Toolbar) onOpenClicked() {
	if t.openHandler != nil {
		t.openHandler()
	}
}

func (t *Toolbar) onSaveClicked() {
	if t.saveHandler != nil {
		t.saveHandler(t.encoding)
	}
}

func (t *Toolbar) onCloseClicked() {
	if t.closeHandler != nil {
		t.closeHandler()
	}
}

func (t *Toolbar) onStyleClicked() {
	if t.styleHandler != nil {
		t.styleHandler()
	}
}

func (t *Toolbar) onPreviewChanged(on bool) {
	if t.previewHandler != nil {
		t.previewHandler(on)
	}
}

func (t *Toolbar) onEncodingChanged(label string) {
	for _, enc := range textenc.All() {
		if enc.Label() == label {
			t.encoding = enc
			if t.encodingHandler != nil {
				t.encodingHandler(enc)
			}
			return
		}
	}
}

func (t *Toolbar) GetContainer() *fyne.Container {
	return t.container
}

// Encoding is the encoding the Save button writes with.
func (t *Toolbar) Encoding() textenc.Encoding {
	return t.encoding
}

// SetPreview updates the preview check without firing its handler.
func (t *Toolbar) SetPreview(on bool) {
	handler := t.previewHandler
	t.previewHandler = nil
	t.previewCheck.SetChecked(on)
	t.previewHandler = handler
}

// Event handler setters
func (t *Toolbar) SetNewHandler(handler func()) {
	t.newHandler = handler
}

func (t *Toolbar) SetOpenHandler(handler func()) {
	t.openHandler = handler
}

func (t *Toolbar) SetSaveHandler(handler func(textenc.Encoding)) {
	t.saveHandler = handler
}

func (t *Toolbar) SetCloseHandler(handler func()) {
	t.closeHandler = handler
}

func (t *Toolbar) SetStyleHandler(handler func()) {
	t.styleHandler = handler
}

func (t *Toolbar) SetPreviewHandler(handler func(bool)) {
	t.previewHandler = handler
}

func (t *Toolbar) SetEncodingHandler(handler func(textenc.Encoding)) {
	t.encodingHandler = handler
}

// SetTabActionsEnabled enables the buttons that need an open tab.
func (t *Toolbar) SetTabActionsEnabled(enabled bool) {
	for _, b := range []*widget.Button{t.saveButton, t.closeButton, t.styleButton} {
		if enabled {
			b.Enable()
		} else {
			b.Disable()
		}
	}
}
