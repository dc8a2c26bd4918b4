package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StatusBar shows where the selected note lives and its size.
type StatusBar struct {
	container  *fyne.Container
	pathLabel  *widget.Label
	countLabel *widget.Label
}

func NewStatusBar() *StatusBar {
	pathLabel := widget.NewLabel("")
	pathLabel.Truncation = fyne.TextTruncateEllipsis
	countLabel := widget.NewLabel("")

	mainContainer := container.NewBorder(
		nil, nil,
		nil,
		countLabel,
		pathLabel,
	)

	return &StatusBar{
		container:  mainContainer,
		pathLabel:  pathLabel,
		countLabel: countLabel,
	}
}

func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}

func (sb *StatusBar) SetPath(path string) {
	sb.pathLabel.SetText(path)
}

// SetCounts shows the character and line count of the selected note.
func (sb *StatusBar) SetCounts(chars, lines int) {
	sb.countLabel.SetText(fmt.Sprintf("%d : %d", chars, lines))
}

func (sb *StatusBar) Clear() {
	sb.pathLabel.SetText("")
	sb.countLabel.SetText("")
}

// PathText and CountText return the current captions.
func (sb *StatusBar) PathText() string {
	return sb.pathLabel.Text
}

func (sb *StatusBar) CountText() string {
	return sb.countLabel.Text
}
