package session

// DefaultText is the content of the note seeded when nothing was loaded.
const DefaultText = "Hello, World!"

// Labels holds the user-visible strings the session produces.
type Labels struct {
	// NewNotePrefix starts auto-generated titles: "<prefix> <n>".
	NewNotePrefix string

	ErrorTitle string
	InfoTitle  string

	FileSaved     string
	OpenFailed    string
	SaveFailed    string
	PersistFailed string
	LoadFailed    string
}

// DefaultLabels returns the English strings.
func DefaultLabels() Labels {
	return Labels{
		NewNotePrefix: "New",
		ErrorTitle:    "Error",
		InfoTitle:     "Information",
		FileSaved:     "File saved successfully.",
		OpenFailed:    "Error opening file",
		SaveFailed:    "Error saving file",
		PersistFailed: "Error saving notes",
		LoadFailed:    "Error loading notes",
	}
}
