package ports

// Clipboard copies text to the system clipboard
type Clipboard interface {
	WriteText(text string) error
}
