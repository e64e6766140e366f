package ui

import (
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// SystemClipboard writes to the OS clipboard.
type SystemClipboard struct{}

func (SystemClipboard) WriteAll(text string) error { return clipboard.WriteAll(text) }

// readClipboardCmd reads the clipboard off the update loop. The text is
// applied to whatever the input line holds when it arrives.
func readClipboardCmd() tea.Cmd {
	return func() tea.Msg {
		s, err := clipboard.ReadAll()
		return pasteMsg{text: s, err: err}
	}
}
