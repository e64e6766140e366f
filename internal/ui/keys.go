package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"maraos/internal/console"
)

type keyMap struct {
	Copy    key.Binding
	Paste   key.Binding
	Save    key.Binding
	Restore key.Binding
	Newline key.Binding
	Close   key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Copy:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "copy line")),
		Paste:   key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),
		Save:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Restore: key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "restore")),
		// Terminals rarely report shift+enter, so alt+enter and ctrl+j stand in.
		Newline: key.NewBinding(key.WithKeys("alt+enter", "ctrl+j"), key.WithHelp("alt+enter", "newline")),
		Close:   key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc", "close")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+q", "ctrl+d"), key.WithHelp("ctrl+q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Copy, k.Paste, k.Save, k.Restore, k.Newline, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.Close}}
}

// toEvent translates a terminal key press into an editor event.
func toEvent(msg tea.KeyMsg, k keyMap) console.Event {
	name := msg.String()
	switch {
	case key.Matches(msg, k.Copy):
		return console.Event{Key: console.KeyCopy, Name: name}
	case key.Matches(msg, k.Paste):
		return console.Event{Key: console.KeyPaste, Name: name}
	case key.Matches(msg, k.Save):
		return console.Event{Key: console.KeySave, Name: name}
	case key.Matches(msg, k.Restore):
		return console.Event{Key: console.KeyRestore, Name: name}
	case key.Matches(msg, k.Newline):
		return console.Event{Key: console.KeyEnter, Shift: true, Name: name}
	}
	switch msg.Type {
	case tea.KeyRunes:
		if msg.Alt {
			break
		}
		return console.Event{Key: console.KeyRune, Runes: msg.Runes, Name: name}
	case tea.KeySpace:
		return console.Event{Key: console.KeyRune, Runes: []rune{' '}, Name: name}
	case tea.KeyEnter:
		return console.Event{Key: console.KeyEnter, Name: name}
	case tea.KeyBackspace:
		return console.Event{Key: console.KeyBackspace, Name: name}
	case tea.KeyDelete:
		return console.Event{Key: console.KeyDelete, Name: name}
	case tea.KeyLeft:
		return console.Event{Key: console.KeyLeft, Name: name}
	case tea.KeyRight:
		return console.Event{Key: console.KeyRight, Name: name}
	case tea.KeyUp:
		return console.Event{Key: console.KeyUp, Name: name}
	case tea.KeyDown:
		return console.Event{Key: console.KeyDown, Name: name}
	}
	return console.Event{Key: console.KeyOther, Name: name}
}
