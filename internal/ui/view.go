package ui

import (
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"maraos/internal/screen"
)

func (m model) View() string {
	if m.quitting {
		return "Connection to M.A.R.A. closed.\n"
	}
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	if _, shown := m.in.Overlay(); shown && m.overlayTitle != "" {
		return zone.Scan(m.overlayView())
	}
	footer := m.help.View(m.keys)
	rows := m.height - lipgloss.Height(footer)
	if rows < 1 {
		rows = m.height
		footer = ""
	}
	grid := screen.NewGrid(m.width, rows)
	screen.Paint(grid, m.in, m.prompt)
	out := grid.Render(gridStyles())
	if footer != "" {
		out += "\n" + footer
	}
	return zone.Scan(out)
}
