package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/glamour"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

const overlayCloseZone = "overlay.close"

// overlaySize is the viewport size for the panel at the current window size.
func (m model) overlaySize() (int, int) {
	w := m.width * 4 / 5
	h := m.height * 3 / 4
	if w < 20 {
		w = 20
	}
	if h < 5 {
		h = 5
	}
	return w, h
}

// syncOverlay starts rendering when the interpreter opened a new panel or
// the window width changed.
func (m *model) syncOverlay() tea.Cmd {
	ov, shown := m.in.Overlay()
	if !shown {
		m.overlayTitle = ""
		m.overlayLoaded = false
		return nil
	}
	w, h := m.overlaySize()
	if ov.Title == m.overlayTitle && w == m.overlayWidth {
		m.overlayVP.Height = h
		return nil
	}
	m.overlayTitle = ov.Title
	m.overlayWidth = w
	m.overlayLoaded = false
	m.overlayVP = viewport.New(w, h)
	m.overlayVP.SetContent("Loading...")
	return renderOverlayCmd(ov.Title, ov.Content, w)
}

func renderOverlayCmd(title, content string, width int) tea.Cmd {
	return func() tea.Msg {
		return overlayRenderedMsg{title: title, width: width, out: renderMarkdown(content, width)}
	}
}

// renderMarkdown renders content with the CRT glamour style, falling back
// to the raw text when glamour fails.
func renderMarkdown(content string, width int) string {
	const glamourGutter = 2
	wrap := width - glamourGutter
	if wrap < 10 {
		wrap = 10
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(crtGlamour()),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return content
	}
	out, err := r.Render(content)
	if err != nil {
		return content
	}
	return strings.Trim(out, "\n")
}

func (m model) overlayView() string {
	title := overlayTitleStyle().Render(m.overlayTitle)
	closeBtn := zone.Mark(overlayCloseZone, Button("close"))
	gap := m.overlayWidth - lipgloss.Width(title) - lipgloss.Width(closeBtn)
	if gap < 1 {
		gap = 1
	}
	header := title + strings.Repeat(" ", gap) + closeBtn
	box := overlayBoxStyle().Render(header + "\n\n" + m.overlayVP.View())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box,
		lipgloss.WithWhitespaceBackground(CRT.Bg))
}
