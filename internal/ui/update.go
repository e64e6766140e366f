package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"maraos/internal/system"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, m.syncOverlay()

	case frameMsg:
		m.in.Tick()
		return m, tea.Batch(frameCmd(m.frame), m.syncOverlay())

	case blinkMsg:
		m.in.ToggleCursor()
		return m, blinkCmd(m.blink)

	case pasteMsg:
		if msg.err != nil {
			system.Logger.Warn("clipboard read failed", "err", msg.err)
			return m, nil
		}
		m.in.Paste(msg.text)
		return m, nil

	case overlayRenderedMsg:
		if msg.title == m.overlayTitle && msg.width == m.overlayWidth {
			m.overlayVP.SetContent(msg.out)
			m.overlayVP.GotoTop()
			m.overlayLoaded = true
		}
		return m, nil

	case watchStartedMsg:
		system.Logger.Info("watching catalog", "source", m.source)
		m.watchCh = msg.ch
		return m, reloadCatalogCmd(m.ctx, m.watchCh, m.source, m.timeout)

	case catalogReloadedMsg:
		if msg.err != nil {
			system.Logger.Warn("catalog reload failed", "source", m.source, "err", msg.err)
		} else {
			m.in.SetCatalog(msg.catalog)
			system.Logger.Info("catalog reloaded", "files", msg.catalog.Len())
		}
		return m, reloadCatalogCmd(m.ctx, m.watchCh, m.source, m.timeout)

	case tea.MouseMsg:
		if _, shown := m.in.Overlay(); !shown {
			return m, nil
		}
		if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft &&
			zone.Get(overlayCloseZone).InBounds(msg) {
			m.in.HideOverlay()
			return m, m.syncOverlay()
		}
		var cmd tea.Cmd
		m.overlayVP, cmd = m.overlayVP.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			m.cancel()
			return m, tea.Quit
		}
		if _, shown := m.in.Overlay(); shown {
			if key.Matches(msg, m.keys.Close) || msg.Type == tea.KeyEnter {
				m.in.HideOverlay()
				return m, m.syncOverlay()
			}
			var cmd tea.Cmd
			m.overlayVP, cmd = m.overlayVP.Update(msg)
			return m, cmd
		}
		out := m.in.HandleKey(toEvent(msg, m.keys))
		cmds := []tea.Cmd{m.syncOverlay()}
		if out.Paste {
			cmds = append(cmds, readClipboardCmd())
		}
		return m, tea.Batch(cmds...)
	}
	return m, nil
}
