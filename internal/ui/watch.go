package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"maraos/internal/system"
	"maraos/internal/vfs"
)

func watchCatalogCmd(ctx context.Context, source string) tea.Cmd {
	return func() tea.Msg {
		ch, err := vfs.Watch(ctx, source, 120*time.Millisecond)
		if err != nil {
			system.Logger.Warn("catalog watch unavailable", "source", source, "err", err)
			return nil
		}
		return watchStartedMsg{ch: ch}
	}
}

// reloadCatalogCmd waits for the next change signal and reloads the catalog.
func reloadCatalogCmd(ctx context.Context, ch <-chan struct{}, source string, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		c, err := vfs.Load(ctx, source, timeout)
		return catalogReloadedMsg{catalog: c, err: err}
	}
}
