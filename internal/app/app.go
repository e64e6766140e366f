package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"maraos/internal/config"
	"maraos/internal/console"
	"maraos/internal/profile"
	"maraos/internal/store"
	"maraos/internal/system"
	"maraos/internal/ui"
	"maraos/internal/vfs"
	appver "maraos/internal/version"
)

// Options are command-line overrides on top of config.yaml.
type Options struct {
	// CatalogSource replaces catalog.source when non-empty.
	CatalogSource string
	// Boot forces the startup animation on (true) or off (false).
	Boot *bool
}

// Start runs the console TUI and returns any error.
func Start(ctx context.Context, opts Options) error {
	cfg, err := config.Load()
	if err != nil {
		system.Logger.Warn("config unreadable, using defaults", "err", err)
	}
	if opts.CatalogSource != "" {
		cfg.Catalog.Source = opts.CatalogSource
	}
	boot := !cfg.Console.SkipStartupAnimation
	if opts.Boot != nil {
		boot = *opts.Boot
	}

	if logPath, err := config.File("maraos.log"); err == nil {
		closer := system.LogToFile(logPath)
		defer closer.Close()
	}

	caller, err := profile.Load()
	if err != nil {
		system.Logger.Warn("profile unreadable, continuing anonymously", "err", err)
	}
	catalog, err := vfs.Load(ctx, cfg.Catalog.Source, cfg.Catalog.Timeout)
	if err != nil {
		system.Logger.Error("catalog load failed", "source", cfg.Catalog.Source, "err", err)
	}
	system.Logger.Info("catalog loaded", "files", catalog.Len())

	in := console.New(console.Options{
		Catalog:      catalog,
		Profile:      caller,
		DefaultPath:  cfg.Console.DefaultPath,
		HistoryLimit: cfg.Console.HistoryLimit,
		Boot:         boot,
		Store:        slots(),
		Clipboard:    ui.SystemClipboard{},
		Logger:       system.Logger,
		Version:      appver.AppVersion,
	})

	// Initialize global bubblezone manager for mouse-aware zones.
	zone.NewGlobal()
	m := ui.New(ui.Options{
		Interpreter:    in,
		Prompt:         cfg.Console.Prompt,
		FrameInterval:  cfg.Console.FrameInterval,
		BlinkInterval:  cfg.Console.BlinkInterval,
		CatalogSource:  cfg.Catalog.Source,
		CatalogTimeout: cfg.Catalog.Timeout,
	})
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx)).Run(); err != nil {
		return err
	}
	return nil
}

// slots returns the snapshot store, or nil when no config dir is available.
func slots() console.Store {
	s, err := store.Default()
	if err != nil {
		system.Logger.Warn("snapshots disabled", "err", err)
		return nil
	}
	return s
}
