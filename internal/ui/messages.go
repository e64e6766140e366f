package ui

import (
	"time"

	"maraos/internal/vfs"
)

// frame and cursor-blink timers
type frameMsg time.Time
type blinkMsg time.Time

// clipboard read finished
type pasteMsg struct {
	text string
	err  error
}

// overlay markdown rendered for a given title and width
type overlayRenderedMsg struct {
	title string
	width int
	out   string
}

// manifest watcher
type watchStartedMsg struct{ ch <-chan struct{} }
type catalogReloadedMsg struct {
	catalog *vfs.Catalog
	err     error
}
