package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"maraos/internal/console"
	"maraos/internal/vfs"
)

// Options wires the TUI to an interpreter.
type Options struct {
	Interpreter   *console.Interpreter
	Prompt        string
	FrameInterval time.Duration
	BlinkInterval time.Duration
	// CatalogSource is reloaded into the interpreter whenever the file changes.
	// Empty and URL sources are not watched.
	CatalogSource  string
	CatalogTimeout time.Duration
}

type model struct {
	in     *console.Interpreter
	prompt string
	frame  time.Duration
	blink  time.Duration

	width  int
	height int

	keys keyMap
	help help.Model

	// overlay panel for executable files
	overlayVP     viewport.Model
	overlayTitle  string
	overlayWidth  int
	overlayLoaded bool

	source  string
	timeout time.Duration
	watchCh <-chan struct{}
	ctx     context.Context
	cancel  context.CancelFunc

	quitting bool
}

func newModel(opts Options) model {
	in := opts.Interpreter
	if in == nil {
		in = console.New(console.Options{})
	}
	m := model{
		in:      in,
		prompt:  opts.Prompt,
		frame:   opts.FrameInterval,
		blink:   opts.BlinkInterval,
		keys:    defaultKeyMap(),
		help:    help.New(),
		source:  opts.CatalogSource,
		timeout: opts.CatalogTimeout,
	}
	if m.prompt == "" {
		m.prompt = "~$ "
	}
	if m.frame <= 0 {
		m.frame = 16 * time.Millisecond
	}
	if m.blink <= 0 {
		m.blink = 500 * time.Millisecond
	}
	if m.timeout <= 0 {
		m.timeout = 5 * time.Second
	}
	m.ctx, m.cancel = context.WithCancel(context.Background())
	m.help.Styles.ShortKey = m.help.Styles.ShortKey.Foreground(CRT.Dim)
	m.help.Styles.ShortDesc = m.help.Styles.ShortDesc.Foreground(CRT.Faint)
	m.help.Styles.ShortSeparator = m.help.Styles.ShortSeparator.Foreground(CRT.Faint)
	return m
}

// New returns the console TUI model.
func New(opts Options) tea.Model { return newModel(opts) }

func (m model) Init() tea.Cmd {
	cmds := []tea.Cmd{frameCmd(m.frame), blinkCmd(m.blink)}
	if vfs.IsFileSource(m.source) {
		cmds = append(cmds, watchCatalogCmd(m.ctx, m.source))
	}
	return tea.Batch(cmds...)
}

func frameCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func blinkCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return blinkMsg(t) })
}
