package console

import (
	"fmt"
	"strings"
	"time"

	clog "github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/sahilm/fuzzy"

	"maraos/internal/profile"
	"maraos/internal/system"
	"maraos/internal/vfs"
)

const (
	DefaultPath         = "C:/desktop"
	DefaultHistoryLimit = 50
)

// Store is a named-slot key/value store for snapshots and history.
type Store interface {
	Get(key string) ([]byte, error)
	Put(key string, data []byte) error
}

// Clipboard is the system clipboard. Reads happen outside the interpreter
// and come back through Paste.
type Clipboard interface {
	WriteAll(text string) error
}

// Overlay is the info panel requested by running an executable file.
type Overlay struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type Options struct {
	Catalog      *vfs.Catalog
	Profile      profile.Profile
	Registry     *Registry
	DefaultPath  string
	HistoryLimit int
	// Boot plays the startup animation instead of going straight to the prompt.
	Boot      bool
	Store     Store
	Clipboard Clipboard
	Logger    *clog.Logger
	Now       func() time.Time
	Version   string
	// OnCommand is told about every dispatched command name.
	OnCommand func(name string, found bool)
}

// Interpreter owns the console state. It is not safe for concurrent use;
// callers serialize key events, ticks and pastes.
type Interpreter struct {
	id       string
	catalog  *vfs.Catalog
	caller   profile.Profile
	registry *Registry
	store    Store
	clip     Clipboard
	log      *clog.Logger
	now      func() time.Time
	version  string
	onCmd    func(string, bool)

	defaultPath  string
	historyLimit int

	lines         []Line
	current       []rune
	cursor        int
	cursorVisible bool
	path          string
	allowInput    bool

	history    []string
	historyPos int

	overlay     Overlay
	showOverlay bool
}

func New(opts Options) *Interpreter {
	in := &Interpreter{
		id:            uuid.NewString(),
		catalog:       opts.Catalog,
		caller:        opts.Profile,
		registry:      opts.Registry,
		store:         opts.Store,
		clip:          opts.Clipboard,
		log:           opts.Logger,
		now:           opts.Now,
		version:       opts.Version,
		onCmd:         opts.OnCommand,
		defaultPath:   vfs.Normalize(opts.DefaultPath),
		historyLimit:  opts.HistoryLimit,
		cursorVisible: true,
	}
	if in.catalog == nil {
		in.catalog = vfs.NewCatalog(nil)
	}
	if in.registry == nil {
		in.registry = DefaultRegistry()
	}
	if in.log == nil {
		in.log = system.Logger
	}
	in.log = in.log.With("session", in.id[:8])
	if in.now == nil {
		in.now = time.Now
	}
	if in.version == "" {
		in.version = "1.0.0"
	}
	if strings.TrimSpace(opts.DefaultPath) == "" {
		in.defaultPath = DefaultPath
	}
	if in.historyLimit <= 0 {
		in.historyLimit = DefaultHistoryLimit
	}
	in.path = in.defaultPath
	in.history = in.loadHistory()
	in.historyPos = len(in.history)
	if opts.Boot {
		in.boot()
	} else {
		startup(in)
	}
	return in
}

func (in *Interpreter) ID() string { return in.id }

// Lines returns a copy of the scrollback, oldest first.
func (in *Interpreter) Lines() []Line {
	out := make([]Line, len(in.lines))
	for i, l := range in.lines {
		out[i] = l.clone()
	}
	return out
}

func (in *Interpreter) Input() string       { return string(in.current) }
func (in *Interpreter) Cursor() int         { return in.cursor }
func (in *Interpreter) CursorVisible() bool { return in.cursorVisible }
func (in *Interpreter) ToggleCursor()       { in.cursorVisible = !in.cursorVisible }

// AcceptingInput is false while the boot animation runs.
func (in *Interpreter) AcceptingInput() bool { return in.allowInput }

func (in *Interpreter) Path() string { return in.path }

func (in *Interpreter) SetPath(p string) { in.path = vfs.Normalize(p) }

func (in *Interpreter) Catalog() *vfs.Catalog { return in.catalog }

// SetCatalog swaps the file list, e.g. after the manifest was reloaded.
func (in *Interpreter) SetCatalog(c *vfs.Catalog) {
	if c == nil {
		c = vfs.NewCatalog(nil)
	}
	in.catalog = c
}

func (in *Interpreter) Profile() profile.Profile { return in.caller }

func (in *Interpreter) Commands() []string { return in.registry.Names() }

func (in *Interpreter) ShowOverlay(title, content string) {
	in.overlay = Overlay{Title: title, Content: content}
	in.showOverlay = true
}

func (in *Interpreter) Overlay() (Overlay, bool) { return in.overlay, in.showOverlay }

func (in *Interpreter) HideOverlay() { in.showOverlay = false }

func (in *Interpreter) Print(text string) { in.Emit(NewLine(text, Output)) }

func (in *Interpreter) Emit(l Line) { in.lines = append(in.lines, l) }

// Clear empties the scrollback.
func (in *Interpreter) Clear() { in.lines = nil }

// History returns remembered commands, oldest first.
func (in *Interpreter) History() []string { return append([]string(nil), in.history...) }

// Animating reports whether any line still changes on Tick.
func (in *Interpreter) Animating() bool {
	for _, l := range in.lines {
		if l.Animated() {
			return true
		}
	}
	return false
}

// Tick advances every running animation by one frame. Stages of bars that
// completed on this frame run afterwards, in scrollback order.
func (in *Interpreter) Tick() {
	var finished []string
	for i := range in.lines {
		if in.lines[i].step() && in.lines[i].Anim.Stage != "" {
			finished = append(finished, in.lines[i].Anim.Stage)
		}
	}
	for _, stage := range finished {
		in.runStage(stage)
	}
}

// Paste inserts text at the cursor. It applies to whatever the input line
// holds when the clipboard read completes.
func (in *Interpreter) Paste(text string) {
	if text == "" {
		return
	}
	in.insert([]rune(text))
}

// Submit echoes line into the scrollback, records it in history and runs
// it. Blank lines are ignored.
func (in *Interpreter) Submit(line string) {
	if strings.TrimSpace(line) == "" {
		return
	}
	in.Emit(NewLine(line, Input))
	in.remember(line)
	name, args, _ := strings.Cut(strings.TrimSpace(line), " ")
	in.dispatch(name, strings.TrimSpace(args))
}

func (in *Interpreter) dispatch(name, args string) {
	h, ok := in.registry.Lookup(name)
	if in.onCmd != nil {
		in.onCmd(name, ok)
	}
	if !ok {
		in.Print(fmt.Sprintf("syntax error: '%s' is not a recognized command", name))
		if s := in.suggest(name); s != "" {
			in.Print(fmt.Sprintf("Did you mean '%s'?", s))
		}
		return
	}
	defer func() {
		if r := recover(); r != nil {
			in.log.Error("command panicked", "command", name, "panic", r)
			in.Print(fmt.Sprintf("%s: internal error", name))
		}
	}()
	in.log.Debug("dispatch", "command", name, "args", args, "path", in.path)
	h(in, in.caller, in, name, args)
}

func (in *Interpreter) suggest(name string) string {
	matches := fuzzy.Find(name, in.registry.Names())
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Str
}

func (in *Interpreter) remember(line string) {
	in.history = append(in.history, line)
	if over := len(in.history) - in.historyLimit; over > 0 {
		in.history = append([]string(nil), in.history[over:]...)
	}
	in.historyPos = len(in.history)
	in.saveHistory()
}
