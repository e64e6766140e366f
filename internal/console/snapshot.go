package console

import (
	"encoding/json"
	"errors"
	"unicode/utf8"

	"maraos/internal/vfs"
)

// Slot keys used in the Store.
const (
	SnapshotKey = "console"
	HistoryKey  = "history"
)

// Snapshot is the saved console session.
type Snapshot struct {
	CurrentLine    string `json:"currentLine"`
	CursorPosition int    `json:"cursorPosition"`
	Lines          []Line `json:"lines"`
	CurrentPath    string `json:"currentPath"`
}

var errNoStore = errors.New("no snapshot store configured")

// Snapshot captures the current session state.
func (in *Interpreter) Snapshot() Snapshot {
	return Snapshot{
		CurrentLine:    string(in.current),
		CursorPosition: in.cursor,
		Lines:          in.Lines(),
		CurrentPath:    in.path,
	}
}

// Save writes the session to the snapshot slot.
func (in *Interpreter) Save() error {
	if in.store == nil {
		return errNoStore
	}
	b, err := json.Marshal(in.Snapshot())
	if err != nil {
		return err
	}
	return in.store.Put(SnapshotKey, b)
}

// Restore loads the snapshot slot. A missing or corrupt snapshot restores
// an empty session at the default path.
func (in *Interpreter) Restore() {
	var snap Snapshot
	if in.store == nil {
		in.log.Warn("snapshot restore skipped", "err", errNoStore)
	} else if b, err := in.store.Get(SnapshotKey); err != nil {
		in.log.Debug("no snapshot to restore", "err", err)
	} else if err := json.Unmarshal(b, &snap); err != nil {
		in.log.Warn("corrupt snapshot ignored", "err", err)
		snap = Snapshot{}
	}
	in.Apply(snap)
}

// Apply replaces the session state with snap, filling in defaults.
func (in *Interpreter) Apply(snap Snapshot) {
	lines := make([]Line, 0, len(snap.Lines))
	for _, saved := range snap.Lines {
		l := NewLine(saved.Original, saved.Kind)
		l.Display = saved.Display
		if saved.Anim != nil {
			a := *saved.Anim
			l.Anim = &a
		}
		lines = append(lines, l)
	}
	in.lines = lines
	in.current = []rune(snap.CurrentLine)
	in.cursor = snap.CursorPosition
	if in.cursor > utf8.RuneCountInString(snap.CurrentLine) || in.cursor < 0 {
		in.cursor = len(in.current)
	}
	in.path = in.defaultPath
	if snap.CurrentPath != "" {
		in.path = vfs.Normalize(snap.CurrentPath)
	}
}

func (in *Interpreter) loadHistory() []string {
	if in.store == nil {
		return nil
	}
	b, err := in.store.Get(HistoryKey)
	if err != nil {
		return nil
	}
	var h []string
	if err := json.Unmarshal(b, &h); err != nil {
		in.log.Warn("corrupt history ignored", "err", err)
		return nil
	}
	if over := len(h) - in.historyLimit; over > 0 {
		h = h[over:]
	}
	return h
}

func (in *Interpreter) saveHistory() {
	if in.store == nil {
		return
	}
	b, err := json.Marshal(in.history)
	if err != nil {
		return
	}
	if err := in.store.Put(HistoryKey, b); err != nil {
		in.log.Warn("history save failed", "err", err)
	}
}
