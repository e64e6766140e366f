package console

// Key is an editor key, already decoded from whatever input device sent it.
type Key int

const (
	KeyOther Key = iota
	KeyRune
	KeyEnter
	KeyBackspace
	KeyDelete
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyCopy
	KeyPaste
	KeySave
	KeyRestore
)

// Event is one key press. Runes is set for KeyRune; Shift only matters for
// KeyEnter. Name is the raw key name, used for logging ignored keys.
type Event struct {
	Key   Key
	Runes []rune
	Shift bool
	Name  string
}

// Outcome tells the host what to do after a key was handled.
type Outcome struct {
	// Paste asks the host to read the clipboard and call Paste with it.
	Paste bool
	// Submitted is set when Enter ran the input line.
	Submitted bool
	// Ignored is set when the key changed nothing.
	Ignored bool
}

// HandleKey applies one key event to the input line.
func (in *Interpreter) HandleKey(ev Event) Outcome {
	if !in.allowInput {
		return Outcome{Ignored: true}
	}
	switch ev.Key {
	case KeyRune:
		if len(ev.Runes) == 0 {
			return Outcome{Ignored: true}
		}
		in.insert(ev.Runes)
	case KeyEnter:
		if ev.Shift {
			in.insert([]rune{'\n'})
			break
		}
		line := string(in.current)
		in.setInput(nil)
		in.Submit(line)
		return Outcome{Submitted: true}
	case KeyBackspace:
		if in.cursor > 0 {
			in.current = append(in.current[:in.cursor-1], in.current[in.cursor:]...)
			in.cursor--
		}
	case KeyDelete:
		if in.cursor < len(in.current) {
			in.current = append(in.current[:in.cursor], in.current[in.cursor+1:]...)
		}
	case KeyLeft:
		if in.cursor > 0 {
			in.cursor--
		}
	case KeyRight:
		if in.cursor < len(in.current) {
			in.cursor++
		}
	case KeyUp:
		if in.historyPos > 0 && len(in.history) > 0 {
			in.historyPos--
			in.setInput([]rune(in.history[in.historyPos]))
		}
	case KeyDown:
		if in.historyPos < len(in.history)-1 {
			in.historyPos++
			in.setInput([]rune(in.history[in.historyPos]))
		} else {
			in.historyPos = len(in.history)
			in.setInput(nil)
		}
	case KeyCopy:
		in.copyLine()
	case KeyPaste:
		return Outcome{Paste: true}
	case KeySave:
		if err := in.Save(); err != nil {
			in.log.Warn("snapshot save failed", "err", err)
		}
	case KeyRestore:
		in.Restore()
	default:
		in.log.Debug("ignored key", "key", ev.Name)
		return Outcome{Ignored: true}
	}
	in.clampCursor()
	return Outcome{}
}

func (in *Interpreter) insert(rs []rune) {
	in.clampCursor()
	next := make([]rune, 0, len(in.current)+len(rs))
	next = append(next, in.current[:in.cursor]...)
	next = append(next, rs...)
	next = append(next, in.current[in.cursor:]...)
	in.current = next
	in.cursor += len(rs)
}

// setInput replaces the input line and parks the cursor at its end.
func (in *Interpreter) setInput(rs []rune) {
	in.current = rs
	in.cursor = len(rs)
}

func (in *Interpreter) clampCursor() {
	if in.cursor < 0 {
		in.cursor = 0
	}
	if in.cursor > len(in.current) {
		in.cursor = len(in.current)
	}
}

func (in *Interpreter) copyLine() {
	text := string(in.current)
	in.Emit(NewLine(text, Input))
	if in.clip != nil {
		if err := in.clip.WriteAll(text); err != nil {
			in.log.Warn("clipboard write failed", "err", err)
		}
	}
	in.setInput(nil)
}
