package screen

import (
	"strings"

	"maraos/internal/console"
)

// newlineGlyph stands in for embedded newlines on the single input row.
const newlineGlyph = "↵"

// State is what the painter reads from the interpreter.
type State interface {
	Lines() []console.Line
	Input() string
	Cursor() int
	CursorVisible() bool
	AcceptingInput() bool
}

// Paint draws one frame: scrollback bottom-up from the newest line, then
// the input row and cursor on the last row. A nil or empty surface is a
// no-op.
func Paint(s Surface, st State, prompt string) {
	if s == nil || st == nil {
		return
	}
	w, h := s.Size()
	if w <= 0 || h <= 0 {
		return
	}
	y := h - 2
	lines := st.Lines()
	for i := len(lines) - 1; i >= 0 && y >= 0; i-- {
		l := lines[i]
		text, style := l.Display, StyleOutput
		if l.Kind == console.Input {
			text, style = prompt+l.Display, StyleEcho
		}
		var rows []string
		for _, part := range strings.Split(text, "\n") {
			rows = append(rows, Wrap(part, w, s.Measure)...)
		}
		for j := len(rows) - 1; j >= 0 && y >= 0; j-- {
			s.FillText(0, y, rows[j], style)
			y--
		}
	}
	if st.AcceptingInput() {
		paintInput(s, st, prompt, w, h-1)
	}
}

func paintInput(s Surface, st State, prompt string, w, y int) {
	input := []rune(st.Input())
	cursor := st.Cursor()
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(input) {
		cursor = len(input)
	}
	flat := func(rs []rune) string { return strings.ReplaceAll(string(rs), "\n", newlineGlyph) }

	text := prompt + flat(input)
	col := s.Measure(prompt + flat(input[:cursor]))
	// Keep one spare cell for a cursor parked after the last rune.
	if over := s.Measure(text) + 1 - w; over > 0 {
		rs := []rune(text)
		cut := 0
		for cut < len(rs) && s.Measure(string(rs[:cut])) < over {
			cut++
		}
		col -= s.Measure(string(rs[:cut]))
		text = string(rs[cut:])
	}
	s.FillText(0, y, text, StyleInput)
	if st.CursorVisible() && col >= 0 && col < w {
		s.FillRect(col, y, 1, 1, StyleCursor)
	}
}
