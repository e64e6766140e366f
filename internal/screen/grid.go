package screen

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

type cell struct {
	r     rune
	style Style
	// cont marks the second column of a double-width rune.
	cont bool
}

// Grid is an in-memory Surface of w×h cells.
type Grid struct {
	w, h  int
	cells [][]cell
}

func NewGrid(w, h int) *Grid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	g := &Grid{w: w, h: h, cells: make([][]cell, h)}
	for y := range g.cells {
		row := make([]cell, w)
		for x := range row {
			row[x] = cell{r: ' '}
		}
		g.cells[y] = row
	}
	return g
}

func (g *Grid) Size() (int, int) {
	if g == nil {
		return 0, 0
	}
	return g.w, g.h
}

func (g *Grid) Measure(s string) int { return runewidth.StringWidth(s) }

// FillText writes s starting at column x, clipping at the right edge.
func (g *Grid) FillText(x, y int, s string, st Style) {
	if g == nil || y < 0 || y >= g.h {
		return
	}
	row := g.cells[y]
	for _, r := range s {
		if r == '\t' || r < ' ' {
			r = ' '
		}
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if x+rw > g.w {
			return
		}
		if x >= 0 {
			row[x] = cell{r: r, style: st}
			if rw == 2 {
				row[x+1] = cell{r: ' ', style: st, cont: true}
			}
		}
		x += rw
	}
}

// FillRect restyles a block of cells, keeping their runes.
func (g *Grid) FillRect(x, y, w, h int, st Style) {
	if g == nil {
		return
	}
	for yy := max(y, 0); yy < y+h && yy < g.h; yy++ {
		for xx := max(x, 0); xx < x+w && xx < g.w; xx++ {
			g.cells[yy][xx].style = st
		}
	}
}

// Rows returns the plain text of every row with trailing blanks removed.
func (g *Grid) Rows() []string {
	if g == nil {
		return nil
	}
	out := make([]string, g.h)
	for y, row := range g.cells {
		var b strings.Builder
		for _, c := range row {
			if !c.cont {
				b.WriteRune(c.r)
			}
		}
		out[y] = strings.TrimRight(b.String(), " ")
	}
	return out
}

// Render returns the grid as styled terminal text. Runs of equal style are
// rendered with the matching lipgloss style; styles missing from the map
// are written plain.
func (g *Grid) Render(styles map[Style]lipgloss.Style) string {
	if g == nil {
		return ""
	}
	rows := make([]string, g.h)
	for y, row := range g.cells {
		var (
			b   strings.Builder
			run strings.Builder
			cur Style
		)
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if ls, ok := styles[cur]; ok {
				b.WriteString(ls.Render(run.String()))
			} else {
				b.WriteString(run.String())
			}
			run.Reset()
		}
		for x, c := range row {
			if c.cont {
				continue
			}
			if x == 0 || c.style != cur {
				flush()
				cur = c.style
			}
			run.WriteRune(c.r)
		}
		flush()
		rows[y] = b.String()
	}
	return strings.Join(rows, "\n")
}
