// Package screen paints console state onto a character-cell surface. It only
// reads interpreter state; stepping animations is the caller's job.
package screen

// Style is a logical paint style. Hosts map it to real colors.
type Style int

const (
	StyleOutput Style = iota
	StyleEcho
	StyleInput
	StyleCursor
)

// Surface is a paintable area measured in terminal cells.
type Surface interface {
	Size() (w, h int)
	Measure(s string) int
	FillText(x, y int, s string, st Style)
	FillRect(x, y, w, h int, st Style)
}
