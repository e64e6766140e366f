package screen

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Wrap breaks text into rows no wider than width cells by packing words
// greedily. A word wider than width gets a row of its own and is not split.
// A nil measure counts cells with ansi.StringWidth.
func Wrap(text string, width int, measure func(string) int) []string {
	if measure == nil {
		measure = ansi.StringWidth
	}
	if width <= 0 {
		return []string{text}
	}
	var (
		rows []string
		cur  string
	)
	for _, word := range strings.Split(text, " ") {
		next := word
		if cur != "" {
			next = cur + " " + word
		}
		if measure(next) > width && cur != "" {
			rows = append(rows, cur)
			cur = word
			continue
		}
		cur = next
	}
	return append(rows, cur)
}
