package ui

import (
	"strings"

	ansi "github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/lipgloss"

	"maraos/internal/screen"
)

// crtTheme is the phosphor-green palette of the console.
type crtTheme struct {
	Green  lipgloss.Color // #00ff00
	Dim    lipgloss.Color // #00aa00
	Faint  lipgloss.Color // #0b5d1e
	Amber  lipgloss.Color // #ffb000
	Bg     lipgloss.Color // #001400
	BgSoft lipgloss.Color // #002a00
	Border lipgloss.Color // #0b5d1e

	OnAccent lipgloss.Color // #001400
}

// CRT is the global console theme.
var CRT = crtTheme{
	Green:  lipgloss.Color("#00ff00"),
	Dim:    lipgloss.Color("#00aa00"),
	Faint:  lipgloss.Color("#0b5d1e"),
	Amber:  lipgloss.Color("#ffb000"),
	Bg:     lipgloss.Color("#001400"),
	BgSoft: lipgloss.Color("#002a00"),
	Border: lipgloss.Color("#0b5d1e"),

	OnAccent: lipgloss.Color("#001400"),
}

// gridStyles maps painter styles to terminal colors.
func gridStyles() map[screen.Style]lipgloss.Style {
	base := lipgloss.NewStyle().Background(CRT.Bg)
	return map[screen.Style]lipgloss.Style{
		screen.StyleOutput: base.Foreground(CRT.Green),
		screen.StyleEcho:   base.Foreground(CRT.Dim),
		screen.StyleInput:  base.Foreground(CRT.Green).Bold(true),
		screen.StyleCursor: lipgloss.NewStyle().Foreground(CRT.OnAccent).Background(CRT.Green),
	}
}

// Button renders a small accent button label.
func Button(s string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(CRT.OnAccent).Background(CRT.Green).Padding(0, 1).Render(s)
}

func overlayBoxStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(CRT.Dim).
		Background(CRT.Bg).
		Padding(0, 1)
}

func overlayTitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(CRT.Amber)
}

// crtGlamour is a glamour style config in the CRT palette, used for the
// contents of executable files.
func crtGlamour() ansi.StyleConfig {
	hex := func(c lipgloss.Color) string { return strings.ToLower(string(c)) }
	sp := func(s string) *string { return &s }
	bp := func(b bool) *bool { return &b }

	green := hex(CRT.Green)
	dim := hex(CRT.Dim)
	faint := hex(CRT.Faint)
	amber := hex(CRT.Amber)
	bgSoft := hex(CRT.BgSoft)

	heading := ansi.StyleBlock{StylePrimitive: ansi.StylePrimitive{Color: sp(amber), Bold: bp(true)}}
	return ansi.StyleConfig{
		Document:  ansi.StyleBlock{StylePrimitive: ansi.StylePrimitive{Color: sp(green)}},
		Paragraph: ansi.StyleBlock{StylePrimitive: ansi.StylePrimitive{Color: sp(green)}},
		BlockQuote: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{Color: sp(dim), Italic: bp(true)},
		},
		Heading: heading,
		H1:      heading,
		H2:      heading,
		H3:      heading,
		H4:      heading,
		H5:      heading,
		H6:      heading,

		Text:           ansi.StylePrimitive{Color: sp(green)},
		Emph:           ansi.StylePrimitive{Italic: bp(true)},
		Strong:         ansi.StylePrimitive{Bold: bp(true)},
		Strikethrough:  ansi.StylePrimitive{CrossedOut: bp(true)},
		HorizontalRule: ansi.StylePrimitive{Color: sp(faint)},

		Link:     ansi.StylePrimitive{Color: sp(amber), Underline: bp(true)},
		LinkText: ansi.StylePrimitive{Color: sp(amber), Underline: bp(true)},

		Item:        ansi.StylePrimitive{BlockPrefix: "• "},
		Enumeration: ansi.StylePrimitive{BlockPrefix: ". "},

		Code: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{Color: sp(amber), BackgroundColor: sp(bgSoft)},
		},
		CodeBlock: ansi.StyleCodeBlock{
			StyleBlock: ansi.StyleBlock{
				StylePrimitive: ansi.StylePrimitive{Color: sp(green), BackgroundColor: sp(bgSoft)},
			},
		},
		Table: ansi.StyleTable{
			StyleBlock:      ansi.StyleBlock{StylePrimitive: ansi.StylePrimitive{Color: sp(green)}},
			CenterSeparator: sp("┼"),
			ColumnSeparator: sp("│"),
			RowSeparator:    sp("─"),
		},
	}
}
