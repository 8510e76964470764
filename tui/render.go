package tui

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/replay"
)

// CellWidth is the number of columns one cell occupies.
const CellWidth = 3

// glyphs are the plain-mode symbols per state.
var glyphs = map[replay.CellState]string{
	replay.StateDefault:   ".",
	replay.StateExpensive: "#",
	replay.StateInfinity:  "X",
	replay.StateStart:     "S",
	replay.StateEnd:       "E",
	replay.StatePath:      "*",
	replay.StateVisited:   "o",
	replay.StateFrontier:  "+",
}

// palette holds the background color per state.
var palette = map[replay.CellState]lipgloss.Color{
	replay.StateDefault:   lipgloss.Color("236"),
	replay.StateExpensive: lipgloss.Color("94"),
	replay.StateInfinity:  lipgloss.Color("16"),
	replay.StateStart:     lipgloss.Color("34"),
	replay.StateEnd:       lipgloss.Color("160"),
	replay.StatePath:      lipgloss.Color("220"),
	replay.StateVisited:   lipgloss.Color("24"),
	replay.StateFrontier:  lipgloss.Color("37"),
}

var (
	cellStyle   = lipgloss.NewStyle().Width(CellWidth).Align(lipgloss.Right).Foreground(lipgloss.Color("255"))
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// Render draws the board one text line per row. With styled set, each cell is
// a colored block showing its label; otherwise each cell is its label or the
// plain glyph for its state, right-aligned in CellWidth columns.
func Render(b *replay.Board, styled bool) string {
	var sb strings.Builder
	for r := 0; r < b.Rows(); r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < b.Columns(); c++ {
			at := gridgraph.Coord{Row: r, Column: c}
			sb.WriteString(renderCell(b.State(at), b.Text(at), styled))
		}
	}

	return sb.String()
}

func renderCell(s replay.CellState, label string, styled bool) string {
	text := fit(label)
	if styled {
		return cellStyle.Background(palette[s]).Render(text)
	}
	if text == "" {
		text = glyphs[s]
	}

	return strings.Repeat(" ", CellWidth-utf8.RuneCountInString(text)) + text
}

// fit clips a label to CellWidth; overlong labels become a run of '+'.
func fit(label string) string {
	if utf8.RuneCountInString(label) > CellWidth {
		return strings.Repeat("+", CellWidth)
	}

	return label
}
