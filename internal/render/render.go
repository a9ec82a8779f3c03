package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/vancomm/textsweeper/internal/board"
)

// Glyphs picks the text drawn for each kind of cell. Open numbered cells
// are drawn as their digit.
type Glyphs struct {
	Closed, Flagged, Marked, Mine, Empty string
}

var DefaultGlyphs = Glyphs{
	Closed:  "█",
	Flagged: "!",
	Marked:  "?",
	Mine:    "*",
	Empty:   ".",
}

// View is the read-only board surface needed to draw the grid.
type View interface {
	Width() int
	Height() int
	Cell(x, y int) (board.Cell, bool)
}

type StatusView interface {
	TotalMines() int
	Opened() int
	InPlay() bool
}

func (g Glyphs) cell(c board.Cell) string {
	switch c.State {
	case board.Flagged:
		return g.Flagged
	case board.Marked:
		return g.Marked
	case board.Open:
		fact, _ := c.Fact()
		switch {
		case fact.IsMine():
			return g.Mine
		case fact == 0:
			return g.Empty
		default:
			return fact.String()
		}
	default:
		return g.Closed
	}
}

func pad(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

/*
Render draws the grid: a header of column names, then one line per row
starting with the row number.

	 a b c
	0█ 1 .
	1! ? .
*/
func Render(w io.Writer, v View, g Glyphs) error {
	width, height := v.Width(), v.Height()
	rowWidth := len(strconv.Itoa(max(height-1, 0)))
	colWidth := max(len(board.ColumnName(max(width-1, 0))), 1)

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", rowWidth))
	for x := range width {
		b.WriteString(pad(board.ColumnName(x), colWidth) + " ")
	}
	b.WriteString("\n")

	for y := range height {
		fmt.Fprintf(&b, "%*d", rowWidth, y)
		for x := range width {
			c, _ := v.Cell(x, y)
			b.WriteString(pad(g.cell(c), colWidth) + " ")
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func Status(w io.Writer, v StatusView) error {
	_, err := fmt.Fprintf(w, "mines: %d  open: %d\n", v.TotalMines(), v.Opened())
	if err == nil && !v.InPlay() {
		_, err = io.WriteString(w, "BOOM! game over\n")
	}
	return err
}
