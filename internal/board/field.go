package board

import (
	"iter"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

// MineField is the immutable ground truth of a game: a width x height grid
// of facts stored row by row.
type MineField struct {
	width, height int
	facts         []Fact
	mines         int
}

/*
NewMineField draws mineCount (x, y) pairs uniformly from the grid with
replacement. Duplicate draws land on the same cell, so the field may hold
fewer mines than requested; [MineField.Mines] reports the real number.
*/
func NewMineField(width, height, mineCount int, r *rand.Rand) *MineField {
	width, height, mineCount = max(width, 0), max(height, 0), max(mineCount, 0)

	var drawn []Point
	if width > 0 && height > 0 {
		drawn = make([]Point, 0, mineCount)
		for range mineCount {
			drawn = append(drawn, Point{X: r.IntN(width), Y: r.IntN(height)})
		}
	}

	f := MineFieldFromMines(width, height, drawn...)
	Log.WithFields(logrus.Fields{
		"width":     width,
		"height":    height,
		"requested": mineCount,
		"placed":    f.mines,
	}).Debug("generated mine field")
	return f
}

// MineFieldFromMines builds a field with mines at the given points. Points
// outside the grid are ignored, repeated points count once.
func MineFieldFromMines(width, height int, mines ...Point) *MineField {
	width, height = max(width, 0), max(height, 0)
	f := &MineField{
		width:  width,
		height: height,
		facts:  make([]Fact, width*height),
	}

	for _, p := range mines {
		if f.InBounds(p.X, p.Y) {
			f.facts[p.Y*width+p.X] = Mine
		}
	}

	for y := range height {
		for x := range width {
			i := y*width + x
			if f.facts[i].IsMine() {
				f.mines++
				continue
			}
			var n Fact
			for q := range f.Neighbors(x, y) {
				if f.facts[q.Y*width+q.X].IsMine() {
					n++
				}
			}
			f.facts[i] = n
		}
	}

	return f
}

func (f *MineField) Width() int {
	return f.width
}

func (f *MineField) Height() int {
	return f.height
}

// Mines is the number of cells holding a mine.
func (f *MineField) Mines() int {
	return f.mines
}

func (f *MineField) InBounds(x, y int) bool {
	return 0 <= x && x < f.width && 0 <= y && y < f.height
}

// Fact returns the fact at (x, y); ok is false outside the grid.
func (f *MineField) Fact(x, y int) (fact Fact, ok bool) {
	if !f.InBounds(x, y) {
		return 0, false
	}
	return f.facts[y*f.width+x], true
}

// Neighbors yields the in-bounds cells around (x, y), excluding (x, y)
// itself. The center does not have to lie inside the grid.
func (f *MineField) Neighbors(x, y int) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				if xx, yy := x+dx, y+dy; f.InBounds(xx, yy) {
					if !yield(Point{X: xx, Y: yy}) {
						return
					}
				}
			}
		}
	}
}
