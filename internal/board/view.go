package board

import (
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

// View is the board as the player sees it. It owns the [MineField] it was
// built with and never changes it. A View is not safe for concurrent use.
type View struct {
	field    *MineField
	states   []State
	gameOver bool
	total    int
	opened   int
}

func New(width, height, mineCount int) *View {
	r := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	return NewWithRand(width, height, mineCount, r)
}

func NewWithRand(width, height, mineCount int, r *rand.Rand) *View {
	return NewFromField(NewMineField(width, height, mineCount, r))
}

func NewFromField(f *MineField) *View {
	return &View{
		field:  f,
		states: make([]State, len(f.facts)),
		total:  f.Mines(),
	}
}

func (v *View) Width() int {
	return v.field.width
}

func (v *View) Height() int {
	return v.field.height
}

// InPlay is false once a mine has been opened. It is the only end of game
// signal; opening every safe cell does not end the game.
func (v *View) InPlay() bool {
	return !v.gameOver
}

// TotalMines is the number of mines actually placed on the field.
func (v *View) TotalMines() int {
	return v.total
}

// Opened is the number of open cells.
func (v *View) Opened() int {
	return v.opened
}

func (v *View) Cell(x, y int) (Cell, bool) {
	if !v.field.InBounds(x, y) {
		return Cell{}, false
	}
	i := y*v.field.width + x
	return Cell{State: v.states[i], fact: v.field.facts[i]}, true
}

func (v *View) Select(column string, row int) Outcome {
	return v.SelectAt(ColumnIndex(column), row)
}

func (v *View) Flag(column string, row int) Outcome {
	return v.FlagAt(ColumnIndex(column), row)
}

func (v *View) Mark(column string, row int) Outcome {
	return v.MarkAt(ColumnIndex(column), row)
}

func (v *View) Unfold(column string, row int) Outcome {
	x := ColumnIndex(column)
	if x == BadColumn {
		return OutOfRange
	}
	return v.UnfoldAt(x, row)
}

// SelectAt opens a closed cell. Opening a cell with no adjacent mines opens
// its neighbours too, spreading through the whole zero region.
func (v *View) SelectAt(x, y int) Outcome {
	if !v.field.InBounds(x, y) {
		return OutOfRange
	}
	if v.states[y*v.field.width+x] != Closed {
		return NoOp
	}
	v.open(Point{X: x, Y: y})
	return Applied
}

func (v *View) FlagAt(x, y int) Outcome {
	return v.toggle(x, y, Flagged)
}

func (v *View) MarkAt(x, y int) Outcome {
	return v.toggle(x, y, Marked)
}

/*
UnfoldAt opens every closed neighbour of (x, y) whatever the center holds.
The center itself is left alone and may even lie outside the grid, as long
as some neighbour is inside it.
*/
func (v *View) UnfoldAt(x, y int) Outcome {
	outcome := OutOfRange
	for p := range v.field.Neighbors(x, y) {
		if outcome == OutOfRange {
			outcome = NoOp
		}
		if v.states[p.Y*v.field.width+p.X] == Closed {
			v.open(p)
			outcome = Applied
		}
	}
	return outcome
}

// toggle switches a cell between Closed and s. Cells in any other state are
// left as they are.
func (v *View) toggle(x, y int, s State) Outcome {
	if !v.field.InBounds(x, y) {
		return OutOfRange
	}
	i := y*v.field.width + x
	switch v.states[i] {
	case Closed:
		v.states[i] = s
	case s:
		v.states[i] = Closed
	default:
		return NoOp
	}
	return Applied
}

// open reveals start and, through an explicit stack, every closed cell
// reachable from it across zero cells.
func (v *View) open(start Point) {
	w := v.field.width
	stack := []Point{start}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		i := p.Y*w + p.X
		if v.states[i] != Closed {
			continue
		}
		v.states[i] = Open
		v.opened++

		switch fact := v.field.facts[i]; {
		case fact.IsMine():
			v.gameOver = true
			Log.WithFields(logrus.Fields{"x": p.X, "y": p.Y}).Debug("mine detonated")
		case fact == 0:
			for q := range v.field.Neighbors(p.X, p.Y) {
				if v.states[q.Y*w+q.X] == Closed {
					stack = append(stack, q)
				}
			}
		}
	}
}
