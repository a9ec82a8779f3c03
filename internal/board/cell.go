package board

import "strconv"

// Fact is the ground truth of a cell: either [Mine] or the number of
// neighbouring mines (0 to 8).
type Fact int8

const Mine Fact = -1

func (f Fact) IsMine() bool {
	return f == Mine
}

// Count returns the adjacent mine count, or -1 for a mine.
func (f Fact) Count() int {
	return int(f)
}

func (f Fact) String() string {
	if f.IsMine() {
		return "*"
	}
	return strconv.Itoa(int(f))
}

// State is what the player knows about a cell.
type State int8

const (
	Closed State = iota
	Open
	Flagged
	Marked
)

func (s State) String() string {
	switch s {
	case Closed:
		return "closed"
	case Open:
		return "open"
	case Flagged:
		return "flagged"
	case Marked:
		return "marked"
	default:
		return "state(" + strconv.Itoa(int(s)) + ")"
	}
}

// Outcome tells the caller what a player action did.
type Outcome int8

const (
	// Applied means the action changed the board.
	Applied Outcome = iota
	// NoOp means the coordinates were valid but the cell state did not
	// allow the action (e.g. selecting an open cell).
	NoOp
	// OutOfRange means the coordinates resolved outside the grid.
	OutOfRange
)

func (o Outcome) String() string {
	switch o {
	case Applied:
		return "applied"
	case NoOp:
		return "no-op"
	case OutOfRange:
		return "out of range"
	default:
		return "outcome(" + strconv.Itoa(int(o)) + ")"
	}
}

// Cell is the player visible part of a grid cell.
type Cell struct {
	State State
	fact  Fact
}

// Fact reports the underlying fact of an open cell. For any other state
// the fact is hidden and ok is false.
func (c Cell) Fact() (fact Fact, ok bool) {
	if c.State != Open {
		return 0, false
	}
	return c.fact, true
}

type Point struct {
	X, Y int
}
