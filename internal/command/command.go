package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vancomm/textsweeper/internal/board"
)

var (
	ErrEmpty      = errors.New("empty command")
	ErrMissingRow = errors.New("missing row number")
	ErrBadRow     = errors.New("row must be a non-negative int")
)

type Kind int8

const (
	Quit Kind = iota
	Select
	Flag
	Mark
	Unfold
)

func (k Kind) String() string {
	switch k {
	case Quit:
		return "quit"
	case Select:
		return "select"
	case Flag:
		return "flag"
	case Mark:
		return "mark"
	case Unfold:
		return "unfold"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Maps command prefixes to the action they request. A command without a
// known prefix is a plain select.
var prefixKinds = map[byte]Kind{
	'!': Flag,
	'?': Mark,
	'#': Unfold,
}

type Command struct {
	Kind   Kind
	Column string
	Row    int
}

// Board is the action surface a command is applied to.
type Board interface {
	Select(column string, row int) board.Outcome
	Flag(column string, row int) board.Outcome
	Mark(column string, row int) board.Outcome
	Unfold(column string, row int) board.Outcome
}

/*
Parse reads one line of player input:

	q            quit
	<col><row>   select
	!<col><row>  flag
	?<col><row>  mark
	#<col><row>  unfold

The column is everything before the trailing run of digits and is passed
on untranslated, so a malformed column is not a parse error.
*/
func Parse(line string) (Command, error) {
	s := strings.TrimSpace(line)
	if s == "" {
		return Command{}, ErrEmpty
	}
	if s == "q" {
		return Command{Kind: Quit}, nil
	}

	c := Command{Kind: Select}
	if k, ok := prefixKinds[s[0]]; ok {
		c.Kind = k
		s = s[1:]
	}

	cut := strings.LastIndexFunc(s, func(r rune) bool {
		return r < '0' || r > '9'
	}) + 1
	c.Column, s = s[:cut], s[cut:]
	if s == "" {
		return Command{}, ErrMissingRow
	}

	row, err := strconv.Atoi(s)
	if err != nil {
		return Command{}, fmt.Errorf("%w: %q", ErrBadRow, s)
	}
	c.Row = row
	return c, nil
}

// Apply runs the command against b. Quit does nothing and reports
// [board.NoOp].
func (c Command) Apply(b Board) board.Outcome {
	switch c.Kind {
	case Select:
		return b.Select(c.Column, c.Row)
	case Flag:
		return b.Flag(c.Column, c.Row)
	case Mark:
		return b.Mark(c.Column, c.Row)
	case Unfold:
		return b.Unfold(c.Column, c.Row)
	default:
		return board.NoOp
	}
}

func (c Command) String() string {
	if c.Kind == Quit {
		return "q"
	}
	prefix := ""
	for p, k := range prefixKinds {
		if k == c.Kind {
			prefix = string(p)
		}
	}
	return prefix + c.Column + strconv.Itoa(c.Row)
}
