package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/textsweeper/internal/board"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		input   string
		command Command
	}{
		{"q", Command{Kind: Quit}},
		{"  q\n", Command{Kind: Quit}},
		{"a0", Command{Kind: Select, Column: "a", Row: 0}},
		{"j9", Command{Kind: Select, Column: "j", Row: 9}},
		{"aa12", Command{Kind: Select, Column: "aa", Row: 12}},
		{"!b3", Command{Kind: Flag, Column: "b", Row: 3}},
		{"?c4", Command{Kind: Mark, Column: "c", Row: 4}},
		{"#d5", Command{Kind: Unfold, Column: "d", Row: 5}},
		{"Z7", Command{Kind: Select, Column: "Z", Row: 7}},
		{"7", Command{Kind: Select, Column: "", Row: 7}},
		{"!!a1", Command{Kind: Flag, Column: "!a", Row: 1}},
		{"a007", Command{Kind: Select, Column: "a", Row: 7}},
	}
	for _, test := range testCases {
		t.Run(test.input, func(t *testing.T) {
			c, err := Parse(test.input)
			require.NoError(t, err)
			assert.Equal(t, test.command, c)
		})
	}
}

func TestParseErrors(t *testing.T) {
	testCases := []struct {
		input string
		err   error
	}{
		{"", ErrEmpty},
		{"   ", ErrEmpty},
		{"a", ErrMissingRow},
		{"!", ErrMissingRow},
		{"qq", ErrMissingRow},
		{"a1b", ErrMissingRow},
		{"a99999999999999999999999", ErrBadRow},
	}
	for _, test := range testCases {
		t.Run(test.input, func(t *testing.T) {
			_, err := Parse(test.input)
			assert.ErrorIs(t, err, test.err)
		})
	}
}

type recorder struct {
	calls []string
}

func (r *recorder) record(name, column string, row int) board.Outcome {
	r.calls = append(r.calls, Command{Kind: Select, Column: column, Row: row}.String()+" "+name)
	return board.Applied
}

func (r *recorder) Select(column string, row int) board.Outcome {
	return r.record("select", column, row)
}

func (r *recorder) Flag(column string, row int) board.Outcome {
	return r.record("flag", column, row)
}

func (r *recorder) Mark(column string, row int) board.Outcome {
	return r.record("mark", column, row)
}

func (r *recorder) Unfold(column string, row int) board.Outcome {
	return r.record("unfold", column, row)
}

func TestApply(t *testing.T) {
	r := &recorder{}
	for _, line := range []string{"a1", "!b2", "?c3", "#d4"} {
		c, err := Parse(line)
		require.NoError(t, err)
		assert.Equal(t, board.Applied, c.Apply(r))
	}
	assert.Equal(t, board.NoOp, Command{Kind: Quit}.Apply(r))
	assert.Equal(t, []string{"a1 select", "b2 flag", "c3 mark", "d4 unfold"}, r.calls)
}

func TestApplyToView(t *testing.T) {
	v := board.NewFromField(board.MineFieldFromMines(2, 2, board.Point{X: 1, Y: 1}))

	c, err := Parse("!b1")
	require.NoError(t, err)
	assert.Equal(t, board.Applied, c.Apply(v))

	c, err = Parse("b1")
	require.NoError(t, err)
	assert.Equal(t, board.NoOp, c.Apply(v))
	assert.True(t, v.InPlay())

	c, err = Parse("x1")
	require.NoError(t, err)
	assert.Equal(t, board.OutOfRange, c.Apply(v))
}

func TestString(t *testing.T) {
	for _, line := range []string{"q", "a1", "!b2", "?c3", "#aa40"} {
		c, err := Parse(line)
		require.NoError(t, err)
		assert.Equal(t, line, c.String())
	}
}
