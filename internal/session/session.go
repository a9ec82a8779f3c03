package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/textsweeper/internal/board"
	"github.com/vancomm/textsweeper/internal/command"
	"github.com/vancomm/textsweeper/internal/render"
)

// Every game is played on the same board.
const (
	Width  = 10
	Height = 10
	Mines  = 30
)

type Result int8

const (
	Quit Result = iota
	Lost
	Closed
	Cancelled
)

func (r Result) String() string {
	switch r {
	case Quit:
		return "quit"
	case Lost:
		return "lost"
	case Closed:
		return "input closed"
	case Cancelled:
		return "cancelled"
	default:
		return "result(" + strconv.Itoa(int(r)) + ")"
	}
}

func (r Result) ExitCode() int {
	switch r {
	case Lost:
		return 1
	case Cancelled:
		return 130
	default:
		return 0
	}
}

type Session struct {
	view   *board.View
	log    logrus.FieldLogger
	glyphs render.Glyphs
	quit   bool
}

type Option func(*Session)

func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Session) {
		s.log = log
	}
}

func WithGlyphs(g render.Glyphs) Option {
	return func(s *Session) {
		s.glyphs = g
	}
}

func New(view *board.View, opts ...Option) *Session {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	s := &Session{
		view:   view,
		log:    discard,
		glyphs: render.DefaultGlyphs,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewGame starts a session on a fresh standard board.
func NewGame(r *rand.Rand, opts ...Option) *Session {
	return New(board.NewWithRand(Width, Height, Mines, r), opts...)
}

func (s *Session) View() *board.View {
	return s.view
}

// Done reports whether the player quit or hit a mine.
func (s *Session) Done() bool {
	return s.quit || !s.view.InPlay()
}

// Result tells how a finished session ended. It is only meaningful once
// [Session.Done] is true.
func (s *Session) Result() Result {
	if s.quit {
		return Quit
	}
	return Lost
}

// Step applies one line of input. Parse errors are returned and leave the
// session running.
func (s *Session) Step(line string) (done bool, err error) {
	c, err := command.Parse(line)
	if err != nil {
		s.log.WithField("line", line).Debug("invalid command: ", err)
		return s.Done(), err
	}

	if c.Kind == command.Quit {
		s.quit = true
		s.log.Info("player quit")
		return true, nil
	}

	outcome := c.Apply(s.view)
	s.log.WithFields(logrus.Fields{
		"command": c.String(),
		"outcome": outcome.String(),
	}).Debug("applied command")

	if !s.view.InPlay() {
		s.log.WithField("opened", s.view.Opened()).Info("mine detonated")
		return true, nil
	}
	return false, nil
}

func (s *Session) Render(w io.Writer) error {
	if err := render.Render(w, s.view, s.glyphs); err != nil {
		return err
	}
	return render.Status(w, s.view)
}

/*
Run plays the session on in and out: it draws the board, then reads one
command per line and redraws after each, until the player quits, a mine
goes off, the input ends or ctx is cancelled.
*/
func (s *Session) Run(ctx context.Context, in io.Reader, out io.Writer) (Result, error) {
	if err := s.Render(out); err != nil {
		return Closed, fmt.Errorf("unable to render board: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var scanErr error
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr = scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			s.log.Debug("session cancelled")
			return Cancelled, nil
		case line, ok := <-lines:
			if !ok {
				if scanErr != nil {
					return Closed, fmt.Errorf("unable to read input: %w", scanErr)
				}
				return Closed, nil
			}

			done, err := s.Step(line)
			if errors.Is(err, command.ErrEmpty) {
				continue
			} else if err != nil {
				if _, err := fmt.Fprintf(out, "invalid command: %s\n", err); err != nil {
					return Closed, err
				}
				continue
			}
			if s.quit {
				return Quit, nil
			}

			if err := s.Render(out); err != nil {
				return Closed, fmt.Errorf("unable to render board: %w", err)
			}
			if done {
				return s.Result(), nil
			}
		}
	}
}
