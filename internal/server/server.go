package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/schema"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/textsweeper/internal/command"
	"github.com/vancomm/textsweeper/internal/config"
	"github.com/vancomm/textsweeper/internal/middleware"
	"github.com/vancomm/textsweeper/internal/session"
)

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

type playParams struct {
	Seed uint64 `schema:"seed"`
}

// Server hosts text sessions over WebSocket, one game per connection.
type Server struct {
	log    logrus.FieldLogger
	ws     *config.WebSocket
	router *http.ServeMux
	seed   *uint64
}

// New creates a server. When seed is not nil every game without its own
// seed query parameter is dealt from it.
func New(log logrus.FieldLogger, seed *uint64) *Server {
	s := &Server{
		log:    log,
		ws:     config.NewWebSocket(),
		router: http.NewServeMux(),
		seed:   seed,
	}
	s.router.HandleFunc("GET /healthz", s.handleHealth)
	s.router.HandleFunc("GET /play", s.handlePlay)
	return s
}

func (s *Server) Handler() http.Handler {
	return middleware.Wrap(
		s.router,
		middleware.Logging(s.log),
		middleware.Cors(),
	)
}

// Serve listens on addr until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, addr string) error {
	server := &http.Server{
		Addr:    addr,
		Handler: s.Handler(),
		BaseContext: func(l net.Listener) context.Context {
			return ctx
		},
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.log.Infof("ready to serve @ %s", addr)
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
		defer cancel()
		return server.Shutdown(ctx)
	})

	return g.Wait()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (s *Server) random(params playParams, hasSeed bool) *rand.Rand {
	switch {
	case hasSeed:
		return rand.New(rand.NewPCG(params.Seed, params.Seed))
	case s.seed != nil:
		return rand.New(rand.NewPCG(*s.seed, *s.seed))
	default:
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
}

func (s *Server) handlePlay(w http.ResponseWriter, r *http.Request) {
	var (
		params playParams
		query  = r.URL.Query()
	)
	if err := decoder.Decode(&params, query); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprintln(w, err)
		return
	}

	c, err := s.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("upgrade: ", err)
		return
	}
	defer c.Close()
	stop := context.AfterFunc(r.Context(), func() { c.Close() })
	defer stop()

	log := s.log.WithField("remoteAddr", r.RemoteAddr)
	game := session.NewGame(s.random(params, query.Has("seed")), session.WithLogger(log))
	log.WithField("mines", game.View().TotalMines()).Info("game started")

	if err := s.reply(c, game, nil); err != nil {
		log.Error("write: ", err)
		return
	}

	for {
		mt, message, err := c.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Warn("read: ", err)
			}
			return
		}
		if mt != websocket.TextMessage {
			continue
		}

		var notes bytes.Buffer
		for _, line := range session.Lines(strings.TrimSpace(string(message))) {
			if game.Done() {
				break
			}
			if _, err := game.Step(line); err != nil && !errors.Is(err, command.ErrEmpty) {
				fmt.Fprintf(&notes, "invalid command %q: %s\n", line, err)
			}
		}

		if err := s.reply(c, game, notes.Bytes()); err != nil {
			log.Error("write: ", err)
			return
		}

		if game.Done() {
			msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, game.Result().String())
			if err := c.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second)); err != nil {
				log.Warn("close: ", err)
			}
			return
		}
	}
}

// reply sends the notes followed by the board in one text frame.
func (s *Server) reply(c *websocket.Conn, game *session.Session, notes []byte) error {
	var buf bytes.Buffer
	buf.Write(notes)
	if err := game.Render(&buf); err != nil {
		return err
	}
	return c.WriteMessage(websocket.TextMessage, buf.Bytes())
}
