package main

import (
	"context"
	"flag"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/textsweeper/internal/board"
	"github.com/vancomm/textsweeper/internal/config"
	"github.com/vancomm/textsweeper/internal/logging"
	"github.com/vancomm/textsweeper/internal/server"
	"github.com/vancomm/textsweeper/internal/session"
)

var (
	log = logrus.New()

	configPath string
	serve      bool
)

func init() {
	const usage = "config file path"
	flag.StringVar(&configPath, "config", config.DefaultPath, usage)
	flag.StringVar(&configPath, "c", config.DefaultPath, usage+" (shorthand)")
	flag.BoolVar(&serve, "serve", false, "serve games over WebSocket instead of the terminal")
}

func newRand(cfg *config.Config) *rand.Rand {
	if cfg.Seed != nil {
		return rand.New(rand.NewPCG(*cfg.Seed, *cfg.Seed))
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

func play(ctx context.Context, cfg *config.Config) int {
	game := session.NewGame(newRand(cfg), session.WithLogger(log))
	log.WithField("mines", game.View().TotalMines()).Info("game started")

	res, err := game.Run(ctx, os.Stdin, os.Stdout)
	if err != nil {
		log.Error(err)
	}
	log.Info("game over: ", res)
	return res.ExitCode()
}

func main() {
	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	flag.Parse()

	explicit := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "config" || f.Name == "c" {
			explicit = true
		}
	})

	cfg, err := config.Load(configPath, explicit)
	if err != nil {
		log.Fatal(err)
	}

	development := cfg.Development() || config.Development()
	if log, err = logging.New(cfg.Log, development); err != nil {
		logrus.Fatal(err)
	}
	if !serve && cfg.Log.File == "" && !development {
		// the terminal belongs to the game
		log.SetOutput(io.Discard)
	}
	board.Log = log

	log.Info("starting up, mode = ", cfg.Mode)
	log.WithFields(cfg.Fields()).Debug("config")

	if serve {
		if err := server.New(log, cfg.Seed).Serve(mainCtx, cfg.Addr); err != nil {
			log.Printf("exit reason: %s\n", err)
			os.Exit(1)
		}
		return
	}

	code := play(mainCtx, cfg)
	stop()
	os.Exit(code)
}
