package logging

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/vancomm/textsweeper/internal/config"
)

/*
New builds the application logger. Development forces the debug level.
With cfg.File set, entries are written to a size rotated file and nothing
goes to the logger's own output, which keeps the game screen clean.
*/
func New(cfg config.Log, development bool) (*logrus.Logger, error) {
	log := logrus.New()

	level := logrus.InfoLevel
	if cfg.Level != "" {
		var err error
		if level, err = logrus.ParseLevel(cfg.Level); err != nil {
			return nil, fmt.Errorf("invalid log level: %w", err)
		}
	}
	if development {
		level = logrus.DebugLevel
	}
	log.SetLevel(level)

	if cfg.File == "" {
		log.SetFormatter(&logrus.TextFormatter{ForceColors: development})
		return log, nil
	}

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Level:      level,
		Formatter: &logrus.TextFormatter{
			DisableColors: true,
			FullTimestamp: true,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("unable to create log file hook: %w", err)
	}
	log.SetOutput(io.Discard)
	log.AddHook(hook)

	return log, nil
}
